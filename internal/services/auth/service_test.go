package auth

import (
	"testing"

	"uniwise/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepo struct {
	mock.Mock
}

func hashed(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(h)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("valid credentials", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewService(users)

		account := &models.User{Email: "amit@pccegoa.edu.in", Password: hashed("secret123")}
		account.ID = 1
		users.On("GetByEmail", "amit@pccegoa.edu.in").Return(account, nil)

		user, access, refresh, err := svc.Login("amit@pccegoa.edu.in", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewService(users)

		account := &models.User{Email: "amit@pccegoa.edu.in", Password: hashed("secret123")}
		users.On("GetByEmail", "amit@pccegoa.edu.in").Return(account, nil)

		_, _, _, err := svc.Login("amit@pccegoa.edu.in", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewService(users)

		users.On("GetByEmail", "ghost@pccegoa.edu.in").Return(nil, gorm.ErrRecordNotFound)

		_, _, _, err := svc.Login("ghost@pccegoa.edu.in", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("blacklisted account is refused", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewService(users)

		account := &models.User{
			Email:           "banned@pccegoa.edu.in",
			Password:        hashed("secret123"),
			IsBlacklisted:   true,
			BlacklistReason: "spam listings",
		}
		users.On("GetByEmail", "banned@pccegoa.edu.in").Return(account, nil)

		user, access, _, err := svc.Login("banned@pccegoa.edu.in", "secret123")
		assert.ErrorIs(t, err, ErrBlacklisted)
		assert.Empty(t, access)
		assert.Equal(t, "spam listings", user.BlacklistReason)
	})
}

func TestApplyForVerification(t *testing.T) {
	t.Run("first application goes pending", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewService(users)

		account := &models.User{BlockchainVerificationStatus: models.VerificationNotApplied}
		account.ID = 1
		users.On("GetByID", uint(1)).Return(account, nil)
		users.On("Update", mock.MatchedBy(func(u *models.User) bool {
			return u.BlockchainVerificationStatus == models.VerificationPending &&
				u.WalletID != nil && *u.WalletID == "123456789012345"
		})).Return(nil)

		user, err := svc.ApplyForVerification(1, "123456789012345")
		assert.NoError(t, err)
		assert.Equal(t, models.VerificationPending, user.BlockchainVerificationStatus)

		users.AssertExpectations(t)
	})

	t.Run("re-application after rejection is allowed", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewService(users)

		account := &models.User{BlockchainVerificationStatus: models.VerificationRejected}
		account.ID = 1
		users.On("GetByID", uint(1)).Return(account, nil)
		users.On("Update", mock.Anything).Return(nil)

		user, err := svc.ApplyForVerification(1, "123456789012345")
		assert.NoError(t, err)
		assert.Equal(t, models.VerificationPending, user.BlockchainVerificationStatus)
	})

	t.Run("pending application cannot be resubmitted", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewService(users)

		account := &models.User{BlockchainVerificationStatus: models.VerificationPending}
		users.On("GetByID", uint(1)).Return(account, nil)

		_, err := svc.ApplyForVerification(1, "123456789012345")
		assert.ErrorIs(t, err, ErrAlreadyApplied)
	})

	t.Run("wallet ID must be 15 digits", func(t *testing.T) {
		svc := NewService(new(MockUserRepo))

		_, err := svc.ApplyForVerification(1, "0xabcdef")
		assert.ErrorIs(t, err, ErrInvalidWalletID)
	})
}

// Mock implementations

func (m *MockUserRepo) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) Update(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepo) GetAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepo) GetPendingVerifications() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) Recent(limit int) ([]models.User, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.User), args.Error(1)
}
