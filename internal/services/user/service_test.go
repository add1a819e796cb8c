package user

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

type MockProductRepo struct {
	mock.Mock
}

type MockReviewRepo struct {
	mock.Mock
}

func TestCreate(t *testing.T) {
	input := &models.CreateUserInput{
		Name:       "Amit Naik",
		Email:      "amit@pccegoa.edu.in",
		Password:   "secret123",
		Department: "Computer",
		Year:       "TE",
		Location:   "Verna",
	}

	t.Run("hashes the password and sets defaults", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewService(users, new(MockProductRepo), new(MockReviewRepo))

		users.On("GetByEmail", "amit@pccegoa.edu.in").Return(nil, gorm.ErrRecordNotFound)
		users.On("Create", mock.MatchedBy(func(u *models.User) bool {
			return u.Password != "secret123" &&
				u.BlockchainVerificationStatus == models.VerificationNotApplied &&
				u.ProfileImage == "default-profile.jpg"
		})).Return(nil)

		user, err := svc.Create(input)
		assert.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

		users.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewService(users, new(MockProductRepo), new(MockReviewRepo))

		users.On("GetByEmail", "amit@pccegoa.edu.in").Return(&models.User{Email: "amit@pccegoa.edu.in"}, nil)

		_, err := svc.Create(input)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestUpdateProfile(t *testing.T) {
	current := func() *models.User {
		u := &models.User{
			Name:       "Amit Naik",
			Department: "Computer",
			Year:       "TE",
			Password:   "old-hash",
		}
		u.ID = 1
		return u
	}

	t.Run("applies only provided fields", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewService(users, new(MockProductRepo), new(MockReviewRepo))

		users.On("GetByID", uint(1)).Return(current(), nil)
		users.On("Update", mock.Anything).Return(nil)

		user, err := svc.UpdateProfile(1, &models.UpdateProfileInput{Year: "BE"}, "")
		assert.NoError(t, err)
		assert.Equal(t, "BE", user.Year)
		assert.Equal(t, "Amit Naik", user.Name)
		assert.Equal(t, "old-hash", user.Password)
	})

	t.Run("re-hashes a new password", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewService(users, new(MockProductRepo), new(MockReviewRepo))

		users.On("GetByID", uint(1)).Return(current(), nil)
		users.On("Update", mock.Anything).Return(nil)

		user, err := svc.UpdateProfile(1, &models.UpdateProfileInput{Password: "newsecret"}, "")
		assert.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("newsecret")))
	})

	t.Run("replaces the profile image when uploaded", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewService(users, new(MockProductRepo), new(MockReviewRepo))

		users.On("GetByID", uint(1)).Return(current(), nil)
		users.On("Update", mock.Anything).Return(nil)

		user, err := svc.UpdateProfile(1, &models.UpdateProfileInput{}, "uploads/me.jpg")
		assert.NoError(t, err)
		assert.Equal(t, "uploads/me.jpg", user.ProfileImage)
	})
}

func TestPublicProfile(t *testing.T) {
	users := new(MockUserRepo)
	products := new(MockProductRepo)
	reviews := new(MockReviewRepo)
	svc := NewService(users, products, reviews)

	seller := &models.User{Name: "Seller", Email: "seller@pccegoa.edu.in", Password: "hash"}
	seller.ID = 2
	users.On("GetByID", uint(2)).Return(seller, nil)
	products.On("UnsoldBySeller", uint(2), 10).Return([]models.Product{{Name: "Drafter", SellerID: 2}}, nil)
	reviews.On("BySeller", uint(2)).Return([]models.Review{{SellerID: 2, Rating: 5}}, nil)

	profile, err := svc.PublicProfile(2)
	assert.NoError(t, err)
	assert.Equal(t, "Seller", profile.User.Name)
	assert.Len(t, profile.Products, 1)
	assert.Len(t, profile.Reviews, 1)
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

func (m *MockProductRepo) Create(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *MockProductRepo) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepo) GetByIDWithSeller(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepo) Update(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *MockProductRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockProductRepo) MarkSold(id uint, buyerID *uint) error {
	return m.Called(id, buyerID).Error(0)
}

func (m *MockProductRepo) List(filter models.ProductFilter, limit, offset int) ([]models.Product, int64, error) {
	args := m.Called(filter, limit, offset)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepo) UnsoldBySeller(sellerID uint, limit int) ([]models.Product, error) {
	args := m.Called(sellerID, limit)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepo) SoldBySeller(sellerID uint) ([]models.Product, error) {
	args := m.Called(sellerID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepo) PurchasedBy(buyerID uint) ([]models.Product, error) {
	args := m.Called(buyerID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepo) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepo) CountSold() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepo) Create(review *models.Review) error {
	return m.Called(review).Error(0)
}

func (m *MockReviewRepo) GetByIDLoaded(id uint) (*models.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepo) FindByUserAndProduct(userID, productID uint) (*models.Review, error) {
	args := m.Called(userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepo) BySeller(sellerID uint) ([]models.Review, error) {
	args := m.Called(sellerID)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepo) ByProduct(productID uint) ([]models.Review, error) {
	args := m.Called(productID)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepo) ByUser(userID uint) ([]models.Review, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Review), args.Error(1)
}
