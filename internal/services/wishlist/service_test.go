package wishlist

import (
	"testing"

	"uniwise/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockWishlistRepo struct {
	mock.Mock
}

type MockProductRepo struct {
	mock.Mock
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name      string
		userID    uint
		setupMock func(*MockWishlistRepo, *MockProductRepo)
		wantErr   error
	}{
		{
			name:   "first add succeeds",
			userID: 1,
			setupMock: func(wishlists *MockWishlistRepo, products *MockProductRepo) {
				products.On("GetByID", uint(10)).Return(&models.Product{SellerID: 2}, nil)
				wishlists.On("Exists", uint(1), uint(10)).Return(false, nil)
				wishlists.On("Add", mock.MatchedBy(func(item *models.WishlistItem) bool {
					return item.UserID == 1 && item.ProductID == 10
				})).Return(nil)
			},
		},
		{
			name:   "duplicate add conflicts",
			userID: 1,
			setupMock: func(wishlists *MockWishlistRepo, products *MockProductRepo) {
				products.On("GetByID", uint(10)).Return(&models.Product{SellerID: 2}, nil)
				wishlists.On("Exists", uint(1), uint(10)).Return(true, nil)
			},
			wantErr: ErrAlreadyInList,
		},
		{
			name:   "own product rejected",
			userID: 2,
			setupMock: func(wishlists *MockWishlistRepo, products *MockProductRepo) {
				products.On("GetByID", uint(10)).Return(&models.Product{SellerID: 2}, nil)
			},
			wantErr: ErrOwnProduct,
		},
		{
			name:   "product missing",
			userID: 1,
			setupMock: func(wishlists *MockWishlistRepo, products *MockProductRepo) {
				products.On("GetByID", uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wishlists := new(MockWishlistRepo)
			products := new(MockProductRepo)
			if tt.setupMock != nil {
				tt.setupMock(wishlists, products)
			}

			svc := NewService(wishlists, products)
			item, err := svc.Add(tt.userID, 10)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(10), item.ProductID)
			}

			wishlists.AssertExpectations(t)
			products.AssertExpectations(t)
		})
	}
}

func TestRemove(t *testing.T) {
	t.Run("removes an existing entry", func(t *testing.T) {
		wishlists := new(MockWishlistRepo)
		svc := NewService(wishlists, new(MockProductRepo))

		wishlists.On("Exists", uint(1), uint(10)).Return(true, nil)
		wishlists.On("Remove", uint(1), uint(10)).Return(nil)

		assert.NoError(t, svc.Remove(1, 10))
		wishlists.AssertExpectations(t)
	})

	t.Run("missing entry", func(t *testing.T) {
		wishlists := new(MockWishlistRepo)
		svc := NewService(wishlists, new(MockProductRepo))

		wishlists.On("Exists", uint(1), uint(10)).Return(false, nil)

		assert.ErrorIs(t, svc.Remove(1, 10), ErrNotInList)
	})
}

func TestProducts(t *testing.T) {
	t.Run("sold items are filtered out", func(t *testing.T) {
		wishlists := new(MockWishlistRepo)
		svc := NewService(wishlists, new(MockProductRepo))

		available := &models.Product{Name: "Lab Coat", SellerID: 2}
		sold := &models.Product{Name: "Drafter", SellerID: 3, IsSold: true}
		wishlists.On("ForUser", uint(1)).Return([]models.WishlistItem{
			{UserID: 1, ProductID: 10, Product: available},
			{UserID: 1, ProductID: 11, Product: sold},
		}, nil)

		products, err := svc.Products(1)
		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Equal(t, "Lab Coat", products[0].Name)
	})
}

// Mock implementations

func (m *MockWishlistRepo) Add(item *models.WishlistItem) error {
	return m.Called(item).Error(0)
}

func (m *MockWishlistRepo) Exists(userID, productID uint) (bool, error) {
	args := m.Called(userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistRepo) Remove(userID, productID uint) error {
	return m.Called(userID, productID).Error(0)
}

func (m *MockWishlistRepo) ForUser(userID uint) ([]models.WishlistItem, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.WishlistItem), args.Error(1)
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
