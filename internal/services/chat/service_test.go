package chat

import (
	"testing"

	"uniwise/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockChatRepo struct {
	mock.Mock
}

type MockProductRepo struct {
	mock.Mock
}

func pairChat(one, two uint) *models.Chat {
	c := &models.Chat{
		ParticipantOneID: one,
		ParticipantTwoID: two,
		IsActive:         true,
	}
	c.ID = 5
	return c
}

func TestAccessChat(t *testing.T) {
	t.Run("returns existing chat", func(t *testing.T) {
		chats := new(MockChatRepo)
		svc := NewService(chats, new(MockProductRepo))

		chats.On("FindByPair", uint(1), uint(2), (*uint)(nil)).Return(pairChat(1, 2), nil)

		chat, created, err := svc.AccessChat(1, 2, nil)
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, uint(5), chat.ID)

		chats.AssertExpectations(t)
	})

	t.Run("creates chat when pair has none", func(t *testing.T) {
		chats := new(MockChatRepo)
		svc := NewService(chats, new(MockProductRepo))

		chats.On("FindByPair", uint(2), uint(1), (*uint)(nil)).Return(nil, gorm.ErrRecordNotFound)
		chats.On("Create", mock.MatchedBy(func(c *models.Chat) bool {
			return c.ParticipantOneID == 2 && c.ParticipantTwoID == 1 && c.IsActive
		})).Return(nil)
		chats.On("GetByIDLoaded", mock.Anything).Return(pairChat(1, 2), nil)

		chat, created, err := svc.AccessChat(2, 1, nil)
		assert.NoError(t, err)
		assert.True(t, created)
		assert.NotNil(t, chat)

		chats.AssertExpectations(t)
	})

	t.Run("rejects chat with self", func(t *testing.T) {
		svc := NewService(new(MockChatRepo), new(MockProductRepo))

		_, _, err := svc.AccessChat(1, 1, nil)
		assert.ErrorIs(t, err, ErrInvalidPair)
	})

	t.Run("rejects missing participant", func(t *testing.T) {
		svc := NewService(new(MockChatRepo), new(MockProductRepo))

		_, _, err := svc.AccessChat(1, 0, nil)
		assert.ErrorIs(t, err, ErrInvalidPair)
	})

	t.Run("product-scoped chat requires the product to exist", func(t *testing.T) {
		chats := new(MockChatRepo)
		products := new(MockProductRepo)
		svc := NewService(chats, products)

		productID := uint(10)
		chats.On("FindByPair", uint(1), uint(2), &productID).Return(nil, gorm.ErrRecordNotFound)
		products.On("GetByID", uint(10)).Return(nil, gorm.ErrRecordNotFound)

		_, _, err := svc.AccessChat(1, 2, &productID)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestSendMessage(t *testing.T) {
	t.Run("appends for a participant", func(t *testing.T) {
		chats := new(MockChatRepo)
		svc := NewService(chats, new(MockProductRepo))

		chats.On("GetByID", uint(5)).Return(pairChat(1, 2), nil)
		chats.On("AppendMessage", mock.MatchedBy(func(m *models.Message) bool {
			return m.ChatID == 5 && m.SenderID == 2 && m.Content == "is this still available?"
		})).Return(nil)

		msg, err := svc.SendMessage(2, 5, "is this still available?")
		assert.NoError(t, err)
		assert.Equal(t, uint(2), msg.SenderID)

		chats.AssertExpectations(t)
	})

	t.Run("rejects a non-participant sender", func(t *testing.T) {
		chats := new(MockChatRepo)
		svc := NewService(chats, new(MockProductRepo))

		chats.On("GetByID", uint(5)).Return(pairChat(1, 2), nil)

		_, err := svc.SendMessage(3, 5, "hello")
		assert.ErrorIs(t, err, ErrNotParticipant)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		svc := NewService(new(MockChatRepo), new(MockProductRepo))

		_, err := svc.SendMessage(1, 5, "")
		assert.ErrorIs(t, err, ErrEmptyContent)
	})
}

func TestMessages(t *testing.T) {
	t.Run("fetching marks the other side's messages read", func(t *testing.T) {
		chats := new(MockChatRepo)
		svc := NewService(chats, new(MockProductRepo))

		history := []models.Message{
			{ChatID: 5, SenderID: 2, Content: "is this still available?"},
			{ChatID: 5, SenderID: 1, Content: "yes it is"},
		}
		chats.On("GetByID", uint(5)).Return(pairChat(1, 2), nil)
		chats.On("Messages", uint(5)).Return(history, nil)
		chats.On("MarkRead", uint(5), uint(1)).Return(nil)

		messages, err := svc.Messages(1, 5)
		assert.NoError(t, err)
		assert.Len(t, messages, 2)

		chats.AssertExpectations(t)
	})

	t.Run("rejects a non-participant reader", func(t *testing.T) {
		chats := new(MockChatRepo)
		svc := NewService(chats, new(MockProductRepo))

		chats.On("GetByID", uint(5)).Return(pairChat(1, 2), nil)

		_, err := svc.Messages(9, 5)
		assert.ErrorIs(t, err, ErrNotParticipant)
		chats.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
	})
}

// Mock implementations

func (m *MockChatRepo) FindByPair(userA, userB uint, productID *uint) (*models.Chat, error) {
	args := m.Called(userA, userB, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chat), args.Error(1)
}

func (m *MockChatRepo) Create(chat *models.Chat) error {
	return m.Called(chat).Error(0)
}

func (m *MockChatRepo) GetByID(id uint) (*models.Chat, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chat), args.Error(1)
}

func (m *MockChatRepo) GetByIDLoaded(id uint) (*models.Chat, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chat), args.Error(1)
}

func (m *MockChatRepo) ForUser(userID uint) ([]models.Chat, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Chat), args.Error(1)
}

func (m *MockChatRepo) AppendMessage(msg *models.Message) error {
	return m.Called(msg).Error(0)
}

func (m *MockChatRepo) Messages(chatID uint) ([]models.Message, error) {
	args := m.Called(chatID)
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockChatRepo) MarkRead(chatID, readerID uint) error {
	return m.Called(chatID, readerID).Error(0)
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
