package repositories

import (
	"time"

	"uniwise/internal/models"

	"gorm.io/gorm"
)

// ChatRepository is the persistence surface for chats and messages.
type ChatRepository interface {
	FindByPair(userA, userB uint, productID *uint) (*models.Chat, error)
	Create(chat *models.Chat) error
	GetByID(id uint) (*models.Chat, error)
	GetByIDLoaded(id uint) (*models.Chat, error)
	ForUser(userID uint) ([]models.Chat, error)
	AppendMessage(msg *models.Message) error
	Messages(chatID uint) ([]models.Message, error)
	MarkRead(chatID, readerID uint) error
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// FindByPair looks up the chat for a normalized participant pair, scoped to
// a product when one is given.
func (r *chatRepository) FindByPair(userA, userB uint, productID *uint) (*models.Chat, error) {
	one, two := models.NormalizePair(userA, userB)

	q := r.db.Where("participant_one_id = ? AND participant_two_id = ?", one, two)
	if productID != nil {
		q = q.Where("product_id = ?", *productID)
	}

	var chat models.Chat
	err := q.Preload("ParticipantOne").
		Preload("ParticipantTwo").
		Preload("Product").
		Preload("LastMessage").
		First(&chat).Error
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepository) Create(chat *models.Chat) error {
	chat.ParticipantOneID, chat.ParticipantTwoID =
		models.NormalizePair(chat.ParticipantOneID, chat.ParticipantTwoID)
	return r.db.Create(chat).Error
}

func (r *chatRepository) GetByID(id uint) (*models.Chat, error) {
	var chat models.Chat
	if err := r.db.First(&chat, id).Error; err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepository) GetByIDLoaded(id uint) (*models.Chat, error) {
	var chat models.Chat
	err := r.db.Preload("ParticipantOne").
		Preload("ParticipantTwo").
		Preload("Product").
		Preload("LastMessage").
		First(&chat, id).Error
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepository) ForUser(userID uint) ([]models.Chat, error) {
	var chats []models.Chat
	err := r.db.Where("(participant_one_id = ? OR participant_two_id = ?) AND is_active = ?",
		userID, userID, true).
		Preload("ParticipantOne").
		Preload("ParticipantTwo").
		Preload("Product").
		Preload("LastMessage").
		Order("updated_at desc").
		Find(&chats).Error
	return chats, err
}

// AppendMessage writes the message and advances the chat's last-message
// pointer in one transaction, so a reader never sees a pointer to a message
// that was not persisted.
func (r *chatRepository) AppendMessage(msg *models.Message) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&models.Chat{}).
			Where("id = ?", msg.ChatID).
			Updates(map[string]interface{}{
				"last_message_id": msg.ID,
				"updated_at":      time.Now(),
			}).Error
	})
}

func (r *chatRepository) Messages(chatID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("chat_id = ?", chatID).
		Preload("Sender").
		Order("created_at asc").
		Find(&messages).Error
	return messages, err
}

// MarkRead flags every message in the chat not sent by readerID as read.
func (r *chatRepository) MarkRead(chatID, readerID uint) error {
	now := time.Now()
	return r.db.Model(&models.Message{}).
		Where("chat_id = ? AND sender_id <> ? AND is_read = ?", chatID, readerID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": &now,
		}).Error
}
