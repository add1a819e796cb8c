package chat

import (
	"errors"

	"uniwise/internal/models"
	"uniwise/internal/repositories"

	"gorm.io/gorm"
)

var (
	ErrChatNotFound    = errors.New("chat not found")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPair     = errors.New("chat must have exactly 2 distinct participants")
	ErrNotParticipant  = errors.New("not a participant of this chat")
	ErrEmptyContent    = errors.New("message content is required")
)

type Service interface {
	AccessChat(requesterID, otherUserID uint, productID *uint) (*models.Chat, bool, error)
	ChatsForUser(userID uint) ([]models.Chat, error)
	SendMessage(senderID, chatID uint, content string) (*models.Message, error)
	Messages(requesterID, chatID uint) ([]models.Message, error)
}

type service struct {
	chatRepo    repositories.ChatRepository
	productRepo repositories.ProductRepository
}

func NewService(chatRepo repositories.ChatRepository, productRepo repositories.ProductRepository) Service {
	return &service{
		chatRepo:    chatRepo,
		productRepo: productRepo,
	}
}

// AccessChat finds the chat for the participant pair (order-independent,
// optionally scoped to a product) or creates it. The bool result reports
// whether the chat was created by this call.
func (s *service) AccessChat(requesterID, otherUserID uint, productID *uint) (*models.Chat, bool, error) {
	if otherUserID == 0 || requesterID == 0 || requesterID == otherUserID {
		return nil, false, ErrInvalidPair
	}

	chat, err := s.chatRepo.FindByPair(requesterID, otherUserID, productID)
	if err == nil {
		return chat, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if productID != nil {
		if _, err := s.productRepo.GetByID(*productID); err != nil {
			return nil, false, ErrProductNotFound
		}
	}

	newChat := &models.Chat{
		ParticipantOneID: requesterID,
		ParticipantTwoID: otherUserID,
		ProductID:        productID,
		IsActive:         true,
	}
	if err := s.chatRepo.Create(newChat); err != nil {
		return nil, false, err
	}

	loaded, err := s.chatRepo.GetByIDLoaded(newChat.ID)
	if err != nil {
		return nil, false, err
	}
	return loaded, true, nil
}

func (s *service) ChatsForUser(userID uint) ([]models.Chat, error) {
	return s.chatRepo.ForUser(userID)
}

// SendMessage appends a message to the chat. The sender must be one of the
// chat's two participants.
func (s *service) SendMessage(senderID, chatID uint, content string) (*models.Message, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	chat, err := s.chatRepo.GetByID(chatID)
	if err != nil {
		return nil, ErrChatNotFound
	}
	if !chat.HasParticipant(senderID) {
		return nil, ErrNotParticipant
	}

	msg := &models.Message{
		ChatID:   chatID,
		SenderID: senderID,
		Content:  content,
	}
	if err := s.chatRepo.AppendMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Messages returns the chat history, oldest first. Reading has a side
// effect: every message not sent by the requester is marked read. Callers
// must treat this as part of the contract, not a pure query.
func (s *service) Messages(requesterID, chatID uint) ([]models.Message, error) {
	chat, err := s.chatRepo.GetByID(chatID)
	if err != nil {
		return nil, ErrChatNotFound
	}
	if !chat.HasParticipant(requesterID) {
		return nil, ErrNotParticipant
	}

	messages, err := s.chatRepo.Messages(chatID)
	if err != nil {
		return nil, err
	}

	if err := s.chatRepo.MarkRead(chatID, requesterID); err != nil {
		return nil, err
	}
	return messages, nil
}
