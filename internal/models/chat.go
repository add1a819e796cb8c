package models

import (
	"time"

	"gorm.io/gorm"
)

// Chat is a conversation between exactly two users, optionally about a
// product. The participant pair is stored normalized (lower user id first)
// so find-or-create is a plain indexed equality query.
type Chat struct {
	gorm.Model
	ParticipantOneID uint     `gorm:"not null;index:idx_chat_pair" json:"participantOneId"`
	ParticipantOne   *User    `gorm:"foreignKey:ParticipantOneID" json:"participantOne,omitempty"`
	ParticipantTwoID uint     `gorm:"not null;index:idx_chat_pair" json:"participantTwoId"`
	ParticipantTwo   *User    `gorm:"foreignKey:ParticipantTwoID" json:"participantTwo,omitempty"`
	ProductID        *uint    `gorm:"index:idx_chat_pair" json:"productId,omitempty"`
	Product          *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	LastMessageID    *uint    `gorm:"default:null" json:"lastMessageId,omitempty"`
	LastMessage      *Message `gorm:"foreignKey:LastMessageID" json:"lastMessage,omitempty"`
	IsActive         bool     `gorm:"default:true" json:"isActive"`
}

// HasParticipant reports whether userID is one of the chat's two participants.
func (c *Chat) HasParticipant(userID uint) bool {
	return c.ParticipantOneID == userID || c.ParticipantTwoID == userID
}

// NormalizePair orders a participant pair deterministically.
func NormalizePair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}

type Message struct {
	gorm.Model
	ChatID   uint       `gorm:"not null;index" json:"chatId"`
	SenderID uint       `gorm:"not null" json:"senderId"`
	Sender   *User      `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Content  string     `gorm:"not null" json:"content"`
	IsRead   bool       `gorm:"default:false" json:"isRead"`
	ReadAt   *time.Time `json:"readAt,omitempty"`
}
