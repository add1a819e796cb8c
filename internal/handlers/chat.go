package handlers

import (
	"errors"
	"log"
	"strconv"

	"uniwise/internal/middleware"
	"uniwise/internal/services/chat"
	"uniwise/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	chatService chat.Service
}

func NewChatHandler(chatService chat.Service) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// AccessChat finds or creates the chat with another user, optionally tied
// to a product.
func (h *ChatHandler) AccessChat(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		UserID    uint  `json:"userId"`
		ProductID *uint `json:"productId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.UserID == 0 {
		return utils.BadRequest(c, "UserId parameter not sent with request")
	}

	found, created, err := h.chatService.AccessChat(usr.ID, input.UserID, input.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidPair):
			return utils.BadRequest(c, "Chat must have exactly 2 distinct participants")
		case errors.Is(err, chat.ErrProductNotFound):
			return utils.NotFound(c, "Product not found")
		default:
			log.Printf("accessChat failed: %v", err)
			return utils.InternalError(c, "Failed to access chat")
		}
	}

	if created {
		return utils.Created(c, found)
	}
	return utils.Success(c, found)
}

// FetchChats returns the user's active chats, most recent activity first.
func (h *ChatHandler) FetchChats(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	chats, err := h.chatService.ChatsForUser(usr.ID)
	if err != nil {
		log.Printf("Error fetching chats for user %d: %v", usr.ID, err)
		return utils.InternalError(c, "Failed to fetch chats")
	}

	return utils.Success(c, chats)
}

// SendMessage appends a message to one of the sender's chats.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		ChatID  uint   `json:"chatId"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.Content == "" || input.ChatID == 0 {
		return utils.BadRequest(c, "Please provide content and chatId")
	}

	msg, err := h.chatService.SendMessage(usr.ID, input.ChatID, input.Content)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrChatNotFound):
			return utils.NotFound(c, "Chat not found")
		case errors.Is(err, chat.ErrNotParticipant):
			return utils.Forbidden(c, "Not authorized to send message in this chat")
		default:
			log.Printf("sendMessage failed: %v", err)
			return utils.InternalError(c, "Failed to send message")
		}
	}

	return utils.Success(c, msg)
}

// GetMessages returns the chat history. Reading marks every message not
// sent by the requester as read.
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	chatID, err := strconv.ParseUint(c.Params("chatId"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid chat id")
	}

	messages, err := h.chatService.Messages(usr.ID, uint(chatID))
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrChatNotFound):
			return utils.NotFound(c, "Chat not found")
		case errors.Is(err, chat.ErrNotParticipant):
			return utils.Forbidden(c, "Not authorized to access messages in this chat")
		default:
			log.Printf("getMessages failed: %v", err)
			return utils.InternalError(c, "Failed to fetch messages")
		}
	}

	return utils.Success(c, messages)
}
