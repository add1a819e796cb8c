package handlers

import (
	"errors"
	"log"

	apperrors "uniwise/internal/errors"
	"uniwise/internal/middleware"
	"uniwise/internal/services/payment"
	"uniwise/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService payment.Service
}

func NewPaymentHandler(paymentService payment.Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreateOrder opens a gateway order for a product purchase.
func (h *PaymentHandler) CreateOrder(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		ProductID uint `json:"productId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	order, err := h.paymentService.CreateOrder(c.Context(), usr.ID, input.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrProductNotFound):
			return utils.NotFound(c, "Product not found")
		case errors.Is(err, payment.ErrAlreadySold):
			return utils.BadRequest(c, "Product is already sold")
		case errors.Is(err, payment.ErrOwnProduct):
			return utils.BadRequest(c, "You cannot buy your own product")
		default:
			log.Printf("Order creation failed: %v", err)
			var de *apperrors.DomainError
			if errors.As(err, &de) {
				return utils.Respond(c, fiber.StatusInternalServerError, fiber.Map{"error": de.Message, "code": de.Code})
			}
			return utils.InternalError(c, err.Error())
		}
	}

	return utils.Success(c, order)
}

// VerifyPayment completes a card-rail sale from the gateway's proof triple.
func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input payment.CardVerificationInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	txn, err := h.paymentService.VerifyCardPayment(c.Context(), usr.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrMissingProof):
			return utils.BadRequest(c, "Payment verification failed: Missing parameters")
		case errors.Is(err, payment.ErrProductNotFound):
			return utils.NotFound(c, "Product not found")
		case errors.Is(err, payment.ErrAlreadySold):
			return utils.Conflict(c, "Product has already been sold")
		case errors.Is(err, payment.ErrOwnProduct):
			return utils.BadRequest(c, "You cannot buy your own product")
		case errors.Is(err, payment.ErrVerificationFailed):
			return utils.BadRequest(c, "Payment verification failed")
		default:
			log.Printf("Payment verification failed: %v", err)
			var de *apperrors.DomainError
			if errors.As(err, &de) {
				return utils.Respond(c, fiber.StatusInternalServerError, fiber.Map{"error": de.Message, "code": de.Code})
			}
			return utils.InternalError(c, err.Error())
		}
	}

	return utils.Success(c, fiber.Map{
		"success":     true,
		"message":     "Payment successful",
		"transaction": txn,
	})
}

// ProcessCryptoPayment completes a crypto-rail sale from a transaction hash.
func (h *PaymentHandler) ProcessCryptoPayment(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		ProductID       uint   `json:"productId"`
		TransactionHash string `json:"transactionHash"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.TransactionHash == "" {
		return utils.BadRequest(c, "Transaction hash is required")
	}

	txn, err := h.paymentService.ProcessCryptoPayment(c.Context(), usr.ID, input.ProductID, input.TransactionHash)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrProductNotFound):
			return utils.NotFound(c, "Product not found")
		case errors.Is(err, payment.ErrAlreadySold):
			return utils.Conflict(c, "Product is already sold")
		case errors.Is(err, payment.ErrOwnProduct):
			return utils.BadRequest(c, "You cannot buy your own product")
		case errors.Is(err, payment.ErrCryptoNotAccepted):
			return utils.BadRequest(c, "This product does not accept cryptocurrency payments")
		case errors.Is(err, payment.ErrVerificationFailed):
			return utils.BadRequest(c, "Blockchain transaction verification failed")
		default:
			log.Printf("Crypto payment failed: %v", err)
			return utils.InternalError(c, err.Error())
		}
	}

	return utils.Success(c, fiber.Map{
		"success":     true,
		"message":     "Crypto payment successful",
		"transaction": txn,
	})
}

// GetTransactions returns the user's transactions, as buyer or seller.
func (h *PaymentHandler) GetTransactions(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	txns, err := h.paymentService.Transactions(usr.ID)
	if err != nil {
		log.Printf("Error fetching transactions for user %d: %v", usr.ID, err)
		return utils.InternalError(c, "Failed to fetch transactions")
	}

	return utils.Success(c, txns)
}
