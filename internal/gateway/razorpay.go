// Package gateway wraps the Razorpay orders API behind the Client interface,
// so tests (and any future rail) can swap in their own implementation.
package gateway

import (
	"context"
	"fmt"

	"uniwise/internal/config"
	apperrors "uniwise/internal/errors"

	razorpay "github.com/razorpay/razorpay-go"
	rzputils "github.com/razorpay/razorpay-go/utils"
)

// Order is a payment order as reported by the gateway. Amount is in the
// smallest currency unit (paise for INR).
type Order struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Status   string            `json:"status"`
	Notes    map[string]string `json:"notes"`
}

// CreateOrderRequest describes the order to open with the gateway.
type CreateOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// Client is the card-rail collaborator surface: create an order, fetch it
// back, and check a payment signature.
type Client interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)
	FetchOrder(ctx context.Context, orderID string) (*Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type razorpayClient struct {
	keySecret string
	api       *razorpay.Client
}

// NewClient builds a Razorpay client from RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET.
func NewClient() Client {
	keyID := config.GetEnv("RAZORPAY_KEY_ID", "")
	keySecret := config.GetEnv("RAZORPAY_KEY_SECRET", "")
	return &razorpayClient{
		keySecret: keySecret,
		api:       razorpay.NewClient(keyID, keySecret),
	}
}

func (r *razorpayClient) CreateOrder(_ context.Context, req CreateOrderRequest) (*Order, error) {
	if req.Currency == "" {
		req.Currency = "INR"
	}

	notes := make(map[string]interface{}, len(req.Notes))
	for k, v := range req.Notes {
		notes[k] = v
	}

	body, err := r.api.Order.Create(map[string]interface{}{
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes":    notes,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGatewayUnavailable, err)
	}

	return orderFromResponse(body)
}

func (r *razorpayClient) FetchOrder(_ context.Context, orderID string) (*Order, error) {
	body, err := r.api.Order.Fetch(orderID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGatewayUnavailable, err)
	}

	return orderFromResponse(body)
}

// VerifySignature checks the checkout's HMAC-SHA256 over "orderID|paymentID"
// against the signature it returned.
func (r *razorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return rzputils.VerifyPaymentSignature(params, signature, r.keySecret)
}

// orderFromResponse maps the SDK's untyped order body onto Order. A body
// without an order id is not usable downstream and is rejected outright.
func orderFromResponse(body map[string]interface{}) (*Order, error) {
	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: order id missing", apperrors.ErrGatewayResponse)
	}

	order := &Order{ID: id, Notes: map[string]string{}}
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}
	if currency, ok := body["currency"].(string); ok {
		order.Currency = currency
	}
	if receipt, ok := body["receipt"].(string); ok {
		order.Receipt = receipt
	}
	if status, ok := body["status"].(string); ok {
		order.Status = status
	}
	if notes, ok := body["notes"].(map[string]interface{}); ok {
		for k, v := range notes {
			if s, ok := v.(string); ok {
				order.Notes[k] = s
			}
		}
	}
	return order, nil
}
