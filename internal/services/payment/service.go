// Package payment implements the sale-completion flow: order creation on the
// card rail, payment verification on both rails, and the atomic
// transaction-plus-mark-sold write.
package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"uniwise/internal/blockchain"
	"uniwise/internal/gateway"
	"uniwise/internal/models"
	"uniwise/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrAlreadySold        = repositories.ErrProductAlreadySold
	ErrOwnProduct         = errors.New("you cannot buy your own product")
	ErrCryptoNotAccepted  = errors.New("this product does not accept cryptocurrency payments")
	ErrVerificationFailed = errors.New("payment verification failed")
	ErrMissingProof       = errors.New("payment verification failed: missing parameters")
)

// OrderSummary is returned to the client to drive the gateway checkout.
type OrderSummary struct {
	OrderID  string            `json:"orderId"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Notes    map[string]string `json:"notes"`
	Product  ProductSummary    `json:"product"`
}

type ProductSummary struct {
	ID     uint          `json:"id"`
	Name   string        `json:"name"`
	Price  float64       `json:"price"`
	Seller SellerSummary `json:"seller"`
}

type SellerSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CardVerificationInput is the gateway's order/payment/signature proof triple.
type CardVerificationInput struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
	ProductID uint   `json:"productId"`
}

type Service interface {
	CreateOrder(ctx context.Context, buyerID, productID uint) (*OrderSummary, error)
	VerifyCardPayment(ctx context.Context, buyerID uint, input CardVerificationInput) (*models.Transaction, error)
	ProcessCryptoPayment(ctx context.Context, buyerID, productID uint, txHash string) (*models.Transaction, error)
	Transactions(userID uint) ([]models.Transaction, error)
}

type service struct {
	productRepo repositories.ProductRepository
	txnRepo     repositories.TransactionRepository
	userRepo    repositories.UserRepository
	gateway     gateway.Client
	verifier    blockchain.Verifier
}

func NewService(
	productRepo repositories.ProductRepository,
	txnRepo repositories.TransactionRepository,
	userRepo repositories.UserRepository,
	gw gateway.Client,
	verifier blockchain.Verifier,
) Service {
	return &service{
		productRepo: productRepo,
		txnRepo:     txnRepo,
		userRepo:    userRepo,
		gateway:     gw,
		verifier:    verifier,
	}
}

// checkPurchasable runs the shared sale preconditions, in order: the product
// must exist, must not be sold, and the buyer must not be the seller. Each
// failure is a distinct rejection.
func (s *service) checkPurchasable(buyerID, productID uint) (*models.Product, error) {
	product, err := s.productRepo.GetByIDWithSeller(productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if product.IsSold {
		return nil, ErrAlreadySold
	}
	if product.SellerID == buyerID {
		return nil, ErrOwnProduct
	}
	return product, nil
}

// CreateOrder opens a gateway order for the product's price. No inventory is
// reserved here; exclusivity is enforced at completion time.
func (s *service) CreateOrder(ctx context.Context, buyerID, productID uint) (*OrderSummary, error) {
	product, err := s.checkPurchasable(buyerID, productID)
	if err != nil {
		return nil, err
	}

	order, err := s.gateway.CreateOrder(ctx, gateway.CreateOrderRequest{
		Amount:   int64(math.Round(product.Price * 100)), // paise
		Currency: "INR",
		Receipt:  "receipt_" + uuid.NewString(),
		Notes: map[string]string{
			"productId": fmt.Sprint(product.ID),
			"buyerId":   fmt.Sprint(buyerID),
			"sellerId":  fmt.Sprint(product.SellerID),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("payment initialization failed: %w", err)
	}

	return &OrderSummary{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Notes:    order.Notes,
		Product: ProductSummary{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.Price,
			Seller: SellerSummary{
				ID:   product.SellerID,
				Name: product.Seller.Name,
			},
		},
	}, nil
}

// VerifyCardPayment completes a sale on the card rail. The signature is
// checked first, the order is fetched back for the settled amount, then the
// transaction record and the product flip commit atomically. A concurrent
// second buyer loses on the conditional mark-sold update and gets
// ErrAlreadySold.
func (s *service) VerifyCardPayment(ctx context.Context, buyerID uint, input CardVerificationInput) (*models.Transaction, error) {
	if input.PaymentID == "" || input.OrderID == "" || input.Signature == "" {
		return nil, ErrMissingProof
	}

	product, err := s.checkPurchasable(buyerID, input.ProductID)
	if err != nil {
		return nil, err
	}

	if !s.gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		return nil, ErrVerificationFailed
	}

	order, err := s.gateway.FetchOrder(ctx, input.OrderID)
	if err != nil {
		return nil, fmt.Errorf("payment verification failed: %w", err)
	}

	txn := &models.Transaction{
		BuyerID:       buyerID,
		SellerID:      product.SellerID,
		ProductID:     product.ID,
		Amount:        float64(order.Amount) / 100,
		PaymentMethod: models.PaymentMethodRazorpay,
		PaymentID:     input.PaymentID,
	}

	if err := s.txnRepo.CompleteSale(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// ProcessCryptoPayment completes a sale on the crypto rail. The product must
// accept crypto and the chain verifier must pass for the supplied hash.
func (s *service) ProcessCryptoPayment(ctx context.Context, buyerID, productID uint, txHash string) (*models.Transaction, error) {
	if txHash == "" {
		return nil, errors.New("transaction hash is required")
	}

	product, err := s.checkPurchasable(buyerID, productID)
	if err != nil {
		return nil, err
	}

	if !product.AcceptsCrypto {
		return nil, ErrCryptoNotAccepted
	}

	buyer, err := s.userRepo.GetByID(buyerID)
	if err != nil {
		return nil, err
	}

	var buyerWallet, sellerWallet string
	if buyer.WalletID != nil {
		buyerWallet = *buyer.WalletID
	}
	if product.Seller != nil && product.Seller.WalletID != nil {
		sellerWallet = *product.Seller.WalletID
	}

	ok, err := s.verifier.VerifyTransaction(ctx, txHash, product.Price, buyerWallet, sellerWallet)
	if err != nil {
		return nil, fmt.Errorf("crypto payment processing failed: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: blockchain transaction rejected", ErrVerificationFailed)
	}

	txn := &models.Transaction{
		BuyerID:               buyerID,
		SellerID:              product.SellerID,
		ProductID:             product.ID,
		Amount:                product.Price,
		PaymentMethod:         models.PaymentMethodCrypto,
		PaymentID:             "crypto_" + uuid.NewString(),
		CryptoTransactionHash: txHash,
	}

	if err := s.txnRepo.CompleteSale(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *service) Transactions(userID uint) ([]models.Transaction, error) {
	return s.txnRepo.ForUser(userID)
}
