package repositories

import (
	"errors"

	"uniwise/internal/models"

	"gorm.io/gorm"
)

// ErrProductAlreadySold is returned when the conditional mark-sold update
// finds the product already flipped. Under two concurrent buyers the first
// write wins and the loser gets this conflict.
var ErrProductAlreadySold = errors.New("product is already sold")

// TransactionRepository is the persistence surface for sale records.
type TransactionRepository interface {
	CompleteSale(txn *models.Transaction) error
	ForUser(userID uint) ([]models.Transaction, error)
	All() ([]models.Transaction, error)
	Count() (int64, error)
	Recent(limit int) ([]models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// CompleteSale atomically records a completed transaction and marks the
// product sold. The product flip is a conditional update keyed on
// is_sold = false; zero rows affected means another buyer won the race and
// the whole transaction rolls back.
func (r *transactionRepository) CompleteSale(txn *models.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txn.Status = models.TransactionCompleted
		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Product{}).
			Where("id = ? AND is_sold = ?", txn.ProductID, false).
			Updates(map[string]interface{}{
				"is_sold":        true,
				"buyer_id":       txn.BuyerID,
				"transaction_id": txn.ID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrProductAlreadySold
		}
		return nil
	})
}

func (r *transactionRepository) ForUser(userID uint) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.db.Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Preload("Product").
		Preload("Buyer").
		Preload("Seller").
		Order("created_at desc").
		Find(&txns).Error
	return txns, err
}

func (r *transactionRepository) All() ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.db.Preload("Buyer").
		Preload("Seller").
		Preload("Product").
		Order("created_at desc").
		Find(&txns).Error
	return txns, err
}

func (r *transactionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Transaction{}).Count(&count).Error
	return count, err
}

func (r *transactionRepository) Recent(limit int) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.db.Preload("Buyer").
		Preload("Seller").
		Preload("Product").
		Order("created_at desc").
		Limit(limit).
		Find(&txns).Error
	return txns, err
}
