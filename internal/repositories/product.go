package repositories

import (
	"uniwise/internal/models"

	"gorm.io/gorm"
)

// ProductRepository is the persistence surface for listings.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetByIDWithSeller(id uint) (*models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
	MarkSold(id uint, buyerID *uint) error
	List(filter models.ProductFilter, limit, offset int) ([]models.Product, int64, error)
	UnsoldBySeller(sellerID uint, limit int) ([]models.Product, error)
	SoldBySeller(sellerID uint) ([]models.Product, error)
	PurchasedBy(buyerID uint) ([]models.Product, error)
	CountAll() (int64, error)
	CountSold() (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByIDWithSeller(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Seller").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// MarkSold flips an unsold product to sold. The conditional update keeps the
// first-write-wins guarantee shared with CompleteSale: zero rows affected
// means the product was already sold and ErrProductAlreadySold is returned.
func (r *productRepository) MarkSold(id uint, buyerID *uint) error {
	updates := map[string]interface{}{"is_sold": true}
	if buyerID != nil {
		updates["buyer_id"] = *buyerID
	}

	res := r.db.Model(&models.Product{}).
		Where("id = ? AND is_sold = ?", id, false).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductAlreadySold
	}
	return nil
}

// List returns unsold listings matching the filter, newest first, with the
// total match count for pagination.
func (r *productRepository) List(filter models.ProductFilter, limit, offset int) ([]models.Product, int64, error) {
	q := r.db.Model(&models.Product{}).Where("is_sold = ?", false)

	if filter.Keyword != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Keyword+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Condition != "" {
		q = q.Where("condition = ?", filter.Condition)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := q.Preload("Seller").
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&products).Error
	return products, total, err
}

func (r *productRepository) UnsoldBySeller(sellerID uint, limit int) ([]models.Product, error) {
	var products []models.Product
	q := r.db.Where("seller_id = ? AND is_sold = ?", sellerID, false).
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepository) SoldBySeller(sellerID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("seller_id = ? AND is_sold = ?", sellerID, true).
		Preload("Buyer").
		Order("updated_at desc").
		Find(&products).Error
	return products, err
}

func (r *productRepository) PurchasedBy(buyerID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("buyer_id = ? AND is_sold = ?", buyerID, true).
		Preload("Seller").
		Order("updated_at desc").
		Find(&products).Error
	return products, err
}

func (r *productRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepository) CountSold() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("is_sold = ?", true).Count(&count).Error
	return count, err
}
