// Seeds the database with sample users, listings, chats, transactions,
// reviews and wishlist entries for local development. Destructive: it wipes
// everything except admin accounts first. Run cmd/admin_seed before this.
package main

import (
	"context"
	"log"
	"time"

	"uniwise/internal/config"
	"uniwise/internal/models"
	"uniwise/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				sqlDB.Close()
			}
		}
		if repositories.CacheService != nil {
			repositories.CacheService.Close()
		}
	}()

	var admin models.User
	if err := repositories.DB.Where("is_admin = ?", true).First(&admin).Error; err != nil {
		log.Fatal("Admin user not found, run cmd/admin_seed first:", err)
	}

	log.Println("Clearing existing data...")
	clearAll()

	log.Println("Creating test users...")
	wallet := "123456789012345"
	user1 := createUser(models.User{
		Name:       "John Doe",
		Email:      "john@pccegoa.edu.in",
		Department: "Computer Science",
		Year:       "Third Year",
		Division:   "A",
		Location:   "Hostel Block A",
	})
	user2 := createUser(models.User{
		Name:                         "Emily Smith",
		Email:                        "emily@pccegoa.edu.in",
		Department:                   "Electronics",
		Year:                         "Second Year",
		Division:                     "B",
		Location:                     "Campus Library",
		IsBlockchainVerified:         true,
		BlockchainVerificationStatus: models.VerificationApproved,
		WalletID:                     &wallet,
	})
	user3 := createUser(models.User{
		Name:            "Michael Brown",
		Email:           "michael@pccegoa.edu.in",
		Department:      "Mechanical",
		Year:            "Fourth Year",
		Division:        "C",
		Location:        "Off Campus",
		IsBlacklisted:   true,
		BlacklistReason: "Violation of terms of service",
	})

	log.Println("Creating products...")
	createProduct(user1, "Data Structures Textbook", models.CategoryBooks,
		"Slightly used textbook for Data Structures course", 450, models.ConditionSlightlyUsed)
	product2 := createProduct(user1, "Scientific Calculator", models.CategoryElectronics,
		"Casio scientific calculator, barely used", 750, models.ConditionLikeNew)
	product3 := createProduct(user1, "Lab Coat", models.CategoryOthers,
		"White lab coat, size M", 300, models.ConditionNew)
	product4 := createProduct(user2, "Arduino Kit", models.CategoryElectronics,
		"Complete Arduino starter kit with components", 1200, models.ConditionNew)
	product5 := createProduct(user2, "Engineering Drawing Tools", models.CategoryProjectMaterials,
		"Complete set of drawing tools", 600, models.ConditionUsed)
	product6 := createProduct(user3, "Physics Notes", models.CategoryBooks,
		"Handwritten notes for Physics I and II", 200, models.ConditionUsed)
	createProduct(user3, "Mechanical Tools Set", models.CategoryProjectMaterials,
		"Basic mechanical tools for projects", 850, models.ConditionSlightlyUsed)

	log.Println("Creating chats and messages...")
	createChat(user1, user2, product4,
		message(user1, "Hi, is the Arduino Kit still available?", true),
		message(user2, "Yes, it is. Are you interested in buying it?", true),
		message(user1, "Definitely! Can we meet tomorrow at the canteen?", true),
		message(user2, "Sure, let's meet at 2 PM", false),
	)
	createChat(user2, user3, product6,
		message(user2, "Are these notes comprehensive?", true),
		message(user3, "Yes, they cover the entire syllabus", false),
	)

	log.Println("Creating transactions...")
	completeSale(user1, product5)
	completeSale(user2, product3)

	log.Println("Creating reviews...")
	createReview(user1, product5, 5, "Great quality tools and fast delivery!")
	createReview(user2, product3, 4, "Good quality lab coat, as described")

	log.Println("Creating wishlists...")
	createWishlistItem(user1, product4)
	createWishlistItem(user1, product6)
	createWishlistItem(user2, product2)

	if repositories.CacheService != nil {
		if err := repositories.CacheService.FlushAll(context.Background()); err != nil {
			log.Printf("⚠️ Failed to flush cache: %v", err)
		}
	}

	log.Println("✅ Database seeded successfully!")
}

// clearAll hard-deletes everything except admin accounts.
func clearAll() {
	db := repositories.DB.Unscoped().Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []interface{}{
		&models.Message{},
		&models.Chat{},
		&models.Review{},
		&models.WishlistItem{},
		&models.Transaction{},
		&models.Product{},
	} {
		if err := db.Delete(model).Error; err != nil {
			log.Fatal("Failed to clear table:", err)
		}
	}
	if err := repositories.DB.Unscoped().Where("is_admin = ?", false).Delete(&models.User{}).Error; err != nil {
		log.Fatal("Failed to clear users:", err)
	}
}

func createUser(user models.User) *models.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}
	user.Password = string(hashed)
	user.ProfileImage = "default-profile.jpg"
	if user.BlockchainVerificationStatus == "" {
		user.BlockchainVerificationStatus = models.VerificationNotApplied
	}

	if err := repositories.DB.Create(&user).Error; err != nil {
		log.Fatal("Failed to create user:", err)
	}
	return &user
}

func createProduct(seller *models.User, name, category, description string, price float64, condition string) *models.Product {
	product := models.Product{
		Name:          name,
		SellerID:      seller.ID,
		Category:      category,
		Description:   description,
		Price:         price,
		Images:        models.StringList{"uploads/default-product.jpg"},
		Condition:     condition,
		Location:      seller.Location,
		AcceptsCrypto: seller.IsBlockchainVerified,
	}

	if err := repositories.DB.Create(&product).Error; err != nil {
		log.Fatal("Failed to create product:", err)
	}
	return &product
}

type seedMessage struct {
	sender *models.User
	text   string
	read   bool
}

func message(sender *models.User, text string, read bool) seedMessage {
	return seedMessage{sender: sender, text: text, read: read}
}

func createChat(a, b *models.User, about *models.Product, messages ...seedMessage) {
	one, two := models.NormalizePair(a.ID, b.ID)
	chat := models.Chat{
		ParticipantOneID: one,
		ParticipantTwoID: two,
		ProductID:        &about.ID,
		IsActive:         true,
	}
	if err := repositories.DB.Create(&chat).Error; err != nil {
		log.Fatal("Failed to create chat:", err)
	}

	var lastID uint
	for _, m := range messages {
		msg := models.Message{
			ChatID:   chat.ID,
			SenderID: m.sender.ID,
			Content:  m.text,
			IsRead:   m.read,
		}
		if m.read {
			now := time.Now()
			msg.ReadAt = &now
		}
		if err := repositories.DB.Create(&msg).Error; err != nil {
			log.Fatal("Failed to create message:", err)
		}
		lastID = msg.ID
	}

	if err := repositories.DB.Model(&chat).Update("last_message_id", lastID).Error; err != nil {
		log.Fatal("Failed to set last message:", err)
	}
}

func completeSale(buyer *models.User, product *models.Product) {
	txn := models.Transaction{
		BuyerID:       buyer.ID,
		SellerID:      product.SellerID,
		ProductID:     product.ID,
		Amount:        product.Price,
		PaymentMethod: models.PaymentMethodRazorpay,
		PaymentID:     "pay_" + uuid.NewString(),
		Status:        models.TransactionCompleted,
	}
	if err := repositories.DB.Create(&txn).Error; err != nil {
		log.Fatal("Failed to create transaction:", err)
	}

	product.IsSold = true
	product.BuyerID = &buyer.ID
	product.TransactionID = &txn.ID
	if err := repositories.DB.Save(product).Error; err != nil {
		log.Fatal("Failed to mark product sold:", err)
	}
}

func createReview(buyer *models.User, product *models.Product, rating int, comment string) {
	review := models.Review{
		UserID:    buyer.ID,
		SellerID:  product.SellerID,
		ProductID: product.ID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := repositories.DB.Create(&review).Error; err != nil {
		log.Fatal("Failed to create review:", err)
	}
}

func createWishlistItem(user *models.User, product *models.Product) {
	item := models.WishlistItem{
		UserID:    user.ID,
		ProductID: product.ID,
	}
	if err := repositories.DB.Create(&item).Error; err != nil {
		log.Fatal("Failed to create wishlist item:", err)
	}
}
