// Package routes defines the API routing configuration.
// It wires repositories into services and services into handlers, then
// groups the HTTP routes and applies authentication middleware.
package routes

import (
	"uniwise/internal/blockchain"
	"uniwise/internal/gateway"
	"uniwise/internal/handlers"
	"uniwise/internal/middleware"
	"uniwise/internal/repositories"
	"uniwise/internal/services/admin"
	"uniwise/internal/services/auth"
	"uniwise/internal/services/chat"
	"uniwise/internal/services/payment"
	"uniwise/internal/services/product"
	"uniwise/internal/services/review"
	"uniwise/internal/services/user"
	"uniwise/internal/services/wishlist"
	"uniwise/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	// Repositories
	userRepo := repositories.NewUserRepository(repositories.DB, repositories.CacheService)
	productRepo := repositories.NewProductRepository(repositories.DB)
	txnRepo := repositories.NewTransactionRepository(repositories.DB)
	chatRepo := repositories.NewChatRepository(repositories.DB)
	reviewRepo := repositories.NewReviewRepository(repositories.DB)
	wishlistRepo := repositories.NewWishlistRepository(repositories.DB)

	// Services
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo, productRepo, reviewRepo)
	productService := product.NewService(productRepo, reviewRepo)
	paymentService := payment.NewService(productRepo, txnRepo, userRepo, gateway.NewClient(), blockchain.NewVerifier())
	chatService := chat.NewService(chatRepo, productRepo)
	reviewService := review.NewService(reviewRepo, productRepo, userRepo)
	wishlistService := wishlist.NewService(wishlistRepo, productRepo)
	adminService := admin.NewService(userRepo, productRepo, txnRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	chatHandler := handlers.NewChatHandler(chatService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	adminHandler := handlers.NewAdminHandler(adminService)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Uniwise API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	// Uploaded product and profile images
	app.Static("/uploads", utils.UploadDir)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/refresh", authHandler.RefreshToken)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)
	api.Get("/reviews/seller/:sellerId", reviewHandler.GetSellerReviews)
	api.Get("/reviews/product/:productId", reviewHandler.GetProductReviews)

	protected := api.Use(authMiddleware.Handler)

	setupAuthRoutes(protected, authHandler)
	setupUserRoutes(protected, userHandler)
	setupProductRoutes(protected, productHandler)
	setupChatRoutes(protected, chatHandler)
	setupPaymentRoutes(protected, paymentHandler)
	setupReviewRoutes(protected, reviewHandler)
	setupWishlistRoutes(protected, wishlistHandler)
	setupAdminRoutes(protected, adminHandler)
}

func setupAuthRoutes(router fiber.Router, h *handlers.AuthHandler) {
	authGroup := router.Group("/auth")
	authGroup.Get("/me", h.Me)
	authGroup.Post("/blockchain-verification", h.ApplyBlockchainVerification)
}

func setupUserRoutes(router fiber.Router, h *handlers.UserHandler) {
	users := router.Group("/users")
	users.Get("/profile", h.GetProfile)
	users.Put("/profile", h.UpdateProfile)
	users.Get("/purchases", h.GetPurchases)
	users.Get("/sales", h.GetSales)
	users.Get("/listings", h.GetListings)
	users.Get("/:id", h.GetUserByID)
}

func setupProductRoutes(router fiber.Router, h *handlers.ProductHandler) {
	products := router.Group("/products")
	products.Post("/", h.Create)
	products.Put("/:id", h.Update)
	products.Put("/:id/mark-sold", h.MarkSold)
	products.Delete("/:id", h.Delete)
}

func setupChatRoutes(router fiber.Router, h *handlers.ChatHandler) {
	chats := router.Group("/chat")
	chats.Post("/", h.AccessChat)
	chats.Get("/", h.FetchChats)
	chats.Post("/message", h.SendMessage)
	chats.Get("/:chatId/messages", h.GetMessages)
}

func setupPaymentRoutes(router fiber.Router, h *handlers.PaymentHandler) {
	payments := router.Group("/payment")
	payments.Post("/razorpay", h.CreateOrder)
	payments.Post("/razorpay/verify", h.VerifyPayment)
	payments.Post("/crypto", middleware.BlockchainVerified, h.ProcessCryptoPayment)
	payments.Get("/transactions", h.GetTransactions)
}

func setupReviewRoutes(router fiber.Router, h *handlers.ReviewHandler) {
	reviews := router.Group("/reviews")
	reviews.Post("/", h.Create)
	reviews.Get("/user", h.GetUserReviews)
}

func setupWishlistRoutes(router fiber.Router, h *handlers.WishlistHandler) {
	wishlist := router.Group("/wishlist")
	wishlist.Post("/", h.Add)
	wishlist.Get("/", h.Get)
	wishlist.Get("/check/:productId", h.Check)
	wishlist.Delete("/:productId", h.Remove)
}

func setupAdminRoutes(router fiber.Router, h *handlers.AdminHandler) {
	adminGroup := router.Group("/admin", middleware.AdminOnly)

	adminGroup.Get("/users", h.GetUsers)
	adminGroup.Get("/users/:id", h.GetUserByID)
	adminGroup.Put("/users/:id/blacklist", h.Blacklist)
	adminGroup.Put("/users/:id/unblacklist", h.Unblacklist)
	adminGroup.Put("/users/:id/approve-blockchain", h.ApproveVerification)
	adminGroup.Put("/users/:id/reject-blockchain", h.RejectVerification)
	adminGroup.Get("/blockchain-verifications", h.GetPendingVerifications)
	adminGroup.Get("/transactions", h.GetAllTransactions)
	adminGroup.Get("/dashboard", h.GetDashboard)
}
