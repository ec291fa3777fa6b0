// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/sooqhub/sooq-backend/internal/catalogs"
	"github.com/sooqhub/sooq-backend/internal/communication"
	"github.com/sooqhub/sooq-backend/internal/config"
	"github.com/sooqhub/sooq-backend/internal/database"
	"github.com/sooqhub/sooq-backend/internal/events"
	"github.com/sooqhub/sooq-backend/internal/handlers"
	"github.com/sooqhub/sooq-backend/internal/mediator"
	"github.com/sooqhub/sooq-backend/internal/middleware"
	"github.com/sooqhub/sooq-backend/internal/otp"
	"github.com/sooqhub/sooq-backend/internal/payments"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/shoppings"
	"github.com/sooqhub/sooq-backend/internal/storage"
	"github.com/sooqhub/sooq-backend/internal/users"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

// Initialize wires repositories, use-case handlers and routes. The caller
// owns the event publisher and the OTP store so it can close them on
// shutdown.
func Initialize(db *gorm.DB, cfg *config.Config, publisher events.Publisher, codes otp.Store) (*gin.Engine, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	utils.SetJWTSecret(cfg.JWT.SecretKey)

	storageService, err := storage.NewService(cfg)
	if err != nil {
		return nil, err
	}

	m := buildMediator(db, cfg, publisher, codes)

	authHandler := handlers.NewAuthHandler(m)
	userHandler := handlers.NewUserHandler(m, storageService)
	catalogHandler := handlers.NewCatalogHandler(m, storageService)
	cartHandler := handlers.NewCartHandler(m)
	orderHandler := handlers.NewOrderHandler(m)
	paymentHandler := handlers.NewPaymentHandler(m)
	communicationHandler := handlers.NewCommunicationHandler(m)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger())
	engine.Use(middleware.CORS())
	engine.Use(middleware.I18nMiddleware())
	engine.Use(middleware.GeneralRateLimit())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.Environment == "development" {
		engine.Static("/uploads", "./uploads")
	}

	v1 := engine.Group("/v1")

	auth := v1.Group("/auth")
	auth.Use(middleware.AuthRateLimit())
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
		auth.POST("/otp/request", authHandler.RequestLoginCode)
		auth.POST("/otp/verify", authHandler.VerifyLoginCode)
	}

	me := v1.Group("/users/me")
	me.Use(middleware.AuthRequired())
	{
		me.GET("", userHandler.GetProfile)
		me.PUT("", userHandler.UpdateProfile)
		me.POST("/avatar", middleware.UploadRateLimit(), userHandler.UploadAvatar)

		me.GET("/favorites", userHandler.ListFavorites)
		me.POST("/favorites", userHandler.AddFavorite)
		me.GET("/favorites/:itemId", userHandler.IsFavorite)
		me.DELETE("/favorites/:itemId", userHandler.RemoveFavorite)
		me.GET("/favorites/:itemId/item", userHandler.ResolveFavorite)
	}

	items := v1.Group("/items")
	{
		items.GET("", catalogHandler.ListItems)
		items.POST("/media", middleware.AuthRequired(), middleware.UploadRateLimit(), catalogHandler.UploadItemMedia)
		items.GET("/:id", catalogHandler.GetItemDetails)
		items.GET("/:id/resolve", catalogHandler.ResolveItem)
		items.GET("/:id/comments", communicationHandler.ListComments)
		items.GET("/:id/reviews", communicationHandler.ListReviews)
	}

	products := v1.Group("/products")
	{
		products.GET("/:id", catalogHandler.GetProduct)
		products.POST("", middleware.AuthRequired(), catalogHandler.CreateProduct)
		products.PUT("/:id", middleware.AuthRequired(), catalogHandler.UpdateProduct)
		products.DELETE("/:id", middleware.AuthRequired(), catalogHandler.DeleteProduct)
		products.POST("/:id/stock", middleware.AuthRequired(), catalogHandler.AdjustProductStock)
	}

	services := v1.Group("/services")
	{
		services.GET("/:id", catalogHandler.GetService)
		services.POST("", middleware.AuthRequired(), catalogHandler.CreateService)
	}

	brands := v1.Group("/brands")
	{
		brands.GET("", catalogHandler.ListBrands)
		brands.POST("", middleware.AuthRequired(), catalogHandler.CreateBrand)
		brands.DELETE("/:id", middleware.AuthRequired(), catalogHandler.DeleteBrand)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", catalogHandler.ListCategories)
		categories.POST("", middleware.AuthRequired(), catalogHandler.CreateCategory)
	}

	cart := v1.Group("/cart")
	cart.Use(middleware.AuthRequired())
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:id", cartHandler.UpdateItem)
		cart.DELETE("/items/:id", cartHandler.RemoveItem)
		cart.POST("/checkout", cartHandler.Checkout)
	}

	orders := v1.Group("/orders")
	orders.Use(middleware.AuthRequired())
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/activities", orderHandler.ListActivities)
		orders.GET("/:id/payment", paymentHandler.GetPaymentForOrder)
		orders.POST("/:id/cancel", orderHandler.CancelOrder)
		orders.POST("/:id/ship", orderHandler.MarkShipped)
		orders.POST("/:id/deliver", orderHandler.MarkDelivered)
	}

	v1.GET("/payment-methods", paymentHandler.ListPaymentMethods)

	pays := v1.Group("/payments")
	pays.Use(middleware.AuthRequired())
	{
		pays.POST("", paymentHandler.CreatePayment)
		pays.POST("/:id/confirm", paymentHandler.ConfirmPayment)
		pays.POST("/:id/refund", paymentHandler.RefundPayment)
	}

	comments := v1.Group("/comments")
	comments.Use(middleware.AuthRequired())
	{
		comments.POST("", communicationHandler.CreateComment)
		comments.PUT("/:id", communicationHandler.UpdateComment)
		comments.DELETE("/:id", communicationHandler.DeleteComment)
	}

	v1.POST("/reviews", middleware.AuthRequired(), communicationHandler.CreateReview)

	conversations := v1.Group("/conversations")
	conversations.Use(middleware.AuthRequired())
	{
		conversations.GET("", communicationHandler.ListConversations)
		conversations.POST("", communicationHandler.StartConversation)
		conversations.GET("/:id/messages", communicationHandler.ListMessages)
		conversations.POST("/:id/messages", communicationHandler.SendMessage)
		conversations.POST("/:id/read", communicationHandler.MarkConversationRead)
	}

	return engine, nil
}

// buildMediator constructs every repository and use-case handler and
// registers them. Registration panics on duplicates, so a wiring mistake
// fails at startup rather than at request time.
func buildMediator(db *gorm.DB, cfg *config.Config, publisher events.Publisher, codes otp.Store) *mediator.Mediator {
	uow := database.NewUnitOfWork(db)

	userRepo := repository.NewUserRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	baseItemRepo := repository.NewBaseItemRepository(db)
	productRepo := repository.NewProductRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	featureRepo := repository.NewFeatureRepository(db)
	cartRepo := repository.NewCartRepository(db)
	cartItemRepo := repository.NewCartItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	activityRepo := repository.NewOrderActivityRepository(db)
	contentRepo := repository.NewBaseContentRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	paymentMethodRepo := repository.NewPaymentMethodRepository(db)

	resolver := catalogs.NewItemResolver(productRepo, serviceRepo)

	var gateway payments.Gateway
	if cfg.Payment.StripeSecretKey != "" {
		gateway = payments.NewStripeGateway(cfg.Payment.StripeSecretKey, cfg.Payment.Currency)
	} else {
		logrus.Warn("Stripe is not configured, payments use the offline gateway")
		gateway = payments.NewOfflineGateway()
	}

	tokens := users.TokenConfig{
		AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
	}

	m := mediator.New()

	// Catalogs
	mediator.RegisterFunc(m, catalogs.NewCreateProductHandler(baseItemRepo, productRepo, categoryRepo, brandRepo, mediaRepo, featureRepo, uow).Handle)
	mediator.RegisterFunc(m, catalogs.NewUpdateProductHandler(baseItemRepo, productRepo, uow).Handle)
	mediator.RegisterFunc(m, catalogs.NewDeleteProductHandler(baseItemRepo, productRepo, uow).Handle)
	mediator.RegisterFunc(m, catalogs.NewAdjustProductStockHandler(productRepo).Handle)
	mediator.RegisterFunc(m, catalogs.NewGetProductByIDHandler(baseItemRepo, productRepo).Handle)
	mediator.RegisterFunc(m, catalogs.NewCreateServiceHandler(baseItemRepo, serviceRepo, categoryRepo, mediaRepo, featureRepo, uow).Handle)
	mediator.RegisterFunc(m, catalogs.NewGetServiceByIDHandler(baseItemRepo, serviceRepo).Handle)
	mediator.RegisterFunc(m, catalogs.NewCreateBrandHandler(brandRepo).Handle)
	mediator.RegisterFunc(m, catalogs.NewDeleteBrandHandler(brandRepo).Handle)
	mediator.RegisterFunc(m, catalogs.NewListBrandsHandler(brandRepo).Handle)
	mediator.RegisterFunc(m, catalogs.NewCreateCategoryHandler(categoryRepo).Handle)
	mediator.RegisterFunc(m, catalogs.NewListCategoriesHandler(categoryRepo).Handle)
	mediator.RegisterFunc(m, catalogs.NewListCatalogItemsHandler(baseItemRepo).Handle)
	mediator.RegisterFunc(m, catalogs.NewResolveItemHandler(resolver).Handle)
	mediator.RegisterFunc(m, catalogs.NewGetBaseItemIDByProductIDHandler(productRepo).Handle)
	mediator.RegisterFunc(m, catalogs.NewGetBaseItemIDByServiceIDHandler(serviceRepo).Handle)
	mediator.RegisterFunc(m, catalogs.NewGetItemDetailsByBaseItemIDHandler(baseItemRepo, resolver).Handle)

	// Shoppings
	mediator.RegisterFunc(m, shoppings.NewAddToCartHandler(cartRepo, cartItemRepo, baseItemRepo, productRepo, resolver, uow).Handle)
	mediator.RegisterFunc(m, shoppings.NewUpdateCartItemQuantityHandler(cartRepo, cartItemRepo, productRepo, resolver).Handle)
	mediator.RegisterFunc(m, shoppings.NewRemoveFromCartHandler(cartRepo, cartItemRepo).Handle)
	mediator.RegisterFunc(m, shoppings.NewGetActiveCartHandler(cartRepo).Handle)
	mediator.RegisterFunc(m, shoppings.NewCheckoutHandler(cartRepo, cartItemRepo, orderRepo, orderItemRepo, activityRepo, baseItemRepo, productRepo, resolver, uow, publisher).Handle)
	mediator.RegisterFunc(m, shoppings.NewGetOrderByIDHandler(orderRepo).Handle)
	mediator.RegisterFunc(m, shoppings.NewListUserOrdersHandler(orderRepo).Handle)
	mediator.RegisterFunc(m, shoppings.NewListOrderActivitiesHandler(orderRepo, activityRepo).Handle)
	mediator.RegisterFunc(m, shoppings.NewCancelOrderHandler(orderRepo, activityRepo, resolver, uow, m, publisher).Handle)
	mediator.RegisterFunc(m, shoppings.NewMarkOrderShippedHandler(orderRepo, activityRepo, uow, publisher).Handle)
	mediator.RegisterFunc(m, shoppings.NewMarkOrderDeliveredHandler(orderRepo, activityRepo, uow, publisher).Handle)

	// Users
	mediator.RegisterFunc(m, users.NewRegisterHandler(userRepo, tokens).Handle)
	mediator.RegisterFunc(m, users.NewLoginHandler(userRepo, tokens).Handle)
	mediator.RegisterFunc(m, users.NewRefreshTokenHandler(userRepo, tokens).Handle)
	mediator.RegisterFunc(m, users.NewRequestLoginCodeHandler(userRepo, codes).Handle)
	mediator.RegisterFunc(m, users.NewVerifyLoginCodeHandler(userRepo, codes, tokens).Handle)
	mediator.RegisterFunc(m, users.NewGetProfileHandler(userRepo).Handle)
	mediator.RegisterFunc(m, users.NewUpdateProfileHandler(userRepo).Handle)
	mediator.RegisterFunc(m, users.NewAddFavoriteHandler(favoriteRepo, resolver).Handle)
	mediator.RegisterFunc(m, users.NewRemoveFavoriteHandler(favoriteRepo, resolver).Handle)
	mediator.RegisterFunc(m, users.NewIsFavoriteHandler(favoriteRepo, resolver).Handle)
	mediator.RegisterFunc(m, users.NewListFavoritesHandler(favoriteRepo).Handle)
	mediator.RegisterFunc(m, users.NewGetItemIDByFavoriteIDHandler(favoriteRepo, resolver).Handle)
	mediator.RegisterFunc(m, users.NewGetItemOwnerHandler(baseItemRepo, resolver).Handle)

	// Communication
	mediator.RegisterFunc(m, communication.NewCreateCommentHandler(commentRepo, contentRepo, attachmentRepo, resolver, uow).Handle)
	mediator.RegisterFunc(m, communication.NewUpdateCommentHandler(commentRepo, contentRepo).Handle)
	mediator.RegisterFunc(m, communication.NewDeleteCommentHandler(commentRepo, contentRepo, uow).Handle)
	mediator.RegisterFunc(m, communication.NewListCommentsHandler(commentRepo).Handle)
	mediator.RegisterFunc(m, communication.NewCreateReviewHandler(reviewRepo, contentRepo, baseItemRepo, resolver, uow).Handle)
	mediator.RegisterFunc(m, communication.NewListReviewsHandler(reviewRepo).Handle)
	mediator.RegisterFunc(m, communication.NewStartConversationHandler(conversationRepo, baseItemRepo, resolver).Handle)
	mediator.RegisterFunc(m, communication.NewSendMessageHandler(conversationRepo, messageRepo).Handle)
	mediator.RegisterFunc(m, communication.NewMarkConversationReadHandler(conversationRepo, messageRepo).Handle)
	mediator.RegisterFunc(m, communication.NewListConversationsHandler(conversationRepo).Handle)
	mediator.RegisterFunc(m, communication.NewListMessagesHandler(conversationRepo, messageRepo).Handle)

	// Payments
	mediator.RegisterFunc(m, payments.NewCreatePaymentHandler(paymentRepo, paymentMethodRepo, orderRepo, gateway).Handle)
	mediator.RegisterFunc(m, payments.NewConfirmPaymentHandler(paymentRepo, orderRepo, activityRepo, gateway, uow, publisher).Handle)
	mediator.RegisterFunc(m, payments.NewRefundPaymentHandler(paymentRepo, orderRepo, activityRepo, gateway, uow, resolver, m).Handle)
	mediator.RegisterFunc(m, payments.NewGetPaymentForOrderHandler(paymentRepo, orderRepo).Handle)
	mediator.RegisterFunc(m, payments.NewListPaymentMethodsHandler(paymentMethodRepo).Handle)

	return m
}
