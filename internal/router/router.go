package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shoptalk/shoptalk-api/internal/config"
	"github.com/shoptalk/shoptalk-api/internal/handlers"
	"github.com/shoptalk/shoptalk-api/internal/middleware"
	"github.com/shoptalk/shoptalk-api/internal/repository"
	"github.com/shoptalk/shoptalk-api/internal/services"
	"gorm.io/gorm"
)

// New wires repositories, services, middleware and handlers onto a gin
// engine. All dependencies flow in through the arguments; nothing here
// reaches for globals.
func New(db *gorm.DB, cfg *config.Config) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	channelRepo := repository.NewChannelRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	productRepo := repository.NewProductRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	userService := services.NewUserService(userRepo)
	channelService := services.NewChannelService(channelRepo, userRepo)
	messageService := services.NewMessageService(messageRepo)
	permissionService := services.NewPermissionService(channelRepo)
	productService := services.NewProductService(productRepo)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)
	channelAuth := middleware.NewChannelAuthMiddleware(permissionService)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	channelHandler := handlers.NewChannelHandler(channelService)
	messageHandler := handlers.NewMessageHandler(messageService)
	productHandler := handlers.NewProductHandler(productService)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/signin", authHandler.SignIn)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		}

		users := api.Group("/users", authMiddleware.RequireAuth())
		{
			users.GET("/me", userHandler.GetProfile)
			users.PUT("/me", userHandler.UpdateProfile)
		}

		channels := api.Group("/channels", authMiddleware.RequireAuth())
		{
			channels.GET("", channelHandler.List)
			channels.POST("", channelHandler.Create)

			// Pagination is validated before the membership gate so an
			// oversized limit is a 400 regardless of channel state.
			channels.GET("/:id/messages", messageHandler.ValidateListQuery(), channelAuth.RequireMembership(), messageHandler.List)

			member := channels.Group("/:id", channelAuth.RequireMembership())
			{
				member.GET("", channelHandler.Get)
				member.PUT("", channelAuth.RequireAdmin("update this channel"), channelHandler.Update)
				member.DELETE("", channelAuth.RequireAdmin("delete this channel"), channelHandler.Delete)

				member.GET("/members", channelHandler.ListMembers)
				member.POST("/members", channelAuth.RequireAdmin("add members"), channelHandler.AddMembers)
				member.DELETE("/members/:userId", channelAuth.RequireAdmin("remove members"), channelHandler.RemoveMember)

				member.POST("/messages", messageHandler.Send)
			}
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
		}
		api.GET("/categories", productHandler.ListCategories)
	}

	return r
}
