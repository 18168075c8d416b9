package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gemvault_backend/internal/handlers"
	"gemvault_backend/internal/middleware"
	"gemvault_backend/internal/models"
)

// SetupRoutes регистрирует все маршруты API
func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	referenceHandler *handlers.ReferenceHandler,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")

	// Аутентификация (публичные)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/verify-email", authHandler.VerifyEmail)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	// Пользователи
	users := api.Group("/users")
	{
		// Публичные: каталог огранщиков и просмотр портфолио
		users.GET("/cutters", userHandler.GetAllCutters)
		users.GET("/cutters/:id", userHandler.GetCutter)
		users.GET("/cutters/:id/portfolio", userHandler.GetPortfolio)
		users.GET("/:id/portfolio", userHandler.GetPortfolio)

		authed := users.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/me", userHandler.GetMe)
			authed.GET("/:id", userHandler.GetUser)
			authed.PUT("/:id", userHandler.UpdateUser)
			authed.DELETE("/:id", userHandler.DeleteUser)
			authed.POST("/me/change-password", userHandler.ChangePassword)

			// Ролевые профили, каждый маршрут закрыт своей ролью
			authed.PUT("/me/cutter-profile",
				middleware.RequireRoles(string(models.RoleCutter)),
				userHandler.UpdateCutterProfile)
			authed.PUT("/me/dealer-profile",
				middleware.RequireRoles(string(models.RoleDealer)),
				userHandler.UpdateDealerProfile)
			authed.PUT("/me/appraiser-profile",
				middleware.RequireRoles(string(models.RoleAppraiser)),
				userHandler.UpdateAppraiserProfile)

			// Портфолио, только для огранщиков
			portfolio := authed.Group("/me/portfolio", middleware.RequireRoles(string(models.RoleCutter)))
			{
				portfolio.POST("", userHandler.AddPortfolioItem)
				portfolio.PUT("/:itemId", userHandler.UpdatePortfolioItem)
				portfolio.DELETE("/:itemId", userHandler.DeletePortfolioItem)
			}
		}
	}

	// Маршруты /user/* - контракт клиента в единственном числе,
	// дублируют соответствующие /users/*
	user := api.Group("/user")
	{
		user.GET("/cutters", userHandler.GetAllCutters)
		user.GET("/cutters/:id", userHandler.GetCutter)
		user.GET("/cutters/:id/portfolio", userHandler.GetPortfolio)

		authed := user.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/profile", userHandler.GetMe)
			authed.PUT("/profile", userHandler.UpdateMe)
			authed.POST("/change-password", userHandler.ChangePassword)

			portfolio := authed.Group("/portfolio", middleware.RequireRoles(string(models.RoleCutter)))
			{
				portfolio.POST("", userHandler.AddPortfolioItem)
				portfolio.PUT("/:itemId", userHandler.UpdatePortfolioItem)
				portfolio.DELETE("/:itemId", userHandler.DeletePortfolioItem)
			}
		}
	}

	// Справочные данные
	reference := api.Group("/reference")
	{
		reference.GET("/gemstone-families", referenceHandler.ListFamilies)
		reference.GET("/gemstone-families/:id", referenceHandler.GetFamily)
		reference.GET("/cutting-skills", referenceHandler.ListSkills)

		admin := reference.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(string(models.RoleAdmin)))
		{
			admin.POST("/gemstone-families", referenceHandler.CreateFamily)
			admin.PUT("/gemstone-families/:id", referenceHandler.UpdateFamily)
			admin.DELETE("/gemstone-families/:id", referenceHandler.DeleteFamily)
		}
	}
}
