package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"finuel.backend/internal/interfaces/http/handlers"
	"finuel.backend/internal/interfaces/http/middleware"
	"finuel.backend/pkg/jwt"
)

type routeDeps struct {
	authHandler *handlers.AuthHandler
	userHandler *handlers.UserHandler
}

func newRouter(jwtService *jwt.JWTService, d routeDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", middleware.MetricsHandler())

	registerRoutes(r, jwtService, d)
	return r
}

func registerRoutes(r *gin.Engine, jwtService *jwt.JWTService, d routeDeps) {
	authGuard := middleware.AuthMiddleware(jwtService)

	// Auth routes
	auth := r.Group("/auth")
	{
		// Both route names are kept for older mobile clients.
		auth.POST("/signup", d.authHandler.Register)
		auth.POST("/register", d.authHandler.Register)
		auth.POST("/signin", d.authHandler.Login)
		auth.POST("/login", d.authHandler.Login)
		auth.POST("/forgot-password", d.authHandler.ForgotPassword)
		auth.POST("/reset-password", d.authHandler.ResetPassword)

		auth.POST("/send-email-verification", authGuard, d.authHandler.SendEmailVerification)
		auth.POST("/verify-email", authGuard, d.authHandler.VerifyEmail)
		auth.POST("/change-password", authGuard, d.authHandler.ChangePassword)
	}

	// User routes (protected)
	users := r.Group("/users")
	users.Use(authGuard)
	{
		users.GET("/me", d.userHandler.GetMe)
		users.PATCH("/me", d.userHandler.EditUser)
		users.POST("/me/payment-pin", d.userHandler.SetPaymentPin)
		users.POST("/me/authentication-pin", d.userHandler.SetAuthenticationPin)
		users.POST("/me/verify-authentication-pin", d.userHandler.VerifyAuthenticationPin)
		users.POST("/me/push-token", d.userHandler.AddPushToken)
		users.DELETE("/me/push-token", d.userHandler.RemovePushToken)
		users.PATCH("/me/settings", d.userHandler.UpdateSettings)
		users.POST("/me/employment-information", d.userHandler.SubmitEmploymentInformation)
		users.POST("/me/kyc", d.userHandler.SubmitKYC)
		users.GET("/me/loan-eligibility", d.userHandler.GetLoanEligibility)
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "finuel-backend",
			"version": "0.1.0",
		})
	})
}
