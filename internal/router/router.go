package router

import (
	"net/http"
	"time"

	"bat-go/internal/config"
	"bat-go/internal/handlers"
	"bat-go/internal/models"
	"bat-go/internal/utils"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Try again later."})
}

func Setup(log *zap.Logger, instrument *models.Instrument) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	secret := config.Conf.Server.SessionSecret
	if secret == "" {
		// Sessions will not survive a restart without a configured secret.
		generated, err := utils.GenerateSecureToken(32)
		if err != nil {
			log.Fatal("Failed to generate session secret", zap.Error(err))
		}
		log.Warn("No session secret configured, using an ephemeral one")
		secret = generated
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("batsession", store))
	router.Use(UserLoaderMiddleware(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
	})

	// Handlers and routes
	authHandler := handlers.NewAuthHandler(log)
	assessmentHandler := handlers.NewAssessmentHandler(log, instrument)
	userHandler := handlers.NewUserHandler(log)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	api := router.Group("/api")

	api.GET("/questions", assessmentHandler.Questions)
	api.POST("/register", limiter, authHandler.Register)
	api.POST("/login", limiter, authHandler.Login)
	api.POST("/logout", authHandler.Logout)

	authorized := api.Group("/")
	authorized.Use(AuthRequired())
	{
		assessmentRoutes := authorized.Group("/assessments")
		{
			assessmentRoutes.POST("", assessmentHandler.Submit)
			assessmentRoutes.GET("/latest", assessmentHandler.Latest)
			assessmentRoutes.GET("/history", assessmentHandler.History)
			assessmentRoutes.GET("/trend", assessmentHandler.Trend)
			assessmentRoutes.GET("/trend/chart", assessmentHandler.TrendChart)
		}

		profileRoutes := authorized.Group("/profile")
		{
			profileRoutes.POST("/password", userHandler.UpdatePassword)
			profileRoutes.POST("/notifications", userHandler.UpdateNotificationSettings)
			profileRoutes.DELETE("", userHandler.DeleteAccount)
		}
	}

	return router
}
