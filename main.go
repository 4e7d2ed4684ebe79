package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/masalamart/masalamart-api/config"
	"github.com/masalamart/masalamart-api/controllers"
	"github.com/masalamart/masalamart-api/middleware"
	"github.com/masalamart/masalamart-api/repository"
	"github.com/masalamart/masalamart-api/routes"
	"github.com/masalamart/masalamart-api/services"
	"github.com/masalamart/masalamart-api/utils"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	// Set the JWT signing key before any token is issued or parsed.
	utils.JwtKey = []byte(cfg.JWTSecret)

	// Connect to MongoDB
	client, err := repository.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithError(err).Error("failed to disconnect from mongodb")
		}
	}()

	db := client.Database(cfg.MongoDB)
	if err := repository.EnsureIndexes(context.Background(), db); err != nil {
		log.WithError(err).Fatal("failed to create indexes")
	}

	// Wire repositories, services and controllers.
	emailService := utils.NewEmailService(cfg.SendgridAPIKey, cfg.EmailSender)
	otpStore := utils.NewOneTimeCredentialStore()

	notificationCenter := services.NewNotificationCenter(repository.NewNotificationRepository(db))
	cartManager := services.NewCartManager(repository.NewCartRepository(db))
	rewardLedger := services.NewRewardLedger(repository.NewRewardRepository(db), notificationCenter)
	wishlistManager := services.NewWishlistManager(repository.NewWishlistRepository(db))
	blogService := services.NewBlogService(repository.NewBlogRepository(db))

	var mailer services.Mailer
	if emailService != nil {
		mailer = emailService
	} else {
		log.Warn("SENDGRID_API_KEY not set, transactional email disabled")
	}
	authService := services.NewAuthService(repository.NewUserRepository(db), mailer, otpStore, cfg.OTPTTL)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)
	router.Use(middleware.CORS(splitOrigins(cfg.AllowedOrigins)))

	routes.RegisterRoutes(router, routes.Controllers{
		Auth:         controllers.NewAuthController(authService),
		Cart:         controllers.NewCartController(cartManager),
		Reward:       controllers.NewRewardController(rewardLedger),
		Notification: controllers.NewNotificationController(notificationCenter),
		Wishlist:     controllers.NewWishlistController(wishlistManager),
		Blog:         controllers.NewBlogController(blogService),
		Reference:    controllers.NewReferenceController(),
	})

	log.WithField("port", cfg.Port).Info("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
