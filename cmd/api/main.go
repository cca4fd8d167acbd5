package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"accessplus/internal/database"
	"accessplus/internal/middleware"
	"accessplus/internal/modules/admin"
	"accessplus/internal/modules/auth"
	"accessplus/internal/modules/catalog"
	"accessplus/internal/modules/concierge"
	"accessplus/internal/modules/membership"
	"accessplus/internal/modules/notification"
	"accessplus/internal/modules/reservation"
	"accessplus/internal/pkg/genai"
	jwtsvc "accessplus/internal/pkg/jwt"
	"accessplus/internal/pkg/validator"
	"accessplus/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	ai := genai.New(os.Getenv("GENAI_API_KEY"), os.Getenv("GENAI_BASE_URL"))

	hub := notification.NewHub()
	defer hub.Close()

	notificationService := notification.NewService(notificationRepo, hub)
	notificationHandler := notification.NewHandler(notificationService, hub)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	membershipService := membership.NewService(
		userRepo,
		paymentRepo,
		&membership.SimulatedGateway{Latency: 300 * time.Millisecond},
		notificationService,
	)
	membershipHandler := membership.NewHandler(membershipService)

	catalogService := catalog.NewService(venueRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reservationService := reservation.NewService(reservationRepo, venueRepo, notificationService)
	reservationHandler := reservation.NewHandler(reservationService)

	adminService := admin.NewService(userRepo, venueRepo, reservationRepo, membershipService)
	adminHandler := admin.NewHandler(adminService)

	conciergeService := concierge.NewService(venueRepo, userRepo, ai, os.Getenv("GENAI_MODEL"))
	conciergeHandler := concierge.NewHandler(conciergeService)

	validator.RegisterCustom()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		membershipHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			membershipHandler.RegisterRoutes(protected)
			reservationHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			conciergeHandler.RegisterRoutes(protected)

			// venue dashboard
			venueGroup := protected.Group("/")
			venueGroup.Use(middleware.VenueOnly())
			{
				catalogHandler.RegisterVenueRoutes(venueGroup)
			}
			reservationHandler.RegisterVenueRoutes(protected)

			// admin
			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
				catalogHandler.RegisterAdminRoutes(adminGroup)
				conciergeHandler.RegisterAdminRoutes(adminGroup)
			}
		}
	}

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
