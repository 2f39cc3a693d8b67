package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"placehub/internal/config"
	"placehub/internal/database"
	"placehub/internal/middleware"
	"placehub/internal/modules/catalog"
	"placehub/internal/modules/events"
	"placehub/internal/modules/favorites"
	"placehub/internal/modules/location"
	"placehub/internal/modules/moderation"
	"placehub/internal/modules/review"
	"placehub/internal/pkg/assets"
	jwtsvc "placehub/internal/pkg/jwt"
	"placehub/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	subRepo := repository.NewSubmissionRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := events.NewHub()
	defer hub.Close()

	photoStore, err := assets.NewDiskStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatal(err)
	}

	moderationService := moderation.NewService(subRepo, hub)
	moderationHandler := moderation.NewHandler(moderationService, photoStore)

	catalogService := catalog.NewService(placeRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reviewService := review.NewService(reviewRepo, placeRepo)
	reviewHandler := review.NewHandler(reviewService)

	favoritesHandler := favorites.NewHandler(favoriteRepo, placeRepo)

	geoClient := location.NewClient(cfg.GeoEndpoint, cfg.GeoTimeout)
	locationSessions := location.NewSessions(geoClient, cfg.GeoTimeout)
	locationHandler := location.NewHandler(locationSessions)

	eventsHandler := events.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.Static(cfg.UploadBaseURL, cfg.UploadDir)

	v1 := r.Group("/api/v1")
	{
		// public
		public := v1.Group("/")
		catalogHandler.RegisterRoutes(public)
		reviewHandler.RegisterRoutes(public, nil)
		eventsHandler.RegisterRoutes(public)

		// identity optional: reads vary by user, writes check for a bound one
		optional := v1.Group("/")
		optional.Use(middleware.OptionalAuth(j))
		favoritesHandler.RegisterRoutes(optional)
		locationHandler.RegisterRoutes(optional)

		// identity required
		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))
		moderationHandler.RegisterRoutes(protected, nil)
		reviewHandler.RegisterRoutes(nil, protected)

		// moderator only
		moderator := v1.Group("/")
		moderator.Use(middleware.RequireAuth(j), middleware.ModeratorOnly())
		moderationHandler.RegisterRoutes(nil, moderator)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
