package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"placehub/internal/database"
	"placehub/internal/domain"
	jwtsvc "placehub/internal/pkg/jwt"
	"placehub/internal/repository"
)

func main() {
	db, err := database.Connect("places.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM places")
	db.Exec("DELETE FROM submissions")

	ctx := context.Background()
	subs := repository.NewSubmissionRepository(db)
	reviews := repository.NewReviewRepository(db)
	favorites := repository.NewFavoriteRepository(db)

	userID := "user-ana"
	modID := "mod-luisa"

	approved := []domain.Submission{
		{
			Name: "Café La Plaza", Category: "Cafe",
			Description: "Specialty coffee by the main square",
			Address:     "Cra 14 #18-20", Lat: 4.5351, Lon: -75.6790,
			OpensAt: "08:00", ClosesAt: "20:00",
			WorkingDays: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
			SubmittedBy: userID, SubmittedByName: "Ana Gómez",
		},
		{
			Name: "Panadería El Trigal", Category: "Bakery",
			Description: "Fresh bread and pandebono every morning",
			Address:     "Calle 21 #15-33", Lat: 4.5362, Lon: -75.6745,
			OpensAt: "06:00", ClosesAt: "19:00",
			WorkingDays: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			SubmittedBy: userID, SubmittedByName: "Ana Gómez",
		},
		{
			Name: "Ferretería Central", Category: "Hardware",
			Description: "Tools and building supplies",
			Address:     "Av Bolívar #12-04", Lat: 4.5310, Lon: -75.6822,
			OpensAt: "07:30", ClosesAt: "18:00",
			WorkingDays: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			SubmittedBy: userID, SubmittedByName: "Ana Gómez",
		},
	}

	var placeIDs []string
	for i := range approved {
		if err := subs.Create(ctx, &approved[i]); err != nil {
			log.Fatal("seed submission failed:", err)
		}
		place, err := subs.Approve(ctx, approved[i].ID, modID, "Luisa Mod")
		if err != nil {
			log.Fatal("seed approve failed:", err)
		}
		placeIDs = append(placeIDs, place.ID)
	}

	pending := &domain.Submission{
		Name: "Librería Páginas", Category: "Bookstore",
		Description: "Second-hand books and stationery",
		Address:     "Calle 19 #13-11", Lat: 4.5344, Lon: -75.6801,
		SubmittedBy: userID, SubmittedByName: "Ana Gómez",
	}
	if err := subs.Create(ctx, pending); err != nil {
		log.Fatal("seed pending submission failed:", err)
	}

	sampleReviews := []domain.Review{
		{PlaceID: placeIDs[0], UserID: "user-carlos", UserName: "Carlos Ruiz", UserInitials: "CR", Rating: 5, Comment: "Best coffee in town"},
		{PlaceID: placeIDs[0], UserID: "user-diana", UserName: "Diana Peña", UserInitials: "DP", Rating: 4, Comment: "Nice terrace"},
		{PlaceID: placeIDs[1], UserID: "user-carlos", UserName: "Carlos Ruiz", UserInitials: "CR", Rating: 4, Comment: "Great pandebono"},
	}
	for i := range sampleReviews {
		if err := reviews.Create(ctx, &sampleReviews[i]); err != nil {
			log.Fatal("seed review failed:", err)
		}
	}

	if _, err := favorites.Add(ctx, "user-carlos", placeIDs[0]); err != nil {
		log.Fatal("seed favorite failed:", err)
	}

	// Dev tokens for poking the API by hand
	j := jwtsvc.New("change-me-jwt-secret", 24*time.Hour)
	userToken, _ := j.GenerateToken(userID, "Ana Gómez", "user")
	modToken, _ := j.GenerateToken(modID, "Luisa Mod", "moderator")

	fmt.Println("Seed complete.")
	fmt.Println("user token:     ", userToken)
	fmt.Println("moderator token:", modToken)
}
