package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/lapor-desu/api-go/config"
	"github.com/lapor-desu/api-go/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := seedData(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete! Lapor Desu is ready.")
}

// seedData resets the schema and loads the demo fixtures. Running it again
// always yields the same fresh state.
func seedData(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&models.Report{}, &models.Category{}, &models.User{}); err != nil {
		return err
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Report{}); err != nil {
		return err
	}
	log.Println("Schema reset, tables recreated")

	// Default password for all seeded accounts: password123
	pwHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{Name: "Admin Desu", Email: "admin@desu.com", Password: string(pwHash), Role: models.RoleAdmin}
	warga1 := models.User{Name: "Ujang Lapor", Email: "ujang@warga.com", Password: string(pwHash), Role: models.RoleReporter}
	warga2 := models.User{Name: "Siti Netizen", Email: "siti@warga.com", Password: string(pwHash), Role: models.RoleReporter}

	if err := db.Create(&[]*models.User{&admin, &warga1, &warga2}).Error; err != nil {
		return err
	}
	log.Println("Users created")

	catJalan := models.Category{Name: "Jalan Rusak", IconURL: strPtr("/icons/road-marker.png")}
	catBanjir := models.Category{Name: "Banjir", IconURL: strPtr("/icons/flood-marker.png")}
	catLampu := models.Category{Name: "Lampu Mati", IconURL: strPtr("/icons/lamp-marker.png")}
	catSampah := models.Category{Name: "Sampah Liar", IconURL: strPtr("/icons/trash-marker.png")}

	if err := db.Create(&[]*models.Category{&catJalan, &catBanjir, &catLampu, &catSampah}).Error; err != nil {
		return err
	}
	log.Println("Categories created")

	// Demo reports around Bandung
	reports := []*models.Report{
		{
			Title:       "Lubang Besar Depan Gedung Sate",
			Description: "Bahaya banget buat motor, tolong segera diperbaiki desu!",
			Latitude:    -6.902481,
			Longitude:   107.618810,
			ImageURL:    strPtr("https://placehold.co/600x400?text=Jalan+Rusak"),
			Status:      models.StatusPending,
			UserID:      warga1.ID,
			CategoryID:  catJalan.ID,
		},
		{
			Title:       "Banjir di Pagarsih",
			Description: "Air sudah naik setinggi lutut orang dewasa.",
			Latitude:    -6.924652,
			Longitude:   107.595460,
			ImageURL:    strPtr("https://placehold.co/600x400?text=Banjir"),
			Status:      models.StatusVerified,
			UserID:      warga2.ID,
			CategoryID:  catBanjir.ID,
		},
		{
			Title:       "Lampu PJU Mati di Dago",
			Description: "Gelap gulita rawan begal.",
			Latitude:    -6.886071,
			Longitude:   107.615206,
			ImageURL:    strPtr("https://placehold.co/600x400?text=Lampu+Mati"),
			Status:      models.StatusResolved,
			UserID:      warga1.ID,
			CategoryID:  catLampu.ID,
		},
		{
			Title:       "Tumpukan Sampah Alun-Alun",
			Description: "Bau menyengat ganggu turis.",
			Latitude:    -6.921851,
			Longitude:   107.604829,
			ImageURL:    strPtr("https://placehold.co/600x400?text=Sampah"),
			Status:      models.StatusPending,
			UserID:      warga2.ID,
			CategoryID:  catSampah.ID,
		},
	}

	if err := db.Create(&reports).Error; err != nil {
		return err
	}
	log.Println("Reports created (Bandung area)")

	return nil
}

func strPtr(s string) *string {
	return &s
}
