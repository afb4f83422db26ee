package main

import (
	"log"
	"os"
	"time"

	"salonbooking/internal/database"
	"salonbooking/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "salon.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Service{},
		&domain.Product{},
		&domain.Course{},
		&domain.CourseClass{},
		&domain.CourseEnrollment{},
		&domain.Appointment{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// cleanup in FK-safe order
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM course_enrollments")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM course_classes")
	db.Exec("DELETE FROM courses")
	db.Exec("DELETE FROM products")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@salon.example.com"
	}

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal(err)
	}

	clientHash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
	client := domain.User{
		Name:         "Maria Silva",
		Email:        "maria@example.com",
		PasswordHash: string(clientHash),
		Role:         domain.RoleClient,
	}
	if err := db.Create(&client).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("Creating catalog...")

	services := []domain.Service{
		{Name: "Haircut", Description: "Cut and finish", Price: 80, Duration: 45},
		{Name: "Coloring", Description: "Full coloring", Price: 250, Duration: 120},
		{Name: "Manicure", Description: "Classic manicure", Price: 50, Duration: 40},
	}
	for i := range services {
		if err := db.Create(&services[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	products := []domain.Product{
		{Name: "Repair Shampoo", Description: "300ml", Price: 45.90, Stock: 24},
		{Name: "Hydration Mask", Description: "500g", Price: 89.90, Stock: 12},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	course := domain.Course{
		Title:       "Blow-dry basics",
		Description: "Intro video course",
		YoutubeURL:  "https://youtube.com/watch?v=seed-course",
		Published:   true,
	}
	if err := db.Create(&course).Error; err != nil {
		log.Fatal(err)
	}

	class := domain.CourseClass{
		Name:               "Advanced coloring workshop",
		Description:        "In-person, bring your own kit",
		Price:              480,
		EnrollmentDeadline: time.Now().Add(14 * 24 * time.Hour),
		Vacancies:          10,
	}
	if err := db.Create(&class).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("Creating appointment slots...")

	tomorrow := time.Now().Add(24 * time.Hour)
	day := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.UTC)
	for hour := 9; hour < 12; hour++ {
		slot := domain.Appointment{
			ServiceID: services[0].ID,
			Date:      day,
			StartTime: day.Add(time.Duration(hour) * time.Hour),
			EndTime:   day.Add(time.Duration(hour) * time.Hour).Add(45 * time.Minute),
			Status:    domain.AppointmentAvailable,
		}
		if err := db.Create(&slot).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed complete.")
	log.Printf("Admin login: %s / admin123", adminEmail)
	log.Println("Client login: maria@example.com / client123")
}
