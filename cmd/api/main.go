package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"salonbooking/internal/config"
	"salonbooking/internal/database"
	"salonbooking/internal/middleware"
	"salonbooking/internal/modules/auth"
	"salonbooking/internal/modules/catalog"
	"salonbooking/internal/modules/enrollment"
	"salonbooking/internal/modules/schedule"
	jwtsvc "salonbooking/internal/pkg/jwt"
	"salonbooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	productRepo := repository.NewProductRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	classRepo := repository.NewCourseClassRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j, cfg.AdminEmail)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(serviceRepo, productRepo, courseRepo, classRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	scheduleService := schedule.NewService(appointmentRepo, serviceRepo)
	scheduleHandler := schedule.NewHandler(scheduleService)

	enrollmentService := enrollment.NewService(classRepo, enrollmentRepo)
	enrollmentHandler := enrollment.NewHandler(enrollmentService)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		scheduleHandler.RegisterPublicRoutes(v1)
		enrollmentHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				catalogHandler.RegisterAdminRoutes(admin)
				scheduleHandler.RegisterAdminRoutes(admin)
			}

			client := protected.Group("/")
			client.Use(middleware.ClientOnly())
			{
				scheduleHandler.RegisterClientRoutes(client)
				enrollmentHandler.RegisterClientRoutes(client)
			}
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
