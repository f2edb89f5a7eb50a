package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthcare-hub-backend/internal/config"
	"healthcare-hub-backend/internal/database"
	"healthcare-hub-backend/internal/handler"
	"healthcare-hub-backend/internal/middleware"
	"healthcare-hub-backend/internal/repository"
	"healthcare-hub-backend/internal/service"
	"healthcare-hub-backend/pkg/logger"
	"healthcare-hub-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Initialize structured logging
	log := logger.New(cfg.Server.GinMode != "release")
	log.Info().Msg("Configuration loaded successfully")

	// 3. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 4. Initialize database connection
	db := database.Connect(cfg, log)

	// 5. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	adminRepo := repository.NewAdminRepo(db)
	activityLogRepo := repository.NewActivityLogRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	ambulanceRepo := repository.NewAmbulanceRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	requestRepo := repository.NewAmbulanceRequestRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	reportRepo := repository.NewReportRepo(db)

	// 6. Initialize services
	authService := service.NewAuthService(adminRepo, activityLogRepo)
	userService := service.NewUserService(userRepo, activityLogRepo)
	adminService := service.NewAdminService(adminRepo, activityLogRepo)
	doctorService := service.NewDoctorService(doctorRepo, activityLogRepo)
	roomService := service.NewRoomService(roomRepo, activityLogRepo)
	ambulanceService := service.NewAmbulanceService(ambulanceRepo, activityLogRepo)
	bookingService := service.NewBookingService(bookingRepo, notificationRepo, activityLogRepo)
	requestService := service.NewAmbulanceRequestService(requestRepo, notificationRepo, activityLogRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, notificationRepo, activityLogRepo)
	paymentService := service.NewPaymentService(paymentRepo, notificationRepo, activityLogRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	reportService := service.NewReportService(reportRepo)

	// 7. Setup Gin mode and router
	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(adminService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	roomHandler := handler.NewRoomHandler(roomService, bookingService)
	ambulanceHandler := handler.NewAmbulanceHandler(ambulanceService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	requestHandler := handler.NewAmbulanceRequestHandler(requestService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	reportHandler := handler.NewReportHandler(reportService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, "OK", gin.H{
			"status":  "healthy",
			"service": "healthcare-hub-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// API routes (authenticated)
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		users := api.Group("/users")
		{
			users.GET("", userHandler.GetAllUsers)
			users.GET("/:id", userHandler.GetUser)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", middleware.RequireRole("admin"), userHandler.DeleteUser)
		}

		admins := api.Group("/admins")
		admins.Use(middleware.RequireRole("admin"))
		{
			admins.GET("", adminHandler.GetAllAdmins)
			admins.GET("/:id", adminHandler.GetAdmin)
			admins.GET("/:id/activity-logs", adminHandler.GetActivityLogs)
			admins.POST("", adminHandler.CreateAdmin)
			admins.PUT("/:id", adminHandler.UpdateAdmin)
			admins.DELETE("/:id", adminHandler.DeleteAdmin)
		}

		doctors := api.Group("/doctors")
		{
			doctors.GET("", doctorHandler.GetAllDoctors)
			doctors.GET("/:id", doctorHandler.GetDoctor)
			doctors.POST("", middleware.RequireRole("admin"), doctorHandler.CreateDoctor)
			doctors.PUT("/:id", middleware.RequireRole("admin"), doctorHandler.UpdateDoctor)
			doctors.DELETE("/:id", middleware.RequireRole("admin"), doctorHandler.DeleteDoctor)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", roomHandler.GetAllRooms)
			rooms.GET("/available", roomHandler.SearchAvailableRooms)
			rooms.GET("/:id", roomHandler.GetRoom)
			rooms.POST("", middleware.RequireRole("admin"), roomHandler.CreateRoom)
			rooms.PUT("/:id", middleware.RequireRole("admin"), roomHandler.UpdateRoom)
			rooms.DELETE("/:id", middleware.RequireRole("admin"), roomHandler.DeleteRoom)
		}

		ambulances := api.Group("/ambulances")
		{
			ambulances.GET("", ambulanceHandler.GetAllAmbulances)
			ambulances.GET("/available", ambulanceHandler.SearchAvailableAmbulances)
			ambulances.GET("/:id", ambulanceHandler.GetAmbulance)
			ambulances.POST("", middleware.RequireRole("admin"), ambulanceHandler.CreateAmbulance)
			ambulances.PUT("/:id", middleware.RequireRole("admin"), ambulanceHandler.UpdateAmbulance)
			ambulances.DELETE("/:id", middleware.RequireRole("admin"), ambulanceHandler.DeleteAmbulance)
		}

		bookings := api.Group("/room-bookings")
		{
			bookings.GET("", bookingHandler.GetAllBookings)
			bookings.GET("/:id", bookingHandler.GetBooking)
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.PUT("/:id", bookingHandler.UpdateBooking)
			bookings.POST("/:id/confirm", bookingHandler.ConfirmBooking)
			bookings.POST("/:id/checkin", bookingHandler.CheckinBooking)
			bookings.POST("/:id/checkout", bookingHandler.CheckoutBooking)
			bookings.DELETE("/:id", middleware.RequireRole("admin"), bookingHandler.DeleteBooking)
		}

		requests := api.Group("/ambulance-requests")
		{
			requests.GET("", requestHandler.GetAllRequests)
			requests.GET("/emergencies/active", requestHandler.GetActiveEmergencies)
			requests.GET("/:id", requestHandler.GetRequest)
			requests.POST("", requestHandler.CreateRequest)
			requests.PUT("/:id", requestHandler.UpdateRequest)
			requests.POST("/:id/dispatch", requestHandler.DispatchRequest)
			requests.PUT("/:id/status", requestHandler.UpdateRequestStatus)
			requests.DELETE("/:id", middleware.RequireRole("admin"), requestHandler.DeleteRequest)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("", appointmentHandler.GetAllAppointments)
			appointments.GET("/:id", appointmentHandler.GetAppointment)
			appointments.POST("", appointmentHandler.CreateAppointment)
			appointments.PUT("/:id", appointmentHandler.UpdateAppointment)
			appointments.POST("/:id/confirm", appointmentHandler.ConfirmAppointment)
			appointments.DELETE("/:id", middleware.RequireRole("admin"), appointmentHandler.DeleteAppointment)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", paymentHandler.GetAllPayments)
			payments.GET("/:id", paymentHandler.GetPayment)
			payments.POST("", paymentHandler.CreatePayment)
			payments.PUT("/:id", paymentHandler.UpdatePayment)
			payments.POST("/:id/confirm", paymentHandler.ConfirmPayment)
			payments.DELETE("/:id", middleware.RequireRole("admin"), paymentHandler.DeletePayment)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.GetAllNotifications)
			notifications.GET("/:id", notificationHandler.GetNotification)
			notifications.GET("/unread-count/:user_id", notificationHandler.GetUnreadCount)
			notifications.POST("", notificationHandler.CreateNotification)
			notifications.POST("/bulk", notificationHandler.CreateBulkNotifications)
			notifications.POST("/:id/mark-read", notificationHandler.MarkRead)
			notifications.POST("/mark-all-read/:user_id", notificationHandler.MarkAllRead)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/dashboard", reportHandler.GetDashboard)
			reports.GET("/daily", reportHandler.GetDailyReport)
			reports.GET("/occupancy", reportHandler.GetOccupancyReport)
		}
	}

	// 10. Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
	log.Info().Msg("Server exited")
}
