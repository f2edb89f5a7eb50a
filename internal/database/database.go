package database

import (
	"fmt"
	"time"

	"healthcare-hub-backend/internal/config"
	"healthcare-hub-backend/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect initializes and returns a GORM database connection
func Connect(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Database,
	)

	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.GinMode == "release" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get database instance")
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.RefreshToken{},
		&models.AdminActivityLog{},
		&models.Doctor{},
		&models.Room{},
		&models.Ambulance{},
		&models.Appointment{},
		&models.RoomBooking{},
		&models.AmbulanceRequest{},
		&models.Payment{},
		&models.Notification{},
	); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	log.Info().Str("database", cfg.Database.Database).Msg("Successfully connected to database")

	return db
}
