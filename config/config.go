package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/appleman9709/bcb-with-db/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// databaseDSN собирает строку подключения из environment variables.
// DATABASE_URL имеет приоритет, иначе DSN собирается из DB_*.
func databaseDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	// Managed-хостинги требуют TLS
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		if strings.Contains(host, "supabase.co") || strings.Contains(host, "render.com") {
			sslmode = "require"
		} else {
			sslmode = "disable"
		}
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Bangkok",
		host, user, password, dbname, port, sslmode)
}

// OpenDatabase подключается к Postgres и прогоняет автомиграцию схемы.
// Handle возвращается вызывающему, глобального состояния здесь нет.
func OpenDatabase() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Family{},
		&models.FamilyMember{},
		&models.Feeding{},
		&models.Diaper{},
		&models.Bath{},
		&models.Activity{},
		&models.SleepSession{},
		&models.Settings{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}
