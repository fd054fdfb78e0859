// Package db owns the GORM connection lifecycle. The pool is created once in
// main and injected downward; nothing reaches for a global handle.
package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/akshit1742/portfolio-api/internal/models"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Bio{},
		&models.ContactInfo{},
		&models.Skill{},
		&models.Project{},
		&models.Experience{},
		&models.Education{},
		&models.Certification{},
	)
}

func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
