package repo

import (
	"GiftKeeper/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает подключение к Postgres и применяет миграции моделей.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.GiftList{},
		&model.GiftItem{},
		&model.SharedList{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
