package repo

import (
	"GiftKeeper/internal/model"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов
// репозитория. Имя базы уникально на тест, пул ограничен одним соединением,
// чтобы конкурентные записи сериализовались, а не падали с busy.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(&model.User{}, &model.GiftList{}, &model.GiftItem{}, &model.SharedList{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

// mkUser создаёт пользователя с уникальными логином и email.
func mkUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{Username: username, Password: "hash", Email: username + "@example.com"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return u
}

// mkList создаёт список для владельца.
func mkList(t *testing.T, db *gorm.DB, ownerID int64, title string) *model.GiftList {
	t.Helper()
	l := &model.GiftList{UserID: ownerID, Title: title, Type: model.ListTypeBirthday}
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("failed to create list %q: %v", title, err)
	}
	return l
}

// mkItem создаёт подарок в списке.
func mkItem(t *testing.T, db *gorm.DB, listID int64, name string, position int) *model.GiftItem {
	t.Helper()
	it := &model.GiftItem{ListID: listID, Name: name, Priority: model.PriorityMedium, Position: position}
	if err := db.Create(it).Error; err != nil {
		t.Fatalf("failed to create item %q: %v", name, err)
	}
	return it
}

// mkShare выдаёт грант пользователю на список.
func mkShare(t *testing.T, db *gorm.DB, listID, userID, sharedBy int64) *model.SharedList {
	t.Helper()
	s := &model.SharedList{ListID: listID, UserID: userID, SharedBy: sharedBy}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("failed to create share: %v", err)
	}
	return s
}

var testCtx = context.Background()
