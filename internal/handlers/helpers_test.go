package handlers_test

import (
	"GiftKeeper/internal/config"
	"GiftKeeper/internal/handlers"
	"GiftKeeper/internal/middleware"
	"GiftKeeper/internal/model"
	"GiftKeeper/internal/repo"
	"GiftKeeper/internal/service"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const testSecret = "test-secret"

// testEnv — роутер поверх живых репозиториев на in-memory SQLite.
type testEnv struct {
	router http.Handler
	db     *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.User{}, &model.GiftList{}, &model.GiftItem{}, &model.SharedList{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}

	cfg := &config.Config{AuthSecret: testSecret}
	logger := zap.NewNop().Sugar()

	userRepo := repo.NewUserRepository(db)
	listRepo := repo.NewGiftListRepository(db)
	itemRepo := repo.NewGiftItemRepository(db)
	shareRepo := repo.NewSharedListRepository(db)

	h := handlers.NewHandler(
		service.NewUserService(userRepo),
		service.NewGiftListService(listRepo, shareRepo),
		service.NewGiftItemService(itemRepo, listRepo, shareRepo),
		service.NewSharedListService(shareRepo, listRepo, userRepo),
		logger,
		cfg,
	)
	return &testEnv{router: h.Router, db: db}
}

// mkUser создаёт пользователя напрямую в базе (пароль "secret").
func (e *testEnv) mkUser(t *testing.T, username string) *model.User {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	u := &model.User{Username: username, Password: string(hash), Email: username + "@example.com"}
	if err := e.db.Create(u).Error; err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return u
}

func (e *testEnv) mkList(t *testing.T, ownerID int64, title string) *model.GiftList {
	t.Helper()
	l := &model.GiftList{UserID: ownerID, Title: title, Type: model.ListTypeBirthday}
	if err := e.db.Create(l).Error; err != nil {
		t.Fatalf("failed to create list %q: %v", title, err)
	}
	return l
}

func (e *testEnv) mkItem(t *testing.T, listID int64, name string, position int) *model.GiftItem {
	t.Helper()
	it := &model.GiftItem{ListID: listID, Name: name, Priority: model.PriorityMedium, Position: position}
	if err := e.db.Create(it).Error; err != nil {
		t.Fatalf("failed to create item %q: %v", name, err)
	}
	return it
}

func (e *testEnv) mkShare(t *testing.T, listID, userID, sharedBy int64) *model.SharedList {
	t.Helper()
	s := &model.SharedList{ListID: listID, UserID: userID, SharedBy: sharedBy}
	if err := e.db.Create(s).Error; err != nil {
		t.Fatalf("failed to create share: %v", err)
	}
	return s
}

// addAuthCookie подписывает запрос cookie-токеном userID.
func addAuthCookie(t *testing.T, req *http.Request, userID int64) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, testSecret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// do выполняет запрос от имени userID (0 — аноним) с JSON-телом body.
func (e *testEnv) do(t *testing.T, userID int64, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		addAuthCookie(t, req, userID)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// decode разбирает JSON-тело ответа в v.
func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
}
