package handlers

import (
	"GiftKeeper/internal/config"
	"GiftKeeper/internal/middleware"
	"GiftKeeper/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и выход.
type UserHandler struct {
	Service *service.UserService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

// NewUserHandler создаёт хендлер пользователей
func NewUserHandler(s *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{Service: s, Logger: logger, Config: cfg}
}

type registerRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register создаёт пользователя и сразу логинит его (выставляет cookie).
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.Service.Register(r.Context(), service.RegisterRequest{
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	if err != nil {
		h.Logger.Warnw("Register failed", "username", req.Username, "error", err)
		serviceError(w, err)
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Register: failed to set cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Login проверяет пару логин/пароль и выставляет cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		serviceError(w, err)
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: failed to set cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Logout сбрасывает cookie авторизации.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w)
	w.WriteHeader(http.StatusOK)
}

// Current возвращает текущего пользователя по cookie.
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.Service.GetByID(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
