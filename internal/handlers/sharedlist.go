package handlers

import (
	"GiftKeeper/internal/middleware"
	"GiftKeeper/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// SharedListHandler обрабатывает выдачу и просмотр грантов.
type SharedListHandler struct {
	Service *service.SharedListService
	Logger  *zap.SugaredLogger
}

// NewSharedListHandler создаёт хендлер грантов
func NewSharedListHandler(s *service.SharedListService, logger *zap.SugaredLogger) *SharedListHandler {
	return &SharedListHandler{Service: s, Logger: logger}
}

type shareRequest struct {
	Username string `json:"username"`
}

// List — GET /api/shared-lists: гранты пользователя вместе со списками.
func (h *SharedListHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	infos, err := h.Service.ListForUser(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("List shared lists failed", "user_id", userID, "error", err)
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, infos)
}

// Share — POST /api/gift-lists/{listId}/share: владелец выдаёт грант по username.
func (h *SharedListHandler) Share(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	listID, err := urlID(r, "listId")
	if err != nil {
		http.Error(w, "invalid list id", http.StatusBadRequest)
		return
	}

	var req shareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	share, err := h.Service.Share(r.Context(), userID, listID, req.Username)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, share)
}
