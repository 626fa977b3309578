package handlers

import (
	"GiftKeeper/internal/middleware"
	"GiftKeeper/internal/service"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// GiftListHandler обрабатывает CRUD списков подарков.
type GiftListHandler struct {
	Service *service.GiftListService
	Logger  *zap.SugaredLogger
}

// NewGiftListHandler создаёт хендлер списков
func NewGiftListHandler(s *service.GiftListService, logger *zap.SugaredLogger) *GiftListHandler {
	return &GiftListHandler{Service: s, Logger: logger}
}

type giftListRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Type        *string    `json:"type"`
	EventDate   *time.Time `json:"eventDate"`
}

// List — GET /api/gift-lists: собственные списки пользователя.
func (h *GiftListHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	lists, err := h.Service.ListForOwner(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("List gift lists failed", "user_id", userID, "error", err)
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

// Get — GET /api/gift-lists/{id}: список для владельца или грантополучателя.
func (h *GiftListHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	listID, err := urlID(r, "id")
	if err != nil {
		http.Error(w, "invalid list id", http.StatusBadRequest)
		return
	}

	list, err := h.Service.Get(r.Context(), userID, listID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Create — POST /api/gift-lists.
func (h *GiftListHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req giftListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	create := service.CreateListRequest{EventDate: req.EventDate}
	if req.Title != nil {
		create.Title = *req.Title
	}
	if req.Description != nil {
		create.Description = *req.Description
	}
	if req.Type != nil {
		create.Type = *req.Type
	}

	list, err := h.Service.Create(r.Context(), userID, create)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

// Update — PUT /api/gift-lists/{id}: только владелец.
func (h *GiftListHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	listID, err := urlID(r, "id")
	if err != nil {
		http.Error(w, "invalid list id", http.StatusBadRequest)
		return
	}

	var req giftListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	list, err := h.Service.Update(r.Context(), userID, listID, service.UpdateListRequest{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		EventDate:   req.EventDate,
	})
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Delete — DELETE /api/gift-lists/{id}: каскадное удаление владельцем.
func (h *GiftListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	listID, err := urlID(r, "id")
	if err != nil {
		http.Error(w, "invalid list id", http.StatusBadRequest)
		return
	}

	if err := h.Service.Delete(r.Context(), userID, listID); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
