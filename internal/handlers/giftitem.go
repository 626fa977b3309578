package handlers

import (
	"GiftKeeper/internal/middleware"
	"GiftKeeper/internal/repo"
	"GiftKeeper/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// GiftItemHandler обрабатывает CRUD подарков, бронь и переупорядочивание.
type GiftItemHandler struct {
	Service *service.GiftItemService
	Logger  *zap.SugaredLogger
}

// NewGiftItemHandler создаёт хендлер подарков
func NewGiftItemHandler(s *service.GiftItemService, logger *zap.SugaredLogger) *GiftItemHandler {
	return &GiftItemHandler{Service: s, Logger: logger}
}

type giftItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	Link        *string `json:"link"`
	ImageURL    *string `json:"imageUrl"`
}

type reorderRequest struct {
	Items []repo.PositionUpdate `json:"items"`
}

// List — GET /api/gift-lists/{listId}/items: подарки в порядке position.
func (h *GiftItemHandler) List(w http.ResponseWriter, r *http.Request) {
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

	items, err := h.Service.List(r.Context(), userID, listID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Create — POST /api/gift-lists/{listId}/items: только владелец;
// позиция — текущее число подарков в списке.
func (h *GiftItemHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req giftItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	create := service.CreateItemRequest{}
	if req.Name != nil {
		create.Name = *req.Name
	}
	if req.Description != nil {
		create.Description = *req.Description
	}
	if req.Price != nil {
		create.Price = *req.Price
	}
	if req.Category != nil {
		create.Category = *req.Category
	}
	if req.Priority != nil {
		create.Priority = *req.Priority
	}
	if req.Link != nil {
		create.Link = *req.Link
	}
	if req.ImageURL != nil {
		create.ImageURL = *req.ImageURL
	}

	item, err := h.Service.Create(r.Context(), userID, listID, create)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Update — PUT /api/gift-items/{id}: только владелец родительского списка.
func (h *GiftItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	itemID, err := urlID(r, "id")
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	var req giftItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	item, err := h.Service.Update(r.Context(), userID, itemID, service.UpdateItemRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Priority:    req.Priority,
		Link:        req.Link,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete — DELETE /api/gift-items/{id}: только владелец родительского списка.
func (h *GiftItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	itemID, err := urlID(r, "id")
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	if err := h.Service.Delete(r.Context(), userID, itemID); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Claim — POST /api/gift-items/{id}/claim: условная бронь.
func (h *GiftItemHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	itemID, err := urlID(r, "id")
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	item, err := h.Service.Claim(r.Context(), userID, itemID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Unclaim — POST /api/gift-items/{id}/unclaim: снятие брони claimant-ом.
func (h *GiftItemHandler) Unclaim(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	itemID, err := urlID(r, "id")
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	item, err := h.Service.Unclaim(r.Context(), userID, itemID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Reorder — POST /api/gift-lists/{listId}/items/reorder: батч позиций
// применяется целиком или не применяется вовсе.
func (h *GiftItemHandler) Reorder(w http.ResponseWriter, r *http.Request) {
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

	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid items array", http.StatusBadRequest)
		return
	}

	items, err := h.Service.Reorder(r.Context(), userID, listID, req.Items)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
