package handlers

import (
	"GiftKeeper/internal/config"
	"GiftKeeper/internal/middleware"
	"GiftKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	listService *service.GiftListService,
	itemService *service.GiftItemService,
	shareService *service.SharedListService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	listHandler := NewGiftListHandler(listService, logger)
	itemHandler := NewGiftItemHandler(itemService, logger)
	shareHandler := NewSharedListHandler(shareService, logger)

	// Auth routes
	r.Post("/api/register", userHandler.Register)
	r.Post("/api/login", userHandler.Login)
	r.Post("/api/logout", userHandler.Logout)
	r.Get("/api/user", userHandler.Current)

	// Gift list routes
	r.Get("/api/gift-lists", listHandler.List)
	r.Post("/api/gift-lists", listHandler.Create)
	r.Get("/api/gift-lists/{id}", listHandler.Get)
	r.Put("/api/gift-lists/{id}", listHandler.Update)
	r.Delete("/api/gift-lists/{id}", listHandler.Delete)

	// Gift item routes
	r.Get("/api/gift-lists/{listId}/items", itemHandler.List)
	r.Post("/api/gift-lists/{listId}/items", itemHandler.Create)
	r.Post("/api/gift-lists/{listId}/items/reorder", itemHandler.Reorder)
	r.Put("/api/gift-items/{id}", itemHandler.Update)
	r.Delete("/api/gift-items/{id}", itemHandler.Delete)
	r.Post("/api/gift-items/{id}/claim", itemHandler.Claim)
	r.Post("/api/gift-items/{id}/unclaim", itemHandler.Unclaim)

	// Shared list routes
	r.Get("/api/shared-lists", shareHandler.List)
	r.Post("/api/gift-lists/{listId}/share", shareHandler.Share)

	return &Handler{Router: r}
}
