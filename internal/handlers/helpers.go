package handlers

import (
	"GiftKeeper/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// writeJSON сериализует v в тело ответа со статусом status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// urlID извлекает числовой параметр пути.
func urlID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// statusFromError переводит доменную ошибку в HTTP-статус.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrAlreadyClaimed),
		errors.Is(err, service.ErrNotClaimed),
		errors.Is(err, service.ErrDuplicateShare),
		errors.Is(err, service.ErrSelfShare):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// serviceError отвечает текстом доменной ошибки; внутренние ошибки наружу
// не раскрываются.
func serviceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	http.Error(w, msg, status)
}
