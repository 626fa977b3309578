package service

import (
	"GiftKeeper/internal/model"
	"GiftKeeper/internal/repo"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// GiftListService — операции над списками подарков с проверкой прав.
type GiftListService struct {
	lists  repo.GiftListRepository
	shares repo.SharedListRepository
}

func NewGiftListService(lists repo.GiftListRepository, shares repo.SharedListRepository) *GiftListService {
	return &GiftListService{lists: lists, shares: shares}
}

// hasShare — есть ли у userID активный грант на listID.
func (s *GiftListService) hasShare(ctx context.Context, listID, userID int64) (bool, error) {
	_, err := s.shares.GetByListAndUser(ctx, listID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListForOwner возвращает собственные списки пользователя.
func (s *GiftListService) ListForOwner(ctx context.Context, userID int64) ([]model.GiftList, error) {
	return s.lists.GetByUserID(ctx, userID)
}

// Get возвращает список, если userID — владелец или держатель гранта.
func (s *GiftListService) Get(ctx context.Context, userID, listID int64) (*model.GiftList, error) {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if list.UserID != userID {
		shared, err := s.hasShare(ctx, listID, userID)
		if err != nil {
			return nil, err
		}
		if !CanReadList(userID, list, shared) {
			return nil, ErrForbidden
		}
	}
	return list, nil
}

// CreateListRequest — данные нового списка.
type CreateListRequest struct {
	Title       string
	Description string
	Type        string
	EventDate   *time.Time
}

// Create создаёт список с владельцем userID.
func (s *GiftListService) Create(ctx context.Context, userID int64, req CreateListRequest) (*model.GiftList, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || !model.ValidListType(req.Type) {
		return nil, ErrValidation
	}
	return s.lists.Create(ctx, &model.GiftList{
		UserID:      userID,
		Title:       title,
		Description: req.Description,
		Type:        req.Type,
		EventDate:   req.EventDate,
	})
}

// UpdateListRequest — частичное обновление; nil-поля не трогаются.
type UpdateListRequest struct {
	Title       *string
	Description *string
	Type        *string
	EventDate   *time.Time
}

// Update меняет список; разрешено только владельцу.
func (s *GiftListService) Update(ctx context.Context, userID, listID int64, req UpdateListRequest) (*model.GiftList, error) {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !CanWriteList(userID, list) {
		return nil, ErrForbidden
	}

	updates := map[string]any{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrValidation
		}
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Type != nil {
		if !model.ValidListType(*req.Type) {
			return nil, ErrValidation
		}
		updates["type"] = *req.Type
	}
	if req.EventDate != nil {
		updates["event_date"] = *req.EventDate
	}
	if len(updates) == 0 {
		return list, nil
	}

	return s.lists.Update(ctx, listID, updates)
}

// Delete удаляет список владельца вместе с подарками и грантами.
func (s *GiftListService) Delete(ctx context.Context, userID, listID int64) error {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !CanWriteList(userID, list) {
		return ErrForbidden
	}

	ok, err := s.lists.Delete(ctx, listID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
