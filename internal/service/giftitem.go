package service

import (
	"GiftKeeper/internal/model"
	"GiftKeeper/internal/repo"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// GiftItemService — операции над подарками, включая бронь и переупорядочивание.
type GiftItemService struct {
	items  repo.GiftItemRepository
	lists  repo.GiftListRepository
	shares repo.SharedListRepository
}

func NewGiftItemService(
	items repo.GiftItemRepository,
	lists repo.GiftListRepository,
	shares repo.SharedListRepository,
) *GiftItemService {
	return &GiftItemService{items: items, lists: lists, shares: shares}
}

func (s *GiftItemService) getList(ctx context.Context, listID int64) (*model.GiftList, error) {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return list, nil
}

func (s *GiftItemService) getItem(ctx context.Context, itemID int64) (*model.GiftItem, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *GiftItemService) hasShare(ctx context.Context, listID, userID int64) (bool, error) {
	_, err := s.shares.GetByListAndUser(ctx, listID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List возвращает подарки списка в порядке position; доступ — владелец
// или держатель гранта.
func (s *GiftItemService) List(ctx context.Context, userID, listID int64) ([]model.GiftItem, error) {
	list, err := s.getList(ctx, listID)
	if err != nil {
		return nil, err
	}
	shared, err := s.hasShare(ctx, listID, userID)
	if err != nil {
		return nil, err
	}
	if !CanReadList(userID, list, shared) {
		return nil, ErrForbidden
	}
	return s.items.GetByListID(ctx, listID)
}

// CreateItemRequest — данные нового подарка.
type CreateItemRequest struct {
	Name        string
	Description string
	Price       string
	Category    string
	Priority    string
	Link        string
	ImageURL    string
}

// Create добавляет подарок в конец списка (position = текущее число
// подарков); разрешено только владельцу.
func (s *GiftItemService) Create(ctx context.Context, userID, listID int64, req CreateItemRequest) (*model.GiftItem, error) {
	list, err := s.getList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if !CanWriteList(userID, list) {
		return nil, ErrForbidden
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		return nil, ErrValidation
	}

	count, err := s.items.CountByListID(ctx, listID)
	if err != nil {
		return nil, err
	}

	return s.items.Create(ctx, &model.GiftItem{
		ListID:      listID,
		Name:        name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Priority:    priority,
		Link:        req.Link,
		ImageURL:    req.ImageURL,
		Position:    int(count),
	})
}

// UpdateItemRequest — частичное обновление подарка; nil-поля не трогаются.
// Поля брони этим путём менять нельзя.
type UpdateItemRequest struct {
	Name        *string
	Description *string
	Price       *string
	Category    *string
	Priority    *string
	Link        *string
	ImageURL    *string
}

// Update меняет подарок; разрешено только владельцу родительского списка.
func (s *GiftItemService) Update(ctx context.Context, userID, itemID int64, req UpdateItemRequest) (*model.GiftItem, error) {
	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	list, err := s.getList(ctx, item.ListID)
	if err != nil {
		return nil, err
	}
	if !CanWriteList(userID, list) {
		return nil, ErrForbidden
	}

	updates := map[string]any{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrValidation
		}
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Priority != nil {
		if !model.ValidPriority(*req.Priority) {
			return nil, ErrValidation
		}
		updates["priority"] = *req.Priority
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if len(updates) == 0 {
		return item, nil
	}

	return s.items.Update(ctx, itemID, updates)
}

// Delete удаляет подарок; разрешено только владельцу родительского списка.
func (s *GiftItemService) Delete(ctx context.Context, userID, itemID int64) error {
	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return err
	}
	list, err := s.getList(ctx, item.ListID)
	if err != nil {
		return err
	}
	if !CanWriteList(userID, list) {
		return ErrForbidden
	}

	ok, err := s.items.Delete(ctx, itemID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Claim бронирует подарок за userID: подарок свободен, userID не владелец
// списка и держит грант. Переход атомарен — при конкурирующих вызовах
// побеждает ровно один, остальные получают ErrAlreadyClaimed.
func (s *GiftItemService) Claim(ctx context.Context, userID, itemID int64) (*model.GiftItem, error) {
	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	list, err := s.getList(ctx, item.ListID)
	if err != nil {
		return nil, err
	}
	shared, err := s.hasShare(ctx, list.ID, userID)
	if err != nil {
		return nil, err
	}
	if err := CheckClaim(userID, item, list, shared); err != nil {
		return nil, err
	}

	ok, err := s.items.Claim(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// проверку выше прошли, но условный апдейт не сработал:
		// бронь перехватил конкурирующий запрос
		return nil, ErrAlreadyClaimed
	}
	return s.getItem(ctx, itemID)
}

// Unclaim снимает бронь; разрешено только текущему claimant-у.
func (s *GiftItemService) Unclaim(ctx context.Context, userID, itemID int64) (*model.GiftItem, error) {
	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := CheckUnclaim(userID, item); err != nil {
		return nil, err
	}

	ok, err := s.items.Unclaim(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotClaimed
	}
	return s.getItem(ctx, itemID)
}

// Reorder применяет батч позиций целиком; разрешено только владельцу.
// Любой чужой или несуществующий id отклоняет весь батч.
func (s *GiftItemService) Reorder(ctx context.Context, userID, listID int64, updates []repo.PositionUpdate) ([]model.GiftItem, error) {
	list, err := s.getList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if !CanWriteList(userID, list) {
		return nil, ErrForbidden
	}
	if len(updates) == 0 {
		return nil, ErrValidation
	}

	if err := s.items.UpdatePositions(ctx, listID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}
	return s.items.GetByListID(ctx, listID)
}
