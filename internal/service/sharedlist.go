package service

import (
	"GiftKeeper/internal/model"
	"GiftKeeper/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// SharedListService — выдача и просмотр грантов доступа к спискам.
type SharedListService struct {
	shares repo.SharedListRepository
	lists  repo.GiftListRepository
	users  repo.UserRepository
}

func NewSharedListService(
	shares repo.SharedListRepository,
	lists repo.GiftListRepository,
	users repo.UserRepository,
) *SharedListService {
	return &SharedListService{shares: shares, lists: lists, users: users}
}

// ListForUser возвращает гранты, выданные userID, вместе со списками.
func (s *SharedListService) ListForUser(ctx context.Context, userID int64) ([]model.SharedListInfo, error) {
	return s.shares.GetByUserID(ctx, userID)
}

// Share выдаёт username грант на listID. Разрешено только владельцу;
// получатель должен существовать, не быть владельцем и не иметь гранта.
func (s *SharedListService) Share(ctx context.Context, ownerID, listID int64, username string) (*model.SharedList, error) {
	if username == "" {
		return nil, ErrValidation
	}

	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// проверяем владение до поиска получателя, чтобы не светить
	// чужим существование пользователей
	if !CanWriteList(ownerID, list) {
		return nil, ErrForbidden
	}

	target, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	alreadyShared := true
	if _, err := s.shares.GetByListAndUser(ctx, listID, target.ID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		alreadyShared = false
	}

	if err := CheckShare(ownerID, list, target.ID, alreadyShared); err != nil {
		return nil, err
	}

	return s.shares.Create(ctx, &model.SharedList{
		ListID:   listID,
		UserID:   target.ID,
		SharedBy: ownerID,
	})
}
