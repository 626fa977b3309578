package repo

import (
	"GiftKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// GiftListRepository определяет контракт доступа к GiftList.
type GiftListRepository interface {
	Create(ctx context.Context, list *model.GiftList) (*model.GiftList, error)
	GetByID(ctx context.Context, id int64) (*model.GiftList, error)
	GetByUserID(ctx context.Context, userID int64) ([]model.GiftList, error)
	Update(ctx context.Context, id int64, updates map[string]any) (*model.GiftList, error)

	// Delete удаляет список вместе с его подарками и грантами одной
	// транзакцией. false — списка не было.
	Delete(ctx context.Context, id int64) (bool, error)
}

type giftListRepo struct {
	db *gorm.DB
}

// NewGiftListRepository создаёт реализацию репозитория для GiftList.
func NewGiftListRepository(db *gorm.DB) GiftListRepository {
	return &giftListRepo{db: db}
}

func (r *giftListRepo) Create(ctx context.Context, list *model.GiftList) (*model.GiftList, error) {
	if err := r.db.WithContext(ctx).Create(list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *giftListRepo) GetByID(ctx context.Context, id int64) (*model.GiftList, error) {
	var l model.GiftList
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *giftListRepo) GetByUserID(ctx context.Context, userID int64) ([]model.GiftList, error) {
	var lists []model.GiftList
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *giftListRepo) Update(ctx context.Context, id int64, updates map[string]any) (*model.GiftList, error) {
	tx := r.db.WithContext(ctx).Model(&model.GiftList{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *giftListRepo) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// сначала зависимые записи, потом сам список — всё или ничего
		if err := tx.Where("list_id = ?", id).Delete(&model.GiftItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("list_id = ?", id).Delete(&model.SharedList{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.GiftList{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
