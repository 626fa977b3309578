package repo

import (
	"GiftKeeper/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// PositionUpdate — пара (id, новая позиция) для батч-переупорядочивания.
type PositionUpdate struct {
	ID       int64 `json:"id"`
	Position int   `json:"position"`
}

// GiftItemRepository определяет контракт доступа к GiftItem.
type GiftItemRepository interface {
	Create(ctx context.Context, item *model.GiftItem) (*model.GiftItem, error)
	GetByID(ctx context.Context, id int64) (*model.GiftItem, error)

	// GetByListID возвращает подарки списка, отсортированные по position,
	// при равенстве — по id. Порядок детерминирован между вызовами.
	GetByListID(ctx context.Context, listID int64) ([]model.GiftItem, error)

	// CountByListID — число подарков в списке (позиция нового подарка).
	CountByListID(ctx context.Context, listID int64) (int64, error)

	Update(ctx context.Context, id int64, updates map[string]any) (*model.GiftItem, error)
	Delete(ctx context.Context, id int64) (bool, error)

	// Claim — условный переход Unclaimed -> Claimed: запись меняется только
	// если claimed_by всё ещё NULL. false — подарок не найден или уже
	// забронирован; конкурирующие вызовы получают ровно одного победителя.
	Claim(ctx context.Context, id, userID int64) (bool, error)

	// Unclaim снимает бронь, только если она принадлежит userID.
	Unclaim(ctx context.Context, id, userID int64) (bool, error)

	// UpdatePositions применяет батч позиций в одной транзакции: каждый id
	// обязан существовать и принадлежать listID, иначе весь батч
	// откатывается с gorm.ErrRecordNotFound.
	UpdatePositions(ctx context.Context, listID int64, updates []PositionUpdate) error
}

type giftItemRepo struct {
	db *gorm.DB
}

// NewGiftItemRepository создаёт реализацию репозитория для GiftItem.
func NewGiftItemRepository(db *gorm.DB) GiftItemRepository {
	return &giftItemRepo{db: db}
}

func (r *giftItemRepo) Create(ctx context.Context, item *model.GiftItem) (*model.GiftItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *giftItemRepo) GetByID(ctx context.Context, id int64) (*model.GiftItem, error) {
	var it model.GiftItem
	if err := r.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *giftItemRepo) GetByListID(ctx context.Context, listID int64) ([]model.GiftItem, error) {
	var items []model.GiftItem
	if err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("position ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *giftItemRepo) CountByListID(ctx context.Context, listID int64) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&model.GiftItem{}).
		Where("list_id = ?", listID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *giftItemRepo) Update(ctx context.Context, id int64, updates map[string]any) (*model.GiftItem, error) {
	tx := r.db.WithContext(ctx).Model(&model.GiftItem{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *giftItemRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&model.GiftItem{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *giftItemRepo) Claim(ctx context.Context, id, userID int64) (bool, error) {
	now := time.Now().UTC()
	tx := r.db.WithContext(ctx).
		Model(&model.GiftItem{}).
		Where("id = ? AND claimed_by IS NULL", id).
		Updates(map[string]any{"claimed_by": userID, "claimed_at": now})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *giftItemRepo) Unclaim(ctx context.Context, id, userID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.GiftItem{}).
		Where("id = ? AND claimed_by = ?", id, userID).
		Updates(map[string]any{"claimed_by": nil, "claimed_at": nil})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *giftItemRepo) UpdatePositions(ctx context.Context, listID int64, updates []PositionUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			res := tx.Model(&model.GiftItem{}).
				Where("id = ? AND list_id = ?", u.ID, listID).
				Update("position", u.Position)
			if res.Error != nil {
				return res.Error
			}
			// чужой или несуществующий id валит весь батч
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
