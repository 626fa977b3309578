package repo

import (
	"GiftKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// SharedListRepository определяет контракт доступа к грантам SharedList.
type SharedListRepository interface {
	Create(ctx context.Context, share *model.SharedList) (*model.SharedList, error)
	GetByID(ctx context.Context, id int64) (*model.SharedList, error)

	// GetByListAndUser — активный грант пары (listID, userID);
	// gorm.ErrRecordNotFound, если гранта нет.
	GetByListAndUser(ctx context.Context, listID, userID int64) (*model.SharedList, error)

	// GetByUserID возвращает гранты пользователя вместе со списками,
	// на которые они выданы.
	GetByUserID(ctx context.Context, userID int64) ([]model.SharedListInfo, error)

	Delete(ctx context.Context, id int64) (bool, error)
}

type sharedListRepo struct {
	db *gorm.DB
}

// NewSharedListRepository создаёт реализацию репозитория для SharedList.
func NewSharedListRepository(db *gorm.DB) SharedListRepository {
	return &sharedListRepo{db: db}
}

func (r *sharedListRepo) Create(ctx context.Context, share *model.SharedList) (*model.SharedList, error) {
	if err := r.db.WithContext(ctx).Create(share).Error; err != nil {
		return nil, err
	}
	return share, nil
}

func (r *sharedListRepo) GetByID(ctx context.Context, id int64) (*model.SharedList, error) {
	var s model.SharedList
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sharedListRepo) GetByListAndUser(ctx context.Context, listID, userID int64) (*model.SharedList, error) {
	var s model.SharedList
	if err := r.db.WithContext(ctx).
		Where("list_id = ? AND user_id = ?", listID, userID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sharedListRepo) GetByUserID(ctx context.Context, userID int64) ([]model.SharedListInfo, error) {
	var shares []model.SharedList
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&shares).Error; err != nil {
		return nil, err
	}

	infos := make([]model.SharedListInfo, 0, len(shares))
	for _, s := range shares {
		var l model.GiftList
		if err := r.db.WithContext(ctx).First(&l, s.ListID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue // грант без списка не отдаём
			}
			return nil, err
		}
		infos = append(infos, model.SharedListInfo{SharedList: s, GiftList: l})
	}
	return infos, nil
}

func (r *sharedListRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&model.SharedList{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
