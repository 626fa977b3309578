package service

import (
	"GiftKeeper/internal/model"
	"GiftKeeper/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// моки репозиториев для тестов сервисов

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockListRepo struct{ mock.Mock }

func (m *mockListRepo) Create(ctx context.Context, list *model.GiftList) (*model.GiftList, error) {
	args := m.Called(ctx, list)
	if l, ok := args.Get(0).(*model.GiftList); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListRepo) GetByID(ctx context.Context, id int64) (*model.GiftList, error) {
	args := m.Called(ctx, id)
	if l, ok := args.Get(0).(*model.GiftList); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListRepo) GetByUserID(ctx context.Context, userID int64) ([]model.GiftList, error) {
	args := m.Called(ctx, userID)
	if l, ok := args.Get(0).([]model.GiftList); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListRepo) Update(ctx context.Context, id int64, updates map[string]any) (*model.GiftList, error) {
	args := m.Called(ctx, id, updates)
	if l, ok := args.Get(0).(*model.GiftList); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var _ repo.GiftListRepository = (*mockListRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, item *model.GiftItem) (*model.GiftItem, error) {
	args := m.Called(ctx, item)
	if it, ok := args.Get(0).(*model.GiftItem); ok {
		return it, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*model.GiftItem, error) {
	args := m.Called(ctx, id)
	if it, ok := args.Get(0).(*model.GiftItem); ok {
		return it, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) GetByListID(ctx context.Context, listID int64) ([]model.GiftItem, error) {
	args := m.Called(ctx, listID)
	if v, ok := args.Get(0).([]model.GiftItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) CountByListID(ctx context.Context, listID int64) (int64, error) {
	args := m.Called(ctx, listID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, id int64, updates map[string]any) (*model.GiftItem, error) {
	args := m.Called(ctx, id, updates)
	if it, ok := args.Get(0).(*model.GiftItem); ok {
		return it, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockItemRepo) Claim(ctx context.Context, id, userID int64) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockItemRepo) Unclaim(ctx context.Context, id, userID int64) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockItemRepo) UpdatePositions(ctx context.Context, listID int64, updates []repo.PositionUpdate) error {
	return m.Called(ctx, listID, updates).Error(0)
}

var _ repo.GiftItemRepository = (*mockItemRepo)(nil)

type mockShareRepo struct{ mock.Mock }

func (m *mockShareRepo) Create(ctx context.Context, share *model.SharedList) (*model.SharedList, error) {
	args := m.Called(ctx, share)
	if s, ok := args.Get(0).(*model.SharedList); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShareRepo) GetByID(ctx context.Context, id int64) (*model.SharedList, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*model.SharedList); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShareRepo) GetByListAndUser(ctx context.Context, listID, userID int64) (*model.SharedList, error) {
	args := m.Called(ctx, listID, userID)
	if s, ok := args.Get(0).(*model.SharedList); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShareRepo) GetByUserID(ctx context.Context, userID int64) ([]model.SharedListInfo, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.SharedListInfo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShareRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var _ repo.SharedListRepository = (*mockShareRepo)(nil)
