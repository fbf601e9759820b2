package resume

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpdateFunc      func(ctx context.Context, userID uuid.UUID, patch domain.ProfilePatch) (*domain.Profile, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Patch  domain.ProfilePatch
		}
	}
	lockGetByUserID sync.RWMutex
	lockUpdate      sync.RWMutex
}

func (mock *profileRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if mock.GetByUserIDFunc == nil {
		panic("profileRepoMock.GetByUserIDFunc: method is nil but profileRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *profileRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *profileRepoMock) Update(ctx context.Context, userID uuid.UUID, patch domain.ProfilePatch) (*domain.Profile, error) {
	if mock.UpdateFunc == nil {
		panic("profileRepoMock.UpdateFunc: method is nil but profileRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Patch  domain.ProfilePatch
	}{Ctx: ctx, UserID: userID, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, patch)
}

func (mock *profileRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Patch  domain.ProfilePatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

