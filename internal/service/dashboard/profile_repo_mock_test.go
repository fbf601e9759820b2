package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetByUserID sync.RWMutex
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
