package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

var _ jobMatchRepo = &jobMatchRepoMock{}

type jobMatchRepoMock struct {
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.JobMatch, error)
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	DatesSinceFunc  func(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		CountByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		DatesSince []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
		}
	}
	lockListByUser  sync.RWMutex
	lockCountByUser sync.RWMutex
	lockDatesSince  sync.RWMutex
}

func (mock *jobMatchRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.JobMatch, error) {
	if mock.ListByUserFunc == nil {
		panic("jobMatchRepoMock.ListByUserFunc: method is nil but jobMatchRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit)
}

func (mock *jobMatchRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *jobMatchRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("jobMatchRepoMock.CountByUserFunc: method is nil but jobMatchRepo.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *jobMatchRepoMock) CountByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountByUser.RLock()
	calls := mock.calls.CountByUser
	mock.lockCountByUser.RUnlock()
	return calls
}

func (mock *jobMatchRepoMock) DatesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	if mock.DatesSinceFunc == nil {
		panic("jobMatchRepoMock.DatesSinceFunc: method is nil but jobMatchRepo.DatesSince was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}{Ctx: ctx, UserID: userID, Since: since}
	mock.lockDatesSince.Lock()
	mock.calls.DatesSince = append(mock.calls.DatesSince, callInfo)
	mock.lockDatesSince.Unlock()
	return mock.DatesSinceFunc(ctx, userID, since)
}

func (mock *jobMatchRepoMock) DatesSinceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lockDatesSince.RLock()
	calls := mock.calls.DatesSince
	mock.lockDatesSince.RUnlock()
	return calls
}

