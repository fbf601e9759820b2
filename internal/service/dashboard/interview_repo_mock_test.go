package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

var _ interviewRepo = &interviewRepoMock{}

type interviewRepoMock struct {
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.InterviewSession, error)
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

func (mock *interviewRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.InterviewSession, error) {
	if mock.ListByUserFunc == nil {
		panic("interviewRepoMock.ListByUserFunc: method is nil but interviewRepo.ListByUser was just called")
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

func (mock *interviewRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *interviewRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("interviewRepoMock.CountByUserFunc: method is nil but interviewRepo.CountByUser was just called")
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

func (mock *interviewRepoMock) CountByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountByUser.RLock()
	calls := mock.calls.CountByUser
	mock.lockCountByUser.RUnlock()
	return calls
}

func (mock *interviewRepoMock) DatesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	if mock.DatesSinceFunc == nil {
		panic("interviewRepoMock.DatesSinceFunc: method is nil but interviewRepo.DatesSince was just called")
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

func (mock *interviewRepoMock) DatesSinceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lockDatesSince.RLock()
	calls := mock.calls.DatesSince
	mock.lockDatesSince.RUnlock()
	return calls
}

