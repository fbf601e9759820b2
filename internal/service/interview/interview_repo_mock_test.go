package interview

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

var _ interviewRepo = &interviewRepoMock{}

type interviewRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.InterviewSession, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
	}
	lockListByUser sync.RWMutex
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

