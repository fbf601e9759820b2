package rest

import (
	"context"
	"sync"

	"github.com/dawoodjaved5/soventure-project/internal/service/dashboard"
)

var _ dashboardService = &dashboardServiceMock{}

type dashboardServiceMock struct {
	LoadFunc        func(ctx context.Context) (dashboard.Snapshot, error)
	AcknowledgeFunc func(ctx context.Context) (dashboard.Snapshot, error)

	calls struct {
		Load []struct {
			Ctx context.Context
		}
		Acknowledge []struct {
			Ctx context.Context
		}
	}
	lockLoad        sync.RWMutex
	lockAcknowledge sync.RWMutex
}

func (mock *dashboardServiceMock) Load(ctx context.Context) (dashboard.Snapshot, error) {
	if mock.LoadFunc == nil {
		panic("dashboardServiceMock.LoadFunc: method is nil but dashboardService.Load was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx)
}

func (mock *dashboardServiceMock) LoadCalls() []struct {
	Ctx context.Context
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *dashboardServiceMock) Acknowledge(ctx context.Context) (dashboard.Snapshot, error) {
	if mock.AcknowledgeFunc == nil {
		panic("dashboardServiceMock.AcknowledgeFunc: method is nil but dashboardService.Acknowledge was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockAcknowledge.Lock()
	mock.calls.Acknowledge = append(mock.calls.Acknowledge, callInfo)
	mock.lockAcknowledge.Unlock()
	return mock.AcknowledgeFunc(ctx)
}

func (mock *dashboardServiceMock) AcknowledgeCalls() []struct {
	Ctx context.Context
} {
	mock.lockAcknowledge.RLock()
	calls := mock.calls.Acknowledge
	mock.lockAcknowledge.RUnlock()
	return calls
}

