package rest

import (
	"context"
	"sync"

	"github.com/dawoodjaved5/soventure-project/internal/service/jobs"
)

var _ jobsService = &jobsServiceMock{}

type jobsServiceMock struct {
	LoadFunc        func(ctx context.Context) (jobs.Snapshot, error)
	DiscoverFunc    func(ctx context.Context, query string) (jobs.Snapshot, error)
	AcknowledgeFunc func(ctx context.Context) (jobs.Snapshot, error)

	calls struct {
		Load []struct {
			Ctx context.Context
		}
		Discover []struct {
			Ctx   context.Context
			Query string
		}
		Acknowledge []struct {
			Ctx context.Context
		}
	}
	lockLoad        sync.RWMutex
	lockDiscover    sync.RWMutex
	lockAcknowledge sync.RWMutex
}

func (mock *jobsServiceMock) Load(ctx context.Context) (jobs.Snapshot, error) {
	if mock.LoadFunc == nil {
		panic("jobsServiceMock.LoadFunc: method is nil but jobsService.Load was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx)
}

func (mock *jobsServiceMock) LoadCalls() []struct {
	Ctx context.Context
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *jobsServiceMock) Discover(ctx context.Context, query string) (jobs.Snapshot, error) {
	if mock.DiscoverFunc == nil {
		panic("jobsServiceMock.DiscoverFunc: method is nil but jobsService.Discover was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{Ctx: ctx, Query: query}
	mock.lockDiscover.Lock()
	mock.calls.Discover = append(mock.calls.Discover, callInfo)
	mock.lockDiscover.Unlock()
	return mock.DiscoverFunc(ctx, query)
}

func (mock *jobsServiceMock) DiscoverCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lockDiscover.RLock()
	calls := mock.calls.Discover
	mock.lockDiscover.RUnlock()
	return calls
}

func (mock *jobsServiceMock) Acknowledge(ctx context.Context) (jobs.Snapshot, error) {
	if mock.AcknowledgeFunc == nil {
		panic("jobsServiceMock.AcknowledgeFunc: method is nil but jobsService.Acknowledge was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockAcknowledge.Lock()
	mock.calls.Acknowledge = append(mock.calls.Acknowledge, callInfo)
	mock.lockAcknowledge.Unlock()
	return mock.AcknowledgeFunc(ctx)
}

func (mock *jobsServiceMock) AcknowledgeCalls() []struct {
	Ctx context.Context
} {
	mock.lockAcknowledge.RLock()
	calls := mock.calls.Acknowledge
	mock.lockAcknowledge.RUnlock()
	return calls
}

