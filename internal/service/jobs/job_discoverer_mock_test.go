package jobs

import (
	"context"
	"sync"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

var _ jobDiscoverer = &jobDiscovererMock{}

type jobDiscovererMock struct {
	DiscoverJobsFunc func(ctx context.Context, identity domain.Identity, query string) error

	calls struct {
		DiscoverJobs []struct {
			Ctx      context.Context
			Identity domain.Identity
			Query    string
		}
	}
	lockDiscoverJobs sync.RWMutex
}

func (mock *jobDiscovererMock) DiscoverJobs(ctx context.Context, identity domain.Identity, query string) error {
	if mock.DiscoverJobsFunc == nil {
		panic("jobDiscovererMock.DiscoverJobsFunc: method is nil but jobDiscoverer.DiscoverJobs was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
		Query    string
	}{Ctx: ctx, Identity: identity, Query: query}
	mock.lockDiscoverJobs.Lock()
	mock.calls.DiscoverJobs = append(mock.calls.DiscoverJobs, callInfo)
	mock.lockDiscoverJobs.Unlock()
	return mock.DiscoverJobsFunc(ctx, identity, query)
}

func (mock *jobDiscovererMock) DiscoverJobsCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
	Query    string
} {
	mock.lockDiscoverJobs.RLock()
	calls := mock.calls.DiscoverJobs
	mock.lockDiscoverJobs.RUnlock()
	return calls
}

