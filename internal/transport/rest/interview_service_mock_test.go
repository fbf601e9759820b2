package rest

import (
	"context"
	"sync"

	"github.com/dawoodjaved5/soventure-project/internal/service/interview"
)

var _ interviewService = &interviewServiceMock{}

type interviewServiceMock struct {
	LoadFunc        func(ctx context.Context) (interview.Snapshot, error)
	GenerateFunc    func(ctx context.Context, in interview.GenerateInput) (interview.Snapshot, error)
	AcknowledgeFunc func(ctx context.Context) (interview.Snapshot, error)

	calls struct {
		Load []struct {
			Ctx context.Context
		}
		Generate []struct {
			Ctx context.Context
			In  interview.GenerateInput
		}
		Acknowledge []struct {
			Ctx context.Context
		}
	}
	lockLoad        sync.RWMutex
	lockGenerate    sync.RWMutex
	lockAcknowledge sync.RWMutex
}

func (mock *interviewServiceMock) Load(ctx context.Context) (interview.Snapshot, error) {
	if mock.LoadFunc == nil {
		panic("interviewServiceMock.LoadFunc: method is nil but interviewService.Load was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx)
}

func (mock *interviewServiceMock) LoadCalls() []struct {
	Ctx context.Context
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *interviewServiceMock) Generate(ctx context.Context, in interview.GenerateInput) (interview.Snapshot, error) {
	if mock.GenerateFunc == nil {
		panic("interviewServiceMock.GenerateFunc: method is nil but interviewService.Generate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  interview.GenerateInput
	}{Ctx: ctx, In: in}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, in)
}

func (mock *interviewServiceMock) GenerateCalls() []struct {
	Ctx context.Context
	In  interview.GenerateInput
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *interviewServiceMock) Acknowledge(ctx context.Context) (interview.Snapshot, error) {
	if mock.AcknowledgeFunc == nil {
		panic("interviewServiceMock.AcknowledgeFunc: method is nil but interviewService.Acknowledge was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockAcknowledge.Lock()
	mock.calls.Acknowledge = append(mock.calls.Acknowledge, callInfo)
	mock.lockAcknowledge.Unlock()
	return mock.AcknowledgeFunc(ctx)
}

func (mock *interviewServiceMock) AcknowledgeCalls() []struct {
	Ctx context.Context
} {
	mock.lockAcknowledge.RLock()
	calls := mock.calls.Acknowledge
	mock.lockAcknowledge.RUnlock()
	return calls
}

