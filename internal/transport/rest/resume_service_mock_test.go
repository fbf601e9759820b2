package rest

import (
	"context"
	"sync"

	"github.com/dawoodjaved5/soventure-project/internal/service/resume"
)

var _ resumeService = &resumeServiceMock{}

type resumeServiceMock struct {
	LoadFunc        func(ctx context.Context) (resume.Snapshot, error)
	UploadFunc      func(ctx context.Context, in resume.UploadInput) (resume.Snapshot, error)
	ParseFunc       func(ctx context.Context) (resume.Snapshot, error)
	DeleteFunc      func(ctx context.Context) (resume.Snapshot, error)
	AcknowledgeFunc func(ctx context.Context) (resume.Snapshot, error)

	calls struct {
		Load []struct {
			Ctx context.Context
		}
		Upload []struct {
			Ctx context.Context
			In  resume.UploadInput
		}
		Parse []struct {
			Ctx context.Context
		}
		Delete []struct {
			Ctx context.Context
		}
		Acknowledge []struct {
			Ctx context.Context
		}
	}
	lockLoad        sync.RWMutex
	lockUpload      sync.RWMutex
	lockParse       sync.RWMutex
	lockDelete      sync.RWMutex
	lockAcknowledge sync.RWMutex
}

func (mock *resumeServiceMock) Load(ctx context.Context) (resume.Snapshot, error) {
	if mock.LoadFunc == nil {
		panic("resumeServiceMock.LoadFunc: method is nil but resumeService.Load was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx)
}

func (mock *resumeServiceMock) LoadCalls() []struct {
	Ctx context.Context
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *resumeServiceMock) Upload(ctx context.Context, in resume.UploadInput) (resume.Snapshot, error) {
	if mock.UploadFunc == nil {
		panic("resumeServiceMock.UploadFunc: method is nil but resumeService.Upload was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  resume.UploadInput
	}{Ctx: ctx, In: in}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, in)
}

func (mock *resumeServiceMock) UploadCalls() []struct {
	Ctx context.Context
	In  resume.UploadInput
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}

func (mock *resumeServiceMock) Parse(ctx context.Context) (resume.Snapshot, error) {
	if mock.ParseFunc == nil {
		panic("resumeServiceMock.ParseFunc: method is nil but resumeService.Parse was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockParse.Lock()
	mock.calls.Parse = append(mock.calls.Parse, callInfo)
	mock.lockParse.Unlock()
	return mock.ParseFunc(ctx)
}

func (mock *resumeServiceMock) ParseCalls() []struct {
	Ctx context.Context
} {
	mock.lockParse.RLock()
	calls := mock.calls.Parse
	mock.lockParse.RUnlock()
	return calls
}

func (mock *resumeServiceMock) Delete(ctx context.Context) (resume.Snapshot, error) {
	if mock.DeleteFunc == nil {
		panic("resumeServiceMock.DeleteFunc: method is nil but resumeService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx)
}

func (mock *resumeServiceMock) DeleteCalls() []struct {
	Ctx context.Context
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *resumeServiceMock) Acknowledge(ctx context.Context) (resume.Snapshot, error) {
	if mock.AcknowledgeFunc == nil {
		panic("resumeServiceMock.AcknowledgeFunc: method is nil but resumeService.Acknowledge was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockAcknowledge.Lock()
	mock.calls.Acknowledge = append(mock.calls.Acknowledge, callInfo)
	mock.lockAcknowledge.Unlock()
	return mock.AcknowledgeFunc(ctx)
}

func (mock *resumeServiceMock) AcknowledgeCalls() []struct {
	Ctx context.Context
} {
	mock.lockAcknowledge.RLock()
	calls := mock.calls.Acknowledge
	mock.lockAcknowledge.RUnlock()
	return calls
}

