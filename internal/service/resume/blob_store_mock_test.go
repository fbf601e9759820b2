package resume

import (
	"context"
	"sync"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	DeleteResumeFunc func(ctx context.Context, identity domain.Identity, ref string) (domain.DeleteOutcome, error)
	UploadResumeFunc func(ctx context.Context, identity domain.Identity, file []byte, contentType string) (string, error)
	ValidateFunc     func(file []byte, contentType string) error

	calls struct {
		DeleteResume []struct {
			Ctx      context.Context
			Identity domain.Identity
			Ref      string
		}
		UploadResume []struct {
			Ctx         context.Context
			Identity    domain.Identity
			File        []byte
			ContentType string
		}
		Validate []struct {
			File        []byte
			ContentType string
		}
	}
	lockDeleteResume sync.RWMutex
	lockUploadResume sync.RWMutex
	lockValidate     sync.RWMutex
}

func (mock *blobStoreMock) DeleteResume(ctx context.Context, identity domain.Identity, ref string) (domain.DeleteOutcome, error) {
	if mock.DeleteResumeFunc == nil {
		panic("blobStoreMock.DeleteResumeFunc: method is nil but blobStore.DeleteResume was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
		Ref      string
	}{Ctx: ctx, Identity: identity, Ref: ref}
	mock.lockDeleteResume.Lock()
	mock.calls.DeleteResume = append(mock.calls.DeleteResume, callInfo)
	mock.lockDeleteResume.Unlock()
	return mock.DeleteResumeFunc(ctx, identity, ref)
}

func (mock *blobStoreMock) DeleteResumeCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
	Ref      string
} {
	mock.lockDeleteResume.RLock()
	calls := mock.calls.DeleteResume
	mock.lockDeleteResume.RUnlock()
	return calls
}

func (mock *blobStoreMock) UploadResume(ctx context.Context, identity domain.Identity, file []byte, contentType string) (string, error) {
	if mock.UploadResumeFunc == nil {
		panic("blobStoreMock.UploadResumeFunc: method is nil but blobStore.UploadResume was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Identity    domain.Identity
		File        []byte
		ContentType string
	}{Ctx: ctx, Identity: identity, File: file, ContentType: contentType}
	mock.lockUploadResume.Lock()
	mock.calls.UploadResume = append(mock.calls.UploadResume, callInfo)
	mock.lockUploadResume.Unlock()
	return mock.UploadResumeFunc(ctx, identity, file, contentType)
}

func (mock *blobStoreMock) UploadResumeCalls() []struct {
	Ctx         context.Context
	Identity    domain.Identity
	File        []byte
	ContentType string
} {
	mock.lockUploadResume.RLock()
	calls := mock.calls.UploadResume
	mock.lockUploadResume.RUnlock()
	return calls
}

func (mock *blobStoreMock) Validate(file []byte, contentType string) error {
	if mock.ValidateFunc == nil {
		panic("blobStoreMock.ValidateFunc: method is nil but blobStore.Validate was just called")
	}
	callInfo := struct {
		File        []byte
		ContentType string
	}{File: file, ContentType: contentType}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, callInfo)
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(file, contentType)
}

func (mock *blobStoreMock) ValidateCalls() []struct {
	File        []byte
	ContentType string
} {
	mock.lockValidate.RLock()
	calls := mock.calls.Validate
	mock.lockValidate.RUnlock()
	return calls
}

