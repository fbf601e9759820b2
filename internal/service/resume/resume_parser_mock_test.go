package resume

import (
	"context"
	"sync"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

var _ resumeParser = &resumeParserMock{}

type resumeParserMock struct {
	ParseResumeFunc func(ctx context.Context, identity domain.Identity, resumeURL string) (*domain.ParsedResume, error)

	calls struct {
		ParseResume []struct {
			Ctx       context.Context
			Identity  domain.Identity
			ResumeURL string
		}
	}
	lockParseResume sync.RWMutex
}

func (mock *resumeParserMock) ParseResume(ctx context.Context, identity domain.Identity, resumeURL string) (*domain.ParsedResume, error) {
	if mock.ParseResumeFunc == nil {
		panic("resumeParserMock.ParseResumeFunc: method is nil but resumeParser.ParseResume was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Identity  domain.Identity
		ResumeURL string
	}{Ctx: ctx, Identity: identity, ResumeURL: resumeURL}
	mock.lockParseResume.Lock()
	mock.calls.ParseResume = append(mock.calls.ParseResume, callInfo)
	mock.lockParseResume.Unlock()
	return mock.ParseResumeFunc(ctx, identity, resumeURL)
}

func (mock *resumeParserMock) ParseResumeCalls() []struct {
	Ctx       context.Context
	Identity  domain.Identity
	ResumeURL string
} {
	mock.lockParseResume.RLock()
	calls := mock.calls.ParseResume
	mock.lockParseResume.RUnlock()
	return calls
}

