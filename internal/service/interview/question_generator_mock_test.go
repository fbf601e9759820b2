package interview

import (
	"context"
	"sync"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

var _ questionGenerator = &questionGeneratorMock{}

type questionGeneratorMock struct {
	GenerateInterviewFunc func(ctx context.Context, identity domain.Identity, req domain.InterviewRequest) ([]domain.Question, error)

	calls struct {
		GenerateInterview []struct {
			Ctx      context.Context
			Identity domain.Identity
			Req      domain.InterviewRequest
		}
	}
	lockGenerateInterview sync.RWMutex
}

func (mock *questionGeneratorMock) GenerateInterview(ctx context.Context, identity domain.Identity, req domain.InterviewRequest) ([]domain.Question, error) {
	if mock.GenerateInterviewFunc == nil {
		panic("questionGeneratorMock.GenerateInterviewFunc: method is nil but questionGenerator.GenerateInterview was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
		Req      domain.InterviewRequest
	}{Ctx: ctx, Identity: identity, Req: req}
	mock.lockGenerateInterview.Lock()
	mock.calls.GenerateInterview = append(mock.calls.GenerateInterview, callInfo)
	mock.lockGenerateInterview.Unlock()
	return mock.GenerateInterviewFunc(ctx, identity, req)
}

func (mock *questionGeneratorMock) GenerateInterviewCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
	Req      domain.InterviewRequest
} {
	mock.lockGenerateInterview.RLock()
	calls := mock.calls.GenerateInterview
	mock.lockGenerateInterview.RUnlock()
	return calls
}

