package interview

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
	"github.com/dawoodjaved5/soventure-project/internal/service/page"
	"github.com/dawoodjaved5/soventure-project/internal/viewmodel"
)

// ActionGenerate is the page action that generates new questions.
const ActionGenerate = "generate"

type interviewRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.InterviewSession, error)
}

type questionGenerator interface {
	GenerateInterview(ctx context.Context, identity domain.Identity, req domain.InterviewRequest) ([]domain.Question, error)
}

// Snapshot is the interview page state.
type Snapshot = page.Snapshot[viewmodel.Interview]

// Service drives the interview preparation page.
type Service struct {
	pages        page.Binder[viewmodel.Interview]
	history      interviewRepo
	generator    questionGenerator
	historyLimit int
	log          *slog.Logger
}

// NewService creates an interview Service. historyLimit caps how many past
// sessions the page lists.
func NewService(
	log *slog.Logger,
	gate page.Gate,
	pages *page.Registry[*page.Machine[viewmodel.Interview]],
	history interviewRepo,
	generator questionGenerator,
	historyLimit int,
) *Service {
	return &Service{
		pages:        page.NewBinder(gate, pages),
		history:      history,
		generator:    generator,
		historyLimit: historyLimit,
		log:          log.With("service", "interview"),
	}
}

// GenerateInput is the form as submitted. TechStack is comma separated.
type GenerateInput struct {
	Company   string
	Role      string
	TechStack string
}

func (in GenerateInput) request() domain.InterviewRequest {
	return domain.InterviewRequest{
		Company:   strings.TrimSpace(in.Company),
		Role:      strings.TrimSpace(in.Role),
		TechStack: viewmodel.ParseTechStack(in.TechStack),
	}
}

// Load lists recent sessions. Questions generated earlier stay on screen.
func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	return s.pages.Run(ctx, page.ActionLoad, func(ctx context.Context, identity domain.Identity, prior *viewmodel.Interview) (*viewmodel.Interview, error) {
		sessions, err := s.history.ListByUser(ctx, identity.ID, s.historyLimit)
		if err != nil {
			return nil, fmt.Errorf("interview.Load: %w", err)
		}
		var generated *viewmodel.GeneratedSet
		if prior != nil {
			generated = prior.Generated
		}
		view := viewmodel.BuildInterview(sessions, generated)
		return &view, nil
	})
}

// Generate validates the form, generates questions and re-lists the
// history the task appended to.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (Snapshot, error) {
	return s.pages.Run(ctx, ActionGenerate, func(ctx context.Context, identity domain.Identity, _ *viewmodel.Interview) (*viewmodel.Interview, error) {
		req := in.request()
		if err := req.Validate(); err != nil {
			return nil, err
		}

		questions, err := s.generator.GenerateInterview(ctx, identity, req)
		if err != nil {
			return nil, fmt.Errorf("interview.Generate: %w", err)
		}

		sessions, err := s.history.ListByUser(ctx, identity.ID, s.historyLimit)
		if err != nil {
			return nil, fmt.Errorf("interview.Generate: %w", err)
		}

		s.log.InfoContext(ctx, "interview questions generated",
			slog.String("user_id", identity.ID.String()),
			slog.String("company", req.Company),
			slog.Int("questions", len(questions)),
		)

		view := viewmodel.BuildInterview(sessions, viewmodel.NewGeneratedSet(req, questions))
		return &view, nil
	})
}

// Acknowledge clears a page failure.
func (s *Service) Acknowledge(ctx context.Context) (Snapshot, error) {
	return s.pages.Acknowledge(ctx)
}
