package resume

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
	"github.com/dawoodjaved5/soventure-project/internal/viewmodel"
)

// Parse runs résumé parsing on the stored reference and shows the result
// next to the re-read profile.
func (s *Service) Parse(ctx context.Context) (Snapshot, error) {
	return s.pages.Run(ctx, ActionParse, func(ctx context.Context, identity domain.Identity, _ *viewmodel.Resume) (*viewmodel.Resume, error) {
		current, err := s.loadProfile(ctx, identity.ID)
		if err != nil {
			return nil, fmt.Errorf("resume.Parse: %w", err)
		}
		if !current.HasResume() {
			return nil, domain.NewValidationError("resume_url", "Please upload a resume first")
		}

		parsed, err := s.parser.ParseResume(ctx, identity, *current.ResumeURL)
		if err != nil {
			return nil, fmt.Errorf("resume.Parse: %w", err)
		}

		p, err := s.loadProfile(ctx, identity.ID)
		if err != nil {
			return nil, fmt.Errorf("resume.Parse: %w", err)
		}

		s.log.InfoContext(ctx, "resume parsed",
			slog.String("user_id", identity.ID.String()),
			slog.Int("skills", len(parsed.Skills)),
		)

		view := viewmodel.BuildResume(p, parsed)
		return &view, nil
	})
}
