package resume

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
	"github.com/dawoodjaved5/soventure-project/internal/viewmodel"
)

// Delete removes the stored résumé and clears the reference. An object
// that is already gone counts as removed.
func (s *Service) Delete(ctx context.Context) (Snapshot, error) {
	return s.pages.Run(ctx, ActionDelete, func(ctx context.Context, identity domain.Identity, _ *viewmodel.Resume) (*viewmodel.Resume, error) {
		current, err := s.loadProfile(ctx, identity.ID)
		if err != nil {
			return nil, fmt.Errorf("resume.Delete: %w", err)
		}

		if current.HasResume() {
			outcome, err := s.blobs.DeleteResume(ctx, identity, *current.ResumeURL)
			if err != nil {
				return nil, fmt.Errorf("resume.Delete: %w", err)
			}
			if outcome == domain.DeleteNotFound {
				s.log.WarnContext(ctx, "resume object already gone",
					slog.String("user_id", identity.ID.String()),
				)
			}

			if _, err := s.profiles.Update(ctx, identity.ID, domain.ProfilePatch{ClearResume: true}); err != nil {
				return nil, fmt.Errorf("resume.Delete: clear reference: %w", err)
			}
		}

		p, err := s.loadProfile(ctx, identity.ID)
		if err != nil {
			return nil, fmt.Errorf("resume.Delete: %w", err)
		}

		view := viewmodel.BuildResume(p, nil)
		return &view, nil
	})
}
