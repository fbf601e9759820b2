package resume

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
	"github.com/dawoodjaved5/soventure-project/internal/viewmodel"
)

// UploadInput is a résumé file as received from the client.
type UploadInput struct {
	File        []byte
	ContentType string
}

// Upload stores a new résumé and points the profile at it. The order is:
// check the file, upload it, commit the new reference, then remove the
// previous object. A failed removal is logged and does not fail the upload.
func (s *Service) Upload(ctx context.Context, in UploadInput) (Snapshot, error) {
	return s.pages.Run(ctx, ActionUpload, func(ctx context.Context, identity domain.Identity, _ *viewmodel.Resume) (*viewmodel.Resume, error) {
		if err := s.blobs.Validate(in.File, in.ContentType); err != nil {
			return nil, fmt.Errorf("resume.Upload: %w", err)
		}

		current, err := s.loadProfile(ctx, identity.ID)
		if err != nil {
			return nil, fmt.Errorf("resume.Upload: %w", err)
		}

		ref, err := s.blobs.UploadResume(ctx, identity, in.File, in.ContentType)
		if err != nil {
			return nil, fmt.Errorf("resume.Upload: %w", err)
		}

		if _, err := s.profiles.Update(ctx, identity.ID, domain.ProfilePatch{ResumeURL: &ref}); err != nil {
			s.bestEffortDelete(ctx, identity, ref, "orphaned")
			return nil, fmt.Errorf("resume.Upload: set reference: %w", err)
		}

		if current.HasResume() && *current.ResumeURL != ref {
			s.bestEffortDelete(ctx, identity, *current.ResumeURL, "replaced")
		}

		p, err := s.loadProfile(ctx, identity.ID)
		if err != nil {
			return nil, fmt.Errorf("resume.Upload: %w", err)
		}

		s.log.InfoContext(ctx, "resume uploaded",
			slog.String("user_id", identity.ID.String()),
			slog.Bool("replaced", current.HasResume()),
		)

		view := viewmodel.BuildResume(p, nil)
		return &view, nil
	})
}

// bestEffortDelete removes ref and only logs when that fails.
func (s *Service) bestEffortDelete(ctx context.Context, identity domain.Identity, ref, reason string) {
	if _, err := s.blobs.DeleteResume(ctx, identity, ref); err != nil {
		s.log.WarnContext(ctx, "failed to remove "+reason+" resume",
			slog.String("user_id", identity.ID.String()),
			slog.String("ref", ref),
			slog.String("error", err.Error()),
		)
	}
}
