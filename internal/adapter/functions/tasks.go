package functions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

// ParseResume runs parse_resume against the stored résumé reference.
func (i *Invoker) ParseResume(ctx context.Context, identity domain.Identity, resumeURL string) (*domain.ParsedResume, error) {
	if strings.TrimSpace(resumeURL) == "" {
		return nil, domain.NewValidationError("resumeUrl", "no résumé uploaded")
	}

	raw, err := i.Invoke(ctx, domain.TaskParseResume, identity, map[string]any{"resumeUrl": resumeURL})
	if err != nil {
		return nil, err
	}

	res := gjson.ParseBytes(raw)
	out := &domain.ParsedResume{Skills: []string{}}
	for _, s := range res.Get("skills").Array() {
		out.Skills = append(out.Skills, s.String())
	}
	out.Experience = domain.ParseSections([]byte(res.Get("experience").Raw))
	out.Education = domain.ParseSections([]byte(res.Get("education").Raw))
	out.Projects = domain.ParseSections([]byte(res.Get("projects").Raw))
	return out, nil
}

// DiscoverJobs runs discover_jobs. Matches it finds are written to the
// record store by the task itself; callers re-list to see them.
func (i *Invoker) DiscoverJobs(ctx context.Context, identity domain.Identity, query string) error {
	payload := map[string]any{}
	if q := strings.TrimSpace(query); q != "" {
		payload["query"] = q
	}
	_, err := i.Invoke(ctx, domain.TaskDiscoverJobs, identity, payload)
	return err
}

// GenerateInterview runs interview_generator and returns the generated
// questions. The task also stores a history entry.
func (i *Invoker) GenerateInterview(ctx context.Context, identity domain.Identity, req domain.InterviewRequest) ([]domain.Question, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	techStack := req.TechStack
	if techStack == nil {
		techStack = []string{}
	}
	raw, err := i.Invoke(ctx, domain.TaskInterviewGenerator, identity, map[string]any{
		"company":   strings.TrimSpace(req.Company),
		"role":      strings.TrimSpace(req.Role),
		"techStack": techStack,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		Questions []domain.Question `json:"questions"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("functions.GenerateInterview: %w", &domain.TaskFailure{Task: domain.TaskInterviewGenerator, Kind: domain.TaskFailureMalformed})
	}
	if result.Questions == nil {
		result.Questions = []domain.Question{}
	}
	return result.Questions, nil
}
