// Package profile implements the Profile repository using PostgreSQL.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/dawoodjaved5/soventure-project/internal/adapter/postgres"
	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

const table = "profiles"

var columns = []string{
	"id", "name", "avatar_url", "resume_url", "skills",
	"experience", "education", "projects", "created_at", "updated_at",
}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID `db:"id"`
	Name       *string   `db:"name"`
	AvatarURL  *string   `db:"avatar_url"`
	ResumeURL  *string   `db:"resume_url"`
	Skills     []string  `db:"skills"`
	Experience []byte    `db:"experience"`
	Education  []byte    `db:"education"`
	Projects   []byte    `db:"projects"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Profile {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return &domain.Profile{
		ID:         r.ID,
		Name:       r.Name,
		AvatarURL:  r.AvatarURL,
		ResumeURL:  r.ResumeURL,
		Skills:     skills,
		Experience: domain.ParseSections(r.Experience),
		Education:  domain.ParseSections(r.Education),
		Projects:   domain.ParseSections(r.Projects),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// GetByUserID returns the profile of the given user.
// Returns domain.ErrNotFound if the profile row does not exist.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, r.db, &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}
	return dst.toDomain(), nil
}

// Update applies a partial update and returns the stored profile.
// Only fields set on the patch are written. An empty patch behaves like
// GetByUserID.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, patch domain.ProfilePatch) (*domain.Profile, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return r.GetByUserID(ctx, userID)
	}

	set, err := setClause(patch)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = squirrel.Expr("now()")

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, r.db, &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}
	return dst.toDomain(), nil
}

func setClause(p domain.ProfilePatch) (map[string]any, error) {
	set := make(map[string]any)

	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.AvatarURL != nil {
		set["avatar_url"] = nullIfEmpty(*p.AvatarURL)
	}
	switch {
	case p.ClearResume:
		set["resume_url"] = nil
	case p.ResumeURL != nil:
		set["resume_url"] = *p.ResumeURL
	}
	if p.Skills != nil {
		set["skills"] = p.Skills
	}

	for col, sections := range map[string][]domain.Section{
		"experience": p.Experience,
		"education":  p.Education,
		"projects":   p.Projects,
	} {
		if sections == nil {
			continue
		}
		encoded, err := domain.EncodeSections(sections)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", col, err)
		}
		set[col] = json.RawMessage(encoded)
	}

	return set, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
