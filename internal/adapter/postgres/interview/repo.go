// Package interview implements read access to generated interview history.
// Rows are written by the generation task only.
package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/dawoodjaved5/soventure-project/internal/adapter/postgres"
	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

var columns = []string{"id", "user_id", "company", "role", "tech_stack", "date", "questions"}

// Repo provides interview history queries backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new interview history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Company   string    `db:"company"`
	Role      string    `db:"role"`
	TechStack []string  `db:"tech_stack"`
	Date      time.Time `db:"date"`
	Questions []byte    `db:"questions"`
}

func (r row) toDomain() (domain.InterviewSession, error) {
	questions := []domain.Question{}
	if len(r.Questions) > 0 && string(r.Questions) != "null" {
		if err := json.Unmarshal(r.Questions, &questions); err != nil {
			return domain.InterviewSession{}, fmt.Errorf("decode questions of %s: %w", r.ID, err)
		}
	}
	stack := r.TechStack
	if stack == nil {
		stack = []string{}
	}
	return domain.InterviewSession{
		ID:        r.ID,
		UserID:    r.UserID,
		Company:   r.Company,
		Role:      r.Role,
		TechStack: stack,
		Date:      r.Date,
		Questions: questions,
	}, nil
}

// ListByUser returns the user's interview sessions, newest first.
// limit <= 0 returns every session. An empty result is not an error.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.InterviewSession, error) {
	b := postgres.Builder().
		Select(columns...).
		From("interview_history").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC", "id DESC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "interview_history", userID)
	}

	out := make([]domain.InterviewSession, 0, len(rows))
	for _, rw := range rows {
		s, err := rw.toDomain()
		if err != nil {
			return nil, fmt.Errorf("interview_history %s: %w: %w", userID, domain.ErrStoreUnavailable, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// CountByUser returns the total number of interview sessions of the user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From("interview_history").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "interview_history", userID)
	}
	return int(n), nil
}

// DatesSince returns the date of the user's rows after since, newest
// first. Future-dated rows are included.
func (r *Repo) DatesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	query, args, err := postgres.Builder().
		Select("date").
		From("interview_history").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Gt{"date": since}).
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	dates := []time.Time{}
	if err := pgxscan.Select(ctx, r.db, &dates, query, args...); err != nil {
		return nil, postgres.MapError(err, "interview_history", userID)
	}
	return dates, nil
}
