// Package jobmatch implements read access to discovered job matches.
// Rows are written by the discovery task only.
package jobmatch

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/dawoodjaved5/soventure-project/internal/adapter/postgres"
	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

var columns = []string{
	"id", "user_id", "title", "company", "link", "score", "reasons",
	"requirements", "date_found", "location", "salary",
}

// Repo provides job match queries backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new job match repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Title        string    `db:"title"`
	Company      string    `db:"company"`
	Link         string    `db:"link"`
	Score        int32     `db:"score"`
	Reasons      string    `db:"reasons"`
	Requirements []string  `db:"requirements"`
	DateFound    time.Time `db:"date_found"`
	Location     *string   `db:"location"`
	Salary       *string   `db:"salary"`
}

func (r row) toDomain() domain.JobMatch {
	reqs := r.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	return domain.JobMatch{
		ID:           r.ID,
		UserID:       r.UserID,
		Title:        r.Title,
		Company:      r.Company,
		Link:         r.Link,
		Score:        int(r.Score),
		Reasons:      r.Reasons,
		Requirements: reqs,
		DateFound:    r.DateFound,
		Location:     r.Location,
		Salary:       r.Salary,
	}
}

// ListByUser returns the user's job matches, newest first by discovery time.
// limit <= 0 returns every match. An empty result is not an error.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.JobMatch, error) {
	b := postgres.Builder().
		Select(columns...).
		From("job_matches").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date_found DESC", "id DESC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "job_matches", userID)
	}

	out := make([]domain.JobMatch, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// CountByUser returns the total number of job matches of the user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From("job_matches").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "job_matches", userID)
	}
	return int(n), nil
}

// DatesSince returns the date_found of the user's rows after since, newest
// first. Future-dated rows are included.
func (r *Repo) DatesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	query, args, err := postgres.Builder().
		Select("date_found").
		From("job_matches").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Gt{"date_found": since}).
		OrderBy("date_found DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	dates := []time.Time{}
	if err := pgxscan.Select(ctx, r.db, &dates, query, args...); err != nil {
		return nil, postgres.MapError(err, "job_matches", userID)
	}
	return dates, nil
}
