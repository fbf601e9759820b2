package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

// SeedProfile inserts an empty profile, the state right after sign-up.
func SeedProfile(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO profiles (id, name) VALUES ($1, $2)`,
		id, "Test User "+id.String()[:8],
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}
	return id
}

// SeedJobMatch inserts a job match the way the discovery task would.
func SeedJobMatch(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, score int, found time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO job_matches (id, user_id, title, company, link, score, reasons, requirements, date_found)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, userID, "Engineer "+id.String()[:8], "Company "+id.String()[:4], "https://jobs.example.com/"+id.String(),
		score, "matched on skills", []string{"Go"}, found.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedJobMatch: %v", err)
	}
	return id
}

// SeedInterview inserts an interview history entry the way the generation task would.
func SeedInterview(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, date time.Time, questions []domain.Question) uuid.UUID {
	t.Helper()

	raw, err := json.Marshal(questions)
	if err != nil {
		t.Fatalf("testhelper: SeedInterview marshal: %v", err)
	}

	id := uuid.New()
	_, err = pool.Exec(context.Background(),
		`INSERT INTO interview_history (id, user_id, company, role, tech_stack, date, questions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, userID, "Acme", "Backend Engineer", []string{"Go", "PostgreSQL"}, date.UTC().Truncate(time.Microsecond), raw,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInterview: %v", err)
	}
	return id
}
