package viewmodel

import (
	"strings"
	"time"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

// TimelinePoint is one bar of the interview timeline chart.
type TimelinePoint struct {
	Date      string `json:"date"`
	Company   string `json:"company"`
	Questions int    `json:"questions"`
}

// InterviewTimeline labels each session by its "Jan 2" date in UTC, keeping
// the given order.
func InterviewTimeline(sessions []domain.InterviewSession) []TimelinePoint {
	out := make([]TimelinePoint, len(sessions))
	for i, s := range sessions {
		out[i] = TimelinePoint{
			Date:      s.Date.UTC().Format("Jan 2"),
			Company:   s.Company,
			Questions: len(s.Questions),
		}
	}
	return out
}

// QuestionTally counts questions per type and per difficulty. Every known
// type and difficulty is present, zero or not.
type QuestionTally struct {
	ByType       map[domain.QuestionType]int `json:"byType"`
	ByDifficulty map[domain.Difficulty]int   `json:"byDifficulty"`
}

// TallyQuestions counts qs. Unknown tags are skipped.
func TallyQuestions(qs []domain.Question) QuestionTally {
	t := QuestionTally{
		ByType:       make(map[domain.QuestionType]int, len(domain.QuestionTypes)),
		ByDifficulty: make(map[domain.Difficulty]int, len(domain.Difficulties)),
	}
	for _, qt := range domain.QuestionTypes {
		t.ByType[qt] = 0
	}
	for _, d := range domain.Difficulties {
		t.ByDifficulty[d] = 0
	}
	for _, q := range qs {
		if q.Type.IsValid() {
			t.ByType[q.Type]++
		}
		if q.Difficulty.IsValid() {
			t.ByDifficulty[q.Difficulty]++
		}
	}
	return t
}

// ParseTechStack splits a comma separated list, trimming entries and
// dropping empty ones.
func ParseTechStack(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// HistoryItem is one row of the interview history list.
type HistoryItem struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	TechStack []string  `json:"techStack"`
	Date      time.Time `json:"date"`
	Questions int       `json:"questions"`
}

func historyItems(sessions []domain.InterviewSession) []HistoryItem {
	out := make([]HistoryItem, len(sessions))
	for i, s := range sessions {
		ts := s.TechStack
		if ts == nil {
			ts = []string{}
		}
		out[i] = HistoryItem{
			ID:        s.ID.String(),
			Company:   s.Company,
			Role:      s.Role,
			TechStack: ts,
			Date:      s.Date,
			Questions: len(s.Questions),
		}
	}
	return out
}
