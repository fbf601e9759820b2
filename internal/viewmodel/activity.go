package viewmodel

import (
	"fmt"
	"time"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

const (
	activityWeeks = 4
	week          = 7 * 24 * time.Hour
)

// ActivityWeek is one point of the weekly activity chart.
type ActivityWeek struct {
	Label      string    `json:"label"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Jobs       int       `json:"jobs"`
	Interviews int       `json:"interviews"`
}

// WeeklyActivity counts job matches and interviews in four disjoint
// trailing windows ending at now: (now-7d, now], (now-14d, now-7d], and so
// on. Windows are returned oldest first as "Week 1".."Week 4". Records dated
// after now count toward the newest window; older than four weeks are
// ignored. Counts are capped at opts.ActivityCap for display only.
func WeeklyActivity(matches []domain.JobMatch, interviews []domain.InterviewSession, now time.Time, opts Options) []ActivityWeek {
	jobDates := make([]time.Time, 0, len(matches))
	for _, m := range matches {
		jobDates = append(jobDates, m.DateFound)
	}
	interviewDates := make([]time.Time, 0, len(interviews))
	for _, s := range interviews {
		interviewDates = append(interviewDates, s.Date)
	}
	return ActivityFromDates(jobDates, interviewDates, now, opts)
}

// ActivityFromDates is WeeklyActivity over bare record dates.
func ActivityFromDates(jobDates, interviewDates []time.Time, now time.Time, opts Options) []ActivityWeek {
	out := make([]ActivityWeek, activityWeeks)
	for i := range out {
		// out[0] is the oldest window.
		back := activityWeeks - i
		out[i] = ActivityWeek{
			Label: fmt.Sprintf("Week %d", i+1),
			Start: now.Add(-time.Duration(back) * week),
			End:   now.Add(-time.Duration(back-1) * week),
		}
	}

	for _, t := range jobDates {
		if i, ok := windowIndex(t, now); ok {
			out[i].Jobs++
		}
	}
	for _, t := range interviewDates {
		if i, ok := windowIndex(t, now); ok {
			out[i].Interviews++
		}
	}

	for i := range out {
		out[i].Jobs = min(out[i].Jobs, opts.ActivityCap)
		out[i].Interviews = min(out[i].Interviews, opts.ActivityCap)
	}
	return out
}

// ActivitySince is the earliest instant the activity windows cover,
// exclusive.
func ActivitySince(now time.Time) time.Time {
	return now.Add(-activityWeeks * week)
}

// windowIndex maps t to its window, 0 being the oldest.
func windowIndex(t, now time.Time) (int, bool) {
	if !t.Before(now) {
		return activityWeeks - 1, true
	}
	// Window k counting back from now holds ages in [7k d, 7(k+1) d).
	k := int(now.Sub(t) / week)
	if k >= activityWeeks {
		return 0, false
	}
	return activityWeeks - 1 - k, true
}
