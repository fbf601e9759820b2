package viewmodel

import (
	"time"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

const recentCount = 3

// JobItem is one job match as shown in lists.
type JobItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Link         string    `json:"link"`
	Score        int       `json:"score"`
	Tier         ScoreTier `json:"tier"`
	Reasons      string    `json:"reasons"`
	Requirements []string  `json:"requirements"`
	DateFound    time.Time `json:"dateFound"`
	Location     *string   `json:"location,omitempty"`
	Salary       *string   `json:"salary,omitempty"`
}

func jobItems(matches []domain.JobMatch) []JobItem {
	out := make([]JobItem, len(matches))
	for i, m := range matches {
		req := m.Requirements
		if req == nil {
			req = []string{}
		}
		out[i] = JobItem{
			ID:           m.ID.String(),
			Title:        m.Title,
			Company:      m.Company,
			Link:         m.Link,
			Score:        m.Score,
			Tier:         TierFor(m.Score),
			Reasons:      m.Reasons,
			Requirements: req,
			DateFound:    m.DateFound,
			Location:     m.Location,
			Salary:       m.Salary,
		}
	}
	return out
}

// Charts says which dashboard charts have anything to draw.
type Charts struct {
	Skills    bool `json:"skills"`
	TopScores bool `json:"topScores"`
	Timeline  bool `json:"timeline"`
	Activity  bool `json:"activity"`
}

// DashboardInput is everything the dashboard is derived from.
type DashboardInput struct {
	Identity       domain.Identity
	Profile        *domain.Profile
	Jobs           []domain.JobMatch
	Interviews     []domain.InterviewSession
	JobCount       int
	InterviewCount int
	// Dates of every record inside the activity windows, independent of
	// the display limits applied to Jobs and Interviews.
	JobDates       []time.Time
	InterviewDates []time.Time
}

// Dashboard is the derived dashboard view.
type Dashboard struct {
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Stats            Stats           `json:"stats"`
	Progress         ProgressView    `json:"progress"`
	Skills           []SkillWeight   `json:"skills"`
	Histogram        []ScoreBucket   `json:"histogram"`
	TopScores        []ScorePoint    `json:"topScores"`
	Timeline         []TimelinePoint `json:"timeline"`
	Activity         []ActivityWeek  `json:"activity"`
	RecentJobs       []JobItem       `json:"recentJobs"`
	RecentInterviews []HistoryItem   `json:"recentInterviews"`
	Charts           Charts          `json:"charts"`
}

// BuildDashboard derives the dashboard view.
func BuildDashboard(in DashboardInput, now time.Time, opts Options) Dashboard {
	d := Dashboard{
		Email:     in.Identity.Email,
		Stats:     StatsFor(in.Profile, in.JobCount, in.InterviewCount),
		Progress:  Progress(in.Profile, in.JobCount, in.InterviewCount),
		Skills:    []SkillWeight{},
		Histogram: ScoreHistogram(in.Jobs),
		TopScores: TopScores(in.Jobs),
		Timeline:  InterviewTimeline(in.Interviews),
		Activity:  ActivityFromDates(in.JobDates, in.InterviewDates, now, opts),
	}
	if in.Profile != nil {
		if in.Profile.Name != nil {
			d.Name = *in.Profile.Name
		}
		d.Skills = SkillDistribution(in.Profile.Skills, opts)
	}

	d.RecentJobs = jobItems(in.Jobs[:min(len(in.Jobs), recentCount)])
	d.RecentInterviews = historyItems(in.Interviews[:min(len(in.Interviews), recentCount)])

	d.Charts = Charts{
		Skills:    len(d.Skills) > 0,
		TopScores: len(d.TopScores) > 0,
		Timeline:  len(d.Timeline) > 0,
		Activity:  hasActivity(d.Activity),
	}
	return d
}

func hasActivity(weeks []ActivityWeek) bool {
	for _, w := range weeks {
		if w.Jobs > 0 || w.Interviews > 0 {
			return true
		}
	}
	return false
}

// Jobs is the derived job discovery view.
type Jobs struct {
	Matches   []JobItem     `json:"matches"`
	Histogram []ScoreBucket `json:"histogram"`
	Total     int           `json:"total"`
}

// BuildJobs derives the job discovery view, keeping the given order.
func BuildJobs(matches []domain.JobMatch) Jobs {
	return Jobs{
		Matches:   jobItems(matches),
		Histogram: ScoreHistogram(matches),
		Total:     len(matches),
	}
}

// Resume is the derived résumé upload view.
type Resume struct {
	HasResume  bool                 `json:"hasResume"`
	ResumeURL  *string              `json:"resumeUrl,omitempty"`
	Skills     []string             `json:"skills"`
	Experience []domain.Section     `json:"experience"`
	Education  []domain.Section     `json:"education"`
	Projects   []domain.Section     `json:"projects"`
	Parsed     *domain.ParsedResume `json:"parsed,omitempty"`
}

// BuildResume derives the résumé view from the stored profile and the last
// parse result, if any.
func BuildResume(p *domain.Profile, parsed *domain.ParsedResume) Resume {
	r := Resume{
		Skills:     []string{},
		Experience: []domain.Section{},
		Education:  []domain.Section{},
		Projects:   []domain.Section{},
		Parsed:     parsed,
	}
	if p == nil {
		return r
	}
	r.HasResume = p.HasResume()
	r.ResumeURL = p.ResumeURL
	if p.Skills != nil {
		r.Skills = p.Skills
	}
	if p.Experience != nil {
		r.Experience = p.Experience
	}
	if p.Education != nil {
		r.Education = p.Education
	}
	if p.Projects != nil {
		r.Projects = p.Projects
	}
	return r
}

// GeneratedSet is the most recent batch of generated questions.
type GeneratedSet struct {
	Company   string            `json:"company"`
	Role      string            `json:"role"`
	Questions []domain.Question `json:"questions"`
	Tally     QuestionTally     `json:"tally"`
}

// NewGeneratedSet wraps freshly generated questions for display.
func NewGeneratedSet(req domain.InterviewRequest, qs []domain.Question) *GeneratedSet {
	if qs == nil {
		qs = []domain.Question{}
	}
	return &GeneratedSet{
		Company:   req.Company,
		Role:      req.Role,
		Questions: qs,
		Tally:     TallyQuestions(qs),
	}
}

// Interview is the derived interview preparation view.
type Interview struct {
	History   []HistoryItem `json:"history"`
	Generated *GeneratedSet `json:"generated,omitempty"`
}

// BuildInterview derives the interview view.
func BuildInterview(sessions []domain.InterviewSession, generated *GeneratedSet) Interview {
	return Interview{
		History:   historyItems(sessions),
		Generated: generated,
	}
}
