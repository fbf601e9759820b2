package viewmodel

import "github.com/dawoodjaved5/soventure-project/internal/domain"

// ProgressView holds the four profile completion bars, each 0..100.
type ProgressView struct {
	Resume     int `json:"resume"`
	Skills     int `json:"skills"`
	Jobs       int `json:"jobs"`
	Interviews int `json:"interviews"`
}

// Progress derives completion from the profile and the total record counts.
func Progress(p *domain.Profile, jobCount, interviewCount int) ProgressView {
	var v ProgressView
	if p != nil {
		if p.HasResume() {
			v.Resume = 100
		}
		v.Skills = clamp(len(p.Skills)*10, 0, 100)
	}
	v.Jobs = clamp(jobCount*5, 0, 100)
	v.Interviews = clamp(interviewCount*10, 0, 100)
	return v
}

// Stats are the summary cards at the top of the dashboard.
type Stats struct {
	ResumeUploaded bool `json:"resumeUploaded"`
	JobMatches     int  `json:"jobMatches"`
	Interviews     int  `json:"interviews"`
	Skills         int  `json:"skills"`
}

// StatsFor builds the summary cards.
func StatsFor(p *domain.Profile, jobCount, interviewCount int) Stats {
	s := Stats{JobMatches: jobCount, Interviews: interviewCount}
	if p != nil {
		s.ResumeUploaded = p.HasResume()
		s.Skills = len(p.Skills)
	}
	return s
}
