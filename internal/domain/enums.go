package domain

// QuestionType is the category of a generated interview question.
type QuestionType string

const (
	QuestionTypeTechnical    QuestionType = "technical"
	QuestionTypeBehavioral   QuestionType = "behavioral"
	QuestionTypeSystemDesign QuestionType = "system_design"
)

// QuestionTypes lists every QuestionType in display order.
var QuestionTypes = []QuestionType{QuestionTypeTechnical, QuestionTypeBehavioral, QuestionTypeSystemDesign}

func (t QuestionType) String() string { return string(t) }

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeTechnical, QuestionTypeBehavioral, QuestionTypeSystemDesign:
		return true
	}
	return false
}

// Difficulty is the difficulty tag of a generated interview question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every Difficulty from easiest to hardest.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// TaskName identifies a remote task.
type TaskName string

const (
	TaskParseResume        TaskName = "parse_resume"
	TaskDiscoverJobs       TaskName = "discover_jobs"
	TaskInterviewGenerator TaskName = "interview_generator"
)

func (n TaskName) String() string { return string(n) }

func (n TaskName) IsValid() bool {
	switch n {
	case TaskParseResume, TaskDiscoverJobs, TaskInterviewGenerator:
		return true
	}
	return false
}
