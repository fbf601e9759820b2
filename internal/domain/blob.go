package domain

// DeleteOutcome reports what a blob delete found.
type DeleteOutcome string

const (
	DeleteRemoved  DeleteOutcome = "removed"
	DeleteNotFound DeleteOutcome = "not_found"
)

// ResumeContentType is the only accepted résumé media type.
const ResumeContentType = "application/pdf"
