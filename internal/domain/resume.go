package domain

// ParsedResume is the structured content extracted from an uploaded résumé.
type ParsedResume struct {
	Skills     []string  `json:"skills"`
	Experience []Section `json:"experience"`
	Education  []Section `json:"education"`
	Projects   []Section `json:"projects"`
}
