package domain

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// SectionKind tags the shape of a profile section entry.
type SectionKind string

const (
	SectionExperience   SectionKind = "experience"
	SectionEducation    SectionKind = "education"
	SectionProject      SectionKind = "project"
	SectionUnstructured SectionKind = "unstructured"
)

// Section is one entry of a profile's experience, education or projects
// collection. Entries arrive as free-form JSON written by the parsing task;
// known shapes are lifted into typed fields and anything else is kept as
// Unstructured. Raw always holds the payload as it was stored so a
// round-trip never loses fields.
type Section struct {
	Kind SectionKind

	// experience
	Role    string
	Company string
	Period  string

	// education
	Degree string
	School string
	Year   string

	// project
	Name string

	// experience and project
	Description string

	Raw json.RawMessage
}

// ParseSections decodes a stored collection. A JSON array yields one entry per
// element; null or empty input yields nil; any other value becomes a single
// Unstructured entry.
func ParseSections(raw []byte) []Section {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	if !gjson.ValidBytes(raw) {
		// Keep undecodable text as a JSON string so it can still be rendered.
		quoted, _ := json.Marshal(string(raw))
		return []Section{{Kind: SectionUnstructured, Raw: quoted}}
	}

	res := gjson.ParseBytes(raw)
	if res.Type == gjson.Null {
		return nil
	}
	if !res.IsArray() {
		return []Section{{Kind: SectionUnstructured, Raw: json.RawMessage(res.Raw)}}
	}

	elems := res.Array()
	out := make([]Section, 0, len(elems))
	for _, el := range elems {
		out = append(out, probeSection(el))
	}
	return out
}

func probeSection(el gjson.Result) Section {
	s := Section{Kind: SectionUnstructured, Raw: json.RawMessage(el.Raw)}
	if !el.IsObject() {
		return s
	}

	switch {
	case el.Get("role").Exists() || el.Get("company").Exists():
		s.Kind = SectionExperience
		s.Role = el.Get("role").String()
		s.Company = el.Get("company").String()
		s.Period = el.Get("period").String()
		s.Description = el.Get("description").String()
	case el.Get("degree").Exists() || el.Get("school").Exists():
		s.Kind = SectionEducation
		s.Degree = el.Get("degree").String()
		s.School = el.Get("school").String()
		s.Year = el.Get("year").String()
	case el.Get("name").Exists():
		s.Kind = SectionProject
		s.Name = el.Get("name").String()
		s.Description = el.Get("description").String()
	}
	return s
}

// EncodeSections produces the stored form of a collection: each entry's Raw
// payload verbatim, or its known shape when Raw is empty.
func EncodeSections(sections []Section) (json.RawMessage, error) {
	items := make([]json.RawMessage, 0, len(sections))
	for _, s := range sections {
		b, err := s.payload()
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return json.Marshal(items)
}

func (s Section) payload() (json.RawMessage, error) {
	if len(s.Raw) > 0 {
		return s.Raw, nil
	}

	var v any
	switch s.Kind {
	case SectionExperience:
		v = struct {
			Role        string `json:"role"`
			Company     string `json:"company"`
			Period      string `json:"period,omitempty"`
			Description string `json:"description,omitempty"`
		}{s.Role, s.Company, s.Period, s.Description}
	case SectionEducation:
		v = struct {
			Degree string `json:"degree"`
			School string `json:"school"`
			Year   string `json:"year,omitempty"`
		}{s.Degree, s.School, s.Year}
	case SectionProject:
		v = struct {
			Name        string `json:"name"`
			Description string `json:"description,omitempty"`
		}{s.Name, s.Description}
	default:
		return json.RawMessage("null"), nil
	}
	return json.Marshal(v)
}

// MarshalJSON renders the entry for clients with an explicit kind tag.
func (s Section) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case SectionExperience:
		return json.Marshal(struct {
			Kind        SectionKind `json:"kind"`
			Role        string      `json:"role"`
			Company     string      `json:"company"`
			Period      string      `json:"period"`
			Description string      `json:"description"`
		}{s.Kind, s.Role, s.Company, s.Period, s.Description})
	case SectionEducation:
		return json.Marshal(struct {
			Kind   SectionKind `json:"kind"`
			Degree string      `json:"degree"`
			School string      `json:"school"`
			Year   string      `json:"year"`
		}{s.Kind, s.Degree, s.School, s.Year})
	case SectionProject:
		return json.Marshal(struct {
			Kind        SectionKind `json:"kind"`
			Name        string      `json:"name"`
			Description string      `json:"description"`
		}{s.Kind, s.Name, s.Description})
	}

	payload := s.Raw
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	return json.Marshal(struct {
		Kind    SectionKind     `json:"kind"`
		Payload json.RawMessage `json:"payload"`
	}{SectionUnstructured, payload})
}
