package functions

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

//go:embed schemas/*.json
var schemaFS embed.FS

type schemaSet map[domain.TaskName]*gojsonschema.Schema

func loadSchemas() (schemaSet, error) {
	set := make(schemaSet)
	for _, task := range []domain.TaskName{domain.TaskParseResume, domain.TaskDiscoverJobs, domain.TaskInterviewGenerator} {
		raw, err := schemaFS.ReadFile("schemas/" + task.String() + ".json")
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", task, err)
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", task, err)
		}
		set[task] = schema
	}
	return set, nil
}

// check returns "" when body satisfies the task's result schema, otherwise
// a short description of the first violations.
func (s schemaSet) check(task domain.TaskName, body []byte) string {
	schema, ok := s[task]
	if !ok {
		return ""
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return err.Error()
	}
	if res.Valid() {
		return ""
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return strings.Join(msgs, "; ")
}
