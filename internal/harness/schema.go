package harness

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

// Schema validation error codes (E200-E209).
const (
	ErrScenarioNotYAML         = "E200" // file is not well-formed YAML
	ErrScenarioSchemaViolation = "E201" // scenario violates the schema
	ErrScenarioSchemaInternal  = "E202" // the embedded schema itself failed to compile
)

// scenarioSchemaCUE is the schema every scenario file must satisfy.
// #Scenario is a closed definition: unknown fields are rejected.
const scenarioSchemaCUE = `
#Scenario: {
	name:         string & !=""
	description?: string
	run_token?:   string
	demos: [string, ...string]
	assertions?: [...#Assertion]
}

#Assertion: {
	type:   "output_contains" | "output_count" | "output_order"
	demo:   string & !=""
	line?:  string
	lines?: [...string]
	count?: int & >=0
}
`

// ValidationError represents a scenario schema validation error.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateScenarioFile validates the scenario YAML file at path against
// the embedded CUE schema.
func ValidateScenarioFile(path string) []ValidationError {
	data, err := os.ReadFile(path)
	if err != nil {
		return []ValidationError{{
			Message: fmt.Sprintf("reading scenario file: %v", err),
			Code:    ErrScenarioNotYAML,
		}}
	}
	return ValidateScenarioBytes(data)
}

// ValidateScenarioBytes validates raw scenario YAML against the embedded
// CUE schema. Returns all violations found (does not fail-fast); a nil
// result means the scenario is schema-valid.
//
// Schema validation is structural only - it does not check that the demo
// names exist in the registry. That is the harness's job at run time.
func ValidateScenarioBytes(data []byte) []ValidationError {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return []ValidationError{{
			Message: fmt.Sprintf("not well-formed YAML: %v", err),
			Code:    ErrScenarioNotYAML,
		}}
	}

	ctx := cuecontext.New()

	schema := ctx.CompileString(scenarioSchemaCUE)
	if err := schema.Err(); err != nil {
		return []ValidationError{{
			Message: fmt.Sprintf("compiling scenario schema: %v", err),
			Code:    ErrScenarioSchemaInternal,
		}}
	}

	def := schema.LookupPath(cue.ParsePath("#Scenario"))
	if err := def.Err(); err != nil {
		return []ValidationError{{
			Message: fmt.Sprintf("resolving #Scenario: %v", err),
			Code:    ErrScenarioSchemaInternal,
		}}
	}

	value := ctx.Encode(raw)
	if err := value.Err(); err != nil {
		return []ValidationError{{
			Message: fmt.Sprintf("encoding scenario value: %v", err),
			Code:    ErrScenarioNotYAML,
		}}
	}

	unified := def.Unify(value)
	if err := unified.Validate(cue.Concrete(true), cue.Final()); err != nil {
		var errs []ValidationError
		for _, e := range cueerrors.Errors(err) {
			path := ""
			if p := e.Path(); len(p) > 0 {
				path = joinPath(p)
			}
			errs = append(errs, ValidationError{
				Field:   path,
				Message: e.Error(),
				Code:    ErrScenarioSchemaViolation,
			})
		}
		return errs
	}

	return nil
}

// joinPath renders a CUE error path as a dotted field reference.
func joinPath(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}
