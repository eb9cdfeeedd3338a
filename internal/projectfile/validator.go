package projectfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/project.schema.json
var schemaBytes []byte

const schemaResource = "project.schema.json"

// Keywords that only group other failures.
var structuralKeywords = map[string]bool{"": true, "allOf": true, "$ref": true}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error

	printer = message.NewPrinter(language.English)
)

// ValidationResult is the outcome of checking a project file.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one schema violation.
type ValidationIssue struct {
	Path    string // JSON pointer into the document, "" for the root
	Message string
	Keyword string // failing schema keyword, e.g. "additionalProperties"
}

func getSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			schemaErr = fmt.Errorf("decoding project file schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaResource, doc); err != nil {
			schemaErr = fmt.Errorf("registering project file schema: %w", err)
			return
		}
		if schema, err = c.Compile(schemaResource); err != nil {
			schemaErr = fmt.Errorf("compiling project file schema: %w", err)
		}
	})
	return schema, schemaErr
}

// Validate checks YAML bytes against the project file schema. A non-nil
// error means the document could not be checked at all; schema violations
// are reported through the result.
func Validate(data []byte) (*ValidationResult, error) {
	s, err := getSchema()
	if err != nil {
		return nil, err
	}
	inst, err := toInstance(data)
	if err != nil {
		return nil, err
	}

	err = s.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil, fmt.Errorf("validating project file: %w", err)
	}

	issues := leafIssues(verr)
	if len(issues) == 0 {
		issues = []ValidationIssue{{Message: verr.Error()}}
	}
	return &ValidationResult{Issues: issues}, nil
}

// ValidateFile reads and validates the project file at path.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// toInstance decodes YAML and re-encodes it through JSON so the validator
// sees the value types it expects. An empty document is an empty mapping.
func toInstance(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	buf, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting YAML to JSON: %w", err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(buf))
}

// leafIssues flattens the cause tree into its leaves, dropping grouping
// keywords and duplicates.
func leafIssues(verr *jsonschema.ValidationError) []ValidationIssue {
	var leaves []ValidationIssue
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		for _, cause := range e.Causes {
			walk(cause)
		}
		if len(e.Causes) > 0 || e.ErrorKind == nil {
			return
		}
		keyword := lo.LastOrEmpty(e.ErrorKind.KeywordPath())
		if structuralKeywords[keyword] {
			return
		}
		leaves = append(leaves, ValidationIssue{
			Path:    pointer(e.InstanceLocation),
			Message: e.ErrorKind.LocalizedString(printer),
			Keyword: keyword,
		})
	}
	walk(verr)

	return lo.UniqBy(leaves, func(i ValidationIssue) string {
		return i.Path + "|" + i.Keyword + "|" + i.Message
	})
}

func pointer(location []string) string {
	if len(location) == 0 {
		return ""
	}
	return "/" + strings.Join(location, "/")
}
