package projectfile

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile_ValidProjectFiles(t *testing.T) {
	for _, file := range []string{
		"valid-full.yaml",
		"valid-minimal.yaml",
		"valid-empty.yaml",
		"valid-no-components.yaml",
	} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			require.NoError(t, err)
			assert.True(t, result.Valid, "issues: %+v", result.Issues)
		})
	}
}

func TestValidateFile_InvalidProjectFiles(t *testing.T) {
	tests := []struct {
		file    string
		desc    string
		keyword string
	}{
		{"invalid-unknown-key.yaml", "unknown top-level key", "additionalProperties"},
		{"invalid-component-type.yaml", "component is not a string", "type"},
		{"invalid-template-kind.yaml", "unknown template kind", ""},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			require.NoError(t, err)
			require.False(t, result.Valid, tt.desc)
			require.NotEmpty(t, result.Issues, tt.desc)
			if tt.keyword == "" {
				return
			}
			keywords := lo.Map(result.Issues, func(i ValidationIssue, _ int) string { return i.Keyword })
			assert.Contains(t, keywords, tt.keyword)
		})
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-yaml.yaml"))
	assert.Error(t, err)
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(testPath("nonexistent.yaml"))
	assert.Error(t, err)
}

func TestValidate_IssueFields(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-component-type.yaml"))
	require.NoError(t, err)
	require.False(t, result.Valid)

	issue := result.Issues[0]
	assert.Equal(t, "/components/0", issue.Path)
	assert.NotEmpty(t, issue.Message)
	assert.NotEmpty(t, result.Summary())
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	require.NoError(t, err)
	assert.NotNil(t, schema)
}
