package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// configSchemaPath resolves the real generator config schema shipped in the
// repository's schemas/ directory.
func configSchemaPath(t *testing.T) string {
	t.Helper()
	path := ResolveSchemaPath(ConfigSchemaFile)
	require.NotEmpty(t, path, "generator config schema not found; run tests from the repository")
	return path
}

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidConfig(t *testing.T) {
	jsonPath := writeTempJSON(t, `{
		"rows": 100,
		"seed": 42,
		"start_date": "2024-01-01",
		"end_date": "2024-06-30",
		"lines": ["BodyShop"],
		"stations_per_line": {"BodyShop": ["BS_Weld_01"]},
		"output": "out.csv"
	}`)

	assert.NoError(t, ValidateJSON(configSchemaPath(t), jsonPath))
}

func TestValidateJSON_EmptyConfigIsValid(t *testing.T) {
	// Every field is optional; defaults fill the gaps.
	jsonPath := writeTempJSON(t, `{}`)
	assert.NoError(t, ValidateJSON(configSchemaPath(t), jsonPath))
}

func TestValidateJSON_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "Rows below minimum", content: `{"rows": 0}`},
		{name: "Wrong type for rows", content: `{"rows": "many"}`},
		{name: "Malformed date", content: `{"start_date": "01/01/2024"}`},
		{name: "Empty station list", content: `{"stations_per_line": {"BodyShop": []}}`},
		{name: "Negative weight", content: `{"failure_weights": [0.5, -0.1]}`},
		{name: "Unknown field", content: `{"n_rows": 100}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonPath := writeTempJSON(t, tt.content)

			err := ValidateJSON(configSchemaPath(t), jsonPath)
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "error should be ValidationError type, got %T", err)
			assert.Greater(t, len(validationErr.Errors), 0)
		})
	}
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	jsonPath := writeTempJSON(t, `{}`)

	err := ValidateJSON(filepath.Join(t.TempDir(), "nope.schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	err := ValidateJSON(configSchemaPath(t), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}
