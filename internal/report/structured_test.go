package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/yamlwhisperer/cli/internal/output"
	"github.com/yamlwhisperer/cli/internal/validate"
)

func TestBuild(t *testing.T) {
	var s Summary
	s.Add(validResult("good.yaml"))
	s.Add(syntaxResult("bad.yaml", "yaml: line 2: mapping values are not allowed in this context"))

	rep := Build(&s)

	assert.False(t, rep.Valid)
	assert.Equal(t, 2, rep.Total)
	assert.Equal(t, Counts{Valid: 1, SyntaxError: 1}, rep.Counts)
	require.Len(t, rep.Files, 2)
	assert.Equal(t, FileReport{Path: "good.yaml", Status: "valid", Documents: 1}, rep.Files[0])
	assert.Equal(t, "syntax-error", rep.Files[1].Status)
	assert.Equal(t, "yaml: line 2: mapping values are not allowed in this context", rep.Files[1].Message,
		"structured reports keep the full message")
}

func TestBuild_Empty(t *testing.T) {
	rep := Build(&Summary{})
	assert.True(t, rep.Valid)
	assert.NotNil(t, rep.Files)
	assert.Empty(t, rep.Files)
}

func TestStructuredReporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	render(t, NewStructured(output.FormatJSON, &buf),
		validResult("good.yaml"),
		readResult("missing.yaml", "open missing.yaml: no such file or directory"),
	)

	var rep Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))
	assert.False(t, rep.Valid)
	assert.Equal(t, 2, rep.Total)
	assert.Equal(t, 1, rep.Counts.ReadError)
	assert.Equal(t, "read-error", rep.Files[1].Status)

	assert.Contains(t, buf.String(), `"syntaxError": 0`)
	assert.NotContains(t, buf.String(), "Listening", "structured output has no banner")
}

func TestStructuredReporter_YAML(t *testing.T) {
	var buf bytes.Buffer
	render(t, NewStructured(output.FormatYAML, &buf), validResult("good.yaml"))

	var rep Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rep))
	assert.True(t, rep.Valid)
	assert.Equal(t, []FileReport{{Path: "good.yaml", Status: validate.Valid.String(), Documents: 1}}, rep.Files)
	assert.Contains(t, buf.String(), "valid: true\n")
}
