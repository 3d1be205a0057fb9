package dify

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &body))
	return body
}

func TestExtractWorkflowText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"nested output", `{"data":{"outputs":{"output":"X"}}}`, "X", true},
		{"nested response", `{"data":{"outputs":{"response":"R"}}}`, "R", true},
		{"top-level output", `{"output":"O"}`, "O", true},
		{"top-level answer", `{"answer":"Y"}`, "Y", true},
		{"empty body", `{}`, "", false},
		{"unrelated keys", `{"data":{"status":"succeeded"}}`, "", false},
		{"non-string output", `{"data":{"outputs":{"output":42}}}`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractWorkflowText(parse(t, tt.raw))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractWorkflowTextPriorityOrder(t *testing.T) {
	// When several paths are present the nested workflow output wins.
	body := parse(t, `{"answer":"low","output":"mid","data":{"outputs":{"output":"top","response":"second"}}}`)
	got, ok := ExtractWorkflowText(body)
	require.True(t, ok)
	assert.Equal(t, "top", got)

	body = parse(t, `{"answer":"low","data":{"outputs":{"response":"second"}}}`)
	got, ok = ExtractWorkflowText(body)
	require.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestStringAt(t *testing.T) {
	body := parse(t, `{"data":{"conversation_id":"c1","outputs":{"output":"X"}}}`)

	assert.Equal(t, "c1", stringAt(body, "data", "conversation_id"))
	assert.Equal(t, "", stringAt(body, "data", "missing"))
	assert.Equal(t, "", stringAt(body, "data", "outputs", "output", "too-deep"))
}
