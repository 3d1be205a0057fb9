package dify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicelog-backend/pkg/apperr"
)

func TestRunWorkflowValidation(t *testing.T) {
	calls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer upstream.Close()

	svc := NewService("key", upstream.URL)

	tests := []struct {
		name string
		in   WorkflowInput
	}{
		{"missing department", WorkflowInput{Rating: "4", Details: "x"}},
		{"missing rating", WorkflowInput{Department: "Ops", Details: "x"}},
		{"missing details", WorkflowInput{Department: "Ops", Rating: "4"}},
		{"all missing", WorkflowInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RunWorkflow(context.Background(), tt.in, "u1")
			require.Error(t, err)
			assert.Equal(t, apperr.CodeInvalidArgument, apperr.From(err).Code)
		})
	}

	// Validation failures must not reach the network.
	assert.Equal(t, 0, calls)
}

func TestRunWorkflowPayloadAndResult(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]interface{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotPayload))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"outputs":{"output":"Good work"},"conversation_id":"c1","message_id":"m1"}}`)
	}))
	defer upstream.Close()

	svc := NewService("secret-key", upstream.URL)
	res, err := svc.RunWorkflow(context.Background(), WorkflowInput{
		Department: "Ops",
		Rating:     "4",
		Details:    "Shipped the release",
	}, "uid-1")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, map[string]interface{}{
		"inputs": map[string]interface{}{
			"name":    "Ops",
			"feeling": "4",
			"what":    "Shipped the release",
		},
		"response_mode": "blocking",
		"user":          "uid-1",
	}, gotPayload)

	assert.Equal(t, "Good work", res.Text)
	assert.Equal(t, "c1", res.ConversationID)
	assert.Equal(t, "m1", res.MessageID)
	assert.False(t, res.Raw)
}

func TestRunWorkflowOptionalPerson(t *testing.T) {
	var gotPayload map[string]interface{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotPayload))
		io.WriteString(w, `{"data":{"outputs":{"output":"ok"}}}`)
	}))
	defer upstream.Close()

	svc := NewService("key", upstream.URL)
	_, err := svc.RunWorkflow(context.Background(), WorkflowInput{
		Department: "Ops", Rating: "3", Details: "d", Person: "Tanaka",
	}, "u")
	require.NoError(t, err)

	inputs := gotPayload["inputs"].(map[string]interface{})
	assert.Equal(t, "Tanaka", inputs["person"])
}

func TestRunWorkflowUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"code":"invalid_param"}`)
	}))
	defer upstream.Close()

	svc := NewService("key", upstream.URL)
	_, err := svc.RunWorkflow(context.Background(), WorkflowInput{Department: "Ops", Rating: "4", Details: "x"}, "u")
	require.Error(t, err)

	ae := apperr.From(err)
	assert.Equal(t, apperr.CodeUpstream, ae.Code)
	assert.Contains(t, ae.Message, "400")
	assert.Contains(t, ae.Message, "invalid_param")
}

func TestRunWorkflowUnrecognizedShapeFallsBackToRawBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"status":"succeeded"}}`)
	}))
	defer upstream.Close()

	svc := NewService("key", upstream.URL)
	res, err := svc.RunWorkflow(context.Background(), WorkflowInput{Department: "Ops", Rating: "4", Details: "x"}, "u")
	require.NoError(t, err)

	assert.True(t, res.Raw)
	assert.Contains(t, res.Text, `"status": "succeeded"`)
}

func TestRunWorkflowMissingAPIKey(t *testing.T) {
	svc := NewService("", "http://example.invalid")
	_, err := svc.RunWorkflow(context.Background(), WorkflowInput{Department: "Ops", Rating: "4", Details: "x"}, "u")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInternal, apperr.From(err).Code)
}
