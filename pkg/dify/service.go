package dify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"voicelog-backend/pkg/apperr"
)

// WorkflowInput is one journal submission headed for the Dify workflow app.
type WorkflowInput struct {
	Department string
	Rating     string
	Details    string
	Person     string // optional, later form revisions only
}

// WorkflowResult is the normalized answer from a workflow run.
type WorkflowResult struct {
	Text           string
	ConversationID string
	MessageID      string
	// Raw is set when no known output path matched and Text carries the
	// pretty-printed upstream body instead of an extracted answer.
	Raw bool
}

type Service struct {
	APIKey   string
	Endpoint string
	Client   *http.Client
}

func NewService(apiKey, endpoint string) *Service {
	return &Service{
		APIKey:   apiKey,
		Endpoint: endpoint,
		Client:   &http.Client{},
	}
}

// RunWorkflow validates the input, issues exactly one blocking workflow-run
// call and returns the normalized result. The inputs key mapping
// (department→name, rating→feeling, details→what) matches the workflow's
// declared input variable names and must not change.
func (s *Service) RunWorkflow(ctx context.Context, in WorkflowInput, user string) (*WorkflowResult, error) {
	if in.Department == "" || in.Rating == "" || in.Details == "" {
		return nil, apperr.InvalidArgument("department, rating and details are required")
	}
	if s.APIKey == "" {
		return nil, apperr.Internal("DIFY_API_KEY is not configured", nil)
	}

	inputs := map[string]string{
		"name":    in.Department,
		"feeling": in.Rating,
		"what":    in.Details,
	}
	if in.Person != "" {
		inputs["person"] = in.Person
	}

	payload := map[string]interface{}{
		"inputs":        inputs,
		"response_mode": "blocking",
		"user":          user,
	}

	body, _ := json.Marshal(payload)
	log.Printf("[Dify] request: %s", string(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, apperr.Internal("failed to build Dify request", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, apperr.Internal("Dify request failed", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	log.Printf("[Dify] response %d: %s", resp.StatusCode, string(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperr.Upstream(resp.StatusCode, string(respBody))
	}

	var data map[string]interface{}
	if err := json.Unmarshal(respBody, &data); err != nil {
		return nil, apperr.Upstream(resp.StatusCode, "invalid JSON from Dify: "+err.Error())
	}

	result := &WorkflowResult{
		ConversationID: stringAt(data, "data", "conversation_id"),
		MessageID:      stringAt(data, "data", "message_id"),
	}

	if text, ok := ExtractWorkflowText(data); ok {
		result.Text = text
		return result, nil
	}

	// No known output path matched. Hand the whole body back as the answer
	// so the submitter still sees something actionable.
	log.Printf("[WARN] Dify response had no recognized output field")
	pretty, _ := json.MarshalIndent(data, "", "  ")
	result.Text = string(pretty)
	result.Raw = true
	return result, nil
}
