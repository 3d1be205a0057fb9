package dto

import voicelogdomain "voicelog-backend/internal/voicelog/domain"

// SubmitRequest is the /api/dify/send body: one mood submission forwarded to
// the workflow app.
type SubmitRequest struct {
	Department string `json:"department"`
	Rating     string `json:"rating"`
	Details    string `json:"details"`
	Person     string `json:"person,omitempty"`
}

type SubmitResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	Text           string `json:"text"`
	ConversationID string `json:"conversationId"`
	MessageID      string `json:"messageId"`
}

// AppendRequest persists one journal entry after the workflow answered.
type AppendRequest struct {
	Domain         string `json:"domain"`
	Division       string `json:"division"`
	WeatherScore   int    `json:"weather_score"`
	WeatherReason  string `json:"weather_reason"`
	DifyFeeling    string `json:"dify_feeling"`
	DifyCheckpoint string `json:"dify_checkpoint"`
	DifyNextStep   string `json:"dify_nextstep"`
}

type HistoryResponse struct {
	Logs  []*voicelogdomain.VoiceLog `json:"logs"`
	Count int                        `json:"count"`
	Days  int                        `json:"days"`
}

type CalendarResponse struct {
	// Entries maps YYYY-MM-DD to the entry displayed for that date.
	Entries map[string]*voicelogdomain.VoiceLog `json:"entries"`
}

type MangaAllowanceResponse struct {
	Allowed bool `json:"allowed"`
}

type MangaRequest struct {
	Prompt  string `json:"prompt" binding:"required"`
	Model   string `json:"model,omitempty"`
	Size    string `json:"size,omitempty"`
	Quality string `json:"quality,omitempty"`
}

type MangaResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ImageURL      string `json:"imageUrl"`
	RevisedPrompt string `json:"revisedPrompt,omitempty"`
	Model         string `json:"model"`
}
