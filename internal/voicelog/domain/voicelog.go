package domain

import "time"

// VoiceLog is one journal entry: the submitted mood plus the workflow's
// derived feeling/checkpoint/next-step texts. Entries are append-only.
// Field names mirror the voicelogs/{id} document layout.
type VoiceLog struct {
	ID             string    `json:"id" firestore:"-"`
	Domain         string    `json:"domain" firestore:"domain"`
	User           string    `json:"user" firestore:"user"`
	UserEmail      string    `json:"user_email" firestore:"user_email"`
	UserUID        string    `json:"user_uid" firestore:"user_uid"`
	Datetime       time.Time `json:"datetime" firestore:"datetime,serverTimestamp"`
	Division       string    `json:"division" firestore:"division"`
	WeatherScore   int       `json:"weather_score" firestore:"weather_score"`
	WeatherReason  string    `json:"weather_reason" firestore:"weather_reason"`
	DifyFeeling    string    `json:"dify_feeling" firestore:"dify_feeling"`
	DifyCheckpoint string    `json:"dify_checkpoint" firestore:"dify_checkpoint"`
	DifyNextStep   string    `json:"dify_nextstep" firestore:"dify_nextstep"`
}

// MangaGeneration is the once-per-day marker for the manga image feature.
// One document per user, overwritten on each generation.
type MangaGeneration struct {
	UserUID         string    `json:"user_uid" firestore:"-"`
	LastGeneratedAt time.Time `json:"last_generated_at" firestore:"last_generated_at"`
}
