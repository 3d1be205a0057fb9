package repository

import (
	"context"

	"voicelog-backend/internal/voicelog/domain"
)

// VoiceLogRepository defines the interface for journal entry and manga
// marker storage. The journal is append-only; entries are never mutated or
// deleted.
type VoiceLogRepository interface {
	// Append inserts a new entry. The store assigns the ID and the server
	// timestamp; both are filled in on the passed entry.
	Append(ctx context.Context, entry *domain.VoiceLog) error

	// AllForUser returns every entry for the user. Date bucketing is the
	// caller's concern.
	AllForUser(ctx context.Context, userUID string) ([]*domain.VoiceLog, error)

	// GetMangaGeneration returns the user's marker, or (nil, nil) when absent.
	GetMangaGeneration(ctx context.Context, userUID string) (*domain.MangaGeneration, error)

	// SetMangaGeneration upserts the marker, overwriting any previous one.
	SetMangaGeneration(ctx context.Context, marker *domain.MangaGeneration) error
}
