package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"voicelog-backend/internal/voicelog/domain"
)

const (
	voiceLogsCollection = "voicelogs"
	mangaCollection     = "manga_generations"
)

// firestoreVoiceLogRepository implements VoiceLogRepository on Firestore.
// Layout: voicelogs/{autoId}, manga_generations/{userUid}.
type firestoreVoiceLogRepository struct {
	client *firestore.Client
}

func NewFirestoreVoiceLogRepository(client *firestore.Client) VoiceLogRepository {
	return &firestoreVoiceLogRepository{client: client}
}

func (r *firestoreVoiceLogRepository) Append(ctx context.Context, entry *domain.VoiceLog) error {
	entry.ID = uuid.New().String()
	// Datetime is zero here; the serverTimestamp tag makes Firestore assign
	// the commit time.
	wr, err := r.client.Collection(voiceLogsCollection).Doc(entry.ID).Set(ctx, entry)
	if err != nil {
		return err
	}
	entry.Datetime = wr.UpdateTime
	return nil
}

func (r *firestoreVoiceLogRepository) AllForUser(ctx context.Context, userUID string) ([]*domain.VoiceLog, error) {
	iter := r.client.Collection(voiceLogsCollection).Where("user_uid", "==", userUID).Documents(ctx)
	defer iter.Stop()

	var logs []*domain.VoiceLog
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var entry domain.VoiceLog
		if err := snap.DataTo(&entry); err != nil {
			return nil, err
		}
		entry.ID = snap.Ref.ID
		logs = append(logs, &entry)
	}
	return logs, nil
}

func (r *firestoreVoiceLogRepository) GetMangaGeneration(ctx context.Context, userUID string) (*domain.MangaGeneration, error) {
	snap, err := r.client.Collection(mangaCollection).Doc(userUID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var marker domain.MangaGeneration
	if err := snap.DataTo(&marker); err != nil {
		return nil, err
	}
	marker.UserUID = userUID
	return &marker, nil
}

func (r *firestoreVoiceLogRepository) SetMangaGeneration(ctx context.Context, marker *domain.MangaGeneration) error {
	_, err := r.client.Collection(mangaCollection).Doc(marker.UserUID).Set(ctx, marker)
	return err
}
