package usecase

import (
	"context"
	"log"
	"time"

	authusecase "voicelog-backend/internal/auth/usecase"
	voicelogdomain "voicelog-backend/internal/voicelog/domain"
	"voicelog-backend/internal/voicelog/dto"
	"voicelog-backend/internal/voicelog/repository"
	"voicelog-backend/pkg/apperr"
	"voicelog-backend/pkg/dify"
	"voicelog-backend/pkg/llm"
)

// WorkflowRunner is the slice of the Dify service the usecase needs.
type WorkflowRunner interface {
	RunWorkflow(ctx context.Context, in dify.WorkflowInput, user string) (*dify.WorkflowResult, error)
}

// VoiceLogUsecase defines the journaling use cases.
type VoiceLogUsecase interface {
	// Submit forwards one mood submission to the workflow app and returns the
	// normalized answer. Persistence is the client's separate Append call.
	Submit(ctx context.Context, user *authusecase.User, req dto.SubmitRequest) (*dto.SubmitResponse, error)

	// Append persists one journal entry.
	Append(ctx context.Context, user *authusecase.User, req dto.AppendRequest) (*voicelogdomain.VoiceLog, error)

	// History returns all of the user's entries plus derived counts.
	History(ctx context.Context, userUID string) (*dto.HistoryResponse, error)

	// Calendar returns the per-date entry map for the calendar view.
	Calendar(ctx context.Context, userUID string) (*dto.CalendarResponse, error)

	// ByDate returns the user's entries for one YYYY-MM-DD date.
	ByDate(ctx context.Context, userUID, date string) ([]*voicelogdomain.VoiceLog, error)

	// MangaAllowedToday reports whether the user may generate a manga image
	// today. Absent marker means allowed.
	MangaAllowedToday(ctx context.Context, userUID string) (bool, error)

	// GenerateManga runs the once-per-day gated image generation.
	GenerateManga(ctx context.Context, userUID string, req dto.MangaRequest) (*dto.MangaResponse, error)
}

type voiceLogUsecase struct {
	repo     repository.VoiceLogRepository
	workflow WorkflowRunner
	images   llm.ImageService
	loc      *time.Location
	now      func() time.Time
}

func NewVoiceLogUsecase(repo repository.VoiceLogRepository, workflow WorkflowRunner, images llm.ImageService, loc *time.Location) VoiceLogUsecase {
	return &voiceLogUsecase{
		repo:     repo,
		workflow: workflow,
		images:   images,
		loc:      loc,
		now:      time.Now,
	}
}

func (u *voiceLogUsecase) Submit(ctx context.Context, user *authusecase.User, req dto.SubmitRequest) (*dto.SubmitResponse, error) {
	result, err := u.workflow.RunWorkflow(ctx, dify.WorkflowInput{
		Department: req.Department,
		Rating:     req.Rating,
		Details:    req.Details,
		Person:     req.Person,
	}, user.UID)
	if err != nil {
		return nil, err
	}

	return &dto.SubmitResponse{
		Success:        true,
		Message:        result.Text,
		Text:           result.Text,
		ConversationID: result.ConversationID,
		MessageID:      result.MessageID,
	}, nil
}

func (u *voiceLogUsecase) Append(ctx context.Context, user *authusecase.User, req dto.AppendRequest) (*voicelogdomain.VoiceLog, error) {
	if req.Division == "" {
		return nil, apperr.InvalidArgument("division is required")
	}
	if req.WeatherScore < 1 || req.WeatherScore > 5 {
		return nil, apperr.InvalidArgument("weather_score must be between 1 and 5")
	}

	entry := &voicelogdomain.VoiceLog{
		Domain:         req.Domain,
		User:           user.Name,
		UserEmail:      user.Email,
		UserUID:        user.UID,
		Division:       req.Division,
		WeatherScore:   req.WeatherScore,
		WeatherReason:  req.WeatherReason,
		DifyFeeling:    req.DifyFeeling,
		DifyCheckpoint: req.DifyCheckpoint,
		DifyNextStep:   req.DifyNextStep,
	}
	if err := u.repo.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (u *voiceLogUsecase) History(ctx context.Context, userUID string) (*dto.HistoryResponse, error) {
	logs, err := u.repo.AllForUser(ctx, userUID)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []*voicelogdomain.VoiceLog{}
	}
	return &dto.HistoryResponse{
		Logs:  logs,
		Count: len(logs),
		Days:  voicelogdomain.DistinctDays(logs, u.loc),
	}, nil
}

func (u *voiceLogUsecase) Calendar(ctx context.Context, userUID string) (*dto.CalendarResponse, error) {
	logs, err := u.repo.AllForUser(ctx, userUID)
	if err != nil {
		return nil, err
	}
	return &dto.CalendarResponse{
		Entries: voicelogdomain.LatestPerDay(logs, u.loc),
	}, nil
}

func (u *voiceLogUsecase) ByDate(ctx context.Context, userUID, date string) ([]*voicelogdomain.VoiceLog, error) {
	if _, err := time.ParseInLocation("2006-01-02", date, u.loc); err != nil {
		return nil, apperr.InvalidArgument("date must be YYYY-MM-DD")
	}

	logs, err := u.repo.AllForUser(ctx, userUID)
	if err != nil {
		return nil, err
	}
	return voicelogdomain.ForDate(logs, date, u.loc), nil
}

func (u *voiceLogUsecase) MangaAllowedToday(ctx context.Context, userUID string) (bool, error) {
	marker, err := u.repo.GetMangaGeneration(ctx, userUID)
	if err != nil {
		return false, err
	}
	if marker == nil {
		return true, nil
	}
	return !voicelogdomain.SameDay(marker.LastGeneratedAt, u.now(), u.loc), nil
}

func (u *voiceLogUsecase) GenerateManga(ctx context.Context, userUID string, req dto.MangaRequest) (*dto.MangaResponse, error) {
	allowed, err := u.MangaAllowedToday(ctx, userUID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperr.Forbidden("manga already generated today")
	}
	if u.images == nil {
		return nil, apperr.Internal("image provider is not configured", nil)
	}

	result, err := u.images.GenerateImage(ctx, llm.ImageRequest{
		Prompt:  req.Prompt,
		Model:   req.Model,
		Size:    req.Size,
		Quality: req.Quality,
	})
	if err != nil {
		return nil, err
	}

	// The image is already produced; a failed marker write must not take it
	// away from the user.
	if err := u.repo.SetMangaGeneration(ctx, &voicelogdomain.MangaGeneration{
		UserUID:         userUID,
		LastGeneratedAt: u.now(),
	}); err != nil {
		log.Printf("[WARN] failed to record manga generation for %s: %v", userUID, err)
	}

	return &dto.MangaResponse{
		Success:       true,
		Message:       "画像が生成されました",
		ImageURL:      result.ImageURL,
		RevisedPrompt: result.RevisedPrompt,
		Model:         result.Model,
	}, nil
}
