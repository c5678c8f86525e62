package usecase

import (
	"context"
	"errors"
	"strings"

	"vespa-academy/domain/dto"
	"vespa-academy/domain/model"
	"vespa-academy/domain/repository"
	"vespa-academy/infrastructure/logger"
)

type IVideoAdminUsecase interface {
	// AddVideo creates a video on an unseen (platform, platform_id) pair.
	// For an existing pair it degrades to an assignment merge: the stored
	// title is preserved and empty submitted lists leave existing
	// assignments alone.
	AddVideo(ctx context.Context, req dto.VideoUpsertRequest) (dto.VideoUpsertResponse, []model.ConstraintWarning, error)
	// EditVideo updates the video's fields and replaces its assignments
	// wholesale; empty submitted lists clear them.
	EditVideo(ctx context.Context, videoID int64, req dto.VideoUpsertRequest) ([]model.ConstraintWarning, error)
	DeleteVideo(ctx context.Context, videoID int64) error
}

type videoAdminUsecase struct {
	videoRepo repository.IVideoAdmin
}

func NewVideoAdminUsecase(videoRepo repository.IVideoAdmin) IVideoAdminUsecase {
	return &videoAdminUsecase{videoRepo: videoRepo}
}

func (u *videoAdminUsecase) AddVideo(ctx context.Context, req dto.VideoUpsertRequest) (dto.VideoUpsertResponse, []model.ConstraintWarning, error) {
	write, err := validateVideoRequest(req)
	if err != nil {
		return dto.VideoUpsertResponse{}, nil, err
	}

	videoID, err := u.videoRepo.FindVideoID(ctx, write.Platform, write.PlatformID)
	switch {
	case errors.Is(err, model.ErrNotFound):
		videoID, err = u.videoRepo.InsertVideo(ctx, write)
		if err != nil {
			return dto.VideoUpsertResponse{}, nil, err
		}
		warnings, err := u.videoRepo.MergeAssignments(ctx, videoID, req.Categories, req.Series)
		if err != nil {
			return dto.VideoUpsertResponse{}, nil, err
		}
		return dto.VideoUpsertResponse{VideoID: videoID, Created: true, Title: write.Title}, warnings, nil

	case err != nil:
		return dto.VideoUpsertResponse{}, nil, err
	}

	// Existing video: the stored title wins and omission never destroys.
	if len(req.Categories) == 0 && len(req.Series) == 0 {
		return dto.VideoUpsertResponse{VideoID: videoID, Merged: true}, nil, nil
	}
	warnings, err := u.videoRepo.MergeAssignments(ctx, videoID, req.Categories, req.Series)
	if err != nil {
		return dto.VideoUpsertResponse{}, nil, err
	}
	return dto.VideoUpsertResponse{VideoID: videoID, Merged: true}, warnings, nil
}

func (u *videoAdminUsecase) EditVideo(ctx context.Context, videoID int64, req dto.VideoUpsertRequest) ([]model.ConstraintWarning, error) {
	write, err := validateVideoRequest(req)
	if err != nil {
		return nil, err
	}

	if err := u.videoRepo.UpdateVideo(ctx, videoID, write); err != nil {
		return nil, err
	}
	warnings, err := u.videoRepo.ReplaceAssignments(ctx, videoID, req.Categories, req.Series)
	if err != nil {
		return nil, err
	}
	problemWarnings, err := u.videoRepo.ReplaceProblems(ctx, videoID, req.Problems)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, problemWarnings...)
	if len(warnings) > 0 {
		logger.GetLogger().WithField("warnings", warnings).Warn("Video edit completed with skipped assignments")
	}
	return warnings, nil
}

func (u *videoAdminUsecase) DeleteVideo(ctx context.Context, videoID int64) error {
	return u.videoRepo.DeleteVideo(ctx, videoID)
}

func validateVideoRequest(req dto.VideoUpsertRequest) (repository.VideoWrite, error) {
	platform := model.Platform(strings.ToLower(strings.TrimSpace(req.Platform)))
	switch platform {
	case model.PlatformYouTube, model.PlatformVimeo, model.PlatformMuse:
	default:
		return repository.VideoWrite{}, &model.ValidationError{Field: "platform", Reason: "must be one of youtube, vimeo, muse"}
	}
	if strings.TrimSpace(req.PlatformID) == "" {
		return repository.VideoWrite{}, &model.ValidationError{Field: "platform_id", Reason: "must not be empty"}
	}
	if strings.TrimSpace(req.Title) == "" {
		return repository.VideoWrite{}, &model.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	return repository.VideoWrite{
		Platform:   platform,
		PlatformID: strings.TrimSpace(req.PlatformID),
		Title:      strings.TrimSpace(req.Title),
		Keywords:   req.Keywords,
	}, nil
}
