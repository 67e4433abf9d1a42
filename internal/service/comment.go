package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/naveen06raj/erp-api/common/id"
	"github.com/naveen06raj/erp-api/internal/model"
	"github.com/naveen06raj/erp-api/internal/store"
)

// ErrDuplicateActivityComment is returned when an active comment already
// exists for the requested activity. One comment per activity-creation event.
var ErrDuplicateActivityComment = errors.New("comment already exists for this activity")

// Comment titles are canonical: whatever the caller sends, the feed shows
// "comment added" / "comment updated" so the timeline stays scannable.
const (
	commentAddedTitle   = "comment added"
	commentUpdatedTitle = "comment updated"
)

type CommentService interface {
	Create(ctx context.Context, comment *model.ExternalComment) (int64, error)
	CreateForActivity(ctx context.Context, comment *model.ExternalComment) (int64, error)
	Update(ctx context.Context, comment *model.ExternalComment) error
	GetByID(ctx context.Context, id int64) (*model.ExternalComment, error)
	ListByStageItem(ctx context.Context, stage, stageItemID string) ([]model.ExternalComment, error)
	Delete(ctx context.Context, id int64) error
}

type commentService struct {
	commentStore store.CommentStore
	emitter      SummaryService
}

func NewCommentService(commentStore store.CommentStore, emitter SummaryService) CommentService {
	return &commentService{
		commentStore: commentStore,
		emitter:      emitter,
	}
}

func (s *commentService) Create(ctx context.Context, comment *model.ExternalComment) (int64, error) {
	if err := s.validate(comment); err != nil {
		return 0, err
	}

	comment.Title = commentAddedTitle
	comment.IsActive = true
	now := time.Now().UTC()
	comment.DateTime = now
	comment.DateCreated = now
	comment.ID = id.New()

	if err := s.commentStore.Create(ctx, comment); err != nil {
		slog.ErrorContext(ctx, "failed to create comment",
			"error", err,
			"stage_item_id", comment.StageItemID,
		)
		return 0, fmt.Errorf("creating comment: %w", err)
	}

	s.emitSummary(ctx, comment, commentAddedTitle)
	return comment.ID, nil
}

func (s *commentService) CreateForActivity(ctx context.Context, comment *model.ExternalComment) (int64, error) {
	var violations []string
	if comment.ActivityID == nil || model.IsBlankOrPlaceholder(*comment.ActivityID) {
		violations = append(violations, "activity id is required")
	}
	if err := model.NewValidationError(violations); err != nil {
		return 0, err
	}

	existing, err := s.commentStore.GetActiveByActivityID(ctx, *comment.ActivityID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return 0, fmt.Errorf("checking for existing activity comment: %w", err)
	}
	if existing != nil {
		slog.InfoContext(ctx, "duplicate activity comment rejected",
			"activity_id", *comment.ActivityID,
			"existing_comment_id", existing.ID,
		)
		return 0, ErrDuplicateActivityComment
	}

	return s.Create(ctx, comment)
}

func (s *commentService) Update(ctx context.Context, comment *model.ExternalComment) error {
	if err := s.validate(comment); err != nil {
		return err
	}

	comment.Title = commentUpdatedTitle
	comment.DateTime = time.Now().UTC()

	if err := s.commentStore.Update(ctx, comment); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		slog.ErrorContext(ctx, "failed to update comment",
			"error", err,
			"comment_id", comment.ID,
		)
		return fmt.Errorf("updating comment: %w", err)
	}

	// Summaries are append-only: an update emits a fresh "comment updated"
	// row instead of rewriting history.
	s.emitSummary(ctx, comment, commentUpdatedTitle)
	return nil
}

func (s *commentService) GetByID(ctx context.Context, commentID int64) (*model.ExternalComment, error) {
	return s.commentStore.GetByID(ctx, commentID)
}

func (s *commentService) ListByStageItem(ctx context.Context, stage, stageItemID string) ([]model.ExternalComment, error) {
	parsed, ok := model.ParseStage(stage)
	if !ok {
		return nil, model.NewValidationError([]string{fmt.Sprintf("invalid stage %q", stage)})
	}
	return s.commentStore.ListByStageItem(ctx, parsed, stageItemID)
}

func (s *commentService) Delete(ctx context.Context, commentID int64) error {
	// Soft delete only. Summaries already emitted for this comment remain:
	// the feed is an audit trail, not a mirror.
	return s.commentStore.Delete(ctx, commentID)
}

func (s *commentService) validate(comment *model.ExternalComment) error {
	var violations []string
	if _, ok := model.ParseStage(string(comment.Stage)); !ok {
		violations = append(violations, fmt.Sprintf("invalid stage %q", comment.Stage))
	}
	if model.IsBlankOrPlaceholder(comment.StageItemID) {
		violations = append(violations, "stage item id is required")
	}
	if model.IsBlankOrPlaceholder(comment.Description) {
		violations = append(violations, "description cannot be empty or the default value")
	}
	if err := model.NewValidationError(violations); err != nil {
		return err
	}
	stage, _ := model.ParseStage(string(comment.Stage))
	comment.Stage = stage
	return nil
}

func (s *commentService) emitSummary(ctx context.Context, comment *model.ExternalComment, title string) {
	entities, err := json.Marshal(map[string]any{
		"CommentId":  comment.ID,
		"ActivityId": comment.ActivityID,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to encode comment entities payload", "error", err)
		entities = nil
	}

	desc := comment.Description
	emitBestEffort(ctx, s.emitter, &model.Summary{
		Title:       title,
		Description: &desc,
		OccurredAt:  comment.DateTime,
		Stage:       comment.Stage,
		StageItemID: comment.StageItemID,
		Entities:    entities,
		UserCreated: comment.UserCreated,
	})
}
