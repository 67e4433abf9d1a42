package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naveen06raj/erp-api/internal/model"
)

type commentStore struct {
	pool *pgxpool.Pool
}

func newCommentStore(pool *pgxpool.Pool) CommentStore {
	return &commentStore{pool: pool}
}

const commentColumns = `id, title, description, date_time, stage, stage_item_id,
	isactive, activity_id, user_created, date_created, user_updated, date_updated`

func (s *commentStore) GetByID(ctx context.Context, id int64) (*model.ExternalComment, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+commentColumns+` FROM sales_external_comments WHERE id = $1`, id)
	comment, err := scanComment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentStore) GetActiveByActivityID(ctx context.Context, activityID string) (*model.ExternalComment, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+commentColumns+` FROM sales_external_comments
		 WHERE activity_id = $1 AND isactive = true
		 ORDER BY date_time DESC
		 LIMIT 1`, activityID)
	comment, err := scanComment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentStore) Create(ctx context.Context, comment *model.ExternalComment) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sales_external_comments (
			id, title, description, date_time, stage, stage_item_id,
			isactive, activity_id, user_created, date_created
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		comment.ID,
		comment.Title,
		comment.Description,
		comment.DateTime,
		comment.Stage.String(),
		comment.StageItemID,
		comment.IsActive,
		comment.ActivityID,
		comment.UserCreated,
		comment.DateCreated,
	)
	return err
}

func (s *commentStore) Update(ctx context.Context, comment *model.ExternalComment) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE sales_external_comments SET
			title = $2,
			description = $3,
			date_time = $4,
			user_updated = $5,
			date_updated = NOW()
		 WHERE id = $1`,
		comment.ID,
		comment.Title,
		comment.Description,
		comment.DateTime,
		comment.UserUpdated,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *commentStore) ListByStageItem(ctx context.Context, stage model.Stage, stageItemID string) ([]model.ExternalComment, error) {
	// DISTINCT ON keeps the latest comment per activity.
	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT ON (COALESCE(activity_id, id::text)) `+commentColumns+`
		 FROM sales_external_comments
		 WHERE isactive = true
			AND stage = $1
			AND stage_item_id = $2
			AND description IS NOT NULL
			AND description != ''
			AND description != 'string'
			AND LENGTH(TRIM(description)) > 0
		 ORDER BY COALESCE(activity_id, id::text), date_time DESC`,
		stage.String(), stageItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ExternalComment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	return result, rows.Err()
}

func (s *commentStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE sales_external_comments SET isactive = false, date_updated = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanComment(row pgx.Row) (*model.ExternalComment, error) {
	var c model.ExternalComment
	var stage string
	if err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.DateTime,
		&stage,
		&c.StageItemID,
		&c.IsActive,
		&c.ActivityID,
		&c.UserCreated,
		&c.DateCreated,
		&c.UserUpdated,
		&c.DateUpdated,
	); err != nil {
		return nil, err
	}
	c.Stage = model.Stage(stage)
	return &c, nil
}
