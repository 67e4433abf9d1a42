package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naveen06raj/erp-api/internal/model"
)

type summaryStore struct {
	pool *pgxpool.Pool
}

func newSummaryStore(pool *pgxpool.Pool) SummaryStore {
	return &summaryStore{pool: pool}
}

const summaryColumns = `id, icon_url, title, description, date_time, isactive,
	stage, stage_item_id, entities, user_created, date_created, user_updated, date_updated`

func (s *summaryStore) GetByID(ctx context.Context, id int64) (*model.Summary, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+summaryColumns+` FROM sales_summaries WHERE id = $1`, id)
	summary, err := scanSummary(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return summary, nil
}

func (s *summaryStore) Create(ctx context.Context, summary *model.Summary) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sales_summaries (
			id, icon_url, title, description, date_time, isactive,
			stage, stage_item_id, entities, user_created, date_created
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		summary.ID,
		summary.IconURL,
		summary.Title,
		summary.Description,
		summary.OccurredAt,
		summary.IsActive,
		summary.Stage.String(),
		summary.StageItemID,
		summary.Entities,
		summary.UserCreated,
		summary.DateCreated,
	)
	return err
}

func (s *summaryStore) ListActiveByStageItem(ctx context.Context, stageItemID string) ([]model.Summary, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+summaryColumns+` FROM sales_summaries
		 WHERE stage_item_id = $1 AND isactive = true
		 ORDER BY date_time DESC`, stageItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

func (s *summaryStore) ListRecent(ctx context.Context, limit int32) ([]model.Summary, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+summaryColumns+` FROM sales_summaries
		 WHERE isactive = true
		 ORDER BY date_time DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

func (s *summaryStore) ListFiltered(ctx context.Context, stage *model.Stage, stageItemID *string) ([]model.Summary, error) {
	conds := []string{"isactive = true"}
	args := []any{}
	if stage != nil {
		args = append(args, stage.String())
		conds = append(conds, fmt.Sprintf("stage = $%d", len(args)))
	}
	if stageItemID != nil {
		args = append(args, *stageItemID)
		conds = append(conds, fmt.Sprintf("stage_item_id = $%d", len(args)))
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+summaryColumns+` FROM sales_summaries WHERE `+
			strings.Join(conds, " AND ")+` ORDER BY date_time DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

func (s *summaryStore) Deactivate(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE sales_summaries SET isactive = false, date_updated = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSummary(row pgx.Row) (*model.Summary, error) {
	var m model.Summary
	var stage string
	if err := row.Scan(
		&m.ID,
		&m.IconURL,
		&m.Title,
		&m.Description,
		&m.OccurredAt,
		&m.IsActive,
		&stage,
		&m.StageItemID,
		&m.Entities,
		&m.UserCreated,
		&m.DateCreated,
		&m.UserUpdated,
		&m.DateUpdated,
	); err != nil {
		return nil, err
	}
	m.Stage = model.Stage(stage)
	return &m, nil
}

func scanSummaries(rows pgx.Rows) ([]model.Summary, error) {
	var result []model.Summary
	for rows.Next() {
		m, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	return result, rows.Err()
}
