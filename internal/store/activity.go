package store

import (
	"fmt"

	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naveen06raj/erp-api/internal/model"
)

// activityTable maps each activity kind to its table and the column holding
// its human-readable title. The closed map doubles as the allow-list: a kind
// outside it never reaches SQL assembly.
type activityTable struct {
	name        string
	titleColumn string
	// comments have no status column; the timeline shows them as "Comment".
	fixedStatus string
}

var activityTables = map[model.ActivityKind]activityTable{
	model.ActivityCall:    {name: "sales_activity_calls", titleColumn: "call_agenda"},
	model.ActivityMeeting: {name: "sales_activity_meetings", titleColumn: "meeting_title"},
	model.ActivityTask:    {name: "sales_activity_tasks", titleColumn: "task_name"},
	model.ActivityEvent:   {name: "sales_activity_events", titleColumn: "event_title"},
	model.ActivityComment: {name: "sales_external_comments", titleColumn: "description", fixedStatus: "Comment"},
}

type activityStore struct {
	pool *pgxpool.Pool
}

func newActivityStore(pool *pgxpool.Pool) ActivityStore {
	return &activityStore{pool: pool}
}

func (s *activityStore) Create(ctx context.Context, rec *model.ActivityRecord) error {
	tbl, ok := activityTables[rec.Kind]
	if !ok {
		return fmt.Errorf("unknown activity kind %q", rec.Kind)
	}
	if tbl.fixedStatus != "" {
		return fmt.Errorf("activity kind %q is comment-backed, use the comment store", rec.Kind)
	}

	_, err := s.pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (
			id, %s, status, stage, stage_item_id, isactive, user_created, date_created
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, tbl.name, tbl.titleColumn),
		rec.ID,
		rec.Title,
		rec.Status,
		rec.Stage.String(),
		rec.StageItemID,
		rec.IsActive,
		rec.UserCreated,
		rec.DateCreated,
	)
	return err
}

func (s *activityStore) ListActiveByStageItem(ctx context.Context, kind model.ActivityKind, stageItemID string) ([]model.ActivityRecord, error) {
	tbl, ok := activityTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown activity kind %q", kind)
	}

	statusExpr := "status"
	if tbl.fixedStatus != "" {
		statusExpr = fmt.Sprintf("'%s'", tbl.fixedStatus)
	}

	rows, err := s.pool.Query(ctx,
		fmt.Sprintf(`SELECT id, %s, %s, stage, stage_item_id, isactive,
			user_created, date_created, user_updated, date_updated
		 FROM %s
		 WHERE stage_item_id = $1 AND isactive = true
		 ORDER BY date_created DESC`, tbl.titleColumn, statusExpr, tbl.name),
		stageItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ActivityRecord
	for rows.Next() {
		rec, err := scanActivity(rows, kind)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	return result, rows.Err()
}

func (s *activityStore) Deactivate(ctx context.Context, kind model.ActivityKind, id int64) error {
	tbl, ok := activityTables[kind]
	if !ok {
		return fmt.Errorf("unknown activity kind %q", kind)
	}

	tag, err := s.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET isactive = false, date_updated = NOW() WHERE id = $1`, tbl.name), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanActivity(row pgx.Row, kind model.ActivityKind) (*model.ActivityRecord, error) {
	var rec model.ActivityRecord
	var stage string
	var title, status *string
	if err := row.Scan(
		&rec.ID,
		&title,
		&status,
		&stage,
		&rec.StageItemID,
		&rec.IsActive,
		&rec.UserCreated,
		&rec.DateCreated,
		&rec.UserUpdated,
		&rec.DateUpdated,
	); err != nil {
		return nil, err
	}
	rec.Kind = kind
	rec.Stage = model.Stage(stage)
	if title != nil {
		rec.Title = *title
	}
	if status != nil {
		rec.Status = *status
	}
	return &rec, nil
}
