package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naveen06raj/erp-api/internal/grid"
	"github.com/naveen06raj/erp-api/internal/model"
)

type leadStore struct {
	pool *pgxpool.Pool
}

func newLeadStore(pool *pgxpool.Pool) LeadStore {
	return &leadStore{pool: pool}
}

const leadColumns = `id, lead_id, customer_name, contact_name, email, contact_mobile_no,
	lead_source, lead_type, status, score, territory, zone, city, state, comments,
	isactive, user_created, date_created, user_updated, date_updated`

func (s *leadStore) GetByID(ctx context.Context, id int64) (*model.Lead, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+leadColumns+` FROM sales_lead WHERE id = $1`, id)
	lead, err := scanLead(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return lead, nil
}

func (s *leadStore) Create(ctx context.Context, lead *model.Lead) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sales_lead (
			id, lead_id, customer_name, contact_name, email, contact_mobile_no,
			lead_source, lead_type, status, score, territory, zone, city, state,
			comments, isactive, user_created, date_created
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		lead.ID,
		lead.LeadID,
		lead.CustomerName,
		lead.ContactName,
		lead.Email,
		lead.MobileNo,
		lead.LeadSource,
		lead.LeadType,
		lead.Status,
		lead.Score,
		lead.Territory,
		lead.Zone,
		lead.City,
		lead.State,
		lead.Comments,
		lead.IsActive,
		lead.UserCreated,
		lead.DateCreated,
	)
	return err
}

func (s *leadStore) Update(ctx context.Context, lead *model.Lead) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE sales_lead SET
			lead_id = $2,
			customer_name = $3,
			contact_name = $4,
			email = $5,
			contact_mobile_no = $6,
			lead_source = $7,
			lead_type = $8,
			status = $9,
			score = $10,
			territory = $11,
			zone = $12,
			city = $13,
			state = $14,
			comments = $15,
			user_updated = $16,
			date_updated = NOW()
		 WHERE id = $1`,
		lead.ID,
		lead.LeadID,
		lead.CustomerName,
		lead.ContactName,
		lead.Email,
		lead.MobileNo,
		lead.LeadSource,
		lead.LeadType,
		lead.Status,
		lead.Score,
		lead.Territory,
		lead.Zone,
		lead.City,
		lead.State,
		lead.Comments,
		lead.UserUpdated,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *leadStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE sales_lead SET isactive = false, date_updated = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *leadStore) Grid(ctx context.Context, f grid.Filter) (grid.Page[model.LeadGridRow], error) {
	return queryGrid(ctx, s.pool, leadGridRegistry, f, scanLeadGridRow)
}

func scanLead(row pgx.Row) (*model.Lead, error) {
	var l model.Lead
	if err := row.Scan(
		&l.ID,
		&l.LeadID,
		&l.CustomerName,
		&l.ContactName,
		&l.Email,
		&l.MobileNo,
		&l.LeadSource,
		&l.LeadType,
		&l.Status,
		&l.Score,
		&l.Territory,
		&l.Zone,
		&l.City,
		&l.State,
		&l.Comments,
		&l.IsActive,
		&l.UserCreated,
		&l.DateCreated,
		&l.UserUpdated,
		&l.DateUpdated,
	); err != nil {
		return nil, err
	}
	return &l, nil
}

func scanLeadGridRow(rows pgx.Rows) (model.LeadGridRow, error) {
	var r model.LeadGridRow
	err := rows.Scan(
		&r.ID,
		&r.LeadID,
		&r.CustomerName,
		&r.ContactName,
		&r.Email,
		&r.MobileNo,
		&r.Status,
		&r.Score,
		&r.LeadType,
		&r.Territory,
		&r.Zone,
		&r.DateCreated,
	)
	return r, err
}
