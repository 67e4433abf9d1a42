package store

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Stores provides access to all store implementations over one pool.
type Stores struct {
	pool *pgxpool.Pool
}

func NewStores(pool *pgxpool.Pool) *Stores {
	return &Stores{pool: pool}
}

func (s *Stores) Summaries() SummaryStore {
	return newSummaryStore(s.pool)
}

func (s *Stores) Activities() ActivityStore {
	return newActivityStore(s.pool)
}

func (s *Stores) Comments() CommentStore {
	return newCommentStore(s.pool)
}

func (s *Stores) Leads() LeadStore {
	return newLeadStore(s.pool)
}

func (s *Stores) Grids() GridStore {
	return newGridStore(s.pool)
}
