package service

import (
	"github.com/naveen06raj/erp-api/internal/cache"
	"github.com/naveen06raj/erp-api/internal/store"
)

type Services struct {
	stores  *store.Stores
	options *cache.OptionsCache
}

func NewServices(stores *store.Stores, options *cache.OptionsCache) *Services {
	return &Services{
		stores:  stores,
		options: options,
	}
}

func (s *Services) Summaries() SummaryService {
	return NewSummaryService(s.stores.Summaries())
}

func (s *Services) Timeline() TimelineService {
	return NewTimelineService(s.stores.Summaries(), s.stores.Activities())
}

func (s *Services) Activities() ActivityService {
	return NewActivityService(s.stores.Activities(), s.Summaries())
}

func (s *Services) Comments() CommentService {
	return NewCommentService(s.stores.Comments(), s.Summaries())
}

func (s *Services) Leads() LeadService {
	return NewLeadService(s.stores.Leads(), s.Summaries())
}

func (s *Services) Grids() GridService {
	return NewGridService(s.stores.Grids(), s.options)
}
