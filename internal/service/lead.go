package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/naveen06raj/erp-api/common/id"
	"github.com/naveen06raj/erp-api/internal/grid"
	"github.com/naveen06raj/erp-api/internal/model"
	"github.com/naveen06raj/erp-api/internal/store"
)

type LeadService interface {
	GetByID(ctx context.Context, id int64) (*model.Lead, error)
	Create(ctx context.Context, lead *model.Lead) (int64, error)
	Update(ctx context.Context, lead *model.Lead) error
	Delete(ctx context.Context, id int64) error
	Grid(ctx context.Context, f grid.Filter) (grid.Page[model.LeadGridRow], error)
}

type leadService struct {
	leadStore store.LeadStore
	emitter   SummaryService
}

func NewLeadService(leadStore store.LeadStore, emitter SummaryService) LeadService {
	return &leadService{
		leadStore: leadStore,
		emitter:   emitter,
	}
}

func (s *leadService) GetByID(ctx context.Context, leadID int64) (*model.Lead, error) {
	return s.leadStore.GetByID(ctx, leadID)
}

func (s *leadService) Create(ctx context.Context, lead *model.Lead) (int64, error) {
	if err := s.validate(lead); err != nil {
		return 0, err
	}

	lead.IsActive = true
	lead.DateCreated = time.Now().UTC()
	lead.ID = id.New()

	if err := s.leadStore.Create(ctx, lead); err != nil {
		slog.ErrorContext(ctx, "failed to create lead",
			"error", err,
			"customer_name", lead.CustomerName,
		)
		return 0, fmt.Errorf("creating lead: %w", err)
	}

	slog.InfoContext(ctx, "lead created", "lead_id", lead.ID)
	s.emitSummary(ctx, lead, "Lead created")
	return lead.ID, nil
}

func (s *leadService) Update(ctx context.Context, lead *model.Lead) error {
	if err := s.validate(lead); err != nil {
		return err
	}

	now := time.Now().UTC()
	lead.DateUpdated = &now

	if err := s.leadStore.Update(ctx, lead); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		slog.ErrorContext(ctx, "failed to update lead",
			"error", err,
			"lead_id", lead.ID,
		)
		return fmt.Errorf("updating lead: %w", err)
	}

	s.emitSummary(ctx, lead, "Lead updated")
	return nil
}

func (s *leadService) Delete(ctx context.Context, leadID int64) error {
	return s.leadStore.Delete(ctx, leadID)
}

func (s *leadService) Grid(ctx context.Context, f grid.Filter) (grid.Page[model.LeadGridRow], error) {
	return s.leadStore.Grid(ctx, f)
}

func (s *leadService) validate(lead *model.Lead) error {
	var violations []string
	if model.IsBlankOrPlaceholder(lead.CustomerName) {
		violations = append(violations, "customer name is required")
	}
	if err := model.NewValidationError(violations); err != nil {
		return err
	}
	lead.ContactName = model.CleanOptional(lead.ContactName)
	lead.Email = model.CleanOptional(lead.Email)
	lead.MobileNo = model.CleanOptional(lead.MobileNo)
	lead.LeadSource = model.CleanOptional(lead.LeadSource)
	lead.LeadType = model.CleanOptional(lead.LeadType)
	lead.Status = model.CleanOptional(lead.Status)
	lead.Score = model.CleanOptional(lead.Score)
	lead.Territory = model.CleanOptional(lead.Territory)
	lead.Zone = model.CleanOptional(lead.Zone)
	lead.City = model.CleanOptional(lead.City)
	lead.State = model.CleanOptional(lead.State)
	lead.Comments = model.CleanOptional(lead.Comments)
	return nil
}

func (s *leadService) emitSummary(ctx context.Context, lead *model.Lead, title string) {
	entities, err := json.Marshal(map[string]any{
		"LeadId":       lead.ID,
		"CustomerName": lead.CustomerName,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to encode lead entities payload", "error", err)
		entities = nil
	}

	emitBestEffort(ctx, s.emitter, &model.Summary{
		Title:       title,
		Description: &lead.CustomerName,
		Stage:       model.StageLead,
		StageItemID: strconv.FormatInt(lead.ID, 10),
		Entities:    entities,
		UserCreated: lead.UserCreated,
	})
}
