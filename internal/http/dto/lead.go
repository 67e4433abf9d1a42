package dto

import (
	"time"

	"github.com/naveen06raj/erp-api/internal/model"
)

type CreateLeadRequest struct {
	LeadID       *string `json:"leadId,omitempty"`
	CustomerName string  `json:"customerName" binding:"required,min=1,max=255"`
	ContactName  *string `json:"contactName,omitempty"`
	Email        *string `json:"email,omitempty" binding:"omitempty,email"`
	MobileNo     *string `json:"mobileNo,omitempty"`
	LeadSource   *string `json:"leadSource,omitempty"`
	LeadType     *string `json:"leadType,omitempty"`
	Status       *string `json:"status,omitempty"`
	Score        *string `json:"score,omitempty"`
	Territory    *string `json:"territory,omitempty"`
	Zone         *string `json:"zone,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	Comments     *string `json:"comments,omitempty"`
	UserCreated  *int64  `json:"userCreated,omitempty"`
}

func (r CreateLeadRequest) ToModel() *model.Lead {
	return &model.Lead{
		LeadID:       r.LeadID,
		CustomerName: r.CustomerName,
		ContactName:  r.ContactName,
		Email:        r.Email,
		MobileNo:     r.MobileNo,
		LeadSource:   r.LeadSource,
		LeadType:     r.LeadType,
		Status:       r.Status,
		Score:        r.Score,
		Territory:    r.Territory,
		Zone:         r.Zone,
		City:         r.City,
		State:        r.State,
		Comments:     r.Comments,
		UserCreated:  r.UserCreated,
	}
}

type UpdateLeadRequest struct {
	LeadID       *string `json:"leadId,omitempty"`
	CustomerName string  `json:"customerName" binding:"required,min=1,max=255"`
	ContactName  *string `json:"contactName,omitempty"`
	Email        *string `json:"email,omitempty" binding:"omitempty,email"`
	MobileNo     *string `json:"mobileNo,omitempty"`
	LeadSource   *string `json:"leadSource,omitempty"`
	LeadType     *string `json:"leadType,omitempty"`
	Status       *string `json:"status,omitempty"`
	Score        *string `json:"score,omitempty"`
	Territory    *string `json:"territory,omitempty"`
	Zone         *string `json:"zone,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	Comments     *string `json:"comments,omitempty"`
	UserUpdated  *int64  `json:"userUpdated,omitempty"`
}

func (r UpdateLeadRequest) ToModel(id int64) *model.Lead {
	return &model.Lead{
		ID:           id,
		LeadID:       r.LeadID,
		CustomerName: r.CustomerName,
		ContactName:  r.ContactName,
		Email:        r.Email,
		MobileNo:     r.MobileNo,
		LeadSource:   r.LeadSource,
		LeadType:     r.LeadType,
		Status:       r.Status,
		Score:        r.Score,
		Territory:    r.Territory,
		Zone:         r.Zone,
		City:         r.City,
		State:        r.State,
		Comments:     r.Comments,
		UserUpdated:  r.UserUpdated,
	}
}

type LeadResponse struct {
	ID           int64      `json:"id,string"`
	LeadID       *string    `json:"leadId,omitempty"`
	CustomerName string     `json:"customerName"`
	ContactName  *string    `json:"contactName,omitempty"`
	Email        *string    `json:"email,omitempty"`
	MobileNo     *string    `json:"mobileNo,omitempty"`
	LeadSource   *string    `json:"leadSource,omitempty"`
	LeadType     *string    `json:"leadType,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Score        *string    `json:"score,omitempty"`
	Territory    *string    `json:"territory,omitempty"`
	Zone         *string    `json:"zone,omitempty"`
	City         *string    `json:"city,omitempty"`
	State        *string    `json:"state,omitempty"`
	Comments     *string    `json:"comments,omitempty"`
	IsActive     bool       `json:"isActive"`
	DateCreated  time.Time  `json:"dateCreated"`
	DateUpdated  *time.Time `json:"dateUpdated,omitempty"`
}

func ToLeadResponse(l *model.Lead) *LeadResponse {
	return &LeadResponse{
		ID:           l.ID,
		LeadID:       l.LeadID,
		CustomerName: l.CustomerName,
		ContactName:  l.ContactName,
		Email:        l.Email,
		MobileNo:     l.MobileNo,
		LeadSource:   l.LeadSource,
		LeadType:     l.LeadType,
		Status:       l.Status,
		Score:        l.Score,
		Territory:    l.Territory,
		Zone:         l.Zone,
		City:         l.City,
		State:        l.State,
		Comments:     l.Comments,
		IsActive:     l.IsActive,
		DateCreated:  l.DateCreated,
		DateUpdated:  l.DateUpdated,
	}
}
