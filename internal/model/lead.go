package model

import "time"

// Lead is the entry point of the sales pipeline.
type Lead struct {
	ID           int64
	LeadID       *string
	CustomerName string
	ContactName  *string
	Email        *string
	MobileNo     *string
	LeadSource   *string
	LeadType     *string
	Status       *string
	Score        *string
	Territory    *string
	Zone         *string
	City         *string
	State        *string
	Comments     *string
	IsActive     bool
	UserCreated  *int64
	DateCreated  time.Time
	UserUpdated  *int64
	DateUpdated  *time.Time
}

// LeadGridRow is the searchable projection the lead grid returns.
type LeadGridRow struct {
	ID           int64
	LeadID       *string
	CustomerName string
	ContactName  *string
	Email        *string
	MobileNo     *string
	Status       *string
	Score        *string
	LeadType     *string
	Territory    *string
	Zone         *string
	DateCreated  time.Time
}

// OpportunityGridRow is the searchable projection of the opportunity grid.
type OpportunityGridRow struct {
	ID            int64
	OpportunityID *string
	CustomerName  string
	ContactName   *string
	Status        *string
	OpportunityType *string
	ExpectedValue *float64
	DateCreated   time.Time
}

// QuotationGridRow is the searchable projection of the quotation grid.
type QuotationGridRow struct {
	ID           int64
	QuotationID  *string
	CustomerName string
	Version      *string
	Status       *string
	TotalAmount  *float64
	ValidTill    *time.Time
	DateCreated  time.Time
}

// DemoGridRow is the searchable projection of the demo grid.
type DemoGridRow struct {
	ID           int64
	DemoID       *string
	CustomerName string
	DemoContact  *string
	Status       *string
	DemoDate     *time.Time
	DateCreated  time.Time
}

// OrderGridRow is the searchable projection of the sales order grid.
type OrderGridRow struct {
	ID           int64
	OrderID      *string
	CustomerName string
	Status       *string
	TotalAmount  *float64
	DateCreated  time.Time
}
