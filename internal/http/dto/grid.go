package dto

import (
	"time"

	"github.com/naveen06raj/erp-api/internal/grid"
	"github.com/naveen06raj/erp-api/internal/model"
)

// GridRequest is the shared body of every grid endpoint. The named arrays
// are the multi-select filters the grid UI sends; absent and placeholder
// values mean "no filter".
type GridRequest struct {
	SearchText       string   `json:"searchText"`
	Zones            []string `json:"zones"`
	CustomerNames    []string `json:"customerNames"`
	Territories      []string `json:"territories"`
	Statuses         []string `json:"statuses"`
	Scores           []string `json:"scores"`
	LeadTypes        []string `json:"leadTypes"`
	LeadIds          []string `json:"leadIds"`
	OpportunityTypes []string `json:"opportunityTypes"`
	Versions         []string `json:"versions"`

	FromDate *time.Time `json:"fromDate"`
	ToDate   *time.Time `json:"toDate"`

	PageNumber     int    `json:"pageNumber"`
	PageSize       int    `json:"pageSize"`
	OrderBy        string `json:"orderBy"`
	OrderDirection string `json:"orderDirection"`
}

// ToFilter translates the request into the engine's filter. Only populated
// arrays become column filters; the registry rejects names the target grid
// does not allow.
func (r GridRequest) ToFilter() grid.Filter {
	filters := make(map[string][]string)
	add := func(name string, values []string) {
		if len(values) > 0 {
			filters[name] = values
		}
	}
	add("Zones", r.Zones)
	add("CustomerNames", r.CustomerNames)
	add("Territories", r.Territories)
	add("Statuses", r.Statuses)
	add("Scores", r.Scores)
	add("LeadTypes", r.LeadTypes)
	add("LeadIds", r.LeadIds)
	add("OpportunityTypes", r.OpportunityTypes)
	add("Versions", r.Versions)

	f := grid.Filter{
		SearchText:     r.SearchText,
		ColumnFilters:  filters,
		PageNumber:     r.PageNumber,
		PageSize:       r.PageSize,
		OrderBy:        r.OrderBy,
		OrderDirection: r.OrderDirection,
	}
	if r.FromDate != nil || r.ToDate != nil {
		f.DateRange = &grid.DateRange{Start: r.FromDate, End: r.ToDate}
	}
	return f
}

// GridResponse mirrors grid.Page for the wire.
type GridResponse[T any] struct {
	Results      []T `json:"results"`
	TotalRecords int `json:"totalRecords"`
	PageNumber   int `json:"pageNumber"`
	PageSize     int `json:"pageSize"`
}

func ToGridResponse[T, M any](page grid.Page[M], convert func(M) T) GridResponse[T] {
	results := make([]T, len(page.Results))
	for i, row := range page.Results {
		results[i] = convert(row)
	}
	return GridResponse[T]{
		Results:      results,
		TotalRecords: page.TotalRecords,
		PageNumber:   page.PageNumber,
		PageSize:     page.PageSize,
	}
}

type LeadGridRow struct {
	ID           int64      `json:"id,string"`
	LeadID       *string    `json:"leadId,omitempty"`
	CustomerName string     `json:"customerName"`
	ContactName  *string    `json:"contactName,omitempty"`
	Email        *string    `json:"email,omitempty"`
	MobileNo     *string    `json:"mobileNo,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Score        *string    `json:"score,omitempty"`
	LeadType     *string    `json:"leadType,omitempty"`
	Territory    *string    `json:"territory,omitempty"`
	Zone         *string    `json:"zone,omitempty"`
	DateCreated  time.Time  `json:"dateCreated"`
}

func ToLeadGridRow(row model.LeadGridRow) LeadGridRow {
	return LeadGridRow{
		ID:           row.ID,
		LeadID:       row.LeadID,
		CustomerName: row.CustomerName,
		ContactName:  row.ContactName,
		Email:        row.Email,
		MobileNo:     row.MobileNo,
		Status:       row.Status,
		Score:        row.Score,
		LeadType:     row.LeadType,
		Territory:    row.Territory,
		Zone:         row.Zone,
		DateCreated:  row.DateCreated,
	}
}

type OpportunityGridRow struct {
	ID              int64    `json:"id,string"`
	OpportunityID   *string  `json:"opportunityId,omitempty"`
	CustomerName    string   `json:"customerName"`
	ContactName     *string  `json:"contactName,omitempty"`
	Status          *string  `json:"status,omitempty"`
	OpportunityType *string  `json:"opportunityType,omitempty"`
	ExpectedValue   *float64 `json:"expectedValue,omitempty"`
	DateCreated     time.Time `json:"dateCreated"`
}

func ToOpportunityGridRow(row model.OpportunityGridRow) OpportunityGridRow {
	return OpportunityGridRow{
		ID:              row.ID,
		OpportunityID:   row.OpportunityID,
		CustomerName:    row.CustomerName,
		ContactName:     row.ContactName,
		Status:          row.Status,
		OpportunityType: row.OpportunityType,
		ExpectedValue:   row.ExpectedValue,
		DateCreated:     row.DateCreated,
	}
}

type QuotationGridRow struct {
	ID           int64      `json:"id,string"`
	QuotationID  *string    `json:"quotationId,omitempty"`
	CustomerName string     `json:"customerName"`
	Version      *string    `json:"version,omitempty"`
	Status       *string    `json:"status,omitempty"`
	TotalAmount  *float64   `json:"totalAmount,omitempty"`
	ValidTill    *time.Time `json:"validTill,omitempty"`
	DateCreated  time.Time  `json:"dateCreated"`
}

func ToQuotationGridRow(row model.QuotationGridRow) QuotationGridRow {
	return QuotationGridRow{
		ID:           row.ID,
		QuotationID:  row.QuotationID,
		CustomerName: row.CustomerName,
		Version:      row.Version,
		Status:       row.Status,
		TotalAmount:  row.TotalAmount,
		ValidTill:    row.ValidTill,
		DateCreated:  row.DateCreated,
	}
}

type DemoGridRow struct {
	ID           int64      `json:"id,string"`
	DemoID       *string    `json:"demoId,omitempty"`
	CustomerName string     `json:"customerName"`
	DemoContact  *string    `json:"demoContact,omitempty"`
	Status       *string    `json:"status,omitempty"`
	DemoDate     *time.Time `json:"demoDate,omitempty"`
	DateCreated  time.Time  `json:"dateCreated"`
}

func ToDemoGridRow(row model.DemoGridRow) DemoGridRow {
	return DemoGridRow{
		ID:           row.ID,
		DemoID:       row.DemoID,
		CustomerName: row.CustomerName,
		DemoContact:  row.DemoContact,
		Status:       row.Status,
		DemoDate:     row.DemoDate,
		DateCreated:  row.DateCreated,
	}
}

type OrderGridRow struct {
	ID           int64     `json:"id,string"`
	OrderID      *string   `json:"orderId,omitempty"`
	CustomerName string    `json:"customerName"`
	Status       *string   `json:"status,omitempty"`
	TotalAmount  *float64  `json:"totalAmount,omitempty"`
	DateCreated  time.Time `json:"dateCreated"`
}

func ToOrderGridRow(row model.OrderGridRow) OrderGridRow {
	return OrderGridRow{
		ID:           row.ID,
		OrderID:      row.OrderID,
		CustomerName: row.CustomerName,
		Status:       row.Status,
		TotalAmount:  row.TotalAmount,
		DateCreated:  row.DateCreated,
	}
}
