// Package export renders grid results into downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/naveen06raj/erp-api/internal/model"
)

var leadCSVHeader = []string{
	"Id", "LeadId", "CustomerName", "ContactName", "Email", "MobileNo",
	"Status", "Score", "LeadType", "Territory", "Zone", "DateCreated",
}

// WriteLeadsCSV streams grid lead rows as CSV. The column set and order
// match the grid the export was requested from.
func WriteLeadsCSV(w io.Writer, rows []model.LeadGridRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(leadCSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			deref(row.LeadID),
			row.CustomerName,
			deref(row.ContactName),
			deref(row.Email),
			deref(row.MobileNo),
			deref(row.Status),
			deref(row.Score),
			deref(row.LeadType),
			deref(row.Territory),
			deref(row.Zone),
			row.DateCreated.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
