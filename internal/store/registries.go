package store

import "github.com/naveen06raj/erp-api/internal/grid"

// Grid registries: one allow-list per entity. Logical names match the filter
// arrays and sort columns the clients already send; physical expressions stay
// private to this package.

var leadGridRegistry = &grid.Registry{
	From: "sales_lead sl",
	Select: `sl.id AS id, sl.lead_id AS lead_ref, sl.customer_name AS customer_name,
		sl.contact_name AS contact_name, sl.email AS email, sl.contact_mobile_no AS mobile_no,
		sl.status AS status, sl.score AS score, sl.lead_type AS lead_type,
		sl.territory AS territory, sl.zone AS zone, sl.date_created AS date_created`,
	IDColumn:   "sl.id",
	DateColumn: "sl.date_created",
	BaseWhere:  "sl.isactive = true",
	Sortable: map[string]string{
		"CustomerName": "customer_name",
		"ContactName":  "contact_name",
		"Status":       "status",
		"Score":        "score",
		"LeadType":     "lead_type",
		"Territory":    "territory",
		"Zone":         "zone",
		"date_created": "date_created",
	},
	Filterable: map[string]string{
		"Zones":         "sl.zone",
		"CustomerNames": "sl.customer_name",
		"Territories":   "sl.territory",
		"Statuses":      "sl.status",
		"Scores":        "sl.score",
		"LeadTypes":     "sl.lead_type",
		"LeadIds":       "sl.lead_id",
	},
	Searchable: []string{"sl.customer_name", "sl.contact_name", "sl.email", "sl.contact_mobile_no", "sl.lead_id"},
}

var opportunityGridRegistry = &grid.Registry{
	From: "sales_opportunities so",
	Select: `so.id AS id, so.opportunity_id AS opportunity_ref, so.customer_name AS customer_name,
		so.contact_name AS contact_name, so.status AS status, so.opportunity_type AS opportunity_type,
		so.expected_value AS expected_value, so.date_created AS date_created`,
	IDColumn:   "so.id",
	DateColumn: "so.date_created",
	BaseWhere:  "so.isactive = true",
	Sortable: map[string]string{
		"CustomerName":  "customer_name",
		"Status":        "status",
		"ExpectedValue": "expected_value",
		"date_created":  "date_created",
	},
	Filterable: map[string]string{
		"CustomerNames":    "so.customer_name",
		"Statuses":         "so.status",
		"OpportunityTypes": "so.opportunity_type",
	},
	Searchable: []string{"so.customer_name", "so.contact_name", "so.opportunity_id"},
}

var quotationGridRegistry = &grid.Registry{
	From: "sales_quotations sq",
	Select: `sq.id AS id, sq.quotation_id AS quotation_ref, sq.customer_name AS customer_name,
		sq.version AS version, sq.status AS status, sq.total_amount AS total_amount,
		sq.valid_till AS valid_till, sq.date_created AS date_created`,
	IDColumn:   "sq.id",
	DateColumn: "sq.date_created",
	BaseWhere:  "sq.isactive = true",
	Sortable: map[string]string{
		"CustomerName": "customer_name",
		"Status":       "status",
		"TotalAmount":  "total_amount",
		"ValidTill":    "valid_till",
		"date_created": "date_created",
	},
	Filterable: map[string]string{
		"CustomerNames": "sq.customer_name",
		"Statuses":      "sq.status",
		"Versions":      "sq.version",
	},
	Searchable: []string{"sq.customer_name", "sq.quotation_id"},
}

var demoGridRegistry = &grid.Registry{
	From: "sales_demos sd",
	Select: `sd.id AS id, sd.demo_id AS demo_ref, sd.customer_name AS customer_name,
		sd.demo_contact AS demo_contact, sd.status AS status, sd.demo_date AS demo_date,
		sd.date_created AS date_created`,
	IDColumn:   "sd.id",
	DateColumn: "sd.date_created",
	BaseWhere:  "sd.isactive = true",
	Sortable: map[string]string{
		"CustomerName": "customer_name",
		"Status":       "status",
		"DemoDate":     "demo_date",
		"date_created": "date_created",
	},
	Filterable: map[string]string{
		"CustomerNames": "sd.customer_name",
		"Statuses":      "sd.status",
	},
	Searchable: []string{"sd.customer_name", "sd.demo_contact", "sd.demo_id"},
}

var orderGridRegistry = &grid.Registry{
	From: "sales_orders sor",
	Select: `sor.id AS id, sor.order_id AS order_ref, sor.customer_name AS customer_name,
		sor.status AS status, sor.total_amount AS total_amount, sor.date_created AS date_created`,
	IDColumn:   "sor.id",
	DateColumn: "sor.date_created",
	BaseWhere:  "sor.isactive = true",
	Sortable: map[string]string{
		"CustomerName": "customer_name",
		"Status":       "status",
		"TotalAmount":  "total_amount",
		"date_created": "date_created",
	},
	Filterable: map[string]string{
		"CustomerNames": "sor.customer_name",
		"Statuses":      "sor.status",
	},
	Searchable: []string{"sor.customer_name", "sor.order_id"},
}

var gridRegistries = map[string]*grid.Registry{
	"lead":        leadGridRegistry,
	"opportunity": opportunityGridRegistry,
	"quotation":   quotationGridRegistry,
	"demo":        demoGridRegistry,
	"order":       orderGridRegistry,
}
