package repository

import "strings"

// sortColumns maps the sort fields a caller may request to the SQL column
// they order by. Only keys in this map ever reach a query string.
type sortColumns struct {
	columns    map[string]string
	defaultKey string
}

var (
	computerSort = sortColumns{
		defaultKey: "computer_id",
		columns: map[string]string{
			"computer_id":       "computer_id",
			"hostname":          "hostname",
			"asset_number":      "asset_number",
			"status":            "status",
			"mac_address":       "mac_address",
			"type":              "type",
			"os_version":        "os_version",
			"purchase_date":     "purchase_date",
			"warranty_end_date": "warranty_end_date",
		},
	}

	softwareSort = sortColumns{
		defaultKey: "software_id",
		columns: map[string]string{
			"software_id":   "software_id",
			"software_name": "software_name",
			"version":       "version",
			"purchase_date": "purchase_date",
			"status":        "status",
			"license_type":  "license_type",
		},
	}

	employeeSort = sortColumns{
		defaultKey: "employee_id",
		columns: map[string]string{
			"employee_id": "employee_id",
			"name":        "name",
			"job_title":   "job_title",
			"department":  "department",
			"email":       "email",
		},
	}
)

// orderBy returns an ORDER BY clause body for p. Unknown fields fall back to
// the default key and any order other than "desc" sorts ascending, so the
// result never depends on caller text.
func (s sortColumns) orderBy(p SortParams) string {
	column, ok := s.columns[strings.ToLower(strings.TrimSpace(p.Field))]
	if !ok {
		column = s.columns[s.defaultKey]
	}

	direction := "ASC"
	if strings.EqualFold(strings.TrimSpace(p.Order), "desc") {
		direction = "DESC"
	}

	// Tie-break on the primary key for stable pages.
	if column != s.columns[s.defaultKey] {
		return column + " " + direction + ", " + s.columns[s.defaultKey] + " ASC"
	}
	return column + " " + direction
}
