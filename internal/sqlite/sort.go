package sqlite

import (
	"fmt"
	"strings"

	"github.com/onegoal/tracker/pkg/types"
)

// sortFields whitelists the sortable columns per table. The sort field is
// interpolated into the ORDER BY clause, so membership here is the only
// thing standing between a query parameter and the SQL text; never
// interpolate a sort field that has not passed this map.
var sortFields = map[string]map[string]bool{
	"application": {
		"id": true, "status": true, "position": true, "work_setting": true,
		"location": true, "compensation": true, "date_close": true,
		"company_id": true, "client_id": true,
		"created_on": true, "modified_on": true,
	},
	"company": {
		"id": true, "name": true, "city": true, "state": true,
		"country": true, "job_type": true, "created_on": true, "modified_on": true,
	},
	"client": {
		"id": true, "name": true, "created_on": true, "modified_on": true,
	},
	"contact": {
		"id": true, "first_name": true, "last_name": true, "title": true,
		"contact_type": true, "company_id": true, "application_id": true,
		"client_id": true, "created_on": true, "modified_on": true,
	},
	"note": {
		"id": true, "application_id": true, "created_on": true, "modified_on": true,
	},
	"job_search_site": {
		"id": true, "name": true, "created_on": true, "modified_on": true,
	},
	"default_value": {
		"id": true, "table_name": true, "field_name": true, "user_id": true,
		"created_on": true, "modified_on": true,
	},
}

// orderClause validates the sort field against the table's whitelist and
// returns the ORDER BY fragment. The order keyword is normalized separately
// by ListParams.Validate, so only ASC/DESC can reach the clause.
func orderClause(table string, p types.ListParams) (string, error) {
	return qualifiedOrderClause(table, "", p)
}

// qualifiedOrderClause is orderClause with a table alias prefix for joined
// queries where the bare column name would be ambiguous.
func qualifiedOrderClause(table, alias string, p types.ListParams) (string, error) {
	allowed, ok := sortFields[table]
	if !ok {
		return "", fmt.Errorf("no sort whitelist for table %s", table)
	}
	if !allowed[p.Sort] {
		return "", &types.ValidationError{
			Field:   "sort",
			Message: fmt.Sprintf("%q is not sortable on %s", p.Sort, table),
		}
	}
	dir := "ASC"
	if strings.EqualFold(p.Order, types.OrderDesc) {
		dir = "DESC"
	}
	col := p.Sort
	if alias != "" {
		col = alias + "." + col
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir), nil
}
