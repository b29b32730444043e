package address

import (
	"fmt"
	"strings"

	domain "profile-manager-api/internal/domain/address"
)

// buildSearchQuery composes the address search from the filter; absent
// predicates are omitted, present ones combine with AND.
func buildSearchQuery(f domain.SearchFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) int {
		args = append(args, v)
		return len(args)
	}

	if f.Text != "" {
		n := arg("%" + f.Text + "%")
		conds = append(conds, fmt.Sprintf(
			"(street ILIKE $%d OR neighborhood ILIKE $%d OR city ILIKE $%d)", n, n, n))
	}
	if f.City != "" {
		conds = append(conds, fmt.Sprintf("city ILIKE $%d", arg(f.City)))
	}
	if f.State != "" {
		conds = append(conds, fmt.Sprintf("state ILIKE $%d", arg(f.State)))
	}
	if f.PostalCode != "" {
		conds = append(conds, fmt.Sprintf("postal_code = $%d", arg(f.PostalCode)))
	}
	if f.Country != "" {
		conds = append(conds, fmt.Sprintf("country ILIKE $%d", arg(f.Country)))
	}

	query := `SELECT ` + addressColumns + ` FROM addresses`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY uuid ASC"

	return query, args
}
