package user

import (
	"fmt"
	"strings"

	domain "profile-manager-api/internal/domain/user"
)

// buildSearchWhere composes the WHERE clause for a user search. Absent
// predicates are omitted; present ones combine with AND. The returned args
// line up with the $n placeholders in the clause.
func buildSearchWhere(f domain.SearchFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) int {
		args = append(args, v)
		return len(args)
	}

	if !f.IncludeDeleted {
		conds = append(conds, "is_deleted = FALSE")
	}
	if f.Text != "" {
		n := arg("%" + f.Text + "%")
		conds = append(conds, fmt.Sprintf(
			"(full_name ILIKE $%d OR email ILIKE $%d OR document_id ILIKE $%d)", n, n, n))
	}
	if f.Role != nil {
		conds = append(conds, fmt.Sprintf("role = $%d", arg(string(*f.Role))))
	}
	if f.ProfileCompleted != nil {
		conds = append(conds, fmt.Sprintf("profile_completed = $%d", arg(*f.ProfileCompleted)))
	}
	if f.DocumentType != nil {
		conds = append(conds, fmt.Sprintf("document_type = $%d", arg(string(*f.DocumentType))))
	}
	if f.Gender != nil {
		conds = append(conds, fmt.Sprintf("gender = $%d", arg(string(*f.Gender))))
	}

	var addrConds []string
	if f.City != "" {
		addrConds = append(addrConds, fmt.Sprintf("a.city ILIKE $%d", arg(f.City)))
	}
	if f.State != "" {
		addrConds = append(addrConds, fmt.Sprintf("a.state ILIKE $%d", arg(f.State)))
	}
	if f.Country != "" {
		addrConds = append(addrConds, fmt.Sprintf("a.country ILIKE $%d", arg(f.Country)))
	}
	if len(addrConds) > 0 {
		conds = append(conds,
			"EXISTS (SELECT 1 FROM addresses a WHERE a.uuid = users.address_id AND "+
				strings.Join(addrConds, " AND ")+")")
	}

	if f.HasAddress != nil {
		if *f.HasAddress {
			conds = append(conds, "address_id IS NOT NULL")
		} else {
			conds = append(conds, "address_id IS NULL")
		}
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// buildSearchQueries returns the page query, the independent count query and
// the page arguments (count uses the same args minus limit and offset).
func buildSearchQueries(f domain.SearchFilter) (rowsSQL, countSQL string, rowsArgs, countArgs []any) {
	where, args := buildSearchWhere(f)

	countSQL = `SELECT count(*) FROM users` + where
	countArgs = args

	rowsSQL = `SELECT ` + userColumns + ` FROM users` + where +
		fmt.Sprintf(" ORDER BY identity_key ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	rowsArgs = append(append([]any{}, args...), f.Limit, f.Offset)

	return rowsSQL, countSQL, rowsArgs, countArgs
}
