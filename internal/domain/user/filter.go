package user

// SearchFilter composes listing predicates with logical AND. Zero values
// mean "predicate absent", never "match nothing". Soft-deleted users are
// excluded unless IncludeDeleted is set (administrative paths).
type SearchFilter struct {
	// Text is matched case-insensitively against full name, email and
	// document id.
	Text string

	Role             *Role
	ProfileCompleted *bool
	DocumentType     *DocumentType
	Gender           *Gender

	// Address predicates; matching is case-insensitive equality.
	City    string
	State   string
	Country string

	// HasAddress filters on presence of the address reference.
	HasAddress *bool

	IncludeDeleted bool

	Offset int
	Limit  int
}
