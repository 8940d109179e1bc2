package postgres

import "jobmate/placement-service/internal/lifecycle"

var (
	EncodeStage = encodeStage
	DecodeStage = decodeStage
	LimitClause = limitClause
)

// Querier is the statement surface a Store runs on.
type Querier = querier

// NewOn returns a Store that runs every statement on q without transactions.
func NewOn(q Querier) *Store {
	return &Store{q: q}
}

func EmploymentWhere(f lifecycle.EmploymentFilter) (string, []any) {
	w := employmentWhere(f)
	return w.String(), w.args
}

func ApplicationWhere(f lifecycle.ApplicationFilter) (string, []any) {
	w := applicationWhere(f)
	return w.String(), w.args
}

func ListingWhere(f lifecycle.ListingFilter) (string, []any) {
	w := listingWhere(f)
	return w.String(), w.args
}
