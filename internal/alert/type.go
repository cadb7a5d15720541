package alert

import "pharmaclear-api/internal/model"

// Filter sentinel meaning "no filter".
const FilterAll = "all"

// Date range options accepted by FilterSpec.DateRange.
const (
	DateRangeOneYear    = "1y"
	DateRangeThreeYears = "3y"
	DateRangeFiveYears  = "5y"
)

// FilterSpec narrows a merged result set. Each field is independently
// optional; the sentinel "all" (or empty) disables that filter.
type FilterSpec struct {
	DateRange string
	Source    string
	Severity  string
}

type SearchInput struct {
	Query  string
	Filter FilterSpec
}

type SearchOutput struct {
	Results []model.AlertRecord
	Total   int
}
