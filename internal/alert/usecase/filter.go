package usecase

import (
	"sort"
	"time"

	"pharmaclear-api/internal/alert"
	"pharmaclear-api/internal/model"
)

const dateLayout = "2006-01-02"

// Records whose date cannot be parsed sort as this sentinel, so they land
// last under descending order.
const fallbackSortDate = "1900-01-01"

var dateRangeDays = map[string]int{
	alert.DateRangeOneYear:    365,
	alert.DateRangeThreeYears: 3 * 365,
	alert.DateRangeFiveYears:  5 * 365,
}

// applyFilters keeps only records passing every active filter. Filters are
// pure predicates, so reapplying the same spec is a no-op.
func applyFilters(records []model.AlertRecord, filter alert.FilterSpec, now time.Time) []model.AlertRecord {
	kept := make([]model.AlertRecord, 0, len(records))
	for _, record := range records {
		if !passesDateFilter(record, filter.DateRange, now) {
			continue
		}
		if !passesSourceFilter(record, filter.Source) {
			continue
		}
		if !passesSeverityFilter(record, filter.Severity) {
			continue
		}
		kept = append(kept, record)
	}
	return kept
}

// passesDateFilter drops records with missing or unparseable dates when a
// date range is active. That is stricter than the sort stage, which keeps
// unknowns and orders them last.
func passesDateFilter(record model.AlertRecord, dateRange string, now time.Time) bool {
	if dateRange == "" || dateRange == alert.FilterAll {
		return true
	}
	days, ok := dateRangeDays[dateRange]
	if !ok {
		return true
	}

	date, err := time.Parse(dateLayout, record.Date)
	if err != nil {
		return false
	}
	cutoff := now.AddDate(0, 0, -days)
	return !date.Before(cutoff)
}

func passesSourceFilter(record model.AlertRecord, sourceFilter string) bool {
	if sourceFilter == "" || sourceFilter == alert.FilterAll {
		return true
	}
	return string(record.Source) == sourceFilter
}

func passesSeverityFilter(record model.AlertRecord, severityFilter string) bool {
	if severityFilter == "" || severityFilter == alert.FilterAll {
		return true
	}
	return string(record.Severity) == severityFilter
}

// sortByDateDescending orders records newest first. The comparison is
// lexicographic, which coincides with chronological order for the fixed
// width YYYY-MM-DD form. The sort is stable so equal dates keep their
// input order and repeated calls produce identical output.
func sortByDateDescending(records []model.AlertRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return sortDate(records[i].Date) > sortDate(records[j].Date)
	})
}

func sortDate(date string) string {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fallbackSortDate
	}
	return date
}
