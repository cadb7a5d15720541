package model

// Source identifies the regulatory agency an alert came from.
type Source string

const (
	SourceFDA          Source = "FDA"
	SourceHealthCanada Source = "Health Canada"
)

// Severity is the normalized risk classification of an alert.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Identifier sentinels for alerts whose upstream record lacks the field.
const (
	IdentifierNA = "N/A"

	// UnknownDate marks Health Canada entries whose listing block carried
	// no recognizable date.
	UnknownDate = "Unknown Date"
)

// AlertRecord is the canonical representation of a regulatory alert,
// regardless of which source produced it.
type AlertRecord struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Date         string   `json:"date"` // YYYY-MM-DD, "Unknown Date", or ""
	Source       Source   `json:"source"`
	Severity     Severity `json:"severity"`
	SourceURL    string   `json:"source_url"`
	RecallNumber string   `json:"recall_number"`
	EventID      string   `json:"event_id"`
}
