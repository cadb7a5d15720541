package pdf

import (
	"bytes"
	"strconv"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/go-pdf/fpdf"
)

// Alert is a single entry rendered into a report.
type Alert struct {
	Title        string
	Description  string
	Date         string
	Source       string
	Severity     string
	SourceURL    string
	RecallNumber string
	EventID      string
}

// ReportInput holds everything needed to render a compliance report.
type ReportInput struct {
	Query       string
	GeneratedAt time.Time
	Summary     string
	Alerts      []Alert
}

const (
	pageMargin  = 15.0
	lineHeight  = 5.0
	titleSize   = 16.0
	headingSize = 12.0
	bodySize    = 10.0
	metaSize    = 8.0
)

// RenderReport renders a compliance report to PDF bytes.
func RenderReport(in ReportInput) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", titleSize)
	doc.CellFormat(0, 10, tr("Regulatory Alert Report"), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", metaSize)
	doc.SetTextColor(100, 100, 100)
	doc.CellFormat(0, lineHeight, tr("Query: "+in.Query), "", 1, "L", false, 0, "")
	doc.CellFormat(0, lineHeight, tr("Generated: "+in.GeneratedAt.UTC().Format(time.RFC3339)), "", 1, "L", false, 0, "")
	doc.Ln(3)

	if in.Summary != "" {
		doc.SetTextColor(0, 0, 0)
		doc.SetFont("Helvetica", "B", headingSize)
		doc.CellFormat(0, 7, tr("Summary"), "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", bodySize)
		doc.MultiCell(0, lineHeight, tr(in.Summary), "", "L", false)
		doc.Ln(3)
	}

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "B", headingSize)
	doc.CellFormat(0, 7, tr("Alerts"), "", 1, "L", false, 0, "")

	for i, alert := range in.Alerts {
		writeAlert(doc, tr, i+1, alert)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "pdf render")
	}
	return buf.Bytes(), nil
}

func writeAlert(doc *fpdf.Fpdf, tr func(string) string, idx int, alert Alert) {
	doc.SetFont("Helvetica", "B", bodySize)
	doc.MultiCell(0, lineHeight, tr(strconv.Itoa(idx)+". "+alert.Title), "", "L", false)

	doc.SetFont("Helvetica", "", metaSize)
	doc.SetTextColor(100, 100, 100)
	meta := alert.Source + "  |  " + alert.Severity + "  |  " + alert.Date
	if alert.RecallNumber != "" && alert.RecallNumber != "N/A" {
		meta += "  |  Recall " + alert.RecallNumber
	}
	doc.CellFormat(0, lineHeight, tr(meta), "", 1, "L", false, 0, "")

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", bodySize)
	doc.MultiCell(0, lineHeight, tr(alert.Description), "", "L", false)

	if alert.SourceURL != "" {
		doc.SetFont("Helvetica", "I", metaSize)
		doc.SetTextColor(0, 0, 180)
		doc.CellFormat(0, lineHeight, tr(alert.SourceURL), "", 1, "L", false, 0, "")
		doc.SetTextColor(0, 0, 0)
	}
	doc.Ln(2)
}
