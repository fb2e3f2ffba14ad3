package services

import (
	"fmt"
	"strings"

	"quotebuilder/quote"
)

// fallbackProjectName fills the filename slot when the project name is
// still blank, so exports never produce an empty segment.
const fallbackProjectName = "proyecto"

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// QuoteFilename builds the deterministic export filename for a quote.
// The construction variant names files after the project alone; the
// software variant also carries the quote date when one is set.
func QuoteFilename(q *quote.Quote, ext string) string {
	project := strings.TrimSpace(q.Header.ProjectName)
	if project == "" {
		project = fallbackProjectName
	}
	project = sanitizeFilename(project)

	if q.Variant == quote.VariantSoftware {
		if date := strings.TrimSpace(q.Header.Date); date != "" {
			return fmt.Sprintf("Propuesta_%s_%s.%s", project, sanitizeFilename(date), ext)
		}
		return fmt.Sprintf("Propuesta_%s.%s", project, ext)
	}
	return fmt.Sprintf("MERAV_Cotizacion_%s.%s", project, ext)
}
