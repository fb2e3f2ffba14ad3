package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/services"
	"quotebuilder/store"
)

// HandleQuoteExportPDF renders the quote document as a PDF download.
func HandleQuoteExportPDF(app *pocketbase.PocketBase, s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		q, ok := s.Get(id)
		if !ok {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		brand, _ := services.LoadBrandProfile(app, q.Variant)
		data := services.BuildQuoteExportData(q, brand)

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate for %s: %v", id, err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := services.QuoteFilename(q, "pdf")

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportExcel renders the quote document as an Excel download.
func HandleQuoteExportExcel(app *pocketbase.PocketBase, s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		q, ok := s.Get(id)
		if !ok {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		brand, _ := services.LoadBrandProfile(app, q.Variant)
		data := services.BuildQuoteExportData(q, brand)

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate for %s: %v", id, err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := services.QuoteFilename(q, "xlsx")

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
