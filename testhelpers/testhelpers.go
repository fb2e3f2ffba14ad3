// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/collections"
	"quotebuilder/quote"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestBrandProfile creates a brand profile record for a variant.
func CreateTestBrandProfile(t *testing.T, app *pocketbase.PocketBase, variant quote.Variant, companyName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("brand_profiles")
	if err != nil {
		t.Fatalf("failed to find brand_profiles collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("variant", string(variant))
	record.Set("mark_main", "SOLUCIONES")
	record.Set("mark_sub", "ATN")
	record.Set("document_title", "COTIZACIÓN")
	record.Set("company_name", companyName)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test brand profile: %v", err)
	}

	return record
}

// NewPricedQuote builds a construction quote with one priced line item,
// for tests that need a non-empty document.
func NewPricedQuote(t *testing.T) *quote.Quote {
	t.Helper()

	q := quote.New(quote.VariantConstruction, quote.ConstructionDefaults())
	q.SetHeader(quote.Header{ProjectName: "Obra Test", ClientName: "Cliente Test", Date: "2025-06-01"})
	if err := q.AddLineItem(0); err != nil {
		t.Fatalf("failed to add line item: %v", err)
	}
	if err := q.UpdateLineItem(0, 0, quote.FieldDescription, "Trabajo"); err != nil {
		t.Fatalf("failed to set description: %v", err)
	}
	if err := q.UpdateLineItem(0, 0, quote.FieldQuantity, "2"); err != nil {
		t.Fatalf("failed to set quantity: %v", err)
	}
	if err := q.UpdateLineItem(0, 0, quote.FieldUnitPrice, "50"); err != nil {
		t.Fatalf("failed to set unit price: %v", err)
	}
	return q
}
