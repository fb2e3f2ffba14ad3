package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/quote"
)

type profileDef struct {
	variant       quote.Variant
	markMain      string
	markSub       string
	documentTitle string
	companyName   string
}

var profileDefs = []profileDef{
	{
		variant:       quote.VariantConstruction,
		markMain:      "SOLUCIONES",
		markSub:       "ATN",
		documentTitle: "COTIZACIÓN",
		companyName:   "SOLUCIONES ATN",
	},
	{
		variant:       quote.VariantSoftware,
		markMain:      "SOLUCIONES",
		markSub:       "ATN",
		documentTitle: "PROPUESTA",
		companyName:   "SOLUCIONES ATN",
	},
}

// Seed inserts one brand profile per variant, carrying the compiled-in
// defaults so they become editable records. Skips variants that already
// have a profile.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("brand_profiles")
	if err != nil {
		return fmt.Errorf("seed: could not find brand_profiles collection: %w", err)
	}

	for _, def := range profileDefs {
		existing, err := app.FindRecordsByFilter(
			col,
			"variant = {:variant}",
			"", 1, 0,
			map[string]any{"variant": string(def.variant)},
		)
		if err != nil {
			return fmt.Errorf("seed: query brand profile %q: %w", def.variant, err)
		}
		if len(existing) > 0 {
			continue
		}

		defaults := quote.DefaultsFor(def.variant)

		r := core.NewRecord(col)
		r.Set("variant", string(def.variant))
		r.Set("mark_main", def.markMain)
		r.Set("mark_sub", def.markSub)
		r.Set("document_title", def.documentTitle)
		r.Set("company_name", def.companyName)
		r.Set("default_sections", defaults.SectionNames)
		r.Set("default_terms", defaults.Terms)
		r.Set("default_payment_method", defaults.PaymentInfo.Method)
		r.Set("default_tax_rate_percent", defaults.TaxRatePercent)
		r.Set("footer_phone", defaults.FooterInfo.Phone)
		r.Set("footer_email", defaults.FooterInfo.Email)
		r.Set("footer_address", defaults.FooterInfo.Address)

		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save brand profile %q: %w", def.variant, err)
		}
		log.Printf("seed: created brand profile for variant %q", def.variant)
	}

	return nil
}
