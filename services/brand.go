package services

import (
	"encoding/json"
	"log"

	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/quote"
)

// LoadBrandProfile resolves the branding and the quote defaults for a
// variant from its brand_profiles record. Missing records or fields
// fall back to the compiled-in values so exports keep working on a
// fresh, unseeded database.
func LoadBrandProfile(app core.App, v quote.Variant) (Brand, quote.Defaults) {
	brand := DefaultBrand(v)
	defaults := quote.DefaultsFor(v)

	record, err := findProfileRecord(app, v)
	if err != nil {
		log.Printf("brand profile lookup for %q failed, using defaults: %v", v, err)
		return brand, defaults
	}
	if record == nil {
		return brand, defaults
	}

	setIfPresent(&brand.MarkMain, record.GetString("mark_main"))
	setIfPresent(&brand.MarkSub, record.GetString("mark_sub"))
	setIfPresent(&brand.DocumentTitle, record.GetString("document_title"))
	setIfPresent(&brand.CompanyName, record.GetString("company_name"))

	if sections := jsonStringSlice(record, "default_sections"); sections != nil {
		defaults.SectionNames = sections
	}
	if terms := jsonStringSlice(record, "default_terms"); terms != nil {
		defaults.Terms = terms
	}
	setIfPresent(&defaults.PaymentInfo.Method, record.GetString("default_payment_method"))
	if rate := record.GetFloat("default_tax_rate_percent"); rate > 0 {
		defaults.TaxRatePercent = rate
	}
	setIfPresent(&defaults.FooterInfo.Phone, record.GetString("footer_phone"))
	setIfPresent(&defaults.FooterInfo.Email, record.GetString("footer_email"))
	setIfPresent(&defaults.FooterInfo.Address, record.GetString("footer_address"))

	return brand, defaults
}

func findProfileRecord(app core.App, v quote.Variant) (*core.Record, error) {
	col, err := app.FindCollectionByNameOrId("brand_profiles")
	if err != nil {
		return nil, nil // collection not set up, not an error
	}
	records, err := app.FindRecordsByFilter(
		col,
		"variant = {:variant}",
		"", 1, 0,
		map[string]any{"variant": string(v)},
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// jsonStringSlice decodes a JSON field holding an array of strings.
// Returns nil when the field is empty or not a string array.
func jsonStringSlice(record *core.Record, field string) []string {
	raw := record.GetString(field)
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}
