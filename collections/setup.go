package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the brand_profiles collection
// exists. A brand profile carries the branding and the seed defaults
// for one quote variant.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "brand_profiles", func(c *core.Collection) {
		c.Fields.Add(&core.SelectField{
			Name:      "variant",
			Required:  true,
			Values:    []string{"construction", "software"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "mark_main", Required: true})
		c.Fields.Add(&core.TextField{Name: "mark_sub", Required: false})
		c.Fields.Add(&core.TextField{Name: "document_title", Required: true})
		c.Fields.Add(&core.TextField{Name: "company_name", Required: true})
		c.Fields.Add(&core.JSONField{Name: "default_sections"})
		c.Fields.Add(&core.JSONField{Name: "default_terms"})
		c.Fields.Add(&core.TextField{Name: "default_payment_method", Required: false})
		c.Fields.Add(&core.NumberField{Name: "default_tax_rate_percent", Required: false})
		c.Fields.Add(&core.TextField{Name: "footer_phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "footer_email", Required: false})
		c.Fields.Add(&core.TextField{Name: "footer_address", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
