package services

import (
	"fmt"
	"time"

	"quotebuilder/quote"
)

// Brand holds the static branding painted into document headers and
// footers. Values normally come from the brand profile collection.
type Brand struct {
	MarkMain      string
	MarkSub       string
	DocumentTitle string
	CompanyName   string
}

// DefaultBrand returns the compiled-in branding for a variant, used
// when no brand profile record exists.
func DefaultBrand(v quote.Variant) Brand {
	b := Brand{
		MarkMain:      "SOLUCIONES",
		MarkSub:       "ATN",
		DocumentTitle: "COTIZACIÓN",
		CompanyName:   "SOLUCIONES ATN",
	}
	if v == quote.VariantSoftware {
		b.DocumentTitle = "PROPUESTA"
	}
	return b
}

// InfoField is one labeled line in the header info or payment blocks.
type InfoField struct {
	Label string
	Value string
}

// ItemRow is one table row of the projected document. Subtotal and Tax
// are derived here once so both renderers print identical figures.
type ItemRow struct {
	RowNo       int
	Description string
	Qty         float64
	Unit        string
	UnitPrice   float64
	Subtotal    float64
	Tax         float64
}

// SectionTable is one section of the document. Only sections with at
// least one item are projected.
type SectionTable struct {
	Name string
	Rows []ItemRow
}

// IntroBlock is the optional introduction of the software variant.
type IntroBlock struct {
	Overview   string
	Objectives string
	Benefits   string
}

// TimelineMarker is one evenly spaced event on the timeline strip.
type TimelineMarker struct {
	Date        string
	Description string
}

// QuoteExportData is the full layout tree handed to the PDF and Excel
// renderers. It is rebuilt from scratch on every export.
type QuoteExportData struct {
	Brand Brand
	Info  []InfoField

	Introduction *IntroBlock

	Sections []SectionTable

	TotalDirectCost float64
	TaxRatePercent  float64
	TaxAmount       float64
	Total           float64

	Terms   []string
	Payment []InfoField

	Timeline           []TimelineMarker
	MarkerWidthPercent float64

	SignatureClient  string
	SignatureCompany string

	Footer    quote.FooterInfo
	Copyright string
}

// BuildQuoteExportData projects a quote and its summary onto the fixed
// document layout. It is a pure mapping: the quote is not modified and
// no state is kept between invocations.
func BuildQuoteExportData(q *quote.Quote, brand Brand) QuoteExportData {
	data := QuoteExportData{
		Brand: brand,
		Info: []InfoField{
			{Label: "Proyecto", Value: q.Header.ProjectName},
			{Label: "Cliente", Value: q.Header.ClientName},
			{Label: "Dirección", Value: q.Header.Address},
			{Label: "Propuesta", Value: q.Header.ProposalType},
			{Label: "Fecha", Value: q.Header.Date},
		},
		TotalDirectCost:  q.Summary.TotalDirectCost,
		TaxRatePercent:   q.TaxRatePercent,
		TaxAmount:        q.Summary.TaxAmount,
		Total:            q.Summary.Total,
		Terms:            append([]string(nil), q.Terms...),
		Payment:          paymentFields(q),
		SignatureClient:  "Vo. Bo. Cliente",
		SignatureCompany: "Vo. Bo. " + brand.CompanyName,
		Footer:           q.FooterInfo,
		Copyright: fmt.Sprintf("Copyright© %d. Todos los derechos reservados para %s.",
			time.Now().Year(), brand.CompanyName),
	}

	if q.Variant == quote.VariantSoftware && q.Introduction.Overview != "" {
		data.Introduction = &IntroBlock{
			Overview:   q.Introduction.Overview,
			Objectives: q.Introduction.Objectives,
			Benefits:   q.Introduction.Benefits,
		}
	}

	for _, sec := range q.Sections {
		if len(sec.Items) == 0 {
			continue
		}
		table := SectionTable{Name: sec.Name}
		for i, item := range sec.Items {
			table.Rows = append(table.Rows, ItemRow{
				RowNo:       i + 1,
				Description: item.Description,
				Qty:         item.Quantity,
				Unit:        item.Unit,
				UnitPrice:   item.UnitPrice,
				Subtotal:    item.Subtotal(),
				Tax:         item.Tax(),
			})
		}
		data.Sections = append(data.Sections, table)
	}

	if len(q.Timeline) > 0 {
		for _, ev := range q.Timeline {
			data.Timeline = append(data.Timeline, TimelineMarker{
				Date:        ev.Date,
				Description: ev.Description,
			})
		}
		data.MarkerWidthPercent = 100 / float64(len(q.Timeline))
	}

	return data
}

// paymentFields maps the payment block for the quote's variant: the
// construction variant prints one free-text bank line, the software
// variant the structured account fields. Empty fields are skipped.
func paymentFields(q *quote.Quote) []InfoField {
	var fields []InfoField
	add := func(label, value string) {
		if value != "" {
			fields = append(fields, InfoField{Label: label, Value: value})
		}
	}

	if q.Variant == quote.VariantSoftware {
		add("Método de Pago", q.PaymentInfo.Method)
		add("Banco", q.PaymentInfo.Bank.BankName)
		add("Nombre del Recipiente", q.PaymentInfo.Bank.RecipientName)
		add("Número de Cuenta", q.PaymentInfo.Bank.AccountNumber)
		add("Tipo de Cuenta", q.PaymentInfo.Bank.AccountType)
		add("Moneda", q.PaymentInfo.Bank.Currency)
		return fields
	}

	add("Forma de pago", q.PaymentInfo.Method)
	add("Cuenta bancaria", q.PaymentInfo.BankDetails)
	return fields
}
