package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Accent color used across the document (teal).
var accentColor = props.Color{Red: 56, Green: 178, Blue: 172}

var (
	grayColor  = props.Color{Red: 100, Green: 100, Blue: 100}
	whiteColor = props.Color{Red: 255, Green: 255, Blue: 255}
	lightBg    = props.Color{Red: 241, Green: 245, Blue: 249}
	summaryBg  = props.Color{Red: 230, Green: 255, Blue: 250}
)

// GenerateQuotePDF renders the projected quote into an A4 PDF using
// maroto/v2 and returns the raw bytes.
func GenerateQuotePDF(data QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteInfo(m, data)
	addQuoteIntroduction(m, data)
	addQuoteSections(m, data)
	addQuoteSummary(m, data)
	addQuoteTerms(m, data)
	addQuotePayment(m, data)
	addQuoteTimeline(m, data)
	addQuoteSignatures(m, data)
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader paints the brand mark on the left and the document
// title on the right.
func addQuoteHeader(m core.Maroto, data QuoteExportData) {
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(data.Brand.MarkMain, props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(data.Brand.DocumentTitle, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &accentColor,
				}),
			),
		),
	)

	m.AddRows(
		row.New(5).Add(
			col.New(12).Add(
				text.New(data.Brand.MarkSub, props.Text{
					Size:  9,
					Align: align.Left,
				}),
			),
		),
	)

	m.AddRows(row.New(2).Add(col.New(12).Add(
		line.New(props.Line{Color: &accentColor, Thickness: 0.6, SizePercent: 100}),
	)))
	m.AddRows(row.New(2))
}

// addQuoteInfo paints the fixed-order project info lines.
func addQuoteInfo(m core.Maroto, data QuoteExportData) {
	for _, f := range data.Info {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("%s: %s", f.Label, f.Value), props.Text{
						Size:  8,
						Style: fontstyle.Bold,
						Align: align.Left,
					}),
				),
			),
		)
	}
	m.AddRows(row.New(3))
}

// addQuoteIntroduction paints the optional introduction block of the
// software variant. Objectives and benefits only appear when set.
func addQuoteIntroduction(m core.Maroto, data QuoteExportData) {
	if data.Introduction == nil {
		return
	}

	titleStyle := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &accentColor,
	}
	bodyStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}

	addPart := func(title, body string) {
		if body == "" {
			return
		}
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(title, titleStyle))))
		m.AddRows(row.New(8).Add(col.New(12).Add(text.New(body, bodyStyle))))
	}

	addPart("Descripción General", data.Introduction.Overview)
	addPart("Objetivos", data.Introduction.Objectives)
	addPart("Beneficios", data.Introduction.Benefits)
	m.AddRows(row.New(3))
}

// addQuoteSections paints one table per non-empty section: section
// title strip, header row, then one row per item.
func addQuoteSections(m core.Maroto, data QuoteExportData) {
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &whiteColor,
	}
	headerCell := props.Cell{BackgroundColor: &accentColor}
	titleCell := props.Cell{BackgroundColor: &lightBg}

	for _, sec := range data.Sections {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(sec.Name, props.Text{
					Size:  8,
					Style: fontstyle.Bold,
					Align: align.Left,
				})).WithStyle(&titleCell),
			),
		)

		m.AddRows(
			row.New(7).Add(
				col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
				col.New(4).Add(text.New("Descripción", headerText)).WithStyle(&headerCell),
				col.New(1).Add(text.New("Cant.", headerText)).WithStyle(&headerCell),
				col.New(1).Add(text.New("Unidad", headerText)).WithStyle(&headerCell),
				col.New(2).Add(text.New("Precio Unit.", headerText)).WithStyle(&headerCell),
				col.New(2).Add(text.New("Subtotal", headerText)).WithStyle(&headerCell),
				col.New(1).Add(text.New("IVA", headerText)).WithStyle(&headerCell),
			),
		)

		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		for _, r := range sec.Rows {
			m.AddRows(
				row.New(6).Add(
					col.New(1).Add(text.New(fmt.Sprintf("%d", r.RowNo), bodyText)),
					col.New(4).Add(text.New(r.Description, bodyTextLeft)),
					col.New(1).Add(text.New(FormatQty(r.Qty), bodyTextRight)),
					col.New(1).Add(text.New(r.Unit, bodyText)),
					col.New(2).Add(text.New(FormatMoney(r.UnitPrice), bodyTextRight)),
					col.New(2).Add(text.New(FormatMoney(r.Subtotal), bodyTextRight)),
					col.New(1).Add(text.New(FormatMoney(r.Tax), bodyTextRight)),
				),
			)
		}

		m.AddRows(row.New(2))
	}
}

// addQuoteSummary paints the three derived totals, two decimals each.
func addQuoteSummary(m core.Maroto, data QuoteExportData) {
	cell := props.Cell{BackgroundColor: &summaryBg}
	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
	}
	valueStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	rows := []struct {
		label string
		value float64
	}{
		{"Costo Directo Total", data.TotalDirectCost},
		{fmt.Sprintf("IVA (%s)", FormatPercent(data.TaxRatePercent)), data.TaxAmount},
		{"Total", data.Total},
	}

	for _, r := range rows {
		m.AddRows(
			row.New(6).Add(
				col.New(9).Add(text.New(r.label, labelStyle)).WithStyle(&cell),
				col.New(3).Add(text.New(FormatMoney(r.value), valueStyle)).WithStyle(&cell),
			),
		)
	}
	m.AddRows(row.New(3))
}

// addQuoteTerms paints each term as one bulleted line, in order.
func addQuoteTerms(m core.Maroto, data QuoteExportData) {
	if len(data.Terms) == 0 {
		return
	}

	addBlockTitle(m, "Términos y Condiciones")
	for _, term := range data.Terms {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New("• "+term, props.Text{
					Size:  7,
					Align: align.Left,
				})),
			),
		)
	}
	m.AddRows(row.New(3))
}

// addQuotePayment paints the payment fields of the active variant as
// bulleted key/value lines.
func addQuotePayment(m core.Maroto, data QuoteExportData) {
	if len(data.Payment) == 0 {
		return
	}

	addBlockTitle(m, "Información de Pago")
	for _, f := range data.Payment {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(fmt.Sprintf("• %s: %s", f.Label, f.Value), props.Text{
					Size:  7,
					Align: align.Left,
				})),
			),
		)
	}
	m.AddRows(row.New(3))
}

// addQuoteTimeline paints the horizontal event strip: a connecting line
// and one evenly spaced marker per event, date above description.
func addQuoteTimeline(m core.Maroto, data QuoteExportData) {
	if len(data.Timeline) == 0 {
		return
	}

	addBlockTitle(m, "Cronograma del Proyecto")

	m.AddRows(row.New(3).Add(col.New(12).Add(
		line.New(props.Line{Color: &accentColor, Thickness: 0.6, SizePercent: 100}),
	)))

	// The 12-unit grid spaces the markers; past twelve events the
	// markers collapse to one unit each.
	size := 12 / len(data.Timeline)
	if size < 1 {
		size = 1
	}

	dotStyle := props.Text{Size: 9, Align: align.Center, Color: &accentColor}
	dateStyle := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Center}
	descStyle := props.Text{Size: 7, Align: align.Center}

	dots := row.New(4)
	dates := row.New(4)
	descs := row.New(6)
	for _, marker := range data.Timeline {
		dots.Add(col.New(size).Add(text.New("●", dotStyle)))
		dates.Add(col.New(size).Add(text.New(marker.Date, dateStyle)))
		descs.Add(col.New(size).Add(text.New(marker.Description, descStyle)))
	}
	m.AddRows(dots, dates, descs)
	m.AddRows(row.New(3))
}

// addQuoteSignatures paints the two fixed signature slots.
func addQuoteSignatures(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(12))

	lineStyle := props.Text{
		Size:  8,
		Align: align.Center,
		Color: &grayColor,
	}
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
	}

	m.AddRows(
		row.New(5).Add(
			col.New(6).Add(text.New("____________________________", lineStyle)),
			col.New(6).Add(text.New("____________________________", lineStyle)),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New(data.SignatureClient, labelStyle)),
			col.New(6).Add(text.New(data.SignatureCompany, labelStyle)),
		),
	)
}

// addQuoteFooter paints the company contact and copyright lines.
func addQuoteFooter(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(2).Add(col.New(12).Add(
		line.New(props.Line{Color: &grayColor, Thickness: 0.3, SizePercent: 100}),
	)))

	footStyle := props.Text{
		Size:  6,
		Align: align.Center,
		Color: &grayColor,
	}

	lines := []string{
		data.Brand.CompanyName,
		fmt.Sprintf("Tel: %s | Email: %s | %s", data.Footer.Phone, data.Footer.Email, data.Footer.Address),
		data.Copyright,
	}
	for _, l := range lines {
		m.AddRows(row.New(4).Add(col.New(12).Add(text.New(l, footStyle))))
	}
}

// addBlockTitle paints a teal-accented section label strip.
func addBlockTitle(m core.Maroto, title string) {
	cell := props.Cell{BackgroundColor: &lightBg}
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(title, props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: &accentColor,
			})).WithStyle(&cell),
		),
	)
}
