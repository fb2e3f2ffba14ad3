// Package quote holds the quote aggregate and the totals engine.
// It has no dependencies: every operation is a plain in-memory
// transformation followed by a summary recomputation.
package quote

import "fmt"

// Variant selects between the two brandings of the quote tool.
type Variant string

const (
	VariantConstruction Variant = "construction"
	VariantSoftware     Variant = "software"
)

// Category classifies a line item.
type Category string

const (
	CategoryMaterial  Category = "material"
	CategoryLabor     Category = "labor"
	CategoryEquipment Category = "equipment"
	CategoryService   Category = "service"
	CategoryPermit    Category = "permit"
	CategoryOther     Category = "other"
)

// LineItem is one priced row within a section.
type LineItem struct {
	ID             string   `json:"id"`
	Category       Category `json:"category"`
	Description    string   `json:"description"`
	Quantity       float64  `json:"quantity"`
	Unit           string   `json:"unit"`
	UnitPrice      float64  `json:"unitPrice"`
	TaxRatePercent float64  `json:"taxRatePercent"`
}

// Subtotal returns quantity × unit price.
func (it LineItem) Subtotal() float64 {
	return it.Quantity * it.UnitPrice
}

// Tax returns the tax on the line subtotal at the item's own rate.
func (it LineItem) Tax() float64 {
	return it.Subtotal() * it.TaxRatePercent / 100
}

// Total returns subtotal plus tax.
func (it LineItem) Total() float64 {
	return it.Subtotal() + it.Tax()
}

// Section is a named, ordered group of line items. Sections with no
// items stay editable but are excluded from the printed document.
type Section struct {
	Name  string     `json:"name"`
	Items []LineItem `json:"items"`
}

// Header holds the free-text project fields shown at the top of the
// document. No cross-validation is applied.
type Header struct {
	ProjectName  string `json:"projectName"`
	ClientName   string `json:"clientName"`
	Address      string `json:"address"`
	ProposalType string `json:"proposalType"`
	Date         string `json:"date"`
}

// Introduction is the optional free-text block of the software variant.
type Introduction struct {
	Overview   string `json:"overview"`
	Objectives string `json:"objectives"`
	Benefits   string `json:"benefits"`
}

// BankAccount is the structured payment shape used by the software variant.
type BankAccount struct {
	BankName      string `json:"bankName"`
	RecipientName string `json:"recipientName"`
	AccountNumber string `json:"accountNumber"`
	AccountType   string `json:"accountType"`
	Currency      string `json:"currency"`
}

// PaymentInfo covers both variants: the construction variant fills
// BankDetails as one free-text line, the software variant fills Bank.
type PaymentInfo struct {
	Method      string      `json:"method"`
	BankDetails string      `json:"bankDetails"`
	Bank        BankAccount `json:"bank"`
}

// FooterInfo holds the company contact line at the bottom of the document.
type FooterInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// TimelineEvent is one marker on the project timeline.
type TimelineEvent struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Summary is fully derived from the sections and the global tax rate.
// It is never edited directly; every cost-affecting mutation refreshes it.
type Summary struct {
	TotalDirectCost float64 `json:"totalDirectCost"`
	TaxAmount       float64 `json:"taxAmount"`
	Total           float64 `json:"total"`
}

// Quote is the aggregate root owning all editable quote data.
type Quote struct {
	Variant        Variant         `json:"variant"`
	Header         Header          `json:"header"`
	Introduction   Introduction    `json:"introduction"`
	Sections       []Section       `json:"sections"`
	TaxRatePercent float64         `json:"taxRatePercent"`
	Terms          []string        `json:"terms"`
	PaymentInfo    PaymentInfo     `json:"paymentInfo"`
	FooterInfo     FooterInfo      `json:"footerInfo"`
	Timeline       []TimelineEvent `json:"timeline"`
	Summary        Summary         `json:"summary"`

	itemSeq int
}

// Defaults seeds a new quote. Values normally come from the brand
// profile of the chosen variant (collections package); the compiled-in
// fallbacks live in defaults.go.
type Defaults struct {
	SectionNames   []string
	Terms          []string
	PaymentInfo    PaymentInfo
	FooterInfo     FooterInfo
	TaxRatePercent float64
}

// New creates a quote for the given variant, seeded with the defaults.
func New(variant Variant, d Defaults) *Quote {
	sections := make([]Section, 0, len(d.SectionNames))
	for _, name := range d.SectionNames {
		sections = append(sections, Section{Name: name})
	}

	q := &Quote{
		Variant:        variant,
		Sections:       sections,
		TaxRatePercent: d.TaxRatePercent,
		Terms:          append([]string(nil), d.Terms...),
		PaymentInfo:    d.PaymentInfo,
		FooterInfo:     d.FooterInfo,
	}
	q.RecomputeSummary()
	return q
}

// Clone returns a deep copy of the quote. Exports and sends work on a
// clone so an in-flight render never observes a concurrent edit.
func (q *Quote) Clone() *Quote {
	c := *q
	c.Sections = make([]Section, len(q.Sections))
	for i, s := range q.Sections {
		c.Sections[i] = Section{
			Name:  s.Name,
			Items: append([]LineItem(nil), s.Items...),
		}
	}
	c.Terms = append([]string(nil), q.Terms...)
	c.Timeline = append([]TimelineEvent(nil), q.Timeline...)
	return &c
}

// nextItemID produces a unique id for a new line item within this quote.
func (q *Quote) nextItemID() string {
	q.itemSeq++
	return fmt.Sprintf("item-%d", q.itemSeq)
}
