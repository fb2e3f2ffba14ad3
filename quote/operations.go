package quote

import "fmt"

// Line item fields accepted by UpdateLineItem.
const (
	FieldCategory       = "category"
	FieldDescription    = "description"
	FieldQuantity       = "quantity"
	FieldUnit           = "unit"
	FieldUnitPrice      = "unitPrice"
	FieldTaxRatePercent = "taxRatePercent"
)

// AddSection appends an empty, unnamed section. Section names are not
// required to be unique.
func (q *Quote) AddSection() {
	q.Sections = append(q.Sections, Section{})
}

// RenameSection sets the name of the section at sectionIdx.
func (q *Quote) RenameSection(sectionIdx int, name string) error {
	sec, err := q.sectionAt(sectionIdx)
	if err != nil {
		return err
	}
	sec.Name = name
	return nil
}

// RemoveSection deletes the section at sectionIdx along with its items
// and refreshes the summary.
func (q *Quote) RemoveSection(sectionIdx int) error {
	if _, err := q.sectionAt(sectionIdx); err != nil {
		return err
	}
	q.Sections = append(q.Sections[:sectionIdx], q.Sections[sectionIdx+1:]...)
	q.RecomputeSummary()
	return nil
}

// AddLineItem appends a line item with default values (quantity 1,
// zero prices) to the section at sectionIdx.
func (q *Quote) AddLineItem(sectionIdx int) error {
	sec, err := q.sectionAt(sectionIdx)
	if err != nil {
		return err
	}
	sec.Items = append(sec.Items, LineItem{
		ID:       q.nextItemID(),
		Quantity: 1,
	})
	q.RecomputeSummary()
	return nil
}

// UpdateLineItem sets one field of one item from its raw input value.
// Numeric fields coerce malformed or negative input to 0; no error is
// reported for that case.
func (q *Quote) UpdateLineItem(sectionIdx, itemIdx int, field, value string) error {
	item, err := q.itemAt(sectionIdx, itemIdx)
	if err != nil {
		return err
	}

	switch field {
	case FieldCategory:
		item.Category = Category(value)
	case FieldDescription:
		item.Description = value
	case FieldUnit:
		item.Unit = value
	case FieldQuantity:
		item.Quantity = coerceAmount(value)
	case FieldUnitPrice:
		item.UnitPrice = coerceAmount(value)
	case FieldTaxRatePercent:
		item.TaxRatePercent = coerceAmount(value)
	default:
		return fmt.Errorf("unknown line item field %q", field)
	}

	q.RecomputeSummary()
	return nil
}

// RemoveLineItem deletes the item at itemIdx from the section at
// sectionIdx and refreshes the summary.
func (q *Quote) RemoveLineItem(sectionIdx, itemIdx int) error {
	sec, err := q.sectionAt(sectionIdx)
	if err != nil {
		return err
	}
	if _, err := q.itemAt(sectionIdx, itemIdx); err != nil {
		return err
	}
	sec.Items = append(sec.Items[:itemIdx], sec.Items[itemIdx+1:]...)
	q.RecomputeSummary()
	return nil
}

// SetGlobalTaxRate replaces the quote-wide tax rate. The 0-100 range is
// a display hint only; no upper bound is enforced here.
func (q *Quote) SetGlobalTaxRate(percent float64) {
	if percent < 0 {
		percent = 0
	}
	q.TaxRatePercent = percent
	q.RecomputeSummary()
}

// SetHeader replaces the header fields. Free text, no validation.
func (q *Quote) SetHeader(h Header) {
	q.Header = h
}

// SetIntroduction replaces the introduction block (software variant).
func (q *Quote) SetIntroduction(intro Introduction) {
	q.Introduction = intro
}

// AddTerm appends a term clause.
func (q *Quote) AddTerm(text string) {
	q.Terms = append(q.Terms, text)
}

// UpdateTerm replaces the term at idx.
func (q *Quote) UpdateTerm(idx int, text string) error {
	if idx < 0 || idx >= len(q.Terms) {
		return fmt.Errorf("term %d: %w", idx, ErrIndexOutOfRange)
	}
	q.Terms[idx] = text
	return nil
}

// RemoveTerm deletes the term at idx.
func (q *Quote) RemoveTerm(idx int) error {
	if idx < 0 || idx >= len(q.Terms) {
		return fmt.Errorf("term %d: %w", idx, ErrIndexOutOfRange)
	}
	q.Terms = append(q.Terms[:idx], q.Terms[idx+1:]...)
	return nil
}

// SetPaymentInfo replaces the payment block.
func (q *Quote) SetPaymentInfo(p PaymentInfo) {
	q.PaymentInfo = p
}

// SetFooterInfo replaces the footer contact fields.
func (q *Quote) SetFooterInfo(f FooterInfo) {
	q.FooterInfo = f
}

// AddTimelineEvent appends an empty timeline event.
func (q *Quote) AddTimelineEvent() {
	q.Timeline = append(q.Timeline, TimelineEvent{})
}

// UpdateTimelineEvent replaces the event at idx.
func (q *Quote) UpdateTimelineEvent(idx int, ev TimelineEvent) error {
	if idx < 0 || idx >= len(q.Timeline) {
		return fmt.Errorf("timeline event %d: %w", idx, ErrIndexOutOfRange)
	}
	q.Timeline[idx] = ev
	return nil
}

// RemoveTimelineEvent deletes the event at idx.
func (q *Quote) RemoveTimelineEvent(idx int) error {
	if idx < 0 || idx >= len(q.Timeline) {
		return fmt.Errorf("timeline event %d: %w", idx, ErrIndexOutOfRange)
	}
	q.Timeline = append(q.Timeline[:idx], q.Timeline[idx+1:]...)
	return nil
}
