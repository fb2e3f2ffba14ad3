package quote

// RecomputeSummary folds every line item of every section into the
// quote summary and stores the result on the aggregate. The global tax
// rate alone feeds the tax amount; per-item rates only affect the
// per-row tax column of the printed document. Calling it twice without
// an intervening mutation returns identical values.
func (q *Quote) RecomputeSummary() Summary {
	var direct float64
	for _, sec := range q.Sections {
		for _, item := range sec.Items {
			direct += item.Quantity * item.UnitPrice
		}
	}

	tax := direct * q.TaxRatePercent / 100

	q.Summary = Summary{
		TotalDirectCost: direct,
		TaxAmount:       tax,
		Total:           direct + tax,
	}
	return q.Summary
}
