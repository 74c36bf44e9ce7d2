package ledger

import "keude/internal/model"

// DocumentTotals breaks a document down the way the printed layout shows it.
type DocumentTotals struct {
	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	AfterDiscount float64 `json:"after_discount"` // DPP
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
}

// ComputeDocumentTotal applies discount then tax over the line items and
// floors the grand total at zero. Negative percentages are not rejected;
// validating them is the caller's job.
func ComputeDocumentTotal(items []model.DocumentItem, discountPct, taxPct float64) DocumentTotals {
	var sub float64
	for _, it := range items {
		sub += it.Qty * it.Price
	}
	disc := sub * (discountPct / 100)
	dpp := sub - disc
	tax := dpp * (taxPct / 100)
	total := dpp + tax
	if total < 0 {
		total = 0
	}
	return DocumentTotals{
		Subtotal:      sub,
		Discount:      disc,
		AfterDiscount: dpp,
		Tax:           tax,
		Total:         total,
	}
}

// DividendAllocation is net profit split over the six configured buckets.
type DividendAllocation struct {
	NetProfit        float64 `json:"net_profit"`
	RetainedEarnings float64 `json:"retained_earnings"`
	Dividends        float64 `json:"dividends"`
	Directors        float64 `json:"directors"`
	Commissioners    float64 `json:"commissioners"`
	Employees        float64 `json:"employees"`
	CSR              float64 `json:"csr"`
	Allocated        float64 `json:"allocated"`
}

// ComputeDividendAllocation multiplies net profit by each bucket percentage
// independently. No renormalization happens here: if the percentages do not
// sum to 100 the allocated total will differ from net profit, and blocking
// such configurations is the settings-save boundary's responsibility.
func ComputeDividendAllocation(netProfit float64, s model.DividendSettings) DividendAllocation {
	a := DividendAllocation{
		NetProfit:        netProfit,
		RetainedEarnings: netProfit * s.RetainedEarnings / 100,
		Dividends:        netProfit * s.Dividends / 100,
		Directors:        netProfit * s.Directors / 100,
		Commissioners:    netProfit * s.Commissioners / 100,
		Employees:        netProfit * s.Employees / 100,
		CSR:              netProfit * s.CSR / 100,
	}
	a.Allocated = a.RetainedEarnings + a.Dividends + a.Directors + a.Commissioners + a.Employees + a.CSR
	return a
}
