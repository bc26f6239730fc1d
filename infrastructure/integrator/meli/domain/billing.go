package melidomain

// BillingPeriod é um período de faturamento emitido pela API de billing do
// marketplace. As datas vêm no formato "2006-01-02"; períodos consecutivos podem
// se sobrepor durante janelas de reconciliação.
type BillingPeriod struct {
	Period          PeriodBounds `json:"period"`
	AdvertisingCost float64      `json:"advertising_cost"`
	SaleFees        float64      `json:"sale_fees"`
	ShippingFees    float64      `json:"shipping_fees"`
	Status          string       `json:"status"` // OPEN | CLOSED
}

type PeriodBounds struct {
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

// IsClosed indica se a fatura do período já foi consolidada
func (p *BillingPeriod) IsClosed() bool {
	return p.Status == "CLOSED"
}
