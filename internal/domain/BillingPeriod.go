package domain

import "time"

// BillingPeriod representa uma janela de faturamento emitida pelo marketplace para
// uma empresa. Períodos da mesma empresa podem se sobrepor: durante a virada de mês
// a API externa emite o período "corrente" e o período fechado com limites diferentes.
type BillingPeriod struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	PeriodFrom      time.Time `json:"period_from"` // inclusivo
	PeriodTo        time.Time `json:"period_to"`   // inclusivo
	AdvertisingCost float64   `json:"advertising_cost"`
	SaleFees        float64   `json:"sale_fees"`
	ShippingFees    float64   `json:"shipping_fees"`
	IsClosed        bool      `json:"is_closed"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DurationDays retorna a duração do período em dias, extremos inclusos
func (p *BillingPeriod) DurationDays() int {
	if p.PeriodTo.Before(p.PeriodFrom) {
		return 0
	}
	return int(p.PeriodTo.Sub(p.PeriodFrom).Hours()/24) + 1
}

// Overlaps verifica se o período intersecta a janela [from, to]
func (p *BillingPeriod) Overlaps(from, to time.Time) bool {
	return !p.PeriodFrom.After(to) && !p.PeriodTo.Before(from)
}

// BillingAttribution é o agregado de custos atribuído a uma janela de datas.
// Resultado "sem dados" é representado por ponteiro nulo no serviço, nunca por
// um agregado zerado.
type BillingAttribution struct {
	CompanyID       string  `json:"company_id"`
	DateFrom        string  `json:"date_from"`
	DateTo          string  `json:"date_to"`
	AdvertisingCost float64 `json:"advertising_cost"`
	SaleFees        float64 `json:"sale_fees"`
	ShippingFees    float64 `json:"shipping_fees"`
	PeriodsCount    int     `json:"periods_count"`
}
