package attributing

import (
	"sort"
	"time"

	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/pkg/utils"
)

// scoredPeriod carrega um período candidato com a pontuação e as medidas usadas
// nos critérios de desempate
type scoredPeriod struct {
	period       *domain.BillingPeriod
	score        float64
	overlapDays  int
	durationDays int
}

// scorePeriod calcula a pontuação de prioridade de um período candidato frente à
// janela solicitada. Quanto maior, melhor o encaixe:
//   - período que termina no mesmo mês/ano do fim da janela ganha peso cheio;
//   - período que começa no mesmo mês/ano do início da janela ganha peso parcial;
//   - a fração do período coberta pela janela favorece períodos curtos e justos;
//   - períodos longos que englobam a janela inteira são penalizados, pois em geral
//     são faturas reemitidas com limites largos demais.
func scorePeriod(period *domain.BillingPeriod, windowFrom, windowTo time.Time, weights config.Attribution) scoredPeriod {
	overlapFrom := period.PeriodFrom
	if windowFrom.After(overlapFrom) {
		overlapFrom = windowFrom
	}

	overlapTo := period.PeriodTo
	if windowTo.Before(overlapTo) {
		overlapTo = windowTo
	}

	overlapDays := utils.DaysBetween(overlapFrom, overlapTo)
	durationDays := period.DurationDays()

	var score float64

	if utils.SameMonth(period.PeriodTo, windowTo) {
		score += weights.EndsInMonthWeight
	}

	if utils.SameMonth(period.PeriodFrom, windowFrom) {
		score += weights.StartsInMonthWeight
	}

	if durationDays > 0 {
		score += float64(overlapDays) / float64(durationDays)
	}

	containsWindow := !period.PeriodFrom.After(windowFrom) && !period.PeriodTo.Before(windowTo)
	if durationDays > weights.LongPeriodThresholdDays && containsWindow {
		score -= weights.LongPeriodPenalty
	}

	return scoredPeriod{
		period:       period,
		score:        score,
		overlapDays:  overlapDays,
		durationDays: durationDays,
	}
}

// rankPeriods pontua e ordena os candidatos do melhor para o pior encaixe.
// Desempates, nesta ordem: menor sobreposição, menor duração e período aberto
// antes de fechado (o período corrente carrega os dados mais frescos).
func rankPeriods(periods []*domain.BillingPeriod, windowFrom, windowTo time.Time, weights config.Attribution) []scoredPeriod {
	ranked := make([]scoredPeriod, 0, len(periods))
	for _, period := range periods {
		ranked = append(ranked, scorePeriod(period, windowFrom, windowTo, weights))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		if ranked[i].overlapDays != ranked[j].overlapDays {
			return ranked[i].overlapDays < ranked[j].overlapDays
		}
		if ranked[i].durationDays != ranked[j].durationDays {
			return ranked[i].durationDays < ranked[j].durationDays
		}
		return !ranked[i].period.IsClosed && ranked[j].period.IsClosed
	})

	return ranked
}

// selectPeriods escolhe o subconjunto de períodos usado na agregação: o melhor
// colocado entra sempre; os demais só entram se não se sobrepõem a nenhum já
// selecionado. Períodos sobrepostos costumam ser a mesma fatura reemitida com
// limites diferentes, e somá-los dobraria (ou triplicaria) o custo.
func selectPeriods(ranked []scoredPeriod) []*domain.BillingPeriod {
	selected := make([]*domain.BillingPeriod, 0, len(ranked))

	for _, candidate := range ranked {
		overlapsSelected := false
		for _, chosen := range selected {
			if candidate.period.Overlaps(chosen.PeriodFrom, chosen.PeriodTo) {
				overlapsSelected = true
				break
			}
		}

		if !overlapsSelected {
			selected = append(selected, candidate.period)
		}
	}

	return selected
}
