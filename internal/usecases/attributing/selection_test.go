package attributing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketplace-ads-api/internal/config"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
)

func defaultWeights() config.Attribution {
	return config.Attribution{
		EndsInMonthWeight:       3.0,
		StartsInMonthWeight:     2.0,
		LongPeriodThresholdDays: 60,
		LongPeriodPenalty:       1.0,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestScorePeriod(t *testing.T) {
	windowFrom := date(2024, time.September, 1)
	windowTo := date(2024, time.September, 30)

	tests := []struct {
		name             string
		period           *domain.BillingPeriod
		expectedScore    float64
		expectedOverlap  int
		expectedDuration int
	}{
		{
			name: "Período justo que cobre exatamente a janela recebe pontuação máxima",
			period: &domain.BillingPeriod{
				PeriodFrom: date(2024, time.September, 1),
				PeriodTo:   date(2024, time.September, 30),
			},
			expectedScore:    6.0, // 3 (termina no mês) + 2 (começa no mês) + 30/30
			expectedOverlap:  30,
			expectedDuration: 30,
		},
		{
			name: "Período longo que engloba a janela é penalizado",
			period: &domain.BillingPeriod{
				PeriodFrom: date(2024, time.August, 15),
				PeriodTo:   date(2024, time.October, 15),
			},
			expectedScore:    float64(30)/float64(62) - 1.0, // sem bônus de mês, fração menos penalidade
			expectedOverlap:  30,
			expectedDuration: 62,
		},
		{
			name: "Período que só termina no mês da janela ganha apenas o peso de término",
			period: &domain.BillingPeriod{
				PeriodFrom: date(2024, time.August, 20),
				PeriodTo:   date(2024, time.September, 10),
			},
			expectedScore:    3.0 + float64(10)/float64(22),
			expectedOverlap:  10,
			expectedDuration: 22,
		},
		{
			name: "Período que só começa no mês da janela ganha apenas o peso de início",
			period: &domain.BillingPeriod{
				PeriodFrom: date(2024, time.September, 25),
				PeriodTo:   date(2024, time.October, 5),
			},
			expectedScore:    2.0 + float64(6)/float64(11),
			expectedOverlap:  6,
			expectedDuration: 11,
		},
		{
			name: "Período longo que não engloba a janela inteira não é penalizado",
			period: &domain.BillingPeriod{
				PeriodFrom: date(2024, time.July, 1),
				PeriodTo:   date(2024, time.September, 15),
			},
			expectedScore:    3.0 + float64(15)/float64(77),
			expectedOverlap:  15,
			expectedDuration: 77,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored := scorePeriod(tt.period, windowFrom, windowTo, defaultWeights())

			assert.InDelta(t, tt.expectedScore, scored.score, 0.0001)
			assert.Equal(t, tt.expectedOverlap, scored.overlapDays)
			assert.Equal(t, tt.expectedDuration, scored.durationDays)
		})
	}
}

func TestRankPeriods(t *testing.T) {
	windowFrom := date(2024, time.September, 1)
	windowTo := date(2024, time.September, 30)

	t.Run("Período justo vence fatura reemitida com limites largos", func(t *testing.T) {
		tight := &domain.BillingPeriod{
			ID:              "tight",
			PeriodFrom:      date(2024, time.September, 1),
			PeriodTo:        date(2024, time.September, 30),
			AdvertisingCost: 1162.99,
		}
		wide := &domain.BillingPeriod{
			ID:              "wide",
			PeriodFrom:      date(2024, time.August, 15),
			PeriodTo:        date(2024, time.October, 15),
			AdvertisingCost: 1843.40,
		}

		ranked := rankPeriods([]*domain.BillingPeriod{wide, tight}, windowFrom, windowTo, defaultWeights())

		assert.Len(t, ranked, 2)
		assert.Equal(t, "tight", ranked[0].period.ID)
		assert.Equal(t, "wide", ranked[1].period.ID)
	})

	t.Run("Empate total de pontuação prefere período aberto ao fechado", func(t *testing.T) {
		closed := &domain.BillingPeriod{
			ID:         "closed",
			PeriodFrom: date(2024, time.September, 1),
			PeriodTo:   date(2024, time.September, 30),
			IsClosed:   true,
		}
		open := &domain.BillingPeriod{
			ID:         "open",
			PeriodFrom: date(2024, time.September, 1),
			PeriodTo:   date(2024, time.September, 30),
			IsClosed:   false,
		}

		ranked := rankPeriods([]*domain.BillingPeriod{closed, open}, windowFrom, windowTo, defaultWeights())

		assert.Equal(t, "open", ranked[0].period.ID)
		assert.Equal(t, "closed", ranked[1].period.ID)
	})

	t.Run("Empate de pontuação prefere menor sobreposição e menor duração", func(t *testing.T) {
		// Nenhum toca os meses da janela: pontuação vem só da fração de cobertura
		windowFrom := date(2024, time.September, 10)
		windowTo := date(2024, time.September, 20)

		shorter := &domain.BillingPeriod{
			ID:         "shorter",
			PeriodFrom: date(2024, time.September, 12),
			PeriodTo:   date(2024, time.September, 16),
		}
		longer := &domain.BillingPeriod{
			ID:         "longer",
			PeriodFrom: date(2024, time.September, 11),
			PeriodTo:   date(2024, time.September, 20),
		}

		ranked := rankPeriods([]*domain.BillingPeriod{longer, shorter}, windowFrom, windowTo, defaultWeights())

		// Ambos têm fração 1.0 (inteiramente dentro da janela) e mesmos bônus de mês;
		// desempata pela menor sobreposição
		assert.Equal(t, "shorter", ranked[0].period.ID)
	})
}

func TestSelectPeriods(t *testing.T) {
	windowFrom := date(2024, time.August, 1)
	windowTo := date(2024, time.October, 31)

	t.Run("Períodos sem sobreposição entre si são todos selecionados", func(t *testing.T) {
		august := &domain.BillingPeriod{
			ID:              "august",
			PeriodFrom:      date(2024, time.August, 1),
			PeriodTo:        date(2024, time.August, 31),
			AdvertisingCost: 1444.50,
		}
		october := &domain.BillingPeriod{
			ID:              "october",
			PeriodFrom:      date(2024, time.October, 1),
			PeriodTo:        date(2024, time.October, 31),
			AdvertisingCost: 680.41,
		}

		ranked := rankPeriods([]*domain.BillingPeriod{august, october}, windowFrom, windowTo, defaultWeights())
		selected := selectPeriods(ranked)

		assert.Len(t, selected, 2)
	})

	t.Run("Período que sobrepõe um já selecionado é descartado", func(t *testing.T) {
		windowFrom := date(2024, time.September, 1)
		windowTo := date(2024, time.September, 30)

		tight := &domain.BillingPeriod{
			ID:         "tight",
			PeriodFrom: date(2024, time.September, 1),
			PeriodTo:   date(2024, time.September, 30),
		}
		wide := &domain.BillingPeriod{
			ID:         "wide",
			PeriodFrom: date(2024, time.August, 15),
			PeriodTo:   date(2024, time.October, 15),
		}

		ranked := rankPeriods([]*domain.BillingPeriod{tight, wide}, windowFrom, windowTo, defaultWeights())
		selected := selectPeriods(ranked)

		assert.Len(t, selected, 1)
		assert.Equal(t, "tight", selected[0].ID)
	})
}
