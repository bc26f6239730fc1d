package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/internal/usecases/attributing"
	"github.com/vfg2006/marketplace-ads-api/pkg/apiErrors"
	"github.com/vfg2006/marketplace-ads-api/pkg/log"
	"github.com/vfg2006/marketplace-ads-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// billingAttributionResponse distingue explicitamente "sem dados de faturamento"
// de custo zero confirmado
type billingAttributionResponse struct {
	Success bool                       `json:"success"`
	NoData  bool                       `json:"no_data"`
	Data    *domain.BillingAttribution `json:"data,omitempty"`
}

// GetBillingAttribution retorna o agregado de custos de faturamento atribuído à
// janela de datas solicitada
func GetBillingAttribution(service attributing.Attributor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		dateFromRaw := r.URL.Query().Get("date_from")
		dateToRaw := r.URL.Query().Get("date_to")
		if dateFromRaw == "" || dateToRaw == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Os parâmetros date_from e date_to são obrigatórios", nil)
			return
		}

		dateFrom, err := utils.ParseDate(dateFromRaw)
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": companyID,
				"date_from":  dateFromRaw,
				"error":      err.Error(),
			}).Warn("Parâmetro date_from inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "date_from inválido, formato esperado: 2006-01-02", nil)
			return
		}

		dateTo, err := utils.ParseDate(dateToRaw)
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": companyID,
				"date_to":    dateToRaw,
				"error":      err.Error(),
			}).Warn("Parâmetro date_to inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "date_to inválido, formato esperado: 2006-01-02", nil)
			return
		}

		if dateFrom.After(*dateTo) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "date_from não pode ser posterior a date_to", nil)
			return
		}

		attribution, err := service.GetBillingAttribution(r.Context(), companyID, *dateFrom, *dateTo)
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": companyID,
				"date_from":  dateFrom.Format(time.DateOnly),
				"date_to":    dateTo.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("Erro ao calcular atribuição de faturamento")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular atribuição de faturamento", nil)
			return
		}

		response := billingAttributionResponse{
			Success: true,
			NoData:  attribution == nil,
			Data:    attribution,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta de atribuição")
		}
	})
}
