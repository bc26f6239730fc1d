package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-ads-api/pkg/apiErrors"
	"github.com/vfg2006/marketplace-ads-api/pkg/log"
	"github.com/vfg2006/marketplace-ads-api/pkg/utils"
)

// ListCompanyCampaigns lista as campanhas espelhadas de uma empresa, com totais
// e índices derivados do último sync
func ListCompanyCampaigns(campaignRepo repository.CampaignRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaigns, err := campaignRepo.ListByCompany(r.Context(), companyID)
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": companyID,
				"error":      err.Error(),
			}).Error("Erro ao listar campanhas da empresa")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar campanhas da empresa", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta de campanhas")
		}
	})
}

// GetCampaignMetrics retorna as métricas diárias armazenadas de uma campanha no
// intervalo solicitado
func GetCampaignMetrics(metricRepo repository.CampaignMetricRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		dateFromRaw := r.URL.Query().Get("date_from")
		dateToRaw := r.URL.Query().Get("date_to")
		if dateFromRaw == "" || dateToRaw == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Os parâmetros date_from e date_to são obrigatórios", nil)
			return
		}

		dateFrom, err := utils.ParseDate(dateFromRaw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "date_from inválido, formato esperado: 2006-01-02", nil)
			return
		}

		dateTo, err := utils.ParseDate(dateToRaw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "date_to inválido, formato esperado: 2006-01-02", nil)
			return
		}

		metrics, err := metricRepo.ListByCampaignAndRange(r.Context(), campaignID, *dateFrom, *dateTo)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("Erro ao listar métricas da campanha")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar métricas da campanha", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta de métricas")
		}
	})
}
