package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketplace-ads-api/internal/usecases/syncing"
	"github.com/vfg2006/marketplace-ads-api/pkg/apiErrors"
	"github.com/vfg2006/marketplace-ads-api/pkg/log"
)

// RunCompanySync executa de forma síncrona a sincronização de campanhas de uma
// empresa e retorna o resumo da execução
func RunCompanySync(syncer syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("company_id", companyID).Info("Iniciando sincronização manual da empresa")

		result, err := syncer.RunSync(r.Context(), companyID)
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": companyID,
				"error":      err.Error(),
			}).Error("Erro na sincronização manual da empresa")

			writeSyncError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta da sincronização")
		}
	})
}

// writeSyncError mapeia os erros fatais de resolução para respostas padronizadas
func writeSyncError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, syncing.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCompanyNotFound, "Empresa sem conta vinculada no marketplace", nil)
	case errors.Is(err, syncing.ErrUserNotLinked):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta da empresa sem usuário autorizado no marketplace", nil)
	case errors.Is(err, syncing.ErrTokenUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível obter um token de acesso válido", nil)
	case errors.Is(err, syncing.ErrAdvertiserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Nenhum anunciante de Product Ads para o site da conta", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrSyncFailed, "Falha na sincronização da empresa", nil)
	}
}
