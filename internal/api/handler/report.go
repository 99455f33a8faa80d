package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/trafficlab/ad-report-api/internal/profiles"
	"github.com/trafficlab/ad-report-api/internal/usecases/reporting"
	"github.com/trafficlab/ad-report-api/pkg/apiErrors"
	"github.com/trafficlab/ad-report-api/pkg/log"
)

// decodeRequest lê o corpo da requisição de geração e aplica o ID da rota.
func decodeRequest(r *http.Request) (reporting.Request, error) {
	var req reporting.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, errors.Wrap(err, "corpo da requisição inválido")
	}

	req.AccountID = httprouter.ParamsFromContext(r.Context()).ByName("id")
	if req.AccountID == "" {
		return req, errors.New("id da conta ausente na rota")
	}

	return req, nil
}

// GenerateReport gera o relatório e devolve o PDF pronto para download.
func GenerateReport(generator *reporting.Generator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, err := decodeRequest(r)
		if err != nil {
			logger.WithError(err).Warn("report: requisição de geração inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": req.AccountID,
			"profile":    req.Profile,
		}).Info("report: geração de relatório solicitada")

		doc, err := generator.Generate(req)
		if err != nil {
			writeGenerationError(w, logger, req.AccountID, err)
			return
		}

		artifact, err := generator.Export()
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": req.AccountID,
				"report_id":  doc.ID,
				"error":      err.Error(),
			}).Error("report: falha na exportação do PDF")

			apiErrors.WriteError(w, apiErrors.ErrExportFailed, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": req.AccountID,
			"report_id":  doc.ID,
			"filename":   artifact.Filename,
		}).Info("report: PDF entregue")

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(artifact.Data)))

		if _, err := w.Write(artifact.Data); err != nil {
			logger.WithError(err).Error("report: falha ao escrever o PDF na resposta")
		}
	})
}

// PreviewReport gera o relatório e devolve o documento composto em JSON, sem
// renderizar nem exportar.
func PreviewReport(generator *reporting.Generator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, err := decodeRequest(r)
		if err != nil {
			logger.WithError(err).Warn("report: requisição de prévia inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		doc, err := generator.Generate(req)
		if err != nil {
			writeGenerationError(w, logger, req.AccountID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(doc); err != nil {
			logger.WithFields(log.Fields{
				"account_id": req.AccountID,
				"error":      err.Error(),
			}).Error("report: falha ao codificar a prévia")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListProfiles devolve os perfis de relatório disponíveis.
func ListProfiles() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(profiles.List()); err != nil {
			logger.WithError(err).Error("report: falha ao codificar a lista de perfis")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func writeGenerationError(w http.ResponseWriter, logger log.Logger, accountID string, err error) {
	logger.WithFields(log.Fields{
		"account_id": accountID,
		"error":      err.Error(),
	}).Error("report: falha na geração do relatório")

	switch {
	case errors.Is(err, reporting.ErrGenerationInFlight):
		apiErrors.WriteError(w, apiErrors.ErrGenerationInFlight, err.Error(), nil)
	case errors.Is(err, reporting.ErrAllFetchesFailed):
		apiErrors.WriteError(w, apiErrors.ErrGenerationFailed, err.Error(), nil)
	case errors.Is(err, reporting.ErrInvalidDateSelection):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
