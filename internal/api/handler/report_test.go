package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/trafficlab/ad-report-api/internal/api/handler"
	"github.com/trafficlab/ad-report-api/internal/api/handler/router"
	"github.com/trafficlab/ad-report-api/internal/config"
	"github.com/trafficlab/ad-report-api/internal/domain"
	"github.com/trafficlab/ad-report-api/internal/usecases/reporting"
	"github.com/trafficlab/ad-report-api/internal/usecases/reporting/mocks"
)

func testRouter(generator *reporting.Generator) router.Router {
	return router.New(
		router.WithRoutes(handler.Profiles()...),
		router.WithRoutes(handler.Reports(generator)...),
	)
}

func testGenerator(t *testing.T) *reporting.Generator {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	source := mocks.NewMockInsightSource(ctrl)
	source.EXPECT().AccountInsights(gomock.Any()).Return(domain.InsightRecord{
		AccountID:   "123",
		AccountName: "Conta Teste",
		Spend:       "500",
		Impressions: "20000",
		Clicks:      "800",
		Actions:     []domain.Action{{ActionType: "purchase", Value: "25"}},
	}, nil).AnyTimes()
	source.EXPECT().DailyInsights(gomock.Any()).Return([]domain.DailyInsight{
		{InsightRecord: domain.InsightRecord{Spend: "100", DateStart: "2024-01-01"}},
		{InsightRecord: domain.InsightRecord{Spend: "200", DateStart: "2024-01-02"}},
	}, nil).AnyTimes()
	source.EXPECT().CampaignSummaries(gomock.Any()).Return(nil, nil).AnyTimes()
	source.EXPECT().AgeGenderBreakdown(gomock.Any()).Return(nil, nil).AnyTimes()
	source.EXPECT().RegionBreakdown(gomock.Any()).Return(nil, nil).AnyTimes()
	source.EXPECT().PlacementBreakdown(gomock.Any()).Return(nil, nil).AnyTimes()
	source.EXPECT().Creatives(gomock.Any()).Return(nil, nil).AnyTimes()

	cfg := &config.Config{
		Report: config.Report{
			SurfaceWidth: 1100,
			PixelDensity: 1.0,
			JPEGQuality:  80,
			PageMarginMM: 6,
			Background:   "#FFFFFF",
		},
	}

	return reporting.NewGenerator(cfg, source)
}

func generateBody() *bytes.Buffer {
	body, _ := json.Marshal(map[string]any{
		"title":   "Relatorio",
		"profile": "sales",
		"date_selection": map[string]string{
			"preset":     "custom",
			"start_date": "2024-01-01",
			"end_date":   "2024-01-31",
		},
	})

	return bytes.NewBuffer(body)
}

func TestListProfiles(t *testing.T) {
	rt := testRouter(testGenerator(t))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/profiles", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var listed []map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 4)
	assert.Equal(t, "sales", listed[0]["id"])
}

func TestGenerateReport(t *testing.T) {
	t.Run("Corpo inválido devolve 400", func(t *testing.T) {
		rt := testRouter(testGenerator(t))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/accounts/123/report", strings.NewReader("{invalid"))
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_001")
	})

	t.Run("Período irresolúvel devolve 400 com o código de período inválido", func(t *testing.T) {
		rt := testRouter(testGenerator(t))

		body, _ := json.Marshal(map[string]any{
			"title":          "Relatorio",
			"profile":        "sales",
			"date_selection": map[string]string{"preset": "fortnight"},
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/accounts/123/report", bytes.NewBuffer(body))
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_004")
		assert.NotContains(t, rec.Body.String(), "SRV_001")
	})

	t.Run("Geração completa devolve o PDF para download", func(t *testing.T) {
		rt := testRouter(testGenerator(t))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/accounts/123/report", generateBody())
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "Relatorio - 2024-01-01 to 2024-01-31.pdf")
		assert.Equal(t, "%PDF", rec.Body.String()[:4])
	})
}

func TestPreviewReport(t *testing.T) {
	rt := testRouter(testGenerator(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/accounts/123/report/preview", generateBody())
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var doc domain.ReportDocument
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Relatorio", doc.Title)
	assert.Equal(t, "sales", doc.Profile)
	assert.NotEmpty(t, doc.Sections)
}
