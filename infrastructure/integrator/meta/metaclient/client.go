package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trafficlab/ad-report-api/internal/config"
	"github.com/trafficlab/ad-report-api/internal/domain"
)

// Client é a fronteira HTTP com a Graph API de anúncios. Cada método cobre um
// nível ou recorte de insights; os filtros de período e campanha chegam já
// montados nos params.
type Client interface {
	AccountInsights(accountID string, rng domain.DateRange, params url.Values) ([]domain.InsightRecord, error)
	CampaignInsights(accountID string, rng domain.DateRange, params url.Values) ([]domain.CampaignSummary, error)
	BreakdownInsights(accountID string, rng domain.DateRange, params url.Values) ([]domain.BreakdownRecord, error)
	AdInsights(accountID string, rng domain.DateRange, params url.Values) ([]domain.CreativeRecord, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// getInsights monta e executa a chamada de insights para a conta, anexando o
// time_range e o access_token aos params recebidos.
func (c *MetaClient) getInsights(accountID string, rng domain.DateRange, params url.Values) ([]byte, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", rng.Since, rng.Until)

	params.Add("time_range", timeRange)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	url := baseURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

// handleResponse lê o corpo e converte respostas de erro da Graph API em um
// GraphError.
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.WithError(err).Error("Erro ao ler o corpo da resposta")
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, decodeGraphError(resp.StatusCode, body)
	}

	return body, nil
}
