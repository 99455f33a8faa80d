package reporting

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/trafficlab/ad-report-api/internal/config"
	"github.com/trafficlab/ad-report-api/internal/domain"
	"github.com/trafficlab/ad-report-api/internal/export"
	"github.com/trafficlab/ad-report-api/internal/render"
	"github.com/trafficlab/ad-report-api/pkg/metrics"
)

// Status é o estado da máquina de geração.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusGenerating Status = "generating"
	StatusReady      Status = "ready"
)

// Erros sentinela da geração e exportação.
var (
	// ErrGenerationInFlight indica que já existe uma geração em andamento; a
	// segunda requisição é um no-op até a primeira terminar ou falhar.
	ErrGenerationInFlight = errors.New("já existe uma geração de relatório em andamento")

	// ErrAllFetchesFailed indica que todas as buscas paralelas falharam; não
	// há nada para compor.
	ErrAllFetchesFailed = errors.New("nenhuma fonte de dados respondeu")

	// ErrNotReady indica tentativa de exportar sem documento composto.
	ErrNotReady = errors.New("nenhum relatório pronto para exportar")

	// ErrInvalidDateSelection indica seleção de período que não pôde ser
	// resolvida em um intervalo de datas.
	ErrInvalidDateSelection = errors.New("seleção de período inválida")
)

// Generator é o compositor de relatórios: uma máquina de estados
// Idle → Generating → Ready, com Generating → Idle em falha e qualquer
// mudança de configuração invalidando um documento Ready. No máximo uma
// geração em voo por vez.
type Generator struct {
	cfg    *config.Config
	source InsightSource

	mu       sync.Mutex
	status   Status
	document *domain.ReportDocument
}

// NewGenerator cria um gerador no estado Idle.
func NewGenerator(cfg *config.Config, source InsightSource) *Generator {
	return &Generator{
		cfg:    cfg,
		source: source,
		status: StatusIdle,
	}
}

// Status devolve o estado atual da máquina.
func (g *Generator) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.status
}

// Document devolve o documento composto, ou nil fora do estado Ready.
func (g *Generator) Document() *domain.ReportDocument {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.document
}

// Invalidate descarta um documento Ready e volta para Idle. Qualquer edição
// de título, subtítulo, período, filtro ou perfil passa por aqui: um
// documento composto nunca é reaproveitado após mudança de configuração.
func (g *Generator) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status == StatusReady {
		g.status = StatusIdle
		g.document = nil
	}
}

// Generate executa uma geração completa: resolve o período, dispara as buscas
// paralelas, compõe o documento e o deixa Ready. Falhas parciais de busca
// degradam as seções correspondentes; a geração só falha quando todas as
// buscas falham ou o período é inválido.
func (g *Generator) Generate(req Request) (doc *domain.ReportDocument, err error) {
	g.mu.Lock()
	if g.status == StatusGenerating {
		g.mu.Unlock()
		return nil, ErrGenerationInFlight
	}

	g.status = StatusGenerating
	g.document = nil
	g.mu.Unlock()

	started := time.Now()

	// Falha inesperada na composição não pode deixar a máquina presa em
	// Generating nem manter documento parcial.
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("report: falha inesperada durante a composição")
			err = errors.Errorf("falha inesperada na geração do relatório: %v", r)
		}

		g.mu.Lock()
		if err != nil {
			g.status = StatusIdle
			g.document = nil
			metrics.ReportGenerations.WithLabelValues("failure").Inc()
		} else {
			g.status = StatusReady
			g.document = doc
			metrics.ReportGenerations.WithLabelValues("success").Inc()
			metrics.GenerationDuration.Observe(time.Since(started).Seconds())
		}
		g.mu.Unlock()
	}()

	rng, err := req.DateSelection.Resolve(time.Now())
	if err != nil {
		return nil, errors.Wrap(ErrInvalidDateSelection, err.Error())
	}

	pol := domain.PolicyContext{
		SpendMultiplier: req.SpendMultiplier,
		HideCost:        req.HideCost,
		SelectedProfile: req.Profile,
		ComparePrevious: req.ComparePrevious,
	}.Normalized()

	logrus.WithFields(logrus.Fields{
		"account_id": req.AccountID,
		"profile":    pol.SelectedProfile,
		"since":      rng.Since,
		"until":      rng.Until,
	}).Info("report: iniciando geração")

	data := g.fetchAll(req, rng, pol)
	if data == nil {
		return nil, ErrAllFetchesFailed
	}

	doc = Compose(req, rng, pol, *data)

	logrus.WithFields(logrus.Fields{
		"report_id": doc.ID,
		"sections":  len(doc.Sections),
		"duration":  time.Since(started).String(),
	}).Info("report: documento composto")

	return doc, nil
}

// fetchAll dispara as buscas em paralelo e espera todas terminarem. Cada
// busca que falha loga um aviso e entrega coleção vazia; devolve nil somente
// quando todas falharam.
func (g *Generator) fetchAll(req Request, rng domain.DateRange, pol domain.PolicyContext) *bundle {
	scope := Scope{
		AccountID:   req.AccountID,
		Range:       rng,
		CampaignIDs: req.CampaignIDs,
	}

	data := &bundle{}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
		fetches  int
	)

	run := func(name string, fetch func() error) {
		fetches++
		wg.Add(1)

		go func() {
			defer wg.Done()

			if err := fetch(); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"account_id": scope.AccountID,
					"fetch":      name,
				}).Warn("report: busca de dados falhou, seção seguirá vazia")

				mu.Lock()
				failures++
				mu.Unlock()
			}
		}()
	}

	run("account_insights", func() error {
		record, err := g.source.AccountInsights(scope)
		if err != nil {
			return err
		}

		data.account = record
		data.accountOK = true
		return nil
	})

	run("daily_insights", func() error {
		daily, err := g.source.DailyInsights(scope)
		if err != nil {
			return err
		}

		data.daily = daily
		return nil
	})

	run("campaign_summaries", func() error {
		campaigns, err := g.source.CampaignSummaries(scope)
		if err != nil {
			return err
		}

		data.campaigns = campaigns
		return nil
	})

	run("age_gender_breakdown", func() error {
		rows, err := g.source.AgeGenderBreakdown(scope)
		if err != nil {
			return err
		}

		data.ageGender = rows
		return nil
	})

	run("region_breakdown", func() error {
		rows, err := g.source.RegionBreakdown(scope)
		if err != nil {
			return err
		}

		data.regions = rows
		return nil
	})

	run("placement_breakdown", func() error {
		rows, err := g.source.PlacementBreakdown(scope)
		if err != nil {
			return err
		}

		data.placements = rows
		return nil
	})

	run("creatives", func() error {
		creatives, err := g.source.Creatives(scope)
		if err != nil {
			return err
		}

		data.creatives = creatives
		return nil
	})

	if pol.ComparePrevious {
		previousScope := scope
		previousScope.Range = rng.Previous()

		run("previous_period", func() error {
			record, err := g.source.AccountInsights(previousScope)
			if err != nil {
				return err
			}

			data.previous = &record
			return nil
		})
	}

	wg.Wait()

	if failures == fetches {
		logrus.WithField("account_id", scope.AccountID).Error("report: todas as buscas falharam")
		return nil
	}

	return data
}

// Export renderiza, captura e empacota o documento Ready. Não é reentrante
// com a geração: opera somente sobre um documento composto e não rebusca
// nada. Uma falha de exportação preserva o documento Ready para nova
// tentativa sem recompor.
func (g *Generator) Export() (*export.Artifact, error) {
	g.mu.Lock()
	doc := g.document
	ready := g.status == StatusReady
	g.mu.Unlock()

	if !ready || doc == nil {
		return nil, ErrNotReady
	}

	surface, err := render.Render(doc, g.cfg.Report.SurfaceWidth)
	if err != nil {
		metrics.ReportExports.WithLabelValues("failure").Inc()
		return nil, errors.Wrap(err, "erro ao renderizar o relatório")
	}

	// Espera de acomodação antes da captura: a captura nunca pode competir
	// com o layout dos gráficos.
	time.Sleep(time.Duration(g.cfg.Report.SettleDelayMS) * time.Millisecond)

	raster, err := export.Capture(surface, export.CaptureOptions{
		Density:    g.cfg.Report.PixelDensity,
		Quality:    g.cfg.Report.JPEGQuality,
		Background: g.cfg.Report.Background,
	})
	if err != nil {
		metrics.ReportExports.WithLabelValues("failure").Inc()
		return nil, errors.Wrap(err, "erro ao capturar a superfície do relatório")
	}

	artifact, err := export.Package(raster, export.Metadata{
		Title:    doc.Title,
		Range:    doc.Range,
		MarginMM: g.cfg.Report.PageMarginMM,
	})
	if err != nil {
		metrics.ReportExports.WithLabelValues("failure").Inc()
		return nil, errors.Wrap(err, "erro ao empacotar o relatório em PDF")
	}

	metrics.ReportExports.WithLabelValues("success").Inc()

	logrus.WithFields(logrus.Fields{
		"report_id": doc.ID,
		"filename":  artifact.Filename,
		"bytes":     len(artifact.Data),
	}).Info("report: exportação concluída")

	return artifact, nil
}
