package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores e histogramas do ciclo de vida do relatório. Os rótulos de
// outcome são "success" e "failure".
var (
	ReportGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ad_report",
		Name:      "generations_total",
		Help:      "Total de gerações de relatório por resultado.",
	}, []string{"outcome"})

	ReportExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ad_report",
		Name:      "exports_total",
		Help:      "Total de exportações de PDF por resultado.",
	}, []string{"outcome"})

	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ad_report",
		Name:      "generation_duration_seconds",
		Help:      "Duração da geração do relatório, da coleta à composição.",
		Buckets:   prometheus.DefBuckets,
	})
)
