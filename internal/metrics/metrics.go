package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DetectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profanity_detections_total",
		Help: "Total texts checked for profanity, by result.",
	}, []string{"result"})

	MaskedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profanity_masked_total",
		Help: "Total texts altered by masking, by pinned language (\"auto\" when none).",
	}, []string{"language"})

	ExtractedWordsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profanity_extracted_words_total",
		Help: "Total profane words returned by extraction.",
	})

	ConfigReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profanity_config_reloads_total",
		Help: "Total engine snapshot swaps, by setting changed.",
	}, []string{"setting"})

	ImportFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profanity_import_failures_total",
		Help: "Total word list imports that failed, by format.",
	}, []string{"format"})

	RejectedInputsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profanity_rejected_inputs_total",
		Help: "Total inputs refused at the boundary, by reason.",
	}, []string{"reason"})
)
