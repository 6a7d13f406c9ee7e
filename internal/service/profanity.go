package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/profanity-filter/internal/config"
	"github.com/profanity-filter/internal/dictionary"
	"github.com/profanity-filter/internal/logger"
	"github.com/profanity-filter/internal/metrics"
	"github.com/profanity-filter/internal/profanity"
	"go.uber.org/zap"
)

// ProfanityService shares one engine snapshot between goroutines. Setters
// build a new snapshot and swap it in, so readers always see a configuration
// and dictionary that belong together.
type ProfanityService struct {
	mu     sync.Mutex
	engine atomic.Pointer[profanity.Engine]
}

func NewProfanityService(engine *profanity.Engine) *ProfanityService {
	s := &ProfanityService{}
	s.engine.Store(engine)
	return s
}

// NewProfanityServiceFromConfig loads the word lists named by cfg and pins
// cfg.Language when it is set.
func NewProfanityServiceFromConfig(ctx context.Context, cfg *config.Config) (*ProfanityService, error) {
	dict, err := dictionary.Load(ctx, cfg.Sources())
	if err != nil {
		return nil, fmt.Errorf("failed to load word lists: %w", err)
	}

	engine, err := profanity.New(cfg.Filter, dict)
	if err != nil {
		return nil, err
	}
	if cfg.Language != "" {
		if engine, err = engine.WithLanguage(cfg.Language); err != nil {
			return nil, err
		}
	}

	logger.Info("Profanity filter ready",
		zap.Strings("languages", engine.Languages()),
		zap.String("pinned", engine.Language()),
	)
	return NewProfanityService(engine), nil
}

func (s *ProfanityService) Engine() *profanity.Engine {
	return s.engine.Load()
}

func (s *ProfanityService) IsBad(text string) bool {
	bad := s.engine.Load().Detect(text)
	if bad {
		metrics.DetectionsTotal.WithLabelValues("profane").Inc()
	} else {
		metrics.DetectionsTotal.WithLabelValues("clean").Inc()
	}
	return bad
}

func (s *ProfanityService) Clean(text string) string {
	engine := s.engine.Load()
	cleaned := engine.Mask(text)
	if cleaned != text {
		lang := engine.Language()
		if lang == "" {
			lang = "auto"
		}
		metrics.MaskedTotal.WithLabelValues(lang).Inc()
	}
	return cleaned
}

func (s *ProfanityService) Words(text string) []string {
	words := s.engine.Load().ExtractMatches(text)
	metrics.ExtractedWordsTotal.Add(float64(len(words)))
	return words
}

func (s *ProfanityService) Language() string {
	return s.engine.Load().Language()
}

// SetLanguage pins the filter to code. An unsupported code leaves the filter unchanged.
func (s *ProfanityService) SetLanguage(code string) error {
	return s.update("language", func(e *profanity.Engine) (*profanity.Engine, error) {
		return e.WithLanguage(code)
	})
}

// ClearLanguage returns to multi-language mode.
func (s *ProfanityService) ClearLanguage() {
	_ = s.update("language", func(e *profanity.Engine) (*profanity.Engine, error) {
		return e.WithoutLanguage(), nil
	})
}

func (s *ProfanityService) SetCaseSensitive(caseSensitive bool) {
	_ = s.update("case_sensitive", func(e *profanity.Engine) (*profanity.Engine, error) {
		return e.WithCaseSensitivity(caseSensitive), nil
	})
}

func (s *ProfanityService) SetDetectLeetSpeak(detect bool) {
	_ = s.update("detect_leet_speak", func(e *profanity.Engine) (*profanity.Engine, error) {
		return e.WithLeetDetection(detect), nil
	})
}

// SetConfig replaces configuration and dictionary together.
func (s *ProfanityService) SetConfig(cfg profanity.Config, dict profanity.Dictionary) error {
	return s.update("config", func(e *profanity.Engine) (*profanity.Engine, error) {
		return e.WithConfiguration(cfg, dict)
	})
}

// update serialises writers; readers never block.
func (s *ProfanityService) update(setting string, fn func(*profanity.Engine) (*profanity.Engine, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.engine.Load())
	if err != nil {
		logger.Warn("Rejected profanity filter update", zap.String("setting", setting), zap.Error(err))
		return err
	}
	s.engine.Store(next)
	metrics.ConfigReloadsTotal.WithLabelValues(setting).Inc()
	return nil
}
