package abtest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/saltbalente/adlab/internal/domain"
	"github.com/saltbalente/adlab/internal/ports"
	"github.com/saltbalente/adlab/internal/scoring"
)

// Config contiene la configuración del engine de tests A/B.
type Config struct {
	BusinessType    string
	NumHeadlines    int
	NumDescriptions int
	Workers         int
	MinClicks       int64
	MinConfidence   float64
}

// DefaultConfig devuelve una configuración sensata para producción.
func DefaultConfig() Config {
	return Config{
		BusinessType:    domain.BusinessEsoteric,
		NumHeadlines:    DefaultHeadlinesPerVariation,
		NumDescriptions: DefaultDescriptionsPerVariation,
		Workers:         3,
		MinClicks:       DefaultMinClicks,
		MinConfidence:   DefaultMinConfidence,
	}
}

// Engine es el orquestador de tests A/B: genera variaciones, las puntúa,
// predice su rendimiento y evalúa ganadores con métricas reales. No guarda
// estado de negocio entre llamadas más allá del cache de generación.
type Engine struct {
	cfg       Config
	builder   *Builder
	predictor *Predictor
	selector  *Selector
	storage   ports.Storage
	notifier  ports.Notifier
	cache     *batchCache
}

// New crea un Engine con todas las dependencias inyectadas. storage y
// notifier pueden ser nil: el test se crea igual, solo se omite ese paso.
func New(cfg Config, generator ports.Generator, storage ports.Storage, notifier ports.Notifier) *Engine {
	return &Engine{
		cfg:       cfg,
		builder:   NewBuilder(generator, cfg.NumHeadlines, cfg.NumDescriptions),
		predictor: NewPredictor(cfg.BusinessType),
		selector:  NewSelector(cfg.MinClicks, cfg.MinConfidence),
		storage:   storage,
		notifier:  notifier,
		cache:     newBatchCache(),
	}
}

// CreateToneTest genera una variación por tono, puntúa y predice cada una,
// y ensambla el test completo. Las variaciones se generan en paralelo pero
// el resultado conserva el orden de los tonos de entrada.
func (e *Engine) CreateToneTest(ctx context.Context, keywords, tones []string) (*domain.ABTest, error) {
	if len(tones) == 0 {
		return nil, fmt.Errorf("abtest.CreateToneTest: no hay tonos que testear")
	}

	start := time.Now()
	variations := e.generateVariations(ctx, keywords, tones)
	if len(variations) == 0 {
		return nil, fmt.Errorf("abtest.CreateToneTest: ninguna variación se pudo generar")
	}

	test := e.assemble(variations, keywords)

	if e.storage != nil {
		if err := e.storage.SaveTest(ctx, test); err != nil {
			slog.Warn("storage error", "test_id", test.ID, "err", err)
		}
	}
	if e.notifier != nil {
		if err := e.notifier.Notify(ctx, test); err != nil {
			slog.Warn("notifier error", "test_id", test.ID, "err", err)
		}
	}

	slog.Info("tone test created",
		"test_id", test.ID,
		"variations", len(test.Results),
		"best_predicted", test.BestPredicted,
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return test, nil
}

// EvaluateWinner decide el ganador sobre métricas observadas. Que ninguna
// variación tenga datos suficientes es una decisión normal, no un error.
func (e *Engine) EvaluateWinner(ctx context.Context, observed map[string]domain.ObservedMetrics) domain.WinnerDecision {
	decision := e.selector.RecommendWinner(observed)

	if e.notifier != nil {
		if err := e.notifier.NotifyWinner(ctx, decision); err != nil {
			slog.Warn("notifier error", "err", err)
		}
	}
	return decision
}

// generateVariations resuelve primero contra el cache y genera solo si no
// hay entrada. Dos llamadas concurrentes con la misma entrada pueden generar
// ambas; la última escritura gana y ambas son equivalentes.
func (e *Engine) generateVariations(ctx context.Context, keywords, tones []string) []domain.Variation {
	key := cacheKey(keywords, tones, e.cfg.NumHeadlines, e.cfg.NumDescriptions)
	if cached, ok := e.cache.get(key); ok {
		slog.Debug("variation cache hit", "key", key[:12])
		return cached
	}

	variations := buildConcurrently(ctx, e.builder, tones, keywords, e.cfg.Workers)
	if len(variations) > 0 {
		e.cache.put(key, variations)
	}
	return variations
}

// assemble puntúa y predice cada variación y construye el ABTest con sus
// recomendaciones de conjunto.
func (e *Engine) assemble(variations []domain.Variation, keywords []string) *domain.ABTest {
	predictions := e.predictor.PredictAll(variations)

	results := make([]domain.VariationResult, 0, len(variations))
	for _, v := range variations {
		result := domain.VariationResult{
			Variation: v,
			Report:    scoring.ScoreAd(v.Headlines, v.Descriptions, keywords),
		}
		if pred := predictions.Result(v.Label); pred != nil {
			result.Prediction = *pred
		}
		results = append(results, result)
	}

	test := &domain.ABTest{
		ID:              uuid.NewString(),
		Status:          domain.StatusDraft,
		CreatedAt:       time.Now().UTC(),
		BusinessType:    e.cfg.BusinessType,
		Keywords:        keywords,
		Results:         results,
		BestPredicted:   predictions.BestLabel,
		BestReason:      predictions.BestReason,
		ConfidenceLevel: predictions.ConfidenceLevel,
	}
	test.Recommendations = e.recommendations(test, variations)
	return test
}

// recommendations deriva consejos de conjunto: calidad de copy por debajo
// del objetivo, keywords sin usar y variaciones demasiado parecidas.
func (e *Engine) recommendations(test *domain.ABTest, variations []domain.Variation) []string {
	var recs []string

	for _, r := range test.Results {
		if r.Report.OverallScore < 7.0 {
			recs = append(recs, fmt.Sprintf(
				"La variación %s tiene score %.1f - optimiza su copy antes de lanzar",
				r.Variation.Label, r.Report.OverallScore))
		}
	}

	for _, r := range test.Results {
		ka := r.Report.KeywordAnalysis
		if ka != nil && ka.Total > 0 && ka.UsageRatePercent < 50 {
			recs = append(recs, fmt.Sprintf(
				"La variación %s usa solo %.0f%% de las keywords objetivo",
				r.Variation.Label, ka.UsageRatePercent))
		}
	}

	recs = append(recs, overlapRecommendations(CompareVariations(variations))...)

	if test.ConfidenceLevel == "low" {
		recs = append(recs, "Confianza de predicción baja - valida con tráfico real antes de decidir")
	}
	return recs
}
