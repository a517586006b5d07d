package abtest

// winner.go — selección de ganador sobre métricas observadas.
//
// La "confianza estadística" es una heurística por buckets sobre la
// diferencia relativa de scores compuestos, deliberadamente simplificada.
// No es un test de hipótesis real; ver DESIGN.md para la decisión.

import (
	"fmt"
	"math"
	"sort"

	"github.com/saltbalente/adlab/internal/domain"
)

// Valores por defecto del selector.
const (
	DefaultMinClicks     = 100
	DefaultMinConfidence = 0.95
)

// Pesos del score compuesto: CTR 30%, conversión 40%, eficiencia de coste 30%.
const (
	ctrWeight        = 0.3
	conversionWeight = 0.4
	costWeight       = 0.3
)

// Selector decide el ganador de un test con métricas reales.
type Selector struct {
	minClicks     int64
	minConfidence float64
}

// NewSelector crea un Selector. Valores <= 0 usan los defaults (100 clics,
// 0.95 de confianza).
func NewSelector(minClicks int64, minConfidence float64) *Selector {
	if minClicks <= 0 {
		minClicks = DefaultMinClicks
	}
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}
	return &Selector{minClicks: minClicks, minConfidence: minConfidence}
}

// RecommendWinner particiona las variaciones en válidas e insuficientes,
// calcula el score compuesto de las válidas y elige el máximo. Que ninguna
// variación tenga datos suficientes es un resultado normal: devuelve una
// decisión sin ganador con la lista completa de insuficientes.
func (s *Selector) RecommendWinner(observed map[string]domain.ObservedMetrics) domain.WinnerDecision {
	labels := sortedLabels(observed)

	performance := make(map[string]domain.VariationPerformance)
	composites := make(map[string]float64)
	var insufficient []domain.InsufficientData

	for _, label := range labels {
		m := observed[label]
		if m.Clicks < s.minClicks {
			insufficient = append(insufficient, domain.InsufficientData{
				Label:         label,
				ObservedCount: m.Clicks,
				RequiredCount: s.minClicks,
			})
			continue
		}
		perf := computePerformance(m)
		performance[label] = perf
		composites[label] = perf.CompositeScore
	}

	decision := domain.WinnerDecision{
		CompositeScores:  composites,
		Performance:      performance,
		InsufficientData: insufficient,
	}

	if len(performance) == 0 {
		decision.StatisticalConfidence = 0
		decision.NextSteps = []string{
			fmt.Sprintf("Continúa el test hasta alcanzar %d clics por variación", s.minClicks),
		}
		return decision
	}

	winner := ""
	best := math.Inf(-1)
	for _, label := range labels {
		score, ok := composites[label]
		if ok && score > best {
			best = score
			winner = label
		}
	}

	confidence := bucketConfidence(composites, winner)

	decision.WinnerLabel = winner
	decision.StatisticalConfidence = confidence
	decision.IsSignificant = confidence >= s.minConfidence
	decision.NextSteps = s.nextSteps(winner, performance[winner], confidence)

	return decision
}

// computePerformance deriva CTR, tasa de conversión y costes de las
// métricas crudas. Sin conversiones, el coste por conversión queda nil y
// su término del score compuesto vale 0.
func computePerformance(m domain.ObservedMetrics) domain.VariationPerformance {
	ctr := 0.0
	if m.Impressions > 0 {
		ctr = float64(m.Clicks) / float64(m.Impressions) * 100
	}

	conversionRate := 0.0
	cpc := 0.0
	if m.Clicks > 0 {
		conversionRate = float64(m.Conversions) / float64(m.Clicks) * 100
		cpc = m.Cost / float64(m.Clicks)
	}

	var costPerConversion *float64
	costScore := 0.0
	if m.Conversions > 0 {
		cpconv := round2(m.Cost / float64(m.Conversions))
		costPerConversion = &cpconv
		costScore = math.Max(0, 1-cpconv/100)
	}

	composite := (ctrWeight*math.Min(ctr/10, 1) +
		conversionWeight*math.Min(conversionRate/10, 1) +
		costWeight*costScore) * 100

	return domain.VariationPerformance{
		CTR:               round2(ctr),
		ConversionRate:    round2(conversionRate),
		CPC:               round2(cpc),
		CostPerConversion: costPerConversion,
		CompositeScore:    round2(composite),
		Observed:          m,
	}
}

// bucketConfidence mapea la diferencia relativa entre el ganador y la media
// del resto a buckets fijos: ≥30%→0.95, ≥20%→0.90, ≥10%→0.75, ≥5%→0.60,
// si no 0.50. Con menos de 2 variaciones válidas, 0.5 fijo.
func bucketConfidence(composites map[string]float64, winner string) float64 {
	if len(composites) < 2 {
		return 0.5
	}

	winnerScore := composites[winner]

	sum := 0.0
	n := 0
	for label, score := range composites {
		if label == winner {
			continue
		}
		sum += score
		n++
	}
	if n == 0 {
		return 0.5
	}

	avgOther := sum / float64(n)
	if avgOther == 0 {
		return 0.9
	}

	difference := (winnerScore - avgOther) / avgOther
	switch {
	case difference >= 0.30:
		return 0.95
	case difference >= 0.20:
		return 0.90
	case difference >= 0.10:
		return 0.75
	case difference >= 0.05:
		return 0.60
	default:
		return 0.50
	}
}

// nextSteps se deriva de si se alcanzó la significancia y de umbrales
// absolutos sobre las métricas del ganador, no del score compuesto.
func (s *Selector) nextSteps(winner string, perf domain.VariationPerformance, confidence float64) []string {
	var steps []string

	if confidence >= s.minConfidence {
		steps = append(steps,
			fmt.Sprintf("Implementa la variación %s como anuncio principal", winner),
			"Considera crear nuevas variaciones basadas en el ganador",
			"Monitorea el rendimiento durante 30 días",
		)
	} else {
		steps = append(steps,
			fmt.Sprintf("Continúa el test - confianza actual: %.0f%%", confidence*100),
			fmt.Sprintf("Objetivo: alcanzar %.0f%% de confianza", s.minConfidence*100),
			"Aumenta el presupuesto para obtener más datos rápidamente",
		)
	}

	if perf.CTR < 3.0 {
		steps = append(steps, "CTR bajo - considera mejorar los titulares")
	}
	if perf.ConversionRate < 3.0 {
		steps = append(steps, "Tasa de conversión baja - revisa la landing page")
	}

	return steps
}

func sortedLabels(observed map[string]domain.ObservedMetrics) []string {
	labels := make([]string, 0, len(observed))
	for label := range observed {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
