package abtest

import (
	"sort"
	"sync"

	"github.com/saltbalente/adlab/internal/domain"
)

// ToneStats agrega el rendimiento de un tono a través de varios tests.
type ToneStats struct {
	Tone     string  `json:"tone"`
	Tests    int     `json:"tests"`
	AvgScore float64 `json:"avg_score"`
	AvgCTR   float64 `json:"avg_predicted_ctr"`
	Wins     int     `json:"wins"` // veces que fue la mejor predicha de su test
}

// Stats acumula rendimiento por tono. El estado es del caller: el Engine no
// guarda ninguno, quien quiera histórico crea un Stats y le pasa los tests
// que le interesen.
type Stats struct {
	mu    sync.Mutex
	tones map[string]*toneAccum
}

type toneAccum struct {
	tests    int
	scoreSum float64
	ctrSum   float64
	wins     int
}

// NewStats crea un acumulador vacío.
func NewStats() *Stats {
	return &Stats{tones: make(map[string]*toneAccum)}
}

// Record incorpora un test al acumulado.
func (s *Stats) Record(test *domain.ABTest) {
	if test == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range test.Results {
		tone := r.Variation.Tone
		acc, ok := s.tones[tone]
		if !ok {
			acc = &toneAccum{}
			s.tones[tone] = acc
		}
		acc.tests++
		acc.scoreSum += r.Report.OverallScore
		acc.ctrSum += r.Prediction.PredictedCTR
		if r.Variation.Label == test.BestPredicted {
			acc.wins++
		}
	}
}

// TonePerformance devuelve las estadísticas por tono, ordenadas por CTR
// medio descendente y alfabéticamente en empates.
func (s *Stats) TonePerformance() []ToneStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ToneStats, 0, len(s.tones))
	for tone, acc := range s.tones {
		n := float64(acc.tests)
		out = append(out, ToneStats{
			Tone:     tone,
			Tests:    acc.tests,
			AvgScore: acc.scoreSum / n,
			AvgCTR:   acc.ctrSum / n,
			Wins:     acc.wins,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgCTR != out[j].AvgCTR {
			return out[i].AvgCTR > out[j].AvgCTR
		}
		return out[i].Tone < out[j].Tone
	})
	return out
}

// BestTone devuelve el tono con mayor CTR medio, o "" sin datos.
func (s *Stats) BestTone() string {
	perf := s.TonePerformance()
	if len(perf) == 0 {
		return ""
	}
	return perf[0].Tone
}
