package optimizer

import (
	"strings"

	"github.com/saltbalente/adlab/internal/domain"
	"github.com/saltbalente/adlab/internal/scoring"
)

// AdOptimization es el resultado de optimizar un anuncio completo.
type AdOptimization struct {
	OriginalHeadlines     []string `json:"original_headlines"`
	OriginalDescriptions  []string `json:"original_descriptions"`
	OptimizedHeadlines    []string `json:"optimized_headlines"`
	OptimizedDescriptions []string `json:"optimized_descriptions"`

	InitialScore      float64 `json:"initial_score"`
	FinalScore        float64 `json:"final_score"`
	Improvement       float64 `json:"improvement"`
	TotalImprovements int     `json:"total_improvements"`

	InitialReport domain.AdScoreReport `json:"initial_report"`
	FinalReport   domain.AdScoreReport `json:"final_report"`
}

// OptimizeAd optimiza todos los campos de un anuncio. Salvo que optimizeAll
// sea true, solo toca los campos con score por debajo del objetivo; los
// campos en blanco pasan intactos.
func OptimizeAd(headlines, descriptions, keywords []string, targetScore float64, optimizeAll bool) AdOptimization {
	if targetScore <= 0 {
		targetScore = DefaultTargetScore
	}

	optimizedHeadlines := make([]string, len(headlines))
	optimizedDescriptions := make([]string, len(descriptions))
	totalImprovements := 0

	for i, h := range headlines {
		if strings.TrimSpace(h) == "" {
			optimizedHeadlines[i] = h
			continue
		}
		if !optimizeAll && scoring.ScoreHeadline(h, keywords).Score >= targetScore {
			optimizedHeadlines[i] = h
			continue
		}
		res := OptimizeHeadline(h, keywords, targetScore)
		optimizedHeadlines[i] = res.Optimized
		totalImprovements += len(res.ImprovementsApplied)
	}

	for i, d := range descriptions {
		if strings.TrimSpace(d) == "" {
			optimizedDescriptions[i] = d
			continue
		}
		if !optimizeAll && scoring.ScoreDescription(d, keywords).Score >= targetScore {
			optimizedDescriptions[i] = d
			continue
		}
		res := OptimizeDescription(d, keywords, targetScore)
		optimizedDescriptions[i] = res.Optimized
		totalImprovements += len(res.ImprovementsApplied)
	}

	initialReport := scoring.ScoreAd(headlines, descriptions, keywords)
	finalReport := scoring.ScoreAd(optimizedHeadlines, optimizedDescriptions, keywords)

	return AdOptimization{
		OriginalHeadlines:     headlines,
		OriginalDescriptions:  descriptions,
		OptimizedHeadlines:    optimizedHeadlines,
		OptimizedDescriptions: optimizedDescriptions,
		InitialScore:          initialReport.OverallScore,
		FinalScore:            finalReport.OverallScore,
		Improvement:           round1(finalReport.OverallScore - initialReport.OverallScore),
		TotalImprovements:     totalImprovements,
		InitialReport:         initialReport,
		FinalReport:           finalReport,
	}
}
