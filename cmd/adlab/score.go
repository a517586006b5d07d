package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/saltbalente/adlab/internal/domain"
	"github.com/saltbalente/adlab/internal/optimizer"
	"github.com/saltbalente/adlab/internal/scoring"
)

// runScore puntúa un campo y muestra el desglose.
func runScore(text string, isDescription bool, keywords []string) {
	if text == "" {
		slog.Error("missing -text")
		os.Exit(2)
	}

	var field domain.ScoredField
	kind := "titular"
	if isDescription {
		field = scoring.ScoreDescription(text, keywords)
		kind = "descripción"
	} else {
		field = scoring.ScoreHeadline(text, keywords)
	}

	fmt.Printf("%s: %q (%d caracteres)\n", kind, field.Text, field.Length)
	fmt.Printf("score: %.1f  grade: %s\n", field.Score, field.Grade)

	printLines("issues", field.Issues)
	printLines("fortalezas", field.Strengths)
	printLines("recomendaciones", field.Recommendations)
}

// runOptimize optimiza un campo y muestra el antes y el después.
func runOptimize(text string, isDescription bool, keywords []string, targetScore float64) {
	if text == "" {
		slog.Error("missing -text")
		os.Exit(2)
	}

	var result domain.OptimizationResult
	if isDescription {
		result = optimizer.OptimizeDescription(text, keywords, targetScore)
	} else {
		result = optimizer.OptimizeHeadline(text, keywords, targetScore)
	}

	fmt.Printf("original:   %q (score %.1f)\n", result.Original, result.InitialScore)
	fmt.Printf("optimizado: %q (score %.1f)\n", result.Optimized, result.FinalScore)
	fmt.Printf("mejora: %+.1f  objetivo %.1f alcanzado: %v\n",
		result.Improvement, targetScore, result.MeetsTarget)

	printLines("pasos aplicados", result.ImprovementsApplied)
	if !result.Changed {
		fmt.Println("el texto ya estaba en su mejor forma para esta pasada")
	}
}

func printLines(header string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Printf("%s:\n", header)
	for _, line := range lines {
		fmt.Printf("  - %s\n", line)
	}
}
