package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/saltbalente/adlab/internal/domain"
)

// Console implementa ports.Notifier.
type Console struct {
	out     io.Writer
	table   bool
	verbose bool
}

// NewConsole crea un notificador que escribe a stdout.
func NewConsole(table, verbose bool) *Console {
	return &Console{out: os.Stdout, table: table, verbose: verbose}
}

// NewConsoleWriter crea un notificador para tests.
func NewConsoleWriter(w io.Writer, table, verbose bool) *Console {
	return &Console{out: w, table: table, verbose: verbose}
}

// Notify imprime el test en el modo configurado.
func (c *Console) Notify(_ context.Context, test *domain.ABTest) error {
	if test == nil || len(test.Results) == 0 {
		fmt.Fprintf(c.out, "[%s] test sin variaciones\n", time.Now().Format("15:04:05"))
		return nil
	}

	if c.table {
		c.printFull(test)
	} else {
		c.printCompact(test)
	}

	if c.verbose {
		c.printFields(test)
	}
	return nil
}

// NotifyWinner imprime la decisión de ganador sobre métricas reales.
func (c *Console) NotifyWinner(_ context.Context, decision domain.WinnerDecision) error {
	if decision.WinnerLabel == "" {
		fmt.Fprintf(c.out, "\nSin ganador: ninguna variación tiene datos suficientes\n")
		for _, d := range decision.InsufficientData {
			fmt.Fprintf(c.out, "  %s: %d clics de %d requeridos\n",
				d.Label, d.ObservedCount, d.RequiredCount)
		}
		c.printSteps(decision.NextSteps)
		return nil
	}

	verdict := "NO SIGNIFICATIVO"
	if decision.IsSignificant {
		verdict = "SIGNIFICATIVO"
	}
	fmt.Fprintf(c.out, "\nGanador: %s — confianza %.0f%% [%s]\n",
		decision.WinnerLabel, decision.StatisticalConfidence*100, verdict)

	table := tablewriter.NewWriter(c.out)
	table.Header("Var", "CTR", "Conv%", "CPC", "Cost/Conv", "Score")

	for _, label := range sortedPerfLabels(decision.Performance) {
		perf := decision.Performance[label]
		costConv := "-"
		if perf.CostPerConversion != nil {
			costConv = fmt.Sprintf("$%.2f", *perf.CostPerConversion)
		}
		table.Append(
			label,
			fmt.Sprintf("%.2f%%", perf.CTR),
			fmt.Sprintf("%.2f%%", perf.ConversionRate),
			fmt.Sprintf("$%.2f", perf.CPC),
			costConv,
			fmt.Sprintf("%.1f", perf.CompositeScore),
		)
	}
	table.Render()

	for _, d := range decision.InsufficientData {
		fmt.Fprintf(c.out, "  (sin datos) %s: %d clics de %d requeridos\n",
			d.Label, d.ObservedCount, d.RequiredCount)
	}

	c.printSteps(decision.NextSteps)
	return nil
}

// printCompact imprime lo esencial en una línea por variación.
func (c *Console) printCompact(test *domain.ABTest) {
	now := time.Now().Format("15:04:05")

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] test %s — %d variaciones, mejor: %s (%s)",
		now, shortID(test.ID), len(test.Results), test.BestPredicted, test.ConfidenceLevel)

	for _, r := range test.Results {
		fmt.Fprintf(&sb, " | %s %s score:%.1f ctr:%.2f%%",
			r.Variation.Label, r.Variation.Tone,
			r.Report.OverallScore, r.Prediction.PredictedCTR)
	}

	fmt.Fprintln(c.out, sb.String())
}

// printFull imprime la tabla completa del test.
func (c *Console) printFull(test *domain.ABTest) {
	fmt.Fprintf(c.out, "\nTest %s — %s — keywords: %s\n",
		shortID(test.ID), test.BusinessType, strings.Join(test.Keywords, ", "))

	table := tablewriter.NewWriter(c.out)
	table.Header("Var", "Tono", "Score", "Grade", "CTR pred", "Quality", "CPC est", "Issues")

	for _, r := range test.Results {
		label := r.Variation.Label
		if label == test.BestPredicted {
			label += " *"
		}
		table.Append(
			label,
			r.Variation.Tone,
			fmt.Sprintf("%.1f", r.Report.OverallScore),
			string(r.Report.OverallGrade),
			fmt.Sprintf("%.2f%%", r.Prediction.PredictedCTR),
			fmt.Sprintf("%.1f", r.Prediction.QualityScore),
			fmt.Sprintf("$%.2f", r.Prediction.EstimatedCPC),
			fmt.Sprintf("%d", r.Report.TotalIssues),
		)
	}
	table.Render()

	fmt.Fprintf(c.out, "  * mejor predicha — %s (confianza: %s)\n",
		test.BestReason, test.ConfidenceLevel)

	if len(test.Recommendations) > 0 {
		fmt.Fprintln(c.out, "\n  Recomendaciones:")
		for _, rec := range test.Recommendations {
			fmt.Fprintf(c.out, "    - %s\n", rec)
		}
	}
	fmt.Fprintln(c.out)
}

// printFields imprime el desglose campo a campo de cada variación.
func (c *Console) printFields(test *domain.ABTest) {
	for _, r := range test.Results {
		fmt.Fprintf(c.out, "\n--- Variación %s (%s) ---\n", r.Variation.Label, r.Variation.Tone)

		fmt.Fprintln(c.out, "  Titulares:")
		for _, f := range r.Report.HeadlineScores {
			fmt.Fprintf(c.out, "    [%.1f %s] %s (%d)\n", f.Score, f.Grade, f.Text, f.Length)
			for _, issue := range f.Issues {
				fmt.Fprintf(c.out, "        issue: %s\n", issue)
			}
		}

		fmt.Fprintln(c.out, "  Descripciones:")
		for _, f := range r.Report.DescriptionScores {
			fmt.Fprintf(c.out, "    [%.1f %s] %s (%d)\n", f.Score, f.Grade, f.Text, f.Length)
			for _, issue := range f.Issues {
				fmt.Fprintf(c.out, "        issue: %s\n", issue)
			}
		}

		if ka := r.Report.KeywordAnalysis; ka != nil {
			fmt.Fprintf(c.out, "  Keywords: %d/%d usadas (%.0f%%)\n",
				ka.Used, ka.Total, ka.UsageRatePercent)
			if len(ka.Unused) > 0 {
				fmt.Fprintf(c.out, "    sin usar: %s\n", strings.Join(ka.Unused, ", "))
			}
		}
		fmt.Fprintf(c.out, "  Diversidad: %.1f/10\n", r.Report.DiversityScore)
	}
	fmt.Fprintln(c.out)
}

// --- helpers ---

func (c *Console) printSteps(steps []string) {
	if len(steps) == 0 {
		return
	}
	fmt.Fprintln(c.out, "\n  Próximos pasos:")
	for _, step := range steps {
		fmt.Fprintf(c.out, "    - %s\n", step)
	}
	fmt.Fprintln(c.out)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func sortedPerfLabels(perf map[string]domain.VariationPerformance) []string {
	labels := make([]string, 0, len(perf))
	for label := range perf {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
