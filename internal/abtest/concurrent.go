package abtest

import (
	"context"
	"log/slog"
	"sync"

	"github.com/saltbalente/adlab/internal/domain"
)

// buildConcurrently genera una variación por tono usando un pool de workers
// y devuelve las variaciones en el orden de entrada. Una variación que falla
// se omite con un log; las demás siguen adelante.
func buildConcurrently(ctx context.Context, builder *Builder, tones, keywords []string, workers int) []domain.Variation {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(tones) {
		workers = len(tones)
	}

	type work struct {
		idx  int
		tone string
	}
	type result struct {
		idx       int
		variation domain.Variation
	}

	workCh := make(chan work, len(tones))
	resultCh := make(chan result, len(tones))

	// Worker pool: cada worker toma tonos de workCh y envía variaciones a resultCh.
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for w := range workCh {
				v, err := builder.Build(ctx, w.idx, w.tone, keywords)
				if err != nil {
					slog.Warn("variation build failed",
						"label", LabelFor(w.idx),
						"tone", w.tone,
						"err", err,
					)
					continue
				}
				resultCh <- result{idx: w.idx, variation: v}
			}
		}()
	}

	for i, tone := range tones {
		workCh <- work{idx: i, tone: tone}
	}
	close(workCh)

	// Cerrar resultCh cuando todos los workers terminen.
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Recoger por índice para que el orden de salida no dependa del scheduling.
	byIndex := make(map[int]domain.Variation, len(tones))
	for r := range resultCh {
		byIndex[r.idx] = r.variation
	}

	variations := make([]domain.Variation, 0, len(byIndex))
	for i := range tones {
		if v, ok := byIndex[i]; ok {
			variations = append(variations, v)
		}
	}
	return variations
}
