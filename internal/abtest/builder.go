package abtest

import (
	"context"
	"fmt"
	"time"

	"github.com/saltbalente/adlab/internal/domain"
	"github.com/saltbalente/adlab/internal/ports"
)

// Cantidad de texto que se pide por variación si la config no dice otra cosa.
const (
	DefaultHeadlinesPerVariation    = 15
	DefaultDescriptionsPerVariation = 4
)

// toneAliases normaliza los tonos que acepta la entrada del usuario a los
// tonos canónicos de la tabla de benchmarks.
var toneAliases = map[string]string{
	"emocional": "emocional",
	"racional":  "profesional",
	"urgente":   "urgente",
}

// CanonicalTone traduce un alias de tono a su forma canónica. Los tonos
// desconocidos pasan sin cambios y caerán al benchmark por defecto.
func CanonicalTone(tone string) string {
	if canonical, ok := toneAliases[tone]; ok {
		return canonical
	}
	return tone
}

// LabelFor devuelve la etiqueta de la variación en la posición idx:
// A..E para las cinco primeras, V6, V7, ... a partir de ahí.
func LabelFor(idx int) string {
	if idx < 5 {
		return string(rune('A' + idx))
	}
	return fmt.Sprintf("V%d", idx+1)
}

// Builder construye variaciones pidiendo el texto al generador inyectado.
type Builder struct {
	generator       ports.Generator
	numHeadlines    int
	numDescriptions int
}

// NewBuilder crea un Builder. Cantidades <= 0 usan los defaults (15
// titulares, 4 descripciones).
func NewBuilder(generator ports.Generator, numHeadlines, numDescriptions int) *Builder {
	if numHeadlines <= 0 {
		numHeadlines = DefaultHeadlinesPerVariation
	}
	if numDescriptions <= 0 {
		numDescriptions = DefaultDescriptionsPerVariation
	}
	return &Builder{
		generator:       generator,
		numHeadlines:    numHeadlines,
		numDescriptions: numDescriptions,
	}
}

// Build genera la variación en la posición idx con el tono dado.
func (b *Builder) Build(ctx context.Context, idx int, tone string, keywords []string) (domain.Variation, error) {
	canonical := CanonicalTone(tone)

	ad, err := b.generator.Generate(ctx, ports.GenerateRequest{
		Keywords:        keywords,
		Tone:            canonical,
		NumHeadlines:    b.numHeadlines,
		NumDescriptions: b.numDescriptions,
	})
	if err != nil {
		return domain.Variation{}, fmt.Errorf("abtest.Build: variación %s: %w", LabelFor(idx), err)
	}

	return domain.Variation{
		Label:        LabelFor(idx),
		Tone:         canonical,
		Headlines:    ad.Headlines,
		Descriptions: ad.Descriptions,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

// Regenerate produce una variación nueva con el mismo label y tono que la
// original. La original no se toca; el contador de versiones, si lo hay, lo
// lleva el caller.
func (b *Builder) Regenerate(ctx context.Context, original domain.Variation, keywords []string) (domain.Variation, error) {
	ad, err := b.generator.Generate(ctx, ports.GenerateRequest{
		Keywords:        keywords,
		Tone:            original.Tone,
		NumHeadlines:    b.numHeadlines,
		NumDescriptions: b.numDescriptions,
	})
	if err != nil {
		return domain.Variation{}, fmt.Errorf("abtest.Regenerate: variación %s: %w", original.Label, err)
	}

	return domain.Variation{
		Label:        original.Label,
		Tone:         original.Tone,
		Headlines:    ad.Headlines,
		Descriptions: ad.Descriptions,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}
