package abtest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltbalente/adlab/internal/domain"
	"github.com/saltbalente/adlab/internal/ports"
)

// stubGenerator registra la última petición y devuelve un anuncio fijo.
type stubGenerator struct {
	lastReq ports.GenerateRequest
	ad      ports.GeneratedAd
	err     error
}

func (s *stubGenerator) Generate(_ context.Context, req ports.GenerateRequest) (ports.GeneratedAd, error) {
	s.lastReq = req
	return s.ad, s.err
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "A", LabelFor(0))
	assert.Equal(t, "E", LabelFor(4))
	assert.Equal(t, "V6", LabelFor(5))
	assert.Equal(t, "V10", LabelFor(9))
}

func TestCanonicalTone(t *testing.T) {
	assert.Equal(t, "profesional", CanonicalTone("racional"))
	assert.Equal(t, "emocional", CanonicalTone("emocional"))
	// los tonos desconocidos pasan sin cambios
	assert.Equal(t, "místico", CanonicalTone("místico"))
}

func TestBuilder_Build(t *testing.T) {
	gen := &stubGenerator{ad: ports.GeneratedAd{
		Headlines:    []string{"Tarot Profesional Certero"},
		Descriptions: []string{"Consulta de tarot profesional con resultados garantizados."},
	}}
	b := NewBuilder(gen, 5, 2)

	v, err := b.Build(context.Background(), 1, "racional", []string{"tarot"})
	require.NoError(t, err)

	assert.Equal(t, "B", v.Label)
	assert.Equal(t, "profesional", v.Tone) // alias normalizado antes de generar
	assert.Equal(t, "profesional", gen.lastReq.Tone)
	assert.Equal(t, 5, gen.lastReq.NumHeadlines)
	assert.Equal(t, 2, gen.lastReq.NumDescriptions)
	assert.False(t, v.GeneratedAt.IsZero())
}

func TestBuilder_BuildGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("api caída")}
	b := NewBuilder(gen, 0, 0)

	_, err := b.Build(context.Background(), 0, "emocional", nil)
	assert.ErrorContains(t, err, "variación A")
}

func TestBuilder_DefaultCounts(t *testing.T) {
	gen := &stubGenerator{}
	b := NewBuilder(gen, 0, -1)

	_, err := b.Build(context.Background(), 0, "emocional", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultHeadlinesPerVariation, gen.lastReq.NumHeadlines)
	assert.Equal(t, DefaultDescriptionsPerVariation, gen.lastReq.NumDescriptions)
}

func TestBuilder_RegenerateKeepsIdentity(t *testing.T) {
	gen := &stubGenerator{ad: ports.GeneratedAd{Headlines: []string{"Nuevo Titular Efectivo"}}}
	b := NewBuilder(gen, 3, 1)

	original := domain.Variation{
		Label:     "C",
		Tone:      "urgente",
		Headlines: []string{"Titular Viejo"},
	}
	regenerated, err := b.Regenerate(context.Background(), original, []string{"amarres"})
	require.NoError(t, err)

	assert.Equal(t, "C", regenerated.Label)
	assert.Equal(t, "urgente", regenerated.Tone)
	assert.Equal(t, []string{"Nuevo Titular Efectivo"}, regenerated.Headlines)
	// la original no se toca
	assert.Equal(t, []string{"Titular Viejo"}, original.Headlines)
}
