package ports

import "context"

// GenerateRequest describe el anuncio que se pide al generador externo.
type GenerateRequest struct {
	Keywords        []string
	Tone            string
	NumHeadlines    int
	NumDescriptions int
}

// GeneratedAd es el texto candidato producido por el generador. El core lo
// puntúa y optimiza pero nunca inventa texto nuevo más allá de su
// vocabulario fijo.
type GeneratedAd struct {
	Headlines    []string
	Descriptions []string
}

// Generator es el colaborador de generación de texto (proveedor de IA o
// plantillas locales).
type Generator interface {
	// Generate produce titulares y descripciones candidatos para las
	// keywords y el tono dados.
	Generate(ctx context.Context, req GenerateRequest) (GeneratedAd, error)
}
