package ports

import (
	"context"

	"github.com/saltbalente/adlab/internal/domain"
)

// Notifier presenta los resultados al usuario.
type Notifier interface {
	// Notify muestra un test A/B con sus scores y predicciones.
	// En la implementación de consola, imprime una tabla formateada.
	Notify(ctx context.Context, test *domain.ABTest) error

	// NotifyWinner muestra la decisión de ganador sobre métricas reales.
	NotifyWinner(ctx context.Context, decision domain.WinnerDecision) error
}
