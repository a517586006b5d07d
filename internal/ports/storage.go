package ports

import (
	"context"

	"github.com/saltbalente/adlab/internal/domain"
)

// Storage persiste las sesiones de test A/B para consulta histórica.
type Storage interface {
	// SaveTest guarda (o reemplaza) un test completo con sus variaciones.
	SaveTest(ctx context.Context, test *domain.ABTest) error

	// GetTest devuelve el test con ese id, o nil si no existe.
	GetTest(ctx context.Context, id string) (*domain.ABTest, error)

	// ListTests devuelve los tests más recientes primero, hasta limit.
	ListTests(ctx context.Context, limit int) ([]*domain.ABTest, error)

	// Close cierra la conexión limpiamente.
	Close() error
}
