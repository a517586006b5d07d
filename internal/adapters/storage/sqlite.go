package storage

// sqlite.go — persistencia de tests A/B.
//
// Estrategia:
//   - `tests`: una fila por test con su resumen (mejor variación, confianza).
//   - `variations`: una fila por variación, con el texto serializado en JSON.
//     Los reports y predicciones no se persisten: se recalculan al leer,
//     son deterministas sobre el mismo texto.
//   - Cache en memoria de ids guardados: evita reescribir un test idéntico
//     cuando el engine sirve la misma entrada desde su cache de generación.
//   - Prune automático al arrancar: tests > 90 días.

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/saltbalente/adlab/internal/abtest"
	"github.com/saltbalente/adlab/internal/domain"
	"github.com/saltbalente/adlab/internal/scoring"
)

const schema = `
CREATE TABLE IF NOT EXISTS tests (
    id               TEXT PRIMARY KEY,
    status           TEXT     NOT NULL,
    created_at       DATETIME NOT NULL,
    business_type    TEXT     NOT NULL,
    keywords         TEXT     NOT NULL,
    best_predicted   TEXT     NOT NULL DEFAULT '',
    best_reason      TEXT     NOT NULL DEFAULT '',
    confidence_level TEXT     NOT NULL DEFAULT 'low',
    recommendations  TEXT     NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS variations (
    test_id      TEXT     NOT NULL REFERENCES tests(id) ON DELETE CASCADE,
    position     INTEGER  NOT NULL,
    label        TEXT     NOT NULL,
    tone         TEXT     NOT NULL,
    headlines    TEXT     NOT NULL,
    descriptions TEXT     NOT NULL,
    generated_at DATETIME NOT NULL,
    PRIMARY KEY (test_id, position)
);

CREATE INDEX IF NOT EXISTS idx_tests_created ON tests(created_at DESC);
`

const retentionTests = 90 * 24 * time.Hour

// SQLiteStorage implementa ports.Storage usando SQLite (pure Go, sin CGo).
type SQLiteStorage struct {
	db    *sql.DB
	mu    sync.Mutex
	saved map[string]struct{} // ids ya persistidos en esta sesión
}

// NewSQLiteStorage abre (o crea) la base de datos en la ruta dada.
// Aplica el schema y limpia tests antiguos.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteStorage: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite es single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteStorage: apply schema: %w", err)
	}

	s := &SQLiteStorage{
		db:    db,
		saved: make(map[string]struct{}),
	}
	s.pruneOld(context.Background())
	return s, nil
}

// SaveTest persiste el test y sus variaciones en una transacción. Guardar
// dos veces el mismo id reemplaza el contenido anterior.
func (s *SQLiteStorage) SaveTest(ctx context.Context, test *domain.ABTest) error {
	if test == nil || test.ID == "" {
		return fmt.Errorf("storage.SaveTest: test vacío")
	}

	s.mu.Lock()
	_, alreadySaved := s.saved[test.ID]
	s.mu.Unlock()
	if alreadySaved {
		return nil
	}

	recs, err := json.Marshal(test.Recommendations)
	if err != nil {
		return fmt.Errorf("storage.SaveTest: marshal recommendations: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage.SaveTest: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO tests
			(id, status, created_at, business_type, keywords,
			 best_predicted, best_reason, confidence_level, recommendations)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status           = excluded.status,
			best_predicted   = excluded.best_predicted,
			best_reason      = excluded.best_reason,
			confidence_level = excluded.confidence_level,
			recommendations  = excluded.recommendations
	`,
		test.ID,
		string(test.Status),
		test.CreatedAt.UTC(),
		test.BusinessType,
		strings.Join(test.Keywords, ","),
		test.BestPredicted,
		test.BestReason,
		test.ConfidenceLevel,
		string(recs),
	); err != nil {
		return fmt.Errorf("storage.SaveTest: upsert test %s: %w", test.ID, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM variations WHERE test_id = ?`, test.ID,
	); err != nil {
		return fmt.Errorf("storage.SaveTest: clear variations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO variations
			(test_id, position, label, tone, headlines, descriptions, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("storage.SaveTest: prepare: %w", err)
	}
	defer stmt.Close()

	for i, r := range test.Results {
		headlines, err := json.Marshal(r.Variation.Headlines)
		if err != nil {
			return fmt.Errorf("storage.SaveTest: marshal headlines: %w", err)
		}
		descriptions, err := json.Marshal(r.Variation.Descriptions)
		if err != nil {
			return fmt.Errorf("storage.SaveTest: marshal descriptions: %w", err)
		}

		if _, err := stmt.ExecContext(ctx,
			test.ID,
			i,
			r.Variation.Label,
			r.Variation.Tone,
			string(headlines),
			string(descriptions),
			r.Variation.GeneratedAt.UTC(),
		); err != nil {
			return fmt.Errorf("storage.SaveTest: insert variation %s: %w", r.Variation.Label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage.SaveTest: commit: %w", err)
	}

	s.mu.Lock()
	s.saved[test.ID] = struct{}{}
	s.mu.Unlock()
	return nil
}

// GetTest devuelve el test con ese id, o nil si no existe. Los reports y
// predicciones se recalculan a partir del texto guardado.
func (s *SQLiteStorage) GetTest(ctx context.Context, id string) (*domain.ABTest, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, status, created_at, business_type, keywords,
		       best_predicted, best_reason, confidence_level, recommendations
		FROM tests WHERE id = ?
	`, id)

	test, err := scanTest(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage.GetTest: %w", err)
	}

	if err := s.loadVariations(ctx, test); err != nil {
		return nil, fmt.Errorf("storage.GetTest: %w", err)
	}
	return test, nil
}

// ListTests devuelve los tests más recientes primero, hasta limit.
func (s *SQLiteStorage) ListTests(ctx context.Context, limit int) ([]*domain.ABTest, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, status, created_at, business_type, keywords,
		       best_predicted, best_reason, confidence_level, recommendations
		FROM tests ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage.ListTests: query: %w", err)
	}
	defer rows.Close()

	var tests []*domain.ABTest
	for rows.Next() {
		test, err := scanTest(rows)
		if err != nil {
			return nil, fmt.Errorf("storage.ListTests: %w", err)
		}
		tests = append(tests, test)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage.ListTests: rows: %w", err)
	}

	for _, test := range tests {
		if err := s.loadVariations(ctx, test); err != nil {
			return nil, fmt.Errorf("storage.ListTests: %w", err)
		}
	}
	return tests, nil
}

// Close cierra la conexión a la base de datos.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// --- helpers internos ---

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTest(row rowScanner) (*domain.ABTest, error) {
	var test domain.ABTest
	var status, keywords, recs, createdAt string

	if err := row.Scan(
		&test.ID,
		&status,
		&createdAt,
		&test.BusinessType,
		&keywords,
		&test.BestPredicted,
		&test.BestReason,
		&test.ConfidenceLevel,
		&recs,
	); err != nil {
		return nil, err
	}

	test.Status = domain.TestStatus(status)
	test.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if keywords != "" {
		test.Keywords = strings.Split(keywords, ",")
	}
	if err := json.Unmarshal([]byte(recs), &test.Recommendations); err != nil {
		return nil, fmt.Errorf("unmarshal recommendations: %w", err)
	}
	return &test, nil
}

// loadVariations carga el texto de las variaciones y reconstruye report y
// predicción, que son deterministas sobre el texto.
func (s *SQLiteStorage) loadVariations(ctx context.Context, test *domain.ABTest) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT label, tone, headlines, descriptions, generated_at
		FROM variations WHERE test_id = ? ORDER BY position
	`, test.ID)
	if err != nil {
		return fmt.Errorf("load variations: %w", err)
	}
	defer rows.Close()

	var variations []domain.Variation
	for rows.Next() {
		var v domain.Variation
		var headlines, descriptions, generatedAt string

		if err := rows.Scan(&v.Label, &v.Tone, &headlines, &descriptions, &generatedAt); err != nil {
			return fmt.Errorf("scan variation: %w", err)
		}
		if err := json.Unmarshal([]byte(headlines), &v.Headlines); err != nil {
			return fmt.Errorf("unmarshal headlines: %w", err)
		}
		if err := json.Unmarshal([]byte(descriptions), &v.Descriptions); err != nil {
			return fmt.Errorf("unmarshal descriptions: %w", err)
		}
		v.GeneratedAt, _ = time.Parse(time.RFC3339, generatedAt)
		variations = append(variations, v)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("variation rows: %w", err)
	}

	predictor := abtest.NewPredictor(test.BusinessType)
	test.Results = make([]domain.VariationResult, 0, len(variations))
	for _, v := range variations {
		test.Results = append(test.Results, domain.VariationResult{
			Variation:  v,
			Report:     scoring.ScoreAd(v.Headlines, v.Descriptions, test.Keywords),
			Prediction: predictor.Predict(v),
		})
	}
	return nil
}

// pruneOld elimina tests antiguos para mantener la DB ligera.
func (s *SQLiteStorage) pruneOld(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-retentionTests)
	s.db.ExecContext(ctx, `DELETE FROM variations WHERE test_id IN
		(SELECT id FROM tests WHERE created_at < ?)`, cutoff)
	s.db.ExecContext(ctx, `DELETE FROM tests WHERE created_at < ?`, cutoff)
}
