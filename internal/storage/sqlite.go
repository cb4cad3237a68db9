// internal/storage/sqlite.go
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"mcp-ayur-diet/internal/models"
)

var ErrNotFound = errors.New("not found")

const DefaultLimit = 50

type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	storage := &SQLiteStorage{db: db}
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS patients (
        id TEXT PRIMARY KEY,
        doctor_id TEXT NOT NULL,
        name TEXT NOT NULL,
        prakriti TEXT NOT NULL,
        data TEXT NOT NULL,
        created_at TEXT NOT NULL,
        updated_at TEXT NOT NULL
    );

    CREATE TABLE IF NOT EXISTS assessments (
        id TEXT PRIMARY KEY,
        patient_id TEXT NOT NULL,
        dominant TEXT NOT NULL,
        data TEXT NOT NULL,
        created_at TEXT NOT NULL
    );

    CREATE TABLE IF NOT EXISTS symptom_entries (
        id TEXT PRIMARY KEY,
        patient_id TEXT NOT NULL,
        date TEXT NOT NULL,
        data TEXT NOT NULL
    );

    CREATE TABLE IF NOT EXISTS recipes (
        id TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        data TEXT NOT NULL,
        created_at TEXT NOT NULL
    );

    CREATE TABLE IF NOT EXISTS diet_charts (
        id TEXT PRIMARY KEY,
        patient_id TEXT NOT NULL,
        source TEXT NOT NULL,
        data TEXT NOT NULL,
        created_at TEXT NOT NULL
    );

    CREATE INDEX IF NOT EXISTS idx_assessments_patient ON assessments(patient_id, created_at);
    CREATE INDEX IF NOT EXISTS idx_symptom_entries_patient ON symptom_entries(patient_id, date);
    CREATE INDEX IF NOT EXISTS idx_diet_charts_patient ON diet_charts(patient_id, created_at);
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// SavePatient inserts or replaces a patient.
func (s *SQLiteStorage) SavePatient(ctx context.Context, p *models.Patient) error {
	return savePatient(ctx, s.db, p)
}

func savePatient(ctx context.Context, db execer, p *models.Patient) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode patient: %w", err)
	}

	query := `
        INSERT INTO patients (id, doctor_id, name, prakriti, data, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            doctor_id = excluded.doctor_id,
            name = excluded.name,
            prakriti = excluded.prakriti,
            data = excluded.data,
            updated_at = excluded.updated_at
    `
	_, err = db.ExecContext(ctx, query,
		p.ID, p.DoctorID, p.Name, string(p.Prakriti), string(data),
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to save patient: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM patients WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("patient %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query patient: %w", err)
	}

	p := &models.Patient{}
	if err := json.Unmarshal([]byte(data), p); err != nil {
		return nil, fmt.Errorf("failed to decode patient %s: %w", id, err)
	}
	return p, nil
}

// ListPatients returns patients for a doctor, or all patients when doctorID is
// empty, newest first.
func (s *SQLiteStorage) ListPatients(ctx context.Context, doctorID string, limit int) ([]*models.Patient, error) {
	query := `SELECT data FROM patients WHERE 1=1`
	args := []interface{}{}
	if doctorID != "" {
		query += " AND doctor_id = ?"
		args = append(args, doctorID)
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limitOrDefault(limit))

	return queryJSON[models.Patient](ctx, s.db, "patients", query, args...)
}

// SaveAssessment stores an assessment and the patient it updated in one
// transaction. p may be nil.
func (s *SQLiteStorage) SaveAssessment(ctx context.Context, a *models.Assessment, p *models.Patient) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to encode assessment: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
        INSERT INTO assessments (id, patient_id, dominant, data, created_at)
        VALUES (?, ?, ?, ?, ?)
    `
	_, err = tx.ExecContext(ctx, query,
		a.ID, a.PatientID, string(a.Result.Dominant), string(data), formatTime(a.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert assessment: %w", err)
	}

	if p != nil {
		if err := savePatient(ctx, tx, p); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStorage) ListAssessments(ctx context.Context, patientID string, limit int) ([]*models.Assessment, error) {
	query := `
        SELECT data FROM assessments
        WHERE patient_id = ?
        ORDER BY created_at DESC LIMIT ?
    `
	return queryJSON[models.Assessment](ctx, s.db, "assessments", query, patientID, limitOrDefault(limit))
}

func (s *SQLiteStorage) SaveSymptomEntry(ctx context.Context, e *models.SymptomEntry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode symptom entry: %w", err)
	}

	query := `
        INSERT INTO symptom_entries (id, patient_id, date, data)
        VALUES (?, ?, ?, ?)
    `
	if _, err := s.db.ExecContext(ctx, query, e.ID, e.PatientID, formatTime(e.Date), string(data)); err != nil {
		return fmt.Errorf("failed to insert symptom entry: %w", err)
	}
	return nil
}

// ListSymptomEntries returns a patient's entries newest first.
func (s *SQLiteStorage) ListSymptomEntries(ctx context.Context, patientID string, limit int) ([]*models.SymptomEntry, error) {
	query := `
        SELECT data FROM symptom_entries
        WHERE patient_id = ?
        ORDER BY date DESC LIMIT ?
    `
	return queryJSON[models.SymptomEntry](ctx, s.db, "symptom entries", query, patientID, limitOrDefault(limit))
}

func (s *SQLiteStorage) SaveRecipe(ctx context.Context, r *models.Recipe) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode recipe: %w", err)
	}

	query := `
        INSERT INTO recipes (id, name, data, created_at)
        VALUES (?, ?, ?, ?)
    `
	if _, err := s.db.ExecContext(ctx, query, r.ID, r.Name, string(data), formatTime(r.CreatedAt)); err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) ListRecipes(ctx context.Context, limit int) ([]*models.Recipe, error) {
	query := `SELECT data FROM recipes ORDER BY created_at DESC LIMIT ?`
	return queryJSON[models.Recipe](ctx, s.db, "recipes", query, limitOrDefault(limit))
}

func (s *SQLiteStorage) SaveDietChart(ctx context.Context, c *models.DietChart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode diet chart: %w", err)
	}

	query := `
        INSERT INTO diet_charts (id, patient_id, source, data, created_at)
        VALUES (?, ?, ?, ?, ?)
    `
	_, err = s.db.ExecContext(ctx, query,
		c.ID, c.PatientID, string(c.Source), string(data), formatTime(c.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert diet chart: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) ListDietCharts(ctx context.Context, patientID string, limit int) ([]*models.DietChart, error) {
	query := `
        SELECT data FROM diet_charts
        WHERE patient_id = ?
        ORDER BY created_at DESC LIMIT ?
    `
	return queryJSON[models.DietChart](ctx, s.db, "diet charts", query, patientID, limitOrDefault(limit))
}

func queryJSON[T any](ctx context.Context, db *sql.DB, what, query string, args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	defer rows.Close()

	out := []*T{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", what, err)
		}
		v := new(T)
		if err := json.Unmarshal([]byte(data), v); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", what, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", what, err)
	}
	return out, nil
}

// formatTime stores UTC with fixed-width nanoseconds so text ordering matches
// time ordering.
func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000000Z07:00")
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
