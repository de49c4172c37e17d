// Package store provides a SQLite-backed evaluation history log.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/girlmathhq/girlmath/internal/engine"
)

// Store provides SQLite-backed evaluation history.
type Store struct {
	db *sql.DB
}

// Entry is one logged evaluation.
type Entry struct {
	ID              int64
	EvaluatedAt     time.Time
	Item            string
	Price           float64
	Category        engine.Category
	Mode            engine.Mode
	Uses            int
	UsesEstimated   bool
	OriginalPrice   *float64
	DiscountPercent *float64
	Income          engine.Income
	BudgetPercent   *int
	BaseScore       int
	CategoryBonus   int
	Score           int
	Verdict         engine.Verdict
	Stamp           string
	Justification   string
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the history database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveEvaluation logs one scored purchase. The item label may be empty.
func (s *Store) SaveEvaluation(item string, m engine.Metrics) error {
	usesEstimated := 0
	if m.UsesEstimated {
		usesEstimated = 1
	}

	var origPrice, discount sql.NullFloat64
	if m.Savings > 0 {
		origPrice = sql.NullFloat64{Float64: m.OriginalPrice, Valid: true}
		discount = sql.NullFloat64{Float64: m.DiscountPercent, Valid: true}
	}
	var budgetPct sql.NullInt64
	if m.BudgetPercent != nil {
		budgetPct = sql.NullInt64{Int64: int64(*m.BudgetPercent), Valid: true}
	}

	_, err := s.db.Exec(`INSERT INTO evaluations
		(evaluated_at, item, price, category, mode, uses, uses_estimated,
		 original_price, discount_percent, income, budget_percent,
		 base_score, category_bonus, score, verdict, stamp, justification)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), item, m.Price, string(m.Category), string(m.Mode),
		m.Uses, usesEstimated, origPrice, discount, string(m.Income), budgetPct,
		m.BaseScore, m.CategoryBonus, m.Score, string(m.Verdict), m.Stamp, m.Justification,
	)
	if err != nil {
		return fmt.Errorf("saving evaluation: %w", err)
	}
	return nil
}

// RecentEvaluations returns the most recent entries, newest first.
// A limit of 0 or less returns everything.
func (s *Store) RecentEvaluations(limit int) ([]Entry, error) {
	query := `SELECT
		id, evaluated_at, item, price, category, mode, uses, uses_estimated,
		original_price, discount_percent, income, budget_percent,
		base_score, category_bonus, score, verdict, stamp, justification
		FROM evaluations ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at, category, mode, income string
		var item sql.NullString
		var budgetPct sql.NullInt64
		var origPrice, discount sql.NullFloat64
		var usesEstimated int
		var verdict string

		err := rows.Scan(
			&e.ID, &at, &item, &e.Price, &category, &mode, &e.Uses, &usesEstimated,
			&origPrice, &discount, &income, &budgetPct,
			&e.BaseScore, &e.CategoryBonus, &e.Score, &verdict, &e.Stamp, &e.Justification,
		)
		if err != nil {
			return nil, err
		}

		e.EvaluatedAt, _ = time.Parse(time.RFC3339, at)
		if item.Valid {
			e.Item = item.String
		}
		e.Category = engine.Category(category)
		e.Mode = engine.Mode(mode)
		e.Income = engine.Income(income)
		e.Verdict = engine.Verdict(verdict)
		e.UsesEstimated = usesEstimated != 0
		if origPrice.Valid {
			v := origPrice.Float64
			e.OriginalPrice = &v
		}
		if discount.Valid {
			v := discount.Float64
			e.DiscountPercent = &v
		}
		if budgetPct.Valid {
			v := int(budgetPct.Int64)
			e.BudgetPercent = &v
		}

		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of logged evaluations.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM evaluations").Scan(&count)
	return count, err
}

// Clear deletes all logged evaluations.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM evaluations")
	return err
}
