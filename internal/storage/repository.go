package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository persists transactions and categories in a local SQLite
// file. It is the only component that writes; the report layer consumes its
// read methods through the report.Store interface.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// InsertTransaction validates and records a transaction, returning the
// store-assigned id. Recorded transactions are never updated or deleted;
// corrections are appended as new entries so the full history survives.
func (r *SQLiteRepository) InsertTransaction(ctx context.Context, t core.Transaction) (int64, error) {
	if err := t.Validate(); err != nil {
		return 0, fmt.Errorf("validate transaction: %w", err)
	}

	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM categories WHERE name = ?`, t.Category).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("look up category: %w", err)
	}
	if exists == 0 {
		return 0, &core.UnknownCategoryError{Category: t.Category}
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (date, amount_cents, category, kind, description)
		VALUES (?, ?, ?, ?, ?)`,
		t.Date.String(), t.Amount.Cents, t.Category, string(t.Kind), t.Description)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction recorded",
		"id", id,
		"kind", string(t.Kind),
		"category", t.Category,
		"amount_cents", t.Amount.Cents,
		"date", t.Date.String())

	return id, nil
}

// FetchTransactions returns the transactions falling within the period,
// ordered by date then id.
func (r *SQLiteRepository) FetchTransactions(ctx context.Context, period core.Period) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, amount_cents, category, kind, description
		FROM transactions
		WHERE date >= ? AND date < ?
		ORDER BY date, id`,
		period.Start.Format(core.DateLayout), period.End.Format(core.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			t    core.Transaction
			date string
			kind string
		)
		if err := rows.Scan(&t.ID, &date, &t.Amount.Cents, &t.Category, &kind, &t.Description); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		d, err := core.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", t.ID, err)
		}
		t.Date = d
		t.Kind = core.Kind(kind)
		out = append(out, t)
	}
	return out, rows.Err()
}

// FetchCategories returns all categories ordered by name.
func (r *SQLiteRepository) FetchCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, kind, budget_limit_cents
		FROM categories
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		var (
			c    core.Category
			kind string
		)
		if err := rows.Scan(&c.Name, &kind, &c.Limit.Cents); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Kind = core.Kind(kind)
		out = append(out, c)
	}
	return out, rows.Err()
}

// SetBudgetLimit updates a category's budget limit. A zero limit stops budget
// tracking for the category. This is the only category mutation; categories
// themselves are managed by migrations.
func (r *SQLiteRepository) SetBudgetLimit(ctx context.Context, name string, limit core.Money) error {
	if limit.Cents < 0 {
		return core.ErrNegativeLimit
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET budget_limit_cents = ? WHERE name = ?`,
		limit.Cents, name)
	if err != nil {
		return fmt.Errorf("update budget limit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check affected rows: %w", err)
	}
	if n == 0 {
		return &core.UnknownCategoryError{Category: name}
	}

	slog.InfoContext(ctx, "Budget limit updated",
		"category", name,
		"limit_cents", limit.Cents)

	return nil
}

// sampleEntry is one row of the demo dataset. Day offsets are fixed so
// repeated seeding of the same month produces the same dates.
type sampleEntry struct {
	day         int
	cents       int64
	category    string
	kind        core.Kind
	description string
}

var sampleEntries = []sampleEntry{
	{1, 300000, "Salary", core.Income, "Monthly salary"},
	{12, 50000, "Freelance", core.Income, "Web project"},
	{1, 120000, "Rent", core.Expense, "Monthly rent"},
	{5, 15000, "Utilities", core.Expense, "Electric bill"},
	{3, 8000, "Food", core.Expense, "Groceries"},
	{17, 4500, "Food", core.Expense, "Restaurant"},
	{8, 6000, "Transport", core.Expense, "Gas"},
	{2, 3500, "Transport", core.Expense, "Bus pass"},
	{14, 12000, "Shopping", core.Expense, "Clothes"},
	{20, 7500, "Entertainment", core.Expense, "Movies"},
	{9, 9000, "Healthcare", core.Expense, "Doctor visit"},
}

// SeedSampleData inserts the demo dataset into the given month and returns
// how many transactions were added.
func (r *SQLiteRepository) SeedSampleData(ctx context.Context, year int, month time.Month) (int, error) {
	for _, e := range sampleEntries {
		t := core.Transaction{
			Date:        core.NewDate(year, int(month), e.day),
			Amount:      core.Money{Cents: e.cents},
			Category:    e.category,
			Kind:        e.kind,
			Description: e.description,
		}
		if _, err := r.InsertTransaction(ctx, t); err != nil {
			return 0, fmt.Errorf("seed %q: %w", e.description, err)
		}
	}

	slog.InfoContext(ctx, "Sample data seeded",
		"count", len(sampleEntries),
		"year", year,
		"month", int(month))

	return len(sampleEntries), nil
}

// ErrNotFound is kept distinct from driver errors so callers can branch on a
// missing row without importing database/sql.
var ErrNotFound = errors.New("not found")

// GetTransaction retrieves a single transaction by id.
func (r *SQLiteRepository) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	var (
		t    core.Transaction
		date string
		kind string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, date, amount_cents, category, kind, description
		FROM transactions
		WHERE id = ?`, id).
		Scan(&t.ID, &date, &t.Amount.Cents, &t.Category, &kind, &t.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	d, err := core.ParseDate(date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("transaction %d: %w", id, err)
	}
	t.Date = d
	t.Kind = core.Kind(kind)
	return t, nil
}
