package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/core"
)

// testRepo opens a repository on a throwaway database with the full schema
// and seeded default categories.
func testRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "fintrack.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestMigrationsSeedDefaultCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fintrack.db")
	repo, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	defer repo.Close()

	cats, err := repo.FetchCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 9)

	byName := make(map[string]core.Category)
	for _, c := range cats {
		byName[c.Name] = c
	}

	assert.Equal(t, core.Income, byName["Salary"].Kind)
	assert.False(t, byName["Salary"].HasBudget())
	assert.Equal(t, core.Expense, byName["Food"].Kind)
	assert.Equal(t, int64(50000), byName["Food"].Limit.Cents)
	assert.Equal(t, int64(120000), byName["Rent"].Limit.Cents)

	// Reopening the same file must not duplicate the seed.
	repo2, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	defer repo2.Close()
	cats2, err := repo2.FetchCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats2, 9)
}

func TestInsertAndFetchTransaction(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	id, err := repo.InsertTransaction(ctx, core.Transaction{
		Date:        core.NewDate(2026, 8, 15),
		Amount:      core.Money{Cents: 4550},
		Category:    "Food",
		Kind:        core.Expense,
		Description: "groceries",
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := repo.GetTransaction(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "2026-08-15", got.Date.String())
	assert.Equal(t, int64(4550), got.Amount.Cents)
	assert.Equal(t, "Food", got.Category)
	assert.Equal(t, core.Expense, got.Kind)
	assert.Equal(t, "groceries", got.Description)
}

func TestInsertTransactionRejectsUnknownCategory(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.InsertTransaction(context.Background(), core.Transaction{
		Date:     core.NewDate(2026, 8, 15),
		Amount:   core.Money{Cents: 100},
		Category: "Ghost",
		Kind:     core.Expense,
	})

	var ucErr *core.UnknownCategoryError
	require.ErrorAs(t, err, &ucErr)
	assert.Equal(t, "Ghost", ucErr.Category)
}

func TestInsertTransactionRejectsNonPositiveAmount(t *testing.T) {
	repo := testRepo(t)

	for _, cents := range []int64{0, -100} {
		_, err := repo.InsertTransaction(context.Background(), core.Transaction{
			Date:     core.NewDate(2026, 8, 15),
			Amount:   core.Money{Cents: cents},
			Category: "Food",
			Kind:     core.Expense,
		})
		require.ErrorIs(t, err, core.ErrInvalidAmount, "amount %d", cents)
	}
}

func TestFetchTransactionsPeriodBoundaries(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	days := []core.Date{
		core.NewDate(2026, 7, 31), // before
		core.NewDate(2026, 8, 1),  // first day, included
		core.NewDate(2026, 8, 31), // last day, included
		core.NewDate(2026, 9, 1),  // next month, excluded
	}
	for _, d := range days {
		_, err := repo.InsertTransaction(ctx, core.Transaction{
			Date:     d,
			Amount:   core.Money{Cents: 1000},
			Category: "Food",
			Kind:     core.Expense,
		})
		require.NoError(t, err)
	}

	txs, err := repo.FetchTransactions(ctx, core.MonthOf(2026, time.August))
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "2026-08-01", txs[0].Date.String())
	assert.Equal(t, "2026-08-31", txs[1].Date.String())
}

func TestSetBudgetLimit(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetBudgetLimit(ctx, "Food", core.Money{Cents: 45000}))

	cats, err := repo.FetchCategories(ctx)
	require.NoError(t, err)
	for _, c := range cats {
		if c.Name == "Food" {
			assert.Equal(t, int64(45000), c.Limit.Cents)
		}
	}

	// Zero clears budget tracking.
	require.NoError(t, repo.SetBudgetLimit(ctx, "Food", core.Money{}))

	var ucErr *core.UnknownCategoryError
	err = repo.SetBudgetLimit(ctx, "Ghost", core.Money{Cents: 100})
	require.ErrorAs(t, err, &ucErr)

	err = repo.SetBudgetLimit(ctx, "Food", core.Money{Cents: -1})
	require.ErrorIs(t, err, core.ErrNegativeLimit)
}

func TestSeedSampleData(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	n, err := repo.SeedSampleData(ctx, 2026, time.August)
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	txs, err := repo.FetchTransactions(ctx, core.MonthOf(2026, time.August))
	require.NoError(t, err)
	require.Len(t, txs, 11)

	var income, expense int64
	for _, tx := range txs {
		switch tx.Kind {
		case core.Income:
			income += tx.Amount.Cents
		case core.Expense:
			expense += tx.Amount.Cents
		}
	}
	assert.Equal(t, int64(350000), income)
	assert.Equal(t, int64(185500), expense)
}

func TestGetTransactionNotFound(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.GetTransaction(context.Background(), 999)
	require.ErrorIs(t, err, ErrNotFound)
}
