package report

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/core"
)

// Store is the read side of the transaction store the report layer consumes.
type Store interface {
	FetchTransactions(ctx context.Context, period core.Period) ([]core.Transaction, error)
	FetchCategories(ctx context.Context) ([]core.Category, error)
}

// Service generates reports from a Store.
type Service struct {
	store    Store
	currency string
}

func NewService(store Store, currency string) *Service {
	return &Service{store: store, currency: currency}
}

// GenerateReport builds the full textual report for the period. Aggregation
// errors fail the whole report; a partial report would be misleading.
func (s *Service) GenerateReport(ctx context.Context, period core.Period) (string, error) {
	cats, err := s.store.FetchCategories(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch categories: %w", err)
	}
	txs, err := s.store.FetchTransactions(ctx, period)
	if err != nil {
		return "", fmt.Errorf("fetch transactions: %w", err)
	}

	summary, err := Summarize(txs, cats, period)
	if err != nil {
		return "", fmt.Errorf("summarize %s: %w", period.Label(), err)
	}
	actual, err := SpendByCategory(txs, cats, period)
	if err != nil {
		return "", fmt.Errorf("spend by category: %w", err)
	}
	breakdown, err := CategoryTotals(txs, cats, period)
	if err != nil {
		return "", fmt.Errorf("category totals: %w", err)
	}
	statuses := Evaluate(actual, cats)

	slog.DebugContext(ctx, "Report generated",
		"period", period.Label(),
		"transactions", len(txs),
		"categories", len(cats))

	return Render(summary, statuses, breakdown, s.currency), nil
}
