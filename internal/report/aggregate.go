// Package report turns raw transactions into the monthly financial report:
// income/expense summary, budget-vs-actual evaluation and the rendered text.
// Every report is recomputed from the raw rows on each request; nothing is
// cached between calls.
package report

import (
	"sort"

	"fintrack/internal/core"
)

// Summary is the aggregate view of a single period.
type Summary struct {
	Period       core.Period
	TotalIncome  core.Money
	TotalExpense core.Money
	Balance      core.Money
	SavingsRate  Percent // undefined when the period had no income
}

// CategorySpend is one row of the per-category spending breakdown.
type CategorySpend struct {
	Name  string
	Total core.Money
	Count int
}

// Summarize computes income and expense totals for the transactions falling
// within the period. A transaction referencing a category missing from cats,
// or carrying a non-positive amount, aborts the aggregation: silently
// dropping it would corrupt the totals.
func Summarize(txs []core.Transaction, cats []core.Category, period core.Period) (Summary, error) {
	s := Summary{Period: period}
	index := categoryIndex(cats)
	for _, t := range txs {
		if !period.Contains(t.Date) {
			continue
		}
		if err := checkTransaction(t, index); err != nil {
			return Summary{}, err
		}
		switch t.Kind {
		case core.Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case core.Expense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	s.SavingsRate = PercentOf(s.Balance.Cents, s.TotalIncome.Cents)
	return s, nil
}

// SpendByCategory sums expense transactions per category within the period.
// Budgeted expense categories always appear, with zero spend when nothing was
// recorded, so an idle budget shows as 0% instead of going missing. An
// unbudgeted category appears only once it has spending.
func SpendByCategory(txs []core.Transaction, cats []core.Category, period core.Period) (map[string]core.Money, error) {
	index := categoryIndex(cats)
	actual := make(map[string]core.Money)
	for _, c := range cats {
		if c.Kind == core.Expense && c.HasBudget() {
			actual[c.Name] = core.Money{}
		}
	}
	for _, t := range txs {
		if !period.Contains(t.Date) || t.Kind != core.Expense {
			continue
		}
		if err := checkTransaction(t, index); err != nil {
			return nil, err
		}
		actual[t.Category] = actual[t.Category].Add(t.Amount)
	}
	return actual, nil
}

// CategoryTotals returns the ordered spending breakdown for the period,
// largest total first (ties alphabetical), with per-category transaction
// counts.
func CategoryTotals(txs []core.Transaction, cats []core.Category, period core.Period) ([]CategorySpend, error) {
	index := categoryIndex(cats)
	totals := make(map[string]*CategorySpend)
	for _, t := range txs {
		if !period.Contains(t.Date) || t.Kind != core.Expense {
			continue
		}
		if err := checkTransaction(t, index); err != nil {
			return nil, err
		}
		cs, ok := totals[t.Category]
		if !ok {
			cs = &CategorySpend{Name: t.Category}
			totals[t.Category] = cs
		}
		cs.Total = cs.Total.Add(t.Amount)
		cs.Count++
	}
	out := make([]CategorySpend, 0, len(totals))
	for _, cs := range totals {
		out = append(out, *cs)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total.Cents != out[j].Total.Cents {
			return out[i].Total.Cents > out[j].Total.Cents
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func categoryIndex(cats []core.Category) map[string]core.Category {
	index := make(map[string]core.Category, len(cats))
	for _, c := range cats {
		index[c.Name] = c
	}
	return index
}

func checkTransaction(t core.Transaction, index map[string]core.Category) error {
	if t.Amount.Cents <= 0 {
		return &core.InvalidAmountError{TransactionID: t.ID, Cents: t.Amount.Cents}
	}
	if _, ok := index[t.Category]; !ok {
		return &core.UnknownCategoryError{TransactionID: t.ID, Category: t.Category}
	}
	return nil
}
