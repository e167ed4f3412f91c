package report

import (
	"sort"

	"fintrack/internal/core"
)

// Status classifies a category's spending against its budget limit.
type Status int

const (
	StatusOK Status = iota
	StatusOverBudget
	StatusNoBudget
)

func (s Status) String() string {
	switch s {
	case StatusOverBudget:
		return "OVER BUDGET"
	case StatusNoBudget:
		return "NO BUDGET"
	default:
		return "OK"
	}
}

// CategoryStatus is the budget-vs-actual verdict for one expense category.
// PercentUsed is undefined when the category has no limit.
type CategoryStatus struct {
	Category    string
	ActualSpend core.Money
	Limit       core.Money
	PercentUsed Percent
	Status      Status
}

// Evaluate compares per-category spending against the configured limits.
//
// Spending exactly at the limit is OK; only strictly exceeding it is over.
// Budgeted categories are ordered by descending percent used so the riskiest
// ones lead the report, with ties alphabetical; unbudgeted categories follow
// alphabetically. The ordering is part of the report contract, so diffs of
// two runs over the same data line up.
func Evaluate(actual map[string]core.Money, cats []core.Category) []CategoryStatus {
	var out []CategoryStatus
	for _, c := range cats {
		if c.Kind != core.Expense {
			continue
		}
		spend := actual[c.Name]
		if !c.HasBudget() {
			if spend.Cents == 0 {
				continue // nothing spent, nothing budgeted: no row
			}
			out = append(out, CategoryStatus{
				Category:    c.Name,
				ActualSpend: spend,
				Status:      StatusNoBudget,
			})
			continue
		}
		st := CategoryStatus{
			Category:    c.Name,
			ActualSpend: spend,
			Limit:       c.Limit,
			PercentUsed: PercentOf(spend.Cents, c.Limit.Cents),
			Status:      StatusOK,
		}
		if spend.Cents > c.Limit.Cents {
			st.Status = StatusOverBudget
		}
		out = append(out, st)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.PercentUsed.Defined() != b.PercentUsed.Defined() {
			return a.PercentUsed.Defined()
		}
		if a.PercentUsed.Defined() && a.PercentUsed.Value() != b.PercentUsed.Value() {
			return a.PercentUsed.Value() > b.PercentUsed.Value()
		}
		return a.Category < b.Category
	})
	return out
}
