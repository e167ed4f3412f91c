package report

import (
	"fmt"
	"strings"
)

// Render produces the fixed-layout textual report. It is pure: equal inputs
// yield byte-identical text, and writing the result anywhere is the caller's
// job. Currency values always carry two decimals and the given symbol;
// percentages carry one decimal, with an undefined savings rate shown as
// "N/A" rather than a misleading 0.0%.
func Render(summary Summary, statuses []CategoryStatus, breakdown []CategorySpend, symbol string) string {
	var b strings.Builder

	rule := strings.Repeat("=", 50)
	sep := strings.Repeat("-", 30)

	b.WriteString(rule + "\n")
	b.WriteString("FINANCIAL REPORT\n")
	b.WriteString(rule + "\n")

	fmt.Fprintf(&b, "\nSUMMARY (%s)\n%s\n", summary.Period.Label(), sep)
	fmt.Fprintf(&b, "%-9s %12s\n", "Income:", summary.TotalIncome.Format(symbol))
	fmt.Fprintf(&b, "%-9s %12s\n", "Expenses:", summary.TotalExpense.Format(symbol))
	fmt.Fprintf(&b, "%-9s %12s\n", "Balance:", summary.Balance.Format(symbol))
	fmt.Fprintf(&b, "%-9s %12s\n", "Savings:", formatPercent(summary.SavingsRate))

	fmt.Fprintf(&b, "\nBUDGET STATUS\n%s\n", sep)
	if len(statuses) == 0 {
		b.WriteString("(none)\n")
	}
	for _, st := range statuses {
		if st.Status == StatusNoBudget {
			fmt.Fprintf(&b, "%-12s %s %s\n", st.Category, st.ActualSpend.Format(symbol), st.Status)
			continue
		}
		fmt.Fprintf(&b, "%-12s %s/%s (%6s) %s\n",
			st.Category,
			st.ActualSpend.Format(symbol), st.Limit.Format(symbol),
			formatPercent(st.PercentUsed), st.Status)
	}

	fmt.Fprintf(&b, "\nCATEGORY SPENDING\n%s\n", sep)
	if len(breakdown) == 0 {
		b.WriteString("(none)\n")
	}
	for _, cs := range breakdown {
		noun := "transactions"
		if cs.Count == 1 {
			noun = "transaction"
		}
		fmt.Fprintf(&b, "%-12s %10s (%d %s)\n", cs.Name, cs.Total.Format(symbol), cs.Count, noun)
	}

	return b.String()
}

func formatPercent(p Percent) string {
	if !p.Defined() {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", p.Value())
}
