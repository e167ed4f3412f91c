package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"fintrack/internal/cli"
	"fintrack/internal/config"
	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/report"
	"fintrack/internal/storage"
)

const usage = `Usage: fintrack <command> [flags]

Commands:
  report      print the financial report for a month
  add         record an income or expense transaction
  categories  list categories and their budget limits
  set-budget  update a category's budget limit
  sample      insert a deterministic demo dataset

Run 'fintrack <command> -h' for command flags.`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	logger, cfg := cli.Setup()

	repo := cli.InitSQLite(logger, cfg.DBPath)
	defer repo.Close()

	ctx := context.Background()

	var err error
	switch cmd := os.Args[1]; cmd {
	case "report":
		err = runReport(ctx, repo, cfg, os.Args[2:])
	case "add":
		err = runAdd(ctx, repo, cfg, os.Args[2:])
	case "categories":
		err = runCategories(ctx, repo, cfg)
	case "set-budget":
		err = runSetBudget(ctx, repo, os.Args[2:])
	case "sample":
		err = runSample(ctx, repo, os.Args[2:])
	case "help", "-h", "--help":
		fmt.Println(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", cmd, usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("Command failed", log.FieldError, err, log.FieldOperation, os.Args[1])
		os.Exit(1)
	}
}

func runReport(ctx context.Context, repo *storage.SQLiteRepository, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	now := time.Now().UTC()
	year := fs.Int("year", now.Year(), "report year")
	month := fs.Int("month", int(now.Month()), "report month (1-12)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *month < 1 || *month > 12 {
		return fmt.Errorf("invalid month %d: must be between 1 and 12", *month)
	}

	svc := report.NewService(repo, cfg.Currency)
	text, err := svc.GenerateReport(ctx, core.MonthOf(*year, time.Month(*month)))
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

func runAdd(ctx context.Context, repo *storage.SQLiteRepository, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	amount := fs.String("amount", "", "amount, e.g. 12.34 (required)")
	category := fs.String("category", "", "category name (required)")
	kind := fs.String("kind", string(core.Expense), "income or expense")
	desc := fs.String("desc", "", "optional description")
	date := fs.String("date", "", "date as YYYY-MM-DD (default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cents, err := core.ParseDecimalToCents(*amount)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", *amount, err)
	}

	day := core.Date{Time: time.Now().UTC().Truncate(24 * time.Hour)}
	if *date != "" {
		day, err = core.ParseDate(*date)
		if err != nil {
			return err
		}
	}

	t := core.Transaction{
		Date:        day,
		Amount:      core.Money{Cents: cents},
		Category:    *category,
		Kind:        core.Kind(*kind),
		Description: *desc,
	}
	id, err := repo.InsertTransaction(ctx, t)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s: %s - %s (id %d)\n", t.Kind, t.Amount.Format(cfg.Currency), t.Category, id)
	return nil
}

func runCategories(ctx context.Context, repo *storage.SQLiteRepository, cfg *config.Config) error {
	cats, err := repo.FetchCategories(ctx)
	if err != nil {
		return err
	}
	for _, c := range cats {
		limit := "no budget"
		if c.HasBudget() {
			limit = c.Limit.Format(cfg.Currency)
		}
		fmt.Printf("%-15s %-8s %s\n", c.Name, c.Kind, limit)
	}
	return nil
}

func runSetBudget(ctx context.Context, repo *storage.SQLiteRepository, args []string) error {
	fs := flag.NewFlagSet("set-budget", flag.ExitOnError)
	category := fs.String("category", "", "category name (required)")
	limit := fs.String("limit", "", "monthly limit, e.g. 450 (0 stops tracking)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cents int64
	if *limit != "0" && *limit != "0.00" {
		var err error
		cents, err = core.ParseDecimalToCents(*limit)
		if err != nil {
			return fmt.Errorf("parse limit %q: %w", *limit, err)
		}
	}

	if err := repo.SetBudgetLimit(ctx, *category, core.Money{Cents: cents}); err != nil {
		return err
	}
	fmt.Printf("Budget limit for %s updated\n", *category)
	return nil
}

func runSample(ctx context.Context, repo *storage.SQLiteRepository, args []string) error {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	now := time.Now().UTC()
	year := fs.Int("year", now.Year(), "target year")
	month := fs.Int("month", int(now.Month()), "target month (1-12)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *month < 1 || *month > 12 {
		return fmt.Errorf("invalid month %d: must be between 1 and 12", *month)
	}

	n, err := repo.SeedSampleData(ctx, *year, time.Month(*month))
	if err != nil {
		return err
	}
	fmt.Printf("Inserted %d sample transactions into %s %d\n", n, time.Month(*month), *year)
	return nil
}
