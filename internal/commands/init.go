package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aifina/aifina/internal/accounts"
	"github.com/aifina/aifina/internal/config"
	"github.com/aifina/aifina/internal/journal"
)

// Layout of a new project, relative to its directory.
const (
	journalFile = "journal.csv"
	chartFile   = "accounts.csv"
)

func newInitCommand() *cobra.Command {
	var name string
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new aifina project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, name, currency)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&currency, "currency", "USD", "ledger currency (ISO 4217)")

	return cmd
}

func runInit(out io.Writer, dir, name, currency string) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	// Write aifina.yaml.
	cfg := config.Default(name)
	cfg.Business.Currency = currency
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write an empty journal.
	if err := journal.Create(filepath.Join(dir, cfg.Ledger.Path, journalFile), nil); err != nil {
		return err
	}

	// Write the chart of accounts for reference.
	if err := accounts.Default().Save(filepath.Join(dir, chartFile)); err != nil {
		return err
	}

	fmt.Fprintf(out, "Initialized aifina project at %s\n", dir)
	return nil
}
