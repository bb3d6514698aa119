package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aifina/aifina/internal/config"
	"github.com/aifina/aifina/internal/journal"
)

// projectFlags locate the config file and the ledger. Both default to the
// current directory's aifina.yaml and its ledger.path.
type projectFlags struct {
	configPath string
	ledgerPath string
}

func (f *projectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "path to "+config.FileName+" (default: ./"+config.FileName+" when present)")
	cmd.Flags().StringVar(&f.ledgerPath, "ledger", "", "journal CSV file or directory (overrides ledger.path)")
}

// project is a loaded config with a resolved ledger path.
type project struct {
	cfg    *config.Config
	dir    string // directory holding the config, "." without one
	ledger string
}

// load reads the config. A missing default config is not an error: the
// defaults apply and ledger paths resolve against the working directory.
func (f *projectFlags) load(log *slog.Logger) (*project, error) {
	path := f.configPath
	if path == "" {
		path = config.FileName
	}

	base := filepath.Dir(path)
	cfg, err := config.Load(path)
	if err != nil {
		if f.configPath != "" || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		log.Debug("no config file, using defaults", "path", path)
		cfg = config.Default("")
		base = "."
	}

	ledger := f.ledgerPath
	if ledger == "" {
		ledger = cfg.Ledger.Path
		if !filepath.IsAbs(ledger) {
			ledger = filepath.Join(base, ledger)
		}
	}
	return &project{cfg: cfg, dir: base, ledger: ledger}, nil
}

// readLedger loads every journal file of the project and logs row warnings.
func (p *project) readLedger(log *slog.Logger) (*journal.Ledger, error) {
	ledger, err := journal.NewService(p.ledger).Load()
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	log.Debug("ledger loaded", "path", p.ledger, "files", len(ledger.Files), "lines", len(ledger.Lines))
	return ledger, nil
}
