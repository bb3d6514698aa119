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
	"github.com/aifina/aifina/internal/journal"
	"github.com/aifina/aifina/internal/report"
)

func newCheckCommand() *cobra.Command {
	var f projectFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load the ledger and list every data problem found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, &f)
		},
	}
	f.register(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, f *projectFlags) error {
	log := logger(cmd)
	out := cmd.OutOrStdout()

	proj, err := f.load(log)
	if err != nil {
		return err
	}
	ledger, err := proj.readLedger(log)
	if err != nil {
		return err
	}

	findings := 0
	for _, w := range ledger.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w.Error())
		findings++
	}
	for _, v := range journal.ValidateLines(ledger.Lines) {
		fmt.Fprintf(out, "invalid: %s\n", v.Error())
		findings++
	}

	rep, err := report.Run(ledger.Lines, report.Options{})
	if err != nil {
		return fmt.Errorf("%s: %w", proj.ledger, err)
	}
	findings += printFindings(out, rep)

	n, err := checkChart(out, filepath.Join(proj.dir, chartFile))
	if err != nil {
		return err
	}
	findings += n

	first, last := rep.Periods[0], rep.Latest()
	fmt.Fprintf(out, "%d lines in %d files, %d periods (%s to %s), %d findings\n",
		len(ledger.Lines), len(ledger.Files), len(rep.Periods), first, last, findings)
	return nil
}

func printFindings(out io.Writer, rep *report.Report) int {
	n := 0
	for _, w := range rep.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
		n++
	}
	for _, row := range rep.Unreconciled() {
		fmt.Fprintf(out, "unreconciled: %s assets %s, liabilities and equity %s (gap %s)\n",
			row.Period, row.TotalAssets, row.LiabilitiesAndEquity, row.Gap())
		n++
	}
	return n
}

// checkChart compares a project's accounts.csv with the built-in chart. A
// project without the file has nothing to compare.
func checkChart(out io.Writer, path string) (int, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	listed, err := accounts.ReadAccounts(f)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	chart := accounts.Default()
	name := filepath.Base(path)
	n := 0
	have := make(map[string]bool)
	for _, acct := range accounts.Names(listed) {
		have[accounts.Canonical(acct)] = true
		if !chart.Exists(acct) {
			fmt.Fprintf(out, "chart: %s lists %q, which is not classified\n", name, acct)
			n++
		}
	}
	for _, acct := range accounts.Names(chart.All()) {
		if !have[acct] {
			fmt.Fprintf(out, "chart: %s is missing %q\n", name, acct)
			n++
		}
	}
	return n, nil
}
