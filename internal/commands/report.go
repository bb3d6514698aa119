package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aifina/aifina/internal/period"
	"github.com/aifina/aifina/internal/render"
	"github.com/aifina/aifina/internal/report"
)

type reportFlags struct {
	projectFlags
	year     int
	month    int
	period   string
	ltm      bool
	format   string
	scale    int
	top      int
	accounts []string
}

func newReportCommand() *cobra.Command {
	var f reportFlags

	views := make([]string, 0, len(render.Views()))
	for _, v := range render.Views() {
		views = append(views, string(v))
	}

	cmd := &cobra.Command{
		Use:       "report <" + strings.Join(views, "|") + ">",
		Short:     "Render financial statements from the ledger",
		Args:      cobra.ExactArgs(1),
		ValidArgs: views,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := render.ParseView(args[0])
			if err != nil {
				return err
			}
			return runReport(cmd, view, &f)
		},
	}

	f.register(cmd)
	cmd.Flags().IntVar(&f.year, "year", 0, "only show periods of this year")
	cmd.Flags().IntVar(&f.month, "month", 0, "only show this month (1-12)")
	cmd.Flags().StringVar(&f.period, "period", "", "only show this period, YYYY-MM (shorthand for --year and --month)")
	cmd.Flags().BoolVar(&f.ltm, "ltm", false, "show the last twelve months ending at --year/--month (default: latest period)")
	cmd.Flags().StringVar(&f.format, "format", string(render.FormatMarkdown), "output format: markdown, pretty or csv")
	cmd.Flags().IntVar(&f.scale, "scale", 0, "display scale, 1 or 1000 (overrides display.scale)")
	cmd.Flags().IntVar(&f.top, "top", 0, "clients per period in the ranking, -1 for all (overrides display.top_clients)")
	cmd.Flags().StringSliceVar(&f.accounts, "accounts", nil, "restrict the ledger to these accounts")

	return cmd
}

func runReport(cmd *cobra.Command, view render.View, f *reportFlags) error {
	log := logger(cmd)

	format, err := render.ParseFormat(f.format)
	if err != nil {
		return err
	}

	proj, err := f.load(log)
	if err != nil {
		return err
	}
	cfg := proj.cfg

	// Flags override the config.
	filter := period.Filter{Year: cfg.Filter.Year, Month: cfg.Filter.Month, LTM: cfg.Filter.LTM}
	if cmd.Flags().Changed("year") {
		filter.Year = f.year
	}
	if cmd.Flags().Changed("month") {
		filter.Month = f.month
	}
	if f.period != "" {
		if cmd.Flags().Changed("year") || cmd.Flags().Changed("month") {
			return fmt.Errorf("--period cannot be combined with --year or --month")
		}
		p, err := period.Parse(f.period)
		if err != nil {
			return err
		}
		filter.Year, filter.Month = p.Year(), p.Month()
	}
	if cmd.Flags().Changed("ltm") {
		filter.LTM = f.ltm
	}
	if filter.Month < 0 || filter.Month > 12 {
		return fmt.Errorf("--month must be between 1 and 12, got %d", filter.Month)
	}
	scale := cfg.Display.Scale
	if cmd.Flags().Changed("scale") {
		scale = f.scale
	}
	top := cfg.Display.TopClients
	if cmd.Flags().Changed("top") {
		top = f.top
	}

	amounts, err := render.NewAmounts(cfg.Business.Currency, scale)
	if err != nil {
		return err
	}

	ledger, err := proj.readLedger(log)
	if err != nil {
		return err
	}
	for _, w := range ledger.Warnings {
		log.Warn(w.Error())
	}

	rep, err := report.Run(ledger.Lines, report.Options{Accounts: f.accounts, TopClients: top})
	if err != nil {
		if errors.Is(err, report.ErrNoData) {
			return fmt.Errorf("%s: %w", proj.ledger, err)
		}
		return err
	}
	logFindings(log, rep)

	return render.Write(cmd.OutOrStdout(), rep.Select(filter), view, render.Options{
		Title:   cfg.Business.Name,
		Format:  format,
		Amounts: amounts,
	})
}

// logFindings logs engine warnings. Unknown accounts change the statements
// and are warnings; the rest is debug detail.
func logFindings(log *slog.Logger, rep *report.Report) {
	for _, w := range rep.Warnings {
		if w.Kind == report.WarnUnknownAccount {
			log.Warn(w.String())
			continue
		}
		log.Debug(w.String())
	}
	for _, row := range rep.Unreconciled() {
		log.Debug("balance sheet does not reconcile", "period", row.Period, "gap", row.Gap().String())
	}
}
