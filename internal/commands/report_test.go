package commands_test

import (
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aifina/aifina/internal/report"
)

func TestReport_FromProject(t *testing.T) {
	dir := initProject(t, sampleJournal)

	out, _, err := runAifina(t, "report", "pnl", "--config", filepath.Join(dir, "aifina.yaml"))
	require.NoError(t, err)

	assert.Contains(t, out, "# Test Biz")
	assert.Contains(t, out, "## Profit & Loss")
	assert.Contains(t, out, "Sales Revenue")
	assert.Contains(t, out, "3 K$", "2500 at the default thousands scale")
}

func TestReport_CSVFromLedgerFlag(t *testing.T) {
	path := writeJournal(t, t.TempDir(), sampleJournal)

	out, _, err := runAifina(t, "report", "pnl", "--ledger", path, "--format", "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Profit & Loss", "2022-01", "2022-02"}, records[0])
	assert.Equal(t, []string{"Sales Revenue", "1000", "2500"}, records[1])
}

func TestReport_Filter(t *testing.T) {
	path := writeJournal(t, t.TempDir(), sampleJournal)

	out, _, err := runAifina(t, "report", "kpi", "--ledger", path, "--format", "csv", "--year", "2022", "--month", "2")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"KPIs", "2022-02"}, records[0])
}

func TestReport_PeriodFlag(t *testing.T) {
	path := writeJournal(t, t.TempDir(), sampleJournal)

	out, _, err := runAifina(t, "report", "pnl", "--ledger", path, "--format", "csv", "--period", "2022-01")
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Profit & Loss", "2022-01"}, records[0])

	_, _, err = runAifina(t, "report", "pnl", "--ledger", path, "--period", "2022-13")
	assert.Error(t, err)

	_, _, err = runAifina(t, "report", "pnl", "--ledger", path, "--period", "2022-01", "--year", "2022")
	assert.ErrorContains(t, err, "cannot be combined")
}

func TestReport_ClientsAndScale(t *testing.T) {
	path := writeJournal(t, t.TempDir(), sampleJournal)

	out, _, err := runAifina(t, "report", "clients", "--ledger", path, "--scale", "1", "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Globex")
	assert.Contains(t, out, "$2,500.00")
}

func TestReport_Summary(t *testing.T) {
	path := writeJournal(t, t.TempDir(), sampleJournal)

	out, _, err := runAifina(t, "report", "summary", "--ledger", path, "--format", "pretty")
	require.NoError(t, err)
	assert.Contains(t, out, "EBITDA")
}

func TestReport_EmptyJournal(t *testing.T) {
	dir := initProject(t, "Date,Account,Debit,Credit\n")

	_, _, err := runAifina(t, "report", "all", "--config", filepath.Join(dir, "aifina.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrNoData)
}

func TestReport_InvalidArguments(t *testing.T) {
	path := writeJournal(t, t.TempDir(), sampleJournal)

	_, _, err := runAifina(t, "report", "cashflow", "--ledger", path)
	assert.Error(t, err)

	_, _, err = runAifina(t, "report", "pnl", "--ledger", path, "--format", "html")
	assert.Error(t, err)

	_, _, err = runAifina(t, "report", "pnl", "--ledger", path, "--scale", "10")
	assert.Error(t, err)

	_, _, err = runAifina(t, "report", "pnl", "--ledger", path, "--month", "13")
	assert.Error(t, err)

	_, _, err = runAifina(t, "report", "pnl", "--ledger", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestReport_LogsWarnings(t *testing.T) {
	path := writeJournal(t, t.TempDir(), sampleJournal+"2022-02-10,Suspense,5,0,5,,\n")

	_, stderr, err := runAifina(t, "report", "pnl", "--ledger", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=WARN")
	assert.Contains(t, stderr, "suspense")
	assert.NotContains(t, stderr, "level=DEBUG")

	_, stderr, err = runAifina(t, "report", "pnl", "--ledger", path, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
}
