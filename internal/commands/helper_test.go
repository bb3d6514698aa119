package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aifina/aifina/internal/commands"
)

const sampleJournal = `Date,Account,Debit,Credit,Solde,Supplier/client,Component
2022-01-15,Sales Revenue,0,1000,-1000,Acme,Widgets
2022-01-15,Cost of Goods Sold,400,0,400,,
2022-01-15,Cash and cash equivalents,600,0,600,,
2022-02-10,Sales Revenue,0,2500,-2500,Globex,Gadgets
2022-02-10,Accounts Receivable,2500,0,2500,,
`

// runAifina executes the root command in-process.
func runAifina(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeJournal(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "journal.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// initProject runs init and fills the journal with content.
func initProject(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	_, _, err := runAifina(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)
	writeJournal(t, filepath.Join(dir, "data"), content)
	return dir
}
