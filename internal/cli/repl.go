package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"go.rowstore/internal/engine"
	"go.rowstore/internal/statement"
)

var errExit = errors.New("exit")

type styles struct {
	heading lipgloss.Style
	err     lipgloss.Style
}

// Styles are bound to the output so pipes and files get plain text.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		heading: r.NewStyle().Bold(true),
		err:     r.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
}

// Reads statements and meta commands until .exit or end of input. The
// table is closed either way.
func startREPL(cmd *cobra.Command, db *engine.Database, prompt string) error {
	reader := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	st := newStyles(out)

	for {
		fmt.Fprint(out, prompt)

		if !reader.Scan() {
			return errors.Join(reader.Err(), db.Close())
		}

		input := strings.TrimSpace(reader.Text())
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, ".") {
			err := doMetaCommand(input, db, out, st)
			if errors.Is(err, errExit) {
				return db.Close()
			}
			if err != nil {
				fmt.Fprintln(out, st.err.Render(err.Error()))
			}
			continue
		}

		stmt, err := statement.Prepare(input)
		if err != nil {
			fmt.Fprintln(out, st.err.Render(err.Error()))
			continue
		}

		if err := db.Execute(stmt, out); err != nil {
			fmt.Fprintln(out, st.err.Render(err.Error()))
			continue
		}
		fmt.Fprintln(out, "Executed")
	}
}
