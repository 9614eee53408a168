package cli

import (
	"fmt"
	"io"

	"go.rowstore/internal/engine"
	"go.rowstore/internal/storage"
)

func doMetaCommand(input string, db *engine.Database, out io.Writer, st styles) error {
	switch input {
	case ".exit":
		return errExit
	case ".btree":
		fmt.Fprintln(out, st.heading.Render("Tree:"))
		return db.Tree(out)
	case ".constants":
		fmt.Fprintln(out, st.heading.Render("Constants:"))
		return storage.PrintConstants(out)
	default:
		return fmt.Errorf("Unrecognized command '%s'", input)
	}
}
