// Package statement turns a line of input into an insert or select.
package statement

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.rowstore/internal/storage"
)

type Type int

const (
	Insert Type = iota
	Select
)

var (
	ErrSyntax        = errors.New("Syntax error. Could not parse statement.")
	ErrNegativeID    = errors.New("ID must be positive.")
	ErrStringTooLong = errors.New("String is too long.")
	ErrUnrecognized  = errors.New("Unrecognized keyword at start of")
)

type Statement struct {
	Type Type
	// Only set for Insert
	Row *storage.Row
}

func Prepare(input string) (*Statement, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w '%s'.", ErrUnrecognized, input)
	}

	switch fields[0] {
	case "insert":
		return prepareInsert(fields[1:])
	case "select":
		return &Statement{Type: Select}, nil
	default:
		return nil, fmt.Errorf("%w '%s'.", ErrUnrecognized, input)
	}
}

// insert <id> <username> <email>
func prepareInsert(args []string) (*Statement, error) {
	if len(args) != 3 {
		return nil, ErrSyntax
	}

	if strings.HasPrefix(args[0], "-") {
		return nil, ErrNegativeID
	}

	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return nil, ErrSyntax
	}

	row := &storage.Row{
		ID:       uint32(id),
		Username: args[1],
		Email:    args[2],
	}
	if err := row.Validate(); err != nil {
		return nil, ErrStringTooLong
	}

	return &Statement{Type: Insert, Row: row}, nil
}
