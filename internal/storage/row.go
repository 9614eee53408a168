package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

const (
	ColumnIDSize       = 4
	ColumnUsernameSize = 32
	ColumnEmailSize    = 255

	idOffset       = 0
	usernameOffset = idOffset + ColumnIDSize
	emailOffset    = usernameOffset + ColumnUsernameSize

	RowSize = ColumnIDSize + ColumnUsernameSize + ColumnEmailSize
)

type Row struct {
	ID       uint32
	Username string
	Email    string
}

func (r Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, r.Username, r.Email)
}

// Validate checks both strings fit their columns. Lengths are in bytes.
func (r Row) Validate() error {
	if len(r.Username) > ColumnUsernameSize {
		return fmt.Errorf("%w: username is %d bytes, limit %d", ErrStringTooLong, len(r.Username), ColumnUsernameSize)
	}
	if len(r.Email) > ColumnEmailSize {
		return fmt.Errorf("%w: email is %d bytes, limit %d", ErrStringTooLong, len(r.Email), ColumnEmailSize)
	}
	return nil
}

// Encode writes the fixed width form of the row into buf[:RowSize].
// Oversized strings are rejected rather than cut short.
func (r Row) Encode(buf []byte) error {
	if len(buf) < RowSize {
		return fmt.Errorf("%w: have %d, need %d", ErrShortBuffer, len(buf), RowSize)
	}
	if err := r.Validate(); err != nil {
		return err
	}

	binary.BigEndian.PutUint32(buf[idOffset:usernameOffset], r.ID)
	putString(buf[usernameOffset:emailOffset], r.Username)
	putString(buf[emailOffset:RowSize], r.Email)
	return nil
}

func DecodeRow(buf []byte) (Row, error) {
	if len(buf) < RowSize {
		return Row{}, fmt.Errorf("%w: have %d, need %d", ErrShortBuffer, len(buf), RowSize)
	}

	username, err := readString(buf[usernameOffset:emailOffset])
	if err != nil {
		return Row{}, fmt.Errorf("username: %w", err)
	}
	email, err := readString(buf[emailOffset:RowSize])
	if err != nil {
		return Row{}, fmt.Errorf("email: %w", err)
	}

	return Row{
		ID:       binary.BigEndian.Uint32(buf[idOffset:usernameOffset]),
		Username: username,
		Email:    email,
	}, nil
}

// Copy s into field and zero the remainder.
func putString(field []byte, s string) {
	n := copy(field, s)
	clear(field[n:])
}

// A field without a zero byte uses its full width.
func readString(field []byte) (string, error) {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	if !utf8.Valid(field) {
		return "", ErrInvalidEncoding
	}
	return string(field), nil
}
