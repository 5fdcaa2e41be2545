package prisma

import (
	"errors"
	"fmt"
)

var (
	// ErrNestedBlock is returned when a block body contains a brace outside
	// string literals and comments.
	ErrNestedBlock = errors.New("nested brace-delimited block")
	// ErrUnterminatedBlock is returned when the document ends inside a block.
	ErrUnterminatedBlock = errors.New("block is never closed")
	// ErrInlineBlock is returned when a block header carries body content on
	// the same line.
	ErrInlineBlock = errors.New("block body on the header line")
)

// ParseError reports a structural problem at a schema line.
type ParseError struct {
	Line  int
	Block string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Block != "" {
		return fmt.Sprintf("line %d: block %q: %v", e.Line, e.Block, e.Err)
	}

	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
