package transform

import (
	"errors"
	"fmt"

	"github.com/robinvdvleuten/yamlunist/cst"
)

// Both error classes mean the CST does not match what the transform
// expects: a bug in the parser or a version mismatch. Re-parsing the same
// input will not help.
var (
	// ErrContract is wrapped by every *ContractError.
	ErrContract = errors.New("cst contract violation")
	// ErrUnknownKind is wrapped by every *UnknownKindError.
	ErrUnknownKind = errors.New("unknown cst node kind")
)

// ContractError reports a CST that breaks an invariant the transform relies
// on, such as a document with two root values or a tag on a sequence item.
type ContractError struct {
	Kind    cst.Kind
	Offset  int
	Message string
}

func (e *ContractError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Message)
}

func (e *ContractError) Unwrap() error { return ErrContract }

// GetOffset returns the source offset of the offending node, or -1.
func (e *ContractError) GetOffset() int { return e.Offset }

// UnknownKindError reports a CST node whose kind is not one of cst.Kinds.
type UnknownKindError struct {
	Kind   cst.Kind
	Offset int
}

func (e *UnknownKindError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("unexpected node type %q", e.Kind)
	}
	return fmt.Sprintf("unexpected node type %q at offset %d", e.Kind, e.Offset)
}

func (e *UnknownKindError) Unwrap() error { return ErrUnknownKind }

// GetOffset returns the source offset of the offending node, or -1.
func (e *UnknownKindError) GetOffset() int { return e.Offset }

func contractf(n *cst.Node, format string, args ...any) *ContractError {
	return &ContractError{Kind: n.Type, Offset: offsetOf(n), Message: fmt.Sprintf(format, args...)}
}

// offsetOf picks the best offset to report for n.
func offsetOf(n *cst.Node) int {
	switch {
	case n.ValueRange != nil:
		return n.ValueRange.Start
	case len(n.Props) > 0:
		return n.Props[0].Start
	case n.Header != nil:
		return n.Header.Start
	case n.Range != nil:
		return n.Range.Start
	}
	return -1
}
