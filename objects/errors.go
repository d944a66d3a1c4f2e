package objects

import (
	"fmt"
	"strings"
)

// SyntaxError reports malformed XML markup or a failing byte source. It is
// not schema-aware: the document broke before its structure could be judged.
type SyntaxError struct {
	// Offset is the byte offset in the input where the failure surfaced.
	Offset int64

	// Stack is the open-element stack at the point of failure, outermost
	// first.
	Stack []string

	// Err is the underlying tokenizer or I/O error.
	Err error
}

func (e *SyntaxError) Error() string {
	if len(e.Stack) == 0 {
		return fmt.Sprintf("xml syntax error at byte %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("xml syntax error at byte %d (inside %s): %v",
		e.Offset, strings.Join(e.Stack, "/"), e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// SchemaError reports a structurally invalid document or tree: a mandatory
// field is absent, a choice has zero or several populated arms, instance
// length disagrees with the sequence data, or nesting exceeds the depth
// limit.
type SchemaError struct {
	// Path is the structural path of element names to the offending node.
	Path string

	// Msg describes the violation.
	Msg string

	// Err optionally carries the lower-level cause (e.g. a *NumericError
	// on a mandatory field).
	Err error
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return "schema violation: " + e.Msg
	}
	return fmt.Sprintf("schema violation at %s: %s", e.Path, e.Msg)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// UnknownVariantError reports an element tag that does not name any arm of
// the choice being decoded. It aborts decoding only under Strict mode; the
// lenient decoder skips the subtree instead.
type UnknownVariantError struct {
	// Tag is the unrecognized element name.
	Tag string

	// Context names the choice that was being decoded.
	Context string

	// Path is the structural path to the unrecognized element.
	Path string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q in %s (at %s)", e.Tag, e.Context, e.Path)
}

// NumericError reports leaf text that could not be parsed as the required
// numeric type. On an optional field it is logged and the field left unset;
// on a mandatory field the codec escalates it into a *SchemaError.
type NumericError struct {
	// Text is the offending leaf content, as found (untrimmed).
	Text string

	// Path is the structural path to the leaf, when known.
	Path string
}

func (e *NumericError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("not a number: %q", e.Text)
	}
	return fmt.Sprintf("not a number at %s: %q", e.Path, e.Text)
}

func schemaErrf(path, format string, args ...any) *SchemaError {
	return &SchemaError{Path: path, Msg: fmt.Sprintf(format, args...)}
}
