package objects

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// Numeric coercion shared by every leaf field in the codec, so all numbers
// tolerate the same sloppiness: surrounding whitespace is fine, an empty
// text node means "absent" rather than zero, and anything else is a
// *NumericError carrying the original text.

// parseInt coerces leaf text to an int64. present is false when the text is
// empty or whitespace-only.
func parseInt(text string) (v int64, present bool, err error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0, false, nil
	}
	v, convErr := strconv.ParseInt(t, 10, 64)
	if convErr != nil {
		return 0, true, &NumericError{Text: text}
	}
	return v, true, nil
}

// parseFloat coerces leaf text to a float64 with the same tolerance rules
// as parseInt.
func parseFloat(text string) (v float64, present bool, err error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0, false, nil
	}
	v, convErr := strconv.ParseFloat(t, 64)
	if convErr != nil {
		return 0, true, &NumericError{Text: text}
	}
	return v, true, nil
}

// parseBool coerces the literal true/false spellings used by the wire
// format's value attributes.
func parseBool(text string) (v bool, present bool, ok bool) {
	switch strings.TrimSpace(text) {
	case "":
		return false, false, true
	case "true":
		return true, true, true
	case "false":
		return false, true, true
	}
	return false, true, false
}

// parseHex coerces an octet-string leaf (NCBI2na and friends are published
// as hex). Whitespace anywhere in the text is ignored; asn2xml wraps long
// runs.
func parseHex(text string) ([]byte, error) {
	var compact strings.Builder
	for _, r := range text {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			compact.WriteRune(r)
		}
	}
	if compact.Len() == 0 {
		return nil, nil
	}
	b, err := hex.DecodeString(compact.String())
	if err != nil {
		return nil, &NumericError{Text: text}
	}
	return b, nil
}
