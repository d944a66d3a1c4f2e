package objects

import "fmt"

// Enumeration plumbing. Every modeled enumeration is a defined int64 type
// whose value IS the wire code, so a code added by NCBI after this package
// was written still round-trips exactly: it simply has no symbolic name.
// Each enum type owns an enumDef mapping codes to the ASN.1 symbolic names
// used in the XML value attribute.

type enumDef struct {
	context string
	byCode  map[int64]string
	byName  map[string]int64
}

func defEnum(context string, byCode map[int64]string) *enumDef {
	byName := make(map[string]int64, len(byCode))
	for code, name := range byCode {
		byName[name] = code
	}
	return &enumDef{context: context, byCode: byCode, byName: byName}
}

// str renders the symbolic name, or unknown(code) for codes outside the
// table.
func (e *enumDef) str(code int64) string {
	if name, ok := e.byCode[code]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", code)
}

func (e *enumDef) known(code int64) bool {
	_, ok := e.byCode[code]
	return ok
}

func (e *enumDef) name(code int64) (string, bool) {
	name, ok := e.byCode[code]
	return name, ok
}

func (e *enumDef) code(name string) (int64, bool) {
	code, ok := e.byName[name]
	return code, ok
}

// FlagBits is a bit-flag field value. Unrecognized bits are first-class:
// masking them away would silently corrupt records written by a newer
// schema revision, so they are kept and re-encoded verbatim.
type FlagBits int64

// Has reports whether every bit in mask is set.
func (f FlagBits) Has(mask FlagBits) bool { return f&mask == mask }

// With returns f with the bits in mask set.
func (f FlagBits) With(mask FlagBits) FlagBits { return f | mask }

// Without returns f with the bits in mask cleared.
func (f FlagBits) Without(mask FlagBits) FlagBits { return f &^ mask }

// Unknown returns the bits of f that are not covered by the known mask.
func (f FlagBits) Unknown(known FlagBits) FlagBits { return f &^ known }

// Code returns the exact wire integer, known and unknown bits included.
func (f FlagBits) Code() int64 { return int64(f) }
