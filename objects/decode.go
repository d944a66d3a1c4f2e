package objects

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"

	"github.com/PoorRican/ncbi-go/logger"
)

// Decode reads one XML document from r and returns the Seq-entry it holds.
// The document root may be a Seq-entry, a bare Bioseq-set or a bare Bioseq;
// the bare forms are wrapped into an entry. Gzip input is detected by magic
// bytes and inflated transparently.
//
// The default mode is Lenient: unknown elements are skipped with a warning
// and malformed optional leaves are dropped. The returned tree has been
// validated; a non-nil entry always satisfies Validate.
func Decode(r io.Reader, opts ...Option) (*SeqEntry, error) {
	o := buildOptions(opts)
	br := bufio.NewReader(r)
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, &SyntaxError{Err: err}
		}
		defer gz.Close()
		return decodeDocument(gz, o)
	}
	return decodeDocument(br, o)
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte, opts ...Option) (*SeqEntry, error) {
	return Decode(strings.NewReader(string(data)), opts...)
}

func decodeDocument(r io.Reader, o options) (*SeqEntry, error) {
	d := &decoder{xd: xml.NewDecoder(r), opts: o}

	// Find the root element past any prolog, DOCTYPE and comments.
	var root xml.StartElement
	for {
		tok, err := d.xd.Token()
		if err != nil {
			return nil, d.syntax(err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			root = se
			break
		}
	}
	d.path = append(d.path, root.Name.Local)

	var entry *SeqEntry
	switch root.Name.Local {
	case "Seq-entry":
		entry = &SeqEntry{}
		if err := d.seqEntry(entry); err != nil {
			return nil, err
		}
	case "Bioseq-set":
		set := &BioseqSet{}
		if err := d.bioseqSet(set); err != nil {
			return nil, err
		}
		entry = NewSetEntry(set)
	case "Bioseq":
		seq := &Bioseq{}
		if err := d.bioseq(seq); err != nil {
			return nil, err
		}
		entry = NewSeqEntry(seq)
	default:
		return nil, schemaErrf(root.Name.Local, "unsupported document root %q", root.Name.Local)
	}
	if err := Validate(entry, WithMaxDepth(o.maxDepth)); err != nil {
		return nil, err
	}
	return entry, nil
}

// decoder walks the token stream. Every decode method is entered after its
// element's start tag has been consumed and must consume through the
// matching end tag; children takes care of both bookkeeping and the depth
// bound.
type decoder struct {
	xd   *xml.Decoder
	opts options
	path []string
}

func (d *decoder) at() string { return strings.Join(d.path, "/") }

// syntax wraps a tokenizer or I/O failure with the current location.
// Errors already belonging to this package pass through untouched.
func (d *decoder) syntax(err error) error {
	if err == nil {
		return nil
	}
	switch err.(type) {
	case *SyntaxError, *SchemaError, *UnknownVariantError, *NumericError:
		return err
	}
	stack := make([]string, len(d.path))
	copy(stack, d.path)
	return &SyntaxError{Offset: d.xd.InputOffset(), Stack: stack, Err: err}
}

// children iterates the child elements of the current element, calling fn
// for each. fn must fully consume the child. Character data and comments
// between children are ignored.
func (d *decoder) children(fn func(start xml.StartElement) error) error {
	for {
		tok, err := d.xd.Token()
		if err != nil {
			return d.syntax(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			d.path = append(d.path, t.Name.Local)
			if len(d.path) > d.opts.maxDepth {
				return schemaErrf(d.at(), "nesting exceeds depth limit %d", d.opts.maxDepth)
			}
			err := fn(t)
			d.path = d.path[:len(d.path)-1]
			if err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// text consumes the current element and returns its immediate character
// data. Nested markup, which no modeled leaf carries, is dropped.
func (d *decoder) text() (string, error) {
	var sb strings.Builder
	depth := 0
	for {
		tok, err := d.xd.Token()
		if err != nil {
			return "", d.syntax(err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			if depth == 0 {
				sb.Write(t)
			}
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				return sb.String(), nil
			}
			depth--
		}
	}
}

// skip consumes the current element and everything under it.
func (d *decoder) skip() error {
	return d.syntax(d.xd.Skip())
}

// unknown handles an element no decoder recognizes: a strict decode fails,
// a lenient one logs and moves past the subtree.
func (d *decoder) unknown(start xml.StartElement, context string) error {
	if d.opts.mode == Strict {
		return &UnknownVariantError{Tag: start.Name.Local, Context: context, Path: d.at()}
	}
	logger.Warn("skipping unrecognized element",
		zap.String("element", start.Name.Local),
		zap.String("context", context),
		zap.String("path", d.at()))
	return d.skip()
}

// keepChoice decides whether a decoded choice value should be kept. A
// lenient decode can skip an unrecognized arm, leaving the choice with no
// populated arm; armErr is the result of its Arm method. Such husks are
// dropped so the rest of the document still validates. Strict mode keeps
// everything: an unknown arm has already failed by the time this runs.
func (d *decoder) keepChoice(armErr error) bool {
	return d.opts.mode == Strict || armErr == nil
}

func attrValue(start xml.StartElement, name string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// optStr decodes an optional string leaf. An empty element yields an empty,
// present string.
func (d *decoder) optStr(dst **string) error {
	text, err := d.text()
	if err != nil {
		return err
	}
	s := text
	*dst = &s
	return nil
}

// reqStr decodes a mandatory string leaf directly into a value field.
func (d *decoder) reqStr(dst *string) error {
	text, err := d.text()
	if err != nil {
		return err
	}
	*dst = text
	return nil
}

// optInt decodes an optional integer leaf. Malformed text never aborts the
// decode, strict or lenient: the field stays unset and a warning is logged.
// Strictness governs unknown variants, not optional-leaf garbage.
func (d *decoder) optInt(dst **int64) error {
	text, err := d.text()
	if err != nil {
		return err
	}
	v, present, convErr := parseInt(text)
	if convErr != nil {
		logger.Warn("dropping malformed optional integer",
			zap.String("path", d.at()), zap.String("text", strings.TrimSpace(text)))
		return nil
	}
	if present {
		*dst = &v
	}
	return nil
}

// reqInt decodes a mandatory integer leaf. Absence and malformed text are
// schema violations in either mode; seen, when given, records that the
// field appeared.
func (d *decoder) reqInt(dst *int64, seen *bool) error {
	text, err := d.text()
	if err != nil {
		return err
	}
	v, present, convErr := parseInt(text)
	if convErr != nil {
		ne := convErr.(*NumericError)
		ne.Path = d.at()
		return &SchemaError{Path: d.at(), Msg: "mandatory integer is malformed", Err: ne}
	}
	if !present {
		return schemaErrf(d.at(), "mandatory integer is empty")
	}
	*dst = v
	if seen != nil {
		*seen = true
	}
	return nil
}

func (d *decoder) optFloat(dst **float64) error {
	text, err := d.text()
	if err != nil {
		return err
	}
	v, present, convErr := parseFloat(text)
	if convErr != nil {
		logger.Warn("dropping malformed optional real",
			zap.String("path", d.at()), zap.String("text", strings.TrimSpace(text)))
		return nil
	}
	if present {
		*dst = &v
	}
	return nil
}

func (d *decoder) reqFloat(dst *float64, seen *bool) error {
	text, err := d.text()
	if err != nil {
		return err
	}
	v, present, convErr := parseFloat(text)
	if convErr != nil {
		ne := convErr.(*NumericError)
		ne.Path = d.at()
		return &SchemaError{Path: d.at(), Msg: "mandatory real is malformed", Err: ne}
	}
	if !present {
		return schemaErrf(d.at(), "mandatory real is empty")
	}
	*dst = v
	if seen != nil {
		*seen = true
	}
	return nil
}

// boolLeaf decodes a boolean leaf: the value attribute is authoritative,
// element text is the fallback.
func (d *decoder) boolLeaf(start xml.StartElement) (v, present bool, err error) {
	raw, hasAttr := attrValue(start, "value")
	text, err := d.text()
	if err != nil {
		return false, false, err
	}
	src := raw
	if !hasAttr {
		src = text
	}
	v, present, ok := parseBool(src)
	if !ok {
		logger.Warn("dropping malformed boolean",
			zap.String("path", d.at()), zap.String("text", src))
		return false, false, nil
	}
	return v, present, nil
}

// hexLeaf decodes an octet-string leaf published as hex.
func (d *decoder) hexLeaf() ([]byte, error) {
	text, err := d.text()
	if err != nil {
		return nil, err
	}
	b, convErr := parseHex(text)
	if convErr != nil {
		ne := convErr.(*NumericError)
		ne.Path = d.at()
		return nil, &SchemaError{Path: d.at(), Msg: "malformed hex octet string", Err: ne}
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// enumLeaf decodes an enumerated leaf. Numeric element text is
// authoritative so codes newer than the symbol table survive a round trip;
// the value attribute's symbolic name is consulted when no number is given.
func (d *decoder) enumLeaf(start xml.StartElement, def *enumDef) (code int64, present bool, err error) {
	name, hasName := attrValue(start, "value")
	text, err := d.text()
	if err != nil {
		return 0, false, err
	}
	v, p, convErr := parseInt(text)
	if convErr == nil && p {
		return v, true, nil
	}
	if hasName {
		if c, ok := def.code(name); ok {
			return c, true, nil
		}
	}
	if convErr != nil || hasName {
		bad := strings.TrimSpace(text)
		if bad == "" {
			bad = name
		}
		if d.opts.mode == Strict {
			return 0, false, &SchemaError{
				Path: d.at(),
				Msg:  fmt.Sprintf("unrecognized %s value %q", def.context, bad),
				Err:  &NumericError{Text: bad, Path: d.at()},
			}
		}
		logger.Warn("dropping unrecognized enum value",
			zap.String("context", def.context),
			zap.String("path", d.at()),
			zap.String("text", bad))
		return 0, false, nil
	}
	return 0, false, nil
}

// wrappedEnum decodes an enum whose field element wraps a named type
// element (e.g. Na-strand under Seq-interval_strand).
func (d *decoder) wrappedEnum(wrapper string, def *enumDef) (code int64, present bool, err error) {
	err = d.children(func(start xml.StartElement) error {
		if start.Name.Local != wrapper {
			return d.unknown(start, def.context)
		}
		c, p, e := d.enumLeaf(start, def)
		if e != nil {
			return e
		}
		code, present = c, p
		return nil
	})
	return
}

// stringList decodes a SEQUENCE OF VisibleString: item elements carry the
// parent name plus the _E suffix.
func (d *decoder) stringList(item string, dst *[]string, context string) error {
	out := []string{}
	err := d.children(func(start xml.StartElement) error {
		if start.Name.Local != item {
			return d.unknown(start, context)
		}
		text, err := d.text()
		if err != nil {
			return err
		}
		out = append(out, text)
		return nil
	})
	if err != nil {
		return err
	}
	*dst = out
	return nil
}

// intList decodes a SEQUENCE OF INTEGER with _E item elements.
func (d *decoder) intList(item string, dst *[]int64, context string) error {
	out := []int64{}
	err := d.children(func(start xml.StartElement) error {
		if start.Name.Local != item {
			return d.unknown(start, context)
		}
		var v int64
		if err := d.reqInt(&v, nil); err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return err
	}
	*dst = out
	return nil
}

// floatList decodes a SEQUENCE OF REAL with _E item elements.
func (d *decoder) floatList(item string, dst *[]float64, context string) error {
	out := []float64{}
	err := d.children(func(start xml.StartElement) error {
		if start.Name.Local != item {
			return d.unknown(start, context)
		}
		var v float64
		if err := d.reqFloat(&v, nil); err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return err
	}
	*dst = out
	return nil
}
