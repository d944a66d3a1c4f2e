package objects

// General-purpose data elements shared across the whole object model
// (general.asn): dates, object tags, names, fuzzy integers and the
// user-defined object tree.

// Date is either a structured date or an unparsed string. The string form
// exists only to carry old records whose dates cannot be split into fields;
// it cannot be computed on.
type Date struct {
	Str *string
	Std *DateStd
}

// Arm reports the populated choice arm.
func (d *Date) Arm() (string, error) {
	var p armPick
	p.add("str", d.Str != nil)
	p.add("std", d.Std != nil)
	return p.pick("Date")
}

// DateStd is a structured date. It is NOT a unix tm struct: only the year
// is mandatory and a season string may stand in for month/day.
type DateStd struct {
	Year   int64
	Month  *int64
	Day    *int64
	Season *string
	Hour   *int64
	Minute *int64
	Second *int64
}

// ObjectID can tag or name anything.
type ObjectID struct {
	ID  *int64
	Str *string
}

func (o *ObjectID) Arm() (string, error) {
	var p armPick
	p.add("id", o.ID != nil)
	p.add("str", o.Str != nil)
	return p.pick("Object-id")
}

// DbTag is a generalized tag qualified by the database or system that
// assigned it.
type DbTag struct {
	// Db names the database or system.
	Db string

	// Tag is the identifier within Db.
	Tag *ObjectID
}

// PersonID is the standard element for people.
type PersonID struct {
	// DbTag is any defined database tag.
	DbTag *DbTag

	// Name is a structured name.
	Name *NameStd

	// ML is a MEDLINE, semi-structured name.
	ML *string

	// Str is an unstructured name.
	Str *string

	// Consortium is a consortium name.
	Consortium *string
}

func (p *PersonID) Arm() (string, error) {
	var pk armPick
	pk.add("dbtag", p.DbTag != nil)
	pk.add("name", p.Name != nil)
	pk.add("ml", p.ML != nil)
	pk.add("str", p.Str != nil)
	pk.add("consortium", p.Consortium != nil)
	return pk.pick("Person-id")
}

// NameStd is a structured person name. Only the last name is mandatory.
type NameStd struct {
	Last   string
	First  *string
	Middle *string

	// Full is the complete name, e.g. "J. John Smith, Esq".
	Full *string

	// Initials are first + middle initials.
	Initials *string

	// Suffix is Jr, Sr, III and the like.
	Suffix *string

	// Title is Dr., Sister, etc.
	Title *string
}

// Range bounds an uncertain integer.
type Range struct {
	Max int64
	Min int64
}

// FuzzLimit qualifies which side of a position an uncertainty lies on.
type FuzzLimit int64

const (
	FuzzLimitUnknown FuzzLimit = iota
	FuzzLimitGT
	FuzzLimitLT
	// FuzzLimitTR is space to the right of the position.
	FuzzLimitTR
	// FuzzLimitTL is space to the left of the position.
	FuzzLimitTL
	// FuzzLimitCircle is an artificial break at the origin of a circle.
	FuzzLimitCircle
	FuzzLimitOther FuzzLimit = 255
)

var fuzzLimitEnum = defEnum("Int-fuzz.lim", map[int64]string{
	0: "unk", 1: "gt", 2: "lt", 3: "tr", 4: "tl", 5: "circle", 255: "other",
})

func (l FuzzLimit) String() string { return fuzzLimitEnum.str(int64(l)) }
func (l FuzzLimit) Known() bool    { return fuzzLimitEnum.known(int64(l)) }

// IntFuzz communicates uncertainty in an integer value.
type IntFuzz struct {
	// PM is plus-or-minus a fixed amount.
	PM    *int64
	Range *Range
	Pct   *int64
	Lim   *FuzzLimit
	Alt   []int64
}

func (f *IntFuzz) Arm() (string, error) {
	var p armPick
	p.add("p-m", f.PM != nil)
	p.add("range", f.Range != nil)
	p.add("pct", f.Pct != nil)
	p.add("lim", f.Lim != nil)
	p.add("alt", f.Alt != nil)
	return p.pick("Int-fuzz")
}

// UserObject is a user-defined structured data item, attached by Seqdesc
// and feature records.
type UserObject struct {
	// Class names the endeavor that designed this object.
	Class *string

	// Type identifies the object within Class.
	Type *ObjectID

	// Data is the object itself.
	Data []*UserField
}

// UserField is one labeled slot of a UserObject.
type UserField struct {
	Label *ObjectID

	// Num is required for the slice arms on the wire; it is carried but
	// never trusted over the actual element count.
	Num *int64

	Data *UserData
}

// UserData is the value of a UserField.
type UserData struct {
	Str     *string
	Int     *int64
	Real    *float64
	Bool    *bool
	Object  *UserObject
	Strs    []string
	Ints    []int64
	Reals   []float64
	Fields  []*UserField
	Objects []*UserObject
}

func (u *UserData) Arm() (string, error) {
	var p armPick
	p.add("str", u.Str != nil)
	p.add("int", u.Int != nil)
	p.add("real", u.Real != nil)
	p.add("bool", u.Bool != nil)
	p.add("object", u.Object != nil)
	p.add("strs", u.Strs != nil)
	p.add("ints", u.Ints != nil)
	p.add("reals", u.Reals != nil)
	p.add("fields", u.Fields != nil)
	p.add("objects", u.Objects != nil)
	return p.pick("User-field.data")
}
