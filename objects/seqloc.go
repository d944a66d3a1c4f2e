package objects

// Sequence identifiers and locations (seqloc.asn).

// SeqID identifies a sequence within one accession namespace. A Bioseq
// carries a set of these as equivalent aliases; locations carry them as
// lookup keys, always by independent copy and never as a pointer back into
// some Bioseq.
type SeqID struct {
	Local *ObjectID

	// GibbSq is a GenInfo backbone sequence id.
	GibbSq *int64

	// GibbMt is a GenInfo backbone molecule type.
	GibbMt *int64

	// Giim is a GenInfo import id.
	Giim *GiimportID

	Genbank   *TextseqID
	Embl      *TextseqID
	Pir       *TextseqID
	Swissprot *TextseqID
	Patent    *PatentSeqID

	// Other is RefSeq; the arm name is historical.
	Other *TextseqID

	// General is for other databases.
	General *DbTag

	// Gi is the GenInfo integrated database id.
	Gi *int64

	Ddbj *TextseqID
	Prf  *TextseqID
	Pdb  *PDBSeqID

	// Tpg/Tpe/Tpd are third-party annotation ids (GenBank, EMBL, DDBJ).
	Tpg *TextseqID
	Tpe *TextseqID
	Tpd *TextseqID

	// Gpipe is the internal NCBI genome pipeline namespace.
	Gpipe *TextseqID

	// NamedAnnotTrack is the internal named-annotation namespace.
	NamedAnnotTrack *TextseqID
}

func (id *SeqID) Arm() (string, error) {
	var p armPick
	p.add("local", id.Local != nil)
	p.add("gibbsq", id.GibbSq != nil)
	p.add("gibbmt", id.GibbMt != nil)
	p.add("giim", id.Giim != nil)
	p.add("genbank", id.Genbank != nil)
	p.add("embl", id.Embl != nil)
	p.add("pir", id.Pir != nil)
	p.add("swissprot", id.Swissprot != nil)
	p.add("patent", id.Patent != nil)
	p.add("other", id.Other != nil)
	p.add("general", id.General != nil)
	p.add("gi", id.Gi != nil)
	p.add("ddbj", id.Ddbj != nil)
	p.add("prf", id.Prf != nil)
	p.add("pdb", id.Pdb != nil)
	p.add("tpg", id.Tpg != nil)
	p.add("tpe", id.Tpe != nil)
	p.add("tpd", id.Tpd != nil)
	p.add("gpipe", id.Gpipe != nil)
	p.add("named-annot-track", id.NamedAnnotTrack != nil)
	return p.pick("Seq-id")
}

// TextseqID is the common text id shared by GenBank, EMBL, DDBJ and the
// other accessioned namespaces. All fields are optional on the wire but a
// useful id carries at least name or accession.
type TextseqID struct {
	Name      *string
	Accession *string
	Release   *string
	Version   *int64
}

// GiimportID is a GenInfo import id.
type GiimportID struct {
	ID      int64
	Db      *string
	Release *string
}

// PatentSeqID numbers a sequence within a patent citation.
type PatentSeqID struct {
	// SeqID is the number of the sequence in the patent.
	SeqID int64

	// Cit is the patent citation.
	Cit *IDPat
}

// PDBSeqID identifies a chain within a PDB entry.
type PDBSeqID struct {
	// Mol is the PDB molecule name, conventionally 4 characters.
	Mol string

	Rel     *Date
	ChainID *string
}

// SeqLoc describes a location on a sequence. The null arm marks a region of
// unknown extent, e.g. the unsequenced gap between two fragments of a
// segmented sequence.
type SeqLoc struct {
	// Null is the "not placed" arm; true when populated.
	Null bool

	// Empty voids one SeqID in a collection.
	Empty *SeqID

	// Whole is the entire sequence named by the id.
	Whole *SeqID

	// Int is a from/to interval.
	Int *SeqInterval

	PackedInt []*SeqInterval
	Pnt       *SeqPoint
	PackedPnt *PackedSeqPnt

	// Mix holds any combination of locations.
	Mix []*SeqLoc

	// Equiv holds equivalent descriptions of the same location.
	Equiv []*SeqLoc

	Bond *SeqBond

	// Feat locates indirectly through a feature.
	Feat *FeatID
}

func (l *SeqLoc) Arm() (string, error) {
	var p armPick
	p.add("null", l.Null)
	p.add("empty", l.Empty != nil)
	p.add("whole", l.Whole != nil)
	p.add("int", l.Int != nil)
	p.add("packed-int", l.PackedInt != nil)
	p.add("pnt", l.Pnt != nil)
	p.add("packed-pnt", l.PackedPnt != nil)
	p.add("mix", l.Mix != nil)
	p.add("equiv", l.Equiv != nil)
	p.add("bond", l.Bond != nil)
	p.add("feat", l.Feat != nil)
	return p.pick("Seq-loc")
}

// SeqInterval is a closed [From, To] range on the sequence named by ID.
type SeqInterval struct {
	From     int64
	To       int64
	Strand   *NaStrand
	ID       *SeqID
	FuzzFrom *IntFuzz
	FuzzTo   *IntFuzz
}

// SeqPoint is a single position on the sequence named by ID.
type SeqPoint struct {
	Point  int64
	Strand *NaStrand
	ID     *SeqID
	Fuzz   *IntFuzz
}

// PackedSeqPnt is a run of points sharing one id and strand.
type PackedSeqPnt struct {
	Strand *NaStrand
	ID     *SeqID
	Fuzz   *IntFuzz
	Points []int64
}

// NaStrand is the strand of a nucleic acid location.
type NaStrand int64

const (
	NaStrandUnknown NaStrand = iota
	NaStrandPlus
	NaStrandMinus
	// NaStrandBoth is in forward orientation.
	NaStrandBoth
	// NaStrandBothRev is in reverse orientation.
	NaStrandBothRev
	NaStrandOther NaStrand = 255
)

var naStrandEnum = defEnum("Na-strand", map[int64]string{
	0: "unknown", 1: "plus", 2: "minus", 3: "both", 4: "both-rev", 255: "other",
})

func (s NaStrand) String() string { return naStrandEnum.str(int64(s)) }
func (s NaStrand) Known() bool    { return naStrandEnum.known(int64(s)) }

// SeqBond is a bond between residues. The second end may not be known.
type SeqBond struct {
	A *SeqPoint
	B *SeqPoint
}

// FeatID identifies a feature.
type FeatID struct {
	// Gibb is a GenInfo backbone id.
	Gibb *int64

	// Giim is a GenInfo import id.
	Giim *GiimportID

	// Local is for local software use.
	Local *ObjectID

	// General is for use by various databases.
	General *DbTag
}

func (f *FeatID) Arm() (string, error) {
	var p armPick
	p.add("gibb", f.Gibb != nil)
	p.add("giim", f.Giim != nil)
	p.add("local", f.Local != nil)
	p.add("general", f.General != nil)
	return p.pick("Feat-id")
}
