package objects

// The Bioseq and its instance data (seq.asn).

// Bioseq is a single continuous biological sequence, nucleic acid or
// protein. It may be fully instantiated (data for every residue) or only
// partially known.
type Bioseq struct {
	// ID is the set of equivalent identifiers for this sequence.
	ID []*SeqID

	// Descr is the set of descriptors annotating the whole sequence.
	Descr []*Seqdesc

	// Inst is the instance: how the sequence data itself is represented.
	Inst *SeqInst
}

// Seqdesc is one descriptor attached to a Bioseq or Bioseq-set.
//
// The mol-type, modif, method and org arms are obsolete in the source
// schema, superseded by molinfo and source; they are still modeled because
// old records carry them.
type Seqdesc struct {
	MolType *GIBBMol
	Modif   []GIBBMod
	Method  *GIBBMethod

	// Name is a name for this sequence.
	Name *string

	// Title is a title for this sequence.
	Title *string

	Org *OrgRef

	// Comment is a more extensive comment.
	Comment *string

	// Num is a numbering system for this sequence.
	Num *Numbering

	// MapLoc is the map location of this sequence.
	MapLoc *DbTag

	Pir     *PIRBlock
	Genbank *GBBlock

	// Pub is a publication referring to this sequence.
	Pub *PubDesc

	// Region names an overall region (e.g. the globin locus).
	Region *string

	// User is a user-defined object.
	User *UserObject

	Sp     *SPBlock
	DbXref *DbTag
	Embl   *EMBLBlock

	// CreateDate is when the entry was first created/released.
	CreateDate *Date
	UpdateDate *Date

	Prf *PRFBlock
	Pdb *PDBBlock

	// Het names a cofactor or other associated, unbound heterogen.
	Het *string

	// Source describes the source of the material, including the organism.
	Source *BioSource

	// MolInfo describes the molecule and sequencing technique.
	MolInfo *MolInfo
}

func (d *Seqdesc) Arm() (string, error) {
	var p armPick
	p.add("mol-type", d.MolType != nil)
	p.add("modif", d.Modif != nil)
	p.add("method", d.Method != nil)
	p.add("name", d.Name != nil)
	p.add("title", d.Title != nil)
	p.add("org", d.Org != nil)
	p.add("comment", d.Comment != nil)
	p.add("num", d.Num != nil)
	p.add("maploc", d.MapLoc != nil)
	p.add("pir", d.Pir != nil)
	p.add("genbank", d.Genbank != nil)
	p.add("pub", d.Pub != nil)
	p.add("region", d.Region != nil)
	p.add("user", d.User != nil)
	p.add("sp", d.Sp != nil)
	p.add("dbxref", d.DbXref != nil)
	p.add("embl", d.Embl != nil)
	p.add("create-date", d.CreateDate != nil)
	p.add("update-date", d.UpdateDate != nil)
	p.add("prf", d.Prf != nil)
	p.add("pdb", d.Pdb != nil)
	p.add("het", d.Het != nil)
	p.add("source", d.Source != nil)
	p.add("molinfo", d.MolInfo != nil)
	return p.pick("Seqdesc")
}

// GIBBMol is the obsolete GenInfo backbone molecule type.
type GIBBMol int64

const (
	GIBBMolUnknown GIBBMol = iota
	GIBBMolGenomic
	GIBBMolPreRNA
	GIBBMolMRNA
	GIBBMolRRNA
	GIBBMolTRNA
	GIBBMolSnRNA
	GIBBMolScRNA
	GIBBMolPeptide
	GIBBMolOtherGenetic
	GIBBMolGenomicMRNA
	GIBBMolOther GIBBMol = 255
)

var gibbMolEnum = defEnum("GIBB-mol", map[int64]string{
	0: "unknown", 1: "genomic", 2: "pre-mRNA", 3: "mRNA", 4: "rRNA", 5: "tRNA",
	6: "snRNA", 7: "scRNA", 8: "peptide", 9: "other-genetic", 10: "genomic-mRNA",
	255: "other",
})

func (m GIBBMol) String() string { return gibbMolEnum.str(int64(m)) }
func (m GIBBMol) Known() bool    { return gibbMolEnum.known(int64(m)) }

// GIBBMod is the obsolete GenInfo backbone modifier.
type GIBBMod int64

const (
	GIBBModDNA GIBBMod = iota
	GIBBModRNA
	GIBBModExtraChrom
	GIBBModPlasmid
	GIBBModMitochondrial
	GIBBModChloroplast
	GIBBModKinetoplast
	GIBBModCyanelle
	GIBBModSynthetic
	GIBBModRecombinant
	GIBBModPartial
	GIBBModComplete
	GIBBModMutagen
	GIBBModNatMut
	GIBBModTransposon
	GIBBModInsertionSeq
	GIBBModNoLeft
	GIBBModNoRight
	GIBBModMacronuclear
	GIBBModProviral
	GIBBModEST
	GIBBModSTS
	GIBBModSurvey
	GIBBModChromoplast
	GIBBModGeneMap
	GIBBModRestMap
	GIBBModPhysMap
	GIBBModOther GIBBMod = 255
)

var gibbModEnum = defEnum("GIBB-mod", map[int64]string{
	0: "dna", 1: "rna", 2: "extrachrom", 3: "plasmid", 4: "mitochondrial",
	5: "chloroplast", 6: "kinetoplast", 7: "cyanelle", 8: "synthetic",
	9: "recombinant", 10: "partial", 11: "complete", 12: "mutagen",
	13: "natmut", 14: "transposon", 15: "insertion-seq", 16: "no-left",
	17: "no-right", 18: "macronuclear", 19: "proviral", 20: "est", 21: "sts",
	22: "survey", 23: "chromoplast", 24: "genemap", 25: "restmap",
	26: "physmap", 255: "other",
})

func (m GIBBMod) String() string { return gibbModEnum.str(int64(m)) }
func (m GIBBMod) Known() bool    { return gibbModEnum.known(int64(m)) }

// GIBBMethod is the obsolete sequencing method descriptor.
type GIBBMethod int64

const (
	GIBBMethodConceptTrans GIBBMethod = iota + 1
	GIBBMethodSeqPept
	GIBBMethodBoth
	GIBBMethodSeqPeptOverlap
	GIBBMethodSeqPeptHomol
	GIBBMethodConceptTransA
	GIBBMethodOther GIBBMethod = 255
)

var gibbMethodEnum = defEnum("GIBB-method", map[int64]string{
	1: "concept-trans", 2: "seq-pept", 3: "both", 4: "seq-pept-overlap",
	5: "seq-pept-homol", 6: "concept-trans-a", 255: "other",
})

func (m GIBBMethod) String() string { return gibbMethodEnum.str(int64(m)) }
func (m GIBBMethod) Known() bool    { return gibbMethodEnum.known(int64(m)) }

// BioMol classifies the biomolecule for MolInfo.
type BioMol int64

const (
	BioMolUnknown BioMol = iota
	BioMolGenomic
	// BioMolPreRNA is precursor RNA of any sort.
	BioMolPreRNA
	BioMolMRNA
	BioMolRRNA
	BioMolTRNA
	BioMolSnRNA
	BioMolScRNA
	BioMolPeptide
	BioMolOtherGenetic
	// BioMolGenomicMRNA reports a mix of genomic DNA and cDNA sequence.
	BioMolGenomicMRNA
	// BioMolCRNA is a viral RNA genome copy intermediate.
	BioMolCRNA
	BioMolSnoRNA
	// BioMolTranscribedRNA is transcribed RNA outside the existing classes.
	BioMolTranscribedRNA
	BioMolNcRNA
	BioMolTmRNA
	BioMolOther BioMol = 255
)

var bioMolEnum = defEnum("MolInfo.biomol", map[int64]string{
	0: "unknown", 1: "genomic", 2: "pre-RNA", 3: "mRNA", 4: "rRNA", 5: "tRNA",
	6: "snRNA", 7: "scRNA", 8: "peptide", 9: "other-genetic",
	10: "genomic-mRNA", 11: "cRNA", 12: "snoRNA", 13: "transcribed-RNA",
	14: "ncRNA", 15: "tmRNA", 255: "other",
})

func (m BioMol) String() string { return bioMolEnum.str(int64(m)) }
func (m BioMol) Known() bool    { return bioMolEnum.known(int64(m)) }

// MolTech is the sequencing technique for MolInfo.
type MolTech int64

const (
	MolTechUnknown MolTech = iota
	MolTechStandard
	MolTechEST
	MolTechSTS
	MolTechSurvey
	MolTechGeneMap
	MolTechPhysMap
	MolTechDerived
	MolTechConceptTrans
	MolTechSeqPept
	MolTechBoth
	MolTechSeqPeptOverlap
	MolTechSeqPeptHomol
	MolTechConceptTransA
	MolTechHTGS1
	MolTechHTGS2
	MolTechHTGS3
	MolTechFliCDNA
	MolTechHTGS0
	MolTechHTC
	MolTechWGS
	MolTechBarcode
	MolTechCompositeWGSHTGS
	MolTechTSA
	MolTechTargeted
	MolTechOther MolTech = 255
)

var molTechEnum = defEnum("MolInfo.tech", map[int64]string{
	0: "unknown", 1: "standard", 2: "est", 3: "sts", 4: "survey",
	5: "genemap", 6: "physmap", 7: "derived", 8: "concept-trans",
	9: "seq-pept", 10: "both", 11: "seq-pept-overlap", 12: "seq-pept-homol",
	13: "concept-trans-a", 14: "htgs-1", 15: "htgs-2", 16: "htgs-3",
	17: "fli-cdna", 18: "htgs-0", 19: "htc", 20: "wgs", 21: "barcode",
	22: "composite-wgs-htgs", 23: "tsa", 24: "targeted", 255: "other",
})

func (t MolTech) String() string { return molTechEnum.str(int64(t)) }
func (t MolTech) Known() bool    { return molTechEnum.known(int64(t)) }

// MolCompleteness captures sequence completeness. Most records omit it;
// genome sequences should be assumed incomplete unless marked complete.
type MolCompleteness int64

const (
	MolCompletenessUnknown MolCompleteness = iota
	MolCompletenessComplete
	MolCompletenessPartial
	MolCompletenessNoLeft
	MolCompletenessNoRight
	MolCompletenessNoEnds
	MolCompletenessHasLeft
	MolCompletenessHasRight
	MolCompletenessOther MolCompleteness = 255
)

var molCompletenessEnum = defEnum("MolInfo.completeness", map[int64]string{
	0: "unknown", 1: "complete", 2: "partial", 3: "no-left", 4: "no-right",
	5: "no-ends", 6: "has-left", 7: "has-right", 255: "other",
})

func (c MolCompleteness) String() string { return molCompletenessEnum.str(int64(c)) }
func (c MolCompleteness) Known() bool    { return molCompletenessEnum.known(int64(c)) }

// MolInfo describes the molecule and the techniques used to sequence it.
type MolInfo struct {
	BioMol BioMol
	Tech   MolTech

	// TechExp explains the technique when Tech alone is not enough.
	TechExp *string

	Completeness MolCompleteness
	GBMolType    *string
}

// Numbering is a display numbering system for a sequence.
type Numbering struct {
	// Cont is continuous numbering.
	Cont *NumCont

	// Enum names residues individually.
	Enum *NumEnum

	// Ref numbers by reference to another sequence.
	Ref *NumRef

	// Real maps to a floating point system.
	Real *NumReal
}

func (n *Numbering) Arm() (string, error) {
	var p armPick
	p.add("cont", n.Cont != nil)
	p.add("enum", n.Enum != nil)
	p.add("ref", n.Ref != nil)
	p.add("real", n.Real != nil)
	return p.pick("Numbering")
}

// NumCont is a continuous numbering system.
type NumCont struct {
	// RefNum is the number assigned to the first residue.
	RefNum *int64

	HasZero   *bool
	Ascending *bool
}

// NumEnum enumerates a name per residue.
type NumEnum struct {
	// Num is the declared count of names.
	Num   int64
	Names []string
}

// NumRefType selects how a reference numbering is derived.
type NumRefType int64

const (
	NumRefTypeNotSet NumRefType = iota
	// NumRefTypeSources numbers by segmented or constructed seq sources.
	NumRefTypeSources
	// NumRefTypeAligns numbers by alignments.
	NumRefTypeAligns
)

var numRefTypeEnum = defEnum("Num-ref.type", map[int64]string{
	0: "not-set", 1: "sources", 2: "aligns",
})

func (t NumRefType) String() string { return numRefTypeEnum.str(int64(t)) }
func (t NumRefType) Known() bool    { return numRefTypeEnum.known(int64(t)) }

// NumRef numbers by reference to other sequences. The alignment payload of
// the aligns form is outside the modeled subset and is skipped on decode.
type NumRef struct {
	Type NumRefType
}

// NumReal maps the integer system to floats: position = A*int_position + B.
type NumReal struct {
	A     float64
	B     float64
	Units *string
}

// PubDescRefType states what a publication descriptor refers to.
type PubDescRefType int64

const (
	// PubDescRefTypeSeq refers to the sequence.
	PubDescRefTypeSeq PubDescRefType = iota
	// PubDescRefTypeSites refers to unspecified features.
	PubDescRefTypeSites
	// PubDescRefTypeFeats refers to specified features.
	PubDescRefTypeFeats
	// PubDescRefTypeNoTarget specifies nothing (EMBL).
	PubDescRefTypeNoTarget
)

var pubDescRefTypeEnum = defEnum("Pubdesc.reftype", map[int64]string{
	0: "seq", 1: "sites", 2: "feats", 3: "no-target",
})

func (t PubDescRefType) String() string { return pubDescRefTypeEnum.str(int64(t)) }
func (t PubDescRefType) Known() bool    { return pubDescRefTypeEnum.known(int64(t)) }

// PubDesc is a publication descriptor: the citation plus how the paper
// relates to this sequence.
type PubDesc struct {
	Pub  []*Pub
	Name *string
	Fig  *string

	// Num carries the numbering from the paper.
	Num *Numbering

	// NumExc flags a numbering problem with the paper.
	NumExc *bool

	// PolyA reports a poly-A tail indicated in the figure.
	PolyA *bool

	// MapLoc is the map location reported in the paper.
	MapLoc *string

	// SeqRaw is the original sequence from the paper.
	SeqRaw *string

	// AlignGroup groups sequences aligned together in the paper.
	AlignGroup *int64

	Comment *string
	RefType PubDescRefType
}

// Repr is the representation class of a SeqInst: which data structure
// carries the knowledge about the molecule, from virtual placeholders to
// raw residues to delta assemblies.
type Repr int64

const (
	ReprNotSet Repr = iota
	// ReprVirtual has molecule information but no sequence data.
	ReprVirtual
	// ReprRaw is a traditional continuous sequence with data present.
	ReprRaw
	// ReprSeg exists through ordered references to other Bioseqs.
	ReprSeg
	// ReprConst describes an assembly or merge of other Bioseqs.
	ReprConst
	// ReprRef is a view on another sequence.
	ReprRef
	// ReprConsen is a consensus sequence or pattern.
	ReprConsen
	// ReprMap is an ordered map of any kind.
	ReprMap
	// ReprDelta is built from changes against other sequences.
	ReprDelta
	ReprOther Repr = 255
)

var reprEnum = defEnum("Seq-inst.repr", map[int64]string{
	0: "not-set", 1: "virtual", 2: "raw", 3: "seg", 4: "const", 5: "ref",
	6: "consen", 7: "map", 8: "delta", 255: "other",
})

func (r Repr) String() string { return reprEnum.str(int64(r)) }
func (r Repr) Known() bool    { return reprEnum.known(int64(r)) }

// Mol is the molecule class in the living organism. cDNA counts as RNA.
type Mol int64

const (
	MolNotSet Mol = iota
	MolDNA
	MolRNA
	MolAA
	// MolNA is just a nucleic acid.
	MolNA
	MolOther Mol = 255
)

var molEnum = defEnum("Seq-inst.mol", map[int64]string{
	0: "not-set", 1: "dna", 2: "rna", 3: "aa", 4: "na", 255: "other",
})

func (m Mol) String() string { return molEnum.str(int64(m)) }
func (m Mol) Known() bool    { return molEnum.known(int64(m)) }

// Topology is the topology of the biomolecule.
type Topology int64

const (
	TopologyNotSet Topology = iota
	TopologyLinear
	TopologyCircular
	TopologyTandem
	TopologyOther Topology = 255
)

var topologyEnum = defEnum("Seq-inst.topology", map[int64]string{
	0: "not-set", 1: "linear", 2: "circular", 3: "tandem", 255: "other",
})

func (t Topology) String() string { return topologyEnum.str(int64(t)) }
func (t Topology) Known() bool    { return topologyEnum.known(int64(t)) }

// Strand is strandedness in the living organism.
type Strand int64

const (
	StrandNotSet Strand = iota
	StrandSS
	StrandDS
	StrandMixed
	StrandOther Strand = 255
)

var strandEnum = defEnum("Seq-inst.strand", map[int64]string{
	0: "not-set", 1: "ss", 2: "ds", 3: "mixed", 255: "other",
})

func (s Strand) String() string { return strandEnum.str(int64(s)) }
func (s Strand) Known() bool    { return strandEnum.known(int64(s)) }

// SeqInst is the instance of a sequence: representation class, molecule
// class, length and (depending on the representation) the residues
// themselves or the extension describing where they come from.
type SeqInst struct {
	Repr Repr
	Mol  Mol

	// Length is the length in residues. Mandatory whenever the
	// representation implies concrete extent (everything but virtual).
	Length *int64

	// Fuzz is the uncertainty of Length.
	Fuzz *IntFuzz

	Topology Topology
	Strand   Strand

	// SeqData are the residues for raw/const representations.
	SeqData *SeqData

	// Ext carries the representation-specific extension (seg/ref/delta).
	Ext *SeqExt

	// Hist records how this sequence replaces or was replaced by others.
	Hist *SeqHist
}

// SeqData holds residues in one of the NCBI alphabets.
type SeqData struct {
	// IUPACna is IUPAC 1-letter nucleic acid code, no spaces.
	IUPACna *string

	// IUPACaa is IUPAC 1-letter amino acid code, no spaces.
	IUPACaa *string

	// NCBI2na packs 4 bases per byte: 00=A, 01=C, 10=G, 11=T.
	NCBI2na []byte

	// NCBI4na packs 2 bases per byte, one bit per AGCT so ambiguity codes
	// are bit unions.
	NCBI4na []byte

	// NCBI8na is one byte per base, for modified nucleic acids.
	NCBI8na []byte

	// NCBIpna is 5 octets per base: probabilities for a,c,g,t,n coded
	// 0-255.
	NCBIpna []byte

	// NCBI8aa is one byte per residue, for modified amino acids.
	NCBI8aa []byte

	// NCBIeaa is extended ASCII 1-letter amino acid codes
	// (IUPAC + U for selenocysteine).
	NCBIeaa *string

	// NCBIpaa is 25 octets per residue of amino acid probabilities.
	NCBIpaa []byte

	// NCBIstdaa is one code 0-25 per byte.
	NCBIstdaa []byte

	// Gap describes a gap instead of residues.
	Gap *SeqGap
}

func (s *SeqData) Arm() (string, error) {
	var p armPick
	p.add("iupacna", s.IUPACna != nil)
	p.add("iupacaa", s.IUPACaa != nil)
	p.add("ncbi2na", s.NCBI2na != nil)
	p.add("ncbi4na", s.NCBI4na != nil)
	p.add("ncbi8na", s.NCBI8na != nil)
	p.add("ncbipna", s.NCBIpna != nil)
	p.add("ncbi8aa", s.NCBI8aa != nil)
	p.add("ncbieaa", s.NCBIeaa != nil)
	p.add("ncbipaa", s.NCBIpaa != nil)
	p.add("ncbistdaa", s.NCBIstdaa != nil)
	p.add("gap", s.Gap != nil)
	return p.pick("Seq-data")
}

// residueCount reports how many residues the populated arm holds exactly,
// or the inclusive range it can hold for the packed alphabets. ok is false
// for arms whose length cannot be derived from the payload (gap,
// probability alphabets).
func (s *SeqData) residueCount() (min, max int64, ok bool) {
	switch {
	case s.IUPACna != nil:
		n := int64(len(*s.IUPACna))
		return n, n, true
	case s.IUPACaa != nil:
		n := int64(len(*s.IUPACaa))
		return n, n, true
	case s.NCBIeaa != nil:
		n := int64(len(*s.NCBIeaa))
		return n, n, true
	case s.NCBI2na != nil:
		n := int64(len(s.NCBI2na))
		if n == 0 {
			return 0, 0, true
		}
		return (n-1)*4 + 1, n * 4, true
	case s.NCBI4na != nil:
		n := int64(len(s.NCBI4na))
		if n == 0 {
			return 0, 0, true
		}
		return (n-1)*2 + 1, n * 2, true
	case s.NCBI8na != nil:
		n := int64(len(s.NCBI8na))
		return n, n, true
	case s.NCBI8aa != nil:
		n := int64(len(s.NCBI8aa))
		return n, n, true
	case s.NCBIstdaa != nil:
		n := int64(len(s.NCBIstdaa))
		return n, n, true
	}
	return 0, 0, false
}

// SeqGapType classifies a gap.
type SeqGapType int64

const (
	SeqGapTypeUnknown SeqGapType = iota
	// SeqGapTypeFragment was used only for AGP 1.1.
	SeqGapTypeFragment
	// SeqGapTypeClone was used only for AGP 1.1.
	SeqGapTypeClone
	SeqGapTypeShortArm
	SeqGapTypeHeterochromatin
	SeqGapTypeCentromere
	SeqGapTypeTelomere
	SeqGapTypeRepeat
	SeqGapTypeContig
	SeqGapTypeScaffold
	SeqGapTypeContamination
	SeqGapTypeOther SeqGapType = 255
)

var seqGapTypeEnum = defEnum("Seq-gap.type", map[int64]string{
	0: "unknown", 1: "fragment", 2: "clone", 3: "short-arm",
	4: "heterochromatin", 5: "centromere", 6: "telomere", 7: "repeat",
	8: "contig", 9: "scaffold", 10: "contamination", 255: "other",
})

func (t SeqGapType) String() string { return seqGapTypeEnum.str(int64(t)) }
func (t SeqGapType) Known() bool    { return seqGapTypeEnum.known(int64(t)) }

// SeqGapLinkage states whether a gap is spanned by linked evidence.
type SeqGapLinkage int64

const (
	SeqGapUnlinked SeqGapLinkage = iota
	SeqGapLinked
	SeqGapLinkageOther SeqGapLinkage = 255
)

var seqGapLinkageEnum = defEnum("Seq-gap.linkage", map[int64]string{
	0: "unlinked", 1: "linked", 255: "other",
})

func (l SeqGapLinkage) String() string { return seqGapLinkageEnum.str(int64(l)) }
func (l SeqGapLinkage) Known() bool    { return seqGapLinkageEnum.known(int64(l)) }

// LinkageEvidenceType is the kind of evidence that spans a linked gap.
type LinkageEvidenceType int64

const (
	LinkageEvidencePairedEnds LinkageEvidenceType = iota
	LinkageEvidenceAlignGenus
	LinkageEvidenceAlignXGenus
	LinkageEvidenceAlignTrans
	LinkageEvidenceWithinClone
	LinkageEvidenceCloneContig
	LinkageEvidenceMap
	LinkageEvidenceStrobe
	LinkageEvidenceUnspecified
	LinkageEvidencePCR
	LinkageEvidenceProximityLigation
	LinkageEvidenceOther LinkageEvidenceType = 255
)

var linkageEvidenceEnum = defEnum("Linkage-evidence.type", map[int64]string{
	0: "paired-ends", 1: "align-genus", 2: "align-xgenus", 3: "align-trans",
	4: "within-clone", 5: "clone-contig", 6: "map", 7: "strobe",
	8: "unspecified", 9: "pcr", 10: "proximity-ligation", 255: "other",
})

func (t LinkageEvidenceType) String() string { return linkageEvidenceEnum.str(int64(t)) }
func (t LinkageEvidenceType) Known() bool    { return linkageEvidenceEnum.known(int64(t)) }

// LinkageEvidence is one piece of evidence for a linked gap.
type LinkageEvidence struct {
	Type LinkageEvidenceType
}

// SeqGap stands in for residues across a gap.
type SeqGap struct {
	Type            SeqGapType
	Linkage         *SeqGapLinkage
	LinkageEvidence []*LinkageEvidence
}

// SeqExt is the extension for the non-raw representations.
type SeqExt struct {
	// Seg is the ordered series of locations a segmented sequence is
	// built from.
	Seg []*SeqLoc

	// Ref is a hot link to another sequence (a view).
	Ref *SeqLoc

	// Delta builds the sequence from location and literal pieces.
	Delta []*DeltaSeq
}

func (e *SeqExt) Arm() (string, error) {
	var p armPick
	p.add("seg", e.Seg != nil)
	p.add("ref", e.Ref != nil)
	p.add("delta", e.Delta != nil)
	return p.pick("Seq-ext")
}

// DeltaSeq is one piece of a delta extension.
type DeltaSeq struct {
	// Loc points into another sequence.
	Loc *SeqLoc

	// Literal is a piece of sequence given directly.
	Literal *SeqLiteral
}

func (d *DeltaSeq) Arm() (string, error) {
	var p armPick
	p.add("loc", d.Loc != nil)
	p.add("literal", d.Literal != nil)
	return p.pick("Delta-seq")
}

// SeqLiteral is directly given sequence of a stated length; the data may be
// absent (a gap of known extent).
type SeqLiteral struct {
	Length  int64
	Fuzz    *IntFuzz
	SeqData *SeqData
}

// SeqHist records the assembly/replacement history of a sequence. The
// assembly alignments themselves fall outside the modeled subset and are
// skipped on decode.
type SeqHist struct {
	Replaces   *SeqHistRec
	ReplacedBy *SeqHistRec
	Deleted    *SeqHistDeleted
}

// SeqHistRec names the sequences on the other side of a replacement.
type SeqHistRec struct {
	Date *Date
	IDs  []*SeqID
}

// SeqHistDeleted marks deletion either as a bare flag or with the date.
type SeqHistDeleted struct {
	Bool *bool
	Date *Date
}

func (d *SeqHistDeleted) Arm() (string, error) {
	var p armPick
	p.add("bool", d.Bool != nil)
	p.add("date", d.Date != nil)
	return p.pick("Seq-hist.deleted")
}
