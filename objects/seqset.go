package objects

// Collections of sequences (seqset.asn).

// BioseqSetClass states what a collection means: a nucleotide with its
// coded proteins, the parts of a segmented sequence, a population study and
// so on.
type BioseqSetClass int64

const (
	BioseqSetClassNotSet BioseqSetClass = iota
	// BioseqSetClassNucProt groups a nucleic acid and its coded proteins.
	BioseqSetClassNucProt
	// BioseqSetClassSegSet groups a segmented sequence and its parts.
	BioseqSetClassSegSet
	// BioseqSetClassConSet groups a constructed sequence and its parts.
	BioseqSetClassConSet
	// BioseqSetClassParts holds the parts for segset or conset.
	BioseqSetClassParts
	// BioseqSetClassGibb is GenInfo backbone.
	BioseqSetClassGibb
	// BioseqSetClassGi is GenInfo.
	BioseqSetClassGi
	BioseqSetClassGenbank
	BioseqSetClassPir
	// BioseqSetClassPubSet holds all the seqs from a single publication.
	BioseqSetClassPubSet
	// BioseqSetClassEquiv is a set of equivalent maps or seqs.
	BioseqSetClassEquiv
	BioseqSetClassSwissprot
	// BioseqSetClassPdbEntry is a complete PDB entry.
	BioseqSetClassPdbEntry
	BioseqSetClassMutSet
	BioseqSetClassPopSet
	BioseqSetClassPhySet
	BioseqSetClassEcoSet
	// BioseqSetClassGenProdSet holds genomic products: chrom+mRNA+protein.
	BioseqSetClassGenProdSet
	BioseqSetClassWgsSet
	BioseqSetClassNamedAnnot
	BioseqSetClassNamedAnnotProd
	BioseqSetClassReadSet
	BioseqSetClassPairedEndReads
	// BioseqSetClassSmallGenomeSet holds viral segments or mitochondrial
	// mini-circles.
	BioseqSetClassSmallGenomeSet
	BioseqSetClassOther BioseqSetClass = 255
)

var bioseqSetClassEnum = defEnum("Bioseq-set.class", map[int64]string{
	0: "not-set", 1: "nuc-prot", 2: "segset", 3: "conset", 4: "parts",
	5: "gibb", 6: "gi", 7: "genbank", 8: "pir", 9: "pub-set", 10: "equiv",
	11: "swissprot", 12: "pdb-entry", 13: "mut-set", 14: "pop-set",
	15: "phy-set", 16: "eco-set", 17: "gen-prod-set", 18: "wgs-set",
	19: "named-annot", 20: "named-annot-prod", 21: "read-set",
	22: "paired-end-reads", 23: "small-genome-set", 255: "other",
})

func (c BioseqSetClass) String() string { return bioseqSetClassEnum.str(int64(c)) }
func (c BioseqSetClass) Known() bool    { return bioseqSetClassEnum.known(int64(c)) }

// BioseqSet is a collection of Seq-entry nodes sharing a classification.
type BioseqSet struct {
	ID *ObjectID

	// Coll identifies the collection.
	Coll *DbTag

	// Level is the nesting level.
	Level *int64

	Class   BioseqSetClass
	Release *string
	Date    *Date
	Descr   []*Seqdesc

	// SeqSet is the ordered set of children.
	SeqSet []*SeqEntry
}

// SeqEntry is the recursive tree node of the data model: either a single
// Bioseq or a whole Bioseq-set.
type SeqEntry struct {
	Seq *Bioseq
	Set *BioseqSet
}

func (e *SeqEntry) Arm() (string, error) {
	var p armPick
	p.add("seq", e.Seq != nil)
	p.add("set", e.Set != nil)
	return p.pick("Seq-entry")
}

// NewSeqEntry wraps a single Bioseq.
func NewSeqEntry(seq *Bioseq) *SeqEntry { return &SeqEntry{Seq: seq} }

// NewSetEntry wraps a Bioseq-set.
func NewSetEntry(set *BioseqSet) *SeqEntry { return &SeqEntry{Set: set} }
