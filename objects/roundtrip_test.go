package objects

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// nucProtEntry builds a nuc-prot set of the shape pipelines most often
// produce: set-level title, source and publication descriptors, an mRNA
// with a GenBank block and replacement history, and the coded protein.
func nucProtEntry() *SeqEntry {
	source := &BioSource{
		Genome: GenomeGenomic,
		Org: &OrgRef{
			Taxname: strp("Homo sapiens"),
			Common:  strp("human"),
			Db: []*DbTag{
				{Db: "taxon", Tag: &ObjectID{ID: intp(9606)}},
			},
			OrgName: &OrgName{
				Name: &OrgNameChoice{
					Binomial: &BinomialOrgName{
						Genus:   "Homo",
						Species: strp("sapiens"),
					},
				},
				Lineage: strp("Eukaryota; Metazoa; Chordata; Mammalia; Primates"),
				Gcode:   intp(1),
				Div:     strp("PRI"),
			},
		},
		Subtype: []*SubSource{
			{SubType: SubSourceChromosome, Name: "7"},
			{SubType: SubSourceMap, Name: "7q31.2"},
		},
	}

	citation := &PubDesc{
		Pub: []*Pub{
			{
				Gen: &CitGen{
					Cit: strp("Unpublished"),
					Authors: &AuthList{
						Names: &AuthListNames{
							Std: []*Author{
								{Name: &PersonID{Name: &NameStd{
									Last:     "Mercer",
									Initials: strp("J.A."),
								}}},
								{Name: &PersonID{Name: &NameStd{
									Last:     "Seperack",
									Initials: strp("P.K."),
								}}},
							},
						},
					},
					Date:  &Date{Std: &DateStd{Year: 1994, Month: intp(3)}},
					Title: strp("Novel myosin heavy chain encoded by murine dilute"),
				},
			},
			{PmID: intp(1715094)},
		},
	}

	nuc := &Bioseq{
		ID: []*SeqID{
			{Genbank: &TextseqID{Accession: strp("U12345"), Version: intp(1)}},
			{Gi: intp(890123)},
		},
		Descr: []*Seqdesc{
			{MolInfo: &MolInfo{BioMol: BioMolMRNA, Tech: MolTechStandard}},
			{Genbank: &GBBlock{
				Source:   strp("Homo sapiens mRNA"),
				Keywords: []string{"CFTR", "chloride channel"},
				Div:      strp("PRI"),
			}},
			{CreateDate: &Date{Std: &DateStd{Year: 1994, Month: intp(3), Day: intp(17)}}},
		},
		Inst: &SeqInst{
			Repr:    ReprRaw,
			Mol:     MolRNA,
			Length:  intp(20),
			SeqData: &SeqData{IUPACna: strp("ACGTACGTACGTACGTACGT")},
			Hist: &SeqHist{
				ReplacedBy: &SeqHistRec{
					Date: &Date{Std: &DateStd{Year: 1995}},
					IDs:  []*SeqID{{Gi: intp(999001)}},
				},
			},
		},
	}

	prot := &Bioseq{
		ID: []*SeqID{
			{Local: &ObjectID{Str: strp("prot1")}},
		},
		Descr: []*Seqdesc{
			{Title: strp("cystic fibrosis transmembrane conductance regulator")},
			{MolInfo: &MolInfo{BioMol: BioMolPeptide}},
		},
		Inst: &SeqInst{
			Repr:    ReprRaw,
			Mol:     MolAA,
			Length:  intp(6),
			SeqData: &SeqData{NCBIeaa: strp("MKLVRT")},
		},
	}

	return NewSetEntry(&BioseqSet{
		Class: BioseqSetClassNucProt,
		Descr: []*Seqdesc{
			{Title: strp("Homo sapiens CFTR mRNA, complete cds")},
			{Source: source},
			{Pub: citation},
		},
		SeqSet: []*SeqEntry{
			NewSeqEntry(nuc),
			NewSeqEntry(prot),
		},
	})
}

func TestRoundTripNucProtSet(t *testing.T) {
	entry := nucProtEntry()

	out, err := EncodeBytes(entry)
	require.NoError(t, err)

	back, err := DecodeBytes(out)
	require.NoError(t, err)
	require.Equal(t, entry, back)
}

func TestRoundTripPackedAndDelta(t *testing.T) {
	entry := NewSeqEntry(&Bioseq{
		ID: []*SeqID{
			{Other: &TextseqID{Accession: strp("NT_000001"), Version: intp(2)}},
		},
		Inst: &SeqInst{
			Repr:     ReprDelta,
			Mol:      MolDNA,
			Length:   intp(58),
			Topology: TopologyLinear,
			Ext: &SeqExt{
				Delta: []*DeltaSeq{
					{Loc: &SeqLoc{Int: &SeqInterval{
						From:   0,
						To:     39,
						Strand: naStrandp(NaStrandPlus),
						ID:     &SeqID{Gi: intp(4321)},
					}}},
					{Literal: &SeqLiteral{
						Length:  10,
						SeqData: &SeqData{NCBI2na: []byte{0x1B, 0xE4, 0x39}},
					}},
					{Literal: &SeqLiteral{Length: 8}},
				},
			},
		},
	})

	out, err := EncodeBytes(entry)
	require.NoError(t, err)

	back, err := DecodeBytes(out)
	require.NoError(t, err)
	require.Equal(t, entry, back)
}

func TestRoundTripSegmentedWithNull(t *testing.T) {
	entry := NewSeqEntry(&Bioseq{
		ID: []*SeqID{
			{Local: &ObjectID{Str: strp("seg1")}},
		},
		Inst: &SeqInst{
			Repr:   ReprSeg,
			Mol:    MolDNA,
			Length: intp(300),
			Ext: &SeqExt{
				Seg: []*SeqLoc{
					{Whole: &SeqID{Gi: intp(100)}},
					{Null: true},
					{Int: &SeqInterval{
						From:   10,
						To:     159,
						Strand: naStrandp(NaStrandMinus),
						ID:     &SeqID{Gi: intp(200)},
					}},
				},
			},
		},
	})

	out, err := EncodeBytes(entry)
	require.NoError(t, err)

	back, err := DecodeBytes(out)
	require.NoError(t, err)
	require.Equal(t, entry, back)
}

func naStrandp(s NaStrand) *NaStrand { return &s }
