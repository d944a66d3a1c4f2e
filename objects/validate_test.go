package objects

import (
	"errors"
	"strings"
	"testing"
)

func strp(s string) *string { return &s }
func intp(v int64) *int64   { return &v }

// rawBioseq builds a minimal valid raw nucleotide Bioseq.
func rawBioseq(id string, residues string) *Bioseq {
	return &Bioseq{
		ID: []*SeqID{{Local: &ObjectID{Str: strp(id)}}},
		Inst: &SeqInst{
			Repr:    ReprRaw,
			Mol:     MolDNA,
			Length:  intp(int64(len(residues))),
			SeqData: &SeqData{IUPACna: strp(residues)},
		},
	}
}

func wantSchemaError(t *testing.T, err error, pathPart, msgPart string) {
	t.Helper()
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v (%T), want *SchemaError", err, err)
	}
	if pathPart != "" && !strings.Contains(se.Path, pathPart) {
		t.Errorf("SchemaError.Path = %q, want it to contain %q", se.Path, pathPart)
	}
	if msgPart != "" && !strings.Contains(se.Msg, msgPart) {
		t.Errorf("SchemaError.Msg = %q, want it to contain %q", se.Msg, msgPart)
	}
}

func TestValidateMinimalEntry(t *testing.T) {
	entry := NewSeqEntry(rawBioseq("seq1", "ACGT"))
	if err := Validate(entry); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateNilEntry(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Fatal("Validate(nil) = nil, want error")
	}
}

func TestValidateEntryChoice(t *testing.T) {
	err := Validate(&SeqEntry{})
	wantSchemaError(t, err, "Seq-entry", "no populated arm")

	err = Validate(&SeqEntry{Seq: rawBioseq("a", "A"), Set: &BioseqSet{}})
	wantSchemaError(t, err, "Seq-entry", "2 populated arms")
}

func TestValidateBioseqNeedsID(t *testing.T) {
	seq := rawBioseq("x", "ACGT")
	seq.ID = nil
	err := Validate(NewSeqEntry(seq))
	wantSchemaError(t, err, "Bioseq", "no ids")
}

func TestValidateBioseqNeedsInst(t *testing.T) {
	seq := rawBioseq("x", "ACGT")
	seq.Inst = nil
	err := Validate(NewSeqEntry(seq))
	wantSchemaError(t, err, "Bioseq", "no instance")
}

func TestValidateSetNeedsMembers(t *testing.T) {
	err := Validate(NewSetEntry(&BioseqSet{Class: BioseqSetClassNucProt}))
	wantSchemaError(t, err, "Bioseq-set", "no members")
}

func TestValidateLength(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SeqInst)
		path   string
		msg    string
	}{
		{
			name:   "raw_requires_length",
			mutate: func(i *SeqInst) { i.Length = nil },
			path:   "Seq-inst",
			msg:    "requires a length",
		},
		{
			name:   "length_disagrees_with_residues",
			mutate: func(i *SeqInst) { i.Length = intp(5) },
			path:   "Seq-data",
			msg:    "declared length 5 but data holds 4 residues",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := rawBioseq("x", "ACGT")
			tt.mutate(seq.Inst)
			err := Validate(NewSeqEntry(seq))
			wantSchemaError(t, err, tt.path, tt.msg)
		})
	}
}

func TestValidateVirtualNeedsNoLength(t *testing.T) {
	entry := NewSeqEntry(&Bioseq{
		ID:   []*SeqID{{Local: &ObjectID{Str: strp("v")}}},
		Inst: &SeqInst{Repr: ReprVirtual, Mol: MolDNA},
	})
	if err := Validate(entry); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidatePackedLengthRange(t *testing.T) {
	// One NCBI2na byte holds 1 to 4 bases.
	seq := rawBioseq("p", "")
	seq.Inst.SeqData = &SeqData{NCBI2na: []byte{0x1b}}

	seq.Inst.Length = intp(3)
	if err := Validate(NewSeqEntry(seq)); err != nil {
		t.Fatalf("Validate(len 3) = %v, want nil", err)
	}

	seq.Inst.Length = intp(5)
	err := Validate(NewSeqEntry(seq))
	wantSchemaError(t, err, "Seq-data", "1 to 4 residues")
}

func TestValidateSeqDataChoice(t *testing.T) {
	seq := rawBioseq("x", "ACGT")
	seq.Inst.SeqData.NCBIeaa = strp("ACGT")
	err := Validate(NewSeqEntry(seq))
	wantSchemaError(t, err, "Seq-data", "2 populated arms")
}

func TestValidateInterval(t *testing.T) {
	id := &SeqID{Local: &ObjectID{Str: strp("x")}}
	seq := &Bioseq{
		ID: []*SeqID{id},
		Inst: &SeqInst{
			Repr:   ReprSeg,
			Mol:    MolDNA,
			Length: intp(100),
			Ext: &SeqExt{Seg: []*SeqLoc{
				{Int: &SeqInterval{From: 10, To: 3, ID: id}},
			}},
		},
	}
	err := Validate(NewSeqEntry(seq))
	wantSchemaError(t, err, "Seq-interval", "runs backwards")

	seq.Inst.Ext.Seg[0].Int = &SeqInterval{From: 3, To: 10}
	err = Validate(NewSeqEntry(seq))
	wantSchemaError(t, err, "Seq-interval", "no id")
}

func TestValidateDbtag(t *testing.T) {
	seq := rawBioseq("x", "ACGT")
	seq.ID = []*SeqID{{General: &DbTag{Db: "taxon"}}}
	err := Validate(NewSeqEntry(seq))
	wantSchemaError(t, err, "Dbtag", "no tag")
}

func TestValidatePubdescNeedsCitation(t *testing.T) {
	seq := rawBioseq("x", "ACGT")
	seq.Descr = []*Seqdesc{{Pub: &PubDesc{}}}
	err := Validate(NewSeqEntry(seq))
	wantSchemaError(t, err, "Pubdesc", "no citations")
}

func TestValidateBioSourceNeedsOrg(t *testing.T) {
	seq := rawBioseq("x", "ACGT")
	seq.Descr = []*Seqdesc{{Source: &BioSource{}}}
	err := Validate(NewSeqEntry(seq))
	wantSchemaError(t, err, "BioSource", "no organism")
}

func TestValidateDepthLimit(t *testing.T) {
	// Nest sets until the walk would blow past a small bound.
	entry := NewSeqEntry(rawBioseq("leaf", "A"))
	for i := 0; i < 10; i++ {
		entry = NewSetEntry(&BioseqSet{SeqSet: []*SeqEntry{entry}})
	}
	if err := Validate(entry); err != nil {
		t.Fatalf("Validate(default depth) = %v, want nil", err)
	}
	err := Validate(entry, WithMaxDepth(5))
	wantSchemaError(t, err, "", "depth limit")
}
