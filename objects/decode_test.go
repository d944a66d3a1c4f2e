package objects

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

const nucProtDoc = `<?xml version="1.0"?>
<Seq-entry>
  <Seq-entry_set>
    <Bioseq-set>
      <Bioseq-set_class value="nuc-prot">1</Bioseq-set_class>
      <Bioseq-set_descr>
        <Seq-descr>
          <Seqdesc>
            <Seqdesc_title>tRNA ligase and its coding region</Seqdesc_title>
          </Seqdesc>
        </Seq-descr>
      </Bioseq-set_descr>
      <Bioseq-set_seq-set>
        <Seq-entry>
          <Seq-entry_seq>
            <Bioseq>
              <Bioseq_id>
                <Seq-id>
                  <Seq-id_genbank>
                    <Textseq-id>
                      <Textseq-id_accession>U12345</Textseq-id_accession>
                      <Textseq-id_version>1</Textseq-id_version>
                    </Textseq-id>
                  </Seq-id_genbank>
                </Seq-id>
              </Bioseq_id>
              <Bioseq_descr>
                <Seq-descr>
                  <Seqdesc>
                    <Seqdesc_molinfo>
                      <MolInfo>
                        <MolInfo_biomol value="mRNA">3</MolInfo_biomol>
                      </MolInfo>
                    </Seqdesc_molinfo>
                  </Seqdesc>
                </Seq-descr>
              </Bioseq_descr>
              <Bioseq_inst>
                <Seq-inst>
                  <Seq-inst_repr value="raw">2</Seq-inst_repr>
                  <Seq-inst_mol value="rna">2</Seq-inst_mol>
                  <Seq-inst_length>20</Seq-inst_length>
                  <Seq-inst_seq-data>
                    <Seq-data>
                      <Seq-data_iupacna>
                        <IUPACna>ACGTACGTACGTACGTACGT</IUPACna>
                      </Seq-data_iupacna>
                    </Seq-data>
                  </Seq-inst_seq-data>
                </Seq-inst>
              </Bioseq_inst>
            </Bioseq>
          </Seq-entry_seq>
        </Seq-entry>
        <Seq-entry>
          <Seq-entry_seq>
            <Bioseq>
              <Bioseq_id>
                <Seq-id>
                  <Seq-id_local>
                    <Object-id>
                      <Object-id_str>prot1</Object-id_str>
                    </Object-id>
                  </Seq-id_local>
                </Seq-id>
              </Bioseq_id>
              <Bioseq_inst>
                <Seq-inst>
                  <Seq-inst_repr value="raw">2</Seq-inst_repr>
                  <Seq-inst_mol value="aa">3</Seq-inst_mol>
                  <Seq-inst_length>6</Seq-inst_length>
                  <Seq-inst_seq-data>
                    <Seq-data>
                      <Seq-data_ncbieaa>
                        <NCBIeaa>MKLVRT</NCBIeaa>
                      </Seq-data_ncbieaa>
                    </Seq-data>
                  </Seq-inst_seq-data>
                </Seq-inst>
              </Bioseq_inst>
            </Bioseq>
          </Seq-entry_seq>
        </Seq-entry>
      </Bioseq-set_seq-set>
    </Bioseq-set>
  </Seq-entry_set>
</Seq-entry>`

func TestDecodeNucProtSet(t *testing.T) {
	entry, err := DecodeBytes([]byte(nucProtDoc))
	require.NoError(t, err)
	require.NotNil(t, entry.Set)

	set := entry.Set
	require.Equal(t, BioseqSetClassNucProt, set.Class)
	require.Len(t, set.Descr, 1)
	require.NotNil(t, set.Descr[0].Title)
	require.Equal(t, "tRNA ligase and its coding region", *set.Descr[0].Title)
	require.Len(t, set.SeqSet, 2)

	nuc := set.SeqSet[0].Seq
	require.NotNil(t, nuc)
	require.Len(t, nuc.ID, 1)
	require.NotNil(t, nuc.ID[0].Genbank)
	require.Equal(t, "U12345", *nuc.ID[0].Genbank.Accession)
	require.Equal(t, int64(1), *nuc.ID[0].Genbank.Version)
	require.Len(t, nuc.Descr, 1)
	require.NotNil(t, nuc.Descr[0].MolInfo)
	require.Equal(t, BioMolMRNA, nuc.Descr[0].MolInfo.BioMol)
	require.Equal(t, ReprRaw, nuc.Inst.Repr)
	require.Equal(t, MolRNA, nuc.Inst.Mol)
	require.Equal(t, int64(20), *nuc.Inst.Length)
	require.Equal(t, "ACGTACGTACGTACGTACGT", *nuc.Inst.SeqData.IUPACna)

	prot := set.SeqSet[1].Seq
	require.NotNil(t, prot)
	require.Equal(t, "prot1", *prot.ID[0].Local.Str)
	require.Equal(t, MolAA, prot.Inst.Mol)
	require.Equal(t, "MKLVRT", *prot.Inst.SeqData.NCBIeaa)
}

func TestDecodeBareRoots(t *testing.T) {
	t.Run("bioseq", func(t *testing.T) {
		doc := `<Bioseq>
  <Bioseq_id><Seq-id><Seq-id_local><Object-id><Object-id_str>x</Object-id_str></Object-id></Seq-id_local></Seq-id></Bioseq_id>
  <Bioseq_inst><Seq-inst>
    <Seq-inst_repr value="raw">2</Seq-inst_repr>
    <Seq-inst_length>4</Seq-inst_length>
    <Seq-inst_seq-data><Seq-data><Seq-data_iupacna><IUPACna>ACGT</IUPACna></Seq-data_iupacna></Seq-data></Seq-inst_seq-data>
  </Seq-inst></Bioseq_inst>
</Bioseq>`
		entry, err := DecodeBytes([]byte(doc))
		require.NoError(t, err)
		require.NotNil(t, entry.Seq)
		require.Nil(t, entry.Set)
	})

	t.Run("bioseq_set", func(t *testing.T) {
		start := strings.Index(nucProtDoc, "<Bioseq-set>")
		end := strings.LastIndex(nucProtDoc, "</Bioseq-set>") + len("</Bioseq-set>")
		entry, err := DecodeBytes([]byte(nucProtDoc[start:end]))
		require.NoError(t, err)
		require.NotNil(t, entry.Set)
		require.Len(t, entry.Set.SeqSet, 2)
	})

	t.Run("unsupported_root", func(t *testing.T) {
		_, err := DecodeBytes([]byte(`<Seq-annot></Seq-annot>`))
		var se *SchemaError
		require.ErrorAs(t, err, &se)
		require.Contains(t, se.Msg, "unsupported document root")
	})
}

func TestDecodeSetWithNestedSet(t *testing.T) {
	residues := strings.Repeat("ACGT", 30)
	doc := `<Bioseq-set>
  <Bioseq-set_seq-set>
    <Seq-entry>
      <Seq-entry_seq>
        <Bioseq>
          <Bioseq_id><Seq-id><Seq-id_gi>777</Seq-id_gi></Seq-id></Bioseq_id>
          <Bioseq_inst><Seq-inst>
            <Seq-inst_repr value="raw">2</Seq-inst_repr>
            <Seq-inst_mol value="dna">1</Seq-inst_mol>
            <Seq-inst_length>120</Seq-inst_length>
            <Seq-inst_seq-data><Seq-data><Seq-data_iupacna><IUPACna>` + residues + `</IUPACna></Seq-data_iupacna></Seq-data></Seq-inst_seq-data>
          </Seq-inst></Bioseq_inst>
        </Bioseq>
      </Seq-entry_seq>
    </Seq-entry>
    <Seq-entry>
      <Seq-entry_set>
        <Bioseq-set>
          <Bioseq-set_class value="nuc-prot">1</Bioseq-set_class>
          <Bioseq-set_seq-set>
            <Seq-entry>
              <Seq-entry_seq>
                <Bioseq>
                  <Bioseq_id><Seq-id><Seq-id_local><Object-id><Object-id_str>p1</Object-id_str></Object-id></Seq-id_local></Seq-id></Bioseq_id>
                  <Bioseq_inst><Seq-inst>
                    <Seq-inst_repr value="raw">2</Seq-inst_repr>
                    <Seq-inst_mol value="aa">3</Seq-inst_mol>
                    <Seq-inst_length>4</Seq-inst_length>
                    <Seq-inst_seq-data><Seq-data><Seq-data_ncbieaa><NCBIeaa>MKLV</NCBIeaa></Seq-data_ncbieaa></Seq-data></Seq-inst_seq-data>
                  </Seq-inst></Bioseq_inst>
                </Bioseq>
              </Seq-entry_seq>
            </Seq-entry>
          </Bioseq-set_seq-set>
        </Bioseq-set>
      </Seq-entry_set>
    </Seq-entry>
  </Bioseq-set_seq-set>
</Bioseq-set>`

	entry, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	require.NotNil(t, entry.Set)
	require.Len(t, entry.Set.SeqSet, 2)

	first := entry.Set.SeqSet[0].Seq
	require.NotNil(t, first)
	require.Equal(t, int64(120), *first.Inst.Length)
	require.Equal(t, residues, *first.Inst.SeqData.IUPACna)

	second := entry.Set.SeqSet[1].Set
	require.NotNil(t, second)
	require.Equal(t, BioseqSetClassNucProt, second.Class)
	require.Len(t, second.SeqSet, 1)
}

// segDoc embeds body inside a segmented Bioseq's extension.
func segDoc(segBody string) string {
	return `<Bioseq>
  <Bioseq_id><Seq-id><Seq-id_local><Object-id><Object-id_str>seg1</Object-id_str></Object-id></Seq-id_local></Seq-id></Bioseq_id>
  <Bioseq_inst><Seq-inst>
    <Seq-inst_repr value="seg">3</Seq-inst_repr>
    <Seq-inst_length>100</Seq-inst_length>
    <Seq-inst_ext><Seq-ext><Seq-ext_seg>` + segBody + `</Seq-ext_seg></Seq-ext></Seq-inst_ext>
  </Seq-inst></Bioseq_inst>
</Bioseq>`
}

func TestDecodeIntervalMissingTo(t *testing.T) {
	doc := segDoc(`<Seq-loc><Seq-loc_int><Seq-interval>
    <Seq-interval_from>0</Seq-interval_from>
    <Seq-interval_id><Seq-id><Seq-id_gi>555</Seq-id_gi></Seq-id></Seq-interval_id>
  </Seq-interval></Seq-loc_int></Seq-loc>`)

	_, err := DecodeBytes([]byte(doc))
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	require.Contains(t, se.Msg, "no to position")
	require.Contains(t, se.Path, "Seq-interval")
}

func TestDecodeIntervalEmptyFrom(t *testing.T) {
	doc := segDoc(`<Seq-loc><Seq-loc_int><Seq-interval>
    <Seq-interval_from>  </Seq-interval_from>
    <Seq-interval_to>42</Seq-interval_to>
    <Seq-interval_id><Seq-id><Seq-id_gi>555</Seq-id_gi></Seq-id></Seq-interval_id>
  </Seq-interval></Seq-loc_int></Seq-loc>`)

	_, err := DecodeBytes([]byte(doc))
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	require.Contains(t, se.Msg, "mandatory integer is empty")
	require.Contains(t, se.Path, "Seq-interval_from")
}

func TestDecodeRecursiveChoices(t *testing.T) {
	// Mixed locations nest locations and Pub-equiv nests Pubs; both run
	// through the same dispatch tables they are registered in.
	doc := segDoc(`<Seq-loc><Seq-loc_mix>
    <Seq-loc><Seq-loc_whole><Seq-id><Seq-id_gi>11</Seq-id_gi></Seq-id></Seq-loc_whole></Seq-loc>
    <Seq-loc><Seq-loc_mix>
      <Seq-loc><Seq-loc_null></Seq-loc_null></Seq-loc>
      <Seq-loc><Seq-loc_int><Seq-interval>
        <Seq-interval_from>5</Seq-interval_from>
        <Seq-interval_to>9</Seq-interval_to>
        <Seq-interval_id><Seq-id><Seq-id_gi>12</Seq-id_gi></Seq-id></Seq-interval_id>
      </Seq-interval></Seq-loc_int></Seq-loc>
    </Seq-loc_mix></Seq-loc>
  </Seq-loc_mix></Seq-loc>`)

	entry, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)

	outer := entry.Seq.Inst.Ext.Seg[0]
	require.Len(t, outer.Mix, 2)
	require.NotNil(t, outer.Mix[0].Whole)
	inner := outer.Mix[1]
	require.Len(t, inner.Mix, 2)
	require.True(t, inner.Mix[0].Null)
	require.Equal(t, int64(5), inner.Mix[1].Int.From)

	pubDoc := `<Bioseq>
  <Bioseq_id><Seq-id><Seq-id_local><Object-id><Object-id_str>x</Object-id_str></Object-id></Seq-id_local></Seq-id></Bioseq_id>
  <Bioseq_descr><Seq-descr><Seqdesc><Seqdesc_pub><Pubdesc><Pubdesc_pub><Pub-equiv>
    <Pub><Pub_equiv>
      <Pub><Pub_muid>91299180</Pub_muid></Pub>
      <Pub><Pub_pmid>1715094</Pub_pmid></Pub>
    </Pub_equiv></Pub>
  </Pub-equiv></Pubdesc_pub></Pubdesc></Seqdesc_pub></Seqdesc></Seq-descr></Bioseq_descr>
  <Bioseq_inst><Seq-inst>
    <Seq-inst_repr value="raw">2</Seq-inst_repr>
    <Seq-inst_length>4</Seq-inst_length>
    <Seq-inst_seq-data><Seq-data><Seq-data_iupacna><IUPACna>ACGT</IUPACna></Seq-data_iupacna></Seq-data></Seq-inst_seq-data>
  </Seq-inst></Bioseq_inst>
</Bioseq>`

	entry, err = DecodeBytes([]byte(pubDoc))
	require.NoError(t, err)
	pubs := entry.Seq.Descr[0].Pub.Pub
	require.Len(t, pubs, 1)
	require.Len(t, pubs[0].Equiv, 2)
	require.Equal(t, int64(91299180), *pubs[0].Equiv[0].Muid)
	require.Equal(t, int64(1715094), *pubs[0].Equiv[1].PmID)
}

func TestDecodeUnknownEnumName(t *testing.T) {
	doc := `<Bioseq>
  <Bioseq_id><Seq-id><Seq-id_local><Object-id><Object-id_str>x</Object-id_str></Object-id></Seq-id_local></Seq-id></Bioseq_id>
  <Bioseq_inst><Seq-inst>
    <Seq-inst_repr value="raw">2</Seq-inst_repr>
    <Seq-inst_mol value="frobnium"/>
    <Seq-inst_length>4</Seq-inst_length>
    <Seq-inst_seq-data><Seq-data><Seq-data_iupacna><IUPACna>ACGT</IUPACna></Seq-data_iupacna></Seq-data></Seq-inst_seq-data>
  </Seq-inst></Bioseq_inst>
</Bioseq>`

	entry, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, MolNotSet, entry.Seq.Inst.Mol)

	_, err = DecodeBytes([]byte(doc), WithMode(Strict))
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	require.Contains(t, se.Msg, `unrecognized Seq-inst.mol value "frobnium"`)
}

func TestDecodeIntervalComplete(t *testing.T) {
	doc := segDoc(`<Seq-loc><Seq-loc_int><Seq-interval>
    <Seq-interval_from>10</Seq-interval_from>
    <Seq-interval_to>42</Seq-interval_to>
    <Seq-interval_strand><Na-strand value="minus">2</Na-strand></Seq-interval_strand>
    <Seq-interval_id><Seq-id><Seq-id_gi>555</Seq-id_gi></Seq-id></Seq-interval_id>
  </Seq-interval></Seq-loc_int></Seq-loc>`)

	entry, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	loc := entry.Seq.Inst.Ext.Seg[0]
	require.NotNil(t, loc.Int)
	require.Equal(t, int64(10), loc.Int.From)
	require.Equal(t, int64(42), loc.Int.To)
	require.Equal(t, NaStrandMinus, *loc.Int.Strand)
	require.Equal(t, int64(555), *loc.Int.ID.Gi)
}

func TestDecodeUnknownSeqIDArm(t *testing.T) {
	doc := `<Bioseq>
  <Bioseq_id>
    <Seq-id><Seq-id_frobnicate>zzz</Seq-id_frobnicate></Seq-id>
    <Seq-id><Seq-id_local><Object-id><Object-id_str>x</Object-id_str></Object-id></Seq-id_local></Seq-id>
  </Bioseq_id>
  <Bioseq_inst><Seq-inst>
    <Seq-inst_repr value="raw">2</Seq-inst_repr>
    <Seq-inst_length>4</Seq-inst_length>
    <Seq-inst_seq-data><Seq-data><Seq-data_iupacna><IUPACna>ACGT</IUPACna></Seq-data_iupacna></Seq-data></Seq-inst_seq-data>
  </Seq-inst></Bioseq_inst>
</Bioseq>`

	entry, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, entry.Seq.ID, 1, "the unrecognized alias is dropped")
	require.Equal(t, "x", *entry.Seq.ID[0].Local.Str)

	_, err = DecodeBytes([]byte(doc), WithMode(Strict))
	var uv *UnknownVariantError
	require.ErrorAs(t, err, &uv)
	require.Equal(t, "Seq-id_frobnicate", uv.Tag)
	require.Equal(t, "Seq-id", uv.Context)
}

func TestDecodeWhitespaceTolerantNumerics(t *testing.T) {
	doc := `<Bioseq>
  <Bioseq_id><Seq-id><Seq-id_local><Object-id><Object-id_str>x</Object-id_str></Object-id></Seq-id_local></Seq-id></Bioseq_id>
  <Bioseq_inst><Seq-inst>
    <Seq-inst_repr value="raw">2</Seq-inst_repr>
    <Seq-inst_length>
      4
    </Seq-inst_length>
    <Seq-inst_seq-data><Seq-data><Seq-data_iupacna><IUPACna>ACGT</IUPACna></Seq-data_iupacna></Seq-data></Seq-inst_seq-data>
  </Seq-inst></Bioseq_inst>
</Bioseq>`

	entry, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, int64(4), *entry.Seq.Inst.Length)
}

func TestDecodeUnknownEnumCodeRoundTrips(t *testing.T) {
	doc := `<Bioseq>
  <Bioseq_id><Seq-id><Seq-id_local><Object-id><Object-id_str>x</Object-id_str></Object-id></Seq-id_local></Seq-id></Bioseq_id>
  <Bioseq_inst><Seq-inst>
    <Seq-inst_repr value="raw">2</Seq-inst_repr>
    <Seq-inst_mol>9</Seq-inst_mol>
    <Seq-inst_length>4</Seq-inst_length>
    <Seq-inst_seq-data><Seq-data><Seq-data_iupacna><IUPACna>ACGT</IUPACna></Seq-data_iupacna></Seq-data></Seq-inst_seq-data>
  </Seq-inst></Bioseq_inst>
</Bioseq>`

	entry, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, Mol(9), entry.Seq.Inst.Mol)
	require.False(t, entry.Seq.Inst.Mol.Known())

	out, err := EncodeBytes(entry)
	require.NoError(t, err)
	require.Contains(t, string(out), ">9</Seq-inst_mol>")
	require.NotContains(t, string(out), `<Seq-inst_mol value=`)
}

func TestDecodeMalformedOptionalInt(t *testing.T) {
	doc := `<Bioseq-set>
  <Bioseq-set_level>abc</Bioseq-set_level>
  <Bioseq-set_seq-set>
    <Seq-entry><Seq-entry_seq><Bioseq>
      <Bioseq_id><Seq-id><Seq-id_local><Object-id><Object-id_str>x</Object-id_str></Object-id></Seq-id_local></Seq-id></Bioseq_id>
      <Bioseq_inst><Seq-inst>
        <Seq-inst_repr value="raw">2</Seq-inst_repr>
        <Seq-inst_length>4</Seq-inst_length>
        <Seq-inst_seq-data><Seq-data><Seq-data_iupacna><IUPACna>ACGT</IUPACna></Seq-data_iupacna></Seq-data></Seq-inst_seq-data>
      </Seq-inst></Bioseq_inst>
    </Bioseq></Seq-entry_seq></Seq-entry>
  </Bioseq-set_seq-set>
</Bioseq-set>`

	// Garbage in an optional leaf never aborts the siblings; the strict
	// knob governs unknown variants only.
	for _, mode := range []Mode{Lenient, Strict} {
		entry, err := DecodeBytes([]byte(doc), WithMode(mode))
		require.NoError(t, err)
		require.Nil(t, entry.Set.Level, "malformed optional leaf is dropped, not zeroed")
		require.Len(t, entry.Set.SeqSet, 1)
	}
}

func TestDecodeGzipInput(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(nucProtDoc))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	entry, err := Decode(&buf)
	require.NoError(t, err)
	require.Len(t, entry.Set.SeqSet, 2)
}

func TestDecodeTruncatedInput(t *testing.T) {
	_, err := DecodeBytes([]byte(`<Seq-entry><Seq-entry_seq><Bioseq>`))
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	require.NotEmpty(t, se.Stack)
}

func TestDecodeBooleanAttributeForm(t *testing.T) {
	doc := `<Bioseq>
  <Bioseq_id><Seq-id><Seq-id_local><Object-id><Object-id_str>x</Object-id_str></Object-id></Seq-id_local></Seq-id></Bioseq_id>
  <Bioseq_descr><Seq-descr>
    <Seqdesc><Seqdesc_sp><SP-block>
      <SP-block_imeth value="true"/>
    </SP-block></Seqdesc_sp></Seqdesc>
  </Seq-descr></Bioseq_descr>
  <Bioseq_inst><Seq-inst>
    <Seq-inst_repr value="raw">2</Seq-inst_repr>
    <Seq-inst_length>4</Seq-inst_length>
    <Seq-inst_seq-data><Seq-data><Seq-data_iupacna><IUPACna>ACGT</IUPACna></Seq-data_iupacna></Seq-data></Seq-inst_seq-data>
  </Seq-inst></Bioseq_inst>
</Bioseq>`

	entry, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, entry.Seq.Descr, 1)
	require.NotNil(t, entry.Seq.Descr[0].Sp)
	require.True(t, entry.Seq.Descr[0].Sp.IMeth)
}

func TestDecodeHexPayload(t *testing.T) {
	doc := `<Bioseq>
  <Bioseq_id><Seq-id><Seq-id_local><Object-id><Object-id_str>x</Object-id_str></Object-id></Seq-id_local></Seq-id></Bioseq_id>
  <Bioseq_inst><Seq-inst>
    <Seq-inst_repr value="raw">2</Seq-inst_repr>
    <Seq-inst_length>4</Seq-inst_length>
    <Seq-inst_seq-data><Seq-data><Seq-data_ncbi2na><NCBI2na>1b
</NCBI2na></Seq-data_ncbi2na></Seq-data></Seq-inst_seq-data>
  </Seq-inst></Bioseq_inst>
</Bioseq>`

	entry, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, []byte{0x1b}, entry.Seq.Inst.SeqData.NCBI2na)
}

func TestDecodeDepthLimit(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`<Seq-entry>`)
	for i := 0; i < 30; i++ {
		sb.WriteString(`<Seq-entry_set><Bioseq-set><Bioseq-set_seq-set><Seq-entry>`)
	}
	// The document never closes; the depth bound must trip first.
	_, err := DecodeBytes([]byte(sb.String()), WithMaxDepth(20))
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	require.Contains(t, se.Msg, "depth limit")
}

func TestDecodeSkipsAnnotations(t *testing.T) {
	doc := `<Bioseq>
  <Bioseq_id><Seq-id><Seq-id_local><Object-id><Object-id_str>x</Object-id_str></Object-id></Seq-id_local></Seq-id></Bioseq_id>
  <Bioseq_inst><Seq-inst>
    <Seq-inst_repr value="raw">2</Seq-inst_repr>
    <Seq-inst_length>4</Seq-inst_length>
    <Seq-inst_seq-data><Seq-data><Seq-data_iupacna><IUPACna>ACGT</IUPACna></Seq-data_iupacna></Seq-data></Seq-inst_seq-data>
  </Seq-inst></Bioseq_inst>
  <Bioseq_annot><Seq-annot><Seq-annot_data>anything at all</Seq-annot_data></Seq-annot></Bioseq_annot>
</Bioseq>`

	// Annotations are out of the modeled subset in either mode.
	for _, mode := range []Mode{Lenient, Strict} {
		entry, err := DecodeBytes([]byte(doc), WithMode(mode))
		require.NoError(t, err)
		require.NotNil(t, entry.Seq)
	}
}

func TestDecodeValidatesResult(t *testing.T) {
	// Structurally well-formed XML whose content breaks the length law.
	doc := `<Bioseq>
  <Bioseq_id><Seq-id><Seq-id_local><Object-id><Object-id_str>x</Object-id_str></Object-id></Seq-id_local></Seq-id></Bioseq_id>
  <Bioseq_inst><Seq-inst>
    <Seq-inst_repr value="raw">2</Seq-inst_repr>
    <Seq-inst_length>120</Seq-inst_length>
    <Seq-inst_seq-data><Seq-data><Seq-data_iupacna><IUPACna>ACGT</IUPACna></Seq-data_iupacna></Seq-data></Seq-inst_seq-data>
  </Seq-inst></Bioseq_inst>
</Bioseq>`

	_, err := DecodeBytes([]byte(doc))
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	require.Contains(t, se.Msg, "declared length 120")
}

func TestErrorUnwrapping(t *testing.T) {
	inner := &NumericError{Text: "x"}
	se := &SchemaError{Path: "a/b", Msg: "mandatory integer is malformed", Err: inner}
	var ne *NumericError
	require.True(t, errors.As(se, &ne))
	require.Same(t, inner, ne)
}
