package objects

// Per-repository descriptor blocks (seqblock.asn): the extra fields
// GenBank, EMBL, SWISS-PROT, PIR, PRF and PDB attach to their records.

// GBBlock carries GenBank-specific descriptor fields.
type GBBlock struct {
	ExtraAccessions []string

	// Source is the source line.
	Source *string

	Keywords []string
	Origin   *string

	// Date is the obsolete, unstructured entry date.
	Date *string

	// EntryDate replaces Date.
	EntryDate *Date

	// Div is the GenBank division.
	Div *string

	// Taxonomy is the continuation line of the organism.
	Taxonomy *string
}

// EMBLDbNameCode is the coded form of a database name in an EMBL xref.
type EMBLDbNameCode int64

const (
	EMBLDbEMBL EMBLDbNameCode = iota
	EMBLDbGenBank
	EMBLDbDDBJ
	EMBLDbGenInfo
	EMBLDbMedline
	EMBLDbSwissprot
	EMBLDbPIR
	EMBLDbPDB
	EMBLDbEPD
	EMBLDbECD
	EMBLDbTFD
	EMBLDbFlyBase
	EMBLDbProSite
	EMBLDbEnzyme
	EMBLDbMIM
	EMBLDbEcoSeq
	EMBLDbHIV
	EMBLDbOther EMBLDbNameCode = 255
)

var emblDbNameEnum = defEnum("EMBL-dbname.code", map[int64]string{
	0: "embl", 1: "genbank", 2: "ddbj", 3: "geninfo", 4: "medline",
	5: "swissprot", 6: "pir", 7: "pdb", 8: "epd", 9: "ecd", 10: "tfd",
	11: "flybase", 12: "prosite", 13: "enzyme", 14: "mim", 15: "ecoseq",
	16: "hiv", 255: "other",
})

func (c EMBLDbNameCode) String() string { return emblDbNameEnum.str(int64(c)) }
func (c EMBLDbNameCode) Known() bool    { return emblDbNameEnum.known(int64(c)) }

// EMBLDbName names the target database of an EMBL xref, coded or free-form.
type EMBLDbName struct {
	Code *EMBLDbNameCode
	Name *string
}

func (n *EMBLDbName) Arm() (string, error) {
	var p armPick
	p.add("code", n.Code != nil)
	p.add("name", n.Name != nil)
	return p.pick("EMBL-dbname")
}

// EMBLXref is a cross-reference from an EMBL record.
type EMBLXref struct {
	DbName *EMBLDbName
	ID     []*ObjectID
}

// EMBLBlockClass grades an EMBL entry.
type EMBLBlockClass int64

const (
	EMBLClassNotSet EMBLBlockClass = iota
	EMBLClassStandard
	EMBLClassUnannotated
	EMBLClassOther EMBLBlockClass = 255
)

var emblClassEnum = defEnum("EMBL-block.class", map[int64]string{
	0: "not-set", 1: "standard", 2: "unannotated", 255: "other",
})

func (c EMBLBlockClass) String() string { return emblClassEnum.str(int64(c)) }
func (c EMBLBlockClass) Known() bool    { return emblClassEnum.known(int64(c)) }

// EMBLBlockDiv is the EMBL division.
type EMBLBlockDiv int64

const (
	EMBLDivFun EMBLBlockDiv = iota
	EMBLDivInv
	EMBLDivMam
	EMBLDivOrg
	EMBLDivPln
	EMBLDivPri
	EMBLDivPro
	EMBLDivRod
	EMBLDivSyn
	EMBLDivUna
	EMBLDivVrl
	EMBLDivVrt
	EMBLDivPat
	EMBLDivEst
	EMBLDivSts
	EMBLDivOther EMBLBlockDiv = 255
)

var emblDivEnum = defEnum("EMBL-block.div", map[int64]string{
	0: "fun", 1: "inv", 2: "mam", 3: "org", 4: "pln", 5: "pri", 6: "pro",
	7: "rod", 8: "syn", 9: "una", 10: "vrl", 11: "vrt", 12: "pat", 13: "est",
	14: "sts", 255: "other",
})

func (d EMBLBlockDiv) String() string { return emblDivEnum.str(int64(d)) }
func (d EMBLBlockDiv) Known() bool    { return emblDivEnum.known(int64(d)) }

// EMBLBlock carries EMBL-specific descriptor fields.
type EMBLBlock struct {
	Class        EMBLBlockClass
	Div          *EMBLBlockDiv
	CreationDate *Date
	UpdateDate   *Date
	ExtraAcc     []string
	Keywords     []string
	Xref         []*EMBLXref
}

// SPBlockClass grades a SWISS-PROT entry.
type SPBlockClass int64

const (
	SPClassNotSet SPBlockClass = iota
	// SPClassStandard conforms to all SWISS-PROT checks.
	SPClassStandard
	// SPClassPrelim had only sequence and bibliography checked.
	SPClassPrelim
	SPClassOther SPBlockClass = 255
)

var spClassEnum = defEnum("SP-block.class", map[int64]string{
	0: "not-set", 1: "standard", 2: "prelim", 255: "other",
})

func (c SPBlockClass) String() string { return spClassEnum.str(int64(c)) }
func (c SPBlockClass) Known() bool    { return spClassEnum.known(int64(c)) }

// SPBlock carries SWISS-PROT-specific descriptor fields.
type SPBlock struct {
	Class SPBlockClass

	// ExtraAcc are old SWISS-PROT ids.
	ExtraAcc []string

	// IMeth is true when the sequence is known to start with Met.
	IMeth bool

	// Plasnm names the plasmids carrying the gene.
	Plasnm []string

	// SeqRef cross-references other sequences.
	SeqRef []*SeqID

	// DbRef cross-references non-sequence databases.
	DbRef []*DbTag

	Keywords []string
	Created  *Date

	// SeqUpd is the last sequence update.
	SeqUpd *Date

	// AnnotUpd is the last annotation update.
	AnnotUpd *Date
}

// PIRBlock carries PIR-specific descriptor fields.
type PIRBlock struct {
	// HadPunct reports whether the original sequence had punctuation.
	HadPunct *bool

	Host *string

	// Source is the source line.
	Source *string

	Summary     *string
	Genetic     *string
	Includes    *string
	Placement   *string
	Superfamily *string
	Keywords    []string
	CrossRef    *string
	Date        *string

	// SeqRaw is the sequence with punctuation.
	SeqRaw *string

	// SeqRef cross-references other sequences.
	SeqRef []*SeqID
}

// PRFExtraSrc is extra source information on a PRF record.
type PRFExtraSrc struct {
	Host   *string
	Part   *string
	State  *string
	Strain *string
	Taxon  *string
}

// PRFBlock carries Protein Research Foundation descriptor fields.
type PRFBlock struct {
	ExtraSrc *PRFExtraSrc
	Keywords []string
}

// PDBReplace records the replacement history of a PDB entry.
type PDBReplace struct {
	Date *Date

	// IDs are the entry ids replaced by this one.
	IDs []string
}

// PDBBlock carries PDB-specific descriptor fields.
type PDBBlock struct {
	// Deposition is the deposition date (month, year).
	Deposition *Date

	Class    *string
	Compound []string
	Source   []string

	// ExpMethod is present when the method is NOT X-ray diffraction.
	ExpMethod *string

	Replace *PDBReplace
}
