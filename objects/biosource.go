package objects

// The source-organism subtree (from seqfeat.asn): BioSource and the
// taxonomy records under it.

// BioSourceGenome places the sequence within the organism.
type BioSourceGenome int64

const (
	GenomeUnknown BioSourceGenome = iota
	GenomeGenomic
	GenomeChloroplast
	GenomeChromoplast
	GenomeKinetoplast
	GenomeMitochondrion
	GenomePlastid
	GenomeMacronuclear
	GenomeExtrachrom
	GenomePlasmid
	GenomeTransposon
	GenomeInsertionSeq
	GenomeCyanelle
	GenomeProviral
	GenomeVirion
	GenomeNucleomorph
	GenomeApicoplast
	GenomeLeucoplast
	GenomeProplastid
	GenomeEndogenousVirus
	GenomeHydrogenosome
	GenomeChromosome
	GenomePlasmidInMitochondrion
	GenomePlasmidInPlastid
)

var bioSourceGenomeEnum = defEnum("BioSource.genome", map[int64]string{
	0: "unknown", 1: "genomic", 2: "chloroplast", 3: "chromoplast",
	4: "kinetoplast", 5: "mitochondrion", 6: "plastid", 7: "macronuclear",
	8: "extrachrom", 9: "plasmid", 10: "transposon", 11: "insertion-seq",
	12: "cyanelle", 13: "proviral", 14: "virion", 15: "nucleomorph",
	16: "apicoplast", 17: "leucoplast", 18: "proplastid",
	19: "endogenous-virus", 20: "hydrogenosome", 21: "chromosome",
	22: "plasmid-in-mitochondrion", 23: "plasmid-in-plastid",
})

func (g BioSourceGenome) String() string { return bioSourceGenomeEnum.str(int64(g)) }
func (g BioSourceGenome) Known() bool    { return bioSourceGenomeEnum.known(int64(g)) }

// BioSourceOrigin states how the sequence came to exist.
type BioSourceOrigin int64

const (
	OriginUnknown BioSourceOrigin = iota
	OriginNatural
	OriginNatMut
	OriginMut
	OriginArtificial
	OriginSynthetic
	OriginOther BioSourceOrigin = 255
)

var bioSourceOriginEnum = defEnum("BioSource.origin", map[int64]string{
	0: "unknown", 1: "natural", 2: "natmut", 3: "mut", 4: "artificial",
	5: "synthetic", 255: "other",
})

func (o BioSourceOrigin) String() string { return bioSourceOriginEnum.str(int64(o)) }
func (o BioSourceOrigin) Known() bool    { return bioSourceOriginEnum.known(int64(o)) }

// BioSource describes the source of the sequenced material.
type BioSource struct {
	Genome BioSourceGenome
	Origin BioSourceOrigin
	Org    *OrgRef

	Subtype []*SubSource

	// IsFocus marks the focus organism of a multi-source record.
	IsFocus bool

	PCRPrimers []*PCRReaction
}

// PCRReaction pairs the primers of one PCR amplification.
type PCRReaction struct {
	Forward []*PCRPrimer
	Reverse []*PCRPrimer
}

// PCRPrimer is one primer, by sequence and/or name.
type PCRPrimer struct {
	Seq  *string
	Name *string
}

// OrgRef is a reference to an organism.
type OrgRef struct {
	// Taxname is the preferred formal name.
	Taxname *string

	// Common is the common name.
	Common *string

	// Mod lists unstructured modifiers.
	Mod []string

	// Db holds ids in taxonomic or culture databases.
	Db []*DbTag

	// Syn lists synonyms for Taxname or Common.
	Syn []string

	OrgName *OrgName
}

// OrgNameChoice is the structured variant of an organism name.
type OrgNameChoice struct {
	Binomial    *BinomialOrgName
	Virus       *string
	Hybrid      []*OrgName
	NamedHybrid *BinomialOrgName
	Partial     []*TaxElement
}

func (n *OrgNameChoice) Arm() (string, error) {
	var p armPick
	p.add("binomial", n.Binomial != nil)
	p.add("virus", n.Virus != nil)
	p.add("hybrid", n.Hybrid != nil)
	p.add("namedhybrid", n.NamedHybrid != nil)
	p.add("partial", n.Partial != nil)
	return p.pick("OrgName.name")
}

// OrgName carries the structured organism name and genetic code data.
type OrgName struct {
	Name *OrgNameChoice

	// Attrib marks the source of this name.
	Attrib *string

	Mod []*OrgMod

	// Lineage is the taxonomic lineage as a semicolon-separated string.
	Lineage *string

	// Gcode is the genetic code; see seqcode.
	Gcode *int64

	// Mgcode is the mitochondrial genetic code.
	Mgcode *int64

	// Div is the GenBank division code.
	Div *string

	// Pgcode is the plastid genetic code.
	Pgcode *int64
}

// BinomialOrgName is genus/species/subspecies.
type BinomialOrgName struct {
	Genus      string
	Species    *string
	Subspecies *string
}

// TaxElementFixedLevel names the classical ranks a partial name may use.
type TaxElementFixedLevel int64

const (
	// TaxElementLevelOther means Level holds the rank string.
	TaxElementLevelOther TaxElementFixedLevel = iota
	TaxElementLevelFamily
	TaxElementLevelOrder
	TaxElementLevelClass
)

var taxElementLevelEnum = defEnum("TaxElement.fixed-level", map[int64]string{
	0: "other", 1: "family", 2: "order", 3: "class",
})

func (l TaxElementFixedLevel) String() string { return taxElementLevelEnum.str(int64(l)) }
func (l TaxElementFixedLevel) Known() bool    { return taxElementLevelEnum.known(int64(l)) }

// TaxElement is one rank of a partial organism name.
type TaxElement struct {
	FixedLevel TaxElementFixedLevel
	Level      *string
	Name       string
}

// OrgModSubType classifies an organism modifier.
type OrgModSubType int64

const (
	OrgModStrain OrgModSubType = iota + 2
	OrgModSubStrain
	OrgModType
	// OrgModSubTypeMod is the "subtype" modifier; the trailing Mod avoids
	// colliding with the OrgModSubType type name.
	OrgModSubTypeMod
	OrgModVariety
	OrgModSerotype
	OrgModSerogroup
	OrgModSerovar
	OrgModCultivar
	OrgModPathovar
	OrgModChemovar
	OrgModBiovar
	OrgModBiotype
	OrgModGroup
	OrgModSubGroup
	OrgModIsolate
	OrgModCommon
	OrgModAcronym
	OrgModDosage
	OrgModNatHost
	OrgModSubSpecies
	OrgModSpecimenVoucher
	OrgModAuthority
	OrgModForma
	OrgModFormaSpecialis
	OrgModEcotype
	OrgModSynonym
	OrgModAnamorph
	OrgModBreed
	OrgModGbAcronym
	OrgModGbAnamorph
	OrgModGbSynonym
	OrgModCultureCollection
	OrgModBioMaterial
	OrgModMetagenomeSource
	OrgModTypeMaterial
	OrgModNomenclature
	OrgModOldLineage OrgModSubType = 253
	OrgModOldName    OrgModSubType = 254
	OrgModOther      OrgModSubType = 255
)

var orgModSubTypeEnum = defEnum("OrgMod.subtype", map[int64]string{
	2: "strain", 3: "substrain", 4: "type", 5: "subtype", 6: "variety",
	7: "serotype", 8: "serogroup", 9: "serovar", 10: "cultivar",
	11: "pathovar", 12: "chemovar", 13: "biovar", 14: "biotype", 15: "group",
	16: "subgroup", 17: "isolate", 18: "common", 19: "acronym", 20: "dosage",
	21: "nat-host", 22: "sub-species", 23: "specimen-voucher",
	24: "authority", 25: "forma", 26: "forma-specialis", 27: "ecotype",
	28: "synonym", 29: "anamorph", 30: "breed", 31: "gb-acronym",
	32: "gb-anamorph", 33: "gb-synonym", 34: "culture-collection",
	35: "bio-material", 36: "metagenome-source", 37: "type-material",
	38: "nomenclature", 253: "old-lineage", 254: "old-name", 255: "other",
})

func (t OrgModSubType) String() string { return orgModSubTypeEnum.str(int64(t)) }
func (t OrgModSubType) Known() bool    { return orgModSubTypeEnum.known(int64(t)) }

// OrgMod is one structured organism modifier.
type OrgMod struct {
	SubType OrgModSubType
	SubName string

	// Attrib marks the source of this modifier.
	Attrib *string
}

// SubSourceSubType classifies a source modifier.
type SubSourceSubType int64

const (
	SubSourceChromosome SubSourceSubType = iota + 1
	SubSourceMap
	SubSourceClone
	SubSourceSubclone
	SubSourceHaplotype
	SubSourceGenotype
	SubSourceSex
	SubSourceCellLine
	SubSourceCellType
	SubSourceTissueType
	SubSourceCloneLib
	SubSourceDevStage
	SubSourceFrequency
	SubSourceGermline
	SubSourceRearranged
	SubSourceLabHost
	SubSourcePopVariant
	SubSourceTissueLib
	SubSourcePlasmidName
	SubSourceTransposonName
	SubSourceInsertionSeqName
	SubSourcePlastidName
	SubSourceCountry
	SubSourceSegment
	SubSourceEndogenousVirusName
	SubSourceTransgenic
	SubSourceEnvironmentalSample
	SubSourceIsolationSource
	SubSourceLatLon
	SubSourceCollectionDate
	SubSourceCollectedBy
	SubSourceIdentifiedBy
	SubSourceFwdPrimerSeq
	SubSourceRevPrimerSeq
	SubSourceFwdPrimerName
	SubSourceRevPrimerName
	SubSourceMetagenomic
	SubSourceMatingType
	SubSourceLinkageGroup
	SubSourceHaplogroup
	SubSourceWholeReplicon
	SubSourcePhenotype
	SubSourceAltitude
	SubSourceOther SubSourceSubType = 255
)

var subSourceSubTypeEnum = defEnum("SubSource.subtype", map[int64]string{
	1: "chromosome", 2: "map", 3: "clone", 4: "subclone", 5: "haplotype",
	6: "genotype", 7: "sex", 8: "cell-line", 9: "cell-type",
	10: "tissue-type", 11: "clone-lib", 12: "dev-stage", 13: "frequency",
	14: "germline", 15: "rearranged", 16: "lab-host", 17: "pop-variant",
	18: "tissue-lib", 19: "plasmid-name", 20: "transposon-name",
	21: "insertion-seq-name", 22: "plastid-name", 23: "country",
	24: "segment", 25: "endogenous-virus-name", 26: "transgenic",
	27: "environmental-sample", 28: "isolation-source", 29: "lat-lon",
	30: "collection-date", 31: "collected-by", 32: "identified-by",
	33: "fwd-primer-seq", 34: "rev-primer-seq", 35: "fwd-primer-name",
	36: "rev-primer-name", 37: "metagenomic", 38: "mating-type",
	39: "linkage-group", 40: "haplogroup", 41: "whole-replicon",
	42: "phenotype", 43: "altitude", 255: "other",
})

func (t SubSourceSubType) String() string { return subSourceSubTypeEnum.str(int64(t)) }
func (t SubSourceSubType) Known() bool    { return subSourceSubTypeEnum.known(int64(t)) }

// SubSource is one source modifier.
type SubSource struct {
	SubType SubSourceSubType
	Name    string

	// Attrib marks the source of this modifier.
	Attrib *string
}
