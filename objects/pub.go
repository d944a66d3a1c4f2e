package objects

// Pub is the citation choice used throughout the data model. A Pub wraps
// exactly one concrete citation form.
type Pub struct {
	// Gen is the catch-all used when nothing better parses.
	Gen *CitGen

	// Sub is a direct data submission.
	Sub *CitSub

	// Muid is a bare MEDLINE uid.
	Muid *int64

	Article *CitArt
	Journal *CitJour
	Book    *CitBook

	// Proc is a book chapter or paper in proceedings.
	Proc *CitProc

	Patent *CitPat

	// PatID identifies a patent without a full citation.
	PatID *IDPat

	// Man is a manuscript, letter or thesis.
	Man *CitLet

	// Equiv groups citations for the same paper.
	Equiv []*Pub

	// PmID is a bare PubMed id.
	PmID *int64
}

func (p *Pub) Arm() (string, error) {
	var pk armPick
	pk.add("gen", p.Gen != nil)
	pk.add("sub", p.Sub != nil)
	pk.add("muid", p.Muid != nil)
	pk.add("article", p.Article != nil)
	pk.add("journal", p.Journal != nil)
	pk.add("book", p.Book != nil)
	pk.add("proc", p.Proc != nil)
	pk.add("patent", p.Patent != nil)
	pk.add("pat-id", p.PatID != nil)
	pk.add("man", p.Man != nil)
	pk.add("equiv", p.Equiv != nil)
	pk.add("pmid", p.PmID != nil)
	return pk.pick("Pub")
}
