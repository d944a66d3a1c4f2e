package objects

// Bibliographic data elements (biblio.asn).

// ArticleID is one external identifier of an article.
type ArticleID struct {
	// PubMed is an id from the PubMed database at NCBI.
	PubMed *int64

	// Medline is an id from MEDLINE.
	Medline *int64

	// DOI is a Document Object Identifier.
	DOI *string

	// PII is a Controlled Publisher Identifier.
	PII *string

	// PmcID is a PubMed Central id.
	PmcID *int64

	// PmcPid is the publisher id supplied to PubMed Central.
	PmcPid *string

	// PmPid is the publisher id supplied to PubMed.
	PmPid *string

	// Other is the generic catch-all.
	Other *DbTag
}

func (a *ArticleID) Arm() (string, error) {
	var p armPick
	p.add("pubmed", a.PubMed != nil)
	p.add("medline", a.Medline != nil)
	p.add("doi", a.DOI != nil)
	p.add("pii", a.PII != nil)
	p.add("pmcid", a.PmcID != nil)
	p.add("pmcpid", a.PmcPid != nil)
	p.add("pmpid", a.PmPid != nil)
	p.add("other", a.Other != nil)
	return p.pick("ArticleId")
}

// PubStatus marks a point in the publication lifecycle.
type PubStatus int64

const (
	// PubStatusReceived is the date the manuscript was received for review.
	PubStatusReceived PubStatus = iota + 1
	PubStatusAccepted
	// PubStatusEPublish is electronic publication by the publisher.
	PubStatusEPublish
	// PubStatusPPublish is print publication by the publisher.
	PubStatusPPublish
	PubStatusRevised
	PubStatusPMC
	PubStatusPMCR
	PubStatusPubMed
	PubStatusPubMedR
	// PubStatusAheadOfPrint is epublish that print will follow.
	PubStatusAheadOfPrint
	PubStatusPreMedline
	PubStatusMedline
	PubStatusOther PubStatus = 255
)

var pubStatusEnum = defEnum("PubStatus", map[int64]string{
	1: "received", 2: "accepted", 3: "epublish", 4: "ppublish", 5: "revised",
	6: "pmc", 7: "pmcr", 8: "pubmed", 9: "pubmedr", 10: "aheadofprint",
	11: "premedline", 12: "medline", 255: "other",
})

func (s PubStatus) String() string { return pubStatusEnum.str(int64(s)) }
func (s PubStatus) Known() bool    { return pubStatusEnum.known(int64(s)) }

// PubStatusDate pairs a status with when it happened.
type PubStatusDate struct {
	PubStatus PubStatus
	Date      *Date
}

// CitArt cites an article in a journal, book or proceedings.
type CitArt struct {
	// Title of the paper.
	Title []*TitleItem

	Authors *AuthList

	// From says where the article appeared.
	From *CitArtFrom

	IDs []*ArticleID
}

// CitArtFrom is the venue choice of a CitArt.
type CitArtFrom struct {
	Journal *CitJour
	Book    *CitBook
	Proc    *CitProc
}

func (f *CitArtFrom) Arm() (string, error) {
	var p armPick
	p.add("journal", f.Journal != nil)
	p.add("book", f.Book != nil)
	p.add("proc", f.Proc != nil)
	return p.pick("Cit-art.from")
}

// CitJour cites a journal issue.
type CitJour struct {
	Title []*TitleItem
	Imp   *Imprint
}

// CitBook cites a book.
type CitBook struct {
	Title []*TitleItem

	// Coll names the collection the book is part of.
	Coll []*TitleItem

	Authors *AuthList
	Imp     *Imprint
}

// CitProc cites meeting proceedings.
type CitProc struct {
	// Book is the citation to the proceedings volume.
	Book *CitBook

	// Meet is the time and location of the meeting.
	Meet *Meeting
}

// Meeting is where and when proceedings happened.
type Meeting struct {
	Number string
	Date   *Date
	Place  *Affil
}

// CitPat cites a patent.
type CitPat struct {
	Title string

	// Authors are the inventors.
	Authors *AuthList

	// Country is the patent document country.
	Country string

	// DocType is the patent document type.
	DocType string

	// Number is the patent document number.
	Number *string

	// DateIssue is the patent issue/publication date.
	DateIssue *Date

	// Class are the patent document class codes.
	Class []string

	// AppNumber is the patent application number.
	AppNumber *string

	// AppDate is the application filing date.
	AppDate *Date

	Applicants *AuthList
	Assignees  *AuthList
	Priority   []*PatentPriority
	Abstract   *string
}

// PatentPriority is one priority claim of a patent.
type PatentPriority struct {
	// Country is the patent country code.
	Country string

	// Number was assigned in that country.
	Number string

	// Date is the date of application.
	Date *Date
}

// IDPat identifies a patent without citing it fully.
type IDPat struct {
	Country string

	// Number is the patent document number arm.
	Number *string

	// AppNumber is the application number arm.
	AppNumber *string

	DocType *string
}

// Arm reports which of the number arms is populated.
func (i *IDPat) Arm() (string, error) {
	var p armPick
	p.add("number", i.Number != nil)
	p.add("app-number", i.AppNumber != nil)
	return p.pick("Id-pat.id")
}

// LetType distinguishes manuscripts, letters and theses.
type LetType int64

const (
	LetTypeManuscript LetType = iota + 1
	LetTypeLetter
	LetTypeThesis
)

var letTypeEnum = defEnum("Cit-let.type", map[int64]string{
	1: "manuscript", 2: "letter", 3: "thesis",
})

func (t LetType) String() string { return letTypeEnum.str(int64(t)) }
func (t LetType) Known() bool    { return letTypeEnum.known(int64(t)) }

// CitLet cites a letter, thesis or manuscript.
type CitLet struct {
	// Cit holds the same fields as a book citation.
	Cit *CitBook

	// ManID is the manuscript identifier.
	ManID *string

	Type LetType
}

// SubMedium is the medium of a direct submission.
type SubMedium int64

const (
	SubMediumPaper SubMedium = iota + 1
	SubMediumTape
	SubMediumFloppy
	SubMediumEmail
	SubMediumOther SubMedium = 255
)

var subMediumEnum = defEnum("Cit-sub.medium", map[int64]string{
	1: "paper", 2: "tape", 3: "floppy", 4: "email", 255: "other",
})

func (m SubMedium) String() string { return subMediumEnum.str(int64(m)) }
func (m SubMedium) Known() bool    { return subMediumEnum.known(int64(m)) }

// CitSub cites a direct submission of data.
type CitSub struct {
	// Authors are not necessarily the authors of any paper.
	Authors *AuthList

	// Imp survives only to carry a date on old records.
	Imp *Imprint

	Medium SubMedium

	// Date replaces Imp.
	Date *Date

	// Descr describes the changes for public view.
	Descr *string
}

// CitGen is the catch-all citation for anything not parsable into the
// structured forms.
type CitGen struct {
	// Cit holds the unparsed citation text.
	Cit *string

	Authors *AuthList

	// Muid is the MEDLINE uid.
	Muid *int64

	Journal []*TitleItem
	Volume  *string
	Issue   *string
	Pages   *string
	Date    *Date

	// SerialNumber is for GenBank-style references.
	SerialNumber *int64

	Title *string

	// PmID is the PubMed id.
	PmID *int64
}

// AuthListNames holds the authors in one of three fidelities.
type AuthListNames struct {
	// Std are full structured citations.
	Std []*Author

	// ML are MEDLINE semi-structured names.
	ML []string

	// Str are free-form names.
	Str []string
}

func (n *AuthListNames) Arm() (string, error) {
	var p armPick
	p.add("std", n.Std != nil)
	p.add("ml", n.ML != nil)
	p.add("str", n.Str != nil)
	return p.pick("Auth-list.names")
}

// AuthList is an authorship group.
type AuthList struct {
	Names *AuthListNames
	Affil *Affil
}

// AuthorLevel ranks an author as primary or secondary.
type AuthorLevel int64

const (
	AuthorLevelPrimary AuthorLevel = iota + 1
	AuthorLevelSecondary
)

var authorLevelEnum = defEnum("Author.level", map[int64]string{
	1: "primary", 2: "secondary",
})

func (l AuthorLevel) String() string { return authorLevelEnum.str(int64(l)) }
func (l AuthorLevel) Known() bool    { return authorLevelEnum.known(int64(l)) }

// AuthorRole is the author role indicator.
type AuthorRole int64

const (
	AuthorRoleCompiler AuthorRole = iota + 1
	AuthorRoleEditor
	AuthorRolePatentAssignee
	AuthorRoleTranslator
)

var authorRoleEnum = defEnum("Author.role", map[int64]string{
	1: "compiler", 2: "editor", 3: "patent-assignee", 4: "translator",
})

func (r AuthorRole) String() string { return authorRoleEnum.str(int64(r)) }
func (r AuthorRole) Known() bool    { return authorRoleEnum.known(int64(r)) }

// Author is one member of an AuthList.
type Author struct {
	Name  *PersonID
	Level *AuthorLevel
	Role  *AuthorRole
	Affil *Affil

	// IsCorr marks the corresponding author.
	IsCorr *bool
}

// Affil is an affiliation, unparsed or structured.
type Affil struct {
	Str *string
	Std *AffilStd
}

func (a *Affil) Arm() (string, error) {
	var p armPick
	p.add("str", a.Str != nil)
	p.add("std", a.Std != nil)
	return p.pick("Affil")
}

// AffilStd is the structured affiliation.
type AffilStd struct {
	// Affil is the institution name.
	Affil *string

	Div     *string
	City    *string
	Sub     *string
	Country *string

	// Street address; not part of the ANSI standard.
	Street *string

	Email      *string
	Fax        *string
	Phone      *string
	PostalCode *string
}

// TitleItem is one element of a title group. Which arms are valid depends
// on what is being cited: articles, journals and books each accept a
// subset.
type TitleItem struct {
	// Name is the full title.
	Name *string

	// TSub is the subordinate title.
	TSub *string

	// Trans is the translated title.
	Trans *string

	// Jta is the abbreviated journal title.
	Jta *string

	// IsoJta is the ISO journal title abbreviation.
	IsoJta *string

	// MlJta is the MEDLINE journal title abbreviation.
	MlJta *string

	// Coden is a coden.
	Coden *string

	ISSN *string

	// Abr is the abbreviated book title.
	Abr *string

	ISBN *string
}

func (t *TitleItem) Arm() (string, error) {
	var p armPick
	p.add("name", t.Name != nil)
	p.add("tsub", t.TSub != nil)
	p.add("trans", t.Trans != nil)
	p.add("jta", t.Jta != nil)
	p.add("iso-jta", t.IsoJta != nil)
	p.add("ml-jta", t.MlJta != nil)
	p.add("coden", t.Coden != nil)
	p.add("issn", t.ISSN != nil)
	p.add("abr", t.Abr != nil)
	p.add("isbn", t.ISBN != nil)
	return p.pick("Title_E")
}

// ImprintPrePub marks pre-publication citations.
type ImprintPrePub int64

const (
	// PrePubSubmitted means submitted, not accepted.
	PrePubSubmitted ImprintPrePub = iota + 1

	// PrePubInPress means accepted, not published.
	PrePubInPress

	PrePubOther ImprintPrePub = 255
)

var prePubEnum = defEnum("Imprint.prepub", map[int64]string{
	1: "submitted", 2: "in-press", 255: "other",
})

func (p ImprintPrePub) String() string { return prePubEnum.str(int64(p)) }
func (p ImprintPrePub) Known() bool    { return prePubEnum.known(int64(p)) }

// CitRetractType says how a retraction relates to the entry.
type CitRetractType int64

const (
	// RetractRetracted: this citation is retracted.
	RetractRetracted CitRetractType = iota + 1

	// RetractNotice: this citation is a retraction notice.
	RetractNotice

	// RetractInError: an erratum was published about this.
	RetractInError

	// RetractErratum is the citation and/or explanation.
	RetractErratum
)

var citRetractEnum = defEnum("CitRetract.type", map[int64]string{
	1: "retracted", 2: "notice", 3: "in-error", 4: "erratum",
})

func (t CitRetractType) String() string { return citRetractEnum.str(int64(t)) }
func (t CitRetractType) Known() bool    { return citRetractEnum.known(int64(t)) }

// CitRetract carries retraction info on an imprint.
type CitRetract struct {
	Type CitRetractType

	// Exp is the citation and/or explanation.
	Exp *string
}

// Imprint is the publication details of a citation.
type Imprint struct {
	// Date of publication.
	Date *Date

	Volume  *string
	Issue   *string
	Pages   *string
	Section *string

	// Pub is the publisher; required for books.
	Pub *Affil

	// Cprt is the copyright date; required for books.
	Cprt *Date

	// PartSup is the part/sup of the volume.
	PartSup *string

	Language *string
	PrePub   *ImprintPrePub

	// PartSupI is the part/sup on the issue.
	PartSupI *string

	Retract *CitRetract

	// PubStatus is the current status of this publication.
	PubStatus *PubStatus

	// History are the status dates for this record.
	History []*PubStatusDate
}
