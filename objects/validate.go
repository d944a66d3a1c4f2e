package objects

import "strings"

// Validate checks an in-memory tree against the structural rules the wire
// format promises: every choice has exactly one populated arm, mandatory
// fields are present, instance length agrees with the residue data, and
// nesting stays within the depth bound. Encode runs the same checks before
// writing anything.
func Validate(entry *SeqEntry, opts ...Option) error {
	o := buildOptions(opts)
	v := &validator{maxDepth: o.maxDepth}
	if entry == nil {
		return schemaErrf("", "nil Seq-entry")
	}
	return v.seqEntry(entry)
}

type validator struct {
	path     []string
	maxDepth int
}

func (v *validator) push(name string) error {
	v.path = append(v.path, name)
	if len(v.path) > v.maxDepth {
		return schemaErrf(v.at(), "nesting exceeds depth limit %d", v.maxDepth)
	}
	return nil
}

func (v *validator) pop() { v.path = v.path[:len(v.path)-1] }

func (v *validator) at() string { return strings.Join(v.path, "/") }

// arm re-homes the SchemaError produced by an Arm method onto the walk path.
func (v *validator) arm(name string, err error) error {
	if err == nil {
		return nil
	}
	if se, ok := err.(*SchemaError); ok {
		return &SchemaError{Path: v.at(), Msg: se.Msg, Err: se.Err}
	}
	return err
}

func (v *validator) seqEntry(e *SeqEntry) error {
	if err := v.push("Seq-entry"); err != nil {
		return err
	}
	defer v.pop()
	arm, err := e.Arm()
	if err != nil {
		return v.arm("Seq-entry", err)
	}
	if arm == "seq" {
		return v.bioseq(e.Seq)
	}
	return v.bioseqSet(e.Set)
}

func (v *validator) bioseq(b *Bioseq) error {
	if err := v.push("Bioseq"); err != nil {
		return err
	}
	defer v.pop()
	if len(b.ID) == 0 {
		return schemaErrf(v.at(), "Bioseq has no ids")
	}
	for _, id := range b.ID {
		if err := v.seqID(id); err != nil {
			return err
		}
	}
	for _, d := range b.Descr {
		if err := v.seqdesc(d); err != nil {
			return err
		}
	}
	if b.Inst == nil {
		return schemaErrf(v.at(), "Bioseq has no instance")
	}
	return v.seqInst(b.Inst)
}

func (v *validator) bioseqSet(s *BioseqSet) error {
	if err := v.push("Bioseq-set"); err != nil {
		return err
	}
	defer v.pop()
	if s.Date != nil {
		if err := v.date(s.Date); err != nil {
			return err
		}
	}
	for _, d := range s.Descr {
		if err := v.seqdesc(d); err != nil {
			return err
		}
	}
	if len(s.SeqSet) == 0 {
		return schemaErrf(v.at(), "Bioseq-set has no members")
	}
	for _, e := range s.SeqSet {
		if err := v.seqEntry(e); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) seqID(id *SeqID) error {
	if err := v.push("Seq-id"); err != nil {
		return err
	}
	defer v.pop()
	arm, err := id.Arm()
	if err != nil {
		return v.arm("Seq-id", err)
	}
	switch arm {
	case "local":
		if _, err := id.Local.Arm(); err != nil {
			return v.arm("Object-id", err)
		}
	case "patent":
		if id.Patent.Cit == nil {
			return schemaErrf(v.at(), "Patent-seq-id has no citation")
		}
		if _, err := id.Patent.Cit.Arm(); err != nil {
			return v.arm("Id-pat", err)
		}
	case "general":
		return v.dbTag(id.General)
	}
	return nil
}

func (v *validator) dbTag(t *DbTag) error {
	if err := v.push("Dbtag"); err != nil {
		return err
	}
	defer v.pop()
	if t.Db == "" {
		return schemaErrf(v.at(), "Dbtag has no db name")
	}
	if t.Tag == nil {
		return schemaErrf(v.at(), "Dbtag has no tag")
	}
	if _, err := t.Tag.Arm(); err != nil {
		return v.arm("Object-id", err)
	}
	return nil
}

func (v *validator) date(d *Date) error {
	if err := v.push("Date"); err != nil {
		return err
	}
	defer v.pop()
	if _, err := d.Arm(); err != nil {
		return v.arm("Date", err)
	}
	return nil
}

func (v *validator) intFuzz(f *IntFuzz) error {
	if err := v.push("Int-fuzz"); err != nil {
		return err
	}
	defer v.pop()
	if _, err := f.Arm(); err != nil {
		return v.arm("Int-fuzz", err)
	}
	return nil
}

func (v *validator) seqdesc(d *Seqdesc) error {
	if err := v.push("Seqdesc"); err != nil {
		return err
	}
	defer v.pop()
	arm, err := d.Arm()
	if err != nil {
		return v.arm("Seqdesc", err)
	}
	switch arm {
	case "org":
		return v.orgRef(d.Org)
	case "num":
		return v.numbering(d.Num)
	case "maploc":
		return v.dbTag(d.MapLoc)
	case "pub":
		return v.pubDesc(d.Pub)
	case "user":
		return v.userObject(d.User)
	case "dbxref":
		return v.dbTag(d.DbXref)
	case "create-date":
		return v.date(d.CreateDate)
	case "update-date":
		return v.date(d.UpdateDate)
	case "source":
		return v.bioSource(d.Source)
	}
	return nil
}

func (v *validator) numbering(n *Numbering) error {
	if err := v.push("Numbering"); err != nil {
		return err
	}
	defer v.pop()
	if _, err := n.Arm(); err != nil {
		return v.arm("Numbering", err)
	}
	return nil
}

func (v *validator) pubDesc(p *PubDesc) error {
	if err := v.push("Pubdesc"); err != nil {
		return err
	}
	defer v.pop()
	if len(p.Pub) == 0 {
		return schemaErrf(v.at(), "Pubdesc has no citations")
	}
	for _, pb := range p.Pub {
		if err := v.pub(pb); err != nil {
			return err
		}
	}
	if p.Num != nil {
		return v.numbering(p.Num)
	}
	return nil
}

func (v *validator) pub(p *Pub) error {
	if err := v.push("Pub"); err != nil {
		return err
	}
	defer v.pop()
	arm, err := p.Arm()
	if err != nil {
		return v.arm("Pub", err)
	}
	switch arm {
	case "article":
		if p.Article.From != nil {
			if _, err := p.Article.From.Arm(); err != nil {
				return v.arm("Cit-art.from", err)
			}
		}
		return v.authList(p.Article.Authors)
	case "sub":
		if p.Sub.Authors == nil {
			return schemaErrf(v.at(), "Cit-sub has no authors")
		}
		return v.authList(p.Sub.Authors)
	case "pat-id":
		if _, err := p.PatID.Arm(); err != nil {
			return v.arm("Id-pat", err)
		}
	case "equiv":
		for _, inner := range p.Equiv {
			if err := v.pub(inner); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *validator) authList(a *AuthList) error {
	if a == nil {
		return nil
	}
	if err := v.push("Auth-list"); err != nil {
		return err
	}
	defer v.pop()
	if a.Names == nil {
		return schemaErrf(v.at(), "Auth-list has no names")
	}
	if _, err := a.Names.Arm(); err != nil {
		return v.arm("Auth-list.names", err)
	}
	for _, au := range a.Names.Std {
		if au.Name == nil {
			return schemaErrf(v.at(), "Author has no name")
		}
		if _, err := au.Name.Arm(); err != nil {
			return v.arm("Person-id", err)
		}
	}
	if a.Affil != nil {
		if _, err := a.Affil.Arm(); err != nil {
			return v.arm("Affil", err)
		}
	}
	return nil
}

func (v *validator) userObject(u *UserObject) error {
	if err := v.push("User-object"); err != nil {
		return err
	}
	defer v.pop()
	if u.Type == nil {
		return schemaErrf(v.at(), "User-object has no type")
	}
	if _, err := u.Type.Arm(); err != nil {
		return v.arm("Object-id", err)
	}
	for _, f := range u.Data {
		if err := v.userField(f); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) userField(f *UserField) error {
	if err := v.push("User-field"); err != nil {
		return err
	}
	defer v.pop()
	if f.Label == nil {
		return schemaErrf(v.at(), "User-field has no label")
	}
	if _, err := f.Label.Arm(); err != nil {
		return v.arm("Object-id", err)
	}
	if f.Data == nil {
		return schemaErrf(v.at(), "User-field has no data")
	}
	arm, err := f.Data.Arm()
	if err != nil {
		return v.arm("User-field.data", err)
	}
	switch arm {
	case "object":
		return v.userObject(f.Data.Object)
	case "fields":
		for _, inner := range f.Data.Fields {
			if err := v.userField(inner); err != nil {
				return err
			}
		}
	case "objects":
		for _, inner := range f.Data.Objects {
			if err := v.userObject(inner); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *validator) bioSource(b *BioSource) error {
	if err := v.push("BioSource"); err != nil {
		return err
	}
	defer v.pop()
	if b.Org == nil {
		return schemaErrf(v.at(), "BioSource has no organism")
	}
	return v.orgRef(b.Org)
}

func (v *validator) orgRef(o *OrgRef) error {
	if err := v.push("Org-ref"); err != nil {
		return err
	}
	defer v.pop()
	for _, db := range o.Db {
		if err := v.dbTag(db); err != nil {
			return err
		}
	}
	if o.OrgName != nil && o.OrgName.Name != nil {
		if _, err := o.OrgName.Name.Arm(); err != nil {
			return v.arm("OrgName.name", err)
		}
	}
	return nil
}

func (v *validator) seqInst(inst *SeqInst) error {
	if err := v.push("Seq-inst"); err != nil {
		return err
	}
	defer v.pop()
	if inst.Length == nil {
		switch inst.Repr {
		case ReprNotSet, ReprVirtual, ReprMap:
		default:
			return schemaErrf(v.at(), "%s representation requires a length", inst.Repr)
		}
	}
	if inst.Fuzz != nil {
		if err := v.intFuzz(inst.Fuzz); err != nil {
			return err
		}
	}
	if inst.SeqData != nil {
		if err := v.seqData(inst.SeqData, inst.Length); err != nil {
			return err
		}
	}
	if inst.Ext != nil {
		if err := v.seqExt(inst.Ext); err != nil {
			return err
		}
	}
	if inst.Hist != nil {
		if err := v.seqHist(inst.Hist); err != nil {
			return err
		}
	}
	return nil
}

// seqData checks the choice arm and, when a declared length is available,
// that the payload can actually hold that many residues.
func (v *validator) seqData(d *SeqData, declared *int64) error {
	if err := v.push("Seq-data"); err != nil {
		return err
	}
	defer v.pop()
	if _, err := d.Arm(); err != nil {
		return v.arm("Seq-data", err)
	}
	if declared == nil {
		return nil
	}
	min, max, ok := d.residueCount()
	if !ok {
		return nil
	}
	if *declared < min || *declared > max {
		if min == max {
			return schemaErrf(v.at(), "declared length %d but data holds %d residues",
				*declared, min)
		}
		return schemaErrf(v.at(), "declared length %d but data holds %d to %d residues",
			*declared, min, max)
	}
	return nil
}

func (v *validator) seqExt(e *SeqExt) error {
	if err := v.push("Seq-ext"); err != nil {
		return err
	}
	defer v.pop()
	arm, err := e.Arm()
	if err != nil {
		return v.arm("Seq-ext", err)
	}
	switch arm {
	case "seg":
		for _, loc := range e.Seg {
			if err := v.seqLoc(loc); err != nil {
				return err
			}
		}
	case "ref":
		return v.seqLoc(e.Ref)
	case "delta":
		for _, ds := range e.Delta {
			if err := v.deltaSeq(ds); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *validator) deltaSeq(d *DeltaSeq) error {
	if err := v.push("Delta-seq"); err != nil {
		return err
	}
	defer v.pop()
	arm, err := d.Arm()
	if err != nil {
		return v.arm("Delta-seq", err)
	}
	if arm == "loc" {
		return v.seqLoc(d.Loc)
	}
	lit := d.Literal
	if lit.Fuzz != nil {
		if err := v.intFuzz(lit.Fuzz); err != nil {
			return err
		}
	}
	if lit.SeqData != nil {
		return v.seqData(lit.SeqData, &lit.Length)
	}
	return nil
}

func (v *validator) seqHist(h *SeqHist) error {
	if err := v.push("Seq-hist"); err != nil {
		return err
	}
	defer v.pop()
	for _, rec := range []*SeqHistRec{h.Replaces, h.ReplacedBy} {
		if rec == nil {
			continue
		}
		if rec.Date != nil {
			if err := v.date(rec.Date); err != nil {
				return err
			}
		}
		for _, id := range rec.IDs {
			if err := v.seqID(id); err != nil {
				return err
			}
		}
	}
	if h.Deleted != nil {
		if _, err := h.Deleted.Arm(); err != nil {
			return v.arm("Seq-hist.deleted", err)
		}
		if h.Deleted.Date != nil {
			return v.date(h.Deleted.Date)
		}
	}
	return nil
}

func (v *validator) seqLoc(l *SeqLoc) error {
	if err := v.push("Seq-loc"); err != nil {
		return err
	}
	defer v.pop()
	arm, err := l.Arm()
	if err != nil {
		return v.arm("Seq-loc", err)
	}
	switch arm {
	case "empty":
		return v.seqID(l.Empty)
	case "whole":
		return v.seqID(l.Whole)
	case "int":
		return v.seqInterval(l.Int)
	case "packed-int":
		for _, si := range l.PackedInt {
			if err := v.seqInterval(si); err != nil {
				return err
			}
		}
	case "pnt":
		return v.seqPoint(l.Pnt)
	case "packed-pnt":
		if l.PackedPnt.ID == nil {
			return schemaErrf(v.at(), "Packed-seqpnt has no id")
		}
		return v.seqID(l.PackedPnt.ID)
	case "mix":
		for _, inner := range l.Mix {
			if err := v.seqLoc(inner); err != nil {
				return err
			}
		}
	case "equiv":
		for _, inner := range l.Equiv {
			if err := v.seqLoc(inner); err != nil {
				return err
			}
		}
	case "bond":
		if l.Bond.A == nil {
			return schemaErrf(v.at(), "Seq-bond has no first end")
		}
		if err := v.seqPoint(l.Bond.A); err != nil {
			return err
		}
		if l.Bond.B != nil {
			return v.seqPoint(l.Bond.B)
		}
	case "feat":
		if _, err := l.Feat.Arm(); err != nil {
			return v.arm("Feat-id", err)
		}
	}
	return nil
}

func (v *validator) seqInterval(si *SeqInterval) error {
	if err := v.push("Seq-interval"); err != nil {
		return err
	}
	defer v.pop()
	if si.From > si.To {
		return schemaErrf(v.at(), "interval runs backwards: from %d after to %d",
			si.From, si.To)
	}
	if si.ID == nil {
		return schemaErrf(v.at(), "Seq-interval has no id")
	}
	if err := v.seqID(si.ID); err != nil {
		return err
	}
	for _, f := range []*IntFuzz{si.FuzzFrom, si.FuzzTo} {
		if f != nil {
			if err := v.intFuzz(f); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *validator) seqPoint(p *SeqPoint) error {
	if err := v.push("Seq-point"); err != nil {
		return err
	}
	defer v.pop()
	if p.ID == nil {
		return schemaErrf(v.at(), "Seq-point has no id")
	}
	if err := v.seqID(p.ID); err != nil {
		return err
	}
	if p.Fuzz != nil {
		return v.intFuzz(p.Fuzz)
	}
	return nil
}
