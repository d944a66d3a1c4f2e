package objects

import "encoding/xml"

// Decoders for the entry tree.

func (d *decoder) seqEntry(out *SeqEntry) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Seq-entry_seq":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Bioseq" {
					return d.unknown(inner, "Seq-entry.seq")
				}
				seq := &Bioseq{}
				if err := d.bioseq(seq); err != nil {
					return err
				}
				out.Seq = seq
				return nil
			})
		case "Seq-entry_set":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Bioseq-set" {
					return d.unknown(inner, "Seq-entry.set")
				}
				set := &BioseqSet{}
				if err := d.bioseqSet(set); err != nil {
					return err
				}
				out.Set = set
				return nil
			})
		default:
			return d.unknown(start, "Seq-entry")
		}
	})
}

func (d *decoder) bioseqSet(out *BioseqSet) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Bioseq-set_id":
			return d.wrappedObjectID(&out.ID, "Bioseq-set.id")
		case "Bioseq-set_coll":
			return d.wrappedDbTag(&out.Coll, "Bioseq-set.coll")
		case "Bioseq-set_level":
			return d.optInt(&out.Level)
		case "Bioseq-set_class":
			code, present, err := d.enumLeaf(start, bioseqSetClassEnum)
			if err != nil {
				return err
			}
			if present {
				out.Class = BioseqSetClass(code)
			}
			return nil
		case "Bioseq-set_release":
			return d.optStr(&out.Release)
		case "Bioseq-set_date":
			return d.wrappedDate(&out.Date, "Bioseq-set.date")
		case "Bioseq-set_descr":
			return d.seqDescr(&out.Descr, "Bioseq-set.descr")
		case "Bioseq-set_seq-set":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Seq-entry" {
					return d.unknown(inner, "Bioseq-set.seq-set")
				}
				entry := &SeqEntry{}
				if err := d.seqEntry(entry); err != nil {
					return err
				}
				if _, armErr := entry.Arm(); d.keepChoice(armErr) {
					out.SeqSet = append(out.SeqSet, entry)
				}
				return nil
			})
		case "Bioseq-set_annot":
			// Annotation bodies fall outside the modeled subset.
			return d.skipOutOfScope(start)
		default:
			return d.unknown(start, "Bioseq-set")
		}
	})
}
