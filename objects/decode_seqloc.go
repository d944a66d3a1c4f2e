package objects

import "encoding/xml"

// Decoders for sequence ids and locations. The two big choices dispatch
// through package-level tables; see dispatch.go.

func (d *decoder) seqID(out *SeqID) error {
	return d.children(func(start xml.StartElement) error {
		arm, ok := seqIDArms[start.Name.Local]
		if !ok {
			return d.unknown(start, "Seq-id")
		}
		return arm(d, start, out)
	})
}

// seqIDList decodes a run of Seq-id children under a wrapper field.
func (d *decoder) seqIDList(out *[]*SeqID, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Seq-id" {
			return d.unknown(start, context)
		}
		id := &SeqID{}
		if err := d.seqID(id); err != nil {
			return err
		}
		if _, armErr := id.Arm(); d.keepChoice(armErr) {
			*out = append(*out, id)
		}
		return nil
	})
}

func (d *decoder) wrappedSeqID(out **SeqID, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Seq-id" {
			return d.unknown(start, context)
		}
		id := &SeqID{}
		if err := d.seqID(id); err != nil {
			return err
		}
		if _, armErr := id.Arm(); d.keepChoice(armErr) {
			*out = id
		}
		return nil
	})
}

func (d *decoder) textseqID(out *TextseqID) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Textseq-id_name":
			return d.optStr(&out.Name)
		case "Textseq-id_accession":
			return d.optStr(&out.Accession)
		case "Textseq-id_release":
			return d.optStr(&out.Release)
		case "Textseq-id_version":
			return d.optInt(&out.Version)
		default:
			return d.unknown(start, "Textseq-id")
		}
	})
}

// textseqIDArm decodes one of the many Seq-id arms that wrap a Textseq-id.
func (d *decoder) textseqIDArm(out **TextseqID, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Textseq-id" {
			return d.unknown(start, context)
		}
		id := &TextseqID{}
		if err := d.textseqID(id); err != nil {
			return err
		}
		*out = id
		return nil
	})
}

func (d *decoder) giimportID(out *GiimportID) error {
	seenID := false
	err := d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Giimport-id_id":
			return d.reqInt(&out.ID, &seenID)
		case "Giimport-id_db":
			return d.optStr(&out.Db)
		case "Giimport-id_release":
			return d.optStr(&out.Release)
		default:
			return d.unknown(start, "Giimport-id")
		}
	})
	if err != nil {
		return err
	}
	if !seenID {
		return schemaErrf(d.at(), "Giimport-id has no id")
	}
	return nil
}

func (d *decoder) patentSeqID(out *PatentSeqID) error {
	seenNum := false
	err := d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Patent-seq-id_seqid":
			return d.reqInt(&out.SeqID, &seenNum)
		case "Patent-seq-id_cit":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Id-pat" {
					return d.unknown(inner, "Patent-seq-id.cit")
				}
				cit := &IDPat{}
				if err := d.idPat(cit); err != nil {
					return err
				}
				out.Cit = cit
				return nil
			})
		default:
			return d.unknown(start, "Patent-seq-id")
		}
	})
	if err != nil {
		return err
	}
	if !seenNum {
		return schemaErrf(d.at(), "Patent-seq-id has no sequence number")
	}
	return nil
}

func (d *decoder) pdbSeqID(out *PDBSeqID) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "PDB-seq-id_mol":
			return d.reqStr(&out.Mol)
		case "PDB-seq-id_rel":
			return d.wrappedDate(&out.Rel, "PDB-seq-id.rel")
		case "PDB-seq-id_chain-id":
			return d.optStr(&out.ChainID)
		default:
			return d.unknown(start, "PDB-seq-id")
		}
	})
}

func (d *decoder) seqLoc(out *SeqLoc) error {
	return d.children(func(start xml.StartElement) error {
		arm, ok := seqLocArms[start.Name.Local]
		if !ok {
			return d.unknown(start, "Seq-loc")
		}
		return arm(d, start, out)
	})
}

func (d *decoder) seqLocList(out *[]*SeqLoc, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Seq-loc" {
			return d.unknown(start, context)
		}
		loc := &SeqLoc{}
		if err := d.seqLoc(loc); err != nil {
			return err
		}
		if _, armErr := loc.Arm(); d.keepChoice(armErr) {
			*out = append(*out, loc)
		}
		return nil
	})
}

func (d *decoder) wrappedSeqLoc(out **SeqLoc, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Seq-loc" {
			return d.unknown(start, context)
		}
		loc := &SeqLoc{}
		if err := d.seqLoc(loc); err != nil {
			return err
		}
		if _, armErr := loc.Arm(); d.keepChoice(armErr) {
			*out = loc
		}
		return nil
	})
}

func (d *decoder) seqInterval(out *SeqInterval) error {
	seenFrom, seenTo := false, false
	err := d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Seq-interval_from":
			return d.reqInt(&out.From, &seenFrom)
		case "Seq-interval_to":
			return d.reqInt(&out.To, &seenTo)
		case "Seq-interval_strand":
			code, present, err := d.wrappedEnum("Na-strand", naStrandEnum)
			if err != nil {
				return err
			}
			if present {
				s := NaStrand(code)
				out.Strand = &s
			}
			return nil
		case "Seq-interval_id":
			return d.wrappedSeqID(&out.ID, "Seq-interval.id")
		case "Seq-interval_fuzz-from":
			return d.wrappedIntFuzz(&out.FuzzFrom, "Seq-interval.fuzz-from")
		case "Seq-interval_fuzz-to":
			return d.wrappedIntFuzz(&out.FuzzTo, "Seq-interval.fuzz-to")
		default:
			return d.unknown(start, "Seq-interval")
		}
	})
	if err != nil {
		return err
	}
	if !seenFrom {
		return schemaErrf(d.at(), "Seq-interval has no from position")
	}
	if !seenTo {
		return schemaErrf(d.at(), "Seq-interval has no to position")
	}
	return nil
}

func (d *decoder) seqIntervalList(out *[]*SeqInterval, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Seq-interval" {
			return d.unknown(start, context)
		}
		si := &SeqInterval{}
		if err := d.seqInterval(si); err != nil {
			return err
		}
		*out = append(*out, si)
		return nil
	})
}

func (d *decoder) seqPoint(out *SeqPoint) error {
	seenPoint := false
	err := d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Seq-point_point":
			return d.reqInt(&out.Point, &seenPoint)
		case "Seq-point_strand":
			code, present, err := d.wrappedEnum("Na-strand", naStrandEnum)
			if err != nil {
				return err
			}
			if present {
				s := NaStrand(code)
				out.Strand = &s
			}
			return nil
		case "Seq-point_id":
			return d.wrappedSeqID(&out.ID, "Seq-point.id")
		case "Seq-point_fuzz":
			return d.wrappedIntFuzz(&out.Fuzz, "Seq-point.fuzz")
		default:
			return d.unknown(start, "Seq-point")
		}
	})
	if err != nil {
		return err
	}
	if !seenPoint {
		return schemaErrf(d.at(), "Seq-point has no position")
	}
	return nil
}

func (d *decoder) wrappedSeqPoint(out **SeqPoint, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Seq-point" {
			return d.unknown(start, context)
		}
		pt := &SeqPoint{}
		if err := d.seqPoint(pt); err != nil {
			return err
		}
		*out = pt
		return nil
	})
}

func (d *decoder) packedSeqPnt(out *PackedSeqPnt) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Packed-seqpnt_strand":
			code, present, err := d.wrappedEnum("Na-strand", naStrandEnum)
			if err != nil {
				return err
			}
			if present {
				s := NaStrand(code)
				out.Strand = &s
			}
			return nil
		case "Packed-seqpnt_id":
			return d.wrappedSeqID(&out.ID, "Packed-seqpnt.id")
		case "Packed-seqpnt_fuzz":
			return d.wrappedIntFuzz(&out.Fuzz, "Packed-seqpnt.fuzz")
		case "Packed-seqpnt_points":
			return d.intList("Packed-seqpnt_points_E", &out.Points, "Packed-seqpnt.points")
		default:
			return d.unknown(start, "Packed-seqpnt")
		}
	})
}

func (d *decoder) seqBond(out *SeqBond) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Seq-bond_a":
			return d.wrappedSeqPoint(&out.A, "Seq-bond.a")
		case "Seq-bond_b":
			return d.wrappedSeqPoint(&out.B, "Seq-bond.b")
		default:
			return d.unknown(start, "Seq-bond")
		}
	})
}

func (d *decoder) featID(out *FeatID) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Feat-id_gibb":
			return d.optInt(&out.Gibb)
		case "Feat-id_giim":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Giimport-id" {
					return d.unknown(inner, "Feat-id.giim")
				}
				giim := &GiimportID{}
				if err := d.giimportID(giim); err != nil {
					return err
				}
				out.Giim = giim
				return nil
			})
		case "Feat-id_local":
			return d.wrappedObjectID(&out.Local, "Feat-id.local")
		case "Feat-id_general":
			return d.wrappedDbTag(&out.General, "Feat-id.general")
		default:
			return d.unknown(start, "Feat-id")
		}
	})
}
