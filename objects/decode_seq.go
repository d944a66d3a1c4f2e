package objects

import "encoding/xml"

// Decoders for the Bioseq and its instance.

func (d *decoder) bioseq(out *Bioseq) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Bioseq_id":
			return d.seqIDList(&out.ID, "Bioseq.id")
		case "Bioseq_descr":
			return d.seqDescr(&out.Descr, "Bioseq.descr")
		case "Bioseq_inst":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Seq-inst" {
					return d.unknown(inner, "Bioseq.inst")
				}
				inst := &SeqInst{}
				if err := d.seqInst(inst); err != nil {
					return err
				}
				out.Inst = inst
				return nil
			})
		case "Bioseq_annot":
			// Annotation bodies (features, alignments, graphs) fall outside
			// the modeled subset.
			return d.skipOutOfScope(start)
		default:
			return d.unknown(start, "Bioseq")
		}
	})
}

// skipOutOfScope is for elements the schema knows about but this library
// deliberately does not model. Unlike unknown, a strict decode skips them
// too: they are not evidence of a malformed document.
func (d *decoder) skipOutOfScope(start xml.StartElement) error {
	_ = start
	return d.skip()
}

// seqDescr decodes a descriptor list behind its Seq-descr wrapper.
func (d *decoder) seqDescr(out *[]*Seqdesc, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Seq-descr" {
			return d.unknown(start, context)
		}
		return d.children(func(inner xml.StartElement) error {
			if inner.Name.Local != "Seqdesc" {
				return d.unknown(inner, "Seq-descr")
			}
			desc := &Seqdesc{}
			if err := d.seqdesc(desc); err != nil {
				return err
			}
			if _, armErr := desc.Arm(); d.keepChoice(armErr) {
				*out = append(*out, desc)
			}
			return nil
		})
	})
}

func (d *decoder) seqdesc(out *Seqdesc) error {
	return d.children(func(start xml.StartElement) error {
		arm, ok := seqdescArms[start.Name.Local]
		if !ok {
			return d.unknown(start, "Seqdesc")
		}
		return arm(d, start, out)
	})
}

func (d *decoder) molInfo(out *MolInfo) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "MolInfo_biomol":
			code, present, err := d.enumLeaf(start, bioMolEnum)
			if err != nil {
				return err
			}
			if present {
				out.BioMol = BioMol(code)
			}
			return nil
		case "MolInfo_tech":
			code, present, err := d.enumLeaf(start, molTechEnum)
			if err != nil {
				return err
			}
			if present {
				out.Tech = MolTech(code)
			}
			return nil
		case "MolInfo_techexp":
			return d.optStr(&out.TechExp)
		case "MolInfo_completeness":
			code, present, err := d.enumLeaf(start, molCompletenessEnum)
			if err != nil {
				return err
			}
			if present {
				out.Completeness = MolCompleteness(code)
			}
			return nil
		case "MolInfo_gbmoltype":
			return d.optStr(&out.GBMolType)
		default:
			return d.unknown(start, "MolInfo")
		}
	})
}

func (d *decoder) numbering(out *Numbering) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Numbering_cont":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Num-cont" {
					return d.unknown(inner, "Numbering.cont")
				}
				nc := &NumCont{}
				if err := d.numCont(nc); err != nil {
					return err
				}
				out.Cont = nc
				return nil
			})
		case "Numbering_enum":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Num-enum" {
					return d.unknown(inner, "Numbering.enum")
				}
				ne := &NumEnum{}
				if err := d.numEnum(ne); err != nil {
					return err
				}
				out.Enum = ne
				return nil
			})
		case "Numbering_ref":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Num-ref" {
					return d.unknown(inner, "Numbering.ref")
				}
				nr := &NumRef{}
				if err := d.numRef(nr); err != nil {
					return err
				}
				out.Ref = nr
				return nil
			})
		case "Numbering_real":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Num-real" {
					return d.unknown(inner, "Numbering.real")
				}
				nr := &NumReal{}
				if err := d.numReal(nr); err != nil {
					return err
				}
				out.Real = nr
				return nil
			})
		default:
			return d.unknown(start, "Numbering")
		}
	})
}

func (d *decoder) wrappedNumbering(out **Numbering, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Numbering" {
			return d.unknown(start, context)
		}
		num := &Numbering{}
		if err := d.numbering(num); err != nil {
			return err
		}
		*out = num
		return nil
	})
}

func (d *decoder) numCont(out *NumCont) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Num-cont_refnum":
			return d.optInt(&out.RefNum)
		case "Num-cont_has-zero":
			v, present, err := d.boolLeaf(start)
			if err != nil {
				return err
			}
			if present {
				out.HasZero = &v
			}
			return nil
		case "Num-cont_ascending":
			v, present, err := d.boolLeaf(start)
			if err != nil {
				return err
			}
			if present {
				out.Ascending = &v
			}
			return nil
		default:
			return d.unknown(start, "Num-cont")
		}
	})
}

func (d *decoder) numEnum(out *NumEnum) error {
	seenNum := false
	err := d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Num-enum_num":
			return d.reqInt(&out.Num, &seenNum)
		case "Num-enum_names":
			return d.stringList("Num-enum_names_E", &out.Names, "Num-enum.names")
		default:
			return d.unknown(start, "Num-enum")
		}
	})
	if err != nil {
		return err
	}
	if !seenNum {
		return schemaErrf(d.at(), "Num-enum has no count")
	}
	return nil
}

func (d *decoder) numRef(out *NumRef) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Num-ref_type":
			code, present, err := d.enumLeaf(start, numRefTypeEnum)
			if err != nil {
				return err
			}
			if present {
				out.Type = NumRefType(code)
			}
			return nil
		case "Num-ref_aligns":
			// Alignment payloads fall outside the modeled subset.
			return d.skipOutOfScope(start)
		default:
			return d.unknown(start, "Num-ref")
		}
	})
}

func (d *decoder) numReal(out *NumReal) error {
	seenA, seenB := false, false
	err := d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Num-real_a":
			return d.reqFloat(&out.A, &seenA)
		case "Num-real_b":
			return d.reqFloat(&out.B, &seenB)
		case "Num-real_units":
			return d.optStr(&out.Units)
		default:
			return d.unknown(start, "Num-real")
		}
	})
	if err != nil {
		return err
	}
	if !seenA || !seenB {
		return schemaErrf(d.at(), "Num-real needs both coefficients")
	}
	return nil
}

func (d *decoder) pubDesc(out *PubDesc) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Pubdesc_pub":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Pub-equiv" {
					return d.unknown(inner, "Pubdesc.pub")
				}
				return d.pubList(&out.Pub, "Pub-equiv")
			})
		case "Pubdesc_name":
			return d.optStr(&out.Name)
		case "Pubdesc_fig":
			return d.optStr(&out.Fig)
		case "Pubdesc_num":
			return d.wrappedNumbering(&out.Num, "Pubdesc.num")
		case "Pubdesc_numexc":
			v, present, err := d.boolLeaf(start)
			if err != nil {
				return err
			}
			if present {
				out.NumExc = &v
			}
			return nil
		case "Pubdesc_poly-a":
			v, present, err := d.boolLeaf(start)
			if err != nil {
				return err
			}
			if present {
				out.PolyA = &v
			}
			return nil
		case "Pubdesc_maploc":
			return d.optStr(&out.MapLoc)
		case "Pubdesc_seq-raw":
			return d.optStr(&out.SeqRaw)
		case "Pubdesc_align-group":
			return d.optInt(&out.AlignGroup)
		case "Pubdesc_comment":
			return d.optStr(&out.Comment)
		case "Pubdesc_reftype":
			code, present, err := d.enumLeaf(start, pubDescRefTypeEnum)
			if err != nil {
				return err
			}
			if present {
				out.RefType = PubDescRefType(code)
			}
			return nil
		default:
			return d.unknown(start, "Pubdesc")
		}
	})
}

func (d *decoder) seqInst(out *SeqInst) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Seq-inst_repr":
			code, present, err := d.enumLeaf(start, reprEnum)
			if err != nil {
				return err
			}
			if present {
				out.Repr = Repr(code)
			}
			return nil
		case "Seq-inst_mol":
			code, present, err := d.enumLeaf(start, molEnum)
			if err != nil {
				return err
			}
			if present {
				out.Mol = Mol(code)
			}
			return nil
		case "Seq-inst_length":
			return d.optInt(&out.Length)
		case "Seq-inst_fuzz":
			return d.wrappedIntFuzz(&out.Fuzz, "Seq-inst.fuzz")
		case "Seq-inst_topology":
			code, present, err := d.enumLeaf(start, topologyEnum)
			if err != nil {
				return err
			}
			if present {
				out.Topology = Topology(code)
			}
			return nil
		case "Seq-inst_strand":
			code, present, err := d.enumLeaf(start, strandEnum)
			if err != nil {
				return err
			}
			if present {
				out.Strand = Strand(code)
			}
			return nil
		case "Seq-inst_seq-data":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Seq-data" {
					return d.unknown(inner, "Seq-inst.seq-data")
				}
				data := &SeqData{}
				if err := d.seqData(data); err != nil {
					return err
				}
				out.SeqData = data
				return nil
			})
		case "Seq-inst_ext":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Seq-ext" {
					return d.unknown(inner, "Seq-inst.ext")
				}
				ext := &SeqExt{}
				if err := d.seqExt(ext); err != nil {
					return err
				}
				out.Ext = ext
				return nil
			})
		case "Seq-inst_hist":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Seq-hist" {
					return d.unknown(inner, "Seq-inst.hist")
				}
				hist := &SeqHist{}
				if err := d.seqHist(hist); err != nil {
					return err
				}
				out.Hist = hist
				return nil
			})
		default:
			return d.unknown(start, "Seq-inst")
		}
	})
}

func (d *decoder) seqData(out *SeqData) error {
	return d.children(func(start xml.StartElement) error {
		arm, ok := seqDataArms[start.Name.Local]
		if !ok {
			return d.unknown(start, "Seq-data")
		}
		return arm(d, start, out)
	})
}

func (d *decoder) seqGap(out *SeqGap) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Seq-gap_type":
			code, present, err := d.enumLeaf(start, seqGapTypeEnum)
			if err != nil {
				return err
			}
			if present {
				out.Type = SeqGapType(code)
			}
			return nil
		case "Seq-gap_linkage":
			code, present, err := d.enumLeaf(start, seqGapLinkageEnum)
			if err != nil {
				return err
			}
			if present {
				l := SeqGapLinkage(code)
				out.Linkage = &l
			}
			return nil
		case "Seq-gap_linkage-evidence":
			out.LinkageEvidence = []*LinkageEvidence{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Linkage-evidence" {
					return d.unknown(inner, "Seq-gap.linkage-evidence")
				}
				ev := &LinkageEvidence{}
				err := d.children(func(field xml.StartElement) error {
					if field.Name.Local != "Linkage-evidence_type" {
						return d.unknown(field, "Linkage-evidence")
					}
					code, present, err := d.enumLeaf(field, linkageEvidenceEnum)
					if err != nil {
						return err
					}
					if present {
						ev.Type = LinkageEvidenceType(code)
					}
					return nil
				})
				if err != nil {
					return err
				}
				out.LinkageEvidence = append(out.LinkageEvidence, ev)
				return nil
			})
		default:
			return d.unknown(start, "Seq-gap")
		}
	})
}

func (d *decoder) seqExt(out *SeqExt) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Seq-ext_seg":
			out.Seg = []*SeqLoc{}
			return d.seqLocList(&out.Seg, "Seq-ext.seg")
		case "Seq-ext_ref":
			return d.wrappedSeqLoc(&out.Ref, "Seq-ext.ref")
		case "Seq-ext_delta":
			out.Delta = []*DeltaSeq{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Delta-seq" {
					return d.unknown(inner, "Seq-ext.delta")
				}
				ds := &DeltaSeq{}
				if err := d.deltaSeq(ds); err != nil {
					return err
				}
				if _, armErr := ds.Arm(); d.keepChoice(armErr) {
					out.Delta = append(out.Delta, ds)
				}
				return nil
			})
		default:
			return d.unknown(start, "Seq-ext")
		}
	})
}

func (d *decoder) deltaSeq(out *DeltaSeq) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Delta-seq_loc":
			return d.wrappedSeqLoc(&out.Loc, "Delta-seq.loc")
		case "Delta-seq_literal":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Seq-literal" {
					return d.unknown(inner, "Delta-seq.literal")
				}
				lit := &SeqLiteral{}
				if err := d.seqLiteral(lit); err != nil {
					return err
				}
				out.Literal = lit
				return nil
			})
		default:
			return d.unknown(start, "Delta-seq")
		}
	})
}

func (d *decoder) seqLiteral(out *SeqLiteral) error {
	seenLength := false
	err := d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Seq-literal_length":
			return d.reqInt(&out.Length, &seenLength)
		case "Seq-literal_fuzz":
			return d.wrappedIntFuzz(&out.Fuzz, "Seq-literal.fuzz")
		case "Seq-literal_seq-data":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Seq-data" {
					return d.unknown(inner, "Seq-literal.seq-data")
				}
				data := &SeqData{}
				if err := d.seqData(data); err != nil {
					return err
				}
				out.SeqData = data
				return nil
			})
		default:
			return d.unknown(start, "Seq-literal")
		}
	})
	if err != nil {
		return err
	}
	if !seenLength {
		return schemaErrf(d.at(), "Seq-literal has no length")
	}
	return nil
}

func (d *decoder) seqHist(out *SeqHist) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Seq-hist_assembly":
			// Alignments fall outside the modeled subset.
			return d.skipOutOfScope(start)
		case "Seq-hist_replaces":
			return d.seqHistRec(&out.Replaces, "Seq-hist.replaces")
		case "Seq-hist_replaced-by":
			return d.seqHistRec(&out.ReplacedBy, "Seq-hist.replaced-by")
		case "Seq-hist_deleted":
			del := &SeqHistDeleted{}
			err := d.children(func(inner xml.StartElement) error {
				switch inner.Name.Local {
				case "Seq-hist_deleted_bool":
					v, present, err := d.boolLeaf(inner)
					if err != nil {
						return err
					}
					if present {
						del.Bool = &v
					}
					return nil
				case "Seq-hist_deleted_date":
					return d.wrappedDate(&del.Date, "Seq-hist.deleted.date")
				default:
					return d.unknown(inner, "Seq-hist.deleted")
				}
			})
			if err != nil {
				return err
			}
			out.Deleted = del
			return nil
		default:
			return d.unknown(start, "Seq-hist")
		}
	})
}

func (d *decoder) seqHistRec(out **SeqHistRec, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Seq-hist-rec" {
			return d.unknown(start, context)
		}
		rec := &SeqHistRec{}
		err := d.children(func(inner xml.StartElement) error {
			switch inner.Name.Local {
			case "Seq-hist-rec_date":
				return d.wrappedDate(&rec.Date, "Seq-hist-rec.date")
			case "Seq-hist-rec_ids":
				return d.seqIDList(&rec.IDs, "Seq-hist-rec.ids")
			default:
				return d.unknown(inner, "Seq-hist-rec")
			}
		})
		if err != nil {
			return err
		}
		*out = rec
		return nil
	})
}
