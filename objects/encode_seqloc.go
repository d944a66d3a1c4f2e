package objects

// Encoders for sequence ids and locations.

func (e *encoder) seqID(id *SeqID) error {
	return e.element("Seq-id", func() error {
		switch {
		case id.Local != nil:
			return e.element("Seq-id_local", func() error {
				return e.objectID(id.Local)
			})
		case id.GibbSq != nil:
			return e.leafInt("Seq-id_gibbsq", *id.GibbSq)
		case id.GibbMt != nil:
			return e.leafInt("Seq-id_gibbmt", *id.GibbMt)
		case id.Giim != nil:
			return e.element("Seq-id_giim", func() error {
				return e.giimportID(id.Giim)
			})
		case id.Genbank != nil:
			return e.textseqIDArm("Seq-id_genbank", id.Genbank)
		case id.Embl != nil:
			return e.textseqIDArm("Seq-id_embl", id.Embl)
		case id.Pir != nil:
			return e.textseqIDArm("Seq-id_pir", id.Pir)
		case id.Swissprot != nil:
			return e.textseqIDArm("Seq-id_swissprot", id.Swissprot)
		case id.Patent != nil:
			return e.element("Seq-id_patent", func() error {
				return e.patentSeqID(id.Patent)
			})
		case id.Other != nil:
			return e.textseqIDArm("Seq-id_other", id.Other)
		case id.General != nil:
			return e.element("Seq-id_general", func() error {
				return e.dbTag(id.General)
			})
		case id.Gi != nil:
			return e.leafInt("Seq-id_gi", *id.Gi)
		case id.Ddbj != nil:
			return e.textseqIDArm("Seq-id_ddbj", id.Ddbj)
		case id.Prf != nil:
			return e.textseqIDArm("Seq-id_prf", id.Prf)
		case id.Pdb != nil:
			return e.element("Seq-id_pdb", func() error {
				return e.pdbSeqID(id.Pdb)
			})
		case id.Tpg != nil:
			return e.textseqIDArm("Seq-id_tpg", id.Tpg)
		case id.Tpe != nil:
			return e.textseqIDArm("Seq-id_tpe", id.Tpe)
		case id.Tpd != nil:
			return e.textseqIDArm("Seq-id_tpd", id.Tpd)
		case id.Gpipe != nil:
			return e.textseqIDArm("Seq-id_gpipe", id.Gpipe)
		default:
			return e.textseqIDArm("Seq-id_named-annot-track", id.NamedAnnotTrack)
		}
	})
}

func (e *encoder) textseqIDArm(field string, id *TextseqID) error {
	return e.element(field, func() error {
		return e.element("Textseq-id", func() error {
			if id.Name != nil {
				if err := e.leaf("Textseq-id_name", *id.Name); err != nil {
					return err
				}
			}
			if id.Accession != nil {
				if err := e.leaf("Textseq-id_accession", *id.Accession); err != nil {
					return err
				}
			}
			if id.Release != nil {
				if err := e.leaf("Textseq-id_release", *id.Release); err != nil {
					return err
				}
			}
			if id.Version != nil {
				return e.leafInt("Textseq-id_version", *id.Version)
			}
			return nil
		})
	})
}

func (e *encoder) giimportID(g *GiimportID) error {
	return e.element("Giimport-id", func() error {
		if err := e.leafInt("Giimport-id_id", g.ID); err != nil {
			return err
		}
		if g.Db != nil {
			if err := e.leaf("Giimport-id_db", *g.Db); err != nil {
				return err
			}
		}
		if g.Release != nil {
			return e.leaf("Giimport-id_release", *g.Release)
		}
		return nil
	})
}

func (e *encoder) patentSeqID(p *PatentSeqID) error {
	return e.element("Patent-seq-id", func() error {
		if err := e.leafInt("Patent-seq-id_seqid", p.SeqID); err != nil {
			return err
		}
		return e.element("Patent-seq-id_cit", func() error {
			return e.idPat(p.Cit)
		})
	})
}

func (e *encoder) pdbSeqID(p *PDBSeqID) error {
	return e.element("PDB-seq-id", func() error {
		if err := e.leaf("PDB-seq-id_mol", p.Mol); err != nil {
			return err
		}
		if p.Rel != nil {
			if err := e.element("PDB-seq-id_rel", func() error {
				return e.date(p.Rel)
			}); err != nil {
				return err
			}
		}
		if p.ChainID != nil {
			return e.leaf("PDB-seq-id_chain-id", *p.ChainID)
		}
		return nil
	})
}

func (e *encoder) seqLoc(loc *SeqLoc) error {
	return e.element("Seq-loc", func() error {
		switch {
		case loc.Null:
			if err := e.open("Seq-loc_null"); err != nil {
				return err
			}
			return e.close("Seq-loc_null")
		case loc.Empty != nil:
			return e.element("Seq-loc_empty", func() error {
				return e.seqID(loc.Empty)
			})
		case loc.Whole != nil:
			return e.element("Seq-loc_whole", func() error {
				return e.seqID(loc.Whole)
			})
		case loc.Int != nil:
			return e.element("Seq-loc_int", func() error {
				return e.seqInterval(loc.Int)
			})
		case loc.PackedInt != nil:
			return e.element("Seq-loc_packed-int", func() error {
				for _, si := range loc.PackedInt {
					if err := e.seqInterval(si); err != nil {
						return err
					}
				}
				return nil
			})
		case loc.Pnt != nil:
			return e.element("Seq-loc_pnt", func() error {
				return e.seqPoint(loc.Pnt)
			})
		case loc.PackedPnt != nil:
			return e.element("Seq-loc_packed-pnt", func() error {
				return e.packedSeqPnt(loc.PackedPnt)
			})
		case loc.Mix != nil:
			return e.element("Seq-loc_mix", func() error {
				for _, l := range loc.Mix {
					if err := e.seqLoc(l); err != nil {
						return err
					}
				}
				return nil
			})
		case loc.Equiv != nil:
			return e.element("Seq-loc_equiv", func() error {
				for _, l := range loc.Equiv {
					if err := e.seqLoc(l); err != nil {
						return err
					}
				}
				return nil
			})
		case loc.Bond != nil:
			return e.element("Seq-loc_bond", func() error {
				return e.seqBond(loc.Bond)
			})
		default:
			return e.element("Seq-loc_feat", func() error {
				return e.featID(loc.Feat)
			})
		}
	})
}

func (e *encoder) seqInterval(si *SeqInterval) error {
	return e.element("Seq-interval", func() error {
		if err := e.leafInt("Seq-interval_from", si.From); err != nil {
			return err
		}
		if err := e.leafInt("Seq-interval_to", si.To); err != nil {
			return err
		}
		if si.Strand != nil {
			if err := e.wrappedEnumLeaf("Seq-interval_strand", "Na-strand",
				naStrandEnum, int64(*si.Strand)); err != nil {
				return err
			}
		}
		if err := e.element("Seq-interval_id", func() error {
			return e.seqID(si.ID)
		}); err != nil {
			return err
		}
		if si.FuzzFrom != nil {
			if err := e.element("Seq-interval_fuzz-from", func() error {
				return e.intFuzz(si.FuzzFrom)
			}); err != nil {
				return err
			}
		}
		if si.FuzzTo != nil {
			return e.element("Seq-interval_fuzz-to", func() error {
				return e.intFuzz(si.FuzzTo)
			})
		}
		return nil
	})
}

func (e *encoder) seqPoint(p *SeqPoint) error {
	return e.element("Seq-point", func() error {
		if err := e.leafInt("Seq-point_point", p.Point); err != nil {
			return err
		}
		if p.Strand != nil {
			if err := e.wrappedEnumLeaf("Seq-point_strand", "Na-strand",
				naStrandEnum, int64(*p.Strand)); err != nil {
				return err
			}
		}
		if err := e.element("Seq-point_id", func() error {
			return e.seqID(p.ID)
		}); err != nil {
			return err
		}
		if p.Fuzz != nil {
			return e.element("Seq-point_fuzz", func() error {
				return e.intFuzz(p.Fuzz)
			})
		}
		return nil
	})
}

func (e *encoder) packedSeqPnt(pp *PackedSeqPnt) error {
	return e.element("Packed-seqpnt", func() error {
		if pp.Strand != nil {
			if err := e.wrappedEnumLeaf("Packed-seqpnt_strand", "Na-strand",
				naStrandEnum, int64(*pp.Strand)); err != nil {
				return err
			}
		}
		if err := e.element("Packed-seqpnt_id", func() error {
			return e.seqID(pp.ID)
		}); err != nil {
			return err
		}
		if pp.Fuzz != nil {
			if err := e.element("Packed-seqpnt_fuzz", func() error {
				return e.intFuzz(pp.Fuzz)
			}); err != nil {
				return err
			}
		}
		return e.intList("Packed-seqpnt_points", "Packed-seqpnt_points_E", pp.Points)
	})
}

func (e *encoder) seqBond(b *SeqBond) error {
	return e.element("Seq-bond", func() error {
		if err := e.element("Seq-bond_a", func() error {
			return e.seqPoint(b.A)
		}); err != nil {
			return err
		}
		if b.B != nil {
			return e.element("Seq-bond_b", func() error {
				return e.seqPoint(b.B)
			})
		}
		return nil
	})
}

func (e *encoder) featID(f *FeatID) error {
	return e.element("Feat-id", func() error {
		switch {
		case f.Gibb != nil:
			return e.leafInt("Feat-id_gibb", *f.Gibb)
		case f.Giim != nil:
			return e.element("Feat-id_giim", func() error {
				return e.giimportID(f.Giim)
			})
		case f.Local != nil:
			return e.element("Feat-id_local", func() error {
				return e.objectID(f.Local)
			})
		default:
			return e.element("Feat-id_general", func() error {
				return e.dbTag(f.General)
			})
		}
	})
}
