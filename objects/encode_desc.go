package objects

// Encoders for descriptors.

func (e *encoder) seqdesc(d *Seqdesc) error {
	switch {
	case d.MolType != nil:
		return e.wrappedEnumLeaf("Seqdesc_mol-type", "GIBB-mol", gibbMolEnum, int64(*d.MolType))
	case d.Modif != nil:
		return e.element("Seqdesc_modif", func() error {
			for _, m := range d.Modif {
				if err := e.leafEnum("GIBB-mod", gibbModEnum, int64(m)); err != nil {
					return err
				}
			}
			return nil
		})
	case d.Method != nil:
		return e.wrappedEnumLeaf("Seqdesc_method", "GIBB-method", gibbMethodEnum, int64(*d.Method))
	case d.Name != nil:
		return e.leaf("Seqdesc_name", *d.Name)
	case d.Title != nil:
		return e.leaf("Seqdesc_title", *d.Title)
	case d.Org != nil:
		return e.element("Seqdesc_org", func() error {
			return e.orgRef(d.Org)
		})
	case d.Comment != nil:
		return e.leaf("Seqdesc_comment", *d.Comment)
	case d.Num != nil:
		return e.element("Seqdesc_num", func() error {
			return e.numbering(d.Num)
		})
	case d.MapLoc != nil:
		return e.element("Seqdesc_maploc", func() error {
			return e.dbTag(d.MapLoc)
		})
	case d.Pir != nil:
		return e.element("Seqdesc_pir", func() error {
			return e.pirBlock(d.Pir)
		})
	case d.Genbank != nil:
		return e.element("Seqdesc_genbank", func() error {
			return e.gbBlock(d.Genbank)
		})
	case d.Pub != nil:
		return e.element("Seqdesc_pub", func() error {
			return e.pubDesc(d.Pub)
		})
	case d.Region != nil:
		return e.leaf("Seqdesc_region", *d.Region)
	case d.User != nil:
		return e.element("Seqdesc_user", func() error {
			return e.userObject(d.User)
		})
	case d.Sp != nil:
		return e.element("Seqdesc_sp", func() error {
			return e.spBlock(d.Sp)
		})
	case d.DbXref != nil:
		return e.element("Seqdesc_dbxref", func() error {
			return e.dbTag(d.DbXref)
		})
	case d.Embl != nil:
		return e.element("Seqdesc_embl", func() error {
			return e.emblBlock(d.Embl)
		})
	case d.CreateDate != nil:
		return e.element("Seqdesc_create-date", func() error {
			return e.date(d.CreateDate)
		})
	case d.UpdateDate != nil:
		return e.element("Seqdesc_update-date", func() error {
			return e.date(d.UpdateDate)
		})
	case d.Prf != nil:
		return e.element("Seqdesc_prf", func() error {
			return e.prfBlock(d.Prf)
		})
	case d.Pdb != nil:
		return e.element("Seqdesc_pdb", func() error {
			return e.pdbBlock(d.Pdb)
		})
	case d.Het != nil:
		return e.leaf("Seqdesc_het", *d.Het)
	case d.Source != nil:
		return e.element("Seqdesc_source", func() error {
			return e.bioSource(d.Source)
		})
	default:
		return e.element("Seqdesc_molinfo", func() error {
			return e.molInfo(d.MolInfo)
		})
	}
}

func (e *encoder) molInfo(mi *MolInfo) error {
	return e.element("MolInfo", func() error {
		if mi.BioMol != BioMolUnknown {
			if err := e.leafEnum("MolInfo_biomol", bioMolEnum, int64(mi.BioMol)); err != nil {
				return err
			}
		}
		if mi.Tech != MolTechUnknown {
			if err := e.leafEnum("MolInfo_tech", molTechEnum, int64(mi.Tech)); err != nil {
				return err
			}
		}
		if mi.TechExp != nil {
			if err := e.leaf("MolInfo_techexp", *mi.TechExp); err != nil {
				return err
			}
		}
		if mi.Completeness != MolCompletenessUnknown {
			if err := e.leafEnum("MolInfo_completeness", molCompletenessEnum,
				int64(mi.Completeness)); err != nil {
				return err
			}
		}
		if mi.GBMolType != nil {
			return e.leaf("MolInfo_gbmoltype", *mi.GBMolType)
		}
		return nil
	})
}

func (e *encoder) numbering(n *Numbering) error {
	return e.element("Numbering", func() error {
		switch {
		case n.Cont != nil:
			return e.element("Numbering_cont", func() error {
				return e.element("Num-cont", func() error {
					if n.Cont.RefNum != nil {
						if err := e.leafInt("Num-cont_refnum", *n.Cont.RefNum); err != nil {
							return err
						}
					}
					if n.Cont.HasZero != nil {
						if err := e.leafBool("Num-cont_has-zero", *n.Cont.HasZero); err != nil {
							return err
						}
					}
					if n.Cont.Ascending != nil {
						return e.leafBool("Num-cont_ascending", *n.Cont.Ascending)
					}
					return nil
				})
			})
		case n.Enum != nil:
			return e.element("Numbering_enum", func() error {
				return e.element("Num-enum", func() error {
					if err := e.leafInt("Num-enum_num", n.Enum.Num); err != nil {
						return err
					}
					if n.Enum.Names != nil {
						return e.stringList("Num-enum_names", "Num-enum_names_E", n.Enum.Names)
					}
					return nil
				})
			})
		case n.Ref != nil:
			return e.element("Numbering_ref", func() error {
				return e.element("Num-ref", func() error {
					return e.leafEnum("Num-ref_type", numRefTypeEnum, int64(n.Ref.Type))
				})
			})
		default:
			return e.element("Numbering_real", func() error {
				return e.element("Num-real", func() error {
					if err := e.leafFloat("Num-real_a", n.Real.A); err != nil {
						return err
					}
					if err := e.leafFloat("Num-real_b", n.Real.B); err != nil {
						return err
					}
					if n.Real.Units != nil {
						return e.leaf("Num-real_units", *n.Real.Units)
					}
					return nil
				})
			})
		}
	})
}

func (e *encoder) pubDesc(pd *PubDesc) error {
	return e.element("Pubdesc", func() error {
		if err := e.element("Pubdesc_pub", func() error {
			return e.element("Pub-equiv", func() error {
				for _, p := range pd.Pub {
					if err := e.pub(p); err != nil {
						return err
					}
				}
				return nil
			})
		}); err != nil {
			return err
		}
		if pd.Name != nil {
			if err := e.leaf("Pubdesc_name", *pd.Name); err != nil {
				return err
			}
		}
		if pd.Fig != nil {
			if err := e.leaf("Pubdesc_fig", *pd.Fig); err != nil {
				return err
			}
		}
		if pd.Num != nil {
			if err := e.element("Pubdesc_num", func() error {
				return e.numbering(pd.Num)
			}); err != nil {
				return err
			}
		}
		if pd.NumExc != nil {
			if err := e.leafBool("Pubdesc_numexc", *pd.NumExc); err != nil {
				return err
			}
		}
		if pd.PolyA != nil {
			if err := e.leafBool("Pubdesc_poly-a", *pd.PolyA); err != nil {
				return err
			}
		}
		if pd.MapLoc != nil {
			if err := e.leaf("Pubdesc_maploc", *pd.MapLoc); err != nil {
				return err
			}
		}
		if pd.SeqRaw != nil {
			if err := e.leaf("Pubdesc_seq-raw", *pd.SeqRaw); err != nil {
				return err
			}
		}
		if pd.AlignGroup != nil {
			if err := e.leafInt("Pubdesc_align-group", *pd.AlignGroup); err != nil {
				return err
			}
		}
		if pd.Comment != nil {
			if err := e.leaf("Pubdesc_comment", *pd.Comment); err != nil {
				return err
			}
		}
		if pd.RefType != PubDescRefTypeSeq {
			return e.leafEnum("Pubdesc_reftype", pubDescRefTypeEnum, int64(pd.RefType))
		}
		return nil
	})
}
