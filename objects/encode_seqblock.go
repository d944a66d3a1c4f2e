package objects

// Encoders for the per-repository descriptor blocks.

func (e *encoder) gbBlock(gb *GBBlock) error {
	return e.element("GB-block", func() error {
		if len(gb.ExtraAccessions) > 0 {
			if err := e.stringList("GB-block_extra-accessions",
				"GB-block_extra-accessions_E", gb.ExtraAccessions); err != nil {
				return err
			}
		}
		if gb.Source != nil {
			if err := e.leaf("GB-block_source", *gb.Source); err != nil {
				return err
			}
		}
		if len(gb.Keywords) > 0 {
			if err := e.stringList("GB-block_keywords", "GB-block_keywords_E", gb.Keywords); err != nil {
				return err
			}
		}
		if gb.Origin != nil {
			if err := e.leaf("GB-block_origin", *gb.Origin); err != nil {
				return err
			}
		}
		if gb.Date != nil {
			if err := e.leaf("GB-block_date", *gb.Date); err != nil {
				return err
			}
		}
		if gb.EntryDate != nil {
			if err := e.element("GB-block_entry-date", func() error {
				return e.date(gb.EntryDate)
			}); err != nil {
				return err
			}
		}
		if gb.Div != nil {
			if err := e.leaf("GB-block_div", *gb.Div); err != nil {
				return err
			}
		}
		if gb.Taxonomy != nil {
			return e.leaf("GB-block_taxonomy", *gb.Taxonomy)
		}
		return nil
	})
}

func (e *encoder) emblBlock(eb *EMBLBlock) error {
	return e.element("EMBL-block", func() error {
		if eb.Class != 0 {
			if err := e.leafEnum("EMBL-block_class", emblClassEnum, int64(eb.Class)); err != nil {
				return err
			}
		}
		if eb.Div != nil {
			if err := e.leafEnum("EMBL-block_div", emblDivEnum, int64(*eb.Div)); err != nil {
				return err
			}
		}
		if eb.CreationDate != nil {
			if err := e.element("EMBL-block_creation-date", func() error {
				return e.date(eb.CreationDate)
			}); err != nil {
				return err
			}
		}
		if eb.UpdateDate != nil {
			if err := e.element("EMBL-block_update-date", func() error {
				return e.date(eb.UpdateDate)
			}); err != nil {
				return err
			}
		}
		if len(eb.ExtraAcc) > 0 {
			if err := e.stringList("EMBL-block_extra-acc", "EMBL-block_extra-acc_E",
				eb.ExtraAcc); err != nil {
				return err
			}
		}
		if len(eb.Keywords) > 0 {
			if err := e.stringList("EMBL-block_keywords", "EMBL-block_keywords_E",
				eb.Keywords); err != nil {
				return err
			}
		}
		if len(eb.Xref) > 0 {
			return e.element("EMBL-block_xref", func() error {
				for _, xref := range eb.Xref {
					if err := e.emblXref(xref); err != nil {
						return err
					}
				}
				return nil
			})
		}
		return nil
	})
}

func (e *encoder) emblXref(xref *EMBLXref) error {
	return e.element("EMBL-xref", func() error {
		if xref.DbName != nil {
			if err := e.element("EMBL-xref_dbname", func() error {
				return e.element("EMBL-dbname", func() error {
					if xref.DbName.Code != nil {
						return e.leafEnum("EMBL-dbname_code", emblDbNameEnum,
							int64(*xref.DbName.Code))
					}
					return e.leaf("EMBL-dbname_name", *xref.DbName.Name)
				})
			}); err != nil {
				return err
			}
		}
		if len(xref.ID) > 0 {
			return e.element("EMBL-xref_id", func() error {
				for _, oid := range xref.ID {
					if err := e.objectID(oid); err != nil {
						return err
					}
				}
				return nil
			})
		}
		return nil
	})
}

func (e *encoder) spBlock(sp *SPBlock) error {
	return e.element("SP-block", func() error {
		if sp.Class != 0 {
			if err := e.leafEnum("SP-block_class", spClassEnum, int64(sp.Class)); err != nil {
				return err
			}
		}
		if len(sp.ExtraAcc) > 0 {
			if err := e.stringList("SP-block_extra-acc", "SP-block_extra-acc_E",
				sp.ExtraAcc); err != nil {
				return err
			}
		}
		if sp.IMeth {
			if err := e.leafBool("SP-block_imeth", sp.IMeth); err != nil {
				return err
			}
		}
		if len(sp.Plasnm) > 0 {
			if err := e.stringList("SP-block_plasnm", "SP-block_plasnm_E", sp.Plasnm); err != nil {
				return err
			}
		}
		if len(sp.SeqRef) > 0 {
			if err := e.element("SP-block_seqref", func() error {
				for _, id := range sp.SeqRef {
					if err := e.seqID(id); err != nil {
						return err
					}
				}
				return nil
			}); err != nil {
				return err
			}
		}
		if len(sp.DbRef) > 0 {
			if err := e.element("SP-block_dbref", func() error {
				for _, tag := range sp.DbRef {
					if err := e.dbTag(tag); err != nil {
						return err
					}
				}
				return nil
			}); err != nil {
				return err
			}
		}
		if len(sp.Keywords) > 0 {
			if err := e.stringList("SP-block_keywords", "SP-block_keywords_E",
				sp.Keywords); err != nil {
				return err
			}
		}
		if sp.Created != nil {
			if err := e.element("SP-block_created", func() error {
				return e.date(sp.Created)
			}); err != nil {
				return err
			}
		}
		if sp.SeqUpd != nil {
			if err := e.element("SP-block_sequpd", func() error {
				return e.date(sp.SeqUpd)
			}); err != nil {
				return err
			}
		}
		if sp.AnnotUpd != nil {
			return e.element("SP-block_annotupd", func() error {
				return e.date(sp.AnnotUpd)
			})
		}
		return nil
	})
}

func (e *encoder) pirBlock(pir *PIRBlock) error {
	return e.element("PIR-block", func() error {
		if pir.HadPunct != nil {
			if err := e.leafBool("PIR-block_had-punct", *pir.HadPunct); err != nil {
				return err
			}
		}
		fields := []struct {
			name  string
			value *string
		}{
			{"PIR-block_host", pir.Host},
			{"PIR-block_source", pir.Source},
			{"PIR-block_summary", pir.Summary},
			{"PIR-block_genetic", pir.Genetic},
			{"PIR-block_includes", pir.Includes},
			{"PIR-block_placement", pir.Placement},
			{"PIR-block_superfamily", pir.Superfamily},
		}
		for _, f := range fields {
			if f.value == nil {
				continue
			}
			if err := e.leaf(f.name, *f.value); err != nil {
				return err
			}
		}
		if len(pir.Keywords) > 0 {
			if err := e.stringList("PIR-block_keywords", "PIR-block_keywords_E",
				pir.Keywords); err != nil {
				return err
			}
		}
		if pir.CrossRef != nil {
			if err := e.leaf("PIR-block_cross-reference", *pir.CrossRef); err != nil {
				return err
			}
		}
		if pir.Date != nil {
			if err := e.leaf("PIR-block_date", *pir.Date); err != nil {
				return err
			}
		}
		if pir.SeqRaw != nil {
			if err := e.leaf("PIR-block_seq-raw", *pir.SeqRaw); err != nil {
				return err
			}
		}
		if len(pir.SeqRef) > 0 {
			return e.element("PIR-block_seqref", func() error {
				for _, id := range pir.SeqRef {
					if err := e.seqID(id); err != nil {
						return err
					}
				}
				return nil
			})
		}
		return nil
	})
}

func (e *encoder) prfBlock(prf *PRFBlock) error {
	return e.element("PRF-block", func() error {
		if prf.ExtraSrc != nil {
			if err := e.element("PRF-block_extra-src", func() error {
				return e.element("PRF-ExtraSrc", func() error {
					src := prf.ExtraSrc
					fields := []struct {
						name  string
						value *string
					}{
						{"PRF-ExtraSrc_host", src.Host},
						{"PRF-ExtraSrc_part", src.Part},
						{"PRF-ExtraSrc_state", src.State},
						{"PRF-ExtraSrc_strain", src.Strain},
						{"PRF-ExtraSrc_taxon", src.Taxon},
					}
					for _, f := range fields {
						if f.value == nil {
							continue
						}
						if err := e.leaf(f.name, *f.value); err != nil {
							return err
						}
					}
					return nil
				})
			}); err != nil {
				return err
			}
		}
		if len(prf.Keywords) > 0 {
			return e.stringList("PRF-block_keywords", "PRF-block_keywords_E", prf.Keywords)
		}
		return nil
	})
}

func (e *encoder) pdbBlock(pdb *PDBBlock) error {
	return e.element("PDB-block", func() error {
		if pdb.Deposition != nil {
			if err := e.element("PDB-block_deposition", func() error {
				return e.date(pdb.Deposition)
			}); err != nil {
				return err
			}
		}
		if pdb.Class != nil {
			if err := e.leaf("PDB-block_class", *pdb.Class); err != nil {
				return err
			}
		}
		if len(pdb.Compound) > 0 {
			if err := e.stringList("PDB-block_compound", "PDB-block_compound_E",
				pdb.Compound); err != nil {
				return err
			}
		}
		if len(pdb.Source) > 0 {
			if err := e.stringList("PDB-block_source", "PDB-block_source_E",
				pdb.Source); err != nil {
				return err
			}
		}
		if pdb.ExpMethod != nil {
			if err := e.leaf("PDB-block_exp-method", *pdb.ExpMethod); err != nil {
				return err
			}
		}
		if pdb.Replace != nil {
			return e.element("PDB-block_replace", func() error {
				return e.element("PDB-replace", func() error {
					if pdb.Replace.Date != nil {
						if err := e.element("PDB-replace_date", func() error {
							return e.date(pdb.Replace.Date)
						}); err != nil {
							return err
						}
					}
					if len(pdb.Replace.IDs) > 0 {
						return e.stringList("PDB-replace_ids", "PDB-replace_ids_E",
							pdb.Replace.IDs)
					}
					return nil
				})
			})
		}
		return nil
	})
}
