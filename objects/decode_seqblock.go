package objects

import "encoding/xml"

// Decoders for the per-repository descriptor blocks.

func (d *decoder) gbBlock(out *GBBlock) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "GB-block_extra-accessions":
			return d.stringList("GB-block_extra-accessions_E", &out.ExtraAccessions,
				"GB-block.extra-accessions")
		case "GB-block_source":
			return d.optStr(&out.Source)
		case "GB-block_keywords":
			return d.stringList("GB-block_keywords_E", &out.Keywords, "GB-block.keywords")
		case "GB-block_origin":
			return d.optStr(&out.Origin)
		case "GB-block_date":
			return d.optStr(&out.Date)
		case "GB-block_entry-date":
			return d.wrappedDate(&out.EntryDate, "GB-block.entry-date")
		case "GB-block_div":
			return d.optStr(&out.Div)
		case "GB-block_taxonomy":
			return d.optStr(&out.Taxonomy)
		default:
			return d.unknown(start, "GB-block")
		}
	})
}

func (d *decoder) emblBlock(out *EMBLBlock) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "EMBL-block_class":
			code, present, err := d.enumLeaf(start, emblClassEnum)
			if err != nil {
				return err
			}
			if present {
				out.Class = EMBLBlockClass(code)
			}
			return nil
		case "EMBL-block_div":
			code, present, err := d.enumLeaf(start, emblDivEnum)
			if err != nil {
				return err
			}
			if present {
				div := EMBLBlockDiv(code)
				out.Div = &div
			}
			return nil
		case "EMBL-block_creation-date":
			return d.wrappedDate(&out.CreationDate, "EMBL-block.creation-date")
		case "EMBL-block_update-date":
			return d.wrappedDate(&out.UpdateDate, "EMBL-block.update-date")
		case "EMBL-block_extra-acc":
			return d.stringList("EMBL-block_extra-acc_E", &out.ExtraAcc, "EMBL-block.extra-acc")
		case "EMBL-block_keywords":
			return d.stringList("EMBL-block_keywords_E", &out.Keywords, "EMBL-block.keywords")
		case "EMBL-block_xref":
			out.Xref = []*EMBLXref{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "EMBL-xref" {
					return d.unknown(inner, "EMBL-block.xref")
				}
				xref := &EMBLXref{}
				if err := d.emblXref(xref); err != nil {
					return err
				}
				out.Xref = append(out.Xref, xref)
				return nil
			})
		default:
			return d.unknown(start, "EMBL-block")
		}
	})
}

func (d *decoder) emblXref(out *EMBLXref) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "EMBL-xref_dbname":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "EMBL-dbname" {
					return d.unknown(inner, "EMBL-xref.dbname")
				}
				name := &EMBLDbName{}
				err := d.children(func(field xml.StartElement) error {
					switch field.Name.Local {
					case "EMBL-dbname_code":
						code, present, err := d.enumLeaf(field, emblDbNameEnum)
						if err != nil {
							return err
						}
						if present {
							c := EMBLDbNameCode(code)
							name.Code = &c
						}
						return nil
					case "EMBL-dbname_name":
						return d.optStr(&name.Name)
					default:
						return d.unknown(field, "EMBL-dbname")
					}
				})
				if err != nil {
					return err
				}
				out.DbName = name
				return nil
			})
		case "EMBL-xref_id":
			out.ID = []*ObjectID{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Object-id" {
					return d.unknown(inner, "EMBL-xref.id")
				}
				oid := &ObjectID{}
				if err := d.objectID(oid); err != nil {
					return err
				}
				out.ID = append(out.ID, oid)
				return nil
			})
		default:
			return d.unknown(start, "EMBL-xref")
		}
	})
}

func (d *decoder) spBlock(out *SPBlock) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "SP-block_class":
			code, present, err := d.enumLeaf(start, spClassEnum)
			if err != nil {
				return err
			}
			if present {
				out.Class = SPBlockClass(code)
			}
			return nil
		case "SP-block_extra-acc":
			return d.stringList("SP-block_extra-acc_E", &out.ExtraAcc, "SP-block.extra-acc")
		case "SP-block_imeth":
			v, present, err := d.boolLeaf(start)
			if err != nil {
				return err
			}
			if present {
				out.IMeth = v
			}
			return nil
		case "SP-block_plasnm":
			return d.stringList("SP-block_plasnm_E", &out.Plasnm, "SP-block.plasnm")
		case "SP-block_seqref":
			return d.seqIDList(&out.SeqRef, "SP-block.seqref")
		case "SP-block_dbref":
			out.DbRef = []*DbTag{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Dbtag" {
					return d.unknown(inner, "SP-block.dbref")
				}
				tag := &DbTag{}
				if err := d.dbTag(tag); err != nil {
					return err
				}
				out.DbRef = append(out.DbRef, tag)
				return nil
			})
		case "SP-block_keywords":
			return d.stringList("SP-block_keywords_E", &out.Keywords, "SP-block.keywords")
		case "SP-block_created":
			return d.wrappedDate(&out.Created, "SP-block.created")
		case "SP-block_sequpd":
			return d.wrappedDate(&out.SeqUpd, "SP-block.sequpd")
		case "SP-block_annotupd":
			return d.wrappedDate(&out.AnnotUpd, "SP-block.annotupd")
		default:
			return d.unknown(start, "SP-block")
		}
	})
}

func (d *decoder) pirBlock(out *PIRBlock) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "PIR-block_had-punct":
			v, present, err := d.boolLeaf(start)
			if err != nil {
				return err
			}
			if present {
				out.HadPunct = &v
			}
			return nil
		case "PIR-block_host":
			return d.optStr(&out.Host)
		case "PIR-block_source":
			return d.optStr(&out.Source)
		case "PIR-block_summary":
			return d.optStr(&out.Summary)
		case "PIR-block_genetic":
			return d.optStr(&out.Genetic)
		case "PIR-block_includes":
			return d.optStr(&out.Includes)
		case "PIR-block_placement":
			return d.optStr(&out.Placement)
		case "PIR-block_superfamily":
			return d.optStr(&out.Superfamily)
		case "PIR-block_keywords":
			return d.stringList("PIR-block_keywords_E", &out.Keywords, "PIR-block.keywords")
		case "PIR-block_cross-reference":
			return d.optStr(&out.CrossRef)
		case "PIR-block_date":
			return d.optStr(&out.Date)
		case "PIR-block_seq-raw":
			return d.optStr(&out.SeqRaw)
		case "PIR-block_seqref":
			return d.seqIDList(&out.SeqRef, "PIR-block.seqref")
		default:
			return d.unknown(start, "PIR-block")
		}
	})
}

func (d *decoder) prfBlock(out *PRFBlock) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "PRF-block_extra-src":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "PRF-ExtraSrc" {
					return d.unknown(inner, "PRF-block.extra-src")
				}
				src := &PRFExtraSrc{}
				err := d.children(func(field xml.StartElement) error {
					switch field.Name.Local {
					case "PRF-ExtraSrc_host":
						return d.optStr(&src.Host)
					case "PRF-ExtraSrc_part":
						return d.optStr(&src.Part)
					case "PRF-ExtraSrc_state":
						return d.optStr(&src.State)
					case "PRF-ExtraSrc_strain":
						return d.optStr(&src.Strain)
					case "PRF-ExtraSrc_taxon":
						return d.optStr(&src.Taxon)
					default:
						return d.unknown(field, "PRF-ExtraSrc")
					}
				})
				if err != nil {
					return err
				}
				out.ExtraSrc = src
				return nil
			})
		case "PRF-block_keywords":
			return d.stringList("PRF-block_keywords_E", &out.Keywords, "PRF-block.keywords")
		default:
			return d.unknown(start, "PRF-block")
		}
	})
}

func (d *decoder) pdbBlock(out *PDBBlock) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "PDB-block_deposition":
			return d.wrappedDate(&out.Deposition, "PDB-block.deposition")
		case "PDB-block_class":
			return d.optStr(&out.Class)
		case "PDB-block_compound":
			return d.stringList("PDB-block_compound_E", &out.Compound, "PDB-block.compound")
		case "PDB-block_source":
			return d.stringList("PDB-block_source_E", &out.Source, "PDB-block.source")
		case "PDB-block_exp-method":
			return d.optStr(&out.ExpMethod)
		case "PDB-block_replace":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "PDB-replace" {
					return d.unknown(inner, "PDB-block.replace")
				}
				rep := &PDBReplace{}
				err := d.children(func(field xml.StartElement) error {
					switch field.Name.Local {
					case "PDB-replace_date":
						return d.wrappedDate(&rep.Date, "PDB-replace.date")
					case "PDB-replace_ids":
						return d.stringList("PDB-replace_ids_E", &rep.IDs, "PDB-replace.ids")
					default:
						return d.unknown(field, "PDB-replace")
					}
				})
				if err != nil {
					return err
				}
				out.Replace = rep
				return nil
			})
		default:
			return d.unknown(start, "PDB-block")
		}
	})
}
