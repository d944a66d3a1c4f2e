package objects

import "encoding/xml"

// Decoders for the BioSource subtree.

func (d *decoder) bioSource(out *BioSource) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "BioSource_genome":
			code, present, err := d.enumLeaf(start, bioSourceGenomeEnum)
			if err != nil {
				return err
			}
			if present {
				out.Genome = BioSourceGenome(code)
			}
			return nil
		case "BioSource_origin":
			code, present, err := d.enumLeaf(start, bioSourceOriginEnum)
			if err != nil {
				return err
			}
			if present {
				out.Origin = BioSourceOrigin(code)
			}
			return nil
		case "BioSource_org":
			return d.wrappedOrgRef(&out.Org, "BioSource.org")
		case "BioSource_subtype":
			out.Subtype = []*SubSource{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "SubSource" {
					return d.unknown(inner, "BioSource.subtype")
				}
				ss := &SubSource{}
				if err := d.subSource(ss); err != nil {
					return err
				}
				out.Subtype = append(out.Subtype, ss)
				return nil
			})
		case "BioSource_is-focus":
			// NULL-typed: presence is the value.
			if err := d.skip(); err != nil {
				return err
			}
			out.IsFocus = true
			return nil
		case "BioSource_pcr-primers":
			out.PCRPrimers = []*PCRReaction{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "PCRReaction" {
					return d.unknown(inner, "BioSource.pcr-primers")
				}
				rx := &PCRReaction{}
				if err := d.pcrReaction(rx); err != nil {
					return err
				}
				out.PCRPrimers = append(out.PCRPrimers, rx)
				return nil
			})
		default:
			return d.unknown(start, "BioSource")
		}
	})
}

func (d *decoder) pcrReaction(out *PCRReaction) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "PCRReaction_forward":
			return d.pcrPrimerList(&out.Forward, "PCRReaction.forward")
		case "PCRReaction_reverse":
			return d.pcrPrimerList(&out.Reverse, "PCRReaction.reverse")
		default:
			return d.unknown(start, "PCRReaction")
		}
	})
}

func (d *decoder) pcrPrimerList(out *[]*PCRPrimer, context string) error {
	*out = []*PCRPrimer{}
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "PCRPrimer" {
			return d.unknown(start, context)
		}
		primer := &PCRPrimer{}
		err := d.children(func(inner xml.StartElement) error {
			switch inner.Name.Local {
			case "PCRPrimer_seq":
				return d.optStr(&primer.Seq)
			case "PCRPrimer_name":
				return d.optStr(&primer.Name)
			default:
				return d.unknown(inner, "PCRPrimer")
			}
		})
		if err != nil {
			return err
		}
		*out = append(*out, primer)
		return nil
	})
}

func (d *decoder) wrappedOrgRef(out **OrgRef, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Org-ref" {
			return d.unknown(start, context)
		}
		org := &OrgRef{}
		if err := d.orgRef(org); err != nil {
			return err
		}
		*out = org
		return nil
	})
}

func (d *decoder) orgRef(out *OrgRef) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Org-ref_taxname":
			return d.optStr(&out.Taxname)
		case "Org-ref_common":
			return d.optStr(&out.Common)
		case "Org-ref_mod":
			return d.stringList("Org-ref_mod_E", &out.Mod, "Org-ref.mod")
		case "Org-ref_db":
			out.Db = []*DbTag{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Dbtag" {
					return d.unknown(inner, "Org-ref.db")
				}
				tag := &DbTag{}
				if err := d.dbTag(tag); err != nil {
					return err
				}
				out.Db = append(out.Db, tag)
				return nil
			})
		case "Org-ref_syn":
			return d.stringList("Org-ref_syn_E", &out.Syn, "Org-ref.syn")
		case "Org-ref_orgname":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "OrgName" {
					return d.unknown(inner, "Org-ref.orgname")
				}
				on := &OrgName{}
				if err := d.orgName(on); err != nil {
					return err
				}
				out.OrgName = on
				return nil
			})
		default:
			return d.unknown(start, "Org-ref")
		}
	})
}

func (d *decoder) orgName(out *OrgName) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "OrgName_name":
			choice := &OrgNameChoice{}
			if err := d.orgNameChoice(choice); err != nil {
				return err
			}
			out.Name = choice
			return nil
		case "OrgName_attrib":
			return d.optStr(&out.Attrib)
		case "OrgName_mod":
			out.Mod = []*OrgMod{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "OrgMod" {
					return d.unknown(inner, "OrgName.mod")
				}
				om := &OrgMod{}
				if err := d.orgMod(om); err != nil {
					return err
				}
				out.Mod = append(out.Mod, om)
				return nil
			})
		case "OrgName_lineage":
			return d.optStr(&out.Lineage)
		case "OrgName_gcode":
			return d.optInt(&out.Gcode)
		case "OrgName_mgcode":
			return d.optInt(&out.Mgcode)
		case "OrgName_div":
			return d.optStr(&out.Div)
		case "OrgName_pgcode":
			return d.optInt(&out.Pgcode)
		default:
			return d.unknown(start, "OrgName")
		}
	})
}

func (d *decoder) orgNameChoice(out *OrgNameChoice) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "OrgName_name_binomial":
			return d.wrappedBinomial(&out.Binomial, "OrgName.name.binomial")
		case "OrgName_name_virus":
			return d.optStr(&out.Virus)
		case "OrgName_name_hybrid":
			out.Hybrid = []*OrgName{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "OrgName" {
					return d.unknown(inner, "OrgName.name.hybrid")
				}
				on := &OrgName{}
				if err := d.orgName(on); err != nil {
					return err
				}
				out.Hybrid = append(out.Hybrid, on)
				return nil
			})
		case "OrgName_name_namedhybrid":
			return d.wrappedBinomial(&out.NamedHybrid, "OrgName.name.namedhybrid")
		case "OrgName_name_partial":
			out.Partial = []*TaxElement{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "TaxElement" {
					return d.unknown(inner, "OrgName.name.partial")
				}
				te := &TaxElement{}
				if err := d.taxElement(te); err != nil {
					return err
				}
				out.Partial = append(out.Partial, te)
				return nil
			})
		default:
			return d.unknown(start, "OrgName.name")
		}
	})
}

func (d *decoder) wrappedBinomial(out **BinomialOrgName, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "BinomialOrgName" {
			return d.unknown(start, context)
		}
		bn := &BinomialOrgName{}
		err := d.children(func(inner xml.StartElement) error {
			switch inner.Name.Local {
			case "BinomialOrgName_genus":
				return d.reqStr(&bn.Genus)
			case "BinomialOrgName_species":
				return d.optStr(&bn.Species)
			case "BinomialOrgName_subspecies":
				return d.optStr(&bn.Subspecies)
			default:
				return d.unknown(inner, "BinomialOrgName")
			}
		})
		if err != nil {
			return err
		}
		*out = bn
		return nil
	})
}

func (d *decoder) taxElement(out *TaxElement) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "TaxElement_fixed-level":
			code, present, err := d.enumLeaf(start, taxElementLevelEnum)
			if err != nil {
				return err
			}
			if present {
				out.FixedLevel = TaxElementFixedLevel(code)
			}
			return nil
		case "TaxElement_level":
			return d.optStr(&out.Level)
		case "TaxElement_name":
			return d.reqStr(&out.Name)
		default:
			return d.unknown(start, "TaxElement")
		}
	})
}

func (d *decoder) orgMod(out *OrgMod) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "OrgMod_subtype":
			code, present, err := d.enumLeaf(start, orgModSubTypeEnum)
			if err != nil {
				return err
			}
			if present {
				out.SubType = OrgModSubType(code)
			}
			return nil
		case "OrgMod_subname":
			return d.reqStr(&out.SubName)
		case "OrgMod_attrib":
			return d.optStr(&out.Attrib)
		default:
			return d.unknown(start, "OrgMod")
		}
	})
}

func (d *decoder) subSource(out *SubSource) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "SubSource_subtype":
			code, present, err := d.enumLeaf(start, subSourceSubTypeEnum)
			if err != nil {
				return err
			}
			if present {
				out.SubType = SubSourceSubType(code)
			}
			return nil
		case "SubSource_name":
			return d.reqStr(&out.Name)
		case "SubSource_attrib":
			return d.optStr(&out.Attrib)
		default:
			return d.unknown(start, "SubSource")
		}
	})
}
