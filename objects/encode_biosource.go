package objects

// Encoders for the BioSource subtree.

func (e *encoder) bioSource(bs *BioSource) error {
	return e.element("BioSource", func() error {
		if bs.Genome != 0 {
			if err := e.leafEnum("BioSource_genome", bioSourceGenomeEnum, int64(bs.Genome)); err != nil {
				return err
			}
		}
		if bs.Origin != 0 {
			if err := e.leafEnum("BioSource_origin", bioSourceOriginEnum, int64(bs.Origin)); err != nil {
				return err
			}
		}
		if err := e.element("BioSource_org", func() error {
			return e.orgRef(bs.Org)
		}); err != nil {
			return err
		}
		if len(bs.Subtype) > 0 {
			if err := e.element("BioSource_subtype", func() error {
				for _, ss := range bs.Subtype {
					if err := e.subSource(ss); err != nil {
						return err
					}
				}
				return nil
			}); err != nil {
				return err
			}
		}
		if bs.IsFocus {
			if err := e.element("BioSource_is-focus", func() error {
				return nil
			}); err != nil {
				return err
			}
		}
		if len(bs.PCRPrimers) > 0 {
			return e.element("BioSource_pcr-primers", func() error {
				for _, rx := range bs.PCRPrimers {
					if err := e.pcrReaction(rx); err != nil {
						return err
					}
				}
				return nil
			})
		}
		return nil
	})
}

func (e *encoder) pcrReaction(rx *PCRReaction) error {
	return e.element("PCRReaction", func() error {
		if len(rx.Forward) > 0 {
			if err := e.pcrPrimerList("PCRReaction_forward", rx.Forward); err != nil {
				return err
			}
		}
		if len(rx.Reverse) > 0 {
			return e.pcrPrimerList("PCRReaction_reverse", rx.Reverse)
		}
		return nil
	})
}

func (e *encoder) pcrPrimerList(field string, primers []*PCRPrimer) error {
	return e.element(field, func() error {
		for _, primer := range primers {
			if err := e.element("PCRPrimer", func() error {
				if primer.Seq != nil {
					if err := e.leaf("PCRPrimer_seq", *primer.Seq); err != nil {
						return err
					}
				}
				if primer.Name != nil {
					return e.leaf("PCRPrimer_name", *primer.Name)
				}
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (e *encoder) orgRef(org *OrgRef) error {
	return e.element("Org-ref", func() error {
		if org.Taxname != nil {
			if err := e.leaf("Org-ref_taxname", *org.Taxname); err != nil {
				return err
			}
		}
		if org.Common != nil {
			if err := e.leaf("Org-ref_common", *org.Common); err != nil {
				return err
			}
		}
		if len(org.Mod) > 0 {
			if err := e.stringList("Org-ref_mod", "Org-ref_mod_E", org.Mod); err != nil {
				return err
			}
		}
		if len(org.Db) > 0 {
			if err := e.element("Org-ref_db", func() error {
				for _, tag := range org.Db {
					if err := e.dbTag(tag); err != nil {
						return err
					}
				}
				return nil
			}); err != nil {
				return err
			}
		}
		if len(org.Syn) > 0 {
			if err := e.stringList("Org-ref_syn", "Org-ref_syn_E", org.Syn); err != nil {
				return err
			}
		}
		if org.OrgName != nil {
			return e.element("Org-ref_orgname", func() error {
				return e.orgName(org.OrgName)
			})
		}
		return nil
	})
}

func (e *encoder) orgName(on *OrgName) error {
	return e.element("OrgName", func() error {
		if on.Name != nil {
			if err := e.element("OrgName_name", func() error {
				return e.orgNameChoice(on.Name)
			}); err != nil {
				return err
			}
		}
		if on.Attrib != nil {
			if err := e.leaf("OrgName_attrib", *on.Attrib); err != nil {
				return err
			}
		}
		if len(on.Mod) > 0 {
			if err := e.element("OrgName_mod", func() error {
				for _, om := range on.Mod {
					if err := e.orgMod(om); err != nil {
						return err
					}
				}
				return nil
			}); err != nil {
				return err
			}
		}
		if on.Lineage != nil {
			if err := e.leaf("OrgName_lineage", *on.Lineage); err != nil {
				return err
			}
		}
		if on.Gcode != nil {
			if err := e.leafInt("OrgName_gcode", *on.Gcode); err != nil {
				return err
			}
		}
		if on.Mgcode != nil {
			if err := e.leafInt("OrgName_mgcode", *on.Mgcode); err != nil {
				return err
			}
		}
		if on.Div != nil {
			if err := e.leaf("OrgName_div", *on.Div); err != nil {
				return err
			}
		}
		if on.Pgcode != nil {
			return e.leafInt("OrgName_pgcode", *on.Pgcode)
		}
		return nil
	})
}

func (e *encoder) orgNameChoice(choice *OrgNameChoice) error {
	switch {
	case choice.Binomial != nil:
		return e.element("OrgName_name_binomial", func() error {
			return e.binomial(choice.Binomial)
		})
	case choice.Virus != nil:
		return e.leaf("OrgName_name_virus", *choice.Virus)
	case choice.Hybrid != nil:
		return e.element("OrgName_name_hybrid", func() error {
			for _, on := range choice.Hybrid {
				if err := e.orgName(on); err != nil {
					return err
				}
			}
			return nil
		})
	case choice.NamedHybrid != nil:
		return e.element("OrgName_name_namedhybrid", func() error {
			return e.binomial(choice.NamedHybrid)
		})
	default:
		return e.element("OrgName_name_partial", func() error {
			for _, te := range choice.Partial {
				if err := e.taxElement(te); err != nil {
					return err
				}
			}
			return nil
		})
	}
}

func (e *encoder) binomial(bn *BinomialOrgName) error {
	return e.element("BinomialOrgName", func() error {
		if err := e.leaf("BinomialOrgName_genus", bn.Genus); err != nil {
			return err
		}
		if bn.Species != nil {
			if err := e.leaf("BinomialOrgName_species", *bn.Species); err != nil {
				return err
			}
		}
		if bn.Subspecies != nil {
			return e.leaf("BinomialOrgName_subspecies", *bn.Subspecies)
		}
		return nil
	})
}

func (e *encoder) taxElement(te *TaxElement) error {
	return e.element("TaxElement", func() error {
		if err := e.leafEnum("TaxElement_fixed-level", taxElementLevelEnum,
			int64(te.FixedLevel)); err != nil {
			return err
		}
		if te.Level != nil {
			if err := e.leaf("TaxElement_level", *te.Level); err != nil {
				return err
			}
		}
		return e.leaf("TaxElement_name", te.Name)
	})
}

func (e *encoder) orgMod(om *OrgMod) error {
	return e.element("OrgMod", func() error {
		if err := e.leafEnum("OrgMod_subtype", orgModSubTypeEnum, int64(om.SubType)); err != nil {
			return err
		}
		if err := e.leaf("OrgMod_subname", om.SubName); err != nil {
			return err
		}
		if om.Attrib != nil {
			return e.leaf("OrgMod_attrib", *om.Attrib)
		}
		return nil
	})
}

func (e *encoder) subSource(ss *SubSource) error {
	return e.element("SubSource", func() error {
		if err := e.leafEnum("SubSource_subtype", subSourceSubTypeEnum, int64(ss.SubType)); err != nil {
			return err
		}
		if err := e.leaf("SubSource_name", ss.Name); err != nil {
			return err
		}
		if ss.Attrib != nil {
			return e.leaf("SubSource_attrib", *ss.Attrib)
		}
		return nil
	})
}
