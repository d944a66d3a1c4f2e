package objects

// Encoders for citations.

func (e *encoder) pub(p *Pub) error {
	return e.element("Pub", func() error {
		switch {
		case p.Gen != nil:
			return e.element("Pub_gen", func() error {
				return e.citGen(p.Gen)
			})
		case p.Sub != nil:
			return e.element("Pub_sub", func() error {
				return e.citSub(p.Sub)
			})
		case p.Muid != nil:
			return e.leafInt("Pub_muid", *p.Muid)
		case p.Article != nil:
			return e.element("Pub_article", func() error {
				return e.citArt(p.Article)
			})
		case p.Journal != nil:
			return e.element("Pub_journal", func() error {
				return e.citJour(p.Journal)
			})
		case p.Book != nil:
			return e.element("Pub_book", func() error {
				return e.citBook(p.Book)
			})
		case p.Proc != nil:
			return e.element("Pub_proc", func() error {
				return e.citProc(p.Proc)
			})
		case p.Patent != nil:
			return e.element("Pub_patent", func() error {
				return e.citPat(p.Patent)
			})
		case p.PatID != nil:
			return e.element("Pub_pat-id", func() error {
				return e.idPat(p.PatID)
			})
		case p.Man != nil:
			return e.element("Pub_man", func() error {
				return e.citLet(p.Man)
			})
		case p.Equiv != nil:
			return e.element("Pub_equiv", func() error {
				for _, inner := range p.Equiv {
					if err := e.pub(inner); err != nil {
						return err
					}
				}
				return nil
			})
		default:
			return e.leafInt("Pub_pmid", *p.PmID)
		}
	})
}

func (e *encoder) title(field string, items []*TitleItem) error {
	return e.element(field, func() error {
		return e.element("Title", func() error {
			for _, item := range items {
				if err := e.element("Title_E", func() error {
					return e.titleItem(item)
				}); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (e *encoder) titleItem(t *TitleItem) error {
	switch {
	case t.Name != nil:
		return e.leaf("Title_E_name", *t.Name)
	case t.TSub != nil:
		return e.leaf("Title_E_tsub", *t.TSub)
	case t.Trans != nil:
		return e.leaf("Title_E_trans", *t.Trans)
	case t.Jta != nil:
		return e.leaf("Title_E_jta", *t.Jta)
	case t.IsoJta != nil:
		return e.leaf("Title_E_iso-jta", *t.IsoJta)
	case t.MlJta != nil:
		return e.leaf("Title_E_ml-jta", *t.MlJta)
	case t.Coden != nil:
		return e.leaf("Title_E_coden", *t.Coden)
	case t.ISSN != nil:
		return e.leaf("Title_E_issn", *t.ISSN)
	case t.Abr != nil:
		return e.leaf("Title_E_abr", *t.Abr)
	default:
		return e.leaf("Title_E_isbn", *t.ISBN)
	}
}

func (e *encoder) authList(field string, al *AuthList) error {
	return e.element(field, func() error {
		return e.element("Auth-list", func() error {
			if err := e.element("Auth-list_names", func() error {
				switch {
				case al.Names.Std != nil:
					return e.element("Auth-list_names_std", func() error {
						for _, au := range al.Names.Std {
							if err := e.author(au); err != nil {
								return err
							}
						}
						return nil
					})
				case al.Names.ML != nil:
					return e.stringList("Auth-list_names_ml", "Auth-list_names_ml_E", al.Names.ML)
				default:
					return e.stringList("Auth-list_names_str", "Auth-list_names_str_E", al.Names.Str)
				}
			}); err != nil {
				return err
			}
			if al.Affil != nil {
				return e.affil("Auth-list_affil", al.Affil)
			}
			return nil
		})
	})
}

func (e *encoder) author(au *Author) error {
	return e.element("Author", func() error {
		if err := e.element("Author_name", func() error {
			return e.personID(au.Name)
		}); err != nil {
			return err
		}
		if au.Level != nil {
			if err := e.leafEnum("Author_level", authorLevelEnum, int64(*au.Level)); err != nil {
				return err
			}
		}
		if au.Role != nil {
			if err := e.leafEnum("Author_role", authorRoleEnum, int64(*au.Role)); err != nil {
				return err
			}
		}
		if au.Affil != nil {
			if err := e.affil("Author_affil", au.Affil); err != nil {
				return err
			}
		}
		if au.IsCorr != nil {
			return e.leafBool("Author_is-corr", *au.IsCorr)
		}
		return nil
	})
}

func (e *encoder) affil(field string, af *Affil) error {
	return e.element(field, func() error {
		return e.element("Affil", func() error {
			if af.Str != nil {
				return e.leaf("Affil_str", *af.Str)
			}
			return e.element("Affil_std", func() error {
				return e.affilStd(af.Std)
			})
		})
	})
}

func (e *encoder) affilStd(std *AffilStd) error {
	fields := []struct {
		name  string
		value *string
	}{
		{"Affil_std_affil", std.Affil},
		{"Affil_std_div", std.Div},
		{"Affil_std_city", std.City},
		{"Affil_std_sub", std.Sub},
		{"Affil_std_country", std.Country},
		{"Affil_std_street", std.Street},
		{"Affil_std_email", std.Email},
		{"Affil_std_fax", std.Fax},
		{"Affil_std_phone", std.Phone},
		{"Affil_std_postal-code", std.PostalCode},
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
}

func (e *encoder) imprint(field string, imp *Imprint) error {
	return e.element(field, func() error {
		return e.element("Imprint", func() error {
			if imp.Date != nil {
				if err := e.element("Imprint_date", func() error {
					return e.date(imp.Date)
				}); err != nil {
					return err
				}
			}
			if imp.Volume != nil {
				if err := e.leaf("Imprint_volume", *imp.Volume); err != nil {
					return err
				}
			}
			if imp.Issue != nil {
				if err := e.leaf("Imprint_issue", *imp.Issue); err != nil {
					return err
				}
			}
			if imp.Pages != nil {
				if err := e.leaf("Imprint_pages", *imp.Pages); err != nil {
					return err
				}
			}
			if imp.Section != nil {
				if err := e.leaf("Imprint_section", *imp.Section); err != nil {
					return err
				}
			}
			if imp.Pub != nil {
				if err := e.affil("Imprint_pub", imp.Pub); err != nil {
					return err
				}
			}
			if imp.Cprt != nil {
				if err := e.element("Imprint_cprt", func() error {
					return e.date(imp.Cprt)
				}); err != nil {
					return err
				}
			}
			if imp.PartSup != nil {
				if err := e.leaf("Imprint_part-sup", *imp.PartSup); err != nil {
					return err
				}
			}
			if imp.Language != nil {
				if err := e.leaf("Imprint_language", *imp.Language); err != nil {
					return err
				}
			}
			if imp.PrePub != nil {
				if err := e.leafEnum("Imprint_prepub", prePubEnum, int64(*imp.PrePub)); err != nil {
					return err
				}
			}
			if imp.PartSupI != nil {
				if err := e.leaf("Imprint_part-supi", *imp.PartSupI); err != nil {
					return err
				}
			}
			if imp.Retract != nil {
				if err := e.element("Imprint_retract", func() error {
					return e.element("CitRetract", func() error {
						if err := e.leafEnum("CitRetract_type", citRetractEnum,
							int64(imp.Retract.Type)); err != nil {
							return err
						}
						if imp.Retract.Exp != nil {
							return e.leaf("CitRetract_exp", *imp.Retract.Exp)
						}
						return nil
					})
				}); err != nil {
					return err
				}
			}
			if imp.PubStatus != nil {
				if err := e.leafEnum("Imprint_pubstatus", pubStatusEnum,
					int64(*imp.PubStatus)); err != nil {
					return err
				}
			}
			if len(imp.History) > 0 {
				return e.element("Imprint_history", func() error {
					for _, psd := range imp.History {
						if err := e.element("PubStatusDate", func() error {
							if err := e.leafEnum("PubStatusDate_pubstatus", pubStatusEnum,
								int64(psd.PubStatus)); err != nil {
								return err
							}
							return e.element("PubStatusDate_date", func() error {
								return e.date(psd.Date)
							})
						}); err != nil {
							return err
						}
					}
					return nil
				})
			}
			return nil
		})
	})
}

func (e *encoder) citGen(cg *CitGen) error {
	return e.element("Cit-gen", func() error {
		if cg.Cit != nil {
			if err := e.leaf("Cit-gen_cit", *cg.Cit); err != nil {
				return err
			}
		}
		if cg.Authors != nil {
			if err := e.authList("Cit-gen_authors", cg.Authors); err != nil {
				return err
			}
		}
		if cg.Muid != nil {
			if err := e.leafInt("Cit-gen_muid", *cg.Muid); err != nil {
				return err
			}
		}
		if cg.Journal != nil {
			if err := e.title("Cit-gen_journal", cg.Journal); err != nil {
				return err
			}
		}
		if cg.Volume != nil {
			if err := e.leaf("Cit-gen_volume", *cg.Volume); err != nil {
				return err
			}
		}
		if cg.Issue != nil {
			if err := e.leaf("Cit-gen_issue", *cg.Issue); err != nil {
				return err
			}
		}
		if cg.Pages != nil {
			if err := e.leaf("Cit-gen_pages", *cg.Pages); err != nil {
				return err
			}
		}
		if cg.Date != nil {
			if err := e.element("Cit-gen_date", func() error {
				return e.date(cg.Date)
			}); err != nil {
				return err
			}
		}
		if cg.SerialNumber != nil {
			if err := e.leafInt("Cit-gen_serial-number", *cg.SerialNumber); err != nil {
				return err
			}
		}
		if cg.Title != nil {
			if err := e.leaf("Cit-gen_title", *cg.Title); err != nil {
				return err
			}
		}
		if cg.PmID != nil {
			return e.leafInt("Cit-gen_pmid", *cg.PmID)
		}
		return nil
	})
}

func (e *encoder) citSub(cs *CitSub) error {
	return e.element("Cit-sub", func() error {
		if err := e.authList("Cit-sub_authors", cs.Authors); err != nil {
			return err
		}
		if cs.Imp != nil {
			if err := e.imprint("Cit-sub_imp", cs.Imp); err != nil {
				return err
			}
		}
		if cs.Medium != 0 {
			if err := e.leafEnum("Cit-sub_medium", subMediumEnum, int64(cs.Medium)); err != nil {
				return err
			}
		}
		if cs.Date != nil {
			if err := e.element("Cit-sub_date", func() error {
				return e.date(cs.Date)
			}); err != nil {
				return err
			}
		}
		if cs.Descr != nil {
			return e.leaf("Cit-sub_descr", *cs.Descr)
		}
		return nil
	})
}

func (e *encoder) citArt(ca *CitArt) error {
	return e.element("Cit-art", func() error {
		if ca.Title != nil {
			if err := e.title("Cit-art_title", ca.Title); err != nil {
				return err
			}
		}
		if ca.Authors != nil {
			if err := e.authList("Cit-art_authors", ca.Authors); err != nil {
				return err
			}
		}
		if ca.From != nil {
			if err := e.element("Cit-art_from", func() error {
				switch {
				case ca.From.Journal != nil:
					return e.element("Cit-art_from_journal", func() error {
						return e.citJour(ca.From.Journal)
					})
				case ca.From.Book != nil:
					return e.element("Cit-art_from_book", func() error {
						return e.citBook(ca.From.Book)
					})
				default:
					return e.element("Cit-art_from_proc", func() error {
						return e.citProc(ca.From.Proc)
					})
				}
			}); err != nil {
				return err
			}
		}
		if len(ca.IDs) > 0 {
			return e.element("Cit-art_ids", func() error {
				for _, id := range ca.IDs {
					if err := e.articleID(id); err != nil {
						return err
					}
				}
				return nil
			})
		}
		return nil
	})
}

func (e *encoder) articleID(id *ArticleID) error {
	return e.element("ArticleId", func() error {
		switch {
		case id.PubMed != nil:
			return e.leafInt("ArticleId_pubmed", *id.PubMed)
		case id.Medline != nil:
			return e.leafInt("ArticleId_medline", *id.Medline)
		case id.DOI != nil:
			return e.leaf("ArticleId_doi", *id.DOI)
		case id.PII != nil:
			return e.leaf("ArticleId_pii", *id.PII)
		case id.PmcID != nil:
			return e.leafInt("ArticleId_pmcid", *id.PmcID)
		case id.PmcPid != nil:
			return e.leaf("ArticleId_pmcpid", *id.PmcPid)
		case id.PmPid != nil:
			return e.leaf("ArticleId_pmpid", *id.PmPid)
		default:
			return e.element("ArticleId_other", func() error {
				return e.dbTag(id.Other)
			})
		}
	})
}

func (e *encoder) citJour(cj *CitJour) error {
	return e.element("Cit-jour", func() error {
		if cj.Title != nil {
			if err := e.title("Cit-jour_title", cj.Title); err != nil {
				return err
			}
		}
		if cj.Imp != nil {
			return e.imprint("Cit-jour_imp", cj.Imp)
		}
		return nil
	})
}

func (e *encoder) citBook(cb *CitBook) error {
	return e.element("Cit-book", func() error {
		if cb.Title != nil {
			if err := e.title("Cit-book_title", cb.Title); err != nil {
				return err
			}
		}
		if cb.Coll != nil {
			if err := e.title("Cit-book_coll", cb.Coll); err != nil {
				return err
			}
		}
		if cb.Authors != nil {
			if err := e.authList("Cit-book_authors", cb.Authors); err != nil {
				return err
			}
		}
		if cb.Imp != nil {
			return e.imprint("Cit-book_imp", cb.Imp)
		}
		return nil
	})
}

func (e *encoder) citProc(cp *CitProc) error {
	return e.element("Cit-proc", func() error {
		if cp.Book != nil {
			if err := e.element("Cit-proc_book", func() error {
				return e.citBook(cp.Book)
			}); err != nil {
				return err
			}
		}
		if cp.Meet != nil {
			return e.element("Cit-proc_meet", func() error {
				return e.element("Meeting", func() error {
					if err := e.leaf("Meeting_number", cp.Meet.Number); err != nil {
						return err
					}
					if cp.Meet.Date != nil {
						if err := e.element("Meeting_date", func() error {
							return e.date(cp.Meet.Date)
						}); err != nil {
							return err
						}
					}
					if cp.Meet.Place != nil {
						return e.affil("Meeting_place", cp.Meet.Place)
					}
					return nil
				})
			})
		}
		return nil
	})
}

func (e *encoder) citPat(cp *CitPat) error {
	return e.element("Cit-pat", func() error {
		if err := e.leaf("Cit-pat_title", cp.Title); err != nil {
			return err
		}
		if cp.Authors != nil {
			if err := e.authList("Cit-pat_authors", cp.Authors); err != nil {
				return err
			}
		}
		if err := e.leaf("Cit-pat_country", cp.Country); err != nil {
			return err
		}
		if err := e.leaf("Cit-pat_doc-type", cp.DocType); err != nil {
			return err
		}
		if cp.Number != nil {
			if err := e.leaf("Cit-pat_number", *cp.Number); err != nil {
				return err
			}
		}
		if cp.DateIssue != nil {
			if err := e.element("Cit-pat_date-issue", func() error {
				return e.date(cp.DateIssue)
			}); err != nil {
				return err
			}
		}
		if cp.Class != nil {
			if err := e.stringList("Cit-pat_class", "Cit-pat_class_E", cp.Class); err != nil {
				return err
			}
		}
		if cp.AppNumber != nil {
			if err := e.leaf("Cit-pat_app-number", *cp.AppNumber); err != nil {
				return err
			}
		}
		if cp.AppDate != nil {
			if err := e.element("Cit-pat_app-date", func() error {
				return e.date(cp.AppDate)
			}); err != nil {
				return err
			}
		}
		if cp.Applicants != nil {
			if err := e.authList("Cit-pat_applicants", cp.Applicants); err != nil {
				return err
			}
		}
		if cp.Assignees != nil {
			if err := e.authList("Cit-pat_assignees", cp.Assignees); err != nil {
				return err
			}
		}
		if len(cp.Priority) > 0 {
			if err := e.element("Cit-pat_priority", func() error {
				for _, pp := range cp.Priority {
					if err := e.element("Patent-priority", func() error {
						if err := e.leaf("Patent-priority_country", pp.Country); err != nil {
							return err
						}
						if err := e.leaf("Patent-priority_number", pp.Number); err != nil {
							return err
						}
						if pp.Date != nil {
							return e.element("Patent-priority_date", func() error {
								return e.date(pp.Date)
							})
						}
						return nil
					}); err != nil {
						return err
					}
				}
				return nil
			}); err != nil {
				return err
			}
		}
		if cp.Abstract != nil {
			return e.leaf("Cit-pat_abstract", *cp.Abstract)
		}
		return nil
	})
}

func (e *encoder) idPat(ip *IDPat) error {
	return e.element("Id-pat", func() error {
		if err := e.leaf("Id-pat_country", ip.Country); err != nil {
			return err
		}
		if err := e.element("Id-pat_id", func() error {
			if ip.Number != nil {
				return e.leaf("Id-pat_id_number", *ip.Number)
			}
			return e.leaf("Id-pat_id_app-number", *ip.AppNumber)
		}); err != nil {
			return err
		}
		if ip.DocType != nil {
			return e.leaf("Id-pat_doc-type", *ip.DocType)
		}
		return nil
	})
}

func (e *encoder) citLet(cl *CitLet) error {
	return e.element("Cit-let", func() error {
		if cl.Cit != nil {
			if err := e.element("Cit-let_cit", func() error {
				return e.citBook(cl.Cit)
			}); err != nil {
				return err
			}
		}
		if cl.ManID != nil {
			if err := e.leaf("Cit-let_man-id", *cl.ManID); err != nil {
				return err
			}
		}
		if cl.Type != 0 {
			return e.leafEnum("Cit-let_type", letTypeEnum, int64(cl.Type))
		}
		return nil
	})
}
