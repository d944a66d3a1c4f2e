package objects

import "encoding/xml"

// Decoders for citations. The Pub choice dispatches through pubArms in
// dispatch.go; Medline entries are the one citation form outside the
// modeled subset and surface as unknown arms.

func (d *decoder) pub(out *Pub) error {
	return d.children(func(start xml.StartElement) error {
		arm, ok := pubArms[start.Name.Local]
		if !ok {
			return d.unknown(start, "Pub")
		}
		return arm(d, start, out)
	})
}

func (d *decoder) pubList(out *[]*Pub, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Pub" {
			return d.unknown(start, context)
		}
		p := &Pub{}
		if err := d.pub(p); err != nil {
			return err
		}
		if _, armErr := p.Arm(); d.keepChoice(armErr) {
			*out = append(*out, p)
		}
		return nil
	})
}

// title decodes a Title wrapper and its Title_E items.
func (d *decoder) title(out *[]*TitleItem, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Title" {
			return d.unknown(start, context)
		}
		return d.children(func(inner xml.StartElement) error {
			if inner.Name.Local != "Title_E" {
				return d.unknown(inner, "Title")
			}
			item := &TitleItem{}
			if err := d.titleItem(item); err != nil {
				return err
			}
			if _, armErr := item.Arm(); d.keepChoice(armErr) {
				*out = append(*out, item)
			}
			return nil
		})
	})
}

func (d *decoder) titleItem(out *TitleItem) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Title_E_name":
			return d.optStr(&out.Name)
		case "Title_E_tsub":
			return d.optStr(&out.TSub)
		case "Title_E_trans":
			return d.optStr(&out.Trans)
		case "Title_E_jta":
			return d.optStr(&out.Jta)
		case "Title_E_iso-jta":
			return d.optStr(&out.IsoJta)
		case "Title_E_ml-jta":
			return d.optStr(&out.MlJta)
		case "Title_E_coden":
			return d.optStr(&out.Coden)
		case "Title_E_issn":
			return d.optStr(&out.ISSN)
		case "Title_E_abr":
			return d.optStr(&out.Abr)
		case "Title_E_isbn":
			return d.optStr(&out.ISBN)
		default:
			return d.unknown(start, "Title_E")
		}
	})
}

func (d *decoder) wrappedAuthList(out **AuthList, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Auth-list" {
			return d.unknown(start, context)
		}
		al := &AuthList{}
		if err := d.authList(al); err != nil {
			return err
		}
		*out = al
		return nil
	})
}

func (d *decoder) authList(out *AuthList) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Auth-list_names":
			names := &AuthListNames{}
			err := d.children(func(inner xml.StartElement) error {
				switch inner.Name.Local {
				case "Auth-list_names_std":
					names.Std = []*Author{}
					return d.children(func(item xml.StartElement) error {
						if item.Name.Local != "Author" {
							return d.unknown(item, "Auth-list.names.std")
						}
						au := &Author{}
						if err := d.author(au); err != nil {
							return err
						}
						names.Std = append(names.Std, au)
						return nil
					})
				case "Auth-list_names_ml":
					return d.stringList("Auth-list_names_ml_E", &names.ML, "Auth-list.names.ml")
				case "Auth-list_names_str":
					return d.stringList("Auth-list_names_str_E", &names.Str, "Auth-list.names.str")
				default:
					return d.unknown(inner, "Auth-list.names")
				}
			})
			if err != nil {
				return err
			}
			out.Names = names
			return nil
		case "Auth-list_affil":
			return d.wrappedAffil(&out.Affil, "Auth-list.affil")
		default:
			return d.unknown(start, "Auth-list")
		}
	})
}

func (d *decoder) author(out *Author) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Author_name":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Person-id" {
					return d.unknown(inner, "Author.name")
				}
				pid := &PersonID{}
				if err := d.personID(pid); err != nil {
					return err
				}
				out.Name = pid
				return nil
			})
		case "Author_level":
			code, present, err := d.enumLeaf(start, authorLevelEnum)
			if err != nil {
				return err
			}
			if present {
				l := AuthorLevel(code)
				out.Level = &l
			}
			return nil
		case "Author_role":
			code, present, err := d.enumLeaf(start, authorRoleEnum)
			if err != nil {
				return err
			}
			if present {
				r := AuthorRole(code)
				out.Role = &r
			}
			return nil
		case "Author_affil":
			return d.wrappedAffil(&out.Affil, "Author.affil")
		case "Author_is-corr":
			v, present, err := d.boolLeaf(start)
			if err != nil {
				return err
			}
			if present {
				out.IsCorr = &v
			}
			return nil
		default:
			return d.unknown(start, "Author")
		}
	})
}

func (d *decoder) wrappedAffil(out **Affil, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Affil" {
			return d.unknown(start, context)
		}
		af := &Affil{}
		if err := d.affil(af); err != nil {
			return err
		}
		*out = af
		return nil
	})
}

func (d *decoder) affil(out *Affil) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Affil_str":
			return d.optStr(&out.Str)
		case "Affil_std":
			std := &AffilStd{}
			if err := d.affilStd(std); err != nil {
				return err
			}
			out.Std = std
			return nil
		default:
			return d.unknown(start, "Affil")
		}
	})
}

func (d *decoder) affilStd(out *AffilStd) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Affil_std_affil":
			return d.optStr(&out.Affil)
		case "Affil_std_div":
			return d.optStr(&out.Div)
		case "Affil_std_city":
			return d.optStr(&out.City)
		case "Affil_std_sub":
			return d.optStr(&out.Sub)
		case "Affil_std_country":
			return d.optStr(&out.Country)
		case "Affil_std_street":
			return d.optStr(&out.Street)
		case "Affil_std_email":
			return d.optStr(&out.Email)
		case "Affil_std_fax":
			return d.optStr(&out.Fax)
		case "Affil_std_phone":
			return d.optStr(&out.Phone)
		case "Affil_std_postal-code":
			return d.optStr(&out.PostalCode)
		default:
			return d.unknown(start, "Affil.std")
		}
	})
}

func (d *decoder) imprint(out *Imprint) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Imprint_date":
			return d.wrappedDate(&out.Date, "Imprint.date")
		case "Imprint_volume":
			return d.optStr(&out.Volume)
		case "Imprint_issue":
			return d.optStr(&out.Issue)
		case "Imprint_pages":
			return d.optStr(&out.Pages)
		case "Imprint_section":
			return d.optStr(&out.Section)
		case "Imprint_pub":
			return d.wrappedAffil(&out.Pub, "Imprint.pub")
		case "Imprint_cprt":
			return d.wrappedDate(&out.Cprt, "Imprint.cprt")
		case "Imprint_part-sup":
			return d.optStr(&out.PartSup)
		case "Imprint_language":
			return d.optStr(&out.Language)
		case "Imprint_prepub":
			code, present, err := d.enumLeaf(start, prePubEnum)
			if err != nil {
				return err
			}
			if present {
				p := ImprintPrePub(code)
				out.PrePub = &p
			}
			return nil
		case "Imprint_part-supi":
			return d.optStr(&out.PartSupI)
		case "Imprint_retract":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "CitRetract" {
					return d.unknown(inner, "Imprint.retract")
				}
				ret := &CitRetract{}
				if err := d.citRetract(ret); err != nil {
					return err
				}
				out.Retract = ret
				return nil
			})
		case "Imprint_pubstatus":
			code, present, err := d.enumLeaf(start, pubStatusEnum)
			if err != nil {
				return err
			}
			if present {
				s := PubStatus(code)
				out.PubStatus = &s
			}
			return nil
		case "Imprint_history":
			out.History = []*PubStatusDate{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "PubStatusDate" {
					return d.unknown(inner, "Imprint.history")
				}
				psd := &PubStatusDate{}
				if err := d.pubStatusDate(psd); err != nil {
					return err
				}
				out.History = append(out.History, psd)
				return nil
			})
		default:
			return d.unknown(start, "Imprint")
		}
	})
}

func (d *decoder) wrappedImprint(out **Imprint, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Imprint" {
			return d.unknown(start, context)
		}
		imp := &Imprint{}
		if err := d.imprint(imp); err != nil {
			return err
		}
		*out = imp
		return nil
	})
}

func (d *decoder) citRetract(out *CitRetract) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "CitRetract_type":
			code, present, err := d.enumLeaf(start, citRetractEnum)
			if err != nil {
				return err
			}
			if present {
				out.Type = CitRetractType(code)
			}
			return nil
		case "CitRetract_exp":
			return d.optStr(&out.Exp)
		default:
			return d.unknown(start, "CitRetract")
		}
	})
}

func (d *decoder) pubStatusDate(out *PubStatusDate) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "PubStatusDate_pubstatus":
			code, present, err := d.enumLeaf(start, pubStatusEnum)
			if err != nil {
				return err
			}
			if present {
				out.PubStatus = PubStatus(code)
			}
			return nil
		case "PubStatusDate_date":
			return d.wrappedDate(&out.Date, "PubStatusDate.date")
		default:
			return d.unknown(start, "PubStatusDate")
		}
	})
}

func (d *decoder) citGen(out *CitGen) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Cit-gen_cit":
			return d.optStr(&out.Cit)
		case "Cit-gen_authors":
			return d.wrappedAuthList(&out.Authors, "Cit-gen.authors")
		case "Cit-gen_muid":
			return d.optInt(&out.Muid)
		case "Cit-gen_journal":
			return d.title(&out.Journal, "Cit-gen.journal")
		case "Cit-gen_volume":
			return d.optStr(&out.Volume)
		case "Cit-gen_issue":
			return d.optStr(&out.Issue)
		case "Cit-gen_pages":
			return d.optStr(&out.Pages)
		case "Cit-gen_date":
			return d.wrappedDate(&out.Date, "Cit-gen.date")
		case "Cit-gen_serial-number":
			return d.optInt(&out.SerialNumber)
		case "Cit-gen_title":
			return d.optStr(&out.Title)
		case "Cit-gen_pmid":
			return d.optInt(&out.PmID)
		default:
			return d.unknown(start, "Cit-gen")
		}
	})
}

func (d *decoder) citSub(out *CitSub) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Cit-sub_authors":
			return d.wrappedAuthList(&out.Authors, "Cit-sub.authors")
		case "Cit-sub_imp":
			return d.wrappedImprint(&out.Imp, "Cit-sub.imp")
		case "Cit-sub_medium":
			code, present, err := d.enumLeaf(start, subMediumEnum)
			if err != nil {
				return err
			}
			if present {
				out.Medium = SubMedium(code)
			}
			return nil
		case "Cit-sub_date":
			return d.wrappedDate(&out.Date, "Cit-sub.date")
		case "Cit-sub_descr":
			return d.optStr(&out.Descr)
		default:
			return d.unknown(start, "Cit-sub")
		}
	})
}

func (d *decoder) citArt(out *CitArt) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Cit-art_title":
			return d.title(&out.Title, "Cit-art.title")
		case "Cit-art_authors":
			return d.wrappedAuthList(&out.Authors, "Cit-art.authors")
		case "Cit-art_from":
			from := &CitArtFrom{}
			err := d.children(func(inner xml.StartElement) error {
				switch inner.Name.Local {
				case "Cit-art_from_journal":
					return d.children(func(item xml.StartElement) error {
						if item.Name.Local != "Cit-jour" {
							return d.unknown(item, "Cit-art.from.journal")
						}
						cj := &CitJour{}
						if err := d.citJour(cj); err != nil {
							return err
						}
						from.Journal = cj
						return nil
					})
				case "Cit-art_from_book":
					return d.children(func(item xml.StartElement) error {
						if item.Name.Local != "Cit-book" {
							return d.unknown(item, "Cit-art.from.book")
						}
						cb := &CitBook{}
						if err := d.citBook(cb); err != nil {
							return err
						}
						from.Book = cb
						return nil
					})
				case "Cit-art_from_proc":
					return d.children(func(item xml.StartElement) error {
						if item.Name.Local != "Cit-proc" {
							return d.unknown(item, "Cit-art.from.proc")
						}
						cp := &CitProc{}
						if err := d.citProc(cp); err != nil {
							return err
						}
						from.Proc = cp
						return nil
					})
				default:
					return d.unknown(inner, "Cit-art.from")
				}
			})
			if err != nil {
				return err
			}
			out.From = from
			return nil
		case "Cit-art_ids":
			out.IDs = []*ArticleID{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "ArticleId" {
					return d.unknown(inner, "Cit-art.ids")
				}
				id := &ArticleID{}
				if err := d.articleID(id); err != nil {
					return err
				}
				if _, armErr := id.Arm(); d.keepChoice(armErr) {
					out.IDs = append(out.IDs, id)
				}
				return nil
			})
		default:
			return d.unknown(start, "Cit-art")
		}
	})
}

func (d *decoder) articleID(out *ArticleID) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "ArticleId_pubmed":
			return d.optInt(&out.PubMed)
		case "ArticleId_medline":
			return d.optInt(&out.Medline)
		case "ArticleId_doi":
			return d.optStr(&out.DOI)
		case "ArticleId_pii":
			return d.optStr(&out.PII)
		case "ArticleId_pmcid":
			return d.optInt(&out.PmcID)
		case "ArticleId_pmcpid":
			return d.optStr(&out.PmcPid)
		case "ArticleId_pmpid":
			return d.optStr(&out.PmPid)
		case "ArticleId_other":
			return d.wrappedDbTag(&out.Other, "ArticleId.other")
		default:
			return d.unknown(start, "ArticleId")
		}
	})
}

func (d *decoder) citJour(out *CitJour) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Cit-jour_title":
			return d.title(&out.Title, "Cit-jour.title")
		case "Cit-jour_imp":
			return d.wrappedImprint(&out.Imp, "Cit-jour.imp")
		default:
			return d.unknown(start, "Cit-jour")
		}
	})
}

func (d *decoder) citBook(out *CitBook) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Cit-book_title":
			return d.title(&out.Title, "Cit-book.title")
		case "Cit-book_coll":
			return d.title(&out.Coll, "Cit-book.coll")
		case "Cit-book_authors":
			return d.wrappedAuthList(&out.Authors, "Cit-book.authors")
		case "Cit-book_imp":
			return d.wrappedImprint(&out.Imp, "Cit-book.imp")
		default:
			return d.unknown(start, "Cit-book")
		}
	})
}

func (d *decoder) citProc(out *CitProc) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Cit-proc_book":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Cit-book" {
					return d.unknown(inner, "Cit-proc.book")
				}
				cb := &CitBook{}
				if err := d.citBook(cb); err != nil {
					return err
				}
				out.Book = cb
				return nil
			})
		case "Cit-proc_meet":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Meeting" {
					return d.unknown(inner, "Cit-proc.meet")
				}
				m := &Meeting{}
				if err := d.meeting(m); err != nil {
					return err
				}
				out.Meet = m
				return nil
			})
		default:
			return d.unknown(start, "Cit-proc")
		}
	})
}

func (d *decoder) meeting(out *Meeting) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Meeting_number":
			return d.reqStr(&out.Number)
		case "Meeting_date":
			return d.wrappedDate(&out.Date, "Meeting.date")
		case "Meeting_place":
			return d.wrappedAffil(&out.Place, "Meeting.place")
		default:
			return d.unknown(start, "Meeting")
		}
	})
}

func (d *decoder) citPat(out *CitPat) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Cit-pat_title":
			return d.reqStr(&out.Title)
		case "Cit-pat_authors":
			return d.wrappedAuthList(&out.Authors, "Cit-pat.authors")
		case "Cit-pat_country":
			return d.reqStr(&out.Country)
		case "Cit-pat_doc-type":
			return d.reqStr(&out.DocType)
		case "Cit-pat_number":
			return d.optStr(&out.Number)
		case "Cit-pat_date-issue":
			return d.wrappedDate(&out.DateIssue, "Cit-pat.date-issue")
		case "Cit-pat_class":
			return d.stringList("Cit-pat_class_E", &out.Class, "Cit-pat.class")
		case "Cit-pat_app-number":
			return d.optStr(&out.AppNumber)
		case "Cit-pat_app-date":
			return d.wrappedDate(&out.AppDate, "Cit-pat.app-date")
		case "Cit-pat_applicants":
			return d.wrappedAuthList(&out.Applicants, "Cit-pat.applicants")
		case "Cit-pat_assignees":
			return d.wrappedAuthList(&out.Assignees, "Cit-pat.assignees")
		case "Cit-pat_priority":
			out.Priority = []*PatentPriority{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Patent-priority" {
					return d.unknown(inner, "Cit-pat.priority")
				}
				pp := &PatentPriority{}
				if err := d.patentPriority(pp); err != nil {
					return err
				}
				out.Priority = append(out.Priority, pp)
				return nil
			})
		case "Cit-pat_abstract":
			return d.optStr(&out.Abstract)
		default:
			return d.unknown(start, "Cit-pat")
		}
	})
}

func (d *decoder) patentPriority(out *PatentPriority) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Patent-priority_country":
			return d.reqStr(&out.Country)
		case "Patent-priority_number":
			return d.reqStr(&out.Number)
		case "Patent-priority_date":
			return d.wrappedDate(&out.Date, "Patent-priority.date")
		default:
			return d.unknown(start, "Patent-priority")
		}
	})
}

func (d *decoder) idPat(out *IDPat) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Id-pat_country":
			return d.reqStr(&out.Country)
		case "Id-pat_id":
			return d.children(func(inner xml.StartElement) error {
				switch inner.Name.Local {
				case "Id-pat_id_number":
					return d.optStr(&out.Number)
				case "Id-pat_id_app-number":
					return d.optStr(&out.AppNumber)
				default:
					return d.unknown(inner, "Id-pat.id")
				}
			})
		case "Id-pat_doc-type":
			return d.optStr(&out.DocType)
		default:
			return d.unknown(start, "Id-pat")
		}
	})
}

func (d *decoder) citLet(out *CitLet) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Cit-let_cit":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Cit-book" {
					return d.unknown(inner, "Cit-let.cit")
				}
				cb := &CitBook{}
				if err := d.citBook(cb); err != nil {
					return err
				}
				out.Cit = cb
				return nil
			})
		case "Cit-let_man-id":
			return d.optStr(&out.ManID)
		case "Cit-let_type":
			code, present, err := d.enumLeaf(start, letTypeEnum)
			if err != nil {
				return err
			}
			if present {
				out.Type = LetType(code)
			}
			return nil
		default:
			return d.unknown(start, "Cit-let")
		}
	})
}
