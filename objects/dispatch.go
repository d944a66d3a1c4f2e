package objects

import "encoding/xml"

// Dispatch tables for the wide choices. Keeping them as package-level maps
// makes the element-name-to-arm wiring greppable in one place and keeps the
// per-type decoders down to plumbing.
//
// The tables are recursive: location arms decode nested locations and
// Pub_equiv decodes nested Pubs, so the closures reach back into the maps
// they live in. Populating the vars in init rather than at declaration
// breaks the initialization cycle.
func init() {
	seqIDArms = seqIDArmTable()
	seqLocArms = seqLocArmTable()
	seqdescArms = seqdescArmTable()
	pubArms = pubArmTable()
	seqDataArms = seqDataArmTable()
}

type seqIDArmFunc func(d *decoder, start xml.StartElement, out *SeqID) error

var seqIDArms map[string]seqIDArmFunc

func seqIDArmTable() map[string]seqIDArmFunc {
	return map[string]seqIDArmFunc{
		"Seq-id_local": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.wrappedObjectID(&out.Local, "Seq-id.local")
		},
		"Seq-id_gibbsq": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.optInt(&out.GibbSq)
		},
		"Seq-id_gibbmt": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.optInt(&out.GibbMt)
		},
		"Seq-id_giim": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Giimport-id" {
					return d.unknown(inner, "Seq-id.giim")
				}
				giim := &GiimportID{}
				if err := d.giimportID(giim); err != nil {
					return err
				}
				out.Giim = giim
				return nil
			})
		},
		"Seq-id_genbank": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.textseqIDArm(&out.Genbank, "Seq-id.genbank")
		},
		"Seq-id_embl": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.textseqIDArm(&out.Embl, "Seq-id.embl")
		},
		"Seq-id_pir": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.textseqIDArm(&out.Pir, "Seq-id.pir")
		},
		"Seq-id_swissprot": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.textseqIDArm(&out.Swissprot, "Seq-id.swissprot")
		},
		"Seq-id_patent": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Patent-seq-id" {
					return d.unknown(inner, "Seq-id.patent")
				}
				pat := &PatentSeqID{}
				if err := d.patentSeqID(pat); err != nil {
					return err
				}
				out.Patent = pat
				return nil
			})
		},
		"Seq-id_other": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.textseqIDArm(&out.Other, "Seq-id.other")
		},
		"Seq-id_general": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.wrappedDbTag(&out.General, "Seq-id.general")
		},
		"Seq-id_gi": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.optInt(&out.Gi)
		},
		"Seq-id_ddbj": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.textseqIDArm(&out.Ddbj, "Seq-id.ddbj")
		},
		"Seq-id_prf": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.textseqIDArm(&out.Prf, "Seq-id.prf")
		},
		"Seq-id_pdb": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "PDB-seq-id" {
					return d.unknown(inner, "Seq-id.pdb")
				}
				pdb := &PDBSeqID{}
				if err := d.pdbSeqID(pdb); err != nil {
					return err
				}
				out.Pdb = pdb
				return nil
			})
		},
		"Seq-id_tpg": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.textseqIDArm(&out.Tpg, "Seq-id.tpg")
		},
		"Seq-id_tpe": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.textseqIDArm(&out.Tpe, "Seq-id.tpe")
		},
		"Seq-id_tpd": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.textseqIDArm(&out.Tpd, "Seq-id.tpd")
		},
		"Seq-id_gpipe": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.textseqIDArm(&out.Gpipe, "Seq-id.gpipe")
		},
		"Seq-id_named-annot-track": func(d *decoder, _ xml.StartElement, out *SeqID) error {
			return d.textseqIDArm(&out.NamedAnnotTrack, "Seq-id.named-annot-track")
		},
	}
}

type seqLocArmFunc func(d *decoder, start xml.StartElement, out *SeqLoc) error

var seqLocArms map[string]seqLocArmFunc

func seqLocArmTable() map[string]seqLocArmFunc {
	return map[string]seqLocArmFunc{
		"Seq-loc_null": func(d *decoder, _ xml.StartElement, out *SeqLoc) error {
			if err := d.skip(); err != nil {
				return err
			}
			out.Null = true
			return nil
		},
		"Seq-loc_empty": func(d *decoder, _ xml.StartElement, out *SeqLoc) error {
			return d.wrappedSeqID(&out.Empty, "Seq-loc.empty")
		},
		"Seq-loc_whole": func(d *decoder, _ xml.StartElement, out *SeqLoc) error {
			return d.wrappedSeqID(&out.Whole, "Seq-loc.whole")
		},
		"Seq-loc_int": func(d *decoder, _ xml.StartElement, out *SeqLoc) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Seq-interval" {
					return d.unknown(inner, "Seq-loc.int")
				}
				si := &SeqInterval{}
				if err := d.seqInterval(si); err != nil {
					return err
				}
				out.Int = si
				return nil
			})
		},
		"Seq-loc_packed-int": func(d *decoder, _ xml.StartElement, out *SeqLoc) error {
			out.PackedInt = []*SeqInterval{}
			return d.seqIntervalList(&out.PackedInt, "Seq-loc.packed-int")
		},
		"Seq-loc_pnt": func(d *decoder, _ xml.StartElement, out *SeqLoc) error {
			return d.wrappedSeqPoint(&out.Pnt, "Seq-loc.pnt")
		},
		"Seq-loc_packed-pnt": func(d *decoder, _ xml.StartElement, out *SeqLoc) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Packed-seqpnt" {
					return d.unknown(inner, "Seq-loc.packed-pnt")
				}
				pp := &PackedSeqPnt{}
				if err := d.packedSeqPnt(pp); err != nil {
					return err
				}
				out.PackedPnt = pp
				return nil
			})
		},
		"Seq-loc_mix": func(d *decoder, _ xml.StartElement, out *SeqLoc) error {
			out.Mix = []*SeqLoc{}
			return d.seqLocList(&out.Mix, "Seq-loc.mix")
		},
		"Seq-loc_equiv": func(d *decoder, _ xml.StartElement, out *SeqLoc) error {
			out.Equiv = []*SeqLoc{}
			return d.seqLocList(&out.Equiv, "Seq-loc.equiv")
		},
		"Seq-loc_bond": func(d *decoder, _ xml.StartElement, out *SeqLoc) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Seq-bond" {
					return d.unknown(inner, "Seq-loc.bond")
				}
				bond := &SeqBond{}
				if err := d.seqBond(bond); err != nil {
					return err
				}
				out.Bond = bond
				return nil
			})
		},
		"Seq-loc_feat": func(d *decoder, _ xml.StartElement, out *SeqLoc) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Feat-id" {
					return d.unknown(inner, "Seq-loc.feat")
				}
				fid := &FeatID{}
				if err := d.featID(fid); err != nil {
					return err
				}
				out.Feat = fid
				return nil
			})
		},
	}
}

type seqdescArmFunc func(d *decoder, start xml.StartElement, out *Seqdesc) error

var seqdescArms map[string]seqdescArmFunc

func seqdescArmTable() map[string]seqdescArmFunc {
	return map[string]seqdescArmFunc{
		"Seqdesc_mol-type": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			code, present, err := d.wrappedEnum("GIBB-mol", gibbMolEnum)
			if err != nil {
				return err
			}
			if present {
				m := GIBBMol(code)
				out.MolType = &m
			}
			return nil
		},
		"Seqdesc_modif": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			out.Modif = []GIBBMod{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "GIBB-mod" {
					return d.unknown(inner, "Seqdesc.modif")
				}
				code, present, err := d.enumLeaf(inner, gibbModEnum)
				if err != nil {
					return err
				}
				if present {
					out.Modif = append(out.Modif, GIBBMod(code))
				}
				return nil
			})
		},
		"Seqdesc_method": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			code, present, err := d.wrappedEnum("GIBB-method", gibbMethodEnum)
			if err != nil {
				return err
			}
			if present {
				m := GIBBMethod(code)
				out.Method = &m
			}
			return nil
		},
		"Seqdesc_name": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.optStr(&out.Name)
		},
		"Seqdesc_title": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.optStr(&out.Title)
		},
		"Seqdesc_org": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.wrappedOrgRef(&out.Org, "Seqdesc.org")
		},
		"Seqdesc_comment": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.optStr(&out.Comment)
		},
		"Seqdesc_num": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.wrappedNumbering(&out.Num, "Seqdesc.num")
		},
		"Seqdesc_maploc": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.wrappedDbTag(&out.MapLoc, "Seqdesc.maploc")
		},
		"Seqdesc_pir": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "PIR-block" {
					return d.unknown(inner, "Seqdesc.pir")
				}
				blk := &PIRBlock{}
				if err := d.pirBlock(blk); err != nil {
					return err
				}
				out.Pir = blk
				return nil
			})
		},
		"Seqdesc_genbank": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "GB-block" {
					return d.unknown(inner, "Seqdesc.genbank")
				}
				blk := &GBBlock{}
				if err := d.gbBlock(blk); err != nil {
					return err
				}
				out.Genbank = blk
				return nil
			})
		},
		"Seqdesc_pub": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Pubdesc" {
					return d.unknown(inner, "Seqdesc.pub")
				}
				pd := &PubDesc{}
				if err := d.pubDesc(pd); err != nil {
					return err
				}
				out.Pub = pd
				return nil
			})
		},
		"Seqdesc_region": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.optStr(&out.Region)
		},
		"Seqdesc_user": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.wrappedUserObject(&out.User, "Seqdesc.user")
		},
		"Seqdesc_sp": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "SP-block" {
					return d.unknown(inner, "Seqdesc.sp")
				}
				blk := &SPBlock{}
				if err := d.spBlock(blk); err != nil {
					return err
				}
				out.Sp = blk
				return nil
			})
		},
		"Seqdesc_dbxref": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.wrappedDbTag(&out.DbXref, "Seqdesc.dbxref")
		},
		"Seqdesc_embl": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "EMBL-block" {
					return d.unknown(inner, "Seqdesc.embl")
				}
				blk := &EMBLBlock{}
				if err := d.emblBlock(blk); err != nil {
					return err
				}
				out.Embl = blk
				return nil
			})
		},
		"Seqdesc_create-date": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.wrappedDate(&out.CreateDate, "Seqdesc.create-date")
		},
		"Seqdesc_update-date": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.wrappedDate(&out.UpdateDate, "Seqdesc.update-date")
		},
		"Seqdesc_prf": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "PRF-block" {
					return d.unknown(inner, "Seqdesc.prf")
				}
				blk := &PRFBlock{}
				if err := d.prfBlock(blk); err != nil {
					return err
				}
				out.Prf = blk
				return nil
			})
		},
		"Seqdesc_pdb": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "PDB-block" {
					return d.unknown(inner, "Seqdesc.pdb")
				}
				blk := &PDBBlock{}
				if err := d.pdbBlock(blk); err != nil {
					return err
				}
				out.Pdb = blk
				return nil
			})
		},
		"Seqdesc_het": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.optStr(&out.Het)
		},
		"Seqdesc_source": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "BioSource" {
					return d.unknown(inner, "Seqdesc.source")
				}
				src := &BioSource{}
				if err := d.bioSource(src); err != nil {
					return err
				}
				out.Source = src
				return nil
			})
		},
		"Seqdesc_molinfo": func(d *decoder, _ xml.StartElement, out *Seqdesc) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "MolInfo" {
					return d.unknown(inner, "Seqdesc.molinfo")
				}
				mi := &MolInfo{}
				if err := d.molInfo(mi); err != nil {
					return err
				}
				out.MolInfo = mi
				return nil
			})
		},
	}
}

type pubArmFunc func(d *decoder, start xml.StartElement, out *Pub) error

var pubArms map[string]pubArmFunc

func pubArmTable() map[string]pubArmFunc {
	return map[string]pubArmFunc{
		"Pub_gen": func(d *decoder, _ xml.StartElement, out *Pub) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Cit-gen" {
					return d.unknown(inner, "Pub.gen")
				}
				cg := &CitGen{}
				if err := d.citGen(cg); err != nil {
					return err
				}
				out.Gen = cg
				return nil
			})
		},
		"Pub_sub": func(d *decoder, _ xml.StartElement, out *Pub) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Cit-sub" {
					return d.unknown(inner, "Pub.sub")
				}
				cs := &CitSub{}
				if err := d.citSub(cs); err != nil {
					return err
				}
				out.Sub = cs
				return nil
			})
		},
		"Pub_muid": func(d *decoder, _ xml.StartElement, out *Pub) error {
			return d.optInt(&out.Muid)
		},
		"Pub_article": func(d *decoder, _ xml.StartElement, out *Pub) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Cit-art" {
					return d.unknown(inner, "Pub.article")
				}
				ca := &CitArt{}
				if err := d.citArt(ca); err != nil {
					return err
				}
				out.Article = ca
				return nil
			})
		},
		"Pub_journal": func(d *decoder, _ xml.StartElement, out *Pub) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Cit-jour" {
					return d.unknown(inner, "Pub.journal")
				}
				cj := &CitJour{}
				if err := d.citJour(cj); err != nil {
					return err
				}
				out.Journal = cj
				return nil
			})
		},
		"Pub_book": func(d *decoder, _ xml.StartElement, out *Pub) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Cit-book" {
					return d.unknown(inner, "Pub.book")
				}
				cb := &CitBook{}
				if err := d.citBook(cb); err != nil {
					return err
				}
				out.Book = cb
				return nil
			})
		},
		"Pub_proc": func(d *decoder, _ xml.StartElement, out *Pub) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Cit-proc" {
					return d.unknown(inner, "Pub.proc")
				}
				cp := &CitProc{}
				if err := d.citProc(cp); err != nil {
					return err
				}
				out.Proc = cp
				return nil
			})
		},
		"Pub_patent": func(d *decoder, _ xml.StartElement, out *Pub) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Cit-pat" {
					return d.unknown(inner, "Pub.patent")
				}
				cp := &CitPat{}
				if err := d.citPat(cp); err != nil {
					return err
				}
				out.Patent = cp
				return nil
			})
		},
		"Pub_pat-id": func(d *decoder, _ xml.StartElement, out *Pub) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Id-pat" {
					return d.unknown(inner, "Pub.pat-id")
				}
				ip := &IDPat{}
				if err := d.idPat(ip); err != nil {
					return err
				}
				out.PatID = ip
				return nil
			})
		},
		"Pub_man": func(d *decoder, _ xml.StartElement, out *Pub) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Cit-let" {
					return d.unknown(inner, "Pub.man")
				}
				cl := &CitLet{}
				if err := d.citLet(cl); err != nil {
					return err
				}
				out.Man = cl
				return nil
			})
		},
		"Pub_equiv": func(d *decoder, _ xml.StartElement, out *Pub) error {
			out.Equiv = []*Pub{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Pub" {
					return d.unknown(inner, "Pub.equiv")
				}
				p := &Pub{}
				if err := d.pub(p); err != nil {
					return err
				}
				if _, armErr := p.Arm(); d.keepChoice(armErr) {
					out.Equiv = append(out.Equiv, p)
				}
				return nil
			})
		},
		"Pub_pmid": func(d *decoder, _ xml.StartElement, out *Pub) error {
			return d.optInt(&out.PmID)
		},
	}
}

type seqDataArmFunc func(d *decoder, start xml.StartElement, out *SeqData) error

// alphabetStrArm covers the Seq-data arms whose payload is one character
// per residue inside a named wrapper element.
func alphabetStrArm(wrapper string, field func(*SeqData) **string) seqDataArmFunc {
	return func(d *decoder, _ xml.StartElement, out *SeqData) error {
		return d.children(func(inner xml.StartElement) error {
			if inner.Name.Local != wrapper {
				return d.unknown(inner, "Seq-data")
			}
			return d.optStr(field(out))
		})
	}
}

// alphabetHexArm covers the packed arms whose payload is hex octets inside
// a named wrapper element.
func alphabetHexArm(wrapper string, field func(*SeqData) *[]byte) seqDataArmFunc {
	return func(d *decoder, _ xml.StartElement, out *SeqData) error {
		return d.children(func(inner xml.StartElement) error {
			if inner.Name.Local != wrapper {
				return d.unknown(inner, "Seq-data")
			}
			b, err := d.hexLeaf()
			if err != nil {
				return err
			}
			*field(out) = b
			return nil
		})
	}
}

var seqDataArms map[string]seqDataArmFunc

func seqDataArmTable() map[string]seqDataArmFunc {
	return map[string]seqDataArmFunc{
		"Seq-data_iupacna": alphabetStrArm("IUPACna", func(s *SeqData) **string { return &s.IUPACna }),
		"Seq-data_iupacaa": alphabetStrArm("IUPACaa", func(s *SeqData) **string { return &s.IUPACaa }),
		"Seq-data_ncbieaa": alphabetStrArm("NCBIeaa", func(s *SeqData) **string { return &s.NCBIeaa }),
		"Seq-data_ncbi2na": alphabetHexArm("NCBI2na", func(s *SeqData) *[]byte { return &s.NCBI2na }),
		"Seq-data_ncbi4na": alphabetHexArm("NCBI4na", func(s *SeqData) *[]byte { return &s.NCBI4na }),
		"Seq-data_ncbi8na": alphabetHexArm("NCBI8na", func(s *SeqData) *[]byte { return &s.NCBI8na }),
		"Seq-data_ncbipna": alphabetHexArm("NCBIpna", func(s *SeqData) *[]byte { return &s.NCBIpna }),
		"Seq-data_ncbi8aa": alphabetHexArm("NCBI8aa", func(s *SeqData) *[]byte { return &s.NCBI8aa }),
		"Seq-data_ncbipaa": alphabetHexArm("NCBIpaa", func(s *SeqData) *[]byte { return &s.NCBIpaa }),
		"Seq-data_ncbistdaa": alphabetHexArm("NCBIstdaa",
			func(s *SeqData) *[]byte { return &s.NCBIstdaa }),
		"Seq-data_gap": func(d *decoder, _ xml.StartElement, out *SeqData) error {
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Seq-gap" {
					return d.unknown(inner, "Seq-data.gap")
				}
				gap := &SeqGap{}
				if err := d.seqGap(gap); err != nil {
					return err
				}
				out.Gap = gap
				return nil
			})
		},
	}
}
