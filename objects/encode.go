package objects

import (
	"bytes"
	"encoding/hex"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// Encode validates entry and writes it to w as an XML document rooted at
// Seq-entry. The output is indented and decodes back to an equal tree.
func Encode(w io.Writer, entry *SeqEntry, opts ...Option) error {
	o := buildOptions(opts)
	if err := Validate(entry, WithMaxDepth(o.maxDepth)); err != nil {
		return err
	}
	xe := xml.NewEncoder(w)
	xe.Indent("", "  ")
	e := &encoder{xe: xe}
	if err := e.seqEntry(entry); err != nil {
		return err
	}
	return xe.Flush()
}

// EncodeBytes is Encode into a fresh buffer.
func EncodeBytes(entry *SeqEntry, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, entry, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encoder emits tokens. The tree has already been validated, so choice
// methods may assume exactly one populated arm; the only runtime errors
// left are I/O failures surfacing through EncodeToken.
type encoder struct {
	xe *xml.Encoder
}

func (e *encoder) open(name string, attrs ...xml.Attr) error {
	return e.xe.EncodeToken(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

func (e *encoder) close(name string) error {
	return e.xe.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

// element writes an element around body.
func (e *encoder) element(name string, body func() error) error {
	if err := e.open(name); err != nil {
		return err
	}
	if err := body(); err != nil {
		return err
	}
	return e.close(name)
}

func (e *encoder) leaf(name, text string) error {
	if err := e.open(name); err != nil {
		return err
	}
	if err := e.xe.EncodeToken(xml.CharData(text)); err != nil {
		return err
	}
	return e.close(name)
}

func (e *encoder) leafInt(name string, v int64) error {
	return e.leaf(name, strconv.FormatInt(v, 10))
}

func (e *encoder) leafFloat(name string, v float64) error {
	return e.leaf(name, strconv.FormatFloat(v, 'g', -1, 64))
}

// leafBool writes the value attribute form used throughout the format.
func (e *encoder) leafBool(name string, v bool) error {
	attr := xml.Attr{Name: xml.Name{Local: "value"}, Value: strconv.FormatBool(v)}
	if err := e.open(name, attr); err != nil {
		return err
	}
	return e.close(name)
}

// leafEnum writes the numeric code as content and, when the code has a
// symbolic name, the name as the value attribute. Unknown codes thus
// round-trip without one.
func (e *encoder) leafEnum(name string, def *enumDef, code int64) error {
	var attrs []xml.Attr
	if symbolic, ok := def.name(code); ok {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "value"}, Value: symbolic})
	}
	if err := e.open(name, attrs...); err != nil {
		return err
	}
	if err := e.xe.EncodeToken(xml.CharData(strconv.FormatInt(code, 10))); err != nil {
		return err
	}
	return e.close(name)
}

// wrappedEnumLeaf writes an enum behind its named type element.
func (e *encoder) wrappedEnumLeaf(field, wrapper string, def *enumDef, code int64) error {
	return e.element(field, func() error {
		return e.leafEnum(wrapper, def, code)
	})
}

func (e *encoder) leafHex(name string, b []byte) error {
	return e.leaf(name, strings.ToUpper(hex.EncodeToString(b)))
}

func (e *encoder) stringList(field, item string, values []string) error {
	return e.element(field, func() error {
		for _, v := range values {
			if err := e.leaf(item, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (e *encoder) intList(field, item string, values []int64) error {
	return e.element(field, func() error {
		for _, v := range values {
			if err := e.leafInt(item, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (e *encoder) floatList(field, item string, values []float64) error {
	return e.element(field, func() error {
		for _, v := range values {
			if err := e.leafFloat(item, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (e *encoder) seqEntry(entry *SeqEntry) error {
	return e.element("Seq-entry", func() error {
		if entry.Seq != nil {
			return e.element("Seq-entry_seq", func() error {
				return e.bioseq(entry.Seq)
			})
		}
		return e.element("Seq-entry_set", func() error {
			return e.bioseqSet(entry.Set)
		})
	})
}

func (e *encoder) bioseqSet(set *BioseqSet) error {
	return e.element("Bioseq-set", func() error {
		if set.ID != nil {
			if err := e.element("Bioseq-set_id", func() error {
				return e.objectID(set.ID)
			}); err != nil {
				return err
			}
		}
		if set.Coll != nil {
			if err := e.element("Bioseq-set_coll", func() error {
				return e.dbTag(set.Coll)
			}); err != nil {
				return err
			}
		}
		if set.Level != nil {
			if err := e.leafInt("Bioseq-set_level", *set.Level); err != nil {
				return err
			}
		}
		if set.Class != BioseqSetClassNotSet {
			if err := e.leafEnum("Bioseq-set_class", bioseqSetClassEnum, int64(set.Class)); err != nil {
				return err
			}
		}
		if set.Release != nil {
			if err := e.leaf("Bioseq-set_release", *set.Release); err != nil {
				return err
			}
		}
		if set.Date != nil {
			if err := e.element("Bioseq-set_date", func() error {
				return e.date(set.Date)
			}); err != nil {
				return err
			}
		}
		if len(set.Descr) > 0 {
			if err := e.seqDescr("Bioseq-set_descr", set.Descr); err != nil {
				return err
			}
		}
		return e.element("Bioseq-set_seq-set", func() error {
			for _, entry := range set.SeqSet {
				if err := e.seqEntry(entry); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (e *encoder) bioseq(seq *Bioseq) error {
	return e.element("Bioseq", func() error {
		if err := e.element("Bioseq_id", func() error {
			for _, id := range seq.ID {
				if err := e.seqID(id); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return err
		}
		if len(seq.Descr) > 0 {
			if err := e.seqDescr("Bioseq_descr", seq.Descr); err != nil {
				return err
			}
		}
		return e.element("Bioseq_inst", func() error {
			return e.seqInst(seq.Inst)
		})
	})
}

func (e *encoder) seqDescr(field string, descr []*Seqdesc) error {
	return e.element(field, func() error {
		return e.element("Seq-descr", func() error {
			for _, d := range descr {
				if err := e.element("Seqdesc", func() error {
					return e.seqdesc(d)
				}); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (e *encoder) seqInst(inst *SeqInst) error {
	return e.element("Seq-inst", func() error {
		if err := e.leafEnum("Seq-inst_repr", reprEnum, int64(inst.Repr)); err != nil {
			return err
		}
		if err := e.leafEnum("Seq-inst_mol", molEnum, int64(inst.Mol)); err != nil {
			return err
		}
		if inst.Length != nil {
			if err := e.leafInt("Seq-inst_length", *inst.Length); err != nil {
				return err
			}
		}
		if inst.Fuzz != nil {
			if err := e.element("Seq-inst_fuzz", func() error {
				return e.intFuzz(inst.Fuzz)
			}); err != nil {
				return err
			}
		}
		if inst.Topology != TopologyNotSet {
			if err := e.leafEnum("Seq-inst_topology", topologyEnum, int64(inst.Topology)); err != nil {
				return err
			}
		}
		if inst.Strand != StrandNotSet {
			if err := e.leafEnum("Seq-inst_strand", strandEnum, int64(inst.Strand)); err != nil {
				return err
			}
		}
		if inst.SeqData != nil {
			if err := e.element("Seq-inst_seq-data", func() error {
				return e.seqData(inst.SeqData)
			}); err != nil {
				return err
			}
		}
		if inst.Ext != nil {
			if err := e.element("Seq-inst_ext", func() error {
				return e.seqExt(inst.Ext)
			}); err != nil {
				return err
			}
		}
		if inst.Hist != nil {
			return e.element("Seq-inst_hist", func() error {
				return e.seqHist(inst.Hist)
			})
		}
		return nil
	})
}

func (e *encoder) seqData(data *SeqData) error {
	return e.element("Seq-data", func() error {
		switch {
		case data.IUPACna != nil:
			return e.element("Seq-data_iupacna", func() error {
				return e.leaf("IUPACna", *data.IUPACna)
			})
		case data.IUPACaa != nil:
			return e.element("Seq-data_iupacaa", func() error {
				return e.leaf("IUPACaa", *data.IUPACaa)
			})
		case data.NCBI2na != nil:
			return e.element("Seq-data_ncbi2na", func() error {
				return e.leafHex("NCBI2na", data.NCBI2na)
			})
		case data.NCBI4na != nil:
			return e.element("Seq-data_ncbi4na", func() error {
				return e.leafHex("NCBI4na", data.NCBI4na)
			})
		case data.NCBI8na != nil:
			return e.element("Seq-data_ncbi8na", func() error {
				return e.leafHex("NCBI8na", data.NCBI8na)
			})
		case data.NCBIpna != nil:
			return e.element("Seq-data_ncbipna", func() error {
				return e.leafHex("NCBIpna", data.NCBIpna)
			})
		case data.NCBI8aa != nil:
			return e.element("Seq-data_ncbi8aa", func() error {
				return e.leafHex("NCBI8aa", data.NCBI8aa)
			})
		case data.NCBIeaa != nil:
			return e.element("Seq-data_ncbieaa", func() error {
				return e.leaf("NCBIeaa", *data.NCBIeaa)
			})
		case data.NCBIpaa != nil:
			return e.element("Seq-data_ncbipaa", func() error {
				return e.leafHex("NCBIpaa", data.NCBIpaa)
			})
		case data.NCBIstdaa != nil:
			return e.element("Seq-data_ncbistdaa", func() error {
				return e.leafHex("NCBIstdaa", data.NCBIstdaa)
			})
		default:
			return e.element("Seq-data_gap", func() error {
				return e.seqGap(data.Gap)
			})
		}
	})
}

func (e *encoder) seqGap(gap *SeqGap) error {
	return e.element("Seq-gap", func() error {
		if err := e.leafEnum("Seq-gap_type", seqGapTypeEnum, int64(gap.Type)); err != nil {
			return err
		}
		if gap.Linkage != nil {
			if err := e.leafEnum("Seq-gap_linkage", seqGapLinkageEnum, int64(*gap.Linkage)); err != nil {
				return err
			}
		}
		if len(gap.LinkageEvidence) > 0 {
			return e.element("Seq-gap_linkage-evidence", func() error {
				for _, ev := range gap.LinkageEvidence {
					if err := e.element("Linkage-evidence", func() error {
						return e.leafEnum("Linkage-evidence_type", linkageEvidenceEnum, int64(ev.Type))
					}); err != nil {
						return err
					}
				}
				return nil
			})
		}
		return nil
	})
}

func (e *encoder) seqExt(ext *SeqExt) error {
	return e.element("Seq-ext", func() error {
		switch {
		case ext.Seg != nil:
			return e.element("Seq-ext_seg", func() error {
				for _, loc := range ext.Seg {
					if err := e.seqLoc(loc); err != nil {
						return err
					}
				}
				return nil
			})
		case ext.Ref != nil:
			return e.element("Seq-ext_ref", func() error {
				return e.seqLoc(ext.Ref)
			})
		default:
			return e.element("Seq-ext_delta", func() error {
				for _, ds := range ext.Delta {
					if err := e.deltaSeq(ds); err != nil {
						return err
					}
				}
				return nil
			})
		}
	})
}

func (e *encoder) deltaSeq(ds *DeltaSeq) error {
	return e.element("Delta-seq", func() error {
		if ds.Loc != nil {
			return e.element("Delta-seq_loc", func() error {
				return e.seqLoc(ds.Loc)
			})
		}
		return e.element("Delta-seq_literal", func() error {
			return e.seqLiteral(ds.Literal)
		})
	})
}

func (e *encoder) seqLiteral(lit *SeqLiteral) error {
	return e.element("Seq-literal", func() error {
		if err := e.leafInt("Seq-literal_length", lit.Length); err != nil {
			return err
		}
		if lit.Fuzz != nil {
			if err := e.element("Seq-literal_fuzz", func() error {
				return e.intFuzz(lit.Fuzz)
			}); err != nil {
				return err
			}
		}
		if lit.SeqData != nil {
			return e.element("Seq-literal_seq-data", func() error {
				return e.seqData(lit.SeqData)
			})
		}
		return nil
	})
}

func (e *encoder) seqHist(h *SeqHist) error {
	return e.element("Seq-hist", func() error {
		if h.Replaces != nil {
			if err := e.seqHistRec("Seq-hist_replaces", h.Replaces); err != nil {
				return err
			}
		}
		if h.ReplacedBy != nil {
			if err := e.seqHistRec("Seq-hist_replaced-by", h.ReplacedBy); err != nil {
				return err
			}
		}
		if h.Deleted != nil {
			return e.element("Seq-hist_deleted", func() error {
				if h.Deleted.Bool != nil {
					return e.leafBool("Seq-hist_deleted_bool", *h.Deleted.Bool)
				}
				return e.element("Seq-hist_deleted_date", func() error {
					return e.date(h.Deleted.Date)
				})
			})
		}
		return nil
	})
}

func (e *encoder) seqHistRec(field string, rec *SeqHistRec) error {
	return e.element(field, func() error {
		return e.element("Seq-hist-rec", func() error {
			if rec.Date != nil {
				if err := e.element("Seq-hist-rec_date", func() error {
					return e.date(rec.Date)
				}); err != nil {
					return err
				}
			}
			return e.element("Seq-hist-rec_ids", func() error {
				for _, id := range rec.IDs {
					if err := e.seqID(id); err != nil {
						return err
					}
				}
				return nil
			})
		})
	})
}
