package objects

import "encoding/xml"

// Decoders for the general-purpose elements.

func (d *decoder) date(out *Date) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Date_str":
			return d.optStr(&out.Str)
		case "Date_std":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Date-std" {
					return d.unknown(inner, "Date.std")
				}
				std := &DateStd{}
				if err := d.dateStd(std); err != nil {
					return err
				}
				out.Std = std
				return nil
			})
		default:
			return d.unknown(start, "Date")
		}
	})
}

func (d *decoder) dateStd(out *DateStd) error {
	seenYear := false
	err := d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Date-std_year":
			return d.reqInt(&out.Year, &seenYear)
		case "Date-std_month":
			return d.optInt(&out.Month)
		case "Date-std_day":
			return d.optInt(&out.Day)
		case "Date-std_season":
			return d.optStr(&out.Season)
		case "Date-std_hour":
			return d.optInt(&out.Hour)
		case "Date-std_minute":
			return d.optInt(&out.Minute)
		case "Date-std_second":
			return d.optInt(&out.Second)
		default:
			return d.unknown(start, "Date-std")
		}
	})
	if err != nil {
		return err
	}
	if !seenYear {
		return schemaErrf(d.at(), "Date-std has no year")
	}
	return nil
}

func (d *decoder) objectID(out *ObjectID) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Object-id_id":
			return d.optInt(&out.ID)
		case "Object-id_str":
			return d.optStr(&out.Str)
		default:
			return d.unknown(start, "Object-id")
		}
	})
}

// wrappedObjectID decodes a field element that wraps an Object-id.
func (d *decoder) wrappedObjectID(out **ObjectID, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Object-id" {
			return d.unknown(start, context)
		}
		oid := &ObjectID{}
		if err := d.objectID(oid); err != nil {
			return err
		}
		*out = oid
		return nil
	})
}

func (d *decoder) dbTag(out *DbTag) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Dbtag_db":
			return d.reqStr(&out.Db)
		case "Dbtag_tag":
			return d.wrappedObjectID(&out.Tag, "Dbtag.tag")
		default:
			return d.unknown(start, "Dbtag")
		}
	})
}

func (d *decoder) wrappedDbTag(out **DbTag, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Dbtag" {
			return d.unknown(start, context)
		}
		tag := &DbTag{}
		if err := d.dbTag(tag); err != nil {
			return err
		}
		*out = tag
		return nil
	})
}

func (d *decoder) wrappedDate(out **Date, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Date" {
			return d.unknown(start, context)
		}
		date := &Date{}
		if err := d.date(date); err != nil {
			return err
		}
		*out = date
		return nil
	})
}

func (d *decoder) personID(out *PersonID) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Person-id_dbtag":
			return d.wrappedDbTag(&out.DbTag, "Person-id.dbtag")
		case "Person-id_name":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "Name-std" {
					return d.unknown(inner, "Person-id.name")
				}
				name := &NameStd{}
				if err := d.nameStd(name); err != nil {
					return err
				}
				out.Name = name
				return nil
			})
		case "Person-id_ml":
			return d.optStr(&out.ML)
		case "Person-id_str":
			return d.optStr(&out.Str)
		case "Person-id_consortium":
			return d.optStr(&out.Consortium)
		default:
			return d.unknown(start, "Person-id")
		}
	})
}

func (d *decoder) nameStd(out *NameStd) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Name-std_last":
			return d.reqStr(&out.Last)
		case "Name-std_first":
			return d.optStr(&out.First)
		case "Name-std_middle":
			return d.optStr(&out.Middle)
		case "Name-std_full":
			return d.optStr(&out.Full)
		case "Name-std_initials":
			return d.optStr(&out.Initials)
		case "Name-std_suffix":
			return d.optStr(&out.Suffix)
		case "Name-std_title":
			return d.optStr(&out.Title)
		default:
			return d.unknown(start, "Name-std")
		}
	})
}

func (d *decoder) intFuzz(out *IntFuzz) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "Int-fuzz_p-m":
			return d.optInt(&out.PM)
		case "Int-fuzz_range":
			r := &Range{}
			seenMax, seenMin := false, false
			err := d.children(func(inner xml.StartElement) error {
				switch inner.Name.Local {
				case "Int-fuzz_range_max":
					return d.reqInt(&r.Max, &seenMax)
				case "Int-fuzz_range_min":
					return d.reqInt(&r.Min, &seenMin)
				default:
					return d.unknown(inner, "Int-fuzz.range")
				}
			})
			if err != nil {
				return err
			}
			if !seenMax || !seenMin {
				return schemaErrf(d.at(), "Int-fuzz range needs both bounds")
			}
			out.Range = r
			return nil
		case "Int-fuzz_pct":
			return d.optInt(&out.Pct)
		case "Int-fuzz_lim":
			code, present, err := d.enumLeaf(start, fuzzLimitEnum)
			if err != nil {
				return err
			}
			if present {
				lim := FuzzLimit(code)
				out.Lim = &lim
			}
			return nil
		case "Int-fuzz_alt":
			return d.intList("Int-fuzz_alt_E", &out.Alt, "Int-fuzz.alt")
		default:
			return d.unknown(start, "Int-fuzz")
		}
	})
}

func (d *decoder) wrappedIntFuzz(out **IntFuzz, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "Int-fuzz" {
			return d.unknown(start, context)
		}
		fuzz := &IntFuzz{}
		if err := d.intFuzz(fuzz); err != nil {
			return err
		}
		*out = fuzz
		return nil
	})
}

func (d *decoder) userObject(out *UserObject) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "User-object_class":
			return d.optStr(&out.Class)
		case "User-object_type":
			return d.wrappedObjectID(&out.Type, "User-object.type")
		case "User-object_data":
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "User-field" {
					return d.unknown(inner, "User-object.data")
				}
				field := &UserField{}
				if err := d.userField(field); err != nil {
					return err
				}
				out.Data = append(out.Data, field)
				return nil
			})
		default:
			return d.unknown(start, "User-object")
		}
	})
}

func (d *decoder) wrappedUserObject(out **UserObject, context string) error {
	return d.children(func(start xml.StartElement) error {
		if start.Name.Local != "User-object" {
			return d.unknown(start, context)
		}
		obj := &UserObject{}
		if err := d.userObject(obj); err != nil {
			return err
		}
		*out = obj
		return nil
	})
}

func (d *decoder) userField(out *UserField) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "User-field_label":
			return d.wrappedObjectID(&out.Label, "User-field.label")
		case "User-field_num":
			return d.optInt(&out.Num)
		case "User-field_data":
			data := &UserData{}
			if err := d.userData(data); err != nil {
				return err
			}
			out.Data = data
			return nil
		default:
			return d.unknown(start, "User-field")
		}
	})
}

func (d *decoder) userData(out *UserData) error {
	return d.children(func(start xml.StartElement) error {
		switch start.Name.Local {
		case "User-field_data_str":
			return d.optStr(&out.Str)
		case "User-field_data_int":
			return d.optInt(&out.Int)
		case "User-field_data_real":
			return d.optFloat(&out.Real)
		case "User-field_data_bool":
			v, present, err := d.boolLeaf(start)
			if err != nil {
				return err
			}
			if present {
				out.Bool = &v
			}
			return nil
		case "User-field_data_object":
			return d.wrappedUserObject(&out.Object, "User-field.data.object")
		case "User-field_data_strs":
			return d.stringList("User-field_data_strs_E", &out.Strs, "User-field.data.strs")
		case "User-field_data_ints":
			return d.intList("User-field_data_ints_E", &out.Ints, "User-field.data.ints")
		case "User-field_data_reals":
			return d.floatList("User-field_data_reals_E", &out.Reals, "User-field.data.reals")
		case "User-field_data_fields":
			out.Fields = []*UserField{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "User-field" {
					return d.unknown(inner, "User-field.data.fields")
				}
				field := &UserField{}
				if err := d.userField(field); err != nil {
					return err
				}
				out.Fields = append(out.Fields, field)
				return nil
			})
		case "User-field_data_objects":
			out.Objects = []*UserObject{}
			return d.children(func(inner xml.StartElement) error {
				if inner.Name.Local != "User-object" {
					return d.unknown(inner, "User-field.data.objects")
				}
				obj := &UserObject{}
				if err := d.userObject(obj); err != nil {
					return err
				}
				out.Objects = append(out.Objects, obj)
				return nil
			})
		default:
			return d.unknown(start, "User-field.data")
		}
	})
}
