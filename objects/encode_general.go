package objects

// Encoders for the general-purpose elements.

func (e *encoder) date(d *Date) error {
	return e.element("Date", func() error {
		if d.Str != nil {
			return e.leaf("Date_str", *d.Str)
		}
		return e.element("Date_std", func() error {
			return e.dateStd(d.Std)
		})
	})
}

func (e *encoder) dateStd(std *DateStd) error {
	return e.element("Date-std", func() error {
		if err := e.leafInt("Date-std_year", std.Year); err != nil {
			return err
		}
		if std.Month != nil {
			if err := e.leafInt("Date-std_month", *std.Month); err != nil {
				return err
			}
		}
		if std.Day != nil {
			if err := e.leafInt("Date-std_day", *std.Day); err != nil {
				return err
			}
		}
		if std.Season != nil {
			if err := e.leaf("Date-std_season", *std.Season); err != nil {
				return err
			}
		}
		if std.Hour != nil {
			if err := e.leafInt("Date-std_hour", *std.Hour); err != nil {
				return err
			}
		}
		if std.Minute != nil {
			if err := e.leafInt("Date-std_minute", *std.Minute); err != nil {
				return err
			}
		}
		if std.Second != nil {
			return e.leafInt("Date-std_second", *std.Second)
		}
		return nil
	})
}

func (e *encoder) objectID(oid *ObjectID) error {
	return e.element("Object-id", func() error {
		if oid.ID != nil {
			return e.leafInt("Object-id_id", *oid.ID)
		}
		return e.leaf("Object-id_str", *oid.Str)
	})
}

func (e *encoder) dbTag(tag *DbTag) error {
	return e.element("Dbtag", func() error {
		if err := e.leaf("Dbtag_db", tag.Db); err != nil {
			return err
		}
		return e.element("Dbtag_tag", func() error {
			return e.objectID(tag.Tag)
		})
	})
}

func (e *encoder) personID(pid *PersonID) error {
	return e.element("Person-id", func() error {
		switch {
		case pid.DbTag != nil:
			return e.element("Person-id_dbtag", func() error {
				return e.dbTag(pid.DbTag)
			})
		case pid.Name != nil:
			return e.element("Person-id_name", func() error {
				return e.nameStd(pid.Name)
			})
		case pid.ML != nil:
			return e.leaf("Person-id_ml", *pid.ML)
		case pid.Str != nil:
			return e.leaf("Person-id_str", *pid.Str)
		default:
			return e.leaf("Person-id_consortium", *pid.Consortium)
		}
	})
}

func (e *encoder) nameStd(n *NameStd) error {
	return e.element("Name-std", func() error {
		if err := e.leaf("Name-std_last", n.Last); err != nil {
			return err
		}
		if n.First != nil {
			if err := e.leaf("Name-std_first", *n.First); err != nil {
				return err
			}
		}
		if n.Middle != nil {
			if err := e.leaf("Name-std_middle", *n.Middle); err != nil {
				return err
			}
		}
		if n.Full != nil {
			if err := e.leaf("Name-std_full", *n.Full); err != nil {
				return err
			}
		}
		if n.Initials != nil {
			if err := e.leaf("Name-std_initials", *n.Initials); err != nil {
				return err
			}
		}
		if n.Suffix != nil {
			if err := e.leaf("Name-std_suffix", *n.Suffix); err != nil {
				return err
			}
		}
		if n.Title != nil {
			return e.leaf("Name-std_title", *n.Title)
		}
		return nil
	})
}

func (e *encoder) intFuzz(f *IntFuzz) error {
	return e.element("Int-fuzz", func() error {
		switch {
		case f.PM != nil:
			return e.leafInt("Int-fuzz_p-m", *f.PM)
		case f.Range != nil:
			return e.element("Int-fuzz_range", func() error {
				if err := e.leafInt("Int-fuzz_range_max", f.Range.Max); err != nil {
					return err
				}
				return e.leafInt("Int-fuzz_range_min", f.Range.Min)
			})
		case f.Pct != nil:
			return e.leafInt("Int-fuzz_pct", *f.Pct)
		case f.Lim != nil:
			return e.leafEnum("Int-fuzz_lim", fuzzLimitEnum, int64(*f.Lim))
		default:
			return e.intList("Int-fuzz_alt", "Int-fuzz_alt_E", f.Alt)
		}
	})
}

func (e *encoder) userObject(u *UserObject) error {
	return e.element("User-object", func() error {
		if u.Class != nil {
			if err := e.leaf("User-object_class", *u.Class); err != nil {
				return err
			}
		}
		if err := e.element("User-object_type", func() error {
			return e.objectID(u.Type)
		}); err != nil {
			return err
		}
		return e.element("User-object_data", func() error {
			for _, f := range u.Data {
				if err := e.userField(f); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (e *encoder) userField(f *UserField) error {
	return e.element("User-field", func() error {
		if err := e.element("User-field_label", func() error {
			return e.objectID(f.Label)
		}); err != nil {
			return err
		}
		if f.Num != nil {
			if err := e.leafInt("User-field_num", *f.Num); err != nil {
				return err
			}
		}
		return e.element("User-field_data", func() error {
			return e.userData(f.Data)
		})
	})
}

func (e *encoder) userData(u *UserData) error {
	switch {
	case u.Str != nil:
		return e.leaf("User-field_data_str", *u.Str)
	case u.Int != nil:
		return e.leafInt("User-field_data_int", *u.Int)
	case u.Real != nil:
		return e.leafFloat("User-field_data_real", *u.Real)
	case u.Bool != nil:
		return e.leafBool("User-field_data_bool", *u.Bool)
	case u.Object != nil:
		return e.element("User-field_data_object", func() error {
			return e.userObject(u.Object)
		})
	case u.Strs != nil:
		return e.stringList("User-field_data_strs", "User-field_data_strs_E", u.Strs)
	case u.Ints != nil:
		return e.intList("User-field_data_ints", "User-field_data_ints_E", u.Ints)
	case u.Reals != nil:
		return e.floatList("User-field_data_reals", "User-field_data_reals_E", u.Reals)
	case u.Fields != nil:
		return e.element("User-field_data_fields", func() error {
			for _, f := range u.Fields {
				if err := e.userField(f); err != nil {
					return err
				}
			}
			return nil
		})
	default:
		return e.element("User-field_data_objects", func() error {
			for _, o := range u.Objects {
				if err := e.userObject(o); err != nil {
					return err
				}
			}
			return nil
		})
	}
}
