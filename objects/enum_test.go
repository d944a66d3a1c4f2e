package objects

import "testing"

func TestEnumDef(t *testing.T) {
	def := defEnum("Seq-inst.repr", map[int64]string{
		0: "not-set", 2: "raw", 255: "other",
	})

	if got := def.str(2); got != "raw" {
		t.Errorf("str(2) = %q, want %q", got, "raw")
	}
	if got := def.str(9); got != "unknown(9)" {
		t.Errorf("str(9) = %q, want %q", got, "unknown(9)")
	}
	if !def.known(255) {
		t.Error("known(255) = false, want true")
	}
	if def.known(9) {
		t.Error("known(9) = true, want false")
	}
	if name, ok := def.name(0); !ok || name != "not-set" {
		t.Errorf("name(0) = %q, %v, want %q, true", name, ok, "not-set")
	}
	if code, ok := def.code("raw"); !ok || code != 2 {
		t.Errorf("code(%q) = %d, %v, want 2, true", "raw", code, ok)
	}
	if _, ok := def.code("bogus"); ok {
		t.Error("code(\"bogus\") ok = true, want false")
	}
}

func TestEnumTypesRenderNames(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "repr", got: ReprRaw.String(), want: "raw"},
		{name: "mol", got: MolAA.String(), want: "aa"},
		{name: "strand", got: NaStrandMinus.String(), want: "minus"},
		{name: "set_class", got: BioseqSetClassNucProt.String(), want: "nuc-prot"},
		{name: "pub_status", got: PubStatusEPublish.String(), want: "epublish"},
		{name: "subsource", got: SubSourceChromosome.String(), want: "chromosome"},
		{name: "unknown_code", got: Repr(42).String(), want: "unknown(42)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestFlagBits(t *testing.T) {
	const (
		bitA FlagBits = 1 << 0
		bitB FlagBits = 1 << 1
		bitC FlagBits = 1 << 2
	)
	known := bitA | bitB | bitC

	f := FlagBits(0).With(bitA).With(bitC)
	if !f.Has(bitA) || !f.Has(bitC) {
		t.Errorf("Has: %b missing bits set by With", f)
	}
	if f.Has(bitB) {
		t.Errorf("Has(bitB) = true on %b", f)
	}
	if got := f.Without(bitA); got != bitC {
		t.Errorf("Without(bitA) = %b, want %b", got, bitC)
	}

	// Bits outside the known mask must survive untouched.
	wire := FlagBits(0x89) // bitA plus two future bits
	if got := wire.Unknown(known); got != 0x88 {
		t.Errorf("Unknown = %#x, want %#x", got, 0x88)
	}
	if got := wire.Without(bitA).Code(); got != 0x88 {
		t.Errorf("Code after Without = %#x, want %#x", got, 0x88)
	}
	if wire.Code() != 0x89 {
		t.Errorf("Code = %#x, want exact wire value %#x", wire.Code(), 0x89)
	}
}
