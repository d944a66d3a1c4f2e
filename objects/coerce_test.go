package objects

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int64
		present bool
		wantErr bool
	}{
		{name: "plain", text: "42", want: 42, present: true},
		{name: "negative", text: "-7", want: -7, present: true},
		{name: "leading_whitespace", text: "  120", want: 120, present: true},
		{name: "wrapped_newlines", text: "\n  120\n  ", want: 120, present: true},
		{name: "empty_is_absent", text: "", present: false},
		{name: "whitespace_only_is_absent", text: " \n\t ", present: false},
		{name: "letters", text: "twelve", present: true, wantErr: true},
		{name: "trailing_garbage", text: "12x", present: true, wantErr: true},
		{name: "float_is_not_int", text: "1.5", present: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, present, err := parseInt(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseInt(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if present != tt.present {
				t.Errorf("parseInt(%q) present = %v, want %v", tt.text, present, tt.present)
			}
			if err == nil && v != tt.want {
				t.Errorf("parseInt(%q) = %d, want %d", tt.text, v, tt.want)
			}
			if tt.wantErr {
				var ne *NumericError
				if !errors.As(err, &ne) {
					t.Errorf("parseInt(%q) error type = %T, want *NumericError", tt.text, err)
				} else if ne.Text != tt.text {
					t.Errorf("NumericError.Text = %q, want the original %q", ne.Text, tt.text)
				}
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    float64
		present bool
		wantErr bool
	}{
		{name: "plain", text: "1.5", want: 1.5, present: true},
		{name: "integer_form", text: "3", want: 3, present: true},
		{name: "exponent", text: "1e3", want: 1000, present: true},
		{name: "whitespace", text: " 2.25 ", want: 2.25, present: true},
		{name: "empty_is_absent", text: "", present: false},
		{name: "letters", text: "pi", present: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, present, err := parseFloat(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFloat(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if present != tt.present {
				t.Errorf("parseFloat(%q) present = %v, want %v", tt.text, present, tt.present)
			}
			if err == nil && v != tt.want {
				t.Errorf("parseFloat(%q) = %g, want %g", tt.text, v, tt.want)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    bool
		present bool
		ok      bool
	}{
		{name: "true", text: "true", want: true, present: true, ok: true},
		{name: "false", text: "false", want: false, present: true, ok: true},
		{name: "padded", text: " true ", want: true, present: true, ok: true},
		{name: "empty_is_absent", text: "", present: false, ok: true},
		{name: "TRUE_is_malformed", text: "TRUE", present: true, ok: false},
		{name: "one_is_malformed", text: "1", present: true, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, present, ok := parseBool(tt.text)
			if ok != tt.ok {
				t.Fatalf("parseBool(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if present != tt.present {
				t.Errorf("parseBool(%q) present = %v, want %v", tt.text, present, tt.present)
			}
			if ok && present && v != tt.want {
				t.Errorf("parseBool(%q) = %v, want %v", tt.text, v, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []byte
		wantErr bool
	}{
		{name: "lowercase", text: "1b27", want: []byte{0x1b, 0x27}},
		{name: "uppercase", text: "1B27", want: []byte{0x1b, 0x27}},
		{name: "wrapped_lines", text: "1B\n27\n  00", want: []byte{0x1b, 0x27, 0x00}},
		{name: "empty_is_nil", text: "", want: nil},
		{name: "whitespace_only_is_nil", text: " \n ", want: nil},
		{name: "odd_digits", text: "1B2", wantErr: true},
		{name: "non_hex", text: "XYZ1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHex(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHex(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if err != nil {
				var ne *NumericError
				if !errors.As(err, &ne) {
					t.Errorf("parseHex(%q) error type = %T, want *NumericError", tt.text, err)
				}
				return
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("parseHex(%q) = %x, want %x", tt.text, got, tt.want)
			}
		})
	}
}
