package ies

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const keywordHeader = "IESNA:LM-63-2002\n" +
	"[TEST] 12345\n" +
	"[manufac] ACME Lighting\n" +
	"  [LUMCAT]   DL-100  \n" +
	"[MORE] continued\n" +
	"[] empty\n" +
	"not a keyword\n" +
	"TILT=NONE\n"

func TestKeywords(t *testing.T) {
	want := []Keyword{
		{Name: "TEST", Value: "12345"},
		{Name: "MANUFAC", Value: "ACME Lighting"},
		{Name: "LUMCAT", Value: "DL-100"},
		{Name: "MORE", Value: "continued"},
	}
	if diff := cmp.Diff(want, Keywords(keywordHeader)); diff != "" {
		t.Errorf("Keywords mismatch (-want +got):\n%s", diff)
	}
}

func TestKeywordLookup(t *testing.T) {
	d := &LightData{ExtraData: keywordHeader}

	v, ok := d.Keyword("Manufac")
	if !ok || v != "ACME Lighting" {
		t.Errorf("Keyword(Manufac) = %q, %v", v, ok)
	}
	if _, ok := d.Keyword("LAMP"); ok {
		t.Error("Found a keyword that is not in the header")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{keywordHeader, "IESNA:LM-63-2002"},
		{"IESNA91\n[TEST] x\n", "IESNA91"},
		{"IESNA:LM-63-1995 extra\n", "IESNA:LM-63-1995"},
		{"[TEST] old file\nTILT=NONE\n", Format1986},
		{"", Format1986},
	}

	for _, tt := range tests {
		if got := Format(tt.header); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
