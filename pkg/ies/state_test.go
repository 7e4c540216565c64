package ies

import (
	"math"
	"testing"
)

func TestReadFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"12.5", 12.5, true},
		{"-1", -1, true},
		{"+3", 3, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e3", 1000, true},
		{"2.5E-2", 0.025, true},
		{"12abc", 12, true},
		{"1.5.2", 1.5, true},
		{"12,5", 12, true}, // only '.' is a decimal point
		{"7e", 7, true},
		{"1e999", math.Inf(1), true},
		{"abc", 0, false},
		{"-", 0, false},
		{".", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := readFloat(tt.input)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("readFloat(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestReadInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"1", 1, true},
		{"-7", -7, true},
		{"+2", 2, true},
		{"1.0", 1, true},
		{"3x", 3, true},
		{"99999999999999999999999", maxInt, true},
		{"-99999999999999999999999", minInt, true},
		{"x3", 0, false},
		{"-", 0, false},
		{".5", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := readInt(tt.input)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("readInt(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

// The decimal separator never follows the environment.
func TestTokenReaderStates(t *testing.T) {
	tokens := []string{
		"1", "-1", "1", "2", "2", "1", "1", "0", "0", "0", // first line
		"1", "1", "0", // ballast, version, wattage
		"0", "90", // vertical
		"0", "90", // horizontal
		"1", "2", "3", "4", // candela
	}
	wantStates := []ParseState{
		ReadLumens, ReadMultiplier, ReadCountVAngles, ReadCountHAngles, ReadType,
		ReadUnit, ReadWidth, ReadLength, ReadHeight, ReadBallast,
		ReadVersion, ReadWattage, ReadVerticalAngles,
		ReadVerticalAngles, ReadHorizontalAngles,
		ReadHorizontalAngles, ReadCandelaValues,
		ReadCandelaValues, ReadCandelaValues, ReadCandelaValues, EndOfParse,
	}

	data := NewLightData()
	r := newTokenReader(data)
	if r.state != FirstParseState {
		t.Fatalf("Expected first state %s, got %s", FirstParseState, r.state)
	}
	for i, tok := range tokens {
		if !r.next(tok) {
			t.Fatalf("Token %d (%q) rejected in state %s", i, tok, r.state)
		}
		if r.state != wantStates[i] {
			t.Fatalf("After token %d (%q): state %s, want %s", i, tok, r.state, wantStates[i])
		}
	}

	if r.next("5") {
		t.Error("Reader accepted a token after END_OF_PARSE")
	}
	if !data.IsValid() {
		t.Error("Expected valid data after a full read")
	}
}

func TestTokenReaderFailureIsAbsorbing(t *testing.T) {
	r := newTokenReader(NewLightData())
	if !r.next("1") || !r.next("oops") {
		t.Fatal("Reader should consume tokens until it fails")
	}
	if r.state != StateParseFailed {
		t.Fatalf("Expected %s, got %s", StateParseFailed, r.state)
	}
	if r.next("1") {
		t.Error("Reader accepted a token after PARSE_FAILED")
	}
	if r.state != StateParseFailed {
		t.Errorf("Failed state changed to %s", r.state)
	}
}

func TestParseStateString(t *testing.T) {
	if ReadCandelaValues.String() != "READ_CANDELA_VALUES" {
		t.Errorf("Unexpected name %q", ReadCandelaValues.String())
	}
	if ParseState(99).String() != "ParseState(99)" {
		t.Errorf("Unexpected name %q", ParseState(99).String())
	}
}
