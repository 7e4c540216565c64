package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceIES/pkg/ies"
	"github.com/OpenTraceLab/OpenTraceIES/pkg/lightshape"
	"golang.org/x/exp/slices"
)

func testdataDir(t *testing.T) string {
	t.Helper()
	testdata := "../../../testdata"
	if _, err := os.Stat(testdata); os.IsNotExist(err) {
		t.Skip("testdata directory not found")
	}
	return testdata
}

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Reset flags to prevent accumulation between tests
	verbose = false
	parseJSON, showKeywords, showCandela = false, false, false
	scaleFactor, scaleOutput = 1, ""
	shapeWebScale, shapeFormat, shapeOutput = 0, "", ""
	infoJSON = false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	if !slices.Contains(args, "--config") {
		empty := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(empty, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		args = append(args, "--config", empty)
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCommandsE2E(t *testing.T) {
	testdata := testdataDir(t)
	downlight := filepath.Join(testdata, "downlight.ies")
	quadrant := filepath.Join(testdata, "quadrant.ies")

	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name: "parse",
			args: []string{"parse", downlight},
			wantContain: []string{
				"IES File Information",
				"IESNA:LM-63-2002",
				"absolute photometry",
				"Luminous Opening (meters):",
				"Symmetry:          axial",
				"Max Candela:       1000",
				"Parsing completed successfully!",
			},
		},
		{
			name: "parse keywords and candela",
			args: []string{"parse", "-k", "-c", quadrant},
			wantContain: []string{
				"IESNA91",
				"Keywords: 2 total",
				"[MANUFAC]",
				"Candela Values:",
				"quadrant",
			},
		},
		{
			name:        "parse 1986 file",
			args:        []string{"parse", filepath.Join(testdata, "wallwasher.ies")},
			wantContain: []string{ies.Format1986, "plane"},
		},
		{
			name:    "parse tilted file",
			args:    []string{"parse", filepath.Join(testdata, "tilted.ies")},
			wantErr: true,
		},
		{
			name:    "parse missing file",
			args:    []string{"parse", filepath.Join(testdata, "missing.ies")},
			wantErr: true,
		},
		{
			name: "shape summary",
			args: []string{"shape", quadrant},
			wantContain: []string{
				"Light Shape:",
				"Symmetry:   quadrant",
				"Polylines:  12",
				"Points:     36",
			},
		},
		{
			name:        "shape sexp",
			args:        []string{"shape", "--format", "sexp", "--web-scale", "1", downlight},
			wantContain: []string{"(web", "(polyline (pt 0 0 1000)"},
		},
		{
			name:    "shape unknown format",
			args:    []string{"shape", "--format", "svg", downlight},
			wantErr: true,
		},
		{
			name:    "missing explicit config",
			args:    []string{"parse", downlight, "--config", filepath.Join(testdata, "missing.yaml")},
			wantErr: true,
		},
		{
			name:    "shape output dir missing",
			args:    []string{"shape", "-o", filepath.Join(testdata, "missing", "shape.txt"), downlight},
			wantErr: true,
		},
		{
			name:        "scale to stdout",
			args:        []string{"scale", "--factor", "2", "-o", "-", downlight},
			wantContain: []string{"TILT=NONE\n1 -1 1 5 1 1 2 0.2 0.2 0\n"},
		},
		{
			name:    "scale bad factor",
			args:    []string{"scale", "--factor", "0", downlight},
			wantErr: true,
		},
		{
			name: "info",
			args: []string{"info", testdata},
			wantContain: []string{
				"Found 3 IES file(s)",
				"downlight.ies",
				"quadrant.ies",
				"wallwasher.ies",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := run(t, tt.args...)

			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v\nOutput: %s", err, output)
			}

			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing %q\nOutput:\n%s", want, output)
				}
			}
		})
	}
}

func TestParseJSONE2E(t *testing.T) {
	testdata := testdataDir(t)

	output, err := run(t, "parse", "--json", filepath.Join(testdata, "quadrant.ies"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var info LightInfo
	if err := json.Unmarshal([]byte(output), &info); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, output)
	}
	if info.Lamps != 2 || info.Lumens != 1200 || info.Symmetry != "quadrant" || info.Unit != "feet" {
		t.Errorf("Unexpected info: %+v", info)
	}
	if len(info.Keywords) != 2 {
		t.Errorf("Expected 2 keywords, got %d", len(info.Keywords))
	}
}

func TestScaleWritesFileE2E(t *testing.T) {
	testdata := testdataDir(t)
	output := filepath.Join(t.TempDir(), "big.ies")

	out, err := run(t, "scale", "-f", "0.5", "-o", output, filepath.Join(testdata, "quadrant.ies"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out, "opening 0.25 x 0.125 x 0.0625") {
		t.Errorf("Unexpected output: %s", out)
	}

	data := ies.NewLightData()
	if err := ies.NewProcessor().Parse(data, output); err != nil {
		t.Fatalf("Scaled file does not parse: %v", err)
	}
	if data.Width != 0.25 || data.CountLamps != 2 || data.MaxCandela() != 120 {
		t.Errorf("Unexpected scaled data: %+v", data)
	}
}

func TestShapeJSONE2E(t *testing.T) {
	testdata := testdataDir(t)
	output := filepath.Join(t.TempDir(), "shape.json")

	if _, err := run(t, "shape", "-f", "json", "-o", output, filepath.Join(testdata, "wallwasher.ies")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	raw, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	var shape struct {
		Polylines [][][3]float32 `json:"polylines"`
	}
	if err := json.Unmarshal(raw, &shape); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	// plane symmetry doubles the three slices
	if len(shape.Polylines) != 6 {
		t.Errorf("Expected 6 polylines, got %d", len(shape.Polylines))
	}
}

func TestShapeSexpFileE2E(t *testing.T) {
	testdata := testdataDir(t)
	output := filepath.Join(t.TempDir(), "shape.sexp")

	if _, err := run(t, "shape", "-f", "sexp", "-o", output, filepath.Join(testdata, "quadrant.ies")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	raw, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), "(web (polyline") || !strings.HasSuffix(string(raw), ")\n") {
		t.Errorf("Unexpected file content:\n%s", raw)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteShapeReportsWriteErrors(t *testing.T) {
	data := ies.NewLightData()
	plines := lightshape.Polylines{{{0, 0, 1}, {1, 0, 0}}}

	for _, format := range []string{"json", "sexp"} {
		t.Run(format, func(t *testing.T) {
			if err := writeShape(failingWriter{}, format, "x.ies", data, plines, 1); err == nil {
				t.Error("Expected the write error to be returned")
			}
		})
	}
}
