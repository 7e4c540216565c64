package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/OpenTraceLab/OpenTraceIES/pkg/ies"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	parseJSON    bool
	showKeywords bool
	showCandela  bool
)

// LightInfo is the structured summary of a parsed file
type LightInfo struct {
	File             string        `json:"file"`
	Format           string        `json:"format"`
	Lamps            int           `json:"lamps"`
	Lumens           float64       `json:"lumens"`
	Multiplier       float64       `json:"multiplier"`
	PhotometricType  int           `json:"photometric_type"`
	Unit             string        `json:"unit"`
	Width            float64       `json:"width"`
	Length           float64       `json:"length"`
	Height           float64       `json:"height"`
	Wattage          float64       `json:"wattage"`
	VerticalAngles   []float64     `json:"vertical_angles"`
	HorizontalAngles []float64     `json:"horizontal_angles"`
	Symmetry         string        `json:"symmetry"`
	MaxCandela       float64       `json:"max_candela"`
	Keywords         []ies.Keyword `json:"keywords,omitempty"`
}

var parseCmd = &cobra.Command{
	Use:   "parse <ies-file>",
	Short: "Parse and display information from an IES file",
	Long: `Parse an IES file and display its photometric data: lamp and opening
parameters, angle grids, symmetry and header keywords.

Examples:
  ies parse downlight.ies
  ies parse --keywords --candela downlight.ies
  ies parse --json downlight.ies`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseJSON, "json", false,
		"output as JSON (for programmatic access)")
	parseCmd.Flags().BoolVarP(&showKeywords, "keywords", "k", false,
		"show header keywords")
	parseCmd.Flags().BoolVarP(&showCandela, "candela", "c", false,
		"show the candela table")
}

func runParse(cmd *cobra.Command, args []string) error {
	filename := args[0]
	out := cmd.OutOrStdout()

	logger.Debug("parsing IES file", zap.String("file", filename))

	data, err := parseFile(filename)
	if err != nil {
		return err
	}

	info := newLightInfo(filename, data)
	if parseJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(out, "╔════════════════════════════════════════════════════════════════╗\n")
	fmt.Fprintf(out, "║ IES File Information                                           ║\n")
	fmt.Fprintf(out, "╠════════════════════════════════════════════════════════════════╣\n")
	fmt.Fprintf(out, "║ File:   %-54s ║\n", info.File)
	fmt.Fprintf(out, "║ Format: %-54s ║\n", info.Format)
	fmt.Fprintf(out, "╚════════════════════════════════════════════════════════════════╝\n\n")

	fmt.Fprintf(out, "Lamps:\n")
	fmt.Fprintf(out, "  Count:            %d\n", info.Lamps)
	if info.Lumens == -1 {
		fmt.Fprintf(out, "  Lumens:           absolute photometry\n")
	} else {
		fmt.Fprintf(out, "  Lumens:           %g\n", info.Lumens)
	}
	fmt.Fprintf(out, "  Multiplier:       %g\n", info.Multiplier)
	fmt.Fprintf(out, "  Wattage:          %g W\n", info.Wattage)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Luminous Opening (%s):\n", info.Unit)
	fmt.Fprintf(out, "  Width:  %g\n", info.Width)
	fmt.Fprintf(out, "  Length: %g\n", info.Length)
	fmt.Fprintf(out, "  Height: %g\n", info.Height)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Photometric Web:\n")
	fmt.Fprintf(out, "  Vertical Angles:   %d (%g..%g)\n", len(data.VerticalAngles),
		first(data.VerticalAngles), last(data.VerticalAngles))
	fmt.Fprintf(out, "  Horizontal Angles: %d (%g..%g)\n", len(data.HorizontalAngles),
		first(data.HorizontalAngles), last(data.HorizontalAngles))
	fmt.Fprintf(out, "  Symmetry:          %s\n", info.Symmetry)
	fmt.Fprintf(out, "  Max Candela:       %g\n", info.MaxCandela)
	fmt.Fprintln(out)

	if showKeywords || verbose {
		fmt.Fprintf(out, "Keywords: %d total\n", len(info.Keywords))
		for _, kw := range info.Keywords {
			fmt.Fprintf(out, "  %-12s %s\n", "["+kw.Name+"]", kw.Value)
		}
		fmt.Fprintln(out)
	}

	if showCandela {
		printCandela(out, data)
	}

	fmt.Fprintln(out, "Parsing completed successfully!")
	return nil
}

// parseFile parses filename into fresh LightData.
func parseFile(filename string) (*ies.LightData, error) {
	data := ies.NewLightData()
	if err := ies.NewProcessor().Parse(data, filename); err != nil {
		logger.Debug("parse failed", zap.String("file", filename), zap.Stringer("code", ies.Code(err)))
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}
	return data, nil
}

func newLightInfo(filename string, data *ies.LightData) LightInfo {
	unit := "feet"
	if data.Unit == 2 {
		unit = "meters"
	}
	return LightInfo{
		File:             filename,
		Format:           data.Format(),
		Lamps:            data.CountLamps,
		Lumens:           data.Lumens,
		Multiplier:       data.Multiplier,
		PhotometricType:  data.PhotometricType,
		Unit:             unit,
		Width:            data.Width,
		Length:           data.Length,
		Height:           data.Height,
		Wattage:          data.Wattage,
		VerticalAngles:   data.VerticalAngles,
		HorizontalAngles: data.HorizontalAngles,
		Symmetry:         data.Symmetry().String(),
		MaxCandela:       data.MaxCandela(),
		Keywords:         data.Keywords(),
	}
}

func printCandela(out io.Writer, data *ies.LightData) {
	fmt.Fprintf(out, "Candela Values:\n")
	fmt.Fprintf(out, "  %8s", "H \\ V")
	for _, v := range data.VerticalAngles {
		fmt.Fprintf(out, " %8g", v)
	}
	fmt.Fprintln(out)

	row := len(data.VerticalAngles)
	for i, h := range data.HorizontalAngles {
		fmt.Fprintf(out, "  %8g", h)
		for _, c := range data.CandelaValues[i*row : (i+1)*row] {
			fmt.Fprintf(out, " %8g", c)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)
}

func first(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[0]
}

func last(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[len(values)-1]
}
