package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/OpenTraceLab/OpenTraceIES/pkg/ies"
	"github.com/OpenTraceLab/OpenTraceIES/pkg/lightshape"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	shapeWebScale float32
	shapeFormat   string
	shapeOutput   string
)

var shapeCmd = &cobra.Command{
	Use:   "shape <ies-file>",
	Short: "Generate the light shape polylines of an IES file",
	Long: `Convert the photometric web of an IES file to 3D polylines outlining the
light distribution. Symmetric webs are mirrored to a full turn.

Formats:
  summary   polyline and point counts with the bounding box (default)
  json      {"polylines": [[[x, y, z], ...], ...]}
  sexp      (web (polyline (pt x y z) ...) ...)

Without --web-scale the web is scaled so the brightest value has length 1.

Examples:
  ies shape downlight.ies
  ies shape --format json -o downlight.json downlight.ies
  ies shape --web-scale 0.001 --format sexp downlight.ies`,
	Args: cobra.ExactArgs(1),
	RunE: runShape,
}

func init() {
	rootCmd.AddCommand(shapeCmd)

	shapeCmd.Flags().Float32VarP(&shapeWebScale, "web-scale", "s", 0,
		"scale applied to every point (default from config, else 1/max candela)")
	shapeCmd.Flags().StringVarP(&shapeFormat, "format", "f", "",
		"output format: summary, json or sexp (default from config)")
	shapeCmd.Flags().StringVarP(&shapeOutput, "output", "o", "",
		"output file (default stdout)")
}

func runShape(cmd *cobra.Command, args []string) error {
	filename := args[0]

	data, err := parseFile(filename)
	if err != nil {
		return err
	}

	format := shapeFormat
	if format == "" {
		format = cfg.Shape.Format
	}

	params := lightshape.Params{
		Data:              data,
		MaxPointsPerPLine: cfg.Shape.MaxPointsPerPolyline,
		WebScale:          webScale(data),
	}
	logger.Debug("calculating light shape",
		zap.String("file", filename),
		zap.Stringer("symmetry", data.Symmetry()),
		zap.Float32("web_scale", params.WebScale))

	plines, err := lightshape.Calculate(params)
	if err != nil {
		return fmt.Errorf("failed to calculate light shape: %w", err)
	}

	if shapeOutput == "" || shapeOutput == "-" {
		return writeShape(cmd.OutOrStdout(), format, filename, data, plines, params.WebScale)
	}

	file, err := os.Create(shapeOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", shapeOutput, err)
	}
	if err := writeShape(file, format, filename, data, plines, params.WebScale); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", shapeOutput, err)
	}
	return nil
}

func writeShape(out io.Writer, format, filename string, data *ies.LightData, plines lightshape.Polylines, scale float32) error {
	switch format {
	case "json":
		return lightshape.WriteJSON(out, plines)
	case "sexp":
		return lightshape.WriteSexp(out, plines)
	case "summary":
		printShapeSummary(out, filename, data, plines, scale)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want summary, json or sexp)", format)
	}
}

// webScale picks the scale from the flag, then the config, then the data.
func webScale(data *ies.LightData) float32 {
	if shapeWebScale > 0 {
		return shapeWebScale
	}
	if cfg.Shape.WebScale > 0 {
		return cfg.Shape.WebScale
	}
	if maxCandela := data.MaxCandela(); maxCandela > 0 {
		return float32(1 / maxCandela)
	}
	return 1
}

func printShapeSummary(out io.Writer, filename string, data *ies.LightData, plines lightshape.Polylines, scale float32) {
	lo, hi := lightshape.Bounds(plines)

	fmt.Fprintf(out, "Light Shape: %s\n", filename)
	fmt.Fprintf(out, "  Symmetry:   %s\n", data.Symmetry())
	fmt.Fprintf(out, "  Web Scale:  %g\n", scale)
	fmt.Fprintf(out, "  Polylines:  %d\n", len(plines))
	fmt.Fprintf(out, "  Points:     %d\n", plines.PointCount())
	fmt.Fprintf(out, "  Bounds Min: (%.4f, %.4f, %.4f)\n", lo[0], lo[1], lo[2])
	fmt.Fprintf(out, "  Bounds Max: (%.4f, %.4f, %.4f)\n", hi[0], hi[1], hi[2])
}
