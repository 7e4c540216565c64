package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/OpenTraceIES/pkg/ies"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	scaleFactor float64
	scaleOutput string
)

var scaleCmd = &cobra.Command{
	Use:   "scale <ies-file>",
	Short: "Rescale the luminous opening of an IES file",
	Long: `Multiply the width, length and height of the luminous opening by a factor
and write the result as a new IES file. Factors within 1% of 1 leave the
file unchanged.

The output defaults to the input name with the configured suffix
(scale.output_suffix, "_scaled" by default). Use "-o -" to write to stdout.

Examples:
  ies scale --factor 0.3048 downlight.ies
  ies scale --factor 2 -o big.ies downlight.ies
  ies scale --factor 2 -o - downlight.ies`,
	Args: cobra.ExactArgs(1),
	RunE: runScale,
}

func init() {
	rootCmd.AddCommand(scaleCmd)

	scaleCmd.Flags().Float64VarP(&scaleFactor, "factor", "f", 1,
		"scale factor for the luminous opening")
	scaleCmd.Flags().StringVarP(&scaleOutput, "output", "o", "",
		"output file (\"-\" for stdout)")
}

func runScale(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if scaleFactor <= 0 {
		return fmt.Errorf("--factor must be positive, got %g", scaleFactor)
	}

	data, err := parseFile(filename)
	if err != nil {
		return err
	}

	p := ies.NewProcessor()
	if err := p.Update(data, ies.UpdateRequest{Scale: scaleFactor}); err != nil {
		return fmt.Errorf("failed to update: %w", err)
	}
	text := p.ToString(data)

	output := scaleOutput
	if output == "" {
		ext := filepath.Ext(filename)
		output = strings.TrimSuffix(filename, ext) + cfg.Scale.OutputSuffix + ext
	}

	if output == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	}

	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	logger.Debug("scaled IES file written",
		zap.String("input", filename),
		zap.String("output", output),
		zap.Float64("factor", scaleFactor))

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (opening %g x %g x %g)\n",
		output, data.Width, data.Length, data.Height)
	return nil
}
