package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/OpenTraceLab/OpenTraceIES/pkg/ies"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info <dir>",
	Short: "Summarize every IES file in a directory",
	Long: `Recursively load all .ies files below a directory and print one line per
file. Files that fail to parse are skipped (use -v to see why).

Examples:
  ies info lights/
  ies info -v lights/
  ies info --json lights/`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVar(&infoJSON, "json", false,
		"output as JSON (for programmatic access)")
}

func runInfo(cmd *cobra.Command, args []string) error {
	dir := args[0]
	out := cmd.OutOrStdout()

	lib := ies.NewLibrary(logger)
	if err := lib.LoadDir(dir); err != nil {
		return fmt.Errorf("failed to load %s: %w", dir, err)
	}
	logger.Debug("library loaded", zap.String("dir", dir), zap.Int("files", lib.Len()))

	names := lib.Names()
	if infoJSON {
		infos := make([]LightInfo, 0, len(names))
		for _, name := range names {
			data, err := lib.Lookup(name)
			if err != nil {
				return err
			}
			infos = append(infos, newLightInfo(name, data))
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	fmt.Fprintf(out, "Found %d IES file(s) in %s\n\n", len(names), dir)
	if len(names) == 0 {
		return nil
	}

	fmt.Fprintf(out, "  %-30s %-18s %-10s %6s %6s %12s\n",
		"File", "Format", "Symmetry", "V", "H", "Max cd")
	for _, name := range names {
		data, err := lib.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-30s %-18s %-10s %6d %6d %12g\n",
			name, data.Format(), data.Symmetry(),
			data.CountVerticalAngles, data.CountHorizontalAngles, data.MaxCandela())
	}
	return nil
}
