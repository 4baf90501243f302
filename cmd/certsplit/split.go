package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/certsplit/internal/namelist"
	"github.com/pdiddy/certsplit/internal/pattern"
	"github.com/pdiddy/certsplit/internal/pdfsplit"
	"github.com/pdiddy/certsplit/internal/report"
	"github.com/pdiddy/certsplit/internal/splitrun"
	"github.com/pdiddy/certsplit/pkg/types"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split certificate PDFs into per-recipient files",
	Long: `Split processes every PDF in the input directory (or one file via --file),
writing each page into the output directory under the resolved recipient
name. When a name list is given with --list, its rows override text
matching in page order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		cfg := configFromFlags(cmd)

		ps, err := pattern.Load(cfg.PatternsFile, os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v, using built-in patterns\n", err)
			ps = pattern.Default()
		}

		var names []string
		if cfg.NameListPath != "" {
			names, err = namelist.Load(cfg.NameListPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v, falling back to pattern matching\n", err)
				names = nil
			} else {
				fmt.Fprintf(w, "loaded %d name(s) from %s\n", len(names), cfg.NameListPath)
			}
		}

		splitter := pdfsplit.New()

		var results []*types.RunResult
		file, _ := cmd.Flags().GetString("file")
		if file != "" {
			res, err := splitrun.SplitFile(splitter, cfg, file, names, ps, w)
			if err != nil {
				return err
			}
			results = append(results, res)
		} else {
			results, err = splitrun.ProcessDir(splitter, cfg, names, ps, w)
			if err != nil {
				return err
			}
		}

		recordResults(cfg, results)

		failed := 0
		for _, r := range results {
			failed += r.Failed()
		}
		if failed > 0 {
			return fmt.Errorf("%d page(s) failed", failed)
		}
		return nil
	},
}

func init() {
	splitCmd.Flags().StringP("file", "f", "", "split a specific PDF instead of scanning the input directory")
	splitCmd.Flags().StringP("list", "l", "", "spreadsheet (.xlsx or .csv) with one recipient name per row, in page order")
	splitCmd.Flags().String("input", "entrada", "directory scanned for input PDFs")
	splitCmd.Flags().StringP("output", "o", "salida", "directory the split certificates are written to")
	splitCmd.Flags().String("prefix", "", "prefix added to every output filename")
	splitCmd.Flags().String("suffix", "", "suffix added to every output filename, before .pdf")
	splitCmd.Flags().String("patterns", "patrones.txt", "pattern file with one regex per line")
	splitCmd.Flags().String("report-dir", "report", "directory for the run-history database and YAML export")
	splitCmd.Flags().Bool("no-clean", false, "keep existing PDFs in the output directory")
	splitCmd.Flags().Bool("keep-input", false, "keep input PDFs after they were fully processed")

	rootCmd.AddCommand(splitCmd)
}

// configFromFlags builds the run configuration, with flag values taking
// precedence over certsplit.yaml settings. The config keys mirror the
// yaml tags on types.Config; the --no-clean and --keep-input flags are
// the inverted CLI spellings of clean_output and remove_input.
func configFromFlags(cmd *cobra.Command) types.Config {
	cfg := types.Config{
		PatternsFile: stringSetting(cmd, "patterns", "patterns_file"),
		InputDir:     stringSetting(cmd, "input", "input_dir"),
		OutputDir:    stringSetting(cmd, "output", "output_dir"),
		NameListPath: stringSetting(cmd, "list", "name_list"),
		Prefix:       stringSetting(cmd, "prefix", "prefix"),
		Suffix:       stringSetting(cmd, "suffix", "suffix"),
		ReportDir:    stringSetting(cmd, "report-dir", "report_dir"),
	}

	noClean, _ := cmd.Flags().GetBool("no-clean")
	cfg.CleanOutput = !noClean
	if !cmd.Flags().Changed("no-clean") && viper.IsSet("clean_output") {
		cfg.CleanOutput = viper.GetBool("clean_output")
	}

	keepInput, _ := cmd.Flags().GetBool("keep-input")
	cfg.RemoveInput = !keepInput
	if !cmd.Flags().Changed("keep-input") && viper.IsSet("remove_input") {
		cfg.RemoveInput = viper.GetBool("remove_input")
	}

	return cfg
}

func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

// recordResults appends the run outcomes to the report store. Report
// failures are warnings only; the split itself already succeeded.
func recordResults(cfg types.Config, results []*types.RunResult) {
	if len(results) == 0 {
		return
	}

	store, err := report.NewStore(cfg.ReportDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: run report unavailable: %v\n", err)
		return
	}
	defer store.Close()

	ctx := context.Background()
	for _, r := range results {
		if err := store.Record(ctx, r); err != nil {
			fmt.Fprintf(os.Stderr, "warning: recording run for %s: %v\n", r.SourcePDF, err)
			return
		}
	}
	if err := store.ExportYAML(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: writing last-run.yaml: %v\n", err)
	}
}
