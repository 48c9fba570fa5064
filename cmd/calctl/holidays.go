package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Nixie-Tech-LLC/nakai/internal/calendar"
	"github.com/Nixie-Tech-LLC/nakai/internal/catalog"
	"github.com/Nixie-Tech-LLC/nakai/internal/db"
	"github.com/Nixie-Tech-LLC/nakai/internal/model"
)

var dryRun bool

// HolidaysCmd groups the holiday maintenance commands.
var HolidaysCmd = &cobra.Command{
	Use:          "holidays",
	Short:        "functions for handling holiday lists",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// ImportCmd replaces the holidays table with the contents of a CSV or JSON file.
var ImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "import holidays from a .csv or .json file into the database",
	Long: `Reads holidays from <file> and replaces the holidays table with them.
	CSV files need the header name,start_date,date_range,type.
	Malformed records are reported and skipped; the rest keep their order.
	With --dry-run nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recs, err := readHolidayFile(args[0])
		if err != nil {
			return err
		}

		_, bad := calendar.ParseHolidays(recs)
		skip := make(map[int]bool, len(bad))
		for _, e := range bad {
			log.Warn().Int("index", e.Index).Str("holiday", e.Name).Err(e.Err).Msg("skipping malformed holiday")
			skip[e.Index] = true
		}
		valid := make([]model.HolidayRecord, 0, len(recs))
		for i, rec := range recs {
			if !skip[i] {
				valid = append(valid, rec)
			}
		}

		out := cmd.OutOrStdout()
		if dryRun {
			fmt.Fprintf(out, "%d holidays valid, %d skipped (dry run)\n", len(valid), len(bad))
			return nil
		}

		if err := openDB(cmd.Context()); err != nil {
			return err
		}
		if err := db.NewStore(db.DB).ReplaceHolidays(cmd.Context(), valid); err != nil {
			return err
		}
		fmt.Fprintf(out, "imported %d holidays, %d skipped\n", len(valid), len(bad))
		return nil
	},
}

func readHolidayFile(path string) ([]model.HolidayRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return catalog.ReadHolidaysCSV(f)
	case ".json":
		return catalog.ReadHolidaysJSON(f)
	default:
		return nil, fmt.Errorf("unsupported holiday file %q", path)
	}
}

func init() {
	ImportCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "validate only")
	HolidaysCmd.AddCommand(ImportCmd)
}
