package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nixie-Tech-LLC/nakai/internal/calendar"
	"github.com/Nixie-Tech-LLC/nakai/internal/view"
)

var dayDate string

// DayCmd prints the day panel (holidays, nakai, prayer times) as JSON.
var DayCmd = &cobra.Command{
	Use:   "day",
	Short: "print holidays, nakai and prayer times for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now().In(cfg.Location)
		date := calendar.DateOf(now)
		if dayDate != "" {
			var err error
			if date, err = calendar.ParseDate(dayDate); err != nil {
				return err
			}
		}

		cat, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(view.BuildDay(cat, date, view.Options{Now: now}))
	},
}

func init() {
	DayCmd.Flags().StringVarP(&dayDate, "date", "d", "", "date as YYYY-MM-DD (defaults to today)")
}
