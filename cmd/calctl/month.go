package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nixie-Tech-LLC/nakai/internal/catalog"
	"github.com/Nixie-Tech-LLC/nakai/internal/view"
)

var (
	monthYear  int
	monthValue string
)

// MonthCmd prints a month grid with its labels and holidays.
var MonthCmd = &cobra.Command{
	Use:   "month",
	Short: "print the calendar grid for a month",
	RunE: func(cmd *cobra.Command, args []string) error {
		month, err := catalog.ParseMonth(monthValue)
		if err != nil {
			return err
		}
		year := monthYear
		if year == 0 {
			year = cfg.SeasonYear
		}

		cat, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}
		v, err := view.BuildMonth(cat, year, month, time.Time{}, view.Options{Now: time.Now().In(cfg.Location)})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %d  |  %s  |  %s\n", v.MonthName, v.Year, v.HijriLabel, v.DhivehiLabel)
		fmt.Fprintln(out, " Sun Mon Tue Wed Thu Fri Sat")
		for _, week := range v.Weeks {
			var b strings.Builder
			for _, cell := range week {
				switch {
				case !cell.InCurrentMonth:
					b.WriteString("   .")
				case cell.IsToday:
					fmt.Fprintf(&b, " [%2d", cell.Day)
				case cell.HolidayType != "":
					fmt.Fprintf(&b, " %2d*", cell.Day)
				default:
					fmt.Fprintf(&b, "  %2d", cell.Day)
				}
			}
			fmt.Fprintln(out, b.String())
		}
		fmt.Fprintf(out, "working days: %d\n", v.WorkingDays)
		for _, h := range v.Holidays {
			fmt.Fprintf(out, "  %s  %-14s %s\n", h.DateLabel, h.Type, h.Name)
		}
		return nil
	},
}

func init() {
	MonthCmd.Flags().IntVarP(&monthYear, "year", "y", 0, "year (defaults to SEASON_YEAR)")
	MonthCmd.Flags().StringVarP(&monthValue, "month", "m", "jan", "month slug or number")
}
