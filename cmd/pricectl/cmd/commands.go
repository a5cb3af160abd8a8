package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hotel_pricing/internal/catalog"
	"hotel_pricing/internal/domain"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print the recommended price, reference set and insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, sc, err := service()
		if err != nil {
			return err
		}
		rec, err := svc.Recommend(cmd.Context(), sc)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), rec, func(w *tabwriter.Writer) {
			fmt.Fprintf(w, "Recommended price\t%.2f\n", rec.RecommendedPrice)
			fmt.Fprintf(w, "Weighted market average\t%.2f\n", rec.WeightedMarketAverage)
			fmt.Fprintf(w, "Raw price\t%.2f\n", rec.RawPrice)
			fmt.Fprintf(w, "Occupancy adjustment\t%.4f\n", rec.OccupancyAdjustment)
			fmt.Fprintf(w, "Clamp\t%s\n\n", rec.Clamp)

			fmt.Fprintln(w, "HOTEL\tCATEGORY\tADR\tOCC\tSCORE\tDIST(m)\tSHARE")
			for _, h := range rec.ReferenceHotels {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%.0f%%\t%.1f\t%.0f\t%.1f%%\n",
					h.Name, h.Category, h.AverageDailyRate, h.OccupancyRate*100,
					h.ReviewScore, h.DistanceMeters, h.Share*100)
			}
			fmt.Fprintln(w)
			for _, in := range rec.Insights {
				fmt.Fprintf(w, "[%s]\t%s\t%s\n", in.Impact, in.Label, in.Detail)
			}
		})
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Project the recommended price across occupancy targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, sc, err := service()
		if err != nil {
			return err
		}
		pts, err := svc.Projection(cmd.Context(), sc)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), pts, func(w *tabwriter.Writer) {
			fmt.Fprintln(w, "OCCUPANCY\tPRICE\tRAW\tVS MARKET")
			for _, p := range pts {
				fmt.Fprintf(w, "%.0f%%\t%.2f\t%.2f\t%+.2f\n", p.Occupancy*100, p.Price, p.RawPrice, p.Adjustment)
			}
		})
	},
}

var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Aggregate the reference set by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, sc, err := service()
		if err != nil {
			return err
		}
		segs, err := svc.Segments(cmd.Context(), sc)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), segs, func(w *tabwriter.Writer) {
			fmt.Fprintln(w, "CATEGORY\tHOTELS\tAVG ADR\tAVG OCC")
			for _, s := range segs {
				fmt.Fprintf(w, "%s\t%d\t%.2f\t%.0f%%\n", s.Category, s.Count, s.AverageRate, s.AverageOccupancy*100)
			}
		})
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the selected catalog as a loadable document",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), catalog.ToFile(cat), func(w *tabwriter.Writer) {
			fmt.Fprintf(w, "Version\t%s\n\n", cat.Version)
			fmt.Fprintln(w, "ROLE\tID\tNAME\tCATEGORY\tADR")
			row := func(role string, h domain.Hotel) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n", role, h.ID, h.Name, h.Category, h.AverageDailyRate)
			}
			row("target", cat.Target)
			for _, h := range cat.Competitors {
				row("competitor", h)
			}
		})
	},
}

// render prints v as indented JSON or hands a tabwriter to table.
func render(out io.Writer, v any, table func(w *tabwriter.Writer)) error {
	if viper.GetString("output") == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	table(w)
	return w.Flush()
}
