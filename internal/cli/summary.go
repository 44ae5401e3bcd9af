package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/everforgeworks/galaxies-exolog/internal/trip"
)

// NewSummaryCommand creates the summary command
func NewSummaryCommand() *cobra.Command {
	var showSystem bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the value of the current trip",
		Long: `Replays the journals once and prints what the current trip is worth.
With --system, also lists the bodies of the system the player is in.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			engine, _, _, err := a.replay()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			snapshot := engine.Snapshot()
			printSummary(out, snapshot.Summary)
			if showSystem {
				fmt.Fprintln(out)
				printSystem(out, snapshot.Current)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSystem, "system", false, "List the bodies of the current system")
	return cmd
}

func credits(v int64) string {
	return humanize.Comma(v) + " cr"
}

func printSummary(out io.Writer, s trip.Summary) {
	fmt.Fprintf(out, "Trip %s (started %s)\n", s.ID, humanize.Time(s.StartedAt))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Bodies scanned\t%d\t%s\n", s.BodiesScanned, credits(s.ScannedValue))
	fmt.Fprintf(w, "Bodies mapped\t%d\t%s\n", s.BodiesMapped, credits(s.MappedValue))
	fmt.Fprintf(w, "Bonuses\t\t%s\n", credits(s.BonusValue))
	fmt.Fprintf(w, "Total\t\t%s\n", credits(s.TotalValue))
	if s.BioMax > 0 {
		fmt.Fprintf(w, "Biological\t\t%s - %s\n", credits(s.BioMin), credits(s.BioMax))
	}
	w.Flush()
}

func printSystem(out io.Writer, s trip.SystemView) {
	fmt.Fprintf(out, "%s: %d of %d bodies known\n", s.Name, s.Known, s.BodyCount)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tCLASS\tVALUE\tIF MAPPED\tBIO")
	for _, b := range s.Bodies {
		bio := "-"
		if b.Bio.Max > 0 {
			bio = fmt.Sprintf("%s - %s", humanize.Comma(int64(b.Bio.Min)), humanize.Comma(int64(b.Bio.Max)))
		}
		class := string(b.Class)
		if b.Terraformable {
			class += " (terraformable)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			b.Name,
			class,
			humanize.Comma(int64(b.ActualTotal)),
			humanize.Comma(int64(b.EstimateTotal)),
			bio,
		)
	}
	w.Flush()
}
