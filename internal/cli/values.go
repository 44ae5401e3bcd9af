package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/everforgeworks/galaxies-exolog/internal/game"
)

// NewValuesCommand creates the values command
func NewValuesCommand() *cobra.Command {
	var (
		class         string
		terraformable bool
		mass          float64
		discovered    bool
		mapped        bool
	)

	cmd := &cobra.Command{
		Use:   "values",
		Short: "Show what a body of a given class pays",
		Long: `Values a hypothetical body with the configured tables. Without --mass
the class median mass is used.

Examples:
  exolog values --class "Water world" --terraformable
  exolog values --class "Rocky body" --mass 0.02 --discovered`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			body := &game.Body{
				Class:         game.Known(game.BodyClass(class)),
				Terraformable: terraformable,
				WasDiscovered: discovered,
				WasMapped:     mapped,
			}
			if cmd.Flags().Changed("mass") {
				body.Mass = game.Known(mass)
			}

			tables := a.galaxy.Tables()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "\tBASE\tMAPPED\tBONUSES\tTOTAL\t")
			for _, row := range []struct {
				name   string
				values game.Values
			}{
				{"scanned", tables.Appraise(body, false)},
				{"mapped", tables.Appraise(body, true)},
			} {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
					row.name,
					humanize.Commaf(row.values.Base),
					humanize.Comma(int64(row.values.Mapped)),
					humanize.Comma(int64(row.values.Bonuses)),
					humanize.Commaf(row.values.TotalValue()),
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&class, "class", string(game.ClassRocky), "Body class as journaled")
	cmd.Flags().BoolVar(&terraformable, "terraformable", false, "Body is a terraforming candidate")
	cmd.Flags().Float64Var(&mass, "mass", 0, "Mass in Earth masses")
	cmd.Flags().BoolVar(&discovered, "discovered", false, "Somebody discovered the body before")
	cmd.Flags().BoolVar(&mapped, "mapped", false, "Somebody mapped the body before")
	return cmd
}
