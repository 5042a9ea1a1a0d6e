package cmd

import (
	"fmt"
	"os"

	"draftassist-backend/services/optimizer"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(solutionsCmd)
}

var solutionsCmd = &cobra.Command{
	Use:   "solutions",
	Short: "Prints the lineups from the most recent solve.",
	Run: func(cmd *cobra.Command, args []string) {
		var res struct {
			Solutions []optimizer.Solution `json:"solutions"`
			Budget    int                  `json:"budget"`
			K         int                  `json:"k"`
		}
		get(cmd.Context(), "/solutions", &res)

		fmt.Printf("budget $%d, top %d lineups\n", res.Budget, res.K)
		renderSolutions(res.Solutions)
	},
}

func renderSolutions(solutions []optimizer.Solution) {
	if len(solutions) == 0 {
		fmt.Println("No lineups solved yet.")
		return
	}

	for _, s := range solutions {
		fmt.Printf("=== Lineup #%d | Cost $%d | Proj %.2f ===\n", s.Rank, s.TotalCost, s.TotalPoints)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Slot", "Name", "Pos", "Price", "Projection", "PP$"})

		for _, row := range s.Table {
			t.AppendRow(table.Row{
				row.Slot, row.Name, row.Pos, row.Price,
				row.Projection, row.PointsPerDollar,
			})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	}
}
