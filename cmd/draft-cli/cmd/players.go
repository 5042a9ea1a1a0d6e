package cmd

import (
	"os"

	"draftassist-backend/services/roster"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playersCmd)
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Prints the tracked player pool.",
	Run: func(cmd *cobra.Command, args []string) {
		var res struct {
			Players []roster.Player `json:"players"`
		}
		get(cmd.Context(), "/players", &res)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Name", "Pos", "Price", "Projection", "Anchor", "Exclude"})

		for _, p := range res.Players {
			t.AppendRow(table.Row{p.Name, p.Pos, p.Price, p.Projection, p.Anchor, p.Exclude})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
