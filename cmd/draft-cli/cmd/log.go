package cmd

import (
	"os"

	"draftassist-backend/services/draftlog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(logCmd)
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Prints the journal of completed sales.",
	Run: func(cmd *cobra.Command, args []string) {
		var res struct {
			Sales []draftlog.Sale `json:"sales"`
		}
		get(cmd.Context(), "/log", &res)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Time", "Player", "Price", "Winner"})

		for _, s := range res.Sales {
			var price any = ""
			if s.Price != nil {
				price = *s.Price
			}
			t.AppendRow(table.Row{s.Time.Format("15:04:05"), s.Player, price, s.Winner})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
