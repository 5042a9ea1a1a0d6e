package cmd

import (
	"fmt"

	"draftassist-backend/services/resolver"
	"draftassist-backend/services/roster"

	"github.com/spf13/cobra"
)

func init() {
	resolveCmd.AddCommand(resolveTryCmd)
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Name resolution against the tracked player pool.",
}

var resolveTryCmd = &cobra.Command{
	Use:   "try <name>",
	Short: "Shows how a scraped name resolves, strictly and loosely.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var res struct {
			Players []roster.Player `json:"players"`
		}
		get(cmd.Context(), "/players", &res)

		names := make([]string, len(res.Players))
		for i, p := range res.Players {
			names[i] = p.Name
		}

		query := args[0]
		if i, ok := resolver.BuildIndex(names).ResolveStrict(query); ok {
			fmt.Printf("strict: %s\n", names[i])
		} else {
			fmt.Println("strict: no match")
		}
		if i, ok := resolver.ResolveLoose(names, query); ok {
			fmt.Printf("loose:  %s\n", names[i])
		} else {
			fmt.Println("loose:  no match")
		}
		if closest, score := resolver.Closest(names, query); closest != "" {
			fmt.Printf("closest: %s (%.3f)\n", closest, score)
		}
	},
}
