package cmd

import (
	"fmt"
	"net/http"
	"os"

	"draftassist-backend/services/optimizer"

	"github.com/spf13/cobra"
)

var optimizeBudget int
var optimizeK int

func init() {
	optimizeCmd.Flags().IntVar(&optimizeBudget, "budget", 0, "Override the auction budget.")
	optimizeCmd.Flags().IntVar(&optimizeK, "k", 0, "Override the number of lineups requested.")
	rootCmd.AddCommand(optimizeCmd)
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Forces a solver run and prints the resulting lineups.",
	Run: func(cmd *cobra.Command, args []string) {
		var res struct {
			Solutions []optimizer.Solution `json:"solutions"`
		}
		body := map[string]int{}
		if optimizeBudget > 0 {
			body["budget"] = optimizeBudget
		}
		if optimizeK > 0 {
			body["k"] = optimizeK
		}

		httpRes, err := client.R().
			SetContext(cmd.Context()).
			SetBody(body).
			SetResult(&res).
			Post("/optimize")
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		if httpRes.StatusCode() != http.StatusOK {
			fmt.Fprintf(os.Stderr, "/optimize: unexpected status %d\n", httpRes.StatusCode())
			os.Exit(1)
		}

		renderSolutions(res.Solutions)
	},
}
