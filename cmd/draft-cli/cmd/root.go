package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

var BaseUrl string

var client *resty.Client

var rootCmd = &cobra.Command{
	Use:   "draft-cli",
	Short: "draft-cli is a CLI interface for the draft assistant server.",
}

func Execute() {
	client = resty.New().
		SetBaseURL(BaseUrl).
		SetHeader("Content-Type", "application/json")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func get(ctx context.Context, path string, out any) {
	res, err := client.R().
		SetContext(ctx).
		SetResult(out).
		Get(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	if res.StatusCode() != http.StatusOK {
		fmt.Fprintf(os.Stderr, "%s: unexpected status %d\n", path, res.StatusCode())
		os.Exit(1)
	}
}
