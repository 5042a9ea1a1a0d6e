package main

import (
	"os"

	"draftassist-backend/cmd/draft-cli/cmd"
)

func main() {
	baseUrl, ok := os.LookupEnv("DRAFT_SERVER_URL")
	if !ok {
		baseUrl = "http://localhost:8000"
	}
	cmd.BaseUrl = baseUrl

	cmd.Execute()
}
