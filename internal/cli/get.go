package cli

import (
	"fmt"

	"github.com/Fuabioo/webfetch/internal/core"
	"github.com/spf13/cobra"
)

var flagSSL bool

var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Fetch a URL and print its content",
	Long: `Fetches a URL and prints the response body to stdout.

This is the CLI twin of the fetch MCP tool; --ssl selects the explicitly
configured TLS client the fetch_web_content_via_ssl tool uses.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().BoolVar(&flagSSL, "ssl", false, "Use the explicitly configured TLS client")
}

func runGet(cmd *cobra.Command, args []string) error {
	url := args[0]

	cfg, err := core.LoadConfig()
	if err != nil {
		return err
	}

	fetcher := core.NewFetcher(cfg)
	if flagSSL {
		fetcher = core.NewSecureFetcher(cfg)
	}

	body, err := fetcher.Fetch(cmd.Context(), url)
	if err != nil {
		return err
	}

	if flagJSON {
		output := map[string]interface{}{
			"url":          url,
			"length_bytes": len(body),
			"content":      body,
		}
		return outputJSON(output)
	}

	fmt.Print(body)
	return nil
}
