package cli

import (
	"fmt"
	"os"

	"github.com/Fuabioo/webfetch/internal/mcp"
	"github.com/spf13/cobra"
)

var (
	flagTransport string
	flagPort      int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Starts the Model Context Protocol (MCP) server.

With the default stdio transport the process's standard input and output
carry the protocol, so nothing else may be printed on stdout; MCP clients
(Claude Desktop, etc.) launch this command directly. The sse transport
instead listens on loopback and serves GET /sse plus POST /messages/.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagTransport, "transport", "stdio", "Transport to serve on: stdio or sse")
	serveCmd.Flags().IntVar(&flagPort, "port", 0, "Port to listen on for sse (default 8000)")
}

func runServe(cmd *cobra.Command, args []string) error {
	switch flagTransport {
	case "stdio":
		if isTerminal(os.Stdin) && !flagQuiet {
			fmt.Fprintln(os.Stderr, "webfetch: serving MCP on stdio; this command is meant to be launched by an MCP client")
		}
		return mcp.Serve()
	case "sse":
		return mcp.ServeSSE(flagPort)
	default:
		return fmt.Errorf("unknown transport %q (expected stdio or sse)", flagTransport)
	}
}
