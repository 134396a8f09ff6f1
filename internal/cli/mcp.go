package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/vignes/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(global *GlobalOptions) *cobra.Command {
	var (
		transport string
		port      int
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server",
		Long:  `Starts a Model Context Protocol server exposing the estimate_diffusivity tool and the model constants resource.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(*global)
			if err != nil {
				return err
			}

			mcpServer := mcp.NewServer(app.Estimator)

			switch transport {
			case "stdio":
				return mcpServer.ServeStdio()
			case "sse":
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return mcpServer.ServeSSE(ctx, port)
			default:
				return fmt.Errorf("unknown transport: %s (use stdio or sse)", transport)
			}
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport type (stdio, sse)")
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port for SSE transport")
	return cmd
}
