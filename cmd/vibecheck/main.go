// vibecheck is the developer-side CLI. Its connect command exposes a local
// application to the server through an outbound websocket tunnel, so robust
// scans can probe apps that are not publicly reachable.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vibecheck/vibecheck/pkg/client"
	"github.com/vibecheck/vibecheck/pkg/version"
)

func main() {
	root := &cobra.Command{
		Use:           "vibecheck",
		Short:         "VibeCheck security assessment CLI",
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(connectCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func connectCommand() *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "connect <port>",
		Short: "Open a tunnel from the server to a local application port",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := strconv.Atoi(args[0])
			if err != nil || port < 1 || port > 65535 {
				return fmt.Errorf("invalid port %q", args[0])
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Connecting to %s...\n", serverURL)
			c := client.New(port, serverURL, cmd.OutOrStdout())
			return c.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", client.DefaultServerURL, "tunnel websocket URL")
	return cmd
}
