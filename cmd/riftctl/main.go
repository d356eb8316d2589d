// riftctl is the admin client for riftd: a cobra command tree covering
// topic and subscription CRUD plus interactive publish/subscribe/ack/nack.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var serverAddr string

var rootCmd = &cobra.Command{
	Use:   "riftctl",
	Short: "riftctl is the admin and pub/sub client for riftd",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", "localhost:9090", "riftd gRPC listen address")
	rootCmd.AddCommand(topicCmd, subscriptionCmd, pubCmd, subCmd, ackCmd, nackCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
