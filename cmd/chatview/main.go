package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func NewChatViewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "chatview",
		Short:         "Follow a game server chat from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newWatchCommand(),
		newRenderCommand(),
		newOfflineCommand(),
	)
	return cmd
}

func main() {
	if err := NewChatViewCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
