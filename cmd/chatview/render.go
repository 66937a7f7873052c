package main

import (
	"chat-view/domain/textcomponent"
	"chat-view/sink"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

func newRenderCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Interpret a text component JSON and print it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.Disable()
			}
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			data, err := readSource(cmd.InOrStdin(), source)
			if err != nil {
				return err
			}
			segments := textcomponent.InterpretJSON(data, nil)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sink.RenderSegments(segments))
			return err
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Print without ANSI colors")
	return cmd
}

func readSource(stdin io.Reader, source string) ([]byte, error) {
	if source == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return data, nil
}
