package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/mosaic/screen"
)

func (c *CLI) screenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "screen",
		Short: "Print the primary display resolution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := c.Screen
			if p == nil {
				p = screen.Primary()
			}
			w, h, err := p.Resolution()
			if errors.Is(err, screen.ErrNoDisplay) {
				printWarning(cmd.OutOrStdout(), "no display available")
				return err
			}
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "%s %s",
				StyleDim.Render("primary display"),
				StyleNumber.Render(fmt.Sprintf("%dx%d", w, h)))
			return nil
		},
	}
}
