package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gogpu/mosaic"
)

func (c *CLI) planCommand() *cobra.Command {
	var rows, cols int

	cmd := &cobra.Command{
		Use:   "plan N",
		Short: "Print the grid used for N images",
		Example: `  mosaic plan 5
  mosaic plan 2 --rows 1 --cols 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("image count %q: %w", args[0], err)
			}
			cfg := Config{Rows: rows, Cols: cols}
			layout, err := cfg.layout()
			if err != nil {
				return err
			}
			grid, err := mosaic.PlanGrid(n, layout)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("Planned grid", "images", n, "layout", layout.String())
			printPlan(cmd.OutOrStdout(), grid)
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "explicit grid rows")
	cmd.Flags().IntVar(&cols, "cols", 0, "explicit grid columns")
	return cmd
}

// printPlan prints a summary line and a table with the image index placed
// in every cell.
func printPlan(w io.Writer, g mosaic.Grid) {
	kind := "auto"
	if g.Explicit {
		kind = "explicit"
	}
	fmt.Fprintf(w, "%s %s %s\n",
		StyleTitle.Render(fmt.Sprintf("%dx%d", g.Rows, g.Cols)),
		StyleDim.Render(kind+" grid for"),
		StyleNumber.Render(fmt.Sprintf("%d images", g.Count)))

	rows := make([][]string, g.Rows)
	for r := range g.Rows {
		rows[r] = make([]string, g.Cols)
		for c := range g.Cols {
			if i := r*g.Cols + c; c < g.RowWidth(r) {
				rows[r][c] = strconv.Itoa(i)
			} else {
				rows[r][c] = iconEmpty
			}
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		BorderRow(true).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row >= 0 && row < len(rows) && rows[row][col] == iconEmpty {
				return styleCellEmpty
			}
			return styleCellUsed
		})
	fmt.Fprintln(w, t.Render())
}
