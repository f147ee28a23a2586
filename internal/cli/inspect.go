package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgdoc/pkg/scene"
	"github.com/matzehuels/svgdoc/pkg/svg"
)

// inspectCommand creates the inspect command for summarizing scene files.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "inspect <scene.toml|->",
		Short:             "Summarize a scene file",
		Long:              `Validate a scene file and print its header and element counts.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeScene,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScene(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := s.Validate(); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debugf("Validated scene %s", args[0])
			printInspect(cmd.OutOrStdout(), args[0], s)
			return nil
		},
	}
}

func printInspect(w io.Writer, name string, s *scene.Scene) {
	st := s.Stats()

	unit := s.Unit
	if unit == "" {
		unit = svg.DefaultUnit
	}

	printTitle(w, name)
	printKeyValue(w, "Size", fmt.Sprintf("%d x %d %s", s.Width, s.Height, unit))
	if vb := s.ViewBox; vb != nil {
		printKeyValue(w, "ViewBox", fmt.Sprintf("%d %d %d %d", vb.X, vb.Y, vb.Width, vb.Height))
	}
	if s.Title != "" {
		printKeyValue(w, "Title", s.Title)
	}
	if s.Desc != "" {
		printKeyValue(w, "Desc", s.Desc)
	}
	printKeyValue(w, "Standalone", strconv.FormatBool(s.Standalone))
	printKeyValue(w, "Elements", strconv.Itoa(st.Elements))
	printKeyValue(w, "Groups", fmt.Sprintf("%d (max depth %d)", st.Groups, st.MaxDepth))

	if st.Elements == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, kindTable(st.Kinds()))
}

func kindTable(kinds []scene.KindCount) *table.Table {
	rows := make([][]string, len(kinds))
	for i, k := range kinds {
		rows[i] = []string{k.Kind, strconv.Itoa(k.Count)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "Count").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorCyan).Align(lipgloss.Right)
			}
			return lipgloss.NewStyle()
		})
}
