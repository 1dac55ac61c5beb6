package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/psalmos/web/internal/shell"
)

var viewsCmd = &cobra.Command{
	Use:   "views [view]",
	Short: "List the site's views and their access requirements",
	Long: `Without an argument, views lists every view. With a view name it
prints just that view's row, or fails if the name is unknown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := shell.NewRegistry()

		list := shell.Views()
		if len(args) == 1 {
			v, ok := shell.ParseView(args[0])
			if !ok {
				return fmt.Errorf("unknown view %q", args[0])
			}
			list = []shell.View{v}
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VIEW\tTITLE\tREQUIRES USER\tFOOTER")
		for _, v := range list {
			page := registry.Lookup(v)
			fmt.Fprintf(w, "%s\t%s\t%t\t%t\n", v, page.Title, page.RequiresUser, page.ShowFooter)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(viewsCmd)
}
