package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/psalmos/web/internal/pubsub"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the event bus topics",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TOPIC\tDESCRIPTION")
		for _, t := range pubsub.Topics() {
			fmt.Fprintf(w, "%s\t%s\n", t.Name, t.Description)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
