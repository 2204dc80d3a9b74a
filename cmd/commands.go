package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/tablepipe/core/command"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the table consumers accepted by --command",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tPLATFORMS\tDESCRIPTION")
		for _, name := range command.Names() {
			c, err := command.Lookup(name)
			if err != nil {
				return err
			}
			platforms := "any"
			if len(c.Compatible) > 0 {
				platforms = strings.Join(c.Compatible, ",")
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, platforms, c.Description)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
