package cmd

import (
	"fmt"
	"graphdb/core"
	"graphdb/logger"

	"github.com/spf13/cobra"
)

var nodeData string

var nodeCmd = &cobra.Command{
	Use:     "node",
	Short:   "Create or inspect nodes",
	Aliases: []string{"n"},
}

var nodeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a node",
	Long:  `Creates a node, optionally carrying the JSON property map given with --data.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Executing 'node create' command")
		node, err := graphService.CreateNode(cmd.Context(), []byte(nodeData))
		if err != nil {
			return fmt.Errorf("%s: %s", core.KindOf(err), core.MessageOf(err))
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Node %d created: %s\n", node.ID, core.NodeURI(cliBaseURI(), node.ID))
		printProperties(out, node.Properties)
		return nil
	},
}

var nodeShowCmd = &cobra.Command{
	Use:     "show [id]",
	Short:   "Show a node",
	Aliases: []string{"get"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("node", args[0])
		if err != nil {
			return err
		}
		node, err := graphService.GetNode(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("%s: %s", core.KindOf(err), core.MessageOf(err))
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Node %d: %s\n", node.ID, core.NodeURI(cliBaseURI(), node.ID))
		printProperties(out, node.Properties)
		return nil
	},
}

func init() {
	nodeCreateCmd.Flags().StringVar(&nodeData, "data", "", `JSON property map, e.g. '{"name":"Alice"}'`)
	nodeCmd.AddCommand(nodeCreateCmd)
	nodeCmd.AddCommand(nodeShowCmd)
	rootCmd.AddCommand(nodeCmd)
}
