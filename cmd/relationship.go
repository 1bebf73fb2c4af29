package cmd

import (
	"encoding/json"
	"fmt"
	"graphdb/core"
	"graphdb/logger"
	"graphdb/models"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	relType string
	relData string
)

var relationshipCmd = &cobra.Command{
	Use:     "relationship",
	Short:   "Create or inspect relationships",
	Aliases: []string{"rel"},
}

var relationshipCreateCmd = &cobra.Command{
	Use:   "create [startId] [to]",
	Short: "Create a relationship between two nodes",
	Long: `Creates a relationship of --type from the start node to "to", which is
either a node id or a node URI. --data supplies an optional JSON property map.
The request goes through the same validation as the REST endpoint.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Executing 'relationship create' command")
		startID, err := parseID("start node", args[0])
		if err != nil {
			return err
		}

		to := args[1]
		if !strings.Contains(to, "/") {
			to = cliBaseURI() + "node/" + to
		}
		req := map[string]any{"to": to, "type": relType}
		if relData != "" {
			req["data"] = json.RawMessage(relData)
		}
		body, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("%s: --data is not valid JSON: %w", core.MalformedInput, err)
		}

		rel, err := graphService.CreateRelationship(cmd.Context(), startID, body)
		if err != nil {
			return fmt.Errorf("%s: %s", core.KindOf(err), core.MessageOf(err))
		}
		printRelationship(cmd.OutOrStdout(), "created", rel)
		return nil
	},
}

var relationshipShowCmd = &cobra.Command{
	Use:     "show [id]",
	Short:   "Show a relationship",
	Aliases: []string{"get"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("relationship", args[0])
		if err != nil {
			return err
		}
		rel, err := graphService.GetRelationship(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("%s: %s", core.KindOf(err), core.MessageOf(err))
		}
		printRelationship(cmd.OutOrStdout(), "", rel)
		return nil
	},
}

func printRelationship(out io.Writer, verb string, rel models.Relationship) {
	rep := core.BuildRelationshipRepresentation(rel, cliBaseURI())
	if verb != "" {
		fmt.Fprintf(out, "Relationship %d %s: %s\n", rel.ID, verb, rep.Self)
	} else {
		fmt.Fprintf(out, "Relationship %d: %s\n", rel.ID, rep.Self)
	}
	fmt.Fprintf(out, "  (%d)-[:%s]->(%d)\n", rel.StartNodeID, rel.Type, rel.EndNodeID)
	printProperties(out, rep.Data)
}

func init() {
	relationshipCreateCmd.Flags().StringVarP(&relType, "type", "t", "", "Relationship type (required)")
	relationshipCreateCmd.Flags().StringVar(&relData, "data", "", `JSON property map, e.g. '{"since":2001}'`)
	relationshipCreateCmd.MarkFlagRequired("type")
	relationshipCmd.AddCommand(relationshipCreateCmd)
	relationshipCmd.AddCommand(relationshipShowCmd)
	rootCmd.AddCommand(relationshipCmd)
}
