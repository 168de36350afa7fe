package main

import (
	"encoding/json"
	"fmt"

	"github.com/bastiangx/prosecomplete/pkg/suggest"
	"github.com/spf13/cobra"
)

func NewLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <query>",
		Short: "Print the completions of one query",
		Long:  `Builds the index once and prints the completions of query, one per line.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runLookup,
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	return cmd
}

func runLookup(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	idx, err := suggest.Build(e.lines, e.cfg.IndexOptions()...)
	if err != nil {
		return err
	}

	results, err := idx.Lookup(args[0])
	if err != nil {
		return fmt.Errorf("lookup %q: %w", args[0], err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, word := range results {
		fmt.Fprintln(cmd.OutOrStdout(), word)
	}
	return nil
}
