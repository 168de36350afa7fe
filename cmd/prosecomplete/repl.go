package main

import (
	"github.com/bastiangx/prosecomplete/internal/cli"
	"github.com/bastiangx/prosecomplete/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func NewReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Type prefixes and see their completions",
		Long:  `Interactive loop for testing a vocabulary and the query settings before serving them.`,
		Args:  cobra.NoArgs,
		RunE:  runRepl,
	}
	cmd.Flags().Int("prmin", -1, "Minimum prefix length (default from config)")
	cmd.Flags().Int("prmax", -1, "Maximum prefix length (default from config)")
	cmd.Flags().Bool("no-filter", false, "Disable input filtering (DBG only), numbers and control characters are looked up too")
	return cmd
}

func runRepl(cmd *cobra.Command, _ []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	idx, err := suggest.Build(e.lines, e.cfg.IndexOptions()...)
	if err != nil {
		return err
	}

	minLen, maxLen, noFilter := e.cfg.CLI.MinLen, e.cfg.CLI.MaxLen, e.cfg.CLI.NoFilter
	if v, _ := cmd.Flags().GetInt("prmin"); v >= 0 {
		minLen = v
	}
	if v, _ := cmd.Flags().GetInt("prmax"); v >= 0 {
		maxLen = v
	}
	if cmd.Flags().Changed("no-filter") {
		noFilter, _ = cmd.Flags().GetBool("no-filter")
	}

	log.Debug("Input info:",
		"minPrefix", minLen,
		"maxPrefix", maxLen,
		"limit", idx.Options().Limit,
		"noFilter", noFilter)

	return cli.NewInputHandler(idx.Lookup, minLen, maxLen, noFilter).
		WithIO(cmd.InOrStdin(), cmd.ErrOrStderr()).
		Start()
}
