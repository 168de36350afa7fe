package main

import (
	"fmt"
	"path/filepath"

	"github.com/bastiangx/prosecomplete/internal/logger"
	"github.com/bastiangx/prosecomplete/internal/utils"
	"github.com/bastiangx/prosecomplete/pkg/config"
	"github.com/bastiangx/prosecomplete/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           AppName,
		Short:         "Prefix completions for prose",
		Long:          `Serves sorted, de-cluttered prefix completions from a word and phrase list.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			logger.Setup(debug)
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	addPersistentFlags(rootCmd)
	rootCmd.AddCommand(
		NewServeCmd(),
		NewReplCmd(),
		NewLookupCmd(),
		NewVersionCmd(version),
	)
	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Path to the TOML config file")
	cmd.PersistentFlags().Bool("debug", false, "Toggle debug mode")
	cmd.PersistentFlags().String("words", "", "Vocabulary file, one entry per line (default: built-in list)")
}

// env is everything a subcommand needs before it can build an index.
type env struct {
	cfg        *config.Config
	configPath string
	lines      []string
	source     string
}

// loadEnv resolves the config and the vocabulary named by the persistent flags.
func loadEnv(cmd *cobra.Command) (*env, error) {
	configFlag, _ := cmd.Flags().GetString("config")
	wordsFlag, _ := cmd.Flags().GetString("words")

	cfg, configPath, err := config.LoadConfigWithPriority(configFlag)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log.Debugf("Using config: %s", config.GetActiveConfigPath(configPath))

	wordsPath := ""
	if wordsFlag != "" {
		configDir := ""
		if configPath != "" {
			configDir = filepath.Dir(configPath)
		}
		if wordsPath, err = utils.ResolveFile(wordsFlag, configDir); err != nil {
			return nil, fmt.Errorf("resolve words file: %w", err)
		}
	}

	lines, source, err := dictionary.Load(wordsPath)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	log.Debugf("Vocabulary %s: %s lines", source, utils.FormatWithCommas(len(lines)))

	return &env{cfg: cfg, configPath: configPath, lines: lines, source: source}, nil
}
