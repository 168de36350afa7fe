package main

import (
	"fmt"
	"os"

	"github.com/bastiangx/prosecomplete/internal/logger"
	"github.com/bastiangx/prosecomplete/pkg/completion"
	"github.com/bastiangx/prosecomplete/pkg/config"
	"github.com/bastiangx/prosecomplete/pkg/server"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve completions over stdin/stdout",
		Long:  `Builds the index, announces it to the host and answers requests until stdin is closed.`,
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().String("format", "", "Wire format, msgpack or json (default from config)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	format := e.cfg.Server.Format
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		format = f
	}

	codec, err := server.NewCodec(format, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	module := completion.Module{Lines: e.lines, Options: e.cfg.IndexOptions()}
	srv := server.NewServer(module, codec, e.cfg.Server)

	log.Debug("spawning IPC")
	if err := srv.Init(); err != nil {
		log.Warnf("Serving without an index: %v", err)
	}
	showStartupInfo(e, format)

	if err := srv.Start(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(e *env, format string) {
	l := logger.New(AppName)
	l.Debugf("Version: %s", Version)
	l.Debugf("Process ID: [ %d ]", os.Getpid())
	l.Debugf("vocabulary: ( %s )", e.source)
	l.Debugf("config: ( %s )", config.GetActiveConfigPath(e.configPath))
	l.Debug("status: ready", "format", format, "backend", e.cfg.Index.Backend, "policy", e.cfg.Query.Policy)
}
