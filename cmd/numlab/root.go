// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "NUMLAB"

	flagConfig  = "config"
	flagVerbose = "verbose"
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	v   *viper.Viper
	log *slog.Logger
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree with its own configuration, so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:          "numlab",
		Short:        "Numerical methods workbench",
		Long:         "numlab solves linear systems, finds roots, integrates and interpolates with classic numerical methods.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().String(flagConfig, "", "YAML config file with default flag values")
	root.PersistentFlags().BoolP(flagVerbose, "v", false, "log every iteration at debug level")

	root.AddCommand(
		newSolveCmd(a),
		newRootsCmd(a),
		newIntegrateCmd(a),
		newInterpCmd(a),
	)

	return root
}

// init wires logging and configuration for the command about to run.
// Precedence: explicit flag > NUMLAB_* env > config file > flag default.
func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	// cmd.Flags() already holds the inherited persistent flags after parsing.
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if path := a.v.GetString(flagConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	level := slog.LevelInfo
	if a.v.GetBool(flagVerbose) {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.log.Debug("configuration resolved", "command", cmd.Name(), "config", a.v.ConfigFileUsed())

	return nil
}
