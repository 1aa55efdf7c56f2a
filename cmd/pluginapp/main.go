// Command pluginapp creates greeter plugins by name. Run it with:
//
//	go run ./cmd/pluginapp --config cmd/pluginapp/instantiate.yaml English Spanish Hola
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ARTM2000/instantiate"
)

const pluginScope = "plugins"

// ---------------------------------------------------------------------------
// Plugins
// ---------------------------------------------------------------------------

type Greeter interface {
	instantiate.Instantiable
	Greet() string
}

type English struct{}

func (*English) Instantiable() {}
func (*English) Greet() string { return "hello" }

type Spanish struct{}

func (*Spanish) Instantiable() {}
func (*Spanish) Greet() string { return "hola" }

// legacySpanish shares the bare name "Spanish" but never opted in, so lookups
// fall through to plugins.Spanish.
type legacySpanish struct{}

func newRegistry(cfg *instantiate.Config, logger *zap.Logger) (instantiate.Registry, error) {
	r := instantiate.NewRegistry(
		instantiate.WithLogger(logger),
		instantiate.WithDefaultScope(instantiate.NewScope(pluginScope)),
		instantiate.WithConfig(cfg),
	)

	scope := instantiate.InScope(instantiate.NewScope(pluginScope))
	err := errors.Join(
		r.Register("English", func() *English { return &English{} }, scope),
		r.Register("Spanish", func() *Spanish { return &Spanish{} }, scope),
		r.RegisterType("Spanish", instantiate.TypeOf[legacySpanish]()),
	)
	return r, err
}

// ---------------------------------------------------------------------------
// Command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "pluginapp [name...]",
		Short:         "Create greeter plugins by name",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = l
			}
			defer logger.Sync() //nolint:errcheck

			var cfg *instantiate.Config
			if configPath != "" {
				c, err := instantiate.LoadConfigFile(configPath)
				if err != nil {
					return err
				}
				cfg = c
			}

			r, err := newRegistry(cfg, logger)
			if err != nil {
				return err
			}
			return greet(cmd, r, args)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to instantiate.yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log lookups")
	return cmd
}

func greet(cmd *cobra.Command, r instantiate.Registry, names []string) error {
	var missing []string
	for _, name := range names {
		g, ok := r.Create(name).(Greeter)
		if !ok {
			missing = append(missing, name)
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: not found\n", name)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, g.Greet())
	}
	if len(missing) > 0 {
		return fmt.Errorf("%d of %d plugins not found", len(missing), len(names))
	}
	return nil
}

// ---------------------------------------------------------------------------
// Main
// ---------------------------------------------------------------------------

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
