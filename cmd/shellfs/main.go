package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/brettbedarf/shellfs/config"
	"github.com/brettbedarf/shellfs/filesystem"
	"github.com/brettbedarf/shellfs/internal/util"
	"github.com/brettbedarf/shellfs/shell"
)

// exit status for usage and setup failures
const exitSetup = 2

type options struct {
	configPath string
	verbose    int
	prompt     string
	noColor    bool
	echo       bool
}

func main() {
	var status int
	cmd := newRootCmd(&status, os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(exitSetup)
	}
	os.Exit(status)
}

func newRootCmd(status *int, in io.Reader, out, errOut io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "shellfs [script]",
		Short: "Shell over an in-memory hierarchical filesystem",
		Long: `shellfs reads commands from a script file or standard input and runs
them against a fresh in-memory filesystem. Nothing is persisted.

Commands: cat cd echo exit ln ls lsr make mkdir prompt pwd rm stat`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &opts)
			if err != nil {
				return err
			}
			util.InitializeLoggerTo(cfg.LogLvl, errOut)
			logger := util.GetLogger("main")

			input := in
			interactive := false
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				input = f
			} else if f, ok := in.(*os.File); ok {
				interactive = term.IsTerminal(int(f.Fd()))
			}

			state := filesystem.NewState()
			sh := shell.New(state, cfg, out, errOut)
			sh.SetInteractive(interactive)
			logger.Info().Str("fs", state.InstanceID().String()).Bool("interactive", interactive).Msg("Shell started")

			*status, err = sh.Run(input)
			logger.Info().Int("status", *status).Uint64("nodes", state.LastID()).Msg("Shell finished")
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML or JSON config file")
	flags.IntVarP(&opts.verbose, "verbose", "v", config.WarnVerbose, "Log verbosity between 1 (error) and 5 (trace)")
	flags.StringVarP(&opts.prompt, "prompt", "p", config.DefaultPrompt, "Prompt printed before each interactive command")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored error output")
	flags.BoolVarP(&opts.echo, "echo", "e", config.DefaultEcho, "Echo commands read from non-interactive input")
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd
}

// loadConfig layers the config file, if any, under the flags that were set
// explicitly on the command line.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if opts.configPath != "" {
		override, err := config.LoadConfigOverrideFile(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Merge(override)
	}

	flags := cmd.Flags()
	override := &config.ConfigOverride{}
	if flags.Changed("verbose") {
		override.LogLvl = util.Pointer(opts.verbose)
	}
	if flags.Changed("prompt") {
		override.Prompt = util.Pointer(opts.prompt)
	}
	if flags.Changed("no-color") {
		override.Color = util.Pointer(!opts.noColor)
	}
	if flags.Changed("echo") {
		override.Echo = util.Pointer(opts.echo)
	}
	cfg.Merge(override)
	return cfg, nil
}
