// Copyright (c) 2026 Keymaster Team
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, its persistent flags and the shared
// startup (config, logging, i18n) for every subcommand.

package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/pwstrength/buildvars"
	"github.com/toeirei/pwstrength/internal/config"
	"github.com/toeirei/pwstrength/internal/i18n"
	"github.com/toeirei/pwstrength/internal/logging"
)

const modulePath = "github.com/toeirei/pwstrength"

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// app carries the per-invocation state shared by the commands.
type app struct {
	in  io.Reader
	out io.Writer

	cfgFile string
	verbose bool
	// writeDefaultConfig controls the first-run default config file.
	writeDefaultConfig bool

	cfg config.Config
}

// Execute runs the CLI entrypoint. The cmd/pwstrength main package should
// call this function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree reading from stdin and writing to stdout.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{in: os.Stdin, out: os.Stdout, writeDefaultConfig: true})
}

func newRootCmd(a *app) *cobra.Command {
	// Root help texts are needed before the configured language is known.
	i18n.Init("en")

	cmd := &cobra.Command{
		Use:          "pwstrength",
		Short:        i18n.T("app.short"),
		Long:         i18n.T("app.long"),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      compositeVersion(nil),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPrompt()
		},
	}
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/pwstrength/pwstrength.yaml)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().String("language", "en", languageHelp())
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.Flags().Bool("echo", false, "Show the password while typing it")

	cmd.AddCommand(newFormCmd(a))
	cmd.AddCommand(newVersionCmd(a))
	return cmd
}

// setup loads configuration and initializes logging and i18n.
func (a *app) setup(cmd *cobra.Command) error {
	var explicit *string
	if a.cfgFile != "" {
		explicit = &a.cfgFile
	}

	cfg, used, err := config.LoadConfig[config.Config](cmd, config.Defaults(), explicit)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.verbose {
		level = "debug"
	}
	if err := logging.SetLevel(level); err != nil {
		logging.Warnf("%v; keeping previous level", err)
	}

	lang := cfg.Language
	if !i18n.IsAvailable(lang) {
		logging.Warnf("unknown language %q (available: %s); using en", lang, strings.Join(i18n.LocaleTags(), ", "))
		lang = "en"
		a.cfg.Language = lang
	}
	i18n.Init(lang)

	if used != "" {
		logging.Debugf("using config file %s", used)
	} else if a.writeDefaultConfig {
		a.writeDefaults()
	}
	logging.Debugf("language %s, no_color=%t", i18n.GetLang(), cfg.Display.NoColor)
	return nil
}

// writeDefaults persists the built-in defaults on first run. Flags and
// environment values of the current invocation are not saved.
func (a *app) writeDefaults() {
	defaults, err := config.DefaultConfig()
	if err == nil {
		err = config.WriteConfigFile(&defaults, false)
	}
	if err != nil {
		logging.Warnf("%s", i18n.T("config.warn_write_default", err))
		return
	}
	logging.Infof("wrote default config to user config path")
}

// languageHelp lists the embedded locales for the --language flag.
func languageHelp() string {
	av := i18n.GetAvailableLocales()
	parts := make([]string, 0, len(av))
	for _, tag := range i18n.LocaleTags() {
		parts = append(parts, fmt.Sprintf("%s=%s", tag, av[tag]))
	}
	return "UI language (" + strings.Join(parts, ", ") + ")"
}

func compositeVersion(info *debug.BuildInfo) string {
	v, c, d := resolveBuildVersion(info)
	out := v
	if c != "" && c != "dev" && c != v {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion returns version, commit and build date, preferring
// link-time values and falling back to the embedded build info.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && resolvedCommit != "" && resolvedCommit != "dev" {
		resolvedVersion = resolvedCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
