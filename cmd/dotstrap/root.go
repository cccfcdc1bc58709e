package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/dotstrap/dotstrap/internal/version"
	"github.com/dotstrap/dotstrap/pkg/commands/link"
	"github.com/dotstrap/dotstrap/pkg/commands/up"
	"github.com/dotstrap/dotstrap/pkg/config"
	"github.com/dotstrap/dotstrap/pkg/logging"
	"github.com/dotstrap/dotstrap/pkg/paths"
	"github.com/dotstrap/dotstrap/pkg/style"
)

var (
	verbosity int
	dryRun    bool
	cfgFile   string

	rootCmd = &cobra.Command{
		Use:   "dotstrap",
		Short: "Bootstrap a machine from a dotfiles repository",
		Long: `dotstrap clones your dotfiles repository and replaces the configured
directories under your config root with symlinks into the clone, backing up
anything it displaces into a fresh per-run backup directory.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	initTemplateFormatting()

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/dotstrap/config.toml)")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(genconfigCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(manCmd)

	linkCmd.Flags().StringVar(&linkSource, "source", "", "source root (default is the configured clone path)")
	linkCmd.Flags().StringVar(&linkTarget, "target", "", "target root (default is the configured config root)")
}

func loadConfig() (config.Config, error) {
	path := cfgFile
	if path == "" {
		path = paths.ConfigFilePath()
	}
	return config.Load(path)
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Clone the dotfiles repository and link all configured units",
	Long: `Up clones the configured dotfiles repository if it is not present yet,
then links every configured unit into the config root. Pre-existing entries
are moved into a per-run backup directory before being replaced.

A failed clone aborts the run; per-unit failures are reported and the run
continues with the remaining units.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		report, err := up.Run(cmd.Context(), up.Options{
			Config: cfg,
			DryRun: dryRun,
		})
		if err != nil {
			return err
		}

		fmt.Println(formatBold("dotstrap up"))
		fmt.Print(style.RenderReport(report))
		return nil
	},
}

var (
	linkSource string
	linkTarget string
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link configured units without cloning",
	Long: `Link replaces each configured unit's directory under the target root
with a symlink into the source root. The source root must already exist;
use up to clone it first. --source and --target allow linking ad-hoc roots.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		source := linkSource
		if source == "" {
			source = cfg.Repo.Path
		}
		target := linkTarget
		if target == "" {
			target = cfg.ConfigRoot
		}

		units := cfg.Units
		if len(args) > 0 {
			units = args
		}

		report, err := link.Run(link.Options{
			SourceRoot: source,
			TargetRoot: target,
			Units:      units,
			DryRun:     dryRun,
		})
		if err != nil {
			return err
		}

		fmt.Println(formatBold("dotstrap link"))
		fmt.Print(style.RenderReport(report))
		return nil
	},
}

var genconfigCmd = &cobra.Command{
	Use:   "genconfig",
	Short: "Print the default configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.Default().Dump()
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dotstrap version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(dotstrap completion bash)

Zsh:
  $ dotstrap completion zsh > "${fpath[1]}/_dotstrap"

Fish:
  $ dotstrap completion fish | source

PowerShell:
  PS> dotstrap completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate bash completion")
			}
		case "zsh":
			if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate zsh completion")
			}
		case "fish":
			if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
				log.Error().Err(err).Msg("Failed to generate fish completion")
			}
		case "powershell":
			if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate powershell completion")
			}
		}
	},
}

var manCmd = &cobra.Command{
	Use:   "man",
	Short: "Generate man page",
	RunE: func(cmd *cobra.Command, args []string) error {
		header := &doc.GenManHeader{
			Title:   "DOTSTRAP",
			Section: "1",
		}
		return doc.GenManTree(rootCmd, header, "/tmp")
	},
}
