package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/mginspect/internal/app"
	"github.com/quantmind-br/mginspect/internal/config"
	"github.com/quantmind-br/mginspect/internal/domain"
	"github.com/quantmind-br/mginspect/internal/output"
	"github.com/quantmind-br/mginspect/internal/utils"
	"github.com/quantmind-br/mginspect/pkg/version"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mginspect [path]",
	Short: "Inspect a must-gather archive",
	Long: `mginspect locates the root of a must-gather archive, even when it is
wrapped in extraction directories, and summarizes the cluster it was
taken from: version, nodes, cluster operators, and machines.

The summary prints to stdout as text, JSON, or YAML; the report
subcommand writes it as a markdown file instead.`,
	Version: version.Short(),
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.mginspect/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("no-progress", false, "Disable progress indicators")

	// Cache flags
	rootCmd.PersistentFlags().Bool("no-cache", false, "Disable the summary cache")
	rootCmd.PersistentFlags().Duration("cache-ttl", config.DefaultCacheTTL, "Cache TTL")
	rootCmd.PersistentFlags().Bool("refresh-cache", false, "Rebuild the summary even when cached")

	// Output flags
	rootCmd.Flags().StringP("format", "f", "", "Output format (text, json, yaml)")

	// Bind flags to viper
	_ = viper.BindPFlag("cache.ttl", rootCmd.PersistentFlags().Lookup("cache-ttl"))
	_ = viper.BindPFlag("output.format", rootCmd.Flags().Lookup("format"))

	// Add subcommands
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// setup loads the configuration and initializes the logger and signal
// handling shared by the root and report commands.
func setup(cmd *cobra.Command) (*config.Config, domain.CommonOptions, context.Context, context.CancelFunc, error) {
	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  "pretty",
		Verbose: verbose,
	})

	cfg, err := config.Load()
	if err != nil {
		return nil, domain.CommonOptions{}, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	noCache, _ := cmd.Flags().GetBool("no-cache")
	refreshCache, _ := cmd.Flags().GetBool("refresh-cache")
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	noColor, _ := cmd.Flags().GetBool("no-color")

	if noColor || !cfg.Display.Color {
		color.NoColor = true
	}

	opts := domain.CommonOptions{
		Verbose:      verbose,
		NoCache:      noCache,
		RefreshCache: refreshCache,
		NoProgress:   noProgress,
		NoColor:      noColor,
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info().Msg("Shutting down gracefully...")
		cancel()
	}()

	return cfg, opts, ctx, cancel, nil
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	path := args[0]

	cfg, opts, ctx, cancel, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	inspector, err := app.NewInspector(app.InspectorOptions{
		CommonOptions: opts,
		Config:        cfg,
	})
	if err != nil {
		return fmt.Errorf("failed to create inspector: %w", err)
	}
	defer inspector.Close()

	mg, err := inspector.Inspect(ctx, path)
	if err != nil {
		return err
	}

	return output.Render(os.Stdout, mg, format)
}

var reportCmd = &cobra.Command{
	Use:   "report [path]",
	Short: "Write a markdown report for an archive",
	Long:  "Builds the archive summary and writes it as a markdown report with YAML frontmatter.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		path := args[0]

		cfg, opts, ctx, cancel, err := setup(cmd)
		if err != nil {
			return err
		}
		defer cancel()

		if cmd.Flags().Changed("output") {
			cfg.Output.Directory, _ = cmd.Flags().GetString("output")
		}
		opts.Force, _ = cmd.Flags().GetBool("force")
		opts.DryRun, _ = cmd.Flags().GetBool("dry-run")

		inspector, err := app.NewInspector(app.InspectorOptions{
			CommonOptions: opts,
			Config:        cfg,
		})
		if err != nil {
			return fmt.Errorf("failed to create inspector: %w", err)
		}
		defer inspector.Close()

		mg, err := inspector.Inspect(ctx, path)
		if err != nil {
			return err
		}

		writer := output.NewReportWriter(output.ReportOptions{
			Dir:    cfg.Output.Directory,
			Force:  opts.Force || cfg.Output.Overwrite,
			DryRun: opts.DryRun,
		})

		reportPath, err := writer.Write(mg)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		if opts.DryRun {
			fmt.Printf("Would write %s\n", reportPath)
		} else {
			fmt.Printf("Report written to %s\n", reportPath)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("output", "o", config.DefaultOutputDir, "Report output directory")
	reportCmd.Flags().Bool("force", false, "Overwrite an existing report")
	reportCmd.Flags().Bool("dry-run", false, "Resolve the report path without writing")

	_ = viper.BindPFlag("output.directory", reportCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("output.overwrite", reportCmd.Flags().Lookup("force"))
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check local setup",
	Long:  "Verifies that configuration, cache, and output locations are usable.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking local setup...")
		allPassed := true

		// Check 1: Config file
		fmt.Print("  Config file: ")
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("WARN (%v)\n", err)
			cfg = nil
		} else {
			fmt.Println("OK")
		}

		// Check 2: Write permissions for the working directory
		fmt.Print("  Write permissions: ")
		if checkWritePermissions() {
			fmt.Println("OK")
		} else {
			fmt.Println("FAILED")
			allPassed = false
		}

		// Check 3: Cache directory
		fmt.Print("  Cache directory: ")
		cacheDir := config.CacheDir()
		if cfg != nil {
			if dir, err := utils.ExpandPath(cfg.Cache.Directory); err == nil {
				cacheDir = dir
			}
		}
		if checkCacheDir(cacheDir) {
			fmt.Printf("OK (%s)\n", cacheDir)
		} else {
			fmt.Println("WARN (will be created on first use)")
		}

		fmt.Println()
		if allPassed {
			fmt.Println("All critical checks passed!")
		} else {
			fmt.Println("Some checks failed. Please resolve the issues above.")
		}
		return nil
	},
}

// checkWritePermissions checks if we can write to the current directory
func checkWritePermissions() bool {
	tmpFile := ".mginspect_test_write"
	f, err := os.Create(tmpFile)
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(tmpFile)
	return true
}

// checkCacheDir checks if the cache directory exists
func checkCacheDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
