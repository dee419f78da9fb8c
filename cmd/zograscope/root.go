// Command zograscope is the CLI front door to the differ: diff, find,
// stats and hi subcommands, one file each, registered on rootCmd from
// their own init() (§6.3).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zograscope/zograscope/internal/config"
	"github.com/zograscope/zograscope/internal/diff"
	"github.com/zograscope/zograscope/internal/printer"

	_ "github.com/zograscope/zograscope/internal/lang/bash"
	_ "github.com/zograscope/zograscope/internal/lang/c"
	_ "github.com/zograscope/zograscope/internal/lang/lua"
	_ "github.com/zograscope/zograscope/internal/lang/make"
)

var rootCmd = &cobra.Command{
	Use:           "zograscope",
	Short:         "A syntax-aware source-code differ",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		printer.SetColor(globalFlags.color)
	},
}

// globalFlags are the flags every subcommand shares (§6.3 "Common
// flags"); each subcommand reads the ones it needs out of this struct
// rather than redeclaring them.
var globalFlags = struct {
	lang        string
	tabWidth    int
	color       bool
	debug       bool
	fine        bool
	dumpTree    bool
	dumpSTree   bool
	timeReport  bool
	dryRun      bool
}{}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&globalFlags.lang, "lang", "", "force a language instead of detecting it from the file extension")
	pf.IntVar(&globalFlags.tabWidth, "tab-width", 4, "tab expansion width used during leaf stringification")
	pf.BoolVar(&globalFlags.color, "color", false, "enable ANSI color in printed output")
	pf.BoolVar(&globalFlags.debug, "debug", false, "print front-end warnings to stderr")
	pf.BoolVar(&globalFlags.fine, "fine", false, "materialize straight from the parse tree, skipping STree reduction")
	pf.BoolVar(&globalFlags.dumpTree, "dump-tree", false, "dump the semantic tree instead of the normal output")
	pf.BoolVar(&globalFlags.dumpSTree, "dump-stree", false, "dump the structural tree instead of the normal output")
	pf.BoolVar(&globalFlags.timeReport, "time-report", false, "print the comparison's wall-clock time to stderr")
	pf.BoolVar(&globalFlags.dryRun, "dry-run", false, "run the pipeline but skip printing")
}

// diffOptions builds the shared diff.Options from the parsed global flags.
func diffOptions() diff.Options {
	return diff.Options{
		Lang:     globalFlags.lang,
		TabWidth: globalFlags.tabWidth,
		Fine:     globalFlags.fine,
		Debug:    globalFlags.debug,
	}
}

// applyEnvDefaults loads the optional .zograscope.env/.env from the
// working directory and, for every flag it sets, overwrites that flag's
// bound variable *before* cobra parses os.Args — so an explicit
// command-line flag still wins (pflag only overwrites a Var's value when
// it actually sees that flag on the command line), matching §A's "explicit
// CLI flags always override it".
func applyEnvDefaults() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	defaults := config.LoadEnv(wd)
	if defaults.Color {
		globalFlags.color = true
	}
	if defaults.Lang != "" {
		globalFlags.lang = defaults.Lang
	}
	if defaults.TabWidth > 0 {
		globalFlags.tabWidth = defaults.TabWidth
	}
}

// loadProject loads the optional .zograscope.yml from the working
// directory; a missing file is not an error (config.Load already treats
// it that way).
func loadProject() *config.Project {
	wd, err := os.Getwd()
	if err != nil {
		return &config.Project{}
	}
	proj, err := config.Load(wd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zograscope: %v\n", err)
		return &config.Project{}
	}
	return proj
}

func Execute() error {
	return rootCmd.Execute()
}

func main() {
	applyEnvDefaults()
	project = loadProject()
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "zograscope: %v\n", err)
		os.Exit(1)
	}
}

// project is the parsed .zograscope.yml, consulted by find/stats for
// ignore globs and per-path language overrides; populated once in main
// before Execute runs any subcommand.
var project = &config.Project{}
