package dstats

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/calpyte/dstats/internal/dstats"
	"github.com/calpyte/dstats/internal/dstats/conf"
)

var (
	Output   string
	Serve    bool
	Watch    bool
	Addr     string
	ConfFile string
)

func init() {
	// windows only
	cobra.MousetrapHelpText = ""

	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "debug")
	rootCmd.Flags().StringVarP(&Output, "output", "o", "", "report path (default: discord_stats.html next to the archive)")
	rootCmd.Flags().BoolVar(&Serve, "serve", false, "serve the report over HTTP after writing it")
	rootCmd.Flags().BoolVar(&Watch, "watch", false, "recompute when the archive changes (requires --serve)")
	rootCmd.Flags().StringVar(&Addr, "addr", "", "listen address for --serve")
	rootCmd.Flags().StringVar(&ConfFile, "config", "", "config file")
	rootCmd.PersistentPreRun = initLog
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Err(err).Msg("command execution failed")
	}
}

var rootCmd = &cobra.Command{
	Use:     "dstats <package.zip>",
	Short:   "generate a statistics report from a Discord data package",
	Long:    `dstats reads a Discord data package and writes a single-page statistics report.`,
	Example: `dstats package.zip -o stats.html`,
	Args:    cobra.ExactArgs(1),
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	RunE:         runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := conf.Load(ConfFile)
	if err != nil {
		return err
	}
	if Output != "" {
		cfg.Output = Output
	}
	if Addr != "" {
		cfg.HTTPAddr = Addr
	}
	if Serve {
		cfg.Serve = true
	}
	if Watch {
		cfg.Watch = true
	}
	if Debug {
		cfg.Debug = true
	}
	cfg.Normalize()

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	return dstats.New(cfg, args[0]).Run()
}
