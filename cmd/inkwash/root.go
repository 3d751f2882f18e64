package inkwash

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/inkwash/inkwash/internal/inkwash/conf"
	"github.com/inkwash/inkwash/internal/inkwash/server"
	"github.com/inkwash/inkwash/internal/inkwash/tools"
	"github.com/inkwash/inkwash/pkg/version"
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "debug")
	rootCmd.PersistentPreRun = initLog

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file or dir")
	rootCmd.Flags().StringVarP(&scriptsDir, "scripts-dir", "s", "", "conversion scripts dir")
	rootCmd.Flags().StringVarP(&pythonBin, "python", "p", "", "python interpreter")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Err(err).Msg("command execution failed")
	}
}

var (
	configPath string
	scriptsDir string
	pythonBin  string
)

var rootCmd = &cobra.Command{
	Use:     "inkwash",
	Short:   "MCP server for removing watermarks from PDFs and images",
	Long:    `inkwash speaks MCP over stdin/stdout and exposes PDF watermark-removal tools backed by OpenCV scripts.`,
	Example: `inkwash`,
	Args:    cobra.MinimumNArgs(0),
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Run: Root,
}

func Root(cmd *cobra.Command, args []string) {
	c, _, err := conf.Load(configPath)
	if err != nil {
		log.Err(err).Msg("failed to load config")
		return
	}
	if scriptsDir != "" {
		c.ScriptsDir = scriptsDir
	}
	if pythonBin != "" {
		c.PythonBin = pythonBin
	}

	runner, err := tools.NewRunner(c)
	if err != nil {
		log.Err(err).Msg("failed to set up tool runner")
		return
	}

	srv := server.New(server.Options{
		In:      os.Stdin,
		Out:     os.Stdout,
		Invoker: runner,
		Identity: server.Identity{
			Name:         conf.AppName,
			Version:      version.Short(),
			Instructions: c.Instructions,
		},
		InboundCap: c.GetInboundQueueSize(),
	})
	if err := srv.Run(context.Background()); err != nil {
		log.Err(err).Msg("server exited with error")
	}
}
