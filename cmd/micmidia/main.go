package main

import (
	"os"

	"github.com/spf13/cobra"

	landing "github.com/micmidia/landing"
	"github.com/micmidia/landing/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// settings is filled by the root command before any subcommand runs.
type settings struct {
	cfg landing.SiteConfig
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	root := &cobra.Command{
		Use:   "micmidia",
		Short: "MicMidia landing page server",
		Long: `micmidia serves the MicMidia landing page, exports it as a static site
and lists the messages received through its contact form.

Configuration is read from the environment and an optional .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env may set LOG_FORMAT and LOG_LEVEL, so it is read first.
			cfg, err := landing.LoadConfig()
			if err != nil {
				return err
			}
			s.cfg = cfg
			logging.NewWithWriter(cmd.ErrOrStderr(), os.Getenv("LOG_FORMAT"), os.Getenv("LOG_LEVEL"))
			return nil
		},
	}
	root.AddCommand(newServeCmd(s), newExportCmd(s), newMessagesCmd(s), newVersionCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
