package commands

import (
	"github.com/spf13/cobra"

	"bitkitcore/internal/app"
	"bitkitcore/internal/config"
	"bitkitcore/internal/logging"
)

var (
	cfgFile    string
	passphrase string
	settings   config.Config
	appCtx     *app.Wire
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bitkit-lnurl",
		Short:         "LNURL and Lightning Address client",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.Load(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}
			settings = s
			logging.Setup(settings.LogLevel)

			w, err := app.NewWire(app.FromSettings(settings))
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default <user config dir>/bitkit-lnurl/bitkit-lnurl.yaml)")
	pf.String("home", "", "data dir (default ~/.bitkit-lnurl)")
	pf.Duration("timeout", 0, "HTTP timeout (default 30s)")
	pf.String("proxy", "", "proxy URL, e.g. socks5://127.0.0.1:9050")
	pf.Bool("plain-http", false, "resolve Lightning Addresses over http (regtest)")
	pf.String("log-level", "", "debug, info, warn or error")
	pf.String("user-agent", "", "User-Agent header")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the hashing key")

	root.AddCommand(
		decodeCmd(), encodeCmd(), addressCmd(),
		invoiceCmd(), channelURLCmd(), withdrawURLCmd(),
		withdrawCmd(), channelCmd(), authCmd(),
		keyCmd(), loginsCmd(), configCmd(),
	)
	return root
}
