package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bitkitcore/internal/domain"
	"bitkitcore/internal/lnurl"
	"bitkitcore/internal/validation"
)

func channelURLCmd() *cobra.Command {
	var p domain.ChannelRequestParams
	cmd := &cobra.Command{
		Use:   "channel-url",
		Short: "Build an LNURL-channel callback URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.Struct(p); err != nil {
				return err
			}
			u, err := lnurl.CreateChannelRequestURL(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&p.K1, "k1", "", "k1 from the channel offer")
	f.StringVar(&p.Callback, "callback", "", "callback from the channel offer")
	f.StringVar(&p.LocalNodeID, "node-id", "", "local node public key")
	f.BoolVar(&p.IsPrivate, "private", false, "request a private channel")
	f.BoolVar(&p.Cancel, "cancel", false, "cancel the request instead")
	return cmd
}

func withdrawURLCmd() *cobra.Command {
	var p domain.WithdrawCallbackParams
	cmd := &cobra.Command{
		Use:   "withdraw-url",
		Short: "Build an LNURL-withdraw callback URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.Struct(p); err != nil {
				return err
			}
			u, err := lnurl.CreateWithdrawCallbackURL(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&p.K1, "k1", "", "k1 from the withdraw offer")
	f.StringVar(&p.Callback, "callback", "", "callback from the withdraw offer")
	f.StringVar(&p.PaymentRequest, "pr", "", "BOLT11 invoice to be paid")
	return cmd
}
