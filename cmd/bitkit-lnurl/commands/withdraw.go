package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bitkitcore/internal/domain"
)

func withdrawCmd() *cobra.Command {
	var pr string
	cmd := &cobra.Command{
		Use:   "withdraw <lnurl>",
		Short: "Fetch an LNURL-withdraw offer and submit an invoice to it",
		Long: "Without --pr the offer is printed and nothing is submitted. The invoice\n" +
			"amount must lie within the printed range.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offer, err := appCtx.Withdraw.Prepare(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "description: %s\nwithdrawable: %d..%d msat\n",
				offer.DefaultDescription, offer.MinWithdrawable, offer.MaxWithdrawable)
			if pr == "" {
				return nil
			}
			err = appCtx.Withdraw.Withdraw(cmd.Context(), domain.WithdrawCallbackParams{
				K1:             offer.K1,
				Callback:       offer.Callback,
				PaymentRequest: pr,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "withdrawal requested")
			return nil
		},
	}
	cmd.Flags().StringVar(&pr, "pr", "", "BOLT11 invoice for the service to pay")
	return cmd
}

func channelCmd() *cobra.Command {
	var (
		nodeID  string
		private bool
		cancel  bool
	)
	cmd := &cobra.Command{
		Use:   "channel <lnurl>",
		Short: "Fetch an LNURL-channel offer and request the channel",
		Long: "Connect to the printed node URI before the request is sent; the\n" +
			"service opens the channel to --node-id.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offer, err := appCtx.Channel.Prepare(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "node: %s\n", offer.URI)
			if nodeID == "" {
				return nil
			}
			err = appCtx.Channel.Request(cmd.Context(), domain.ChannelRequestParams{
				K1:          offer.K1,
				Callback:    offer.Callback,
				LocalNodeID: nodeID,
				IsPrivate:   private,
				Cancel:      cancel,
			})
			if err != nil {
				return err
			}
			if cancel {
				fmt.Fprintln(out, "channel request cancelled")
			} else {
				fmt.Fprintln(out, "channel requested")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&nodeID, "node-id", "", "local node public key; without it only the offer is printed")
	cmd.Flags().BoolVar(&private, "private", false, "request a private channel")
	cmd.Flags().BoolVar(&cancel, "cancel", false, "cancel the request")
	return cmd
}
