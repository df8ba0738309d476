package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bitkitcore/internal/domain"
)

func invoiceCmd() *cobra.Command {
	var (
		comment string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "invoice <user@domain> <sats>",
		Short: "Request a BOLT11 invoice from a Lightning Address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sats, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a whole number of sats", domain.ErrInvalidAmount, args[1])
			}
			var inv domain.LightningAddressInvoice
			if comment == "" {
				inv, err = appCtx.Pay.GetLightningAddressInvoice(cmd.Context(), args[0], sats)
			} else {
				inv.Address, inv.AmountSatoshis = args[0], sats
				inv.Invoice, err = appCtx.Pay.GetInvoiceWithComment(cmd.Context(), args[0], sats, comment)
			}
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(inv)
			}
			fmt.Fprintln(cmd.OutOrStdout(), inv.Invoice)
			return nil
		},
	}
	cmd.Flags().StringVar(&comment, "comment", "", "LUD-12 comment, truncated to what the service allows")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print address, amount and invoice as JSON")
	return cmd
}
