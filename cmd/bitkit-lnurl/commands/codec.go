package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bitkitcore/internal/lnurl"
)

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <lnurl>",
		Short: "Print the URL an LNURL refers to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := lnurl.Decode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.String())
			if tag, ok := lnurl.TagHint(args[0]); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "tag: %s\n", tag)
			}
			return nil
		},
	}
}

func encodeCmd() *cobra.Command {
	var lower bool
	cmd := &cobra.Command{
		Use:   "encode <url>",
		Short: "Encode an http(s) URL as a bech32 LNURL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encode := lnurl.Encode
			if lower {
				encode = lnurl.EncodeLower
			}
			s, err := encode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().BoolVar(&lower, "lower", false, "print lower case instead of the QR friendly upper case")
	return cmd
}

func addressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address <user@domain>",
		Short: "Validate a Lightning Address and print its LNURL-pay URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := lnurl.ParseLightningAddress(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", a, a.URL(settings.PlainHTTP))
			return nil
		},
	}
}
