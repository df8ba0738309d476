package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func authCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth <lnurl>",
		Short: "Log in to an LNURL-auth service with the stored hashing key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := readPassphrase(false)
			if err != nil {
				return err
			}
			msg, err := appCtx.Auth.Login(cmd.Context(), pass, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func loginsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logins",
		Short: "List services logged into with LNURL-auth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := appCtx.Logins.ListLogins()
			if err != nil {
				return err
			}
			for _, r := range recs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", r.At.Local().Format("2006-01-02 15:04"), r.Domain, r.LinkingKey)
			}
			return nil
		},
	}
}
