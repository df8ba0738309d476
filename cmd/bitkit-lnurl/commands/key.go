package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"

	"bitkitcore/internal/crypto"
	"bitkitcore/internal/domain"
	"bitkitcore/internal/services/auth"
)

func keyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the LNURL-auth hashing key",
	}
	cmd.AddCommand(keyInitCmd(), keyImportCmd(), keyShowCmd())
	return cmd
}

func keyInitCmd() *cobra.Command {
	var (
		words int
		force bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a recovery phrase and store its hashing key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bits := map[int]int{12: 128, 24: 256}[words]
			if bits == 0 {
				return fmt.Errorf("--words must be 12 or 24, got %d", words)
			}
			if err := refuseOverwrite(force); err != nil {
				return err
			}
			entropy, err := bip39.NewEntropy(bits)
			if err != nil {
				return err
			}
			defer crypto.Wipe(entropy)
			mnemonic, err := bip39.NewMnemonic(entropy)
			if err != nil {
				return err
			}
			hk, err := crypto.HashingKeyFromMnemonic(mnemonic, "")
			if err != nil {
				return err
			}
			if err := saveKey(hk); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Hashing key created.\nRecovery phrase (write it down):\n\n  %s\n\nFingerprint: %s\n",
				mnemonic, crypto.Fingerprint(hk[:]))
			return nil
		},
	}
	cmd.Flags().IntVar(&words, "words", 12, "recovery phrase length, 12 or 24")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing key")
	return cmd
}

func keyImportCmd() *cobra.Command {
	var (
		hexKey string
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "import [recovery phrase words...]",
		Short: "Store the hashing key of a BIP39 phrase or a raw hex key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (hexKey == "") == (len(args) == 0) {
				return errors.New("give either a recovery phrase or --hex")
			}
			if err := refuseOverwrite(force); err != nil {
				return err
			}
			var (
				hk  domain.HashingKey
				err error
			)
			if hexKey != "" {
				hk, err = crypto.ParseHashingKey(hexKey)
			} else {
				hk, err = crypto.HashingKeyFromMnemonic(strings.Join(args, " "), "")
			}
			if err != nil {
				return err
			}
			if err := saveKey(hk); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Hashing key imported.\nFingerprint: %s\n", crypto.Fingerprint(hk[:]))
			return nil
		},
	}
	cmd.Flags().StringVar(&hexKey, "hex", "", "raw 32-byte hashing key in hex")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing key")
	return cmd
}

func keyShowCmd() *cobra.Command {
	var serviceDomain string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the hashing key fingerprint, or the linking key for --domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := readPassphrase(false)
			if err != nil {
				return err
			}
			hk, err := appCtx.Keys.LoadHashingKey(pass)
			if err != nil {
				return err
			}
			defer crypto.Wipe(hk[:])

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fingerprint: %s\n", crypto.Fingerprint(hk[:]))
			if serviceDomain != "" {
				pub, err := auth.LinkingKey(hk, serviceDomain)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Linking key for %s: %s\n", serviceDomain, pub)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&serviceDomain, "domain", "", "service domain to derive the linking key for")
	return cmd
}

func refuseOverwrite(force bool) error {
	has, err := appCtx.Keys.HasHashingKey()
	if err != nil {
		return err
	}
	if has && !force {
		return errors.New("a hashing key already exists, use --force to replace it")
	}
	return nil
}

func saveKey(hk domain.HashingKey) error {
	defer crypto.Wipe(hk[:])
	pass, err := readPassphrase(true)
	if err != nil {
		return err
	}
	return appCtx.Keys.SaveHashingKey(pass, hk)
}
