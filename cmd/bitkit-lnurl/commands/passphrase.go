package commands

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// readPassphrase returns -p when set, otherwise prompts on the terminal.
// confirm asks twice, for commands that create a key.
func readPassphrase(confirm bool) (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("passphrase required (-p)")
	}
	first, err := prompt(fd, "Passphrase: ")
	if err != nil {
		return "", err
	}
	if first == "" {
		return "", errors.New("empty passphrase")
	}
	if confirm {
		again, err := prompt(fd, "Repeat passphrase: ")
		if err != nil {
			return "", err
		}
		if again != first {
			return "", errors.New("passphrases do not match")
		}
	}
	return first, nil
}

func prompt(fd int, label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return string(b), nil
}
