package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// stdinArg selects reading the passphrase from stdin.
const stdinArg = "-"

// readPassphrase returns arg, or the first line of stdin when arg is "-".
func readPassphrase(cmd *cobra.Command, arg string) (string, error) {
	if arg != stdinArg {
		return arg, nil
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading passphrase from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
