package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// recipient <identity-file>: print the public "age1..." recipient so other
// devices or people can encrypt to the identity.
func recipientCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recipient <identity-file>",
		Short: "Print the age recipient (public key) of an identity file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rcpt, err := appCtx.IDs.Recipient(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rcpt)
			return nil
		},
	}
}
