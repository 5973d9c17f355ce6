package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"agekey/internal/app"
)

var (
	// version is set via -ldflags "-X agekey/cmd/agekey/commands.version=x.y.z".
	version = "dev"

	quiet  bool
	appCtx *app.App
)

// Execute runs the CLI with the default wiring.
func Execute() error {
	return newRootCmd(app.Config{}).Execute()
}

func newRootCmd(cfg app.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "agekey <passphrase> <output-path>",
		Short: "Derive a deterministic age identity from a passphrase",
		Long: `Derive an age X25519 identity from a passphrase and write it to a file.

The same passphrase yields the same identity on every device, so the key
never has to be copied between machines. The output file contains the
AGE-SECRET-KEY-1... line and is readable by its owner only.

Pass "-" as the passphrase to read it from stdin.`,
		Example: `  agekey "correct horse battery staple" ~/.claude-sync/age-key.txt
  echo "$PASSPHRASE" | agekey - ~/.claude-sync/age-key.txt`,
		Version: version,
		Args:    cobra.ExactArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid by now; further errors are not usage errors.
			cmd.SilenceUsage = true
			appCtx = app.New(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.IDs.Ready(); err != nil {
				return err
			}
			passphrase, err := readPassphrase(cmd, args[0])
			if err != nil {
				return err
			}
			path := args[1]
			if _, err := appCtx.IDs.Generate(passphrase, path); err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Key generated at %s\n", path)
			}
			return nil
		},
	}

	// Positional passphrases must not be captured by generated subcommands.
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress the success message")

	root.AddCommand(recipientCmd())
	return root
}
