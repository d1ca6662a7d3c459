package cli

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	skyerrors "github.com/matzehuels/skyline/pkg/errors"
)

// configCommand creates the config command, which prints the effective
// configuration.
func (c *CLI) configCommand() *cobra.Command {
	var (
		flags  configFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Print the effective configuration as TOML.

The defaults are layered with --config and the override flags, validated,
and printed. Use -o to write a starting point for your own config file.`,
		Example: `  skyline config > skyline.toml
  skyline config -c skyline.toml --width 3840`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := cfg.Encode(&buf); err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := skyerrors.ValidatePath(output); err != nil {
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
				return skyerrors.Wrap(skyerrors.ErrCodeIO, err, "write %s", output)
			}
			printSuccess("Wrote configuration")
			printFile(output)
			loggerFromContext(cmd.Context()).Debug("config written", "path", output, "bytes", buf.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	flags.register(cmd)

	return cmd
}
