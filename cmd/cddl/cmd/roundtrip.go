package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cddlparser "github.com/tidoust/cddlparser"
)

var (
	roundtripCmd = &cobra.Command{
		Use:   "roundtrip <file.cddl>",
		Short: "Parse a CDDL document and re-serialize it, verifying the output matches the input byte for byte",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("exactly one file argument is required")
			}

			contents, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			source := string(contents)

			tree, err := cddlparser.Parse(source)
			if err != nil {
				return err
			}

			out := tree.Serialize(nil)
			if out != source {
				return fmt.Errorf("re-serialized output does not match input (%d bytes vs %d bytes)", len(out), len(source))
			}

			log.Info("round-trip matches byte for byte")
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(roundtripCmd)
}
