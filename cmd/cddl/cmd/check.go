package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cddlparser "github.com/tidoust/cddlparser"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check <file.cddl>...",
		Short: "Validate one or more CDDL documents, reporting any syntax or classification errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New("at least one file argument is required")
			}

			failed := 0
			for _, path := range args {
				contents, err := os.ReadFile(path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					failed++
					continue
				}
				if _, err := cddlparser.Parse(string(contents)); err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					failed++
					continue
				}
				log.Debugf("%s: ok", path)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d document(s) failed validation", failed, len(args))
			}
			fmt.Printf("%d document(s) valid\n", len(args))
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(checkCmd)
}
