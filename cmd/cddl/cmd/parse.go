package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	cddlparser "github.com/tidoust/cddlparser"
)

var (
	showTree bool

	parseCmd = &cobra.Command{
		Use:   "parse <file.cddl>",
		Short: "Parse a CDDL document and print its abstract syntax tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("exactly one file argument is required")
			}

			contents, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			tree, err := cddlparser.Parse(string(contents))
			if err != nil {
				return err
			}

			if showTree {
				repr.Println(tree)
				fmt.Println()
			}

			fmt.Println("rules:")
			for _, rule := range tree.Rules {
				kind := "group"
				if rule.IsTypeRule {
					kind = "type"
				}
				fmt.Printf("  %-24s %s\n", rule.Name.Name(), kind)
			}

			return nil
		},
	}
)

func init() {
	parseCmd.Flags().BoolVar(&showTree, "tree", cfg.Tree, "dump the full abstract syntax tree")
	rootCmd.AddCommand(parseCmd)
}
