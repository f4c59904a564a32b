package main

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/vec3/strutil"
)

func newEqualCommand(ctx *commandContext) *cobra.Command {
	var fold bool

	cmd := &cobra.Command{
		Use:   "equal <a> <b>",
		Short: "Compare two strings ignoring case",
		Long: "Compare two strings ignoring case.\n\n" +
			"By default only ASCII letters are folded. --unicode applies full Unicode case folding.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cd, err := ctx.codec()
			if err != nil {
				return err
			}
			op, eq := "equal_ignore_case", strutil.EqualIgnoreCase(args[0], args[1])
			if fold {
				op, eq = "equal_fold", strutil.EqualFold(args[0], args[1])
			}
			return writeResult(cmd, cd, result{
				Op:     op,
				Text:   args,
				Result: eq,
			})
		},
	}

	cmd.Flags().BoolVar(&fold, "unicode", false, "Use full Unicode case folding")
	return cmd
}
