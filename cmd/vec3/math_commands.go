package main

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/vec3/vector"
)

func newDotCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "dot <left> <right>",
		Short:   "Print the dot product of two vectors",
		Example: `  vec3 dot "{1 0 0}" "{1 1 0}"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseVectors(args)
			if err != nil {
				return err
			}
			cd, err := ctx.codec()
			if err != nil {
				return err
			}
			return writeResult(cmd, cd, result{
				Op:     "dot",
				Args:   vs,
				Result: vector.Dot(vs[0], vs[1]),
			})
		},
	}
}

func newCrossCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "cross <left> <right>",
		Short:   "Print the cross product of two vectors",
		Example: `  vec3 cross "{1 0 0}" "{0 1 0}"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseVectors(args)
			if err != nil {
				return err
			}
			cd, err := ctx.codec()
			if err != nil {
				return err
			}
			return writeResult(cmd, cd, result{
				Op:     "cross",
				Args:   vs,
				Result: vector.Cross(vs[0], vs[1]),
			})
		},
	}
}
