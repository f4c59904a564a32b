package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vec3"
	"github.com/hupe1980/vec3/strutil"
	"github.com/hupe1980/vec3/vector"
)

func newHelloCommand(ctx *commandContext) *cobra.Command {
	var viaHandles bool

	cmd := &cobra.Command{
		Use:   "hello",
		Short: "Print the sample cross product",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !viaHandles {
				c := vector.Cross(vector.New(1, 0, 0), vector.New(0, 1, 0))
				_, err := fmt.Fprintf(out, "Vector3d::cross({{{1, 0, 0}}}, {{{0, 1, 0}}}) = %s\n", strutil.ToString(c))
				return err
			}

			reg, err := ctx.registry(cmd)
			if err != nil {
				return err
			}
			d, err := helloHandles(reg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "Vector3d::dot({{{1, 0, 0}}}, {{{1, 1, 0}}}) = %f\n", d)
			return err
		},
	}

	cmd.Flags().BoolVar(&viaHandles, "handles", false, "Go through the handle registry like a foreign caller")
	return cmd
}

// helloHandles mirrors what a C caller of the shared library does: create
// two vectors, dot them, release both.
func helloHandles(reg *vec3.Registry) (float64, error) {
	a, err := reg.Create(1, 0, 0)
	if err != nil {
		return 0, err
	}
	b, err := reg.Create(1, 1, 0)
	if err != nil {
		return 0, errors.Join(err, reg.Destroy(a))
	}

	d, err := reg.Dot(a, b)
	return d, errors.Join(err, reg.Destroy(a), reg.Destroy(b))
}
