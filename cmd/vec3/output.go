package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vec3/codec"
	"github.com/hupe1980/vec3/vector"
)

// result is the structured form of a computation.
type result struct {
	Op     string            `json:"op"`
	Args   []vector.Vector3d `json:"args,omitempty"`
	Text   []string          `json:"text,omitempty"`
	Result any               `json:"result"`
}

// writeResult prints the bare result for the text codec and the full record
// for structured codecs.
func writeResult(cmd *cobra.Command, cd codec.Codec, r result) error {
	var v any = r
	if _, ok := cd.(codec.Text); ok {
		v = r.Result
	}
	b, err := cd.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

func parseVectors(args []string) ([]vector.Vector3d, error) {
	out := make([]vector.Vector3d, len(args))
	for i, a := range args {
		v, err := vector.Parse(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
