package main

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/arloliu/emoji256/internal/pool"
)

func newDecodeCmd(a *app) *cobra.Command {
	var ignoreNewlines bool

	cmd := &cobra.Command{
		Use:   "decode [text...]",
		Short: "Decode emoji256 arguments, or stdin when none are given",
		Example: `  emoji256 decode 💢💟💸💟
  emoji256 encode < key.bin | emoji256 decode > key.copy`,
		RunE: func(_ *cobra.Command, args []string) error {
			return a.decode(args, ignoreNewlines)
		},
	}

	cmd.Flags().BoolVar(&ignoreNewlines, "ignore-newlines", true, "strip \\r and \\n from the input before decoding")

	return cmd
}

func (a *app) decode(args []string, ignoreNewlines bool) error {
	c, err := a.codec()
	if err != nil {
		return err
	}

	in := pool.GetBuffer()
	defer pool.PutBuffer(in)

	if err := a.readInput(in, args, ""); err != nil {
		return err
	}

	src := in.Bytes()
	if ignoreNewlines {
		src = stripNewlines(src)
	}

	out := pool.GetBuffer()
	defer pool.PutBuffer(out)

	out.B, err = c.AppendDecode(out.B, src)
	if err != nil {
		return err
	}
	a.logger.Printf("decoded %d bytes", out.Len())

	_, err = out.WriteTo(a.outWriter)

	return err
}

// stripNewlines removes every \r and \n from p in place and returns the shortened slice.
func stripNewlines(p []byte) []byte {
	if bytes.IndexAny(p, "\r\n") < 0 {
		return p
	}

	n := 0
	for _, b := range p {
		if b == '\r' || b == '\n' {
			continue
		}
		p[n] = b
		n++
	}

	return p[:n]
}
