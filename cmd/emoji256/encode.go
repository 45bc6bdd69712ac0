package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/emoji256/alphabet"
	"github.com/arloliu/emoji256/internal/pool"
)

func newEncodeCmd(a *app) *cobra.Command {
	var wrap int

	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode arguments, or stdin when none are given, as emoji256",
		Example: `  emoji256 encode kiwi
  head -c 32 /dev/urandom | emoji256 encode --wrap 16`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("wrap") {
				a.cfg.Wrap = wrap
			}
			if a.cfg.Wrap < 0 {
				return fmt.Errorf("invalid wrap width: %d", a.cfg.Wrap)
			}

			return a.encode(args)
		},
	}

	cmd.Flags().IntVarP(&wrap, "wrap", "w", 0, "symbols per output line (0 = no wrapping)")

	return cmd
}

func (a *app) encode(args []string) error {
	c, err := a.codec()
	if err != nil {
		return err
	}

	in := pool.GetBuffer()
	defer pool.PutBuffer(in)

	if err := a.readInput(in, args, " "); err != nil {
		return err
	}

	out := pool.GetBuffer()
	defer pool.PutBuffer(out)

	out.B = c.AppendEncode(out.B, in.Bytes())
	a.logger.Printf("encoded %d bytes into %d symbols", in.Len(), out.Len()/alphabet.SymbolLen)

	return writeWrapped(a.outWriter, out.Bytes(), a.cfg.Wrap*alphabet.SymbolLen)
}

// readInput fills buf with args joined by sep, or with all of stdin when args is empty.
func (a *app) readInput(buf *pool.ByteBuffer, args []string, sep string) error {
	if len(args) > 0 {
		_, err := buf.Write([]byte(strings.Join(args, sep)))
		return err
	}

	if _, err := buf.ReadFrom(a.inReader); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	a.logger.Printf("read %d bytes from stdin", buf.Len())

	return nil
}

// writeWrapped writes data to w with a newline after every width bytes and
// always ends the output with a newline. A width of 0 writes a single line.
func writeWrapped(w io.Writer, data []byte, width int) error {
	if width <= 0 {
		width = len(data)
	}

	for len(data) > width {
		if _, err := w.Write(data[:width]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		data = data[width:]
	}

	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")

	return err
}
