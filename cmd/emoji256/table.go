package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/emoji256/alphabet"
)

const tableRowLen = 16

const (
	ansiCyan  = "\x1b[36m"
	ansiDim   = "\x1b[2m"
	ansiReset = "\x1b[0m"
)

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the byte to emoji table",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := a.codec()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(a.outWriter, formatTable(c.Table(), a.color))

			return err
		},
	}
}

// formatTable renders t as rows of tableRowLen symbols labelled with the first byte
// of the row, followed by the table fingerprint. With color set, the labels and the
// fingerprint line are wrapped in ANSI escapes.
func formatTable(t *alphabet.Table, color bool) string {
	paint := func(code, s string) string {
		if !color {
			return s
		}
		return code + s + ansiReset
	}

	var sb strings.Builder
	for row := 0; row < alphabet.Size; row += tableRowLen {
		sb.WriteString(paint(ansiCyan, fmt.Sprintf("0x%02x", row)))
		sb.WriteByte(' ')
		for col := 0; col < tableRowLen; col++ {
			sb.WriteRune(t.Rune(byte(row + col)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(paint(ansiDim, fmt.Sprintf("fingerprint: %016x", t.Fingerprint())))
	sb.WriteByte('\n')

	return sb.String()
}
