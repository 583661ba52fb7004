package display

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Table renders rows under header as a pterm table
func Table(w io.Writer, header []string, rows [][]string) error {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// KeyValues renders two-column label/value pairs without a header
func KeyValues(w io.Writer, pairs [][2]string) error {
	data := make(pterm.TableData, 0, len(pairs))
	for _, p := range pairs {
		data = append(data, []string{pterm.Gray(p[0]), p[1]})
	}

	out, err := pterm.DefaultTable.WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// Success prints a success line to w
func Success(w io.Writer, format string, args ...interface{}) {
	pterm.Success.WithWriter(w).Printfln(format, args...)
}

// Info prints an informational line to w
func Info(w io.Writer, format string, args ...interface{}) {
	pterm.Info.WithWriter(w).Printfln(format, args...)
}

// Warning prints a warning line to w
func Warning(w io.Writer, format string, args ...interface{}) {
	pterm.Warning.WithWriter(w).Printfln(format, args...)
}

// Highlight colors a value for inline use in human output
func Highlight(s string) string {
	return pterm.LightCyan(s)
}

// Muted colors secondary text
func Muted(s string) string {
	return pterm.Gray(s)
}
