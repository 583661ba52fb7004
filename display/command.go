// Package display renders command output for terminals and for --json.
package display

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// JSONEnvVar forces JSON output when set to a true value
const JSONEnvVar = "CONDAX_JSON"

// ShouldOutputJSON determines if a command should output JSON based on
// flags and the CONDAX_JSON environment variable
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return jsonFromEnv()
	}

	// explicit local flag wins, including --json=false
	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		on, _ := strconv.ParseBool(f.Value.String())
		return on
	}

	if globalFlag, err := cmd.Root().PersistentFlags().GetBool("json"); err == nil && globalFlag {
		return true
	}

	return jsonFromEnv()
}

func jsonFromEnv() bool {
	on, _ := strconv.ParseBool(os.Getenv(JSONEnvVar))
	return on
}

// OutputJSON marshals v with MarshalJSON and writes it to w
func OutputJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
