package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

// captureOutput redirects a command's output to a buffer while fn runs.
func captureOutput(t *testing.T, cmd *cobra.Command, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	fn()
	return buf.String()
}
