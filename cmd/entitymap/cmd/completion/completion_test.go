package completion

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionScripts(t *testing.T) {
	for _, sh := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(sh, func(t *testing.T) {
			root := &cobra.Command{Use: "entitymap"}
			root.AddCommand(&cobra.Command{Use: "dashboard", Run: func(*cobra.Command, []string) {}})
			root.AddCommand(NewCommand())

			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs([]string{"completion", sh})
			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), "entitymap")
		})
	}
}
