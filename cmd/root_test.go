package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, Version, strings.TrimSpace(out.String()))
}

func TestRootFlags(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"process", "history", "no-ui", "dry-run"} {
		assert.NotNil(t, root.Flags().Lookup(name), "missing flag %s", name)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}
