package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	editTitle, editContent, editTags, editClearTags = "", "", nil, false

	cmd := &cobra.Command{Use: "edit"}
	cmd.Flags().StringVar(&editTitle, "title", "", "")
	cmd.Flags().StringVar(&editContent, "content", "", "")
	cmd.Flags().StringArrayVar(&editTags, "tag", nil, "")
	cmd.Flags().BoolVar(&editClearTags, "clear-tags", false, "")
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestPatchFromFlags(t *testing.T) {
	t.Run("nothing set", func(t *testing.T) {
		p := patchFromFlags(newEditFlags(t))
		assert.True(t, p.IsEmpty())
	})

	t.Run("explicit empty title is kept", func(t *testing.T) {
		p := patchFromFlags(newEditFlags(t, "--title", ""))
		require.NotNil(t, p.Title)
		assert.Equal(t, "", *p.Title)
		assert.Nil(t, p.Content)
		assert.Nil(t, p.Tags)
	})

	t.Run("tags replace the list", func(t *testing.T) {
		p := patchFromFlags(newEditFlags(t, "--tag", "Work", "--tag", "Ideas"))
		require.NotNil(t, p.Tags)
		assert.Equal(t, []string{"Work", "Ideas"}, *p.Tags)
	})

	t.Run("clear tags wins", func(t *testing.T) {
		p := patchFromFlags(newEditFlags(t, "--tag", "Work", "--clear-tags"))
		require.NotNil(t, p.Tags)
		assert.Empty(t, *p.Tags)
	})
}
