package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMeta(t *testing.T) {
	t.Run("conventional keys", func(t *testing.T) {
		meta, err := DecodeMeta("title: Remote Setup\nparent: Guides\ngrand_parent: Docs\nnav_order: 3\n")
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, "Remote Setup", meta.Title)
		assert.Equal(t, "Guides", meta.Parent)
		assert.Equal(t, "Docs", meta.GrandParent)
		assert.Equal(t, 3, meta.NavOrder)
	})

	t.Run("unknown keys ignored", func(t *testing.T) {
		meta, err := DecodeMeta("title: Setup\nlayout: default\n")
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, "Setup", meta.Title)
	})

	t.Run("empty block yields nil", func(t *testing.T) {
		meta, err := DecodeMeta("  \n\t\n")
		require.NoError(t, err)
		assert.Nil(t, meta)
	})

	t.Run("undecodable block errors", func(t *testing.T) {
		meta, err := DecodeMeta("nav_order: not-a-number\n")
		require.Error(t, err)
		assert.Nil(t, meta)
	})
}
