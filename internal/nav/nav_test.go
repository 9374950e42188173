package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdraksharam/portfolio/internal/dom"
)

func TestToggleOpensAndCloses(t *testing.T) {
	doc, err := dom.ParseString(`<html><body>
<button class="nav-toggle"></button>
<nav class="main-nav"><a href="#about">About</a></nav>
</body></html>`)
	require.NoError(t, err)

	c := Mount(doc)
	require.NotNil(t, c)
	assert.False(t, c.Open())

	btn := doc.First(ToggleClass)
	doc.Click(btn)
	assert.True(t, c.Open())
	assert.True(t, dom.HasClass(doc.First(MenuClass), OpenClass))

	doc.Click(btn)
	assert.False(t, c.Open())
	assert.Equal(t, []string{"main-nav"}, dom.Classes(doc.First(MenuClass)))
}

func TestMissingElementsAreNoop(t *testing.T) {
	for _, src := range []string{
		`<html><body><nav class="main-nav"></nav></body></html>`,
		`<html><body><button class="nav-toggle"></button></body></html>`,
	} {
		doc, err := dom.ParseString(src)
		require.NoError(t, err)

		c := Mount(doc)
		assert.Nil(t, c)
		assert.NotPanics(t, c.Toggle)
		assert.False(t, c.Open())
	}
}
