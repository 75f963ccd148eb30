package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	t.Run("renders emphasis", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("Um drama **curto**")
		require.NoError(t, err)
		assert.Contains(t, out, "<strong>curto</strong>")
	})

	t.Run("strips scripts", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("hi <script>alert(1)</script>")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
	})

	t.Run("empty input", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("   ")
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestPlainText(t *testing.T) {
	svc := NewMarkdownService()

	assert.Equal(t, "proof.png", svc.PlainText(" <b>proof.png</b> "))
	assert.Equal(t, "", svc.PlainText("<img src=x onerror=alert(1)>"))
	assert.Equal(t, "Ana & Bia", svc.PlainText("Ana & Bia"))
	assert.Equal(t, "view?id=42&sig=abc", svc.PlainText("view?id=42&sig=abc"))
}
