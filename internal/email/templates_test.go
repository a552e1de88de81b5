package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTemplatesRender(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.Render(TemplateVerification, TemplateData{"Link": "https://example.com/verifymail/abc"})
	require.NoError(t, err)
	assert.Contains(t, html, "https://example.com/verifymail/abc")

	html, err = tm.Render(TemplatePasswordReset, TemplateData{"Link": "https://example.com/resetpassword/abc"})
	require.NoError(t, err)
	assert.Contains(t, html, "https://example.com/resetpassword/abc")
}

func TestRenderUnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()

	_, err := tm.Render("missing", TemplateData{})
	assert.Error(t, err)
}

func TestAddTemplateOverride(t *testing.T) {
	tm := NewTemplateManager()
	require.NoError(t, tm.AddTemplate(TemplateVerification, `custom {{.Link}}`))

	html, err := tm.Render(TemplateVerification, TemplateData{"Link": "x"})
	require.NoError(t, err)
	assert.Equal(t, "custom x", html)
}

func TestTemplateNamesIncludeBuiltins(t *testing.T) {
	tm := NewTemplateManager()
	names := tm.TemplateNames()
	assert.Contains(t, names, TemplateVerification)
	assert.Contains(t, names, TemplatePasswordReset)
}
