package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/psalmos/web/internal/shell"
)

func TestParseView(t *testing.T) {
	t.Run("known views parse to themselves", func(t *testing.T) {
		for _, v := range shell.Views() {
			parsed, ok := shell.ParseView(v.String())
			assert.True(t, ok, "view %q should parse", v)
			assert.Equal(t, v, parsed)
		}
	})

	t.Run("unknown view falls back to home", func(t *testing.T) {
		parsed, ok := shell.ParseView("definitely-not-a-view")
		assert.False(t, ok)
		assert.Equal(t, shell.ViewHome, parsed)
	})

	t.Run("empty string falls back to home", func(t *testing.T) {
		parsed, ok := shell.ParseView("")
		assert.False(t, ok)
		assert.Equal(t, shell.ViewHome, parsed)
	})
}

func TestRegistryCoversEveryView(t *testing.T) {
	registry := shell.NewRegistry()

	for _, v := range shell.Views() {
		page, ok := registry[v]
		assert.True(t, ok, "view %q should have a registered page", v)
		assert.NotEmpty(t, page.Title, "view %q should have a title", v)
		assert.NotNil(t, page.Render, "view %q should have a render func", v)
	}
}

func TestRegistryLookupFallsBackToHome(t *testing.T) {
	registry := shell.NewRegistry()

	page := registry.Lookup(shell.View("bogus"))
	assert.Equal(t, registry[shell.ViewHome].Title, page.Title)
}

func TestProtectedViews(t *testing.T) {
	registry := shell.NewRegistry()

	protected := map[shell.View]bool{
		shell.ViewDashboard: true,
		shell.ViewSettings:  true,
		shell.ViewBilling:   true,
	}

	for _, v := range shell.Views() {
		assert.Equal(t, protected[v], registry[v].RequiresUser,
			"view %q gating mismatch", v)
	}
}
