package config

import (
	"testing"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/stretchr/testify/require"

	"github.com/tidewm/tide/internal/shell"
)

func TestDefaultConfigScrollFactorFallsBackToOne(t *testing.T) {
	c := &DefaultConfig
	require.Equal(t, 1.0, c.ScrollFactor("unknown-device"))
}

func TestConfigScrollFactorHonorsOverride(t *testing.T) {
	c := &Config{Input: InputConfig{ScrollFactors: map[string]float64{"mouse0": 2.5}}}
	require.Equal(t, 2.5, c.ScrollFactor("mouse0"))
	require.Equal(t, 1.0, c.ScrollFactor("mouse1"))
}

func TestLayoutDefaultsToHorizontal(t *testing.T) {
	c := &Config{WorkspaceLayout: "bogus"}
	require.Equal(t, shell.WorkspaceLayoutHorizontal, c.Layout())

	c.WorkspaceLayout = "vertical"
	require.Equal(t, shell.WorkspaceLayoutVertical, c.Layout())
}

func TestKeyBindingsResolvesDefaultSet(t *testing.T) {
	c := &Config{Bindings: DefaultBindings()}
	bindings := c.KeyBindings()
	require.Len(t, bindings, len(DefaultBindings()))

	foundClose := false
	for _, b := range bindings {
		if b.Action.Kind == shell.ActionClose {
			require.True(t, b.Pattern.Modifiers.Logo)
			require.Equal(t, uint32(evdev.KEY_Q), b.Pattern.Key)
			foundClose = true
		}
	}
	require.True(t, foundClose, "expected the default Logo+Q close binding to resolve")
}

func TestKeyBindingsSkipsUnrecognizedRows(t *testing.T) {
	c := &Config{Bindings: []BindingConfig{
		{Modifiers: []string{"logo"}, Key: "nonsense-key", Action: "close"},
		{Modifiers: []string{"logo"}, Key: "q", Action: "nonsense-action"},
		{Modifiers: []string{"logo"}, Key: "q", Action: "close"},
	}}
	bindings := c.KeyBindings()
	require.Len(t, bindings, 1)
	require.Equal(t, shell.ActionClose, bindings[0].Action.Kind)
}

func TestKeyBindingsResolvesWorkspaceArgument(t *testing.T) {
	c := &Config{Bindings: []BindingConfig{
		{Modifiers: []string{"logo"}, Key: "5", Action: "workspace", Workspace: 5},
	}}
	bindings := c.KeyBindings()
	require.Len(t, bindings, 1)
	require.Equal(t, 5, bindings[0].Action.Workspace)
}
