package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Actions(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionTap},
		{"enter", ActionTap},
		{"h", ActionHold},
		{"esc", ActionBack},
		{"t", ActionTestAlert},
		{"m", ActionMosque},
		{"z", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			b, _ := r.Lookup(tt.key)
			assert.Equal(t, tt.want, b.Action)
		})
	}
}

func TestResolver_Lookup(t *testing.T) {
	r := NewResolver(Bindings)

	b, ok := r.Lookup("o")
	require.True(t, ok)
	assert.Equal(t, ActionRotate, b.Action)
	assert.Equal(t, "global", b.Context)

	_, ok = r.Lookup("unbound")
	assert.False(t, ok)
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionTap, []string{"enter"}, "Tap", "touch"},
		{ActionBack, []string{"enter"}, "Back", "settings"},
	})
	b, ok := r.Lookup("enter")
	require.True(t, ok)
	assert.Equal(t, ActionBack, b.Action)
}

func TestResolver_EmptyBindings(t *testing.T) {
	_, ok := NewResolver(nil).Lookup("q")
	assert.False(t, ok)
}
