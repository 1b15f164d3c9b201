package dialogue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wizardwars/engine/internal/dialogue"
)

func TestToggle(t *testing.T) {
	toggle := dialogue.NewToggle(false)
	assert.False(t, toggle.Get())

	toggle.Set(true)
	assert.True(t, toggle.Get())

	toggle.Set(false)
	assert.False(t, toggle.Get())
}
