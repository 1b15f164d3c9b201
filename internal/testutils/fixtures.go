package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestContentDir writes the given files (relative path -> body)
// under a fresh temp dir and returns its path
func CreateTestContentDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return dir
}

// ValidContentFiles returns a minimal content set that passes every load
// validation: one biome over two tiles and a prop, two archetypes with
// fallback dialogue, and the spells they reference.
func ValidContentFiles() map[string]string {
	return map[string]string{
		"world/tiles.yaml": `
ground_tiles:
  - id: grass
    template: tiles/grass.json
    walkable: true
  - id: water
    template: tiles/water.json
    walkable: false
decor_tiles:
  - id: shrine
    template: props/shrine.json
    offset: [0, -4]
`,
		"world/biomes.yaml": `
biomes:
  - id: moonlit_glade
    label: Moonlit Glade
    description: The calm outer ring of the sanctum.
    radius_tiles: 24
    music: glade_theme
    base_tiles:
      - [grass, 0.9]
      - [water, 0.1]
    deco_tiles:
      - [shrine, 0.05]
`,
		"characters.yaml": `
archetypes:
  - id: sage
    label: The Sage
    description: A patient keeper of old duels.
    health: 40
    mana: 120
    spells: [moonbeam]
    dialogue:
      greet:
        - "The stars are unusually quiet tonight."
      default:
        - "Walk softly among the wards."
  - id: npc_wizard
    label: Wandering Wizard
    health: 30
    mana: 80
    spells: [moonbeam, ember_coil]
    dialogue:
      default: "Mind the third step of the sanctum stair."
`,
		"spells.yaml": `
spells:
  - id: moonbeam
    label: Moonbeam
    mana_cost: 12
    cooldown: 1.5
    effect:
      kind: beam
      power: 7
  - id: ember_coil
    label: Ember Coil
    mana_cost: 20
    cooldown: 3.0
    effect:
      kind: coil
      power: 11
`,
	}
}
