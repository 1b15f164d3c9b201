package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizardwars/engine/internal/content"
	engerr "github.com/wizardwars/engine/internal/errors"
	"github.com/wizardwars/engine/internal/testutils"
)

func loadValid(t *testing.T) *content.Store {
	t.Helper()
	dir := testutils.CreateTestContentDir(t, testutils.ValidContentFiles())
	store, err := content.Load(&content.LoadConfig{Dir: dir})
	require.NoError(t, err)
	return store
}

func TestLoad_ValidContent(t *testing.T) {
	store := loadValid(t)

	counts := store.Counts()
	assert.Equal(t, 2, counts[content.CategoryTile])
	assert.Equal(t, 1, counts[content.CategoryProp])
	assert.Equal(t, 1, counts[content.CategoryBiome])
	assert.Equal(t, 2, counts[content.CategoryArchetype])
	assert.Equal(t, 2, counts[content.CategorySpell])

	biome, err := store.Biome("moonlit_glade")
	require.NoError(t, err)
	assert.Equal(t, "Moonlit Glade", biome.Label)
	assert.InDelta(t, 24.0, biome.RadiusTiles, 0.001)
	require.Len(t, biome.BaseTiles, 2)
	assert.Equal(t, "grass", biome.BaseTiles[0].ID)
	assert.InDelta(t, 0.9, biome.BaseTiles[0].Weight, 0.001)

	tile, err := store.Tile("water")
	require.NoError(t, err)
	assert.False(t, tile.Walkable)

	prop, err := store.Prop("shrine")
	require.NoError(t, err)
	assert.Equal(t, []int{0, -4}, prop.Offset)

	arch, err := store.Archetype("sage")
	require.NoError(t, err)
	assert.Equal(t, 40, arch.Health)
	assert.Equal(t, []string{"moonbeam"}, arch.Spells)

	spell, err := store.Spell("ember_coil")
	require.NoError(t, err)
	assert.Equal(t, 20, spell.ManaCost)
	assert.Equal(t, "coil", spell.Effect["kind"])

	assert.Equal(t, []string{"npc_wizard", "sage"}, store.ArchetypeIDs())
}

func TestLoad_EveryArchetypeHasFallback(t *testing.T) {
	store := loadValid(t)

	for _, id := range store.ArchetypeIDs() {
		line, err := store.FallbackLine(id, "anything_at_all")
		require.NoError(t, err, "archetype %s", id)
		assert.NotEmpty(t, line)
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(files map[string]string)
		wantCode engerr.Code
	}{
		{
			name: "duplicate archetype id across files",
			mutate: func(files map[string]string) {
				files["more_characters.yaml"] = `
archetypes:
  - id: npc_wizard
    label: Impostor
    health: 10
    mana: 10
    dialogue:
      default: "I am also here."
`
			},
			wantCode: engerr.CodeDuplicateID,
		},
		{
			name: "duplicate spell id in one file",
			mutate: func(files map[string]string) {
				files["spells.yaml"] = `
spells:
  - id: moonbeam
    mana_cost: 12
  - id: moonbeam
    mana_cost: 9
  - id: ember_coil
    mana_cost: 20
`
			},
			wantCode: engerr.CodeDuplicateID,
		},
		{
			name: "archetype references unknown spell",
			mutate: func(files map[string]string) {
				files["characters.yaml"] = `
archetypes:
  - id: sage
    label: The Sage
    health: 40
    mana: 120
    spells: [comet_call]
    dialogue:
      default: "Hmm."
`
			},
			wantCode: engerr.CodeUnresolvedReference,
		},
		{
			name: "biome references unknown tile",
			mutate: func(files map[string]string) {
				files["world/biomes.yaml"] = `
biomes:
  - id: moonlit_glade
    radius_tiles: 24
    base_tiles:
      - [lava, 1.0]
`
			},
			wantCode: engerr.CodeUnresolvedReference,
		},
		{
			name: "biome references unknown prop",
			mutate: func(files map[string]string) {
				files["world/biomes.yaml"] = `
biomes:
  - id: moonlit_glade
    radius_tiles: 24
    base_tiles:
      - [grass, 1.0]
    deco_tiles:
      - [obelisk, 0.1]
`
			},
			wantCode: engerr.CodeUnresolvedReference,
		},
		{
			name: "archetype without any dialogue line",
			mutate: func(files map[string]string) {
				files["characters.yaml"] = `
archetypes:
  - id: sage
    label: The Sage
    health: 40
    mana: 120
    spells: [moonbeam]
`
			},
			wantCode: engerr.CodeMissingFallbackLine,
		},
		{
			name: "archetype with only blank dialogue lines",
			mutate: func(files map[string]string) {
				files["characters.yaml"] = `
archetypes:
  - id: sage
    health: 40
    mana: 120
    dialogue:
      greet:
        - "   "
        - ""
`
			},
			wantCode: engerr.CodeMissingFallbackLine,
		},
		{
			name: "record without id",
			mutate: func(files map[string]string) {
				files["spells.yaml"] = `
spells:
  - label: Nameless
    mana_cost: 4
  - id: moonbeam
    mana_cost: 12
  - id: ember_coil
    mana_cost: 20
`
			},
			wantCode: engerr.CodeSchemaViolation,
		},
		{
			name: "tile without template",
			mutate: func(files map[string]string) {
				files["world/tiles.yaml"] = `
ground_tiles:
  - id: grass
  - id: water
    template: tiles/water.json
decor_tiles:
  - id: shrine
    template: props/shrine.json
`
			},
			wantCode: engerr.CodeSchemaViolation,
		},
		{
			name: "biome with non-positive radius",
			mutate: func(files map[string]string) {
				files["world/biomes.yaml"] = `
biomes:
  - id: moonlit_glade
    radius_tiles: 0
    base_tiles:
      - [grass, 1.0]
`
			},
			wantCode: engerr.CodeSchemaViolation,
		},
		{
			name: "biome with non-positive weight",
			mutate: func(files map[string]string) {
				files["world/biomes.yaml"] = `
biomes:
  - id: moonlit_glade
    radius_tiles: 24
    base_tiles:
      - [grass, 0]
`
			},
			wantCode: engerr.CodeSchemaViolation,
		},
		{
			name: "archetype with non-positive health",
			mutate: func(files map[string]string) {
				files["characters.yaml"] = `
archetypes:
  - id: sage
    health: 0
    mana: 120
    dialogue:
      default: "Hmm."
`
			},
			wantCode: engerr.CodeSchemaViolation,
		},
		{
			name: "unparseable file",
			mutate: func(files map[string]string) {
				files["broken.yaml"] = "archetypes: [{{nope"
			},
			wantCode: engerr.CodeSchemaViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := testutils.ValidContentFiles()
			tt.mutate(files)
			dir := testutils.CreateTestContentDir(t, files)

			store, err := content.Load(&content.LoadConfig{Dir: dir})
			require.Error(t, err)
			assert.Nil(t, store, "failed load must not expose a partial index")
			assert.Equal(t, tt.wantCode, engerr.GetCode(err))
			assert.True(t, engerr.IsLoadError(err))
		})
	}
}

func TestLoad_DuplicateErrorNamesBothFiles(t *testing.T) {
	files := testutils.ValidContentFiles()
	files["zz_characters.yaml"] = `
archetypes:
  - id: npc_wizard
    health: 5
    mana: 5
    dialogue:
      default: "Again?"
`
	dir := testutils.CreateTestContentDir(t, files)

	_, err := content.Load(&content.LoadConfig{Dir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "npc_wizard")

	meta := engerr.GetMeta(err)
	require.NotNil(t, meta)
	assert.Equal(t, "npc_wizard", meta["id"])
	assert.Equal(t, "archetype", meta["category"])
	assert.Contains(t, meta["file"], "zz_characters.yaml")
	assert.Contains(t, meta["first_file"], "characters.yaml")
}

func TestLoad_JSONDocument(t *testing.T) {
	files := testutils.ValidContentFiles()
	files["extra_spells.json"] = `{
  "spells": [
    {"id": "gale_step", "label": "Gale Step", "mana_cost": 6}
  ]
}`
	dir := testutils.CreateTestContentDir(t, files)

	store, err := content.Load(&content.LoadConfig{Dir: dir})
	require.NoError(t, err)

	spell, err := store.Spell("gale_step")
	require.NoError(t, err)
	assert.Equal(t, 6, spell.ManaCost)
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := content.Load(&content.LoadConfig{Dir: "does/not/exist"})
	assert.Error(t, err)

	_, err = content.Load(nil)
	assert.Error(t, err)
}

func TestStore_LookupNotFound(t *testing.T) {
	store := loadValid(t)

	_, err := store.Archetype("lich")
	require.Error(t, err)
	assert.True(t, engerr.IsNotFound(err))

	_, err = store.Lookup(content.CategorySpell, "comet_call")
	require.Error(t, err)
	assert.True(t, engerr.IsNotFound(err))

	_, err = store.Lookup(content.Category("nonsense"), "x")
	require.Error(t, err)
	assert.Equal(t, engerr.CodeInvalidArgument, engerr.GetCode(err))
}

func TestStore_LookupByCategory(t *testing.T) {
	store := loadValid(t)

	record, err := store.Lookup(content.CategoryArchetype, "sage")
	require.NoError(t, err)
	arch, ok := record.(*content.CharacterArchetype)
	require.True(t, ok)
	assert.Equal(t, "The Sage", arch.Label)
}

func TestStore_FallbackLine(t *testing.T) {
	store := loadValid(t)

	// Exact trigger match
	line, err := store.FallbackLine("sage", "greet")
	require.NoError(t, err)
	assert.Equal(t, "The stars are unusually quiet tonight.", line)

	// Unknown trigger falls back to the archetype default
	line, err = store.FallbackLine("sage", "taunt")
	require.NoError(t, err)
	assert.Equal(t, "Walk softly among the wards.", line)

	// Scalar dialogue form
	line, err = store.FallbackLine("npc_wizard", "greet")
	require.NoError(t, err)
	assert.Equal(t, "Mind the third step of the sanctum stair.", line)

	_, err = store.FallbackLine("lich", "greet")
	assert.True(t, engerr.IsNotFound(err))
}

func TestStore_FallbackLineDeterministic(t *testing.T) {
	files := testutils.ValidContentFiles()
	files["characters.yaml"] = `
archetypes:
  - id: sage
    health: 40
    mana: 120
    dialogue:
      greet:
        - "First counsel."
        - "Second counsel."
        - "Third counsel."
  - id: npc_wizard
    health: 30
    mana: 80
    dialogue:
      default: "Steady."
`
	dir := testutils.CreateTestContentDir(t, files)
	store, err := content.Load(&content.LoadConfig{Dir: dir})
	require.NoError(t, err)

	first, err := store.FallbackLine("sage", "greet")
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		line, err := store.FallbackLine("sage", "greet")
		require.NoError(t, err)
		assert.Equal(t, first, line, "selection must be stable for the same trigger")
	}

	// Different triggers may select different lines but each is stable
	other, err := store.FallbackLine("sage", "farewell")
	require.NoError(t, err)
	again, err := store.FallbackLine("sage", "farewell")
	require.NoError(t, err)
	assert.Equal(t, other, again)
}
