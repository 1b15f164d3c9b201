package content

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	engerr "github.com/wizardwars/engine/internal/errors"
	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of one content file. A file may carry any
// subset of the category tables; the loader merges all files in the
// content directory before validating.
type document struct {
	GroundTiles []*TileDefinition     `yaml:"ground_tiles"`
	DecorTiles  []*PropDefinition     `yaml:"decor_tiles"`
	Biomes      []*BiomeDefinition    `yaml:"biomes"`
	Archetypes  []*CharacterArchetype `yaml:"archetypes"`
	Spells      []*SpellDefinition    `yaml:"spells"`
}

// LoadConfig holds configuration for a content load pass
type LoadConfig struct {
	Dir string // Required: content directory, walked recursively
}

// Load parses every content file under cfg.Dir, merges the category
// tables, and validates the result. The load is all-or-nothing: any
// validation failure discards the whole index and returns a load error
// carrying category, id, and file diagnostics.
func Load(cfg *LoadConfig) (*Store, error) {
	if cfg == nil || cfg.Dir == "" {
		return nil, engerr.InvalidArgument("content directory is required")
	}

	paths, err := contentFiles(cfg.Dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, engerr.SchemaViolationf("no content files found under '%s'", cfg.Dir)
	}

	b := newBuilder()
	for _, path := range paths {
		if err := b.mergeFile(path); err != nil {
			return nil, err
		}
	}

	return b.build()
}

// contentFiles returns every .yaml/.yml/.json file under dir in walk
// order, which is deterministic (lexical).
func contentFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml", ".json":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, engerr.Wrapf(err, "failed to walk content directory '%s'", dir)
	}
	return paths, nil
}

// builder accumulates records across files and remembers which file first
// defined each id so duplicate diagnostics can point at both.
type builder struct {
	tiles      map[string]*TileDefinition
	props      map[string]*PropDefinition
	biomes     map[string]*BiomeDefinition
	archetypes map[string]*CharacterArchetype
	spells     map[string]*SpellDefinition

	origin map[Category]map[string]string
}

func newBuilder() *builder {
	origin := make(map[Category]map[string]string)
	for _, c := range []Category{CategoryTile, CategoryProp, CategoryBiome, CategoryArchetype, CategorySpell} {
		origin[c] = make(map[string]string)
	}
	return &builder{
		tiles:      make(map[string]*TileDefinition),
		props:      make(map[string]*PropDefinition),
		biomes:     make(map[string]*BiomeDefinition),
		archetypes: make(map[string]*CharacterArchetype),
		spells:     make(map[string]*SpellDefinition),
		origin:     origin,
	}
}

func (b *builder) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return engerr.Wrapf(err, "failed to read content file '%s'", path)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return engerr.WrapWithCode(err, engerr.CodeSchemaViolation,
			"failed to parse content file").WithMeta("file", path)
	}

	for _, tile := range doc.GroundTiles {
		if err := b.claim(CategoryTile, tile.ID, path); err != nil {
			return err
		}
		b.tiles[tile.ID] = tile
	}
	for _, prop := range doc.DecorTiles {
		if err := b.claim(CategoryProp, prop.ID, path); err != nil {
			return err
		}
		b.props[prop.ID] = prop
	}
	for _, biome := range doc.Biomes {
		if err := b.claim(CategoryBiome, biome.ID, path); err != nil {
			return err
		}
		b.biomes[biome.ID] = biome
	}
	for _, arch := range doc.Archetypes {
		if err := b.claim(CategoryArchetype, arch.ID, path); err != nil {
			return err
		}
		b.archetypes[arch.ID] = arch
	}
	for _, spell := range doc.Spells {
		if err := b.claim(CategorySpell, spell.ID, path); err != nil {
			return err
		}
		b.spells[spell.ID] = spell
	}

	return nil
}

// claim registers an id within a category, rejecting blanks and duplicates
func (b *builder) claim(category Category, id, path string) error {
	if id == "" {
		return engerr.SchemaViolationf("%s record without id", category).
			WithMeta("category", string(category)).
			WithMeta("file", path)
	}

	if first, exists := b.origin[category][id]; exists {
		return engerr.DuplicateIDf("duplicate %s id '%s'", category, id).
			WithMeta("category", string(category)).
			WithMeta("id", id).
			WithMeta("file", path).
			WithMeta("first_file", first)
	}

	b.origin[category][id] = path
	return nil
}

// build validates the merged tables and seals them into a Store
func (b *builder) build() (*Store, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	return &Store{
		tiles:      b.tiles,
		props:      b.props,
		biomes:     b.biomes,
		archetypes: b.archetypes,
		spells:     b.spells,
	}, nil
}

func (b *builder) validate() error {
	for id, tile := range b.tiles {
		if tile.Template == "" {
			return b.schemaErr(CategoryTile, id, "template is required")
		}
	}

	for id, prop := range b.props {
		if prop.Template == "" {
			return b.schemaErr(CategoryProp, id, "template is required")
		}
		if len(prop.Offset) != 0 && len(prop.Offset) != 2 {
			return b.schemaErr(CategoryProp, id, "offset must be [x, y]")
		}
	}

	for id, biome := range b.biomes {
		if biome.RadiusTiles <= 0 {
			return b.schemaErr(CategoryBiome, id, "radius_tiles must be positive")
		}
		if len(biome.BaseTiles) == 0 {
			return b.schemaErr(CategoryBiome, id, "base_tiles must not be empty")
		}
		for _, ref := range biome.BaseTiles {
			if ref.Weight <= 0 {
				return b.schemaErr(CategoryBiome, id, "base tile weights must be positive")
			}
			if _, ok := b.tiles[ref.ID]; !ok {
				return b.refErr(CategoryBiome, id, CategoryTile, ref.ID)
			}
		}
		for _, ref := range biome.DecoTiles {
			if ref.Weight <= 0 {
				return b.schemaErr(CategoryBiome, id, "deco tile weights must be positive")
			}
			if _, ok := b.props[ref.ID]; !ok {
				return b.refErr(CategoryBiome, id, CategoryProp, ref.ID)
			}
		}
	}

	for id, spell := range b.spells {
		if spell.ManaCost < 0 {
			return b.schemaErr(CategorySpell, id, "mana_cost must not be negative")
		}
	}

	for id, arch := range b.archetypes {
		if arch.Health <= 0 {
			return b.schemaErr(CategoryArchetype, id, "health must be positive")
		}
		if arch.Mana < 0 {
			return b.schemaErr(CategoryArchetype, id, "mana must not be negative")
		}
		for _, spellID := range arch.Spells {
			if _, ok := b.spells[spellID]; !ok {
				return b.refErr(CategoryArchetype, id, CategorySpell, spellID)
			}
		}
		if !hasFallbackLine(arch) {
			return engerr.MissingFallbackLinef("archetype '%s' has no fallback dialogue line", id).
				WithMeta("category", string(CategoryArchetype)).
				WithMeta("id", id).
				WithMeta("file", b.origin[CategoryArchetype][id])
		}
	}

	return nil
}

// hasFallbackLine reports whether any trigger carries a non-blank line
func hasFallbackLine(arch *CharacterArchetype) bool {
	for _, lines := range arch.Dialogue {
		for _, line := range lines {
			if strings.TrimSpace(line) != "" {
				return true
			}
		}
	}
	return false
}

func (b *builder) schemaErr(category Category, id, msg string) error {
	return engerr.SchemaViolationf("%s '%s': %s", category, id, msg).
		WithMeta("category", string(category)).
		WithMeta("id", id).
		WithMeta("file", b.origin[category][id])
}

func (b *builder) refErr(category Category, id string, target Category, targetID string) error {
	return engerr.UnresolvedReferencef("%s '%s' references unknown %s '%s'", category, id, target, targetID).
		WithMeta("category", string(category)).
		WithMeta("id", id).
		WithMeta("reference", targetID).
		WithMeta("file", b.origin[category][id])
}
