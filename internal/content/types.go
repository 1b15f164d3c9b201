package content

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Category names the record tables the store indexes
type Category string

const (
	CategoryTile      Category = "tile"
	CategoryProp      Category = "prop"
	CategoryBiome     Category = "biome"
	CategoryArchetype Category = "archetype"
	CategorySpell     Category = "spell"
)

// TileDefinition describes a ground tile authored in world/tiles
type TileDefinition struct {
	ID       string `yaml:"id" json:"id"`
	Template string `yaml:"template" json:"template"`
	Walkable bool   `yaml:"walkable" json:"walkable"`
}

// PropDefinition describes a decorative prop placed on top of ground tiles
type PropDefinition struct {
	ID       string `yaml:"id" json:"id"`
	Template string `yaml:"template" json:"template"`
	Offset   []int  `yaml:"offset" json:"offset"`
}

// WeightedRef is a [id, weight] pair as authored in biome tile lists
type WeightedRef struct {
	ID     string
	Weight float64
}

// UnmarshalYAML decodes the compact two-element sequence form
func (w *WeightedRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
		return fmt.Errorf("weighted ref must be a [id, weight] pair, got %s", value.Tag)
	}
	if err := value.Content[0].Decode(&w.ID); err != nil {
		return fmt.Errorf("weighted ref id: %w", err)
	}
	if err := value.Content[1].Decode(&w.Weight); err != nil {
		return fmt.Errorf("weighted ref weight: %w", err)
	}
	return nil
}

// BiomeDefinition describes one concentric world biome
type BiomeDefinition struct {
	ID          string            `yaml:"id"`
	Label       string            `yaml:"label"`
	Description string            `yaml:"description"`
	RadiusTiles float64           `yaml:"radius_tiles"`
	Palette     map[string]string `yaml:"palette"`
	Music       string            `yaml:"music"`
	Weather     map[string]any    `yaml:"weather"`
	BaseTiles   []WeightedRef     `yaml:"base_tiles"`
	DecoTiles   []WeightedRef     `yaml:"deco_tiles"`
}

// SpellDefinition describes a castable spell. Effect is opaque to the
// content core and handed to gameplay uninterpreted.
type SpellDefinition struct {
	ID       string         `yaml:"id"`
	Label    string         `yaml:"label"`
	ManaCost int            `yaml:"mana_cost"`
	Cooldown float64        `yaml:"cooldown"`
	Effect   map[string]any `yaml:"effect"`
}

// LineSet accepts either a single string or a list of strings, matching
// how authors write dialogue triggers.
type LineSet []string

// UnmarshalYAML decodes scalar or sequence forms
func (l *LineSet) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var line string
		if err := value.Decode(&line); err != nil {
			return err
		}
		*l = LineSet{line}
		return nil
	case yaml.SequenceNode:
		var lines []string
		if err := value.Decode(&lines); err != nil {
			return err
		}
		*l = LineSet(lines)
		return nil
	default:
		return fmt.Errorf("dialogue lines must be a string or list of strings, got %s", value.Tag)
	}
}

// CharacterArchetype describes a named NPC template: display stats, its
// spellbook, and the offline dialogue table keyed by trigger.
type CharacterArchetype struct {
	ID             string             `yaml:"id"`
	Label          string             `yaml:"label"`
	Description    string             `yaml:"description"`
	Health         int                `yaml:"health"`
	Mana           int                `yaml:"mana"`
	Spells         []string           `yaml:"spells"`
	SpriteTemplate string             `yaml:"sprite_template"`
	Dialogue       map[string]LineSet `yaml:"dialogue"`
}

// DefaultTrigger is the archetype-level catch-all dialogue key consulted
// when a request's trigger has no authored lines.
const DefaultTrigger = "default"
