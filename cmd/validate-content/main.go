package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/wizardwars/engine/internal/config"
	"github.com/wizardwars/engine/internal/content"
	engerr "github.com/wizardwars/engine/internal/errors"
)

// Validates a content directory without starting the game. Exits non-zero
// with the load diagnostic so content authors can fix their files.
func main() {
	_ = godotenv.Load()

	dir := ""
	if len(os.Args) > 1 {
		dir = os.Args[1]
	} else {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		dir = cfg.Content.Dir
	}

	fmt.Printf("Validating content in %s\n", dir)

	store, err := content.Load(&content.LoadConfig{Dir: dir})
	if err != nil {
		fmt.Printf("INVALID: %v\n", err)
		for key, value := range engerr.GetMeta(err) {
			fmt.Printf("  %s: %v\n", key, value)
		}
		os.Exit(1)
	}

	fmt.Println("OK")
	for category, count := range store.Counts() {
		fmt.Printf("  %-10s %d\n", category, count)
	}
	for _, id := range store.ArchetypeIDs() {
		line, lineErr := store.FallbackLine(id, content.DefaultTrigger)
		if lineErr != nil {
			fmt.Printf("  WARNING: archetype %s: %v\n", id, lineErr)
			continue
		}
		fmt.Printf("  archetype %s fallback: %q\n", id, line)
	}
}
