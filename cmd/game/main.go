package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/wizardwars/engine/internal/clients/llm"
	"github.com/wizardwars/engine/internal/config"
	"github.com/wizardwars/engine/internal/content"
	"github.com/wizardwars/engine/internal/credential"
	"github.com/wizardwars/engine/internal/dialogue"
	engerr "github.com/wizardwars/engine/internal/errors"
	"github.com/wizardwars/engine/internal/repositories/transcripts"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Loading content from: %s", cfg.Content.Dir)
	store, err := content.Load(&content.LoadConfig{Dir: cfg.Content.Dir})
	if err != nil {
		log.Fatalf("Content load failed: %v (diagnostics: %v)", err, engerr.GetMeta(err))
	}
	for category, count := range store.Counts() {
		log.Printf("Loaded %d %s records", count, category)
	}

	channel, err := llm.New(&llm.Config{
		Model:   cfg.Dialogue.Model,
		BaseURL: cfg.Dialogue.BaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to create dialogue channel: %v", err)
	}

	creds, err := credential.NewEnvFileProvider(&credential.Config{
		EnvVar:   cfg.Dialogue.CredentialEnvVar,
		FilePath: cfg.Dialogue.CredentialFile,
	})
	if err != nil {
		log.Fatalf("Failed to create credential provider: %v", err)
	}

	toggle := dialogue.NewToggle(cfg.Dialogue.Enabled)

	// Keep Redis client for cleanup
	var redisClient *redis.Client
	var transcriptRepo transcripts.Repository = transcripts.NewInMemoryRepository()

	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory transcripts")
		} else {
			redisClient = redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := redisClient.Ping(ctx).Err()
			cancel()

			if pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory transcripts")
				redisClient = nil
			} else {
				repo, repoErr := transcripts.NewRedis(&transcripts.RedisConfig{Client: redisClient})
				if repoErr != nil {
					log.Fatalf("Failed to create transcript repository: %v", repoErr)
				}
				transcriptRepo = repo
				log.Println("Using Redis transcripts")
			}
		}
	}
	if redisClient != nil {
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				log.Printf("Failed to close Redis client: %v", closeErr)
			}
		}()
	}

	svc, err := dialogue.NewService(&dialogue.ServiceConfig{
		Content:     store,
		Channel:     channel,
		Credentials: creds,
		Toggle:      toggle,
		Transcripts: transcriptRepo,
		Timeout:     cfg.Dialogue.Timeout,
	})
	if err != nil {
		log.Fatalf("Failed to create dialogue service: %v", err)
	}

	if toggle.Get() {
		log.Println("Prewarming dialogue channel")
		svc.Prewarm(context.Background(), store.ArchetypeIDs(), "greet")
	}

	runTalkLoop(store, svc, toggle, transcriptRepo)
}

// runTalkLoop is a minimal stand-in for the game shell: one dialogue
// request per line of input.
func runTalkLoop(store *content.Store, svc dialogue.Service, toggle *dialogue.Toggle, repo transcripts.Repository) {
	fmt.Println("wizard-wars talk loop")
	fmt.Println("  <archetype> [trigger]   request a line")
	fmt.Println("  toggle                  flip the dialogue channel")
	fmt.Println("  recent <archetype>      show recent lines")
	fmt.Println("  quit")
	fmt.Printf("archetypes: %s\n", strings.Join(store.ArchetypeIDs(), ", "))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return
		case "toggle":
			toggle.Set(!toggle.Get())
			fmt.Printf("dialogue channel enabled: %v\n", toggle.Get())
		case "recent":
			if len(fields) < 2 {
				fmt.Println("usage: recent <archetype>")
				continue
			}
			entries, err := repo.Recent(context.Background(), fields[1], 10)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			for _, entry := range entries {
				fmt.Printf("[%s] (%s/%s) %s\n", entry.Source, entry.ArchetypeID, entry.Trigger, entry.Text)
			}
		default:
			input := &dialogue.RequestLineInput{ArchetypeID: fields[0]}
			if len(fields) > 1 {
				input.Trigger = fields[1]
			}

			line, err := svc.RequestLine(context.Background(), input)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("[%s] %s\n", line.Source, line.Text)
		}
	}
}
