// Package credential resolves the remote dialogue secret. Resolution is
// performed fresh on every call so a rotated secret file or updated
// environment takes effect on the next dialogue request without a restart.
package credential

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	engerr "github.com/wizardwars/engine/internal/errors"
)

// Credential is an opaque secret. The zero value is the absent sentinel.
type Credential struct {
	Value string
}

// Present reports whether a secret was resolved
func (c Credential) Present() bool {
	return c.Value != ""
}

// Absent is the no-credential sentinel
var Absent = Credential{}

//go:generate mockgen -destination=mock/mock_provider.go -package=mockcredential -source=provider.go

// Provider resolves the dialogue credential
type Provider interface {
	// Resolve performs a fresh resolution. A missing credential is not an
	// error: it returns the absent sentinel with a nil error. A non-nil
	// error means an existing credential source could not be read; the
	// returned credential is still usable (absent) in that case.
	Resolve() (Credential, error)
}

// EnvFileProvider resolves from an environment variable first, then a
// local secret file. Neither result is cached.
type EnvFileProvider struct {
	envVar   string
	filePath string
}

// Config holds configuration for EnvFileProvider
type Config struct {
	EnvVar   string // Required: environment variable consulted first
	FilePath string // Required: secret file consulted second
}

// NewEnvFileProvider creates a provider over the given env var and file
func NewEnvFileProvider(cfg *Config) (*EnvFileProvider, error) {
	if cfg == nil || cfg.EnvVar == "" {
		return nil, engerr.InvalidArgument("credential env var is required")
	}
	if cfg.FilePath == "" {
		return nil, engerr.InvalidArgument("credential file path is required")
	}

	return &EnvFileProvider{
		envVar:   cfg.EnvVar,
		filePath: cfg.FilePath,
	}, nil
}

// Resolve implements Provider. Order: env var, then file contents trimmed
// of surrounding whitespace. A missing file is a normal path to absent;
// any other read failure is reported alongside the absent sentinel.
func (p *EnvFileProvider) Resolve() (Credential, error) {
	if value := strings.TrimSpace(os.Getenv(p.envVar)); value != "" {
		return Credential{Value: value}, nil
	}

	raw, err := os.ReadFile(p.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Absent, nil
		}
		return Absent, engerr.WrapWithCode(err, engerr.CodeCredential,
			"failed to read credential file").WithMeta("file", p.filePath)
	}

	value := strings.TrimSpace(string(raw))
	if value == "" {
		return Absent, nil
	}
	return Credential{Value: value}, nil
}
