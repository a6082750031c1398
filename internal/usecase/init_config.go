package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/pt/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Path     string // Where to write the config file
	Template string // Rendered config file content
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig writes a commented config file with the default settings.
type InitConfig struct{}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig() *InitConfig {
	return &InitConfig{}
}

// Execute creates the config file. An existing file is never overwritten.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	if _, err := os.Stat(in.Path); err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfigExists, in.Path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(in.Path), 0o750); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(in.Path, []byte(in.Template), 0o600); err != nil {
		return nil, fmt.Errorf("write config: %w", err)
	}
	return &InitConfigOutput{Path: in.Path}, nil
}
