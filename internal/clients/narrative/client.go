// Package narrative defines the interface for AI text generation used by
// the backstory and name-suggestion features.
package narrative

//go:generate mockgen -destination=mock/mock_client.go -package=narrativemock github.com/hearthforge/sheet-api/internal/clients/narrative Client

import (
	"context"

	entities "github.com/hearthforge/sheet-api/internal/entities/sheet"
)

// Client defines the interface for narrative generation. Callers treat
// every error as recoverable and substitute a fixed fallback string.
type Client interface {
	// GenerateBackstory produces a short prose backstory from the
	// character's header fields and ability scores.
	GenerateBackstory(ctx context.Context, input *GenerateBackstoryInput) (*GenerateBackstoryOutput, error)

	// SuggestName produces a single fantasy name for a race and class.
	SuggestName(ctx context.Context, input *SuggestNameInput) (*SuggestNameOutput, error)
}

// GenerateBackstoryInput defines the request for backstory generation
type GenerateBackstoryInput struct {
	Character *entities.CharacterData
}

// GenerateBackstoryOutput defines the response for backstory generation
type GenerateBackstoryOutput struct {
	Backstory string
}

// SuggestNameInput defines the request for a name suggestion
type SuggestNameInput struct {
	Race  string
	Class string
}

// SuggestNameOutput defines the response for a name suggestion
type SuggestNameOutput struct {
	Name string
}
