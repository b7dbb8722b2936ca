// Package sheet provides the interface for character sheet persistence
package sheet

import (
	"context"

	entities "github.com/hearthforge/sheet-api/internal/entities/sheet"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sheetmock github.com/hearthforge/sheet-api/internal/repositories/sheet Repository

// Repository defines the interface for per-user sheet persistence.
// Storage is whole-value: every save overwrites the user's document.
type Repository interface {
	// Save persists the character record for a user, overwriting any
	// previous document.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load retrieves and normalizes the stored record for a user.
	// Returns errors.NotFound if the user has no saved sheet
	// Returns errors.InvalidArgument if the stored document is corrupt
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
}

// SaveInput defines the input for saving a sheet
type SaveInput struct {
	Username  string
	Character *entities.CharacterData
}

// SaveOutput defines the output for saving a sheet
type SaveOutput struct {
	Character *entities.CharacterData
}

// LoadInput defines the input for loading a sheet
type LoadInput struct {
	Username string
}

// LoadOutput defines the output for loading a sheet
type LoadOutput struct {
	Character *entities.CharacterData
}
