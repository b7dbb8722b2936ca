package narrative

import (
	"context"

	"github.com/hearthforge/sheet-api/internal/errors"
)

type disabledClient struct{}

// NewDisabled returns a client that always fails. Deployments without a
// narrative API key use it so the sheet features degrade to their
// fallback strings instead of panicking on a nil client.
func NewDisabled() Client {
	return disabledClient{}
}

func (disabledClient) GenerateBackstory(context.Context, *GenerateBackstoryInput) (*GenerateBackstoryOutput, error) {
	return nil, errors.Unavailable("narrative generation is not configured")
}

func (disabledClient) SuggestName(context.Context, *SuggestNameInput) (*SuggestNameOutput, error) {
	return nil, errors.Unavailable("narrative generation is not configured")
}
