// Package errors provides the structured error handling used across sheet-api.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - HTTP status mapping for the REST layer
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("sheet not found")
//	err := errors.InvalidArgumentf("unknown ability: %s", name)
//
// Adding metadata:
//
//	err := errors.NotFound("sheet not found").
//	    WithMeta("username", username)
//
// Wrapping errors:
//
//	if err := repo.Load(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load sheet")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // fall back to the default record
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("username", input.Username, vb)
//	errors.ValidateMinLength("password", input.Password, 8, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant keys in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Render GetMessage(err) with GetCode(err).HTTPStatus()
//   - Log internal errors for debugging
package errors
