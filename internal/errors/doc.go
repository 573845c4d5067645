// Package errors provides the coded error type used across mcg.
//
// Errors carry a Code, a user-facing message, an optional cause and
// metadata. Codes survive wrapping, so callers can branch on them after
// an error has passed through several layers.
//
// # Basic Usage
//
//	err := errors.InvalidArgument("roll count must be positive")
//	err := errors.Internalf("roller returned %d for a %d-entry table", face, size)
//
// Wrapping keeps the original code:
//
//	if err := g.Roll(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to roll character")
//	}
//
// # Validation
//
// Component configs validate their dependencies with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.DiceRoller == nil {
//	    vb.RequiredField("DiceRoller")
//	}
//	return vb.Build()
//
// # Exit Codes
//
// The CLI maps the code of the error returned from a command to the
// process exit status with Code.ExitCode.
package errors
