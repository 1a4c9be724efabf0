// Package core defines the types shared by the aidraw pipeline.
//
// A run builds one [GenerationRequest], hands it to an image generator
// (see the openai provider) and receives a [GenerationResult] listing the
// URLs of the generated images. The download package then fetches each URL
// and writes it to disk.
//
// # Errors
//
// Provider failures are reported as [*ProviderError], which unwraps to one
// of the sentinel errors declared in this package so callers can classify
// them with errors.Is:
//
//	result, err := provider.Generate(ctx, req)
//	if errors.Is(err, core.ErrUnauthorized) {
//	    // bad or revoked key
//	}
//
// # Secrets
//
// API keys are carried as [Secret] values, which redact themselves when
// printed or serialized.
package core
