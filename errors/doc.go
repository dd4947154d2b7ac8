// Package errors provides structured error types for the bencode library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the byte offset for
// parse-phase errors, the coding path for decode-phase errors, and the
// expected versus actual shape where a mismatch was detected.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
//		Path("info", "piece length").
//		Expected("integer").
//		Actual("byte string").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnexpectedChar(pos, b, "'d', 'l', 'i' or digit")
//	err := errors.ValueNotFound(path, `key "announce" not present`)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so callers can probe for a category:
//
//	errors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindUnexpectedEOF})
package errors
