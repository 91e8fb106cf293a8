package server

import "github.com/rs/zerolog/log"

// Must aborts the process if err is non-nil. Resource exhaustion
// (allocation failure outside startup) is policy-abort: the compositor
// is stateful and restartable by the session manager, so crashing
// immediately rather than running on in an inconsistent state is the
// acceptable behavior here. This must never be used for configuration
// errors, client protocol misuse, or any other recoverable error kind.
func Must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("unrecoverable error")
	}
}

// MustValue is Must's value-returning counterpart, for call sites that
// need the non-error result inline.
func MustValue[T any](v T, err error) T {
	Must(err)
	return v
}
