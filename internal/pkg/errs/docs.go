// Package errs provides the error taxonomy shared by the domain, the
// application layer and the adapters.
//
// Every error type follows the same pattern:
//   - a sentinel variable (ErrObjectNotFound, ErrConflict, ...)
//   - a struct carrying the details
//   - constructors with and without a cause
//   - Unwrap returning the sentinel, so errors.Is works across layers
//
// The HTTP adapter classifies errors by sentinel:
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: 400
//   - ErrForbidden: 403
//   - ErrObjectNotFound: 404
//   - ErrConflict: 400
//   - anything else: 500
package errs
