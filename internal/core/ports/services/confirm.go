package services

import "context"

// Confirmer is the blocking confirmation step run before any state-changing backend call.
// It receives a short summary of what is about to happen and reports whether the user agreed.
type Confirmer func(ctx context.Context, summary string) bool

// Confirmed returns a Confirmer that answers with a decision taken up front,
// e.g. the "confirm" flag of an HTTP request.
func Confirmed(ok bool) Confirmer {
	return func(context.Context, string) bool { return ok }
}
