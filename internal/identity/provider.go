package identity

import "context"

// Subject is what the external identity provider knows about a caller.
type Subject struct {
	ID string
}

// Provider verifies bearer tokens against the identity service. The rest of
// the pipeline never sees raw tokens, only resolved subjects.
type Provider interface {
	VerifyToken(ctx context.Context, token string) (Subject, error)
}
