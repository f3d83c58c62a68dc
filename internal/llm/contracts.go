package llm

import "context"

// GenerativeTextService is the single narrow capability both generative
// steps of the pipeline depend on. All provider variability — model choice,
// auth, transport — hides behind it, and tests substitute a deterministic
// stub.
type GenerativeTextService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
