// Package assist provides the resume optimization and cover-letter
// generation backend. The shipped implementation is a simulation, the
// Client interface is the seam where a real model provider would slot in.
package assist

import "context"

// Client abstracts the optimization and generation backend so a real
// scoring model can be substituted without touching callers.
type Client interface {
	Optimize(ctx context.Context, input OptimizeInput) (OptimizeResult, error)
	GenerateCoverLetter(ctx context.Context, input LetterInput) (string, error)
}

// OptimizeInput captures the inputs to an optimization run. ResumeText is
// the plaintext projection of a draft, never structured data.
type OptimizeInput struct {
	ResumeText string
	TargetRole string
}

// OptimizeResult is the optimization output contract: OptimizedText always
// starts with the input text, AtsScore is an integer in [65, 95].
type OptimizeResult struct {
	OptimizedText string
	AtsScore      int
}

// LetterInput captures the inputs to cover-letter generation.
type LetterInput struct {
	ResumeText  string
	TargetRole  string
	CompanyName string
}
