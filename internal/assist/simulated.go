package assist

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
)

const (
	scoreFloor   = 65
	scoreCeiling = 95
)

// SimulatedClient is the default Client. It appends a fixed-format
// annotation block instead of rewriting the resume and draws the score
// uniformly from [65, 95]. Only the output shape is contractual, the score
// itself carries no meaning.
type SimulatedClient struct {
	// Intn returns a value in [0, n). Left nil, math/rand is used. Tests
	// inject a fixed function to pin the score.
	Intn func(n int) int
}

// Optimize annotates the resume text and produces a compatibility score.
func (c SimulatedClient) Optimize(ctx context.Context, input OptimizeInput) (OptimizeResult, error) {
	if err := ctx.Err(); err != nil {
		return OptimizeResult{}, err
	}

	return OptimizeResult{
		OptimizedText: input.ResumeText + annotationBlock(input.TargetRole),
		AtsScore:      scoreFloor + c.intn(scoreCeiling-scoreFloor+1),
	}, nil
}

// GenerateCoverLetter produces the fixed five-paragraph template. Greeting
// and opening name the company when given, the caller substitutes the
// literal [Your Name] placeholder.
func (c SimulatedClient) GenerateCoverLetter(ctx context.Context, input LetterInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	greeting := "Dear Hiring Manager,"
	org := "your organization"
	if input.CompanyName != "" {
		greeting = fmt.Sprintf("Dear %s Hiring Team,", input.CompanyName)
		org = input.CompanyName
	}

	paragraphs := []string{
		greeting,
		fmt.Sprintf("I am writing to express my strong interest in the %s position at %s. After reviewing the role, I am confident my background aligns closely with what your team is looking for.", input.TargetRole, org),
		"Throughout my career I have focused on delivering measurable results, collaborating across teams, and continuously deepening my skills. The experience summarized in my resume reflects steady growth and a record of meeting commitments.",
		"I would welcome the opportunity to bring that same energy to your team. I ramp up quickly, communicate openly, and aim to contribute from the first week.",
		"Thank you for your time and consideration. I look forward to discussing how I can help.\n\nSincerely,\n[Your Name]",
	}
	return strings.Join(paragraphs, "\n\n"), nil
}

func (c SimulatedClient) intn(n int) int {
	if c.Intn != nil {
		return c.Intn(n)
	}
	return rand.Intn(n)
}

func annotationBlock(targetRole string) string {
	focus := "your target role"
	if targetRole != "" {
		focus = "the " + targetRole + " role"
	}
	lines := []string{
		"",
		"",
		"--- ATS Optimization Applied ---",
		fmt.Sprintf("Keyword emphasis tuned for %s.", focus),
		"Section headings standardized for automated parsing.",
		"Experience phrasing adjusted toward measurable outcomes.",
	}
	return strings.Join(lines, "\n")
}

var _ Client = SimulatedClient{}
