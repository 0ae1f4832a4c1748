package assist

import (
	"context"
	"strings"
	"testing"
)

func TestOptimizePrefixAndAnnotation(t *testing.T) {
	client := SimulatedClient{Intn: func(n int) int { return 0 }}

	input := "Jane Doe\nRegistered nurse with 8 years of ICU experience."
	result, err := client.Optimize(context.Background(), OptimizeInput{ResumeText: input, TargetRole: "Nurse"})
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}

	if !strings.HasPrefix(result.OptimizedText, input) {
		t.Fatalf("expected optimized text to start with the input, got:\n%s", result.OptimizedText)
	}
	appended := strings.TrimPrefix(result.OptimizedText, input)
	if !strings.Contains(appended, "Nurse") {
		t.Fatalf("expected annotation to mention the target role, got:\n%s", appended)
	}
	if appended == "" {
		t.Fatal("expected a non-empty annotation block")
	}
}

func TestOptimizeScoreBounds(t *testing.T) {
	cases := []struct {
		draw int
		want int
	}{
		{0, 65},
		{30, 95},
		{15, 80},
	}
	for _, tc := range cases {
		client := SimulatedClient{Intn: func(n int) int {
			if n != 31 {
				t.Fatalf("expected draw over 31 values, got %d", n)
			}
			return tc.draw
		}}
		result, err := client.Optimize(context.Background(), OptimizeInput{ResumeText: "text"})
		if err != nil {
			t.Fatalf("Optimize: %v", err)
		}
		if result.AtsScore != tc.want {
			t.Fatalf("draw %d: expected score %d, got %d", tc.draw, tc.want, result.AtsScore)
		}
	}
}

func TestOptimizeDefaultRandStaysInRange(t *testing.T) {
	client := SimulatedClient{}
	for i := 0; i < 200; i++ {
		result, err := client.Optimize(context.Background(), OptimizeInput{ResumeText: "text"})
		if err != nil {
			t.Fatalf("Optimize: %v", err)
		}
		if result.AtsScore < 65 || result.AtsScore > 95 {
			t.Fatalf("score %d outside [65, 95]", result.AtsScore)
		}
	}
}

func TestOptimizeWithoutRoleUsesGenericFocus(t *testing.T) {
	client := SimulatedClient{Intn: func(n int) int { return 0 }}
	result, err := client.Optimize(context.Background(), OptimizeInput{ResumeText: "text"})
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if !strings.Contains(result.OptimizedText, "your target role") {
		t.Fatalf("expected generic focus in annotation, got:\n%s", result.OptimizedText)
	}
}

func TestGenerateCoverLetterWithCompany(t *testing.T) {
	client := SimulatedClient{}

	letter, err := client.GenerateCoverLetter(context.Background(), LetterInput{
		ResumeText:  "projected resume text",
		TargetRole:  "Backend Engineer",
		CompanyName: "Acme",
	})
	if err != nil {
		t.Fatalf("GenerateCoverLetter: %v", err)
	}

	if !strings.Contains(letter, "Dear Acme Hiring Team,") {
		t.Fatalf("expected company greeting, got:\n%s", letter)
	}
	if !strings.Contains(letter, "[Your Name]") {
		t.Fatalf("expected placeholder preserved, got:\n%s", letter)
	}
	if !strings.Contains(letter, "Backend Engineer") {
		t.Fatalf("expected target role in opening, got:\n%s", letter)
	}
	if got := len(strings.Split(letter, "\n\n")); got != 6 {
		// Greeting, three body paragraphs, closing, signature block.
		t.Fatalf("expected 6 blocks, got %d:\n%s", got, letter)
	}
}

func TestGenerateCoverLetterWithoutCompany(t *testing.T) {
	client := SimulatedClient{}

	letter, err := client.GenerateCoverLetter(context.Background(), LetterInput{
		ResumeText: "text",
		TargetRole: "Data Analyst",
	})
	if err != nil {
		t.Fatalf("GenerateCoverLetter: %v", err)
	}

	if !strings.Contains(letter, "Dear Hiring Manager,") {
		t.Fatalf("expected generic greeting, got:\n%s", letter)
	}
	if strings.Contains(letter, "Hiring Team") {
		t.Fatalf("expected no company greeting, got:\n%s", letter)
	}
	if !strings.Contains(letter, "your organization") {
		t.Fatalf("expected generic organization reference, got:\n%s", letter)
	}
}
