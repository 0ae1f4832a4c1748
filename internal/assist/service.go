package assist

import (
	"context"
	"fmt"
	"io"
	"strings"

	"resume-builder/internal/shared/metrics"
)

// TextExtractor pulls plaintext out of an uploaded resume file, the way an
// applicant tracking system would before scoring it.
type TextExtractor interface {
	Text(ctx context.Context, fileName string, r io.Reader) (string, error)
}

// Service contains business logic for optimization, letter generation and
// uploaded-resume scanning.
type Service struct {
	Client  Client
	Extract TextExtractor
}

// Optimize runs the optimization backend over projected resume text.
func (s *Service) Optimize(ctx context.Context, resumeText, targetRole string) (OptimizeResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return OptimizeResult{}, fmt.Errorf("%w: resumeText is required", ErrInvalidInput)
	}

	result, err := s.Client.Optimize(ctx, OptimizeInput{ResumeText: resumeText, TargetRole: targetRole})
	if err != nil {
		return OptimizeResult{}, err
	}
	metrics.IncAssistOptimize()
	return result, nil
}

// CoverLetter generates a cover letter from projected resume text.
func (s *Service) CoverLetter(ctx context.Context, resumeText, targetRole, companyName string) (string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return "", fmt.Errorf("%w: resumeText is required", ErrInvalidInput)
	}
	if strings.TrimSpace(targetRole) == "" {
		return "", fmt.Errorf("%w: targetRole is required", ErrInvalidInput)
	}

	letter, err := s.Client.GenerateCoverLetter(ctx, LetterInput{
		ResumeText:  resumeText,
		TargetRole:  targetRole,
		CompanyName: companyName,
	})
	if err != nil {
		return "", err
	}
	metrics.IncAssistLetter()
	return letter, nil
}

// ScanResult is the outcome of scoring an uploaded resume file: the text
// an ATS parser would see plus its score.
type ScanResult struct {
	ResumeText string
	AtsScore   int
}

// ScanUpload extracts text from an uploaded resume and scores it. The file
// itself is never stored, only the extracted text leaves this call.
func (s *Service) ScanUpload(ctx context.Context, fileName string, r io.Reader) (ScanResult, error) {
	// Extraction failures are client problems: wrong format, corrupt file,
	// image-only scan.
	text, err := s.Extract.Text(ctx, fileName, r)
	if err != nil {
		return ScanResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(text) == "" {
		return ScanResult{}, fmt.Errorf("%w: no text could be extracted", ErrInvalidInput)
	}

	result, err := s.Client.Optimize(ctx, OptimizeInput{ResumeText: text})
	if err != nil {
		return ScanResult{}, err
	}
	metrics.IncAtsScan()
	return ScanResult{
		ResumeText: text,
		AtsScore:   result.AtsScore,
	}, nil
}
