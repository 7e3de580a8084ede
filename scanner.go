package vigenere

import "github.com/pemistahl/lingua-go"

// LanguageScanner rates recovered plaintext against a language model. It
// backs the Confidence field of Result; candidate ranking itself stays on
// chi-squared so runs are reproducible.
type LanguageScanner struct {
	detector lingua.LanguageDetector
}

func NewLanguageScanner() *LanguageScanner {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.French, lingua.German, lingua.Spanish).
		Build()
	return &LanguageScanner{detector: detector}
}

// EnglishConfidence returns lingua's confidence that text is English, in [0, 1].
func (s *LanguageScanner) EnglishConfidence(text string) float64 {
	return s.detector.ComputeLanguageConfidence(text, lingua.English)
}
