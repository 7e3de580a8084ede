package vigenere

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
)

var ErrInsufficientData = errors.New("ciphertext too short or degenerate for key recovery")

// Result is a recovered (keyword, plaintext) pair. ChiSquared is the ranking
// score the keyword won with (distance of the decryption's letter
// distribution from English, lower is better); Confidence is the language
// detector's English likelihood in [0, 1].
type Result struct {
	Keyword    string
	Plaintext  string
	ChiSquared float64
	Confidence float64
}

// Cracker runs the key-recovery pipeline. The zero value is not ready to
// use; construct with NewCracker and override fields before the first
// AutoDecrypt call if needed.
type Cracker struct {
	// MaxKeyLength bounds the key lengths Kasiski examination votes on.
	MaxKeyLength int
	// Shortlist caps how many reconciled key-length candidates are tried.
	Shortlist int
	// MinTextLen is the fewest alphabetic characters worth analyzing.
	MinTextLen int
	// Logger receives skipped-candidate diagnostics. Discards by default.
	Logger *log.Logger

	scanner *LanguageScanner
}

func NewCracker() *Cracker {
	return &Cracker{
		MaxKeyLength: 20,
		Shortlist:    5,
		MinTextLen:   20,
		Logger:       log.New(io.Discard, "", 0),
	}
}

// AutoDecrypt recovers the keyword and plaintext from ciphertext alone.
// Pipeline: normalize, estimate key lengths (Kasiski and Friedman,
// reconciled), solve per-position shifts for each candidate length, rank
// the resulting decryptions by chi-squared against English letter
// frequencies, and return the best. Candidates that cannot produce a shift
// assignment are logged and skipped; ErrInsufficientData is returned when
// no candidate survives, never a fabricated result.
func (c *Cracker) AutoDecrypt(ciphertext string) (Result, error) {
	alpha, mask := normalize(ciphertext)
	if len(alpha) < c.MinTextLen {
		return Result{}, fmt.Errorf("%w: %d alphabetic characters, need %d", ErrInsufficientData, len(alpha), c.MinTextLen)
	}

	kasiski := kasiskiExamination(alpha, c.MaxKeyLength)
	friedman, hasFriedman := friedmanEstimate(alpha)
	cands := reconcileKeyLengths(kasiski, friedman, hasFriedman, c.Shortlist)
	if len(cands) == 0 {
		return Result{}, fmt.Errorf("%w: no key length candidates", ErrInsufficientData)
	}

	type attempt struct {
		keyword string
		alpha   string
		chi     float64
		ok      bool
	}

	// Candidate lengths are independent, so they are tried concurrently.
	// Results land in an index-stable slice and the winner is picked
	// afterwards, keeping selection deterministic.
	attempts := make([]attempt, len(cands))
	var wg sync.WaitGroup
	for i, cand := range cands {
		wg.Add(1)
		go func(i int, cand KeyLengthCandidate) {
			defer wg.Done()
			keyword, err := solveShifts(alpha, cand.Length)
			if err != nil {
				c.Logger.Printf("skipping key length %d (%s): %v", cand.Length, cand.Source, err)
				return
			}
			shifts, err := keySchedule(keyword)
			if err != nil {
				c.Logger.Printf("skipping key length %d (%s): %v", cand.Length, cand.Source, err)
				return
			}
			plain := decryptAlpha(alpha, shifts)
			counts, total := letterCounts(plain)
			attempts[i] = attempt{keyword: keyword, alpha: plain, chi: chiSquared(counts, total), ok: true}
		}(i, cand)
	}
	wg.Wait()

	best := -1
	for i, a := range attempts {
		if !a.ok {
			continue
		}
		switch {
		case best < 0:
			best = i
		case a.chi < attempts[best].chi:
			best = i
		case a.chi == attempts[best].chi && len(a.keyword) < len(attempts[best].keyword):
			best = i
		}
	}
	if best < 0 {
		return Result{}, fmt.Errorf("%w: every key length candidate was degenerate", ErrInsufficientData)
	}

	plaintext, err := mask.apply(attempts[best].alpha)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Keyword:    attempts[best].keyword,
		Plaintext:  plaintext,
		ChiSquared: attempts[best].chi,
		Confidence: c.confidence(plaintext),
	}, nil
}

func (c *Cracker) confidence(text string) float64 {
	if c.scanner == nil {
		c.scanner = NewLanguageScanner()
	}
	return c.scanner.EnglishConfidence(text)
}

// AutoDecrypt runs a default Cracker over the ciphertext.
func AutoDecrypt(ciphertext string) (Result, error) {
	return NewCracker().AutoDecrypt(ciphertext)
}
