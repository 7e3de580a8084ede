package vigenere

import (
	"errors"
	"fmt"
	"sync"
)

var errDegenerateCandidate = errors.New("degenerate key length for this ciphertext")

// columns partitions the alphabetic stream into keyLength interleaved
// subsequences, one per key position. Characters at positions congruent to
// j mod keyLength all share the same Caesar shift.
func columns(alpha string, keyLength int) []string {
	cols := make([][]byte, keyLength)
	for i := 0; i < len(alpha); i++ {
		j := i % keyLength
		cols[j] = append(cols[j], alpha[i])
	}
	out := make([]string, keyLength)
	for j, c := range cols {
		out[j] = string(c)
	}
	return out
}

// bestShift picks the Caesar shift under which the column's letter
// distribution most resembles English, by minimal chi-squared. Ties go to
// the smaller shift.
func bestShift(column string) int {
	counts, total := letterCounts(column)
	best := 0
	bestChi := -1.0
	for shift := 0; shift < alphabetSize; shift++ {
		// Decrypting with this shift maps ciphertext letter (j+shift) onto
		// plaintext letter j.
		var decrypted [alphabetSize]int
		for j := 0; j < alphabetSize; j++ {
			decrypted[j] = counts[(j+shift)%alphabetSize]
		}
		chi := chiSquared(decrypted, total)
		if bestChi < 0 || chi < bestChi {
			bestChi = chi
			best = shift
		}
	}
	return best
}

// solveShifts recovers the shift assignment for a fixed key length, one
// column at a time, and renders it as a keyword. Columns are independent,
// so they are solved concurrently; each goroutine writes only its own slot.
func solveShifts(alpha string, keyLength int) (string, error) {
	if keyLength < 1 || keyLength > len(alpha) {
		return "", fmt.Errorf("%w: length %d over %d characters", errDegenerateCandidate, keyLength, len(alpha))
	}

	shifts := make([]int, keyLength)
	var wg sync.WaitGroup
	for j, col := range columns(alpha, keyLength) {
		wg.Add(1)
		go func(j int, col string) {
			defer wg.Done()
			shifts[j] = bestShift(col)
		}(j, col)
	}
	wg.Wait()

	return shiftsToKeyword(shifts), nil
}
