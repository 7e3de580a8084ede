// Package vigenere implements the classic Vigenère cipher together with the
// classical attacks against it: Kasiski examination and the Friedman test
// for key-length estimation, and per-column frequency analysis for keyword
// recovery. Encrypt and Decrypt preserve the spacing, punctuation, and
// casing of their input; AutoDecrypt recovers keyword and plaintext from
// ciphertext alone when the text is long enough.
package vigenere

import "errors"

var ErrInvalidKeyword = errors.New("keyword must be non-empty and alphabetic")

// keySchedule converts a keyword into its zero-based alphabet shifts.
func keySchedule(keyword string) ([]int, error) {
	if keyword == "" {
		return nil, ErrInvalidKeyword
	}
	shifts := make([]int, 0, len(keyword))
	for _, r := range keyword {
		switch {
		case r >= 'A' && r <= 'Z':
			shifts = append(shifts, int(r-'A'))
		case r >= 'a' && r <= 'z':
			shifts = append(shifts, int(r-'a'))
		default:
			return nil, ErrInvalidKeyword
		}
	}
	return shifts, nil
}

// shiftsToKeyword renders a shift assignment as an upper-case keyword.
func shiftsToKeyword(shifts []int) string {
	out := make([]byte, len(shifts))
	for i, s := range shifts {
		out[i] = byte('A' + s)
	}
	return string(out)
}

func encryptAlpha(alpha string, shifts []int) string {
	out := make([]byte, len(alpha))
	for i := 0; i < len(alpha); i++ {
		s := shifts[i%len(shifts)]
		out[i] = byte((int(alpha[i]-'A')+s)%alphabetSize + 'A')
	}
	return string(out)
}

func decryptAlpha(alpha string, shifts []int) string {
	out := make([]byte, len(alpha))
	for i := 0; i < len(alpha); i++ {
		s := shifts[i%len(shifts)]
		out[i] = byte((int(alpha[i]-'A')-s+alphabetSize)%alphabetSize + 'A')
	}
	return string(out)
}

// Encrypt enciphers plaintext under keyword. Non-alphabetic characters and
// the casing pattern of the input are preserved in place.
func Encrypt(plaintext, keyword string) (string, error) {
	shifts, err := keySchedule(keyword)
	if err != nil {
		return "", err
	}
	alpha, mask := normalize(plaintext)
	return mask.apply(encryptAlpha(alpha, shifts))
}

// Decrypt inverts Encrypt for the same keyword.
func Decrypt(ciphertext, keyword string) (string, error) {
	shifts, err := keySchedule(keyword)
	if err != nil {
		return "", err
	}
	alpha, mask := normalize(ciphertext)
	return mask.apply(decryptAlpha(alpha, shifts))
}
