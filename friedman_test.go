package vigenere

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_friedmanEstimate(t *testing.T) {
	// A long English text under a 5-letter key should estimate within one
	// of the true key length.
	shifts, err := keySchedule("CRYPT")
	require.NoError(t, err)
	ciphertext := encryptAlpha(corpusAlpha(), shifts)

	cand, ok := friedmanEstimate(ciphertext)
	require.True(t, ok)
	assert.Equal(t, EstimatorFriedman, cand.Source)
	assert.InDelta(t, 5, cand.Length, 1)
}

func Test_friedmanEstimatePlainEnglish(t *testing.T) {
	// Unencrypted English is monoalphabetic; the estimate should collapse
	// toward a key length of one.
	cand, ok := friedmanEstimate(corpusAlpha())
	require.True(t, ok)
	assert.LessOrEqual(t, cand.Length, 2)
}

func Test_friedmanEstimateDegenerate(t *testing.T) {
	type args struct {
		alpha string
	}
	tests := []struct {
		name   string
		args   args
		wantOK bool
	}{
		{name: "empty", args: args{alpha: ""}, wantOK: false},
		{name: "single letter", args: args{alpha: "A"}, wantOK: false},
		{name: "two letters", args: args{alpha: "AB"}, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand, ok := friedmanEstimate(tt.args.alpha)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.GreaterOrEqual(t, cand.Length, 1)
				assert.LessOrEqual(t, cand.Length, len(tt.args.alpha))
			}
		})
	}
}
