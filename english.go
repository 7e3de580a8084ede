package vigenere

const alphabetSize = 26

// englishFreq holds expected relative frequencies for A-Z.
// http://practicalcryptography.com/cryptanalysis/letter-frequencies-various-languages/english-letter-frequencies/
var englishFreq = [alphabetSize]float64{
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015, // A-G
	0.06094, 0.06966, 0.00153, 0.00772, 0.04025, 0.02406, 0.06749, // H-N
	0.07507, 0.01929, 0.00095, 0.05987, 0.06327, 0.09056, 0.02758, // O-U
	0.00978, 0.02360, 0.00150, 0.01974, 0.00074, // V-Z
}

// letterCounts tallies A-Z occurrences in an upper-case alphabetic stream.
func letterCounts(alpha string) ([alphabetSize]int, int) {
	var counts [alphabetSize]int
	for i := 0; i < len(alpha); i++ {
		counts[alpha[i]-'A']++
	}
	return counts, len(alpha)
}

// chiSquared compares an observed letter distribution against englishFreq.
// Lower is a closer match.
func chiSquared(counts [alphabetSize]int, total int) float64 {
	if total == 0 {
		return 0
	}
	var chiSq float64
	for i := 0; i < alphabetSize; i++ {
		observed := float64(counts[i]) / float64(total)
		expected := englishFreq[i]
		diff := observed - expected
		chiSq += diff * diff / expected
	}
	return chiSq
}

// indexOfCoincidence is the probability that two letters drawn from the
// stream are identical. English text sits near 0.065, uniform noise near
// 0.0385. Returns 0 for streams shorter than 2.
func indexOfCoincidence(counts [alphabetSize]int, total int) float64 {
	if total < 2 {
		return 0
	}
	var sum float64
	for _, f := range counts {
		sum += float64(f * (f - 1))
	}
	return sum / (float64(total) * float64(total-1))
}
