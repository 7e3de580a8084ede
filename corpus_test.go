package vigenere

// englishCorpus is a plain English passage used by the analysis tests. The
// statistical components need a realistic letter distribution and ordinary
// repeated words, not a contrived sample.
const englishCorpus = `The history of secret writing is the history of a long
contest between those who make ciphers and those who break them. For many
centuries the simple substitution cipher was thought to be secure, until
scholars noticed that the letters of a language do not appear with equal
frequency. Once the frequencies of the letters were counted and compared, the
substitution cipher fell, and the makers of ciphers were forced to find a
stronger method. The answer was the polyalphabetic cipher, in which the same
letter of the message may be hidden behind many different letters of the
alphabet. For three hundred years this cipher was called the indecipherable
cipher, and the people who used it believed that no enemy could ever read
their letters. They were wrong. The weakness of the cipher is the repeating
key. When the same key is used again and again over a long message, the
patterns of the language begin to show through the disguise. A patient
analyst can measure the distance between repeated fragments of the secret
text, and from those distances the length of the key can be found. Once the
length of the key is known, the message breaks apart into simple ciphers,
and each of them falls to the counting of letters just as the old ciphers
did. The lesson has been learned many times since then. A cipher is not
strong because its maker cannot break it. A cipher is strong only when it
resists the most determined and most inventive attack.`

func corpusAlpha() string {
	alpha, _ := normalize(englishCorpus)
	return alpha
}
