package driven

// WordSource provides an immutable ordered list of words.
// An empty list means the wordlist could not be loaded.
type WordSource interface {
	// Words returns the word list. Callers must not modify it.
	Words() []string

	// Len returns the number of words.
	Len() int
}
