package core

// Book is the assembled input to a document renderer: an aggregate question
// directory followed by the full content of every artifact in one export
// batch.
type Book struct {
	Title     string        `json:"title"`
	Questions []QuestionRef `json:"questions,omitempty"`
	Files     []FileContent `json:"files"`
}

// QuestionRef is one entry in the book's question directory.
type QuestionRef struct {
	// Text is the first line of a user turn, as recovered from the
	// artifact's Question Index.
	Text string `json:"text"`

	// Source is the base name of the artifact the question came from.
	Source string `json:"source"`
}

// FileContent is one artifact's full normalized text.
type FileContent struct {
	// Rel is the artifact path relative to the artifact root.
	Rel string `json:"rel"`

	Content string `json:"content"`
}
