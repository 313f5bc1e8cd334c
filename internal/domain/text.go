package domain

// Document is the raw text handed to the engine together with a label used in logs.
type Document struct {
	Name string
	Text string
}

// Sentence is one segment of a Document; Index is its position within a single segmentation.
type Sentence struct {
	Index int
	Text  string
}

// Correction is the outcome of a grammar pass.
type Correction struct {
	Suggestions []string
	Rewrite     string
}

// RequestKind enumerates the operations a host can ask for.
type RequestKind string

const (
	KindSummarize RequestKind = "summarize"
	KindGrammar   RequestKind = "grammar"
	KindBullets   RequestKind = "bullets"
)

// Reply is what the assistant hands back to the presentation layer.
type Reply struct {
	RequestID string
	Kind      RequestKind
	Source    string
	// Items holds summary sentences, suggestions or bullet lines depending on Kind.
	Items []string
	// Original and Rewrite are only set for grammar replies.
	Original     string
	Rewrite      string
	EditDistance int
	Text         string
	Skipped      bool
	Reason       string
}
