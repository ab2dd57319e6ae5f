package models

// ReplyKind tells the delivery adapter how to present a reply.
type ReplyKind string

const (
	ReplyText     ReplyKind = "text"
	ReplyChoices  ReplyKind = "choices"
	ReplyDocument ReplyKind = "document"
)

// Choice is one selectable button.
type Choice struct {
	Label string `json:"label"`
	Token string `json:"token"`
}

// TicketDocument is a rendered ticket artifact.
type TicketDocument struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// Reply is one thing the core asks the delivery adapter to show the user.
type Reply struct {
	Kind     ReplyKind       `json:"kind"`
	Text     string          `json:"text"` // Prompt, or caption for documents
	Choices  []Choice        `json:"choices,omitempty"`
	Document *TicketDocument `json:"document,omitempty"`
}

func TextReply(text string) Reply {
	return Reply{Kind: ReplyText, Text: text}
}

func ChoicesReply(text string, choices []Choice) Reply {
	return Reply{Kind: ReplyChoices, Text: text, Choices: choices}
}

func DocumentReply(caption string, doc TicketDocument) Reply {
	return Reply{Kind: ReplyDocument, Text: caption, Document: &doc}
}
