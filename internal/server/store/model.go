package store

// Message is one delivered piece of text. It has no identity beyond its
// sender, body, and current position in the sequence that holds it.
type Message struct {
	Sender string `json:"sender"`
	Body   string `json:"body"`
}

// Account is one directory entry. The credential is an opaque comparable
// token produced by the caller; the store never hashes. Every accepted
// message lives in exactly one of the two sequences: Unread in arrival
// order, Read in the order messages were popped out of Unread.
type Account struct {
	Credential string    `json:"credential"`
	Read       []Message `json:"read_messages"`
	Unread     []Message `json:"unread_messages"`
}
