package models

// Credentials is the request body of the register and login endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateNoteRequest is the request body of POST /notes.
// Any owner field sent by a client is ignored by the decoder.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Pinned  bool   `json:"pinned"`
}
