// Package api defines the request payloads accepted by the board endpoints.
// Bodies arrive either as JSON or as urlencoded form fields; the json tags
// double as the form field names.
package api

type CreateThreadRequest struct {
	Text           string `json:"text" validate:"required"`
	DeletePassword string `json:"delete_password"`
}

type ReportThreadRequest struct {
	ThreadId string `json:"thread_id" validate:"required"`
}

// DeleteThreadRequest may also be supplied via query parameters; the query
// wins when it carries a thread_id. An empty password is legal here: it is
// compared verbatim against the stored one.
type DeleteThreadRequest struct {
	ThreadId       string `json:"thread_id" validate:"required"`
	DeletePassword string `json:"delete_password"`
}

type CreateReplyRequest struct {
	ThreadId       string `json:"thread_id" validate:"required"`
	Text           string `json:"text" validate:"required"`
	DeletePassword string `json:"delete_password"`
}

type ReportReplyRequest struct {
	ThreadId string `json:"thread_id" validate:"required"`
	ReplyId  string `json:"reply_id" validate:"required"`
}

type DeleteReplyRequest struct {
	ThreadId       string `json:"thread_id" validate:"required"`
	ReplyId        string `json:"reply_id" validate:"required"`
	DeletePassword string `json:"delete_password" validate:"required"`
}
