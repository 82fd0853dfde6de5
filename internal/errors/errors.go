package errors

import "net/http"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Validation: malformed or missing input. The message names the offending
// field ("bad thread_id", "missing message text").
func Validation(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// NotFound: well-formed request with no matching non-deleted target.
func NotFound(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

// Forbidden: delete with a password that matched nothing. Deliberately
// indistinguishable from "already deleted" and "nonexistent id": the
// conditional update only reports zero matches, and answering 404 here
// would confirm which ids exist to password-guessing clients.
func Forbidden() *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: "incorrect password", StatusCode: http.StatusBadRequest}
}
