package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	internal_errors "github.com/anonboard/anonboard/internal/errors"
	"github.com/anonboard/anonboard/internal/logger"
)

// WriteErrorAndStatusCode maps a service error onto the response. Typed
// errors carry their own status and client-safe message; anything else is a
// store fault: it gets logged in full and the client only sees the
// action-specific internalMsg with a 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error, internalMsg string) {
	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) {
		http.Error(w, e.Message, e.StatusCode)
		return
	}
	logger.Log.Error(internalMsg, "err", err)
	http.Error(w, internalMsg, http.StatusInternalServerError)
}

// fieldMessages names the offending field the way the API promises to.
var fieldMessages = map[string]string{
	"ThreadId":       "bad thread_id",
	"ReplyId":        "bad reply_id",
	"Text":           "missing message text",
	"DeletePassword": "missing delete_password",
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return internal_errors.Validation("body is invalid json")
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			if msg, ok := fieldMessages[fieldErrs[0].StructField()]; ok {
				return internal_errors.Validation(msg)
			}
		}
		return internal_errors.Validation("required fields missing")
	}
	return nil
}
