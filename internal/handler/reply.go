package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/anonboard/anonboard/internal/api"
	internal_errors "github.com/anonboard/anonboard/internal/errors"
	"github.com/anonboard/anonboard/internal/utils"
)

// GetReplies returns one full thread with every reply, identified by the
// thread_id query parameter.
func (h *Handler) GetReplies(w http.ResponseWriter, r *http.Request) {
	board := mux.Vars(r)["board"]
	threadId := r.URL.Query().Get("thread_id")
	if threadId == "" {
		utils.WriteErrorAndStatusCode(w, internal_errors.Validation("bad thread_id"), "error fetching data")
		return
	}

	page, err := h.reply.GetThread(r.Context(), board, threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "error fetching data")
		return
	}
	writeJSON(w, page)
}

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	board := mux.Vars(r)["board"]

	var body api.CreateReplyRequest
	if isJSON(r) {
		if err := utils.DecodeValidate(r.Body, &body); err != nil {
			utils.WriteErrorAndStatusCode(w, err, "error saving data")
			return
		}
	} else {
		body.ThreadId = r.PostFormValue("thread_id")
		body.Text = r.PostFormValue("text")
		body.DeletePassword = r.PostFormValue("delete_password")
	}

	if err := h.reply.Create(r.Context(), board, body.ThreadId, body.Text, body.DeletePassword); err != nil {
		utils.WriteErrorAndStatusCode(w, err, "error saving data")
		return
	}

	http.Redirect(w, r, "/b/"+board+"/"+body.ThreadId, http.StatusFound)
}

func (h *Handler) ReportReply(w http.ResponseWriter, r *http.Request) {
	board := mux.Vars(r)["board"]

	var body api.ReportReplyRequest
	if isJSON(r) {
		if err := utils.DecodeValidate(r.Body, &body); err != nil {
			utils.WriteErrorAndStatusCode(w, err, "error reporting reply")
			return
		}
	} else {
		body.ThreadId = r.PostFormValue("thread_id")
		body.ReplyId = r.PostFormValue("reply_id")
	}

	if err := h.reply.Report(r.Context(), board, body.ThreadId, body.ReplyId); err != nil {
		utils.WriteErrorAndStatusCode(w, err, "error reporting reply")
		return
	}
	writeSuccess(w)
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	board := mux.Vars(r)["board"]

	var body api.DeleteReplyRequest
	if isJSON(r) {
		if err := utils.DecodeValidate(r.Body, &body); err != nil {
			utils.WriteErrorAndStatusCode(w, err, "error deleting reply")
			return
		}
	} else {
		form := bodyValues(r)
		body.ThreadId = form.Get("thread_id")
		body.ReplyId = form.Get("reply_id")
		body.DeletePassword = form.Get("delete_password")
	}

	if err := h.reply.SoftDelete(r.Context(), board, body.ThreadId, body.ReplyId, body.DeletePassword); err != nil {
		utils.WriteErrorAndStatusCode(w, err, "error deleting reply")
		return
	}
	writeSuccess(w)
}
