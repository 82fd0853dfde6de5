package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/anonboard/anonboard/internal/api"
	"github.com/anonboard/anonboard/internal/utils"
)

// GetThreads lists up to the configured number of most recently bumped
// threads on a board, each with its reply preview window.
func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	board := mux.Vars(r)["board"]

	listings, err := h.thread.Recent(r.Context(), board)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "error fetching data")
		return
	}
	writeJSON(w, listings)
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	board := mux.Vars(r)["board"]

	var body api.CreateThreadRequest
	if isJSON(r) {
		if err := utils.DecodeValidate(r.Body, &body); err != nil {
			utils.WriteErrorAndStatusCode(w, err, "error saving data")
			return
		}
	} else {
		body.Text = r.PostFormValue("text")
		body.DeletePassword = r.PostFormValue("delete_password")
	}

	id, err := h.thread.Create(r.Context(), board, body.Text, body.DeletePassword)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "error saving data")
		return
	}

	http.Redirect(w, r, "/b/"+board+"/"+id.Hex(), http.StatusSeeOther)
}

func (h *Handler) ReportThread(w http.ResponseWriter, r *http.Request) {
	board := mux.Vars(r)["board"]

	var body api.ReportThreadRequest
	if isJSON(r) {
		if err := utils.DecodeValidate(r.Body, &body); err != nil {
			utils.WriteErrorAndStatusCode(w, err, "error reporting thread")
			return
		}
	} else {
		body.ThreadId = r.PostFormValue("thread_id")
	}

	if err := h.thread.Report(r.Context(), board, body.ThreadId); err != nil {
		utils.WriteErrorAndStatusCode(w, err, "error reporting thread")
		return
	}
	writeSuccess(w)
}

// DeleteThread takes thread_id and delete_password from the query string
// when a thread_id is present there, otherwise from the body.
func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	board := mux.Vars(r)["board"]

	var body api.DeleteThreadRequest
	if q := r.URL.Query(); q.Get("thread_id") != "" {
		body.ThreadId = q.Get("thread_id")
		body.DeletePassword = q.Get("delete_password")
	} else if isJSON(r) {
		if err := utils.DecodeValidate(r.Body, &body); err != nil {
			utils.WriteErrorAndStatusCode(w, err, "error deleting thread")
			return
		}
	} else {
		form := bodyValues(r)
		body.ThreadId = form.Get("thread_id")
		body.DeletePassword = form.Get("delete_password")
	}

	if err := h.thread.SoftDelete(r.Context(), board, body.ThreadId, body.DeletePassword); err != nil {
		utils.WriteErrorAndStatusCode(w, err, "error deleting thread")
		return
	}
	writeSuccess(w)
}
