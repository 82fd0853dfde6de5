package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Client-facing views. These are explicit allow-lists: a field absent here
// (delete_password, reported_on, deleted_on, bumped_on_int, board) cannot
// leak no matter what the stored document holds. Soft-deleted threads are
// filtered out by the storage query and never reach these constructors;
// soft-deleted replies stay visible with their redacted text.

type ReplyView struct {
	Id        primitive.ObjectID `json:"_id"`
	Text      string             `json:"text"`
	CreatedOn string             `json:"created_on"`
}

// ThreadListing is the board-listing shape: thread fields plus a trailing
// window of its replies.
type ThreadListing struct {
	Id        primitive.ObjectID `json:"_id"`
	Text      string             `json:"text"`
	CreatedOn string             `json:"created_on"`
	BumpedOn  string             `json:"bumped_on"`
	Replies   []ReplyView        `json:"replies"`
}

// ThreadPage is the full-thread shape: same thread fields, all replies.
type ThreadPage struct {
	Id        primitive.ObjectID `json:"_id"`
	Text      string             `json:"text"`
	CreatedOn string             `json:"created_on"`
	BumpedOn  string             `json:"bumped_on"`
	Replies   []ReplyView        `json:"replies"`
}

// Listing shapes a thread for the board listing, keeping only the last
// `preview` replies (insertion order == chronological order, so the tail is
// the most recent).
func (t Thread) Listing(preview int) ThreadListing {
	replies := t.Replies
	if len(replies) > preview {
		replies = replies[len(replies)-preview:]
	}
	return ThreadListing{
		Id:        t.Id,
		Text:      t.Text,
		CreatedOn: t.CreatedOn,
		BumpedOn:  t.BumpedOn,
		Replies:   replyViews(replies),
	}
}

// Page shapes a thread for direct fetch, keeping every reply.
func (t Thread) Page() ThreadPage {
	return ThreadPage{
		Id:        t.Id,
		Text:      t.Text,
		CreatedOn: t.CreatedOn,
		BumpedOn:  t.BumpedOn,
		Replies:   replyViews(t.Replies),
	}
}

func replyViews(replies []Reply) []ReplyView {
	views := make([]ReplyView, 0, len(replies))
	for _, r := range replies {
		views = append(views, ReplyView{Id: r.Id, Text: r.Text, CreatedOn: r.CreatedOn})
	}
	return views
}
