package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeFormat is the wire format for every timestamp field. The listing order
// does not depend on parsing these strings; it uses BumpedOnInt.
const TimeFormat = time.RFC1123

// DeletedMarker replaces a reply's text when it is soft-deleted.
const DeletedMarker = "[deleted]"

// Thread is the full stored document, embedded replies included.
// ReportedOn/DeletedOn are presence-flags: unset means never
// reported/deleted. Neither this struct nor Reply is ever serialized to a
// client directly; responses go through the view types in view.go.
type Thread struct {
	Id             primitive.ObjectID `bson:"_id"`
	Board          string             `bson:"board"`
	Text           string             `bson:"text"`
	CreatedOn      string             `bson:"created_on"`
	BumpedOn       string             `bson:"bumped_on"`
	BumpedOnInt    int64              `bson:"bumped_on_int"`
	DeletePassword string             `bson:"delete_password"`
	ReportedOn     string             `bson:"reported_on,omitempty"`
	DeletedOn      string             `bson:"deleted_on,omitempty"`
	Replies        []Reply            `bson:"replies"`
}

type Reply struct {
	Id             primitive.ObjectID `bson:"_id"`
	Text           string             `bson:"text"`
	CreatedOn      string             `bson:"created_on"`
	DeletePassword string             `bson:"delete_password"`
	ReportedOn     string             `bson:"reported_on,omitempty"`
	DeletedOn      string             `bson:"deleted_on,omitempty"`
}

// NewThread builds a fresh thread document: created_on == bumped_on,
// empty reply array. The password may be empty; it is still compared
// verbatim on delete.
func NewThread(board, text, password string, now time.Time) Thread {
	nowStr := now.Format(TimeFormat)
	return Thread{
		Id:             primitive.NewObjectID(),
		Board:          board,
		Text:           text,
		CreatedOn:      nowStr,
		BumpedOn:       nowStr,
		BumpedOnInt:    now.UnixMilli(),
		DeletePassword: password,
		Replies:        []Reply{},
	}
}

func NewReply(text, password string, now time.Time) Reply {
	return Reply{
		Id:             primitive.NewObjectID(),
		Text:           text,
		CreatedOn:      now.Format(TimeFormat),
		DeletePassword: password,
	}
}
