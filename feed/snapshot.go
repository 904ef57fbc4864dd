package feed

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

// change stream operation kinds, matching mongodb operation types
const (
	OpInsert  = "insert"
	OpUpdate  = "update"
	OpReplace = "replace"
	OpDelete  = "delete"
)

// Event is one observed change on the requests collection. Post is nil for
// deletes.
type Event struct {
	Op   string
	ID   primitive.ObjectID
	Post *schema.Request
}

// Reduce folds an event into a feed snapshot and returns the new snapshot.
// The last write for a given id wins; newly inserted posts take the front,
// keeping most-recent-first ordering without re-sorting.
func Reduce(posts []schema.Request, ev Event) []schema.Request {
	switch ev.Op {
	case OpDelete:
		out := make([]schema.Request, 0, len(posts))
		for _, p := range posts {
			if p.ID != ev.ID {
				out = append(out, p)
			}
		}
		return out

	case OpInsert, OpUpdate, OpReplace:
		if ev.Post == nil {
			return posts
		}
		for i, p := range posts {
			if p.ID == ev.ID {
				out := make([]schema.Request, len(posts))
				copy(out, posts)
				out[i] = *ev.Post
				return out
			}
		}
		out := make([]schema.Request, 0, len(posts)+1)
		out = append(out, *ev.Post)
		out = append(out, posts...)
		return out
	}

	return posts
}

// Trim bounds a snapshot to at most limit posts, dropping the oldest.
func Trim(posts []schema.Request, limit int) []schema.Request {
	if limit <= 0 || len(posts) <= limit {
		return posts
	}
	return posts[:limit]
}
