package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

func TestReduceInsertPrepends(t *testing.T) {
	posts := testPosts()

	fresh := schema.Request{ID: primitive.NewObjectID(), Name: "New"}
	out := Reduce(posts, Event{Op: OpInsert, ID: fresh.ID, Post: &fresh})

	assert.Len(t, out, len(posts)+1)
	assert.Equal(t, fresh, out[0], "new posts take recency position")
	assert.Equal(t, posts, out[1:])
}

func TestReduceUpdateReplacesInPlace(t *testing.T) {
	posts := testPosts()

	changed := posts[1]
	changed.Name = "Y updated"
	out := Reduce(posts, Event{Op: OpUpdate, ID: changed.ID, Post: &changed})

	assert.Len(t, out, len(posts))
	assert.Equal(t, "Y updated", out[1].Name)
	assert.Equal(t, posts[0], out[0])

	// the input snapshot is left alone
	assert.Equal(t, "Y", posts[1].Name)
}

func TestReduceUpdateOfUnseenPostPrepends(t *testing.T) {
	posts := testPosts()

	unseen := schema.Request{ID: primitive.NewObjectID(), Name: "Unseen"}
	out := Reduce(posts, Event{Op: OpReplace, ID: unseen.ID, Post: &unseen})

	assert.Len(t, out, len(posts)+1)
	assert.Equal(t, unseen, out[0])
}

func TestReduceDelete(t *testing.T) {
	posts := testPosts()

	out := Reduce(posts, Event{Op: OpDelete, ID: posts[0].ID})
	assert.Equal(t, posts[1:], out)

	// deleting an unknown id is a no-op
	out = Reduce(posts, Event{Op: OpDelete, ID: primitive.NewObjectID()})
	assert.Equal(t, posts, out)
}

func TestReduceLastWriteWins(t *testing.T) {
	posts := testPosts()
	id := posts[0].ID

	first := posts[0]
	first.Name = "first write"
	second := posts[0]
	second.Name = "second write"

	out := Reduce(posts, Event{Op: OpUpdate, ID: id, Post: &first})
	out = Reduce(out, Event{Op: OpUpdate, ID: id, Post: &second})

	assert.Equal(t, "second write", out[0].Name)
	assert.Len(t, out, len(posts))
}

func TestTrim(t *testing.T) {
	posts := testPosts()

	assert.Equal(t, posts, Trim(posts, 50))
	assert.Equal(t, posts[:2], Trim(posts, 2))
	assert.Equal(t, posts, Trim(posts, 0), "zero limit means unbounded")
}
