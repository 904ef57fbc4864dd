package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

func testPosts() []schema.Request {
	return []schema.Request{
		{
			ID:         primitive.NewObjectID(),
			Type:       schema.RequestTypeDonor,
			Name:       "X",
			BloodGroup: "O+",
			Location:   "Pune",
			Donor:      &schema.DonorDetails{AvailableToDonate: true},
		},
		{
			ID:         primitive.NewObjectID(),
			Type:       schema.RequestTypeReceiver,
			Name:       "Y",
			BloodGroup: "A+",
			Location:   "Pune",
			Receiver:   &schema.ReceiverDetails{Urgency: schema.UrgencyCritical},
		},
		{
			ID:         primitive.NewObjectID(),
			Type:       schema.RequestTypeReceiver,
			Name:       "Zoya",
			BloodGroup: "O+",
			Location:   "Hyderabad",
			Receiver:   &schema.ReceiverDetails{Urgency: schema.UrgencyNormal},
		},
	}
}

func TestApplyBloodGroupFilter(t *testing.T) {
	posts := testPosts()

	out := Apply(posts, Spec{BloodGroup: "O+"})
	assert.Equal(t, []schema.Request{posts[0], posts[2]}, out)

	// case-insensitive exact match
	out = Apply(posts, Spec{BloodGroup: "o+"})
	assert.Equal(t, []schema.Request{posts[0], posts[2]}, out)

	out = Apply(posts[:2], Spec{BloodGroup: "O+"})
	assert.Equal(t, []schema.Request{posts[0]}, out)
}

func TestApplyConjunctiveFilters(t *testing.T) {
	posts := testPosts()

	out := Apply(posts, Spec{BloodGroup: "O+", Type: schema.RequestTypeReceiver})
	assert.Equal(t, []schema.Request{posts[2]}, out)

	out = Apply(posts, Spec{BloodGroup: "O+", Urgency: schema.UrgencyCritical})
	assert.Empty(t, out)
	assert.NotNil(t, out, "empty result is a valid, non-nil feed")
}

func TestApplyFreeTextFilter(t *testing.T) {
	posts := testPosts()

	// matches either name or location, case-insensitively
	assert.Len(t, Apply(posts, Spec{FreeText: "pune"}), 2)
	assert.Equal(t, []schema.Request{posts[2]}, Apply(posts, Spec{FreeText: "zoy"}))
	assert.Empty(t, Apply(posts, Spec{FreeText: "chennai"}))
}

func TestApplyPreservesOrder(t *testing.T) {
	posts := testPosts()

	out := Apply(posts, Spec{})
	assert.Equal(t, posts, out)

	// deterministic for the same inputs
	assert.Equal(t, out, Apply(posts, Spec{}))
}

func TestApplyEveryOutputMatches(t *testing.T) {
	posts := testPosts()
	spec := Spec{Type: schema.RequestTypeReceiver, FreeText: "pune"}

	out := Apply(posts, spec)
	for _, p := range out {
		assert.True(t, spec.Match(p))
	}

	excluded := len(posts) - len(out)
	count := 0
	for _, p := range posts {
		if !spec.Match(p) {
			count++
		}
	}
	assert.Equal(t, excluded, count, "every excluded post fails a predicate")
}
