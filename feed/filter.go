// Package feed filters and maintains the recency-ordered list of blood
// request posts shown to users. Everything in here is pure: the store hands
// in snapshots and events, the package never touches I/O itself.
package feed

import (
	"strings"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

// Spec is a compound feed filter. Empty fields put no constraint on their
// dimension; set fields compose conjunctively.
type Spec struct {
	BloodGroup string `form:"blood_group" json:"blood_group"`
	Urgency    string `form:"urgency" json:"urgency"`
	Type       string `form:"type" json:"type"`
	FreeText   string `form:"q" json:"q"`
}

// Match reports whether a post satisfies every constraint of the spec.
// Blood group matching is case-insensitive exact; free text is a
// case-insensitive substring test against name and location.
func (s Spec) Match(post schema.Request) bool {
	if s.BloodGroup != "" && !strings.EqualFold(post.BloodGroup, s.BloodGroup) {
		return false
	}
	if s.Urgency != "" {
		if post.Receiver == nil || post.Receiver.Urgency != s.Urgency {
			return false
		}
	}
	if s.Type != "" && post.Type != s.Type {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(s.FreeText)); q != "" {
		if !strings.Contains(strings.ToLower(post.Name), q) &&
			!strings.Contains(strings.ToLower(post.Location), q) {
			return false
		}
	}
	return true
}

// Apply returns the posts matching spec, preserving the order of the input
// collection. The result is never nil, so an empty feed stays
// distinguishable from a feed that has not loaded yet.
func Apply(posts []schema.Request, spec Spec) []schema.Request {
	out := make([]schema.Request, 0, len(posts))
	for _, p := range posts {
		if spec.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
