package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompatibleDonorGroups(t *testing.T) {
	assert.Equal(t, []string{"O-"}, CompatibleDonorGroups("O-"))
	assert.Equal(t, []string{"O-", "O+", "A-", "A+"}, CompatibleDonorGroups("A+"))
	assert.Len(t, CompatibleDonorGroups("AB+"), 8, "AB+ is the universal recipient")
	assert.Empty(t, CompatibleDonorGroups("C+"))
}

func TestUniversalDonorReachesEveryone(t *testing.T) {
	for _, recipient := range []string{"O-", "O+", "A-", "A+", "B-", "B+", "AB-", "AB+"} {
		assert.Contains(t, CompatibleDonorGroups(recipient), "O-")
	}
}
