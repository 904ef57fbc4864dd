package consts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bloodlink-inc/bloodlink-api/consts"
)

func TestStateRegion(t *testing.T) {
	region, err := consts.StateRegion("Telangana")
	assert.NoError(t, err)
	assert.Contains(t, region.Districts, "Hyderabad")
	assert.Contains(t, region.Constituencies, "Secunderabad")

	region, err = consts.StateRegion("Andhra Pradesh")
	assert.NoError(t, err)
	assert.Contains(t, region.Districts, "Guntur")
	assert.Contains(t, region.Constituencies, "Vijayawada")
}

func TestStateRegionUnknown(t *testing.T) {
	_, err := consts.StateRegion("Atlantis")
	assert.Error(t, err)
}
