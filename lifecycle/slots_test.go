package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

func TestFreeSlots(t *testing.T) {
	all := []string{"09:00", "10:00", "11:00"}

	assert.Equal(t, []string{"09:00", "11:00"}, FreeSlots(all, []string{"10:00"}))
	assert.Equal(t, all, FreeSlots(all, nil))
	assert.Equal(t, all, FreeSlots(all, []string{}))
	assert.Equal(t, []string{}, FreeSlots([]string{}, []string{"10:00"}))
	assert.Equal(t, []string{}, FreeSlots(all, all), "fully booked day has no free slots")
}

func TestFreeSlotsIgnoresBookedOrderAndDuplicates(t *testing.T) {
	all := []string{"09:00", "10:00", "11:00", "12:00"}
	booked := []string{"12:00", "10:00", "12:00", "not-a-slot"}

	assert.Equal(t, []string{"09:00", "11:00"}, FreeSlots(all, booked))
}

func TestFreeSlotsNeverReturnsBooked(t *testing.T) {
	booked := schema.AllDaySlots[2:5]
	for _, s := range FreeSlots(schema.AllDaySlots, booked) {
		assert.NotContains(t, booked, s)
	}
}

func TestSlotBookable(t *testing.T) {
	all := []string{"09:00", "10:00"}

	assert.True(t, SlotBookable("09:00", all, []string{"10:00"}))
	assert.False(t, SlotBookable("10:00", all, []string{"10:00"}))
	assert.False(t, SlotBookable("13:00", all, nil), "unknown labels are never bookable")
}
