package lifecycle

// FreeSlots returns the labels of allSlots that are not present in booked,
// preserving the order of allSlots. booked is treated as a set, so its
// ordering and duplicates do not matter. An empty result is valid and means
// "no slots left", not an error.
func FreeSlots(allSlots, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, s := range booked {
		taken[s] = struct{}{}
	}

	free := make([]string, 0, len(allSlots))
	for _, s := range allSlots {
		if _, ok := taken[s]; !ok {
			free = append(free, s)
		}
	}
	return free
}

// SlotBookable reports whether slot is a member of the free-slot set
// computed from allSlots and booked.
func SlotBookable(slot string, allSlots, booked []string) bool {
	for _, s := range FreeSlots(allSlots, booked) {
		if s == slot {
			return true
		}
	}
	return false
}
