package lifecycle

// donorsFor maps a recipient blood group to the donor groups it can
// receive from.
var donorsFor = map[string][]string{
	"O-":  {"O-"},
	"O+":  {"O-", "O+"},
	"A-":  {"O-", "A-"},
	"A+":  {"O-", "O+", "A-", "A+"},
	"B-":  {"O-", "B-"},
	"B+":  {"O-", "O+", "B-", "B+"},
	"AB-": {"O-", "A-", "B-", "AB-"},
	"AB+": {"O-", "O+", "A-", "A+", "B-", "B+", "AB-", "AB+"},
}

// CompatibleDonorGroups returns the blood groups whose donors can give to a
// recipient of the given group. Unknown groups yield an empty list.
func CompatibleDonorGroups(recipient string) []string {
	groups, ok := donorsFor[recipient]
	if !ok {
		return []string{}
	}
	out := make([]string, len(groups))
	copy(out, groups)
	return out
}
