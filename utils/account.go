package utils

import "github.com/google/uuid"

// AccountID derives the stable account id of a verified phone number. The
// same phone always maps to the same id, so logging in from a new device
// never creates a second account.
func AccountID(phone string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(phone)).String()
}
