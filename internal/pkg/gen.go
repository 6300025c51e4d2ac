package pkg

import "math/rand/v2"

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digits  = "0123456789"
)

// sessionIDLayout - character class of each position: two letters, two digits, one letter.
var sessionIDLayout = [...]string{letters, letters, digits, digits, letters}

// GenerateSessionID - generates a short display tag for a play session. It is not unique and not secret.
func GenerateSessionID() string {
	id := make([]byte, len(sessionIDLayout))
	for i, class := range sessionIDLayout {
		id[i] = class[rand.IntN(len(class))] //nolint: gosec // display-only tag
	}

	return string(id)
}
