package utils

import (
	"math/rand"
	"time"
)

const temporaryPasswordLength = 10
const letterBytes = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateTemporaryPassword builds the initial password for a provisioned
// parent account. Ambiguous characters (0/O, 1/l/I) are left out.
func GenerateTemporaryPassword() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	b := make([]byte, temporaryPasswordLength)
	for i := range b {
		b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
	}
	return string(b)
}
