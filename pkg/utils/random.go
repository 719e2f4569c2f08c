package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	// characters safe for display labels (no confusable 0, O, l, 1)
	alphanumeric = "abcdefghjkmnpqrstuvwxyz23456789"

	taskUIDSuffixLen = 9
)

// GenerateRandomString produces a random string of n characters.
func GenerateRandomString(n int) string {
	result := make([]byte, n)
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphanumeric))))
		if err != nil {
			// fallback when crypto/rand is unavailable
			result[i] = alphanumeric[i%len(alphanumeric)]
			continue
		}
		result[i] = alphanumeric[num.Int64()]
	}
	return string(result)
}

// GenerateTaskUID builds the human-readable task label,
// e.g. "TASK-1717405833123-k7m2p9qwx". Collisions are a cosmetic defect
// only; the row's UUID is the true identity.
func GenerateTaskUID() string {
	return fmt.Sprintf("TASK-%d-%s", time.Now().UnixMilli(), GenerateRandomString(taskUIDSuffixLen))
}
