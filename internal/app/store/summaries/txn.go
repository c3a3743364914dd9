package summarystore

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// Server error codes returned when a deployment cannot run transactions:
// IllegalOperation (20), InvalidOptions (51) and OperationNotSupportedInTransaction (263).
var txnUnsupportedCodes = []int{20, 51, 263}

var txnUnsupportedWords = []string{"transaction", "replica set", "session", "not supported", "illegal operation"}

// IsNotSupported reports whether err means the server cannot run
// multi-document transactions, as on a standalone mongod. Callers fall back
// to non-transactional writes when it returns true.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}
	var se mongo.ServerError
	if errors.As(err, &se) {
		for _, code := range txnUnsupportedCodes {
			if se.HasErrorCode(code) {
				return true
			}
		}
	}

	// Some drivers and proxies only say so in the message; require two
	// markers so a plain "transaction failed" does not match.
	msg := strings.ToLower(err.Error())
	hits := 0
	for _, w := range txnUnsupportedWords {
		if strings.Contains(msg, w) {
			hits++
		}
	}
	return hits >= 2
}
