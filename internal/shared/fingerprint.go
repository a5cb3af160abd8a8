package shared

import (
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

var fingerprintNS = uuid.MustParse("7f1c2a9e-4d0b-4f6e-9a51-3c8e2b6d0f14")

// Fingerprint returns a name-based UUID of v's JSON encoding. Equal values
// always produce equal fingerprints.
func Fingerprint(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return uuid.NewSHA1(fingerprintNS, b).String(), nil
}
