package util

import "encoding/base64"

// Decode replaces a base64-encoded config value with its plain form in place.
// Values that do not decode are left untouched.
func Decode(value *string) {

	decoded, err := base64.StdEncoding.DecodeString(*value)
	if err != nil {
		return
	}
	*value = string(decoded)
}
