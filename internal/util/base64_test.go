package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {

	t.Run("encoded value is replaced in place", func(t *testing.T) {
		v := "ZnVuZHRyYWNrZXI="
		Decode(&v)
		assert.Equal(t, "fundtracker", v)
	})

	t.Run("plain value stays as is", func(t *testing.T) {
		v := "not base64 at all!"
		Decode(&v)
		assert.Equal(t, "not base64 at all!", v)
	})
}
