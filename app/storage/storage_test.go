package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvatarObjectName(t *testing.T) {
	name := AvatarObjectName("Meera", "Iyer")

	assert.True(t, strings.HasPrefix(name, "Meera-Iyer-"))
	assert.True(t, strings.HasSuffix(name, ".png"))
}

func TestObjectNameFromURL(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Meera-Iyer-1756600000000.png", "Meera-Iyer-1756600000000.png"},
		{"http://localhost:9000/avatars/Meera-Iyer-1756600000000.png", "Meera-Iyer-1756600000000.png"},
		{"https://cdn.example.com/bucket/nested/object.png?X-Amz-Signature=abc", "object.png"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ObjectNameFromURL(tc.raw), tc.raw)
	}
}
