package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum64(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Sum64([]byte(tt.data)))
		})
	}
}

func TestSum64Runes(t *testing.T) {
	runes := []rune("🌀🌈🌊 mixed ascii é")
	assert.Equal(t, Sum64([]byte(string(runes))), Sum64Runes(runes))
	assert.Equal(t, Sum64(nil), Sum64Runes(nil))
	assert.NotEqual(t, Sum64Runes([]rune("🌀🌈")), Sum64Runes([]rune("🌈🌀")))
}
