package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example@gmail.COM", "example@gmail.com"},
		{"Example@Gmail.Com", "Example@gmail.com"}, // 本地部分保持原样
		{"  user@example.com  ", "user@example.com"},
		{"no-at-sign", "no-at-sign"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in), "输入: %q", tt.in)
	}
}
