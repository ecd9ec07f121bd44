package middleware

import (
	"testing"

	"github.com/devu-community/chatsview/domain"
)

func TestPostIdFromCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  []string
		want domain.PostId
	}{
		{"no command", nil, 1},
		{"valid id", []string{"42"}, 42},
		{"extra args", []string{"7", "ignored"}, 7},
		{"not a number", []string{"abc"}, 1},
		{"zero", []string{"0"}, 1},
		{"negative", []string{"-3"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PostIdFromCommand(tt.cmd, 1); got != tt.want {
				t.Errorf("PostIdFromCommand(%v) = %d, want %d", tt.cmd, got, tt.want)
			}
		})
	}
}
