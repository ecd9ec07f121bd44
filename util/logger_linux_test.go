//go:build linux

package util

import (
	"testing"

	"github.com/coreos/go-systemd/v22/journal"
)

func TestPriorityOf(t *testing.T) {
	tests := []struct {
		msg  string
		want journal.Priority
	}{
		{"Failed to fetch post 1: network failure", journal.PriErr},
		{"HTTP server error: closed", journal.PriErr},
		{"Warning: could not load .env", journal.PriWarning},
		{`Rejected session for "a b": bad`, journal.PriWarning},
		{"alice opened post 1", journal.PriInfo},
	}

	for _, tt := range tests {
		if got := priorityOf(tt.msg); got != tt.want {
			t.Errorf("priorityOf(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}
