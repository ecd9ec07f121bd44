package header

import (
	"strings"
	"testing"

	"github.com/devu-community/chatsview/util"
)

func TestGetHeaderStyle(t *testing.T) {
	result := GetHeaderStyle("testuser", 42, 120)

	if !strings.Contains(result, "testuser") {
		t.Errorf("Header should contain username, got: %s", result)
	}
	if !strings.Contains(result, util.Name+" v") {
		t.Errorf("Header should contain version, got: %s", result)
	}
	if !strings.Contains(result, "chats #42") {
		t.Errorf("Header should contain post id, got: %s", result)
	}
}

func TestGetHeaderStyle_Guest(t *testing.T) {
	result := GetHeaderStyle("", 1, 80)

	if !strings.Contains(result, "guest") {
		t.Errorf("Header without a user should show guest, got: %s", result)
	}
}

func TestGetHeaderStyle_WidthHandling(t *testing.T) {
	for _, width := range []int{40, 80, 120, 150} {
		result := GetHeaderStyle("개발자", 7, width)

		if !strings.Contains(result, "개발자") {
			t.Errorf("Header with width %d should contain username", width)
		}
	}
}
