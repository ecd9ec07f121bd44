package util

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/ssh"
	"github.com/mattn/go-runewidth"
	gossh "golang.org/x/crypto/ssh"
)

//go:embed version.txt
var embeddedVersion string

func LogPublicKey(s ssh.Session) {
	log.Printf("%s@%s opened a new ssh-session..", s.User(), s.RemoteAddr())
}

func PublicKeyToString(s ssh.PublicKey) string {
	return strings.TrimSpace(string(gossh.MarshalAuthorizedKey(s)))
}

func GetVersion() string {
	return strings.TrimSpace(embeddedVersion)
}

func GetNameAndVersion() string {
	return fmt.Sprintf("%s / %s", Name, GetVersion())
}

func PrettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", " ")
	return string(s)
}

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m|\x1b\]8;;[^\x1b]*\x1b\\`)

// TruncateVisibleLength truncates s to maxLen terminal cells, ignoring ANSI escape
// sequences. Wide runes (Hangul, CJK) count as two cells.
func TruncateVisibleLength(s string, maxLen int) string {
	visible := ansiRegex.ReplaceAllString(s, "")
	if runewidth.StringWidth(visible) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return runewidth.Truncate(visible, maxLen, "")
	}

	// Walk the string, copying escapes untouched and counting cells of visible runes
	var b strings.Builder
	width := 0
	rest := s
	for len(rest) > 0 {
		if loc := ansiRegex.FindStringIndex(rest); loc != nil && loc[0] == 0 {
			b.WriteString(rest[:loc[1]])
			rest = rest[loc[1]:]
			continue
		}
		r, size := utf8.DecodeRuneInString(rest)
		w := runewidth.RuneWidth(r)
		if width+w > maxLen-3 {
			break
		}
		width += w
		b.WriteString(rest[:size])
		rest = rest[size:]
	}

	return b.String() + "..." + "\x1b[0m"
}
