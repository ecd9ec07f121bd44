package middleware

import (
	"log"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/devu-community/chatsview/api"
	"github.com/devu-community/chatsview/domain"
	"github.com/devu-community/chatsview/ui"
	"github.com/devu-community/chatsview/util"
)

// MainTui serves the chats view to every session. The post is taken from the
// first command argument (ssh host 42) and falls back to the configured default.
func MainTui(conf *util.AppConfig) wish.Middleware {
	client := api.NewFromConfig(conf)

	teaHandler := func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := s.Pty()

		postId := PostIdFromCommand(s.Command(), domain.PostId(conf.Conf.DefaultPostId))
		log.Printf("%s opened post %d", s.User(), postId)

		m := ui.NewModel(client, conf, s.User(), postId, pty.Window.Width, pty.Window.Height)
		return m, []tea.ProgramOption{tea.WithAltScreen()}
	}
	return bm.Middleware(teaHandler)
}

// PostIdFromCommand parses the requested post id, returning fallback when
// none or an invalid one is given
func PostIdFromCommand(cmd []string, fallback domain.PostId) domain.PostId {
	if len(cmd) == 0 {
		return fallback
	}
	id, err := strconv.ParseInt(cmd[0], 10, 64)
	if err != nil || id <= 0 {
		log.Printf("Ignoring invalid post id %q", cmd[0])
		return fallback
	}
	return domain.PostId(id)
}
