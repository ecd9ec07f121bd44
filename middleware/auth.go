package middleware

import (
	"log"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/devu-community/chatsview/util"
)

// AuthMiddleware rejects sessions whose SSH user is not a usable forum username.
// The SSH user is the identity the chats view acts as.
func AuthMiddleware(conf *util.AppConfig) wish.Middleware {
	return func(h ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			util.LogPublicKey(s)

			if ok, reason := util.IsValidUsername(s.User()); !ok {
				log.Printf("Rejected session for %q: %s", s.User(), reason)
				wish.Fatalln(s, reason)
				return
			}

			if s.PublicKey() != nil {
				log.Printf("%s authenticated with key %s", s.User(), util.PublicKeyToString(s.PublicKey()))
			}
			if conf.Conf.AccessToken == "" {
				log.Printf("No access token configured, comment edits by %s will be rejected", s.User())
			}

			h(s)
		}
	}
}
