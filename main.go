package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/devu-community/chatsview/api"
	"github.com/devu-community/chatsview/app"
	"github.com/devu-community/chatsview/domain"
	"github.com/devu-community/chatsview/ui"
	"github.com/devu-community/chatsview/util"
	"github.com/muesli/termenv"
)

func main() {
	versionFlag := flag.Bool("v", false, "Print version information")
	localFlag := flag.Bool("local", false, "Open the chats view in this terminal instead of serving SSH")
	postFlag := flag.Int64("post", 0, "Post to open in local mode (defaults to defaultPostId)")
	userFlag := flag.String("user", "", "Username to act as in local mode (defaults to $USER)")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s v%s\n", util.Name, util.GetVersion())
		os.Exit(0)
	}

	conf, err := util.ReadConf()
	if err != nil {
		log.Fatalln(err)
	}

	util.SetupLogging(conf.Conf.WithJournald)

	log.Println(util.GetNameAndVersion())
	log.Println("Configuration: ")
	log.Println(util.PrettyPrint(conf))

	if *localFlag {
		if err := runLocal(conf, *userFlag, *postFlag); err != nil {
			log.Fatalf("Local session error: %v", err)
		}
		return
	}

	application, err := app.New(conf)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := application.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// blocks until shutdown signal
	if err := application.Start(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// runLocal runs one chats view session on the controlling terminal
func runLocal(conf *util.AppConfig, username string, postId int64) error {
	if username == "" {
		username = os.Getenv("USER")
	}
	if ok, reason := util.IsValidUsername(username); !ok {
		return fmt.Errorf("invalid username %q: %s", username, reason)
	}
	if postId <= 0 {
		postId = conf.Conf.DefaultPostId
	}

	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())

	width, height, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		width, height = 120, 40
	}

	client := api.NewFromConfig(conf)
	m := ui.NewModel(client, conf, username, domain.PostId(postId), width, height)

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
