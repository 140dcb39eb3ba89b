package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"llm-chat/internal/chatui"
	"llm-chat/internal/config"
	"llm-chat/internal/tui"
)

// Usage:
//
//	chat-tui               interactive terminal chat
//	chat-tui <message...>  send one message, print the reply and exit
func main() {
	cfg := config.LoadClient()
	oneShot := len(os.Args) > 1

	switch {
	case cfg.LogFile != "":
		f, err := tea.LogToFile(cfg.LogFile, "chat-tui")
		if err != nil {
			log.Fatalf("✗ could not open log file: %v", err)
		}
		defer f.Close()
	case oneShot:
		log.SetOutput(os.Stderr)
	default:
		// Anything written to stdout would corrupt the terminal UI.
		log.SetOutput(io.Discard)
	}

	backend, ok := chatui.LookupBackend(cfg.Backend)
	if !ok {
		log.Printf("unknown backend %q, using %s", cfg.Backend, chatui.GeminiBackend.Name)
		backend = chatui.GeminiBackend
	}

	session := chatui.NewSession(chatui.ParseTheme(cfg.Theme), backend)
	client := chatui.NewClient(cfg.ServerURL, nil)
	dispatcher := chatui.NewDispatcher(session, client, log.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if oneShot {
		reply := dispatcher.Send(ctx, strings.Join(os.Args[1:], " "))
		fmt.Println(reply.Text)
		if reply.Text == chatui.ErrorText(backend) {
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(tui.New(ctx, session, dispatcher), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Printf("chat-tui: %v", err)
		os.Exit(1)
	}
}
