package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"charm.land/lipgloss/v2"

	"portfolio-backend/internal/chat"
	"portfolio-backend/internal/models"
)

var (
	userStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("141")).
		Padding(0, 1)

	aiStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("141")).
		Padding(0, 1).
		Width(72)

	hintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true)

	promptStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)
)

func main() {
	server := flag.String("server", "http://localhost:8080", "portfolio backend base URL")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	conv := chat.NewConversation(
		chat.NewProxyClient(*server),
		chat.WithObserver(func(s chat.Snapshot) {
			if s.Loading {
				fmt.Println(hintStyle.Render("thinking..."))
			}
		}),
	)

	printMessage(conv.Messages()[0])
	fmt.Println(hintStyle.Render("Commands: /reset clears the chat, /quit exits."))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(promptStyle.Render("you> "))
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()

		switch strings.TrimSpace(line) {
		case "/quit", "/exit":
			return
		case "/reset":
			if err := conv.Reset(); err != nil {
				fmt.Println(hintStyle.Render(err.Error()))
				continue
			}
			printMessage(conv.Messages()[0])
			continue
		}

		before := len(conv.Messages())
		conv.SetInput(line)
		if err := conv.SubmitInput(ctx); err != nil {
			if errors.Is(err, chat.ErrBusy) {
				fmt.Println(hintStyle.Render("still waiting on the last reply"))
			}
			continue
		}

		msgs := conv.Messages()
		for _, m := range msgs[before:] {
			if m.Role == models.RoleAI {
				printMessage(m)
			}
		}

		if ctx.Err() != nil {
			return
		}
	}
}

func printMessage(m models.ChatMessage) {
	if m.Role == models.RoleUser {
		fmt.Println(userStyle.Render(m.Text))
		return
	}
	fmt.Println(aiStyle.Render(m.Text))
}
