package services

import (
	"fmt"
	"net/url"
	"strings"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/portfolio"
)

const terminalVersion = "2.0.25"

var terminalHelp = []string{
	"Available commands:",
	"  about     - Display developer profile",
	"  skills    - List technical capabilities",
	"  projects  - Show key projects",
	"  contact   - Display contact info",
	"  hire      - Initiate recruitment protocol",
	"  clear     - Clear terminal history",
	"  exit      - Close terminal session",
}

// featuredProjects are the ones the terminal lists, in order.
var featuredProjects = []string{
	"Adaptive Entropy UDA",
	"SmartCourseAdvisor (RAG)",
	"EmployNet Portal",
	"Road Damage Detection",
}

// TerminalService runs the easter-egg shell. It is stateless; the client keeps history.
type TerminalService struct{}

func NewTerminalService() *TerminalService {
	return &TerminalService{}
}

func (s *TerminalService) Banner() []models.TerminalEntry {
	return []models.TerminalEntry{
		{Type: models.EntrySystem, Lines: []string{fmt.Sprintf("SAAD.AI TERMINAL [Version %s]", terminalVersion)}},
		{Type: models.EntrySystem, Lines: []string{fmt.Sprintf("(c) 2025 %s. All rights reserved.", portfolio.OwnerName)}},
		{Type: models.EntryInfo, Lines: []string{`Type "help" to see available commands.`}},
	}
}

func (s *TerminalService) Execute(raw string) models.TerminalResult {
	cmd := strings.ToLower(strings.TrimSpace(raw))

	switch cmd {
	case "clear":
		return models.TerminalResult{Entries: []models.TerminalEntry{}, Clear: true}
	case "exit":
		return models.TerminalResult{Entries: []models.TerminalEntry{}, Exit: true}
	}

	result := models.TerminalResult{
		Entries: []models.TerminalEntry{{Type: models.EntryUser, Lines: []string{raw}}},
	}

	switch cmd {
	case "":
	case "help":
		result.Entries = append(result.Entries, response(terminalHelp...))
	case "about":
		result.Entries = append(result.Entries, response(fmt.Sprintf("%s | %s", portfolio.OwnerName, portfolio.Headline)))
	case "skills":
		result.Entries = append(result.Entries, response("Python, PyTorch, TensorFlow, React, Node.js, Oracle Cloud, LangChain, Docker, MongoDB, PostgreSQL."))
	case "projects":
		lines := make([]string, len(featuredProjects))
		for i, p := range featuredProjects {
			lines[i] = fmt.Sprintf("%d. %s", i+1, p)
		}
		result.Entries = append(result.Entries, response(lines...))
	case "contact":
		c := portfolio.ContactInfo()
		result.Entries = append(result.Entries, response(
			"Email: "+c.Email,
			"GitHub: "+strings.TrimPrefix(c.GitHub, "https://"),
			"LinkedIn: "+strings.TrimPrefix(c.LinkedIn, "https://www."),
		))
	case "hire":
		result.Entries = append(result.Entries, response(
			"INITIATING RECRUITMENT PROTOCOL...",
			"-----------------------------------",
			"Candidate: "+portfolio.OwnerName,
			"Status: Available for Hire",
			"Match Score: 99.9%",
			"-----------------------------------",
			"Action: Opening mail client...",
		))
		result.Redirect = hireMailto()
	default:
		result.Entries = append(result.Entries, models.TerminalEntry{
			Type:  models.EntryError,
			Lines: []string{"Command not found: " + raw},
		})
	}

	return result
}

func response(lines ...string) models.TerminalEntry {
	return models.TerminalEntry{Type: models.EntryResponse, Lines: lines}
}

func hireMailto() string {
	q := url.Values{}
	q.Set("subject", "Interview Request")
	q.Set("body", "Hi Saad, I was impressed by your portfolio...")
	return "mailto:" + portfolio.ContactInfo().Email + "?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}
