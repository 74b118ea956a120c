package portfolio

import (
	"fmt"
	"strings"
)

const (
	// InstructionOpen and InstructionClose wrap every prompt sent upstream.
	InstructionOpen  = "[INST]"
	InstructionClose = "[/INST]"
)

// ContextBlock concatenates the static portfolio data into the instruction prefix
// that grounds the model's answers. It is rebuilt on every call.
func ContextBlock() string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are the AI assistant on %s's portfolio website. ", OwnerName)
	b.WriteString("Answer questions about him briefly and only from the information below. ")
	b.WriteString("If the answer is not in the information, say you don't know.\n\n")

	fmt.Fprintf(&b, "PROFILE: %s. %s\n\n", OwnerName, Headline)

	b.WriteString("SKILLS:\n")
	for _, s := range skills {
		fmt.Fprintf(&b, "- %s: %s\n", s.Category, strings.Join(s.Items, ", "))
	}

	b.WriteString("\nPROJECTS:\n")
	for _, p := range projects {
		fmt.Fprintf(&b, "- %s (%s): %s Tech: %s\n", p.Title, p.Category, p.Desc, strings.Join(p.Tags, ", "))
	}

	b.WriteString("\nEXPERIENCE:\n")
	for _, e := range experience {
		fmt.Fprintf(&b, "- %s at %s (%s)\n", e.Title, e.Company, e.Date)
		for _, point := range e.Points {
			fmt.Fprintf(&b, "  * %s\n", point)
		}
	}

	b.WriteString("\nAWARDS:\n")
	for _, a := range awards {
		fmt.Fprintf(&b, "- %s: %s\n", a.Title, a.Desc)
	}

	b.WriteString("\nCERTIFICATIONS:\n")
	for _, c := range certifications {
		fmt.Fprintf(&b, "- %s (%s, %s)\n", c.Title, c.Issuer, c.Date)
	}

	return b.String()
}

// BuildPrompt wraps the context block and the user's question in the instruction template.
func BuildPrompt(contextBlock, question string) string {
	return fmt.Sprintf("%s %s\nQuestion: %s %s", InstructionOpen, contextBlock, strings.TrimSpace(question), InstructionClose)
}

// StripEcho drops everything up to and including the last instruction-closing marker,
// for models that repeat the prompt back.
func StripEcho(reply string) string {
	idx := strings.LastIndex(reply, InstructionClose)
	if idx < 0 {
		return reply
	}
	return strings.TrimSpace(reply[idx+len(InstructionClose):])
}
