package models

type TerminalEntryType string

const (
	EntryUser     TerminalEntryType = "user"
	EntryResponse TerminalEntryType = "response"
	EntryError    TerminalEntryType = "error"
	EntrySystem   TerminalEntryType = "system"
	EntryInfo     TerminalEntryType = "info"
)

type TerminalEntry struct {
	Type  TerminalEntryType `json:"type"`
	Lines []string          `json:"lines"`
}

type TerminalRequest struct {
	Command string `json:"command"`
}

// TerminalResult tells the client what to render and which side effects to run.
type TerminalResult struct {
	Entries  []TerminalEntry `json:"entries"`
	Clear    bool            `json:"clear"`
	Exit     bool            `json:"exit"`
	Redirect string          `json:"redirect,omitempty"`
}

type PaletteItemKind string

const (
	PaletteNavigate PaletteItemKind = "navigate"
	PaletteLink     PaletteItemKind = "link"
	PaletteAction   PaletteItemKind = "action"
)

type PaletteItem struct {
	Label  string          `json:"label"`
	Kind   PaletteItemKind `json:"kind"`
	Target string          `json:"target"`
}

type PaletteGroup struct {
	Category string        `json:"category"`
	Items    []PaletteItem `json:"items"`
}
