package portfolio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextBlock_IncludesAllSections(t *testing.T) {
	block := ContextBlock()

	for _, section := range []string{"SKILLS:", "PROJECTS:", "EXPERIENCE:", "AWARDS:", "CERTIFICATIONS:"} {
		assert.Contains(t, block, section)
	}
	assert.Contains(t, block, "SmartCourseAdvisor")
	assert.Contains(t, block, "LangGraph")
	assert.Contains(t, block, "GoSaaS, Inc.")
	assert.Contains(t, block, "Award of Distinction")
	assert.Contains(t, block, "Oracle AI Vector Search Certified Professional")
}

func TestBuildPrompt_WrapsQuestion(t *testing.T) {
	prompt := BuildPrompt("CTX", "  What skills does Saad have?  ")

	assert.True(t, strings.HasPrefix(prompt, InstructionOpen))
	assert.True(t, strings.HasSuffix(prompt, InstructionClose))
	assert.Contains(t, prompt, "CTX")
	assert.Contains(t, prompt, "Question: What skills does Saad have? ")
}

func TestStripEcho(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		expected string
	}{
		{"no marker", "He knows PyTorch.", "He knows PyTorch."},
		{"single marker", "[INST] ctx Question: q [/INST] He knows PyTorch.", "He knows PyTorch."},
		{"keeps text after last marker", "a [/INST] b [/INST]  c ", "c"},
		{"marker at end", "echo [/INST]", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StripEcho(tc.reply))
		})
	}
}

func TestProjectsByCategory(t *testing.T) {
	assert.Len(t, ProjectsByCategory(""), len(projects))

	ml := ProjectsByCategory("ml/dl")
	assert.Len(t, ml, 4)
	for _, p := range ml {
		assert.Equal(t, "ML/DL", p.Category)
	}

	assert.Empty(t, ProjectsByCategory("Quantum"))
}

func TestProfile_ReturnsCopies(t *testing.T) {
	p := Profile()
	p.Projects[0].Title = "changed"

	assert.Equal(t, "Adaptive Entropy UDA", Profile().Projects[0].Title)
}
