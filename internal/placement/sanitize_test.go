package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Algebra", "Algebra"},
		{"Math/Physics", "Math Physics"},
		{`Lab: "A" <B>`, "Lab A B"},
		{"  spaced   out  ", "spaced out"},
		{"../escape", "escape"},
		{"..", ""},
		{"tab\there", "tab here"},
		{"Cafe\u0301", "Caf\u00e9"}, // combining acute composes
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeLabel(tt.input))
		})
	}
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, ValidatePath("/school/Algebra", "/school"))
	assert.NoError(t, ValidatePath("/school", "/school"))
	assert.ErrorIs(t, ValidatePath("/school/../etc", "/school"), ErrPathTraversal)
	assert.ErrorIs(t, ValidatePath("/schoolyard/x", "/school"), ErrPathTraversal)
}
