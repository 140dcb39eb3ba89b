package chatui

import "strings"

// Composer holds the submit rule for the single-line message input. The
// renderer owns the editing widget and copies its value in before Submit.
type Composer struct {
	value string
}

func (c *Composer) Value() string {
	return c.value
}

func (c *Composer) SetValue(v string) {
	c.value = v
}

// Submit returns the raw text and clears the field when the trimmed text is
// non-empty. Whitespace-only input is ignored and left in place.
func (c *Composer) Submit() (string, bool) {
	if strings.TrimSpace(c.value) == "" {
		return "", false
	}
	text := c.value
	c.value = ""
	return text, true
}
