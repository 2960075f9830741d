package main

import (
	"log"
	"strings"

	"github.com/emilyahsu/dad-birthday-card/ecs/component"
	"golang.design/x/clipboard"
)

// Clipboard copies text to the system clipboard. It is a no-op when the
// platform clipboard could not be initialized.
type Clipboard struct {
	ready bool
}

func NewClipboard() *Clipboard {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: unavailable: %v", err)
		return &Clipboard{}
	}
	return &Clipboard{ready: true}
}

// Copy writes s as plain text and reports whether it was written.
func (c *Clipboard) Copy(s string) bool {
	if c == nil || !c.ready || s == "" {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return true
}

// greetingText is the card message as plain paragraphs.
func greetingText(msg component.Message) string {
	var parts []string
	for _, p := range []string{msg.Title, msg.Body, msg.Closing} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n\n")
}
