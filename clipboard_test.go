package main

import (
	"testing"

	"github.com/emilyahsu/dad-birthday-card/ecs/component"
)

func TestGreetingText(t *testing.T) {
	cases := []struct {
		name string
		msg  component.Message
		want string
	}{
		{
			name: "full",
			msg:  component.Message{Title: "Happy Birthday, Dad!", Instruction: "Drag the photos", Body: "Thank you.", Closing: "Love, Emily", Footer: "hint"},
			want: "Happy Birthday, Dad!\n\nThank you.\n\nLove, Emily",
		},
		{
			name: "skips_blank",
			msg:  component.Message{Title: "Hi", Body: "  ", Closing: "Bye"},
			want: "Hi\n\nBye",
		},
		{
			name: "empty",
			want: "",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := greetingText(c.msg); got != c.want {
				t.Fatalf("got %q want %q", got, c.want)
			}
		})
	}
}

func TestClipboardWithoutInit(t *testing.T) {
	var c *Clipboard
	if c.Copy("hello") {
		t.Fatalf("nil clipboard should not copy")
	}
	if (&Clipboard{}).Copy("hello") {
		t.Fatalf("uninitialized clipboard should not copy")
	}
}
