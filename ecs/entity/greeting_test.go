package entity

import (
	"context"
	"strings"
	"testing"

	"github.com/emilyahsu/dad-birthday-card/prefabs"
)

func greetingSpec(t *testing.T) *prefabs.CardSpec {
	t.Helper()
	spec, err := prefabs.LoadCardSpec("")
	if err != nil {
		t.Fatalf("load card: %v", err)
	}
	return spec
}

func TestRunGreetingScript(t *testing.T) {
	cases := []struct {
		name        string
		recipient   string
		sender      string
		age         int
		wantTitle   string
		wantClosing string
	}{
		{"default", "Dad", "", 0, "Happy Birthday, Dad!", "Here's to many more amazing years ahead!"},
		{"age_first", "Dad", "", 61, "Happy 61st Birthday, Dad!", ""},
		{"age_teen", "Dad", "", 13, "Happy 13th Birthday, Dad!", ""},
		{"age_second", "Mom", "", 52, "Happy 52nd Birthday, Mom!", ""},
		{"signed", "Dad", "Emily", 0, "Happy Birthday, Dad!", "Here's to many more amazing years ahead!\nLove, Emily"},
		{"blank_recipient_keeps_prefab_title", "  ", "", 0, "Happy Birthday, Dad!", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := greetingSpec(t)
			spec.Recipient = c.recipient
			spec.Sender = c.sender
			spec.Age = c.age

			msg, err := RunGreetingScript(context.Background(), spec)
			if err != nil {
				t.Fatalf("run script: %v", err)
			}
			if msg.Title != c.wantTitle {
				t.Fatalf("title = %q, want %q", msg.Title, c.wantTitle)
			}
			if c.wantClosing != "" && msg.Closing != c.wantClosing {
				t.Fatalf("closing = %q, want %q", msg.Closing, c.wantClosing)
			}
			if !strings.HasPrefix(msg.Body, "Thank you for all the wonderful memories") {
				t.Fatalf("body should pass through unchanged, got %q", msg.Body)
			}
			if msg.Footer != spec.Message.Footer {
				t.Fatalf("footer = %q, want %q", msg.Footer, spec.Message.Footer)
			}
		})
	}
}

func TestResolveMessageFallsBack(t *testing.T) {
	spec := greetingSpec(t)
	spec.Script = "missing.tengo"
	spec.Recipient = "Grandpa"

	msg := ResolveMessage(context.Background(), spec)
	if msg.Title != spec.Message.Title {
		t.Fatalf("expected prefab title on script failure, got %q", msg.Title)
	}

	if _, err := RunGreetingScript(context.Background(), spec); err == nil {
		t.Fatalf("expected error for missing script")
	}
}

func TestRunGreetingScriptWithoutScript(t *testing.T) {
	spec := greetingSpec(t)
	spec.Script = ""
	msg, err := RunGreetingScript(context.Background(), spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != MessageFromSpec(spec) {
		t.Fatalf("expected literal prefab text, got %+v", msg)
	}
}
