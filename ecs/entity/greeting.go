package entity

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/emilyahsu/dad-birthday-card/ecs/component"
	"github.com/emilyahsu/dad-birthday-card/prefabs"
)

const greetingScriptTimeout = 250 * time.Millisecond

var greetingFields = []string{"title", "instruction", "body", "closing", "footer"}

// MessageFromSpec is the card text exactly as written in the prefab.
func MessageFromSpec(spec *prefabs.CardSpec) component.Message {
	if spec == nil {
		return component.Message{}
	}
	return component.Message{
		Title:       spec.Message.Title,
		Instruction: spec.Message.Instruction,
		Body:        spec.Message.Body,
		Closing:     spec.Message.Closing,
		Footer:      spec.Message.Footer,
	}
}

// RunGreetingScript feeds the prefab text plus recipient, sender and age to
// the card's tengo script and reads the text fields back.
func RunGreetingScript(ctx context.Context, spec *prefabs.CardSpec) (component.Message, error) {
	msg := MessageFromSpec(spec)
	if spec == nil || spec.Script == "" {
		return msg, nil
	}

	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		return msg, fmt.Errorf("card: load script %s: %w", spec.Script, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("fmt", "text", "times"))
	script.SetMaxAllocs(10000)

	inputs := map[string]any{
		"recipient":   spec.Recipient,
		"sender":      spec.Sender,
		"age":         spec.Age,
		"title":       msg.Title,
		"instruction": msg.Instruction,
		"body":        msg.Body,
		"closing":     msg.Closing,
		"footer":      msg.Footer,
	}
	for name, value := range inputs {
		if err := script.Add(name, value); err != nil {
			return msg, fmt.Errorf("card: script input %s: %w", name, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, greetingScriptTimeout)
	defer cancel()

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return msg, fmt.Errorf("card: run script %s: %w", spec.Script, err)
	}

	out := make(map[string]string, len(greetingFields))
	for _, name := range greetingFields {
		v := compiled.Get(name)
		if v.IsUndefined() {
			continue
		}
		s, ok := v.Value().(string)
		if !ok {
			return msg, fmt.Errorf("card: script %s: %s must be a string, got %s", spec.Script, name, v.ValueType())
		}
		out[name] = s
	}

	return component.Message{
		Title:       out["title"],
		Instruction: out["instruction"],
		Body:        out["body"],
		Closing:     out["closing"],
		Footer:      out["footer"],
	}, nil
}

// ResolveMessage runs the greeting script and falls back to the literal
// prefab text when it fails.
func ResolveMessage(ctx context.Context, spec *prefabs.CardSpec) component.Message {
	msg, err := RunGreetingScript(ctx, spec)
	if err != nil {
		log.Printf("card: %v; using prefab text", err)
		return MessageFromSpec(spec)
	}
	return msg
}
