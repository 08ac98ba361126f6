package intent

import (
	"testing"

	"ai_device/pkg/models"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		response string
		actions  []models.WireAction
	}{
		{"greeting", "Hello there", "Cześć! Jestem gotowy 🤖", []models.WireAction{OLED("Czesc! 🤖")}},
		{"polish greeting", "cześć", "Cześć! Jestem gotowy 🤖", []models.WireAction{OLED("Czesc! 🤖")}},
		{"status", "what is the STATUS", "System działa poprawnie ✅", []models.WireAction{OLED("Status: OK")}},
		{"led on", "  LED ON ", "Włączam LED ✅", []models.WireAction{LED("on"), OLED("LED: ON")}},
		{"led on polish", "włącz led", "Włączam LED ✅", []models.WireAction{LED("on"), OLED("LED: ON")}},
		{"led off", "ledoff", "Wyłączam LED ✅", []models.WireAction{LED("off"), OLED("LED: OFF")}},
		{"led off polish", "zgaś led", "Wyłączam LED ✅", []models.WireAction{LED("off"), OLED("LED: OFF")}},
		{"led phrase must match exactly", "please led on", "Nie rozumiem polecenia. Spróbuj: hello, status, led on, led off.", []models.WireAction{OLED("Nie rozumiem :(")}},
		{"fallback", "", "Nie rozumiem polecenia. Spróbuj: hello, status, led on, led off.", []models.WireAction{OLED("Nie rozumiem :(")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := Interpret(tt.input)
			if reply.Response != tt.response {
				t.Errorf("Expected response %q, got %q", tt.response, reply.Response)
			}
			if len(reply.Actions) != len(tt.actions) {
				t.Fatalf("Expected %d actions, got %d", len(tt.actions), len(reply.Actions))
			}
			for i := range tt.actions {
				if reply.Actions[i].Type != tt.actions[i].Type ||
					reply.Actions[i].Text != tt.actions[i].Text ||
					reply.Actions[i].Value != tt.actions[i].Value {
					t.Errorf("action %d: expected %+v, got %+v", i, tt.actions[i], reply.Actions[i])
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []models.WireAction{OLED(""), LED("on"), LED("off"), Delay(0), Delay(MaxDelayMS)}
	for _, a := range valid {
		if err := Validate(a); err != nil {
			t.Errorf("Validate(%+v) unexpected error: %v", a, err)
		}
	}

	invalid := []models.WireAction{
		LED("blink"),
		Delay(-1),
		Delay(MaxDelayMS + 1),
		{Type: models.ActionDelay},
		{Type: "buzzer"},
	}
	for _, a := range invalid {
		if err := Validate(a); err == nil {
			t.Errorf("Validate(%+v) expected error", a)
		}
	}
}
