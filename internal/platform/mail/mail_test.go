package mail

import (
	"context"
	"strings"
	"testing"
)

func TestTemplateEngine_RenderBuiltIn(t *testing.T) {
	e := NewTemplateEngine()

	subject, body, err := e.Render(TemplateVerifyOTP, map[string]string{"otp": "123456"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if subject != "Email verification code" {
		t.Errorf("subject: got %q", subject)
	}
	if !strings.Contains(body, "123456") {
		t.Errorf("body does not contain the code: %q", body)
	}
	if strings.Contains(body, "{{otp}}") {
		t.Errorf("placeholder left in body: %q", body)
	}
}

func TestTemplateEngine_RenderWelcome(t *testing.T) {
	e := NewTemplateEngine()

	_, body, err := e.Render(TemplateWelcome, map[string]string{"email": "jane@example.com"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(body, "jane@example.com") {
		t.Errorf("body does not contain the address: %q", body)
	}
}

func TestTemplateEngine_UnknownTemplate(t *testing.T) {
	e := NewTemplateEngine()
	if _, _, err := e.Render("no-such-template", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestTemplateEngine_MissingKeyLeftAsIs(t *testing.T) {
	e := NewTemplateEngine()
	_, body, err := e.Render(TemplateResetOTP, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(body, "{{otp}}") {
		t.Errorf("expected untouched placeholder, got %q", body)
	}
}

func TestMockEmailSender_RecordsCalls(t *testing.T) {
	m := &MockEmailSender{}

	if err := m.SendEmail(context.Background(), "a@b.c", "hi", "body"); err != nil {
		t.Fatalf("SendEmail: %v", err)
	}

	calls := m.Calls()
	if len(calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(calls))
	}
	if calls[0].To != "a@b.c" || calls[0].Subject != "hi" {
		t.Errorf("recorded call: %+v", calls[0])
	}
}

func TestMockEmailSender_Failure(t *testing.T) {
	m := &MockEmailSender{ShouldFail: true, FailError: "relay down"}

	err := m.SendEmail(context.Background(), "a@b.c", "hi", "body")
	if err == nil || err.Error() != "relay down" {
		t.Errorf("got %v, want relay down", err)
	}
	if len(m.Calls()) != 1 {
		t.Error("failed sends are still recorded")
	}
}
