// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"errors"
	"strings"
	"testing"
)

type testLink struct {
	URL  string `json:"url" validate:"required,url"`
	Text string `json:"text" validate:"required"`
}

type testRecord struct {
	Title  string    `json:"title" validate:"required"`
	Email  string    `json:"email" validate:"omitempty,email"`
	Status string    `json:"status" validate:"oneof=upcoming ongoing completed"`
	Link   *testLink `json:"link"`
	Secret string    `json:"-" validate:"omitempty,min=3"`
	Code   string    `json:"code" validate:"maxbytes=4"`
}

func TestStruct_Valid(t *testing.T) {
	rec := testRecord{
		Title:  "Robotics Expo",
		Email:  "club@example.com",
		Status: "upcoming",
		Link:   &testLink{URL: "https://example.com", Text: "Register"},
	}
	if err := Struct(rec); err != nil {
		t.Errorf("Struct() error = %v, want nil", err)
	}
}

func TestStruct_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		rec       testRecord
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing required field",
			rec:       testRecord{Status: "upcoming"},
			wantField: "title",
			wantMsg:   "title is required",
		},
		{
			name:      "bad email",
			rec:       testRecord{Title: "t", Status: "ongoing", Email: "not-an-email"},
			wantField: "email",
			wantMsg:   "Invalid email format",
		},
		{
			name:      "status outside enum",
			rec:       testRecord{Title: "t", Status: "cancelled"},
			wantField: "status",
			wantMsg:   "must be one of: upcoming, ongoing, completed",
		},
		{
			name:      "multibyte text over the byte limit",
			rec:       testRecord{Title: "t", Status: "upcoming", Code: "ééé"},
			wantField: "code",
			wantMsg:   "must be at most 4 bytes",
		},
		{
			name:      "nested invalid URL",
			rec:       testRecord{Title: "t", Status: "completed", Link: &testLink{URL: "nope", Text: "x"}},
			wantField: "link.url",
			wantMsg:   "Invalid URL format",
		},
		{
			name:      "nested missing text",
			rec:       testRecord{Title: "t", Status: "completed", Link: &testLink{URL: "https://example.com"}},
			wantField: "link.text",
			wantMsg:   "text is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.rec)
			var verrs Errors
			if !errors.As(err, &verrs) {
				t.Fatalf("Struct() error = %v, want validation.Errors", err)
			}
			if len(verrs) != 1 {
				t.Fatalf("expected 1 field error, got %d: %v", len(verrs), verrs)
			}
			if verrs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verrs[0].Field, tt.wantField)
			}
			if verrs[0].Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", verrs[0].Message, tt.wantMsg)
			}
		})
	}
}

func TestStruct_MultipleErrors(t *testing.T) {
	err := Struct(testRecord{Email: "bad"})
	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("Struct() error = %v, want validation.Errors", err)
	}
	if len(verrs) != 3 {
		t.Errorf("expected 3 field errors (title, email, status), got %d: %v", len(verrs), verrs)
	}
	if !strings.HasPrefix(err.Error(), "validation failed: ") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestStruct_HiddenFieldUsesGoName(t *testing.T) {
	err := Struct(testRecord{Title: "t", Status: "upcoming", Secret: "ab"})
	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("Struct() error = %v, want validation.Errors", err)
	}
	if verrs[0].Field != "Secret" {
		t.Errorf("Field = %q, want %q", verrs[0].Field, "Secret")
	}
	if verrs[0].Message != "must be at least 3 characters" {
		t.Errorf("Message = %q", verrs[0].Message)
	}
}
