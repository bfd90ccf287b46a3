package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestCheckIndex(t *testing.T) {
	tests := []struct {
		index, length int
		wantErr       bool
	}{
		{0, 1, false},
		{3, 4, false},
		{4, 4, true},
		{-1, 4, true},
		{0, 0, true},
	}

	for _, tt := range tests {
		err := CheckIndex(tt.index, tt.length)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckIndex(%d, %d) error = %v, wantErr %v", tt.index, tt.length, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrOutOfRange) {
			t.Errorf("CheckIndex(%d, %d) error %v does not match ErrOutOfRange", tt.index, tt.length, err)
		}
	}
}

func TestOutOfRangeErrorWrapped(t *testing.T) {
	err := fmt.Errorf("select: %w", CheckIndex(7, 3))

	if !errors.Is(err, ErrOutOfRange) {
		t.Fatal("wrapped OutOfRangeError should match ErrOutOfRange")
	}
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatal("expected errors.As to find *OutOfRangeError")
	}
	if oor.Index != 7 || oor.Length != 3 {
		t.Errorf("got index=%d length=%d, want 7 and 3", oor.Index, oor.Length)
	}
	if want := "select: index 7 out of range [0, 3)"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if errors.Is(err, ErrEmptyCollection) {
		t.Error("OutOfRangeError must not match ErrEmptyCollection")
	}
}

func TestRecordCodeLines(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"", 0},
		{"nop", 1},
		{"nop\nnop", 2},
		{"nop\n\n    nop\n", 4},
	}
	for _, tt := range tests {
		r := TutorialRecord{Code: tt.code}
		if got := r.CodeLines(); got != tt.want {
			t.Errorf("CodeLines(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestMarkdownIsEmpty(t *testing.T) {
	if !Markdown("  \n\t").IsEmpty() {
		t.Error("whitespace-only markdown should be empty")
	}
	if Markdown("# hi").IsEmpty() {
		t.Error("heading should not be empty")
	}
}
