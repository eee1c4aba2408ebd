package util

import (
	"bytes"
	"io"
	"math"
	"testing"
)

func TestParseUint64(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"12", 12, true},
		{" 7 ", 7, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseUint64(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseUint64(%q) = %d, %v", tt.in, got, ok)
		}
	}
}

func TestParseOptionalBool(t *testing.T) {
	if v, ok := ParseOptionalBool(""); v != nil || !ok {
		t.Errorf("empty = %v, %v", v, ok)
	}
	if v, ok := ParseOptionalBool("true"); v == nil || !*v || !ok {
		t.Errorf("true = %v, %v", v, ok)
	}
	if v, ok := ParseOptionalBool("0"); v == nil || *v || !ok {
		t.Errorf("0 = %v, %v", v, ok)
	}
	if _, ok := ParseOptionalBool("maybe"); ok {
		t.Error("maybe should be rejected")
	}
}

func TestEscapeLike(t *testing.T) {
	if got := EscapeLike("50%_off!"); got != "50!%!_off!!" {
		t.Errorf("EscapeLike = %q", got)
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		order, direction string
		field            string
		desc             bool
	}{
		{"title", "", "title", false},
		{"title", "DESC", "title", true},
		{"-rating", "asc", "rating", true},
		{"", "", "", false},
	}
	for _, tt := range tests {
		field, desc := ParseOrder(tt.order, tt.direction)
		if field != tt.field || desc != tt.desc {
			t.Errorf("ParseOrder(%q,%q) = %q,%v", tt.order, tt.direction, field, desc)
		}
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		page, size       string
		wantPage, wantSz int
	}{
		{"", "", 1, 12},
		{"3", "20", 3, 20},
		{"-2", "x", 1, 12},
		{"1", "500", 1, 100},
		{"9223372036854775807", "10", MaxPage, 10},
		{"99999999999999999999", "10", 1, 10},
	}
	for _, tt := range tests {
		page, size := ParsePage(tt.page, tt.size, 12, 100)
		if page != tt.wantPage || size != tt.wantSz {
			t.Errorf("ParsePage(%q,%q) = %d,%d", tt.page, tt.size, page, size)
		}
	}
}

func TestClampPage(t *testing.T) {
	for in, want := range map[int]int{-5: 1, 0: 1, 7: 7, MaxPage + 1: MaxPage, math.MaxInt: MaxPage} {
		if got := ClampPage(in); got != want {
			t.Errorf("ClampPage(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestGetSafeContentType_RewindsReader(t *testing.T) {
	data := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
	r := bytes.NewReader(data)

	ct, err := GetSafeContentType(r)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if ct != "image/gif" {
		t.Errorf("content type = %q", ct)
	}
	rest, _ := io.ReadAll(r)
	if !bytes.Equal(rest, data) {
		t.Error("reader was not rewound")
	}
}

type sample struct {
	Name string `validate:"required,min=3"`
}

func TestValidateDTO(t *testing.T) {
	if err := ValidateDTO(&sample{Name: "abcd"}); err != nil {
		t.Errorf("valid: %v", err)
	}
	if err := ValidateDTO(&sample{Name: "a"}); err == nil {
		t.Error("expected validation error")
	}
}
