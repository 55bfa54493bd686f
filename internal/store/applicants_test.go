package store

import (
	"testing"

	"go.uber.org/zap"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  A@X.Com ", "a@x.com"},
		{"a@x.com", "a@x.com"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+1 (555) 123-4567", "15551234567"},
		{"5551234567", "5551234567"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplicantStore_Exists(t *testing.T) {
	s := NewApplicantStore(zap.NewNop())
	s.Create(1, "Alice", "a@x.com", "5551234567", "")
	s.Create(2, "Alice", "a@x.com", "5551234567", "")

	tests := []struct {
		name  string
		jobID int
		email string
		phone string
		want  bool
	}{
		{name: "same email same job", jobID: 1, email: "a@x.com", phone: "5550000000", want: true},
		{name: "email differs only in case", jobID: 1, email: "A@X.COM ", phone: "", want: true},
		{name: "same phone different formatting", jobID: 1, email: "new@x.com", phone: "+1 555-123-4567", want: false},
		{name: "same digits same job", jobID: 1, email: "new@x.com", phone: "555-123-4567", want: true},
		{name: "same contact different job", jobID: 3, email: "a@x.com", phone: "5551234567", want: false},
		{name: "empty phone never matches on phone", jobID: 1, email: "new@x.com", phone: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Exists(tt.jobID, tt.email, tt.phone); got != tt.want {
				t.Errorf("Exists(%d, %q, %q) = %v, want %v", tt.jobID, tt.email, tt.phone, got, tt.want)
			}
		})
	}
}

func TestApplicantStore_ForJob(t *testing.T) {
	s := NewApplicantStore(zap.NewNop())
	s.Create(1, "Alice", "a@x.com", "", "")
	s.Create(2, "Bob", "b@x.com", "", "")
	s.Create(1, "Carol", "c@x.com", "", "")

	got := s.ForJob(1)
	if len(got) != 2 {
		t.Fatalf("ForJob(1) returned %d applicants, want 2", len(got))
	}
	if got[0].Name != "Alice" || got[1].Name != "Carol" {
		t.Errorf("ForJob(1) order = %q, %q; want Alice, Carol", got[0].Name, got[1].Name)
	}

	if n := s.CountForJob(1); n != 2 {
		t.Errorf("CountForJob(1) = %d, want 2", n)
	}
	if n := s.CountForJob(99); n != 0 {
		t.Errorf("CountForJob(99) = %d, want 0", n)
	}
}

func TestApplicantStore_Create(t *testing.T) {
	s := NewApplicantStore(zap.NewNop())

	a := s.Create(7, "Alice", "a@x.com", "5551234567", "resume-job7-1-abc.pdf")
	if a.ID != 1 {
		t.Errorf("first id = %d, want 1", a.ID)
	}
	if a.AppliedOn == "" {
		t.Error("applied timestamp is empty")
	}
	if a.ResumePath != "resume-job7-1-abc.pdf" {
		t.Errorf("resume path = %q", a.ResumePath)
	}

	b := s.Create(7, "Bob", "b@x.com", "", "")
	if b.ID != 2 {
		t.Errorf("second id = %d, want 2", b.ID)
	}
}
