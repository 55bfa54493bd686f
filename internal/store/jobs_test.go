package store

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

func sampleInput(title string) JobInput {
	return JobInput{
		Category:    "Tech",
		Title:       title,
		Location:    "Pune",
		Company:     "Acme Corp",
		Salary:      "10 LPA",
		ApplyBy:     "2026-10-01",
		Skills:      []string{"Go", "SQL"},
		Openings:    2,
		Description: "Build things.",
	}
}

func TestJobStore_IDsNotReusedAfterDelete(t *testing.T) {
	s := NewJobStore(zap.NewNop())

	first := s.Create(sampleInput("First"), "r1@x.com")
	second := s.Create(sampleInput("Second"), "r1@x.com")

	if err := s.Delete(second.ID, "r1@x.com"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	third := s.Create(sampleInput("Third"), "r1@x.com")
	if third.ID == second.ID {
		t.Errorf("id %d was reused after delete", second.ID)
	}
	if third.ID <= first.ID {
		t.Errorf("ids are not monotonic: got %d after %d", third.ID, first.ID)
	}
}

func TestJobStore_Update(t *testing.T) {
	tests := []struct {
		name      string
		id        func(created int) int
		requester string
		wantErr   error
	}{
		{
			name:      "owner can update",
			id:        func(created int) int { return created },
			requester: "owner@x.com",
		},
		{
			name:      "non-owner is forbidden",
			id:        func(created int) int { return created },
			requester: "intruder@x.com",
			wantErr:   ErrForbidden,
		},
		{
			name:      "missing job is not found",
			id:        func(created int) int { return created + 99 },
			requester: "owner@x.com",
			wantErr:   ErrJobNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewJobStore(zap.NewNop())
			job := s.Create(sampleInput("Original"), "owner@x.com")

			updated := sampleInput("Changed")
			err := s.Update(tt.id(job.ID), updated, tt.requester)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Update() error = %v, want %v", err, tt.wantErr)
			}

			got, _ := s.ByID(job.ID)
			if tt.wantErr != nil && got.Title != "Original" {
				t.Errorf("job changed despite rejected update: title = %q", got.Title)
			}
			if tt.wantErr == nil {
				if got.Title != "Changed" {
					t.Errorf("title = %q, want Changed", got.Title)
				}
				if got.PosterEmail != "owner@x.com" {
					t.Errorf("poster changed on update: %q", got.PosterEmail)
				}
				if got.ID != job.ID {
					t.Errorf("id changed on update: %d", got.ID)
				}
			}
		})
	}
}

func TestJobStore_Delete(t *testing.T) {
	tests := []struct {
		name       string
		requester  string
		wantErr    error
		wantJobGone bool
	}{
		{name: "owner can delete", requester: "owner@x.com", wantJobGone: true},
		{name: "non-owner is forbidden", requester: "intruder@x.com", wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewJobStore(zap.NewNop())
			job := s.Create(sampleInput("Keep me"), "owner@x.com")

			err := s.Delete(job.ID, tt.requester)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Delete() error = %v, want %v", err, tt.wantErr)
			}

			_, exists := s.ByID(job.ID)
			if exists == tt.wantJobGone {
				t.Errorf("job existence = %v, want gone = %v", exists, tt.wantJobGone)
			}
		})
	}
}

func TestJobStore_Search(t *testing.T) {
	s := NewJobStore(zap.NewNop())
	s.Create(JobInput{Title: "Backend Engineer", Company: "Acme", Location: "Pune", Skills: []string{"Go"}}, "r@x.com")
	s.Create(JobInput{Title: "Frontend Engineer", Company: "Globex", Location: "Mumbai", Skills: []string{"React"}}, "r@x.com")
	s.Create(JobInput{Title: "Data Analyst", Company: "Initech", Location: "Remote", Skills: []string{"sql", "Python"}}, "r@x.com")

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{name: "empty query matches all", query: "", wantCount: 3},
		{name: "title substring", query: "engineer", wantCount: 2},
		{name: "company case-insensitive", query: "GLOBEX", wantCount: 1},
		{name: "location", query: "remote", wantCount: 1},
		{name: "skill", query: "python", wantCount: 1},
		{name: "no match", query: "haskell", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, _, _ := s.Search(tt.query, 1, 10)
			if len(jobs) != tt.wantCount {
				t.Errorf("Search(%q) returned %d jobs, want %d", tt.query, len(jobs), tt.wantCount)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name           string
		page           int
		perPage        int
		wantLen        int
		wantPage       int
		wantTotalPages int
		wantFirst      int
	}{
		{name: "first page", page: 1, perPage: 3, wantLen: 3, wantPage: 1, wantTotalPages: 3, wantFirst: 1},
		{name: "last partial page", page: 3, perPage: 3, wantLen: 1, wantPage: 3, wantTotalPages: 3, wantFirst: 7},
		{name: "page beyond last clamps to last", page: 99, perPage: 3, wantLen: 1, wantPage: 3, wantTotalPages: 3, wantFirst: 7},
		{name: "page below first clamps to first", page: 0, perPage: 3, wantLen: 3, wantPage: 1, wantTotalPages: 3, wantFirst: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, page, totalPages := Paginate(items, tt.page, tt.perPage)
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
			if page != tt.wantPage {
				t.Errorf("page = %d, want %d", page, tt.wantPage)
			}
			if totalPages != tt.wantTotalPages {
				t.Errorf("totalPages = %d, want %d", totalPages, tt.wantTotalPages)
			}
			if len(got) > 0 && got[0] != tt.wantFirst {
				t.Errorf("first item = %d, want %d", got[0], tt.wantFirst)
			}
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	got, page, totalPages := Paginate([]int{}, 5, 3)
	if len(got) != 0 || page != 1 || totalPages != 1 {
		t.Errorf("got len=%d page=%d totalPages=%d, want 0/1/1", len(got), page, totalPages)
	}
}
