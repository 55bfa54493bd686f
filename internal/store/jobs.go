package store

import (
	"strings"
	"sync"

	"github.com/ajaymkoli/Job-Portal/internal/models"
	"go.uber.org/zap"
)

// JobInput carries the poster-editable fields of a posting. ID, poster
// identity and posted timestamp are never taken from input.
type JobInput struct {
	Category    string
	Title       string
	Location    string
	Company     string
	Salary      string
	ApplyBy     string
	Skills      []string
	Openings    int
	Description string
}

// JobStore holds job postings for the lifetime of the process. Ids come
// from a monotonic counter so deleting a job never frees its id for reuse.
type JobStore struct {
	mu     sync.Mutex
	jobs   []models.Job
	nextID int
	logger *zap.Logger
}

func NewJobStore(logger *zap.Logger) *JobStore {
	return &JobStore{
		nextID: 1,
		logger: logger,
	}
}

// Create appends a new posting owned by posterEmail.
func (s *JobStore) Create(in JobInput, posterEmail string) *models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := models.Job{
		ID:          s.nextID,
		Category:    in.Category,
		Title:       in.Title,
		Location:    in.Location,
		Company:     in.Company,
		Salary:      in.Salary,
		ApplyBy:     in.ApplyBy,
		Skills:      append([]string(nil), in.Skills...),
		Openings:    in.Openings,
		Description: in.Description,
		PostedOn:    models.Now(),
		PosterEmail: posterEmail,
	}
	s.nextID++
	s.jobs = append(s.jobs, job)

	s.logger.Info("job posted",
		zap.Int("job_id", job.ID),
		zap.String("title", job.Title),
		zap.String("poster", posterEmail),
	)

	jobCopy := job

	return &jobCopy
}

// All returns every posting in insertion order.
func (s *JobStore) All() []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Job(nil), s.jobs...)
}

// ByID returns the posting with the given id, if any.
func (s *JobStore) ByID(id int) (*models.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		if j.ID == id {
			job := j
			return &job, true
		}
	}

	return nil, false
}

// ByPoster returns the postings owned by the given identity, in insertion
// order.
func (s *JobStore) ByPoster(email string) []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	var owned []models.Job
	for _, j := range s.jobs {
		if j.PosterEmail == email {
			owned = append(owned, j)
		}
	}

	return owned
}

// Update overwrites the poster-editable fields of the posting. Only the
// owning poster may update; id, poster identity and posted timestamp are
// left untouched.
func (s *JobStore) Update(id int, in JobInput, requester string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID != id {
			continue
		}
		if s.jobs[i].PosterEmail != requester {
			return ErrForbidden
		}

		s.jobs[i].Category = in.Category
		s.jobs[i].Title = in.Title
		s.jobs[i].Location = in.Location
		s.jobs[i].Company = in.Company
		s.jobs[i].Salary = in.Salary
		s.jobs[i].ApplyBy = in.ApplyBy
		s.jobs[i].Skills = append([]string(nil), in.Skills...)
		s.jobs[i].Openings = in.Openings
		s.jobs[i].Description = in.Description

		s.logger.Info("job updated", zap.Int("job_id", id))

		return nil
	}

	return ErrJobNotFound
}

// Delete physically removes the posting. Only the owning poster may delete.
func (s *JobStore) Delete(id int, requester string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID != id {
			continue
		}
		if s.jobs[i].PosterEmail != requester {
			return ErrForbidden
		}

		s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)

		s.logger.Info("job deleted", zap.Int("job_id", id))

		return nil
	}

	return ErrJobNotFound
}

// SetApplicantCount refreshes the cached applicant count on the posting.
func (s *JobStore) SetApplicantCount(id, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs[i].Applicants = count
			return
		}
	}
}

// Search filters postings by a case-insensitive substring match over title,
// company, location and flattened skills, then paginates the result. An
// empty query matches everything. The requested page is clamped to
// [1, totalPages].
func (s *JobStore) Search(query string, page, perPage int) ([]models.Job, int, int) {
	s.mu.Lock()
	matched := make([]models.Job, 0, len(s.jobs))
	q := strings.ToLower(strings.TrimSpace(query))
	for _, j := range s.jobs {
		if q == "" || jobMatches(j, q) {
			matched = append(matched, j)
		}
	}
	s.mu.Unlock()

	return Paginate(matched, page, perPage)
}

func jobMatches(j models.Job, q string) bool {
	if strings.Contains(strings.ToLower(j.Title), q) ||
		strings.Contains(strings.ToLower(j.Company), q) ||
		strings.Contains(strings.ToLower(j.Location), q) {
		return true
	}

	return strings.Contains(strings.ToLower(strings.Join(j.Skills, " ")), q)
}

// Paginate slices items into fixed-size pages, clamping the requested page
// to [1, totalPages]. It returns the page contents, the clamped page number
// and the total page count (at least 1, even for an empty slice).
func Paginate[T any](items []T, page, perPage int) ([]T, int, int) {
	if perPage < 1 {
		perPage = 1
	}

	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], page, totalPages
}
