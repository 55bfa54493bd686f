package store

import (
	"strings"
	"sync"

	"github.com/ajaymkoli/Job-Portal/internal/models"
	"go.uber.org/zap"
)

// ApplicantStore holds submitted applications for the lifetime of the
// process. Duplicate detection works on normalized contact fields: emails
// are lower-cased and trimmed, phones reduced to their digits.
type ApplicantStore struct {
	mu         sync.Mutex
	applicants []models.Applicant
	nextID     int
	logger     *zap.Logger
}

func NewApplicantStore(logger *zap.Logger) *ApplicantStore {
	return &ApplicantStore{
		nextID: 1,
		logger: logger,
	}
}

// NormalizeEmail lower-cases and trims an email for duplicate comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone strips every non-digit character.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ForJob returns the applications submitted for the given job, in
// submission order.
func (s *ApplicantStore) ForJob(jobID int) []models.Applicant {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Applicant
	for _, a := range s.applicants {
		if a.JobID == jobID {
			result = append(result, a)
		}
	}

	return result
}

// CountForJob returns the number of applications for the given job.
func (s *ApplicantStore) CountForJob(jobID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, a := range s.applicants {
		if a.JobID == jobID {
			count++
		}
	}

	return count
}

// ByID returns the application with the given id, if any.
func (s *ApplicantStore) ByID(id int) (*models.Applicant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.applicants {
		if a.ID == id {
			applicant := a
			return &applicant, true
		}
	}

	return nil, false
}

// Exists reports whether the job already has an application sharing the
// normalized email, or the normalized phone when one is provided.
func (s *ApplicantStore) Exists(jobID int, email, phone string) bool {
	normEmail := NormalizeEmail(email)
	normPhone := NormalizePhone(phone)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.applicants {
		if a.JobID != jobID {
			continue
		}
		if NormalizeEmail(a.Email) == normEmail {
			return true
		}
		if normPhone != "" && NormalizePhone(a.Phone) == normPhone {
			return true
		}
	}

	return false
}

// Create appends a new application with a sequential id and a
// human-readable applied timestamp. Callers are expected to have run
// Exists first; Create itself does not re-check.
func (s *ApplicantStore) Create(jobID int, name, email, phone, resumePath string) *models.Applicant {
	s.mu.Lock()
	defer s.mu.Unlock()

	applicant := models.Applicant{
		ID:         s.nextID,
		JobID:      jobID,
		Name:       name,
		Email:      email,
		Phone:      phone,
		ResumePath: resumePath,
		AppliedOn:  models.Now(),
	}
	s.nextID++
	s.applicants = append(s.applicants, applicant)

	s.logger.Info("application recorded",
		zap.Int("applicant_id", applicant.ID),
		zap.Int("job_id", jobID),
	)

	applicantCopy := applicant

	return &applicantCopy
}
