package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ajaymkoli/Job-Portal/internal/models"
	"github.com/ajaymkoli/Job-Portal/internal/store"
	"go.uber.org/zap"
)

var (
	// ErrMissingFields is returned when the submission lacks a name or
	// an email.
	ErrMissingFields = errors.New("name and email are required")

	// ErrSelfApplication is returned when a recruiter applies to their
	// own posting, either through their session or by submitting the
	// poster's email address.
	ErrSelfApplication = errors.New("recruiters cannot apply to their own job")

	// ErrDuplicateApplication is returned when the job already has an
	// application with the same normalized email or phone.
	ErrDuplicateApplication = errors.New("application already submitted for this job")
)

// ApplyInput is the full description of one application attempt. ResumePath
// references an already-retained upload; the workflow owns its cleanup from
// this point on and deletes it on every rejection branch.
type ApplyInput struct {
	JobID        int
	Name         string
	Email        string
	Phone        string
	ResumePath   string
	SessionEmail string
}

// ApplicationService orchestrates the application-submission workflow:
// validation, ownership and duplicate checks, persistence, then
// best-effort notification.
type ApplicationService struct {
	jobs        *store.JobStore
	applicants  *store.ApplicantStore
	resumes     *store.ResumeStore
	notifier    Notifier
	mailTimeout time.Duration
	logger      *zap.Logger
}

func NewApplicationService(
	jobs *store.JobStore,
	applicants *store.ApplicantStore,
	resumes *store.ResumeStore,
	notifier Notifier,
	mailTimeout time.Duration,
	logger *zap.Logger,
) *ApplicationService {
	return &ApplicationService{
		jobs:        jobs,
		applicants:  applicants,
		resumes:     resumes,
		notifier:    notifier,
		mailTimeout: mailTimeout,
		logger:      logger,
	}
}

// Apply runs one submission through the workflow and returns the recorded
// applicant together with the job it belongs to. A rejection for any
// reason deletes the retained resume before returning, so repeated failed
// attempts never accumulate orphaned files.
func (s *ApplicationService) Apply(ctx context.Context, in ApplyInput) (*models.Applicant, *models.Job, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, nil, s.reject(in, ErrMissingFields)
	}

	job, ok := s.jobs.ByID(in.JobID)
	if !ok {
		return nil, nil, s.reject(in, store.ErrJobNotFound)
	}

	if s.isSelfApplication(job, in) {
		return nil, nil, s.reject(in, ErrSelfApplication)
	}

	if s.applicants.Exists(in.JobID, in.Email, in.Phone) {
		return nil, nil, s.reject(in, ErrDuplicateApplication)
	}

	applicant := s.applicants.Create(in.JobID, in.Name, in.Email, in.Phone, in.ResumePath)

	count := s.applicants.CountForJob(job.ID)
	s.jobs.SetApplicantCount(job.ID, count)
	job.Applicants = count

	// Notification is best-effort: a transport failure is logged and
	// swallowed, never rolling back the recorded application.
	notifyCtx, cancel := context.WithTimeout(ctx, s.mailTimeout)
	defer cancel()

	if err := s.notifier.ApplicationReceived(notifyCtx, applicant, job); err != nil {
		s.logger.Error("confirmation notification failed",
			zap.Int("applicant_id", applicant.ID),
			zap.Int("job_id", job.ID),
			zap.Error(err),
		)
	}

	return applicant, job, nil
}

func (s *ApplicationService) isSelfApplication(job *models.Job, in ApplyInput) bool {
	if job.PosterEmail == "" {
		return false
	}
	if in.SessionEmail != "" && in.SessionEmail == job.PosterEmail {
		return true
	}

	return strings.EqualFold(strings.TrimSpace(in.Email), job.PosterEmail)
}

// reject discards the retained resume for a failed attempt and passes the
// cause through.
func (s *ApplicationService) reject(in ApplyInput, cause error) error {
	if in.ResumePath != "" {
		if err := s.resumes.Delete(in.ResumePath); err != nil {
			s.logger.Error("failed to clean up rejected resume",
				zap.String("file", in.ResumePath),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("application rejected",
		zap.Int("job_id", in.JobID),
		zap.String("reason", cause.Error()),
	)

	return cause
}
