package store

import "errors"

var (
	// ErrUserExists is returned when a registration collides with an
	// existing account's email or mobile number.
	ErrUserExists = errors.New("user already exists")

	// ErrJobNotFound is returned when the referenced job does not exist.
	ErrJobNotFound = errors.New("job not found")

	// ErrForbidden is returned when the requester is not the poster of
	// the job being modified.
	ErrForbidden = errors.New("not the job poster")

	// ErrApplicantNotFound is returned when the referenced applicant does
	// not exist.
	ErrApplicantNotFound = errors.New("applicant not found")

	// ErrResumeNotFound is returned when a stored resume file is absent.
	ErrResumeNotFound = errors.New("resume not found")
)
