package models

import "time"

// TimestampLayout is the human-readable format used for the posted/applied
// timestamps shown in views and confirmation emails.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"-"`
}

type Job struct {
	ID          int      `json:"id"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Company     string   `json:"company"`
	Salary      string   `json:"salary"`
	ApplyBy     string   `json:"apply_by"`
	Skills      []string `json:"skills"`
	Openings    int      `json:"openings"`
	Description string   `json:"description"`
	PostedOn    string   `json:"posted_on"`

	// Applicants is a cached count, recomputed whenever an application
	// is accepted for this job.
	Applicants int `json:"applicants"`

	// PosterEmail identifies the recruiter who owns the posting. Ownership
	// checks compare this string against the session identity.
	PosterEmail string `json:"poster_email"`
}

type Applicant struct {
	ID    int    `json:"id"`
	JobID int    `json:"job_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// ResumePath holds the retained resume filename, empty when the
	// applicant did not attach one.
	ResumePath string `json:"resume_path"`

	AppliedOn string `json:"applied_on"`
}

// Now returns the current time formatted with TimestampLayout.
func Now() string {
	return time.Now().Format(TimestampLayout)
}
