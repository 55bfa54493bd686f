package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ajaymkoli/Job-Portal/internal/dtos"
	"github.com/ajaymkoli/Job-Portal/internal/middleware"
	"github.com/ajaymkoli/Job-Portal/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type JobHandler struct {
	Jobs       *store.JobStore
	Applicants *store.ApplicantStore
	Resumes    *store.ResumeStore
	PageSize   int
	Logger     *zap.Logger
}

func NewJobHandler(
	jobs *store.JobStore,
	applicants *store.ApplicantStore,
	resumes *store.ResumeStore,
	pageSize int,
	logger *zap.Logger,
) *JobHandler {
	return &JobHandler{
		Jobs:       jobs,
		Applicants: applicants,
		Resumes:    resumes,
		PageSize:   pageSize,
		Logger:     logger,
	}
}

func intParam(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))

	return n, err == nil
}

func intQuery(c *gin.Context, name string, fallback int) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}

	return n
}

// GetJobs renders the public, searchable, paginated listing.
func (h *JobHandler) GetJobs(c *gin.Context) {
	query := c.Query("q")
	jobs, page, totalPages := h.Jobs.Search(query, intQuery(c, "page", 1), h.PageSize)

	c.HTML(http.StatusOK, "joblistings.html", viewData(c, gin.H{
		"Jobs":       jobs,
		"Query":      query,
		"Page":       page,
		"TotalPages": totalPages,
	}))
}

// GetJobDetails renders a single posting, answering 401 when the id does
// not resolve.
func (h *JobHandler) GetJobDetails(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		c.String(http.StatusUnauthorized, "Job not found")

		return
	}

	job, ok := h.Jobs.ByID(id)
	if !ok {
		c.String(http.StatusUnauthorized, "Job not found")

		return
	}

	c.HTML(http.StatusOK, "jobdetails.html", viewData(c, gin.H{"Job": job}))
}

// GetPostJob renders the post-job form, prefilled when editing an owned
// posting.
func (h *JobHandler) GetPostJob(c *gin.Context) {
	if c.Param("id") == "" {
		c.HTML(http.StatusOK, "postjob.html", viewData(c, gin.H{"Form": dtos.JobForm{}}))

		return
	}

	id, ok := intParam(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "Job not found")

		return
	}

	job, ok := h.Jobs.ByID(id)
	if !ok {
		c.String(http.StatusNotFound, "Job not found")

		return
	}

	if job.PosterEmail != middleware.SessionEmail(c) {
		c.String(http.StatusForbidden, "You can only edit jobs you posted")

		return
	}

	c.HTML(http.StatusOK, "postjob.html", viewData(c, gin.H{"Job": job}))
}

// PostJob creates a posting, or updates one when an id is present and the
// requester owns it.
func (h *JobHandler) PostJob(c *gin.Context) {
	var form dtos.JobForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "postjob.html", viewData(c, gin.H{
			"ErrorMessage": dtos.ErrorMessage(err),
			"Form":         form,
			"EditID":       c.Param("id"),
		}))

		return
	}

	requester := middleware.SessionEmail(c)

	if c.Param("id") == "" {
		h.Jobs.Create(form.Input(), requester)

		jobs, page, totalPages := h.Jobs.Search("", 1, h.PageSize)
		c.HTML(http.StatusOK, "joblistings.html", viewData(c, gin.H{
			"SuccessMessage": "Job posted successfully.",
			"Jobs":           jobs,
			"Page":           page,
			"TotalPages":     totalPages,
		}))

		return
	}

	id, ok := intParam(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "Job not found")

		return
	}

	switch err := h.Jobs.Update(id, form.Input(), requester); {
	case errors.Is(err, store.ErrJobNotFound):
		c.String(http.StatusNotFound, "Job not found")
	case errors.Is(err, store.ErrForbidden):
		c.String(http.StatusForbidden, "You can only edit jobs you posted")
	default:
		job, _ := h.Jobs.ByID(id)
		c.HTML(http.StatusOK, "jobdetails.html", viewData(c, gin.H{
			"Job":            job,
			"SuccessMessage": "Job updated successfully.",
		}))
	}
}

// DeleteJob removes an owned posting.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "Job not found")

		return
	}

	switch err := h.Jobs.Delete(id, middleware.SessionEmail(c)); {
	case errors.Is(err, store.ErrJobNotFound):
		c.String(http.StatusNotFound, "Job not found")
	case errors.Is(err, store.ErrForbidden):
		c.String(http.StatusForbidden, "You can only delete jobs you posted")
	default:
		c.Redirect(http.StatusFound, "/myjobs")
	}
}

// GetMyJobs lists the postings owned by the logged-in recruiter.
func (h *JobHandler) GetMyJobs(c *gin.Context) {
	jobs := h.Jobs.ByPoster(middleware.SessionEmail(c))

	c.HTML(http.StatusOK, "myjobs.html", viewData(c, gin.H{"Jobs": jobs}))
}

// GetApplicants shows the paginated applications for an owned posting.
func (h *JobHandler) GetApplicants(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "Job not found")

		return
	}

	job, ok := h.Jobs.ByID(id)
	if !ok {
		c.String(http.StatusNotFound, "Job not found")

		return
	}

	if job.PosterEmail != middleware.SessionEmail(c) {
		c.String(http.StatusForbidden, "You can only view applicants for jobs you posted")

		return
	}

	applicants, page, totalPages := store.Paginate(h.Applicants.ForJob(id), intQuery(c, "page", 1), h.PageSize)

	c.HTML(http.StatusOK, "applicants.html", viewData(c, gin.H{
		"Job":        job,
		"Applicants": applicants,
		"Page":       page,
		"TotalPages": totalPages,
	}))
}

// DownloadResume streams a stored resume to the recruiter who owns the
// applicant's job.
func (h *JobHandler) DownloadResume(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "Applicant not found")

		return
	}

	applicant, ok := h.Applicants.ByID(id)
	if !ok {
		c.String(http.StatusNotFound, "Applicant not found")

		return
	}

	job, ok := h.Jobs.ByID(applicant.JobID)
	if !ok {
		c.String(http.StatusNotFound, "Job not found")

		return
	}

	if job.PosterEmail != middleware.SessionEmail(c) {
		c.String(http.StatusForbidden, "You can only download resumes for jobs you posted")

		return
	}

	path, err := h.Resumes.Path(applicant.ResumePath)
	if err != nil {
		c.String(http.StatusNotFound, "Resume not found")

		return
	}

	c.FileAttachment(path, applicant.ResumePath)
}
