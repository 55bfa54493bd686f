package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ajaymkoli/Job-Portal/internal/dtos"
	"github.com/ajaymkoli/Job-Portal/internal/middleware"
	"github.com/ajaymkoli/Job-Portal/internal/services"
	"github.com/ajaymkoli/Job-Portal/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxResumeSize caps uploaded resumes at 5 MiB.
const MaxResumeSize = 5 << 20

type ApplicationHandler struct {
	Applications *services.ApplicationService
	Jobs         *store.JobStore
	Resumes      *store.ResumeStore
	Logger       *zap.Logger
}

func NewApplicationHandler(
	applications *services.ApplicationService,
	jobs *store.JobStore,
	resumes *store.ResumeStore,
	logger *zap.Logger,
) *ApplicationHandler {
	return &ApplicationHandler{
		Applications: applications,
		Jobs:         jobs,
		Resumes:      resumes,
		Logger:       logger,
	}
}

// Apply accepts a multipart application form with an optional resume and
// runs it through the application workflow. Every rejection path deletes
// the retained upload before responding.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, ok := intParam(c, "id")
	if !ok {
		c.String(http.StatusNotFound, "Job not found")

		return
	}

	job, ok := h.Jobs.ByID(jobID)
	if !ok {
		c.String(http.StatusNotFound, "Job not found")

		return
	}

	renderDetails := func(data gin.H) {
		// Re-read the job so the rendered applicant count is current.
		if fresh, ok := h.Jobs.ByID(jobID); ok {
			data["Job"] = fresh
		} else {
			data["Job"] = job
		}
		c.HTML(http.StatusOK, "jobdetails.html", viewData(c, data))
	}

	// Retain the upload first, the way the original kept multer ahead of
	// validation; the workflow owns cleanup from here on.
	resumePath, err := h.saveResume(c, jobID)
	if err != nil {
		renderDetails(gin.H{"ErrorMessage": err.Error()})

		return
	}

	var form dtos.ApplyForm
	if err := c.ShouldBind(&form); err != nil {
		if delErr := h.Resumes.Delete(resumePath); delErr != nil {
			h.Logger.Error("failed to clean up resume", zap.Error(delErr))
		}
		renderDetails(gin.H{"ErrorMessage": "Please provide your name and a valid email address."})

		return
	}

	_, _, err = h.Applications.Apply(c.Request.Context(), services.ApplyInput{
		JobID:        jobID,
		Name:         form.Name,
		Email:        form.Email,
		Phone:        form.Phone,
		ResumePath:   resumePath,
		SessionEmail: middleware.SessionEmail(c),
	})

	switch {
	case errors.Is(err, services.ErrMissingFields):
		renderDetails(gin.H{"ErrorMessage": "Please provide your name and a valid email address."})
	case errors.Is(err, services.ErrSelfApplication):
		renderDetails(gin.H{"ErrorMessage": "Recruiters cannot apply to their own job posting."})
	case errors.Is(err, services.ErrDuplicateApplication):
		renderDetails(gin.H{"ErrorMessage": "You have already applied for this job."})
	case errors.Is(err, store.ErrJobNotFound):
		c.String(http.StatusNotFound, "Job not found")
	case err != nil:
		h.Logger.Error("application failed", zap.Int("job_id", jobID), zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
	default:
		renderDetails(gin.H{"SuccessMessage": "Application submitted successfully. A confirmation email is on its way."})
	}
}

// saveResume validates and retains the optional resume upload, returning
// its reference or an empty string when no file was attached. Only PDF
// documents up to MaxResumeSize are accepted.
func (h *ApplicationHandler) saveResume(c *gin.Context, jobID int) (string, error) {
	file, err := c.FormFile("resume")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}

		return "", errors.New("The attached resume could not be read.")
	}

	if file.Size > MaxResumeSize {
		return "", errors.New("Resume must be 5 MB or smaller.")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if ext != ".pdf" || (contentType != "" && contentType != "application/pdf") {
		return "", errors.New("Only PDF resumes are accepted.")
	}

	src, err := file.Open()
	if err != nil {
		return "", errors.New("The attached resume could not be read.")
	}
	defer src.Close()

	ref, err := h.Resumes.Save(jobID, ext, src)
	if err != nil {
		h.Logger.Error("failed to store resume", zap.Int("job_id", jobID), zap.Error(err))

		return "", errors.New("The attached resume could not be saved. Please try again.")
	}

	return ref, nil
}
