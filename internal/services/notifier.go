package services

import (
	"context"
	"fmt"

	"github.com/ajaymkoli/Job-Portal/internal/config"
	"github.com/ajaymkoli/Job-Portal/internal/models"
	"github.com/ajaymkoli/Job-Portal/internal/store"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Notifier dispatches a confirmation to an applicant after their
// application has been recorded.
type Notifier interface {
	ApplicationReceived(ctx context.Context, applicant *models.Applicant, job *models.Job) error
}

// MailNotifier sends confirmation emails over SMTP.
type MailNotifier struct {
	cfg    *config.Config
	users  *store.UserStore
	logger *zap.Logger
}

func NewMailNotifier(cfg *config.Config, users *store.UserStore, logger *zap.Logger) *MailNotifier {
	return &MailNotifier{
		cfg:    cfg,
		users:  users,
		logger: logger,
	}
}

func (n *MailNotifier) ApplicationReceived(ctx context.Context, applicant *models.Applicant, job *models.Job) error {
	// Resolve the recruiter's display name, falling back to the raw
	// poster email when no account matches.
	recruiter := job.PosterEmail
	if rec, ok := n.users.ByEmail(job.PosterEmail); ok && rec.Name != "" {
		recruiter = rec.Name
	}

	jobURL := fmt.Sprintf("%s/jobdetails/%d", n.cfg.BaseURL, job.ID)

	text := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Thank you for applying for the position of %s at %s. "+
			"We have received your application on %s.\n\n"+
			"Recruiter: %s (%s)\n"+
			"Job details: %s\n\n"+
			"What happens next:\n"+
			"- Your application will be reviewed by the recruiter.\n"+
			"- If shortlisted, the recruiter will contact you via email or phone.\n\n"+
			"If you have questions, reply to this email or contact support at %s.\n\n"+
			"Thanks,\nEasily Team",
		applicant.Name, job.Title, job.Company, applicant.AppliedOn,
		recruiter, job.PosterEmail, jobURL, n.cfg.EmailFrom,
	)

	html := fmt.Sprintf(
		`<div style="font-family: Arial, Helvetica, sans-serif; color:#111;">
<h2>Application received &mdash; %s</h2>
<p>Hi <strong>%s</strong>,</p>
<p>Thank you for applying for the role of <strong>%s</strong> at <strong>%s</strong>.
We received your application on <strong>%s</strong>.</p>
<ul>
<li><strong>Position:</strong> %s</li>
<li><strong>Company:</strong> %s</li>
<li><strong>Recruiter:</strong> %s (%s)</li>
<li><strong>Applied on:</strong> %s</li>
</ul>
<p>You can view the job details here: <a href="%s">%s at %s</a></p>
<p>Best regards,<br/><strong>Easily Team</strong></p>
</div>`,
		job.Company, applicant.Name, job.Title, job.Company, applicant.AppliedOn,
		job.Title, job.Company, recruiter, job.PosterEmail, applicant.AppliedOn,
		jobURL, job.Title, job.Company,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.cfg.EmailFrom)
	msg.SetHeader("To", applicant.Email)
	msg.SetHeader("Subject", fmt.Sprintf(
		"Your application for %s at %s has been received", job.Title, job.Company))
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	dialer := gomail.NewDialer(n.cfg.SMTPHost, n.cfg.SMTPPort, n.cfg.SMTPUser, n.cfg.SMTPPass)

	// gomail has no context support, so the send runs in a goroutine and
	// a hung transport is abandoned when the context expires.
	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send mail: %w", err)
		}
	case <-ctx.Done():
		return fmt.Errorf("send mail: %w", ctx.Err())
	}

	n.logger.Info("confirmation email sent",
		zap.String("to", applicant.Email),
		zap.Int("job_id", job.ID),
	)

	return nil
}

// LogNotifier stands in when SMTP is not configured. It records the
// would-be dispatch and succeeds.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) ApplicationReceived(_ context.Context, applicant *models.Applicant, job *models.Job) error {
	n.logger.Info("smtp not configured, skipping confirmation email",
		zap.String("to", applicant.Email),
		zap.Int("job_id", job.ID),
		zap.String("title", job.Title),
	)

	return nil
}
