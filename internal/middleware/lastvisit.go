package middleware

import (
	"github.com/ajaymkoli/Job-Portal/internal/models"
	"github.com/ajaymkoli/Job-Portal/internal/store"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const lastVisitKey = "lastVisit"

// Context keys populated for every request; handlers merge these into the
// data handed to views.
const (
	CtxUserEmail = "userEmail"
	CtxLastVisit = "lastVisit"
	CtxProfile   = "profile"
)

// Profile is the summary shown to a logged-in recruiter: how many jobs
// they posted and how many applications those jobs collected.
type Profile struct {
	Email           string
	Name            string
	PostedJobs      int
	TotalApplicants int
}

// LastVisit exposes the previous visit timestamp to views, refreshes it in
// the session, and builds the recruiter profile summary for logged-in
// requests.
func LastVisit(users *store.UserStore, jobs *store.JobStore, applicants *store.ApplicantStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		email, _ := session.Get(SessionEmailKey).(string)
		c.Set(CtxUserEmail, email)

		if prev, ok := session.Get(lastVisitKey).(string); ok {
			c.Set(CtxLastVisit, prev)
		}
		session.Set(lastVisitKey, models.Now())
		_ = session.Save()

		if email != "" {
			profile := Profile{Email: email}
			if user, ok := users.ByEmail(email); ok {
				profile.Name = user.Name
			}
			for _, j := range jobs.ByPoster(email) {
				profile.PostedJobs++
				profile.TotalApplicants += applicants.CountForJob(j.ID)
			}
			c.Set(CtxProfile, profile)
		}

		c.Next()
	}
}
