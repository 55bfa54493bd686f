package handlers

import (
	"github.com/ajaymkoli/Job-Portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// viewData merges the per-request session values set by the last-visit
// middleware into the data handed to a template.
func viewData(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}

	if email, ok := c.Get(middleware.CtxUserEmail); ok {
		data["UserEmail"] = email
	}
	if lastVisit, ok := c.Get(middleware.CtxLastVisit); ok {
		data["LastVisit"] = lastVisit
	}
	if profile, ok := c.Get(middleware.CtxProfile); ok {
		data["Profile"] = profile
	}

	return data
}

// HealthCheck answers liveness probes.
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

// Home renders the landing page.
func Home(c *gin.Context) {
	c.HTML(200, "index.html", viewData(c, nil))
}

// About renders the informational page.
func About(c *gin.Context) {
	c.HTML(200, "about.html", viewData(c, nil))
}
