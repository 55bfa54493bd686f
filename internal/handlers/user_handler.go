package handlers

import (
	"net/http"

	"github.com/ajaymkoli/Job-Portal/internal/dtos"
	"github.com/ajaymkoli/Job-Portal/internal/middleware"
	"github.com/ajaymkoli/Job-Portal/internal/store"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Users  *store.UserStore
	Logger *zap.Logger
}

func NewUserHandler(users *store.UserStore, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		Users:  users,
		Logger: logger,
	}
}

func (h *UserHandler) GetRegister(c *gin.Context) {
	if middleware.SessionEmail(c) != "" {
		c.Redirect(http.StatusFound, "/jobs")

		return
	}

	c.HTML(http.StatusOK, "register.html", viewData(c, nil))
}

func (h *UserHandler) PostRegister(c *gin.Context) {
	var form dtos.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "register.html", viewData(c, gin.H{
			"ErrorMessage": dtos.ErrorMessage(err),
		}))

		return
	}

	if _, err := h.Users.Register(form.Name, form.Email, form.Mobile, form.Password); err != nil {
		c.HTML(http.StatusOK, "register.html", viewData(c, gin.H{
			"ErrorMessage": "User already exists with this email or mobile number.",
		}))

		return
	}

	c.HTML(http.StatusOK, "login.html", viewData(c, gin.H{
		"SuccessMessage": "Registered successfully. Please login.",
	}))
}

func (h *UserHandler) GetLogin(c *gin.Context) {
	if middleware.SessionEmail(c) != "" {
		c.Redirect(http.StatusFound, "/jobs")

		return
	}

	c.HTML(http.StatusOK, "login.html", viewData(c, nil))
}

func (h *UserHandler) PostLogin(c *gin.Context) {
	var form dtos.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "login.html", viewData(c, gin.H{
			"ErrorMessage": "Please enter your email and password.",
		}))

		return
	}

	user, ok := h.Users.Authenticate(form.Email, form.Password)
	if !ok {
		c.HTML(http.StatusOK, "login.html", viewData(c, gin.H{
			"ErrorMessage": "Please check your email or password. If not registered, please register.",
		}))

		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionEmailKey, user.Email)
	if err := session.Save(); err != nil {
		h.Logger.Error("failed to save session", zap.Error(err))
		c.String(http.StatusInternalServerError, "Login failed")

		return
	}

	c.Redirect(http.StatusFound, "/jobs")
}

func (h *UserHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		h.Logger.Error("failed to destroy session", zap.Error(err))
	}

	c.Redirect(http.StatusFound, "/login")
}
