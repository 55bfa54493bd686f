package dtos

import (
	"errors"
	"strings"
	"unicode"

	"github.com/ajaymkoli/Job-Portal/internal/store"
	"github.com/go-playground/validator/v10"
)

type RegisterForm struct {
	Name            string `form:"name" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	Mobile          string `form:"mobile" binding:"required,mobile"`
	Password        string `form:"password" binding:"required,min=8,strongpassword"`
	ConfirmPassword string `form:"confirmPassword" binding:"required,eqfield=Password"`
}

type LoginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// JobForm mirrors the post-job form. Skills arrive as one comma-separated
// field and are parsed into a list exactly once, at this boundary.
type JobForm struct {
	Category    string `form:"jobcategory" binding:"required"`
	Title       string `form:"jobdesignation" binding:"required"`
	Location    string `form:"joblocation" binding:"required"`
	Company     string `form:"companyname" binding:"required"`
	Salary      string `form:"salary" binding:"required"`
	ApplyBy     string `form:"applyby" binding:"required"`
	Skills      string `form:"skillsrequired" binding:"required"`
	Openings    int    `form:"numberofopenings" binding:"required,min=1"`
	Description string `form:"jobdescription" binding:"required"`
}

// SkillsList splits the comma-separated skills field into an ordered list,
// dropping empty entries.
func (f JobForm) SkillsList() []string {
	parts := strings.Split(f.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}

	return skills
}

// Input converts the form into the store's job input contract.
func (f JobForm) Input() store.JobInput {
	return store.JobInput{
		Category:    f.Category,
		Title:       f.Title,
		Location:    f.Location,
		Company:     f.Company,
		Salary:      f.Salary,
		ApplyBy:     f.ApplyBy,
		Skills:      f.SkillsList(),
		Openings:    f.Openings,
		Description: f.Description,
	}
}

type ApplyForm struct {
	Name  string `form:"name" binding:"required"`
	Email string `form:"email" binding:"required,email"`
	Phone string `form:"phone"`
}

// RegisterValidations installs the custom form rules on gin's validator
// engine. Call once at startup.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("mobile", validMobile); err != nil {
		return err
	}

	return v.RegisterValidation("strongpassword", strongPassword)
}

// validMobile accepts numbers with at least ten digits, ignoring common
// separators.
func validMobile(fl validator.FieldLevel) bool {
	digits := 0
	for _, r := range fl.Field().String() {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
		default:
			return false
		}
	}

	return digits >= 10
}

// strongPassword requires at least one uppercase letter, one lowercase
// letter, one digit and one symbol.
func strongPassword(fl validator.FieldLevel) bool {
	var upper, lower, digit, symbol bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsSpace(r):
			symbol = true
		}
	}

	return upper && lower && digit && symbol
}

// fieldMessages maps (field, tag) pairs to the inline messages shown on
// the originating form.
var fieldMessages = map[string]string{
	"Name/required":             "Name is required.",
	"Email/required":            "Email is required.",
	"Email/email":               "Please enter a valid email address.",
	"Mobile/required":           "Mobile number is required.",
	"Mobile/mobile":             "Please enter a valid mobile number.",
	"Password/required":         "Password is required.",
	"Password/min":              "Password must be at least 8 characters long.",
	"Password/strongpassword":   "Password must contain at least one uppercase letter, one lowercase letter, one number, and one symbol.",
	"ConfirmPassword/required":  "Please confirm your password.",
	"ConfirmPassword/eqfield":   "Passwords do not match.",
	"Category/required":         "Job category is required.",
	"Title/required":            "Job designation is required.",
	"Location/required":         "Job location is required.",
	"Company/required":          "Company name is required.",
	"Salary/required":           "Salary is required.",
	"ApplyBy/required":          "Apply-by date is required.",
	"Skills/required":           "Please add at least one skill.",
	"Openings/required":         "Number of openings must be at least 1.",
	"Openings/min":              "Number of openings must be at least 1.",
	"Description/required":      "Job description is required.",
}

// ErrorMessage turns a binding error into the first user-facing message,
// matching the first-error-wins behavior of the forms.
func ErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := fieldMessages[fe.Field()+"/"+fe.Tag()]; ok {
			return msg
		}

		return "Please check the " + fe.Field() + " field."
	}

	return "Please check the submitted form."
}
