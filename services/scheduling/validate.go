package scheduling

import (
	"regexp"
	"strings"

	"hireflow/models"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{5,19}$`)
	// Resume links must be Google Drive shares.
	driveURLPattern = regexp.MustCompile(`^https://(drive|docs)\.google\.com/[^\s]+$`)
)

// validateIdentity enforces the per-mode required-field set at submission.
func validateIdentity(identity models.Identity) error {
	var problems []string

	require := func(value, field string) {
		if strings.TrimSpace(value) == "" {
			problems = append(problems, field+" is required")
		}
	}

	switch id := identity.(type) {
	case models.SelfServiceIdentity:
		require(id.Name, "name")
		require(id.Email, "email")
		require(id.Phone, "phone")
		require(id.Niche, "niche")
		if id.Email != "" && !emailPattern.MatchString(id.Email) {
			problems = append(problems, "email is malformed")
		}
		if id.Phone != "" && !phonePattern.MatchString(id.Phone) {
			problems = append(problems, "phone is malformed")
		}
		if id.ResumeURL != "" && !driveURLPattern.MatchString(id.ResumeURL) {
			problems = append(problems, "resume link must be a Google Drive URL")
		}
	case models.OperatorIdentity:
		require(id.Name, "name")
		require(id.Email, "email")
		if id.Email != "" && !emailPattern.MatchString(id.Email) {
			problems = append(problems, "email is malformed")
		}
	default:
		problems = append(problems, "unsupported identity type")
	}

	if len(problems) > 0 {
		return newValidationError("%s", strings.Join(problems, "; "))
	}
	return nil
}

// identityMatchesMode rejects a self-service session submitting operator
// fields and vice versa.
func identityMatchesMode(identity models.Identity, mode models.SessionMode) bool {
	switch identity.(type) {
	case models.SelfServiceIdentity:
		return mode == models.ModeSelfService
	case models.OperatorIdentity:
		return mode == models.ModeOperator
	}
	return false
}
