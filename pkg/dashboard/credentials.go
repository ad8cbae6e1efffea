package dashboard

import (
	"strings"

	"github.com/agentstation/entitymap/pkg/errors"
)

// Credentials are the login pair: the student's first name and student ID.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Normalize returns the credentials with surrounding whitespace removed.
func (c Credentials) Normalize() Credentials {
	return Credentials{
		Username: strings.TrimSpace(c.Username),
		Password: strings.TrimSpace(c.Password),
	}
}

// Validate reports whether both fields are non-blank.
func (c Credentials) Validate() error {
	n := c.Normalize()
	if n.Username == "" {
		return errors.NewValidationError("username", c.Username, "must not be blank")
	}
	if n.Password == "" {
		return errors.NewValidationError("password", "", "must not be blank")
	}
	return nil
}

// String hides the password.
func (c Credentials) String() string {
	return c.Username + ":****"
}
