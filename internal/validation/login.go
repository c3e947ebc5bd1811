package validation

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateLoginInput checks the login payload.
func ValidateLoginInput(in LoginInput) (map[string]string, bool) {
	errs := map[string]string{}

	if in.Email == "" {
		errs["email"] = "Email is required."
	} else if !emailRegex.MatchString(in.Email) {
		errs["email"] = "Email is invalid."
	}
	if in.Password == "" {
		errs["password"] = "Password is required."
	}

	return errs, len(errs) == 0
}
