package validation

import "unicode/utf8"

// ProfileInput is the profile upsert payload. Skills arrives as a single
// comma-separated string.
type ProfileInput struct {
	Handle         string `json:"handle"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Instagram      string `json:"instagram"`
	Linkedin       string `json:"linkedin"`
}

// ValidateProfileInput checks the profile upsert payload.
func ValidateProfileInput(in ProfileInput) (map[string]string, bool) {
	errs := map[string]string{}

	if in.Handle == "" {
		errs["handle"] = "Profile handle is required."
	} else if utf8.RuneCountInString(in.Handle) > 40 {
		errs["handle"] = "Handle must be at most 40 characters."
	}
	if in.Status == "" {
		errs["status"] = "Status field is required."
	}
	if in.Skills == "" {
		errs["skills"] = "Skills field is required."
	}

	return errs, len(errs) == 0
}

// ExperienceInput is the add-experience payload. Dates arrive as strings and
// are parsed by the service layer.
type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// ValidateExperienceInput checks the add-experience payload.
func ValidateExperienceInput(in ExperienceInput) (map[string]string, bool) {
	errs := map[string]string{}

	if in.Title == "" {
		errs["title"] = "Job title is required."
	}
	if in.Company == "" {
		errs["company"] = "Company is required."
	}
	if in.From == "" {
		errs["from"] = "From date is required."
	}

	return errs, len(errs) == 0
}

// EducationInput is the add-education payload.
type EducationInput struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// ValidateEducationInput checks the add-education payload.
func ValidateEducationInput(in EducationInput) (map[string]string, bool) {
	errs := map[string]string{}

	if in.School == "" {
		errs["school"] = "School is required."
	}
	if in.Degree == "" {
		errs["degree"] = "Degree is required."
	}
	if in.FieldOfStudy == "" {
		errs["fieldofstudy"] = "Field of study is required."
	}
	if in.From == "" {
		errs["from"] = "From date is required."
	}

	return errs, len(errs) == 0
}
