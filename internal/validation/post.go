package validation

import "unicode/utf8"

// PostInput is the payload for creating a post or a comment.
type PostInput struct {
	Text   string `json:"text"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ValidatePostInput checks the post/comment payload.
func ValidatePostInput(in PostInput) (map[string]string, bool) {
	errs := map[string]string{}

	if in.Text == "" {
		errs["text"] = "Text field is required."
	} else if n := utf8.RuneCountInString(in.Text); n < 6 || n > 300 {
		errs["text"] = "Post must be between 6 and 300 characters."
	}

	return errs, len(errs) == 0
}
