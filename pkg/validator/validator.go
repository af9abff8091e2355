package validator

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// Message flattens the field errors into one deterministic string for
// `{"error": "..."}` bodies.
func (v ValidationErrors) Message() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return strings.Join(parts, "; ")
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func ValidateRegister(username, password string) ValidationErrors {
	errs := make(ValidationErrors)

	username = strings.TrimSpace(username)
	if username == "" {
		errs.Add("username", "Username is required")
	} else if len(username) < 3 {
		errs.Add("username", "Username must be at least 3 characters")
	} else if len(username) > 50 {
		errs.Add("username", "Username is too long")
	} else if !usernameRegex.MatchString(username) {
		errs.Add("username", "Username can only contain letters, numbers, _ and -")
	}

	if password == "" {
		errs.Add("password", "Password is required")
	} else if len(password) < 6 {
		errs.Add("password", "Password must be at least 6 characters")
	}

	return errs
}

func ValidateLogin(username, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(username) == "" {
		errs.Add("username", "Username is required")
	}
	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateJob(title, description, skillsRequired string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(title) == "" {
		errs.Add("title", "Title is required")
	}
	if strings.TrimSpace(description) == "" {
		errs.Add("description", "Description is required")
	}
	if strings.TrimSpace(skillsRequired) == "" {
		errs.Add("skills_required", "Required skills are required")
	}

	return errs
}

func ValidateProject(title, description string, budget float64) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(title) == "" {
		errs.Add("title", "Title is required")
	}
	if strings.TrimSpace(description) == "" {
		errs.Add("description", "Description is required")
	}
	if budget <= 0 {
		errs.Add("budget", "Budget must be positive")
	}

	return errs
}

func ValidateBid(amount float64) ValidationErrors {
	errs := make(ValidationErrors)

	if amount <= 0 {
		errs.Add("amount", "Bid amount must be positive")
	}

	return errs
}

func ValidatePost(content string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(content) == "" {
		errs.Add("content", "Content is required")
	}

	return errs
}

func ValidateReview(title, author string, rating int, reviewText string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(title) == "" {
		errs.Add("title", "Title is required")
	}
	if strings.TrimSpace(author) == "" {
		errs.Add("author", "Author is required")
	}
	if rating < 1 || rating > 5 {
		errs.Add("rating", "Rating must be between 1 and 5")
	}
	if strings.TrimSpace(reviewText) == "" {
		errs.Add("review_text", "Review text is required")
	}

	return errs
}
