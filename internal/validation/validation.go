// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Length bounds mirrored by the database check constraints. Validating here
// gives callers a readable message before the constraint fires.
const (
	UsernameMinLen     = 3
	UsernameMaxLen     = 30
	ForumTitleMinLen   = 5
	ForumTitleMaxLen   = 100
	PostTitleMinLen    = 5
	PostTitleMaxLen    = 100
	PostContentMinLen  = 10
	CommentMinLen      = 2
	AccessCodeMinLen   = 4
	AccessCodeMaxLen   = 64
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateUsername checks length and character set for a username.
func ValidateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < UsernameMinLen || n > UsernameMaxLen {
		return fmt.Errorf("username must be %d-%d characters", UsernameMinLen, UsernameMaxLen)
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username may only contain letters, digits, underscores, dots, and hyphens")
	}
	return nil
}

// ValidateEmail checks basic email shape.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidateForumTitle enforces the 5-100 character forum title constraint.
func ValidateForumTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < ForumTitleMinLen || n > ForumTitleMaxLen {
		return fmt.Errorf("forum title must be %d-%d characters", ForumTitleMinLen, ForumTitleMaxLen)
	}
	return nil
}

// ValidatePostTitle enforces the 5-100 character post title constraint.
func ValidatePostTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < PostTitleMinLen || n > PostTitleMaxLen {
		return fmt.Errorf("post title must be %d-%d characters", PostTitleMinLen, PostTitleMaxLen)
	}
	return nil
}

// ValidatePostContent enforces the 10 character minimum on post content.
func ValidatePostContent(content string) error {
	if utf8.RuneCountInString(content) < PostContentMinLen {
		return fmt.Errorf("post content must be at least %d characters", PostContentMinLen)
	}
	return nil
}

// ValidateCommentContent enforces the 2 character minimum on comments.
func ValidateCommentContent(content string) error {
	if utf8.RuneCountInString(content) < CommentMinLen {
		return fmt.Errorf("comment must be at least %d characters", CommentMinLen)
	}
	return nil
}

// ValidateAccessCode checks an access code supplied for a private forum.
func ValidateAccessCode(code string) error {
	n := utf8.RuneCountInString(code)
	if n < AccessCodeMinLen || n > AccessCodeMaxLen {
		return fmt.Errorf("access code must be %d-%d characters", AccessCodeMinLen, AccessCodeMaxLen)
	}
	return nil
}
