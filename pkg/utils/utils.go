package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"mime/multipart"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	MonthLabel(t time.Time) string
	ValidateImageFile(file *multipart.FileHeader) error
}

type utils struct {
	maxFileSize int64
}

func New() IUtils {
	return &utils{
		maxFileSize: 5 * 1024 * 1024,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// MonthLabel renders the canonical month key budgets are scoped by.
// The same label is produced for budget creation and expense matching.
func (u *utils) MonthLabel(t time.Time) string {
	return t.Format("2006-01")
}

// DisplayMonth renders "January 2025" from a one-based month number.
func DisplayMonth(year int, month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("Unknown %d", year)
	}
	return fmt.Sprintf("%s %d", time.Month(month).String(), year)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// IsValidPhone accepts an empty phone or exactly ten digits.
func IsValidPhone(phone string) bool {
	return phone == "" || phonePattern.MatchString(phone)
}

func (u *utils) ValidateImageFile(file *multipart.FileHeader) error {
	if file == nil {
		return errors.New("no file uploaded")
	}

	if file.Size > u.maxFileSize {
		return errors.New("file size exceeds limit")
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return errors.New("uploaded file is not an image")
	}

	return nil
}
