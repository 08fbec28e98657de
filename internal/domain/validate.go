package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	zipPattern   = regexp.MustCompile(`^[0-9]{6}$`)
	phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

// MaxScreenshotSize caps payment screenshot uploads at 5 MiB.
const MaxScreenshotSize = 5 * 1024 * 1024

var allowedScreenshotExts = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone"`
}

func ValidateShipping(s ShippingInfo) error {
	if strings.TrimSpace(s.Address) == "" {
		return NewValidationError("address", "address is required")
	}
	if strings.TrimSpace(s.City) == "" {
		return NewValidationError("city", "city is required")
	}
	if !zipPattern.MatchString(s.Zip) {
		return NewValidationError("zip", "zip code must be exactly 6 digits")
	}
	if !phonePattern.MatchString(s.Phone) {
		return NewValidationError("phone", "phone must be 10 digits starting with 6-9")
	}
	return nil
}

// ValidateScreenshot checks the upload before any byte reaches storage.
func ValidateScreenshot(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedScreenshotExts[ext] {
		return NewValidationError("screenshot", "file must be a pdf, jpg, jpeg or png")
	}
	if size <= 0 {
		return NewValidationError("screenshot", "file is empty")
	}
	if size > MaxScreenshotSize {
		return NewValidationError("screenshot", "file exceeds the 5MB limit")
	}
	return nil
}

func ValidateRejectionReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return NewValidationError("reason", "rejection reason is required")
	}
	return nil
}

func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return NewValidationError("rating", "rating must be between 1 and 5")
	}
	return nil
}

// ValidateProduct checks admin-entered product data.
func ValidateProduct(p *Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", "name is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		return NewValidationError("category", "category is required")
	}
	if p.Price <= 0 {
		return NewValidationError("price", "price must be positive")
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		return NewValidationError("originalPrice", "original price must not be below price")
	}
	if p.Rating < 0 || p.Rating > 5 {
		return NewValidationError("rating", "rating must be between 0 and 5")
	}
	return nil
}
