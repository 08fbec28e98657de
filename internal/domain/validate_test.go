package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validShipping() ShippingInfo {
	return ShippingInfo{
		Address: "14 Rose Street",
		City:    "Jaipur",
		Zip:     "302001",
		Phone:   "9876543210",
	}
}

func TestValidateShipping(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*ShippingInfo)
		expectedField string
	}{
		{"valid", func(s *ShippingInfo) {}, ""},
		{"blank address", func(s *ShippingInfo) { s.Address = "   " }, "address"},
		{"blank city", func(s *ShippingInfo) { s.City = "" }, "city"},
		{"zip too short", func(s *ShippingInfo) { s.Zip = "30200" }, "zip"},
		{"zip with letters", func(s *ShippingInfo) { s.Zip = "30200a" }, "zip"},
		{"phone too long", func(s *ShippingInfo) { s.Phone = "98765432100" }, "phone"},
		{"phone starting below 6", func(s *ShippingInfo) { s.Phone = "5876543210" }, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validShipping()
			tt.mutate(&s)
			err := ValidateShipping(s)
			if tt.expectedField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.expectedField, verr.Field)
		})
	}
}

func TestValidateScreenshot(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		size        int64
		expectError bool
	}{
		{"png ok", "payment.png", 1024, false},
		{"uppercase extension ok", "payment.JPG", 1024, false},
		{"pdf ok", "receipt.pdf", MaxScreenshotSize, false},
		{"gif rejected", "payment.gif", 1024, true},
		{"no extension rejected", "payment", 1024, true},
		{"oversized rejected", "payment.png", MaxScreenshotSize + 1, true},
		{"empty rejected", "payment.png", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScreenshot(tt.filename, tt.size)
			if tt.expectError {
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRejectionReason(t *testing.T) {
	assert.NoError(t, ValidateRejectionReason("payment screenshot unreadable"))

	var verr *ValidationError
	assert.ErrorAs(t, ValidateRejectionReason(""), &verr)
	assert.ErrorAs(t, ValidateRejectionReason("   "), &verr)
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, ValidateRating(rating))
	}
	var verr *ValidationError
	assert.ErrorAs(t, ValidateRating(0), &verr)
	assert.ErrorAs(t, ValidateRating(6), &verr)
}

func TestValidateProduct(t *testing.T) {
	original := int64(50000)
	lower := int64(20000)

	tests := []struct {
		name        string
		product     Product
		expectError bool
	}{
		{"valid", Product{Name: "Vase", Category: "ceramics", Price: 29900}, false},
		{"valid with discount", Product{Name: "Vase", Category: "ceramics", Price: 29900, OriginalPrice: &original}, false},
		{"blank name", Product{Category: "ceramics", Price: 29900}, true},
		{"blank category", Product{Name: "Vase", Price: 29900}, true},
		{"zero price", Product{Name: "Vase", Category: "ceramics"}, true},
		{"original below price", Product{Name: "Vase", Category: "ceramics", Price: 29900, OriginalPrice: &lower}, true},
		{"rating out of range", Product{Name: "Vase", Category: "ceramics", Price: 29900, Rating: 5.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProduct(&tt.product)
			if tt.expectError {
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
