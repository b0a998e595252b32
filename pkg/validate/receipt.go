package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

const receiptLength = 12

// NewReceiptNumber generates a receipt number with a Luhn check digit.
func NewReceiptNumber() string {
	number := goluhn.Generate(receiptLength)
	return number
}

// IsReceiptNumber reports whether s carries a valid Luhn check digit.
func IsReceiptNumber(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
