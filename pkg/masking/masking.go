// Package masking renders sensitive identity fields for display. Masked
// values are presentation-only; stored records keep the full value.
package masking

import "strings"

// Mobile keeps the last four digits: "9876543210" -> "XXXXXX3210".
func Mobile(mobile string) string {
	return keepLast(mobile, 4)
}

// PAN keeps the last five characters (numeric part plus check letter):
// "ABCDE1234F" -> "XXXXX1234F".
func PAN(pan string) string {
	return keepLast(pan, 5)
}

// DOB keeps only the year of an ISO date: "1990-01-01" -> "1990-XX-XX".
func DOB(dob string) string {
	parts := strings.SplitN(dob, "-", 3)
	if len(parts) != 3 {
		return strings.Repeat("X", len(dob))
	}
	return parts[0] + "-XX-XX"
}

// AadhaarLast4 renders the conventional "XXXX XXXX nnnn" form from a full
// or already-truncated Aadhaar number.
func AadhaarLast4(aadhaar string) string {
	digits := strings.ReplaceAll(aadhaar, " ", "")
	if len(digits) < 4 {
		return "XXXX XXXX XXXX"
	}
	return "XXXX XXXX " + digits[len(digits)-4:]
}

// Last4 returns the trailing four characters of a value, or the value
// itself when shorter.
func Last4(s string) string {
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}

func keepLast(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.Repeat("X", len(s)-n) + s[len(s)-n:]
}
