package identity

import (
	"fmt"
	"regexp"
	"strings"
)

// Lightweight field extraction over OCR text. Labels and formats follow the
// documents this intake accepts: a "Name:" label, dd-mm-yyyy, dd/mm/yyyy or
// yyyy-mm-dd dates, and 12-digit Aadhaar numbers optionally grouped in fours.
var (
	namePattern    = regexp.MustCompile(`Name[:\- ]+([A-Za-z ]+)`)
	isoDOBPattern  = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	dayDOBPattern  = regexp.MustCompile(`\b(\d{2})[-/](\d{2})[-/](\d{4})\b`)
	aadhaarPattern = regexp.MustCompile(`\b\d{4}\s?\d{4}\s?\d{4}\b`)
)

// ExtractFromText pulls identity fields out of free-form document text.
// Fields that cannot be found are left empty. Dates are normalized to
// yyyy-mm-dd, the format declared dates of birth are stored in.
func ExtractFromText(text string) Extracted {
	var out Extracted

	if m := namePattern.FindStringSubmatch(text); m != nil {
		out.Name = strings.TrimSpace(m[1])
	}
	if m := isoDOBPattern.FindString(text); m != "" {
		out.DOB = m
	} else if m := dayDOBPattern.FindStringSubmatch(text); m != nil {
		out.DOB = fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1])
	}
	if m := aadhaarPattern.FindString(text); m != "" {
		digits := strings.ReplaceAll(m, " ", "")
		out.IDLast4 = digits[len(digits)-4:]
	}
	return out
}
