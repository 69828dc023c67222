package contact

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/Azz3m90/LandPage/internal/i18n"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	emailBadChars = regexp.MustCompile(`[<>"']`)
	phoneRegex    = regexp.MustCompile(`^[+]?[0-9\-().]{10,20}$`)
	tagRegex      = regexp.MustCompile(`<[^>]*>`)
	spaceRegex    = regexp.MustCompile(`\s+`)
)

// disposableDomains are throwaway email providers we refuse inquiries from.
var disposableDomains = map[string]bool{
	"10minutemail.com":  true,
	"guerrillamail.com": true,
	"tempmail.org":      true,
	"throwaway.email":   true,
}

type lengthRule struct {
	min, max int
}

var lengthRules = map[string]lengthRule{
	"firstName": {min: 2, max: 50},
	"lastName":  {min: 2, max: 50},
	"subject":   {min: 0, max: 200},
	"message":   {min: 10, max: 2000},
}

var requiredFields = []string{"firstName", "lastName", "email", "subject", "message"}

// Validate re-checks every field authoritatively and returns either a
// sanitized Submission or the complete set of field-keyed, localized
// errors. It never returns a partially valid record.
func Validate(req *SubmissionRequest, lang i18n.Language) (*Submission, FieldErrors) {
	msgs := i18n.Catalog(lang)
	errs := FieldErrors{}

	fields := map[string]string{
		"firstName": strings.TrimSpace(req.FirstName),
		"lastName":  strings.TrimSpace(req.LastName),
		"email":     strings.TrimSpace(req.Email),
		"phone":     spaceRegex.ReplaceAllString(strings.TrimSpace(req.Phone), ""),
		"subject":   strings.TrimSpace(req.Subject),
		"message":   strings.TrimSpace(req.Message),
	}

	for _, field := range requiredFields {
		if fields[field] == "" {
			errs[field] = fmt.Sprintf(msgs.Required, i18n.FieldName(lang, field))
		}
	}

	if email := fields["email"]; email != "" {
		switch {
		case !emailRegex.MatchString(email):
			errs["email"] = msgs.EmailInvalid
		case len(email) > 254:
			errs["email"] = msgs.EmailTooLong
		case emailBadChars.MatchString(email):
			errs["email"] = msgs.EmailInvalidChars
		case strings.Count(email, "@") != 1:
			errs["email"] = msgs.EmailMultipleAt
		case disposableDomains[strings.ToLower(email[strings.LastIndex(email, "@")+1:])]:
			errs["email"] = msgs.EmailDisposable
		}
	}

	// Phone is optional; validated only when provided.
	if phone := fields["phone"]; phone != "" {
		switch {
		case !phoneRegex.MatchString(phone):
			errs["phone"] = msgs.PhoneInvalid
		case longestDigitRun(phone) >= 9:
			errs["phone"] = msgs.PhoneRepeated
		}
	}

	for field, rule := range lengthRules {
		value := fields[field]
		if value == "" {
			continue
		}
		name := i18n.FieldName(lang, field)
		if len(value) < rule.min {
			errs[field] = fmt.Sprintf(msgs.LengthMin, name, rule.min)
		} else if len(value) > rule.max {
			errs[field] = fmt.Sprintf(msgs.LengthMax, name, rule.max)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Submission{
		FirstName: Sanitize(fields["firstName"]),
		LastName:  Sanitize(fields["lastName"]),
		Email:     fields["email"],
		Phone:     fields["phone"],
		Subject:   Sanitize(fields["subject"]),
		Message:   Sanitize(fields["message"]),
		Language:  lang,
	}, nil
}

// Sanitize strips markup and control characters from a field value and
// HTML-escapes what remains.
func Sanitize(value string) string {
	value = tagRegex.ReplaceAllString(value, "")
	value = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, value)
	return html.EscapeString(strings.TrimSpace(value))
}

// longestDigitRun returns the length of the longest run of one repeated
// digit in s. Nine or more of the same digit in a row is a keyboard-mash
// number, not a real one.
func longestDigitRun(s string) int {
	longest, run := 0, 0
	var prev rune
	for _, r := range s {
		if r >= '0' && r <= '9' && r == prev {
			run++
		} else if r >= '0' && r <= '9' {
			run = 1
		} else {
			run = 0
		}
		prev = r
		if run > longest {
			longest = run
		}
	}
	return longest
}
