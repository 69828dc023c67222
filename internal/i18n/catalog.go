// Package i18n holds the shared message catalogs for the contact pipeline.
// The server pipeline, the email templates and the client guard all read the
// same catalog so the wording never drifts between layers.
package i18n

import "strings"

// Language is one of the three supported language codes.
type Language string

const (
	LangEN Language = "en"
	LangFR Language = "fr"
	LangNL Language = "nl"

	// DefaultLanguage is used when detection fails or yields an
	// unsupported value.
	DefaultLanguage = LangFR
)

// Supported reports whether code is one of the three supported languages.
func Supported(code string) bool {
	switch Language(code) {
	case LangEN, LangFR, LangNL:
		return true
	}
	return false
}

// Detect resolves the language for a submission. An explicit hint wins when
// it names a supported language; otherwise the referer page suffix decides
// ("-en.html" / "-nl.html"); base pages default to French.
func Detect(explicit, referer string) Language {
	if Supported(explicit) {
		return Language(explicit)
	}
	if strings.Contains(referer, "-en.html") {
		return LangEN
	}
	if strings.Contains(referer, "-nl.html") {
		return LangNL
	}
	return DefaultLanguage
}

// Messages holds every user-facing string for one language.
type Messages struct {
	// Pipeline outcome copy
	ValidationFailed string
	SuccessMessage   string
	CaptchaRequired  string
	CaptchaInvalid   string
	SpamDetected     string
	RateLimited      string // fmt verb: %d remaining seconds
	DeliveryFailed   string

	// Validation message formats
	Required          string // fmt verb: field name
	EmailInvalid      string
	EmailTooLong      string
	EmailInvalidChars string
	EmailMultipleAt   string
	EmailDisposable   string
	PhoneInvalid      string
	PhoneRepeated     string
	LengthMin         string // fmt verbs: field name, min
	LengthMax         string // fmt verbs: field name, max
	ConsentRequired   string

	// Field names as shown in error messages and emails
	FieldNames map[string]string

	// Email copy
	EmailSubjectAdmin    string
	EmailSubjectClient   string
	NewContactSubmission string
	ReceivedMessage      string
	Submitted            string
	AutoGenerated        string
	ThankYouTitle        string
	ThankYouMessage      string
	ResponseTime         string
	WhatHappensNext      string
	Steps                [3]string
	ContactInfo          string
	BestRegards          string

	// Client guard copy
	Sending        string
	CountdownWait  string // fmt verb: %d remaining seconds
	TokenRequired  string
	MessageTooLong string
}

// Catalog returns the message set for lang, falling back to the default
// language for anything unsupported. The function is total: it always
// returns a populated Messages value.
func Catalog(lang Language) *Messages {
	if m, ok := catalogs[lang]; ok {
		return m
	}
	return catalogs[DefaultLanguage]
}

// FieldName returns the localized display name of a form field, falling back
// to the raw key when the catalog has no entry for it.
func FieldName(lang Language, field string) string {
	if name, ok := Catalog(lang).FieldNames[field]; ok {
		return name
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
