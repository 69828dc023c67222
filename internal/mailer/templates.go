package mailer

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/Azz3m90/LandPage/internal/contact"
	"github.com/Azz3m90/LandPage/internal/i18n"
)

// Identity carries the business details rendered into both emails.
type Identity struct {
	CompanyName    string
	CompanyAddress string
	WebsiteURL     string
	AdminEmail     string
}

// escapedFields exposes the submission to the templates. Sanitized fields
// arrive already HTML-escaped, so they are passed through as-is instead of
// being escaped a second time.
type escapedFields struct {
	FullName template.HTML
	Email    string
	Phone    string
	Subject  template.HTML
	Message  template.HTML
}

func escaped(sub *contact.Submission) escapedFields {
	return escapedFields{
		FullName: template.HTML(sub.FullName()),
		Email:    sub.Email,
		Phone:    sub.Phone,
		Subject:  template.HTML(sub.Subject),
		Message:  template.HTML(sub.Message),
	}
}

type adminTemplateData struct {
	T           *i18n.Messages
	Lang        string
	Sub         escapedFields
	SubmittedAt string
	Reference   string
}

type clientTemplateData struct {
	T           *i18n.Messages
	Lang        string
	Sub         escapedFields
	Identity    Identity
	Year        int
	BestRegards template.HTML
}

var adminTemplate = template.Must(template.New("admin").Parse(`<html>
<head>
<style>
  body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f5f5f5; }
  .container { background-color: white; padding: 20px; border-radius: 10px; }
  .header { background-color: #007bff; color: white; padding: 15px; border-radius: 5px; margin-bottom: 20px; position: relative; }
  .field { margin-bottom: 15px; padding: 10px; border-left: 3px solid #007bff; background-color: #f8f9fa; }
  .label { font-weight: bold; color: #333; margin-bottom: 5px; }
  .value { color: #555; }
  .message-box { background-color: white; padding: 15px; border: 1px solid #ddd; border-radius: 5px; line-height: 1.5; white-space: pre-line; }
  .footer { margin-top: 20px; padding-top: 20px; border-top: 1px solid #ddd; color: #666; font-size: 12px; }
  .language-badge { position: absolute; top: 10px; right: 15px; background: #28a745; color: white; padding: 3px 8px; border-radius: 12px; font-size: 11px; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <span class="language-badge">{{.Lang}}</span>
    <h2>{{.T.NewContactSubmission}}</h2>
    <p>{{.T.ReceivedMessage}}</p>
  </div>
  <div class="content">
    <div class="field">
      <div class="label">{{index .T.FieldNames "firstName"}}:</div>
      <div class="value">{{.Sub.FullName}}</div>
    </div>
    <div class="field">
      <div class="label">{{index .T.FieldNames "email"}}:</div>
      <div class="value">{{.Sub.Email}}</div>
    </div>
    {{if .Sub.Phone}}<div class="field">
      <div class="label">{{index .T.FieldNames "phone"}}:</div>
      <div class="value">{{.Sub.Phone}}</div>
    </div>{{end}}
    <div class="field">
      <div class="label">{{index .T.FieldNames "subject"}}:</div>
      <div class="value">{{.Sub.Subject}}</div>
    </div>
    <div class="field">
      <div class="label">{{index .T.FieldNames "message"}}:</div>
      <div class="message-box">{{.Sub.Message}}</div>
    </div>
    <div class="field">
      <div class="label">{{.T.Submitted}}:</div>
      <div class="value">{{.SubmittedAt}} ({{.Reference}})</div>
    </div>
  </div>
  <div class="footer">
    <p>{{.T.AutoGenerated}}</p>
  </div>
</div>
</body>
</html>`))

var clientTemplate = template.Must(template.New("client").Parse(`<html>
<head>
<style>
  body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f5f5f5; }
  .container { background-color: white; padding: 20px; border-radius: 10px; }
  .header { background-color: #28a745; color: white; padding: 15px; border-radius: 5px; margin-bottom: 20px; text-align: center; position: relative; }
  .content { line-height: 1.6; color: #333; }
  .highlight { color: #007bff; font-weight: bold; }
  .steps { background-color: #e8f4f8; padding: 15px; border-radius: 5px; margin: 20px 0; }
  .step { padding: 5px 0; }
  .footer { margin-top: 20px; padding-top: 20px; border-top: 1px solid #ddd; color: #666; font-size: 12px; text-align: center; }
  ul { background-color: #f8f9fa; padding: 15px; border-radius: 5px; }
  li { margin-bottom: 5px; }
  .language-badge { position: absolute; top: 10px; right: 15px; background: #17a2b8; color: white; padding: 3px 8px; border-radius: 12px; font-size: 11px; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <span class="language-badge">{{.Lang}}</span>
    <h2>{{.T.ThankYouTitle}}</h2>
    <p>{{.T.ThankYouMessage}}</p>
  </div>
  <div class="content">
    <p><span class="highlight">{{.Sub.FullName}}</span>,</p>
    <p>{{.T.ResponseTime}}</p>
    <div class="steps">
      <h3>{{.T.WhatHappensNext}}</h3>
      {{range .T.Steps}}<div class="step">&#10003; {{.}}</div>
      {{end}}
    </div>
    <p>{{.T.ContactInfo}}</p>
    <ul>
      <li><strong>Web:</strong> {{.Identity.WebsiteURL}}</li>
      <li><strong>Email:</strong> {{.Identity.AdminEmail}}</li>
      <li>{{.Identity.CompanyAddress}}</li>
    </ul>
    <p>{{.BestRegards}}</p>
  </div>
  <div class="footer">
    <p>{{.T.AutoGenerated}}</p>
    <p>&copy; {{.Year}} {{.Identity.CompanyName}}</p>
  </div>
</div>
</body>
</html>`))

// RenderAdminNotification builds the operator notification for a submission.
func RenderAdminNotification(sub *contact.Submission, identity Identity, reference string, submittedAt time.Time) (*Email, error) {
	t := i18n.Catalog(sub.Language)
	var buf bytes.Buffer
	err := adminTemplate.Execute(&buf, adminTemplateData{
		T:           t,
		Lang:        strings.ToUpper(string(sub.Language)),
		Sub:         escaped(sub),
		SubmittedAt: submittedAt.Format("2006-01-02 15:04:05"),
		Reference:   reference,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render admin notification: %w", err)
	}

	return &Email{
		To:       identity.AdminEmail,
		FromName: identity.CompanyName + " Website",
		Subject:  fmt.Sprintf(t.EmailSubjectAdmin, identity.CompanyName),
		HTML:     buf.String(),
		Text:     PlainText(buf.String()),
	}, nil
}

// RenderClientConfirmation builds the confirmation sent back to the sender.
func RenderClientConfirmation(sub *contact.Submission, identity Identity, now time.Time) (*Email, error) {
	t := i18n.Catalog(sub.Language)
	var buf bytes.Buffer
	err := clientTemplate.Execute(&buf, clientTemplateData{
		T:           t,
		Lang:        strings.ToUpper(string(sub.Language)),
		Sub:         escaped(sub),
		Identity:    identity,
		Year:        now.Year(),
		BestRegards: template.HTML(fmt.Sprintf(t.BestRegards, template.HTMLEscapeString(identity.CompanyName))),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render client confirmation: %w", err)
	}

	return &Email{
		To:       sub.Email,
		FromName: identity.CompanyName + " Team",
		Subject:  fmt.Sprintf(t.EmailSubjectClient, identity.CompanyName),
		HTML:     buf.String(),
		Text:     PlainText(buf.String()),
	}, nil
}

var (
	breakRegex = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</div>|</h[1-6]>`)
	htmlRegex  = regexp.MustCompile(`<[^>]*>`)
	blankRegex = regexp.MustCompile(`\n{3,}`)
)

// PlainText derives the plaintext alternative part from rendered HTML.
func PlainText(htmlBody string) string {
	text := breakRegex.ReplaceAllString(htmlBody, "\n")
	text = htmlRegex.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
