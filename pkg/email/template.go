package email

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
}

// The text part inserts submitted values literally; it is never interpreted as markup.
const contactTextTemplate = `Name: {{.SenderName}}
Email: {{.SenderEmail}}
Message: {{.Message}}`

// contactEmailTemplate is the HTML alternative; html/template escapes every value
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0ea5e9; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0ea5e9; margin-top: 10px; white-space: pre-wrap; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <p><span class="label">Name:</span> {{.SenderName}}</p>
            <p><span class="label">Email:</span> {{.SenderEmail}}</p>
            <div class="label">Message:</div>
            <div class="message-box">{{.Message}}</div>
        </div>
    </div>
</body>
</html>`

var (
	contactText = texttemplate.Must(texttemplate.New("contact.txt").Parse(contactTextTemplate))
	contactHTML = template.Must(template.New("contact.html").Parse(contactEmailTemplate))
)

// RenderContact renders the plain text and HTML bodies for a submission.
func RenderContact(data ContactEmailData) (text, html string, err error) {
	var textBuf, htmlBuf bytes.Buffer

	if err := contactText.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute text template: %w", err)
	}
	if err := contactHTML.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return textBuf.String(), htmlBuf.String(), nil
}
