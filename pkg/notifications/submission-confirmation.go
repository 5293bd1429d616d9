package notifications

import (
	"bytes"
	"html/template"
)

const submissionConfirmationSubject = "Your project modification has been submitted"

var submissionConfirmationTemplate = template.Must(template.New("submissionConfirmation").Parse(`
<p>Dear {{.FullName}},</p>
<p>Your modification <strong>{{.ModificationID}}</strong> for project record <strong>{{.ProjectRecordID}}</strong> has been submitted for review.</p>
<p>You will be contacted once the review is complete. You do not need to take any further action at this point.</p>
<p>This is an automated message, please do not reply.</p>
`))

type SubmissionConfirmation struct {
	FullName        string
	Email           string
	ModificationID  string
	ProjectRecordID string
}

// SendSubmissionConfirmation notifies the applicant that their modification
// was handed over to review.
func (sc *SmtpClients) SendSubmissionConfirmation(info SubmissionConfirmation) error {
	var body bytes.Buffer
	if err := submissionConfirmationTemplate.Execute(&body, info); err != nil {
		return err
	}
	return sc.SendMail([]string{info.Email}, submissionConfirmationSubject, body.String())
}
