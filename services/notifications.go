package services

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"nagaralert-be/logger"
)

var mailTemplates = template.Must(template.New("mail").Parse(`
{{define "activation"}}<p>Dear {{.Name}},</p>
<p>Your activation code: <strong>{{.Code}}</strong></p>
<p>The code expires in {{.Validity}}.</p>
<p>NagarAlert</p>{{end}}

{{define "reset"}}<p>Dear {{.Name}},</p>
<p>Your password reset code: <strong>{{.Code}}</strong></p>
<p>The code expires in {{.Validity}}. Ignore this email if you did not ask for a reset.</p>
<p>NagarAlert</p>{{end}}

{{define "staffWelcome"}}<p>Dear {{.Name}},</p>
<p>A NagarAlert staff account was created for you.</p>
<p>Email: <strong>{{.Email}}</strong><br>Temporary password: <strong>{{.Password}}</strong></p>
<p>Please change your password after the first login.</p>{{end}}

{{define "staffAssignment"}}<p>Dear {{.Name}},</p>
<p>Report <strong>{{.Title}}</strong> has been assigned to you with {{.Priority}} priority.</p>
<p>Due: {{.DueDate}}</p>{{if .Notes}}<p>Notes: {{.Notes}}</p>{{end}}{{end}}

{{define "citizenAssignment"}}<p>Dear {{.Name}},</p>
<p>Your report <strong>{{.Title}}</strong> has been assigned to municipal staff and is being looked at.</p>{{end}}

{{define "resolved"}}<p>Dear {{.Name}},</p>
<p>Your report <strong>{{.Title}}</strong> has been resolved.{{if .Points}} You earned {{.Points}} points.{{end}}</p>
<p>Thank you for helping your city.</p>{{end}}
`))

// Notifier renders and sends transactional mail. Delivery is best-effort:
// failures are logged and never returned to the caller.
type Notifier struct {
	mailer Mailer
	log    *logger.Logger
}

func NewNotifier(mailer Mailer, log *logger.Logger) *Notifier {
	return &Notifier{mailer: mailer, log: log}
}

func (n *Notifier) send(ctx context.Context, to, subject, tmpl string, data interface{}) {
	var body bytes.Buffer
	entry := n.log.WithContext(ctx).WithFields(map[string]interface{}{"to": to, "template": tmpl})
	if err := mailTemplates.ExecuteTemplate(&body, tmpl, data); err != nil {
		entry.WithError(err).Error("rendering mail")
		return
	}
	if err := n.mailer.Send(ctx, to, subject, body.String()); err != nil {
		entry.WithError(err).Warn("sending mail failed")
	}
}

func (n *Notifier) Activation(ctx context.Context, name, email, code string, validity time.Duration) {
	n.send(ctx, email, "Activate your NagarAlert account", "activation", map[string]interface{}{
		"Name": name, "Code": code, "Validity": validity.String(),
	})
}

func (n *Notifier) PasswordReset(ctx context.Context, name, email, code string, validity time.Duration) {
	n.send(ctx, email, "NagarAlert password reset", "reset", map[string]interface{}{
		"Name": name, "Code": code, "Validity": validity.String(),
	})
}

func (n *Notifier) StaffWelcome(ctx context.Context, name, email, password string) {
	n.send(ctx, email, "Your NagarAlert staff account", "staffWelcome", map[string]interface{}{
		"Name": name, "Email": email, "Password": password,
	})
}

func (n *Notifier) StaffAssignment(ctx context.Context, name, email, title, priority string, due time.Time, notes string) {
	n.send(ctx, email, "New report assigned: "+title, "staffAssignment", map[string]interface{}{
		"Name": name, "Title": title, "Priority": priority, "DueDate": due.Format("2006-01-02"), "Notes": notes,
	})
}

func (n *Notifier) CitizenAssignment(ctx context.Context, name, email, title string) {
	n.send(ctx, email, "Your report is being handled", "citizenAssignment", map[string]interface{}{
		"Name": name, "Title": title,
	})
}

func (n *Notifier) Resolved(ctx context.Context, name, email, title string, points int) {
	n.send(ctx, email, "Your report has been resolved", "resolved", map[string]interface{}{
		"Name": name, "Title": title, "Points": points,
	})
}
