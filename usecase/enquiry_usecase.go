package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"

	"vespa-academy/domain/dto"
	"vespa-academy/domain/model"
	"vespa-academy/infrastructure/logger"
	"vespa-academy/infrastructure/mail"
)

type IEnquiryUsecase interface {
	// Submit validates the contact form and mails it to the site owner.
	Submit(ctx context.Context, req dto.EnquiryRequest) error
}

type enquiryUsecase struct {
	mailer mail.IMailer
}

func NewEnquiryUsecase(mailer mail.IMailer) IEnquiryUsecase {
	return &enquiryUsecase{mailer: mailer}
}

func (u *enquiryUsecase) Submit(ctx context.Context, req dto.EnquiryRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &model.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(req.Email) == "" {
		return &model.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if strings.TrimSpace(req.Message) == "" {
		return &model.ValidationError{Field: "message", Reason: "must not be empty"}
	}
	school := strings.TrimSpace(req.School)
	if school == "" {
		school = "Not Provided"
	}

	subject := fmt.Sprintf("New VESPA Academy Enquiry from %s", req.Name)
	body := fmt.Sprintf(`<h3>New VESPA Academy Website Enquiry</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>School/Organization:</strong> %s</p>
<hr>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(school),
		strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>"))

	if err := u.mailer.Send(ctx, subject, body); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error sending enquiry email")
		return err
	}
	logger.GetLogger().WithField("email", req.Email).Info("Enquiry email sent")
	return nil
}
