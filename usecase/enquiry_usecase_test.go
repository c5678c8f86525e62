package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"vespa-academy/domain/dto"
	"vespa-academy/domain/model"
	"vespa-academy/usecase"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, subject, htmlBody string) error {
	args := m.Called(ctx, subject, htmlBody)
	return args.Error(0)
}

func TestEnquiryUsecase_Submit(t *testing.T) {
	mailer := new(MockMailer)
	var sentBody string
	mailer.On("Send", mock.Anything, "New VESPA Academy Enquiry from Jamie", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { sentBody = args.String(2) }).
		Return(nil).Once()

	uc := usecase.NewEnquiryUsecase(mailer)
	err := uc.Submit(context.Background(), dto.EnquiryRequest{
		Name:    "Jamie",
		Email:   "jamie@example.com",
		Message: "line one\nline two <script>",
	})

	require.NoError(t, err)
	mailer.AssertExpectations(t)
	assert.Contains(t, sentBody, "jamie@example.com")
	// School defaults when omitted
	assert.Contains(t, sentBody, "Not Provided")
	// Message is escaped and newlines render as breaks
	assert.Contains(t, sentBody, "line one<br>line two &lt;script&gt;")
	assert.NotContains(t, sentBody, "<script>")
}

func TestEnquiryUsecase_Submit_MissingFields(t *testing.T) {
	mailer := new(MockMailer)
	uc := usecase.NewEnquiryUsecase(mailer)

	cases := []struct {
		name  string
		req   dto.EnquiryRequest
		field string
	}{
		{"no name", dto.EnquiryRequest{Email: "a@b.c", Message: "hi"}, "name"},
		{"no email", dto.EnquiryRequest{Name: "A", Message: "hi"}, "email"},
		{"no message", dto.EnquiryRequest{Name: "A", Email: "a@b.c", Message: "  "}, "message"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.Submit(context.Background(), tc.req)
			var validationErr *model.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnquiryUsecase_Submit_SendFailure(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("sendgrid 503"))

	uc := usecase.NewEnquiryUsecase(mailer)
	err := uc.Submit(context.Background(), dto.EnquiryRequest{Name: "A", Email: "a@b.c", Message: "hi"})

	require.Error(t, err)
}
