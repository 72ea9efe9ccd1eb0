package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewMailer(t *testing.T) {
	logger := discardLogger()

	m, err := NewMailer(MailerConfig{Provider: ProviderNoop}, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	m, err = NewMailer(MailerConfig{Provider: "carrier-pigeon"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	m, err = NewMailer(MailerConfig{
		Provider:    ProviderSES,
		FromAddress: "activities@mergington.edu",
		SES:         SESConfig{Region: "us-east-1", AccessKeyID: "id", SecretAccessKey: "secret"},
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &sesMailer{}, m)

	_, err = NewMailer(MailerConfig{Provider: ProviderSES}, logger)
	require.Error(t, err)
}

func TestSESMailer_Send(t *testing.T) {
	fake := &fakeSES{}
	m := &sesMailer{client: fake, fromAddress: "activities@mergington.edu", fromName: "Mergington", logger: discardLogger()}

	err := m.Send(context.Background(), "a@b.edu", "Subject", "<p>hi</p>", "")
	require.NoError(t, err)

	require.NotNil(t, fake.input)
	assert.Equal(t, "Mergington <activities@mergington.edu>", aws.ToString(fake.input.Source))
	assert.Equal(t, []string{"a@b.edu"}, fake.input.Destination.ToAddresses)
	assert.Equal(t, "Subject", aws.ToString(fake.input.Message.Subject.Data))
	require.NotNil(t, fake.input.Message.Body.Html)
	assert.Nil(t, fake.input.Message.Body.Text)
}

func TestSESMailer_SendError(t *testing.T) {
	boom := errors.New("throttled")
	m := &sesMailer{client: &fakeSES{err: boom}, fromAddress: "activities@mergington.edu", logger: discardLogger()}

	err := m.Send(context.Background(), "a@b.edu", "s", "", "text")
	require.ErrorIs(t, err, boom)
}
