package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecino-backend-go/pkg/mailer"
)

func TestNewValidation(t *testing.T) {
	_, err := mailer.New("", "587", "user", "pass", "noreply@example.com")
	assert.Error(t, err)

	_, err = mailer.New("smtp.example.com", "587", "user", "", "noreply@example.com")
	assert.Error(t, err)

	m, err := mailer.New("smtp.example.com", "", "user", "pass", "noreply@example.com")
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestSendRejectsEmptyFields(t *testing.T) {
	m, err := mailer.New("smtp.example.com", "587", "user", "pass", "noreply@example.com")
	require.NoError(t, err)

	assert.Error(t, m.Send("", "Asunto", "cuerpo"))
	assert.Error(t, m.Send("admin@example.com", "", "cuerpo"))
}
