package email

import (
	"testing"

	"mergingtonactivities/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_Render(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.ParticipationEmailData{
		Email:        "a@b.edu",
		ActivityName: "Chess Club",
		Schedule:     "Fridays, 3:30 PM - 5:00 PM",
	}

	for _, name := range []string{TemplateSignupConfirmation, TemplateUnregisterConfirmation} {
		t.Run(name, func(t *testing.T) {
			subject, html, text, err := r.Render(name, data)
			require.NoError(t, err)
			assert.Contains(t, subject, "Chess Club")
			assert.NotContains(t, subject, "\n")
			assert.Contains(t, html, "a@b.edu")
			assert.Contains(t, text, "Chess Club")
		})
	}
}

func TestTemplateRenderer_EscapesHTML(t *testing.T) {
	r := NewTemplateRenderer()
	_, html, text, err := r.Render(TemplateSignupConfirmation, &domain.ParticipationEmailData{
		Email:        "<script>@b.edu",
		ActivityName: "Chess Club",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, text, "<script>@b.edu")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("missing", nil)
	require.Error(t, err)
}
