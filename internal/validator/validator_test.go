package validator

import (
	"strings"
	"testing"

	"repogenesis_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJobRequest() dto.JobRequest {
	return dto.JobRequest{
		Title:       "Backend Engineer",
		JobType:     "remote",
		Location:    "Almaty",
		Skills:      []string{"go", "postgres"},
		Description: "Build and run backend services",
		CTC:         "12-18 LPA",
		Openings:    2,
	}
}

func TestValidateJobRequestOK(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(validJobRequest()))
}

func TestValidateJobRequestBadJobType(t *testing.T) {
	v := New()
	req := validJobRequest()
	req.JobType = "freelance"

	err := v.Validate(req)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "jobType")
}

func TestValidateJobRequestCollectsAllViolations(t *testing.T) {
	v := New()
	req := dto.JobRequest{
		Title:       "Go",
		JobType:     "onsite",
		Location:    "",
		Skills:      nil,
		Description: strings.Repeat("x", 2501),
		CTC:         "",
		Openings:    0,
	}

	err := v.Validate(req)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	for _, field := range []string{"title", "jobType", "location", "skills", "description", "ctc", "openings"} {
		assert.Contains(t, vErr.Errors, field)
	}
}

func TestValidateInternshipDuration(t *testing.T) {
	v := New()
	req := dto.InternshipRequest{
		Title:       "Summer Intern",
		JobType:     "hybrid",
		Location:    "Astana",
		Skills:      []string{"go"},
		Description: "Internship program",
		Stipend:     "50000 KZT",
		Duration:    "5-months",
		Openings:    1,
	}

	err := v.Validate(req)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "duration")

	req.Duration = "3-months"
	assert.NoError(t, v.Validate(req))
}

func TestValidateSignupRequestPhone(t *testing.T) {
	v := New()
	req := dto.SignupRequest{
		FirstName: "Aigerim",
		LastName:  "Seitova",
		Email:     "aigerim@example.com",
		Password:  "secret123",
		Phone:     "not a phone!!",
	}

	err := v.Validate(req)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "phone")

	req.Phone = "+7 701 123-45-67"
	assert.NoError(t, v.Validate(req))
}

func TestValidateSigninRequest(t *testing.T) {
	v := New()

	err := v.Validate(dto.SigninRequest{Email: "bad-email", Password: ""})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
}
