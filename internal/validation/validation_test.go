package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/litreview/internal/domain"
	"github.com/spec-kit/litreview/pkg/util/errorutil"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func validationDetails(t *testing.T, err error) map[string]any {
	t.Helper()
	var domainErr *errorutil.DomainError
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, errorutil.CodeValidationFailed, domainErr.Code)
	return domainErr.Details
}

func TestTicket(t *testing.T) {
	tests := []struct {
		name      string
		input     domain.TicketInput
		wantField string
	}{
		{name: "valid", input: domain.TicketInput{Title: "  Need a review  ", Description: "..."}},
		{name: "title at limit", input: domain.TicketInput{Title: strings.Repeat("é", 128)}},
		{name: "empty title", input: domain.TicketInput{Title: "   "}, wantField: "title"},
		{name: "title too long", input: domain.TicketInput{Title: strings.Repeat("a", 129)}, wantField: "title"},
		{
			name:      "description too long",
			input:     domain.TicketInput{Title: "ok", Description: strings.Repeat("a", 2049)},
			wantField: "description",
		},
		{
			name:      "image ref too long",
			input:     domain.TicketInput{Title: "ok", ImageRef: strPtr(strings.Repeat("a", 256))},
			wantField: "image_ref",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Ticket(tt.input)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, strings.TrimSpace(tt.input.Title), out.Title)
				return
			}
			assert.Contains(t, validationDetails(t, err), tt.wantField)
		})
	}
}

func TestTicket_BlankImageRefBecomesNil(t *testing.T) {
	out, err := Ticket(domain.TicketInput{Title: "ok", ImageRef: strPtr("   ")})
	require.NoError(t, err)
	assert.Nil(t, out.ImageRef)
}

func TestReview(t *testing.T) {
	tests := []struct {
		name      string
		input     domain.ReviewInput
		wantField string
	}{
		{name: "zero rating is valid", input: domain.ReviewInput{Rating: intPtr(0), Headline: "Meh"}},
		{name: "max rating", input: domain.ReviewInput{Rating: intPtr(5), Headline: "Great", Body: "Loved it"}},
		{name: "missing rating", input: domain.ReviewInput{Headline: "Good"}, wantField: "rating"},
		{name: "negative rating", input: domain.ReviewInput{Rating: intPtr(-1), Headline: "Bad"}, wantField: "rating"},
		{name: "rating above range", input: domain.ReviewInput{Rating: intPtr(6), Headline: "Wow"}, wantField: "rating"},
		{name: "missing headline", input: domain.ReviewInput{Rating: intPtr(3)}, wantField: "headline"},
		{
			name:      "body too long",
			input:     domain.ReviewInput{Rating: intPtr(3), Headline: "ok", Body: strings.Repeat("b", 8193)},
			wantField: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Review(tt.input)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			assert.Contains(t, validationDetails(t, err), tt.wantField)
		})
	}
}

func TestCredentials(t *testing.T) {
	_, err := Credentials(domain.Credentials{Username: "alice.b", Password: "correct horse"})
	assert.NoError(t, err)

	_, err = Credentials(domain.Credentials{Username: "alice b", Password: "correct horse"})
	assert.Contains(t, validationDetails(t, err), "username")

	_, err = Credentials(domain.Credentials{Username: "alice", Password: "short"})
	assert.Contains(t, validationDetails(t, err), "password")
}

func TestFollow(t *testing.T) {
	out, err := Follow(domain.FollowInput{Username: "  bob "})
	require.NoError(t, err)
	assert.Equal(t, "bob", out.Username)

	_, err = Follow(domain.FollowInput{})
	assert.Contains(t, validationDetails(t, err), "username")
}

func TestMerge(t *testing.T) {
	_, ticketErr := Ticket(domain.TicketInput{})
	_, reviewErr := Review(domain.ReviewInput{})

	details := validationDetails(t, Merge(ticketErr, reviewErr))
	assert.Contains(t, details, "title")
	assert.Contains(t, details, "rating")
	assert.Contains(t, details, "headline")

	assert.NoError(t, Merge(nil, nil))

	other := errors.New("boom")
	assert.Equal(t, other, Merge(ticketErr, other))
}
