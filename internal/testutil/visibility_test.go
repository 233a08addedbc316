package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/litreview/internal/domain"
)

func TestVisibility(t *testing.T) {
	v := newVisibility("alice", []string{"bob"})
	user := func(id string) domain.UserSummary { return domain.UserSummary{ID: id} }

	tests := []struct {
		name    string
		ticket  *domain.Ticket
		review  *domain.Review
		visible bool
	}{
		{name: "own ticket", ticket: &domain.Ticket{Author: user("alice")}, visible: true},
		{name: "followed ticket", ticket: &domain.Ticket{Author: user("bob")}, visible: true},
		{name: "stranger ticket", ticket: &domain.Ticket{Author: user("carol")}, visible: false},
		{
			name:    "stranger review on own ticket",
			review:  &domain.Review{Author: user("carol"), Ticket: domain.Ticket{Author: user("alice")}},
			visible: true,
		},
		{
			name:    "followed review on stranger ticket",
			review:  &domain.Review{Author: user("bob"), Ticket: domain.Ticket{Author: user("carol")}},
			visible: true,
		},
		{
			name:    "stranger review on followed ticket",
			review:  &domain.Review{Author: user("carol"), Ticket: domain.Ticket{Author: user("bob")}},
			visible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ticket != nil {
				assert.Equal(t, tt.visible, v.TicketVisible(*tt.ticket))
				return
			}
			assert.Equal(t, tt.visible, v.ReviewVisible(*tt.review))
		})
	}
}
