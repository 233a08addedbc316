// Package testutil provides in-memory implementations of the repository
// interfaces for service and handler tests.
package testutil

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/litreview/internal/domain"
	"github.com/spec-kit/litreview/internal/repository"
)

type storedReview struct {
	ID        string
	TicketID  string
	Rating    int
	Headline  string
	Body      string
	Author    domain.UserSummary
	CreatedAt time.Time
}

type followEdge struct {
	follower string
	followed string
}

type state struct {
	users   map[string]domain.User
	tickets map[string]domain.Ticket
	reviews map[string]storedReview
	follows map[followEdge]struct{}
}

func (s state) clone() state {
	return state{
		users:   maps.Clone(s.users),
		tickets: maps.Clone(s.tickets),
		reviews: maps.Clone(s.reviews),
		follows: maps.Clone(s.follows),
	}
}

// Store keeps users, tickets, reviews and follows in memory with the same
// constraints the Postgres schema enforces. Creation timestamps advance by one
// millisecond per insert so ordering is deterministic.
type Store struct {
	mu    sync.Mutex
	data  state
	clock time.Time

	// FailReviewCreate, when set, is returned by the next review insert.
	FailReviewCreate error
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		data: state{
			users:   map[string]domain.User{},
			tickets: map[string]domain.Ticket{},
			reviews: map[string]storedReview{},
			follows: map[followEdge]struct{}{},
		},
		clock: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

// Users returns a UserRepository view of the store.
func (s *Store) Users() repository.UserRepository { return (*userRepo)(s) }

// Tickets returns a TicketRepository view of the store.
func (s *Store) Tickets() repository.TicketRepository { return (*ticketRepo)(s) }

// Reviews returns a ReviewRepository view of the store.
func (s *Store) Reviews() repository.ReviewRepository { return (*reviewRepo)(s) }

// Follows returns a FollowRepository view of the store.
func (s *Store) Follows() repository.FollowRepository { return (*followRepo)(s) }

// Feed returns a FeedRepository view of the store.
func (s *Store) Feed() repository.FeedRepository { return (*feedRepo)(s) }

// Transactor returns a Transactor that restores the store when fn fails.
func (s *Store) Transactor() repository.Transactor { return (*transactor)(s) }

// AddUser inserts a user directly and returns its summary.
func (s *Store) AddUser(username string) domain.UserSummary {
	user := &domain.User{Username: username, PasswordHash: "x"}
	if err := s.Users().Create(context.Background(), user); err != nil {
		panic(err)
	}
	return user.Summary()
}

// Counts reports how many tickets and reviews are stored.
func (s *Store) Counts() (tickets, reviews int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.tickets), len(s.data.reviews)
}

func (s *Store) reviewedBy(ticketID, viewerID string) bool {
	for _, r := range s.data.reviews {
		if r.TicketID == ticketID && r.Author.ID == viewerID {
			return true
		}
	}
	return false
}

func (s *Store) ticketFor(id, viewerID string) domain.Ticket {
	t := s.data.tickets[id]
	t.ReviewedByViewer = s.reviewedBy(id, viewerID)
	return t
}

func (s *Store) reviewFor(r storedReview, viewerID string) domain.Review {
	return domain.Review{
		ID:        r.ID,
		Ticket:    s.ticketFor(r.TicketID, viewerID),
		Rating:    r.Rating,
		Headline:  r.Headline,
		Body:      r.Body,
		Author:    r.Author,
		CreatedAt: r.CreatedAt,
	}
}

func (s *Store) following(userID string) []string {
	var ids []string
	for edge := range s.data.follows {
		if edge.follower == userID {
			ids = append(ids, edge.followed)
		}
	}
	return ids
}

type transactor Store

func (t *transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s := (*Store)(t)
	s.mu.Lock()
	snapshot := s.data.clone()
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

type userRepo Store

func (r *userRepo) Create(_ context.Context, user *domain.User) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.data.users {
		if u.Username == user.Username {
			return fmt.Errorf("%w: users_username_key", repository.ErrDuplicate)
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = s.tick()
	s.data.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.data.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.data.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type ticketRepo Store

func (r *ticketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	author, ok := s.data.users[ticket.Author.ID]
	if !ok {
		return fmt.Errorf("%w: tickets_author_id_fkey", repository.ErrReferenceMissing)
	}
	ticket.ID = uuid.NewString()
	ticket.CreatedAt = s.tick()
	ticket.Author = author.Summary()
	ticket.ReviewedByViewer = false
	s.data.tickets[ticket.ID] = *ticket
	return nil
}

func (r *ticketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.data.tickets[ticket.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Title = ticket.Title
	stored.Description = ticket.Description
	stored.ImageRef = ticket.ImageRef
	s.data.tickets[ticket.ID] = stored
	return nil
}

func (r *ticketRepo) Delete(_ context.Context, id string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.tickets[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.data.tickets, id)
	for rid, review := range s.data.reviews {
		if review.TicketID == id {
			delete(s.data.reviews, rid)
		}
	}
	return nil
}

func (r *ticketRepo) GetByID(_ context.Context, id, viewerID string) (*domain.Ticket, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.tickets[id]; !ok {
		return nil, pgx.ErrNoRows
	}
	t := s.ticketFor(id, viewerID)
	return &t, nil
}

type reviewRepo Store

func (r *reviewRepo) Create(_ context.Context, review *domain.Review) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.FailReviewCreate; err != nil {
		s.FailReviewCreate = nil
		return err
	}
	if _, ok := s.data.tickets[review.Ticket.ID]; !ok {
		return fmt.Errorf("%w: reviews_ticket_id_fkey", repository.ErrReferenceMissing)
	}
	if s.reviewedBy(review.Ticket.ID, review.Author.ID) {
		return fmt.Errorf("%w: unique_review_per_user_and_ticket", repository.ErrDuplicate)
	}
	review.ID = uuid.NewString()
	review.CreatedAt = s.tick()
	s.data.reviews[review.ID] = storedReview{
		ID:        review.ID,
		TicketID:  review.Ticket.ID,
		Rating:    review.Rating,
		Headline:  review.Headline,
		Body:      review.Body,
		Author:    review.Author,
		CreatedAt: review.CreatedAt,
	}
	return nil
}

func (r *reviewRepo) Update(_ context.Context, review *domain.Review) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.data.reviews[review.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Rating = review.Rating
	stored.Headline = review.Headline
	stored.Body = review.Body
	s.data.reviews[review.ID] = stored
	return nil
}

func (r *reviewRepo) Delete(_ context.Context, id string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.reviews[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.data.reviews, id)
	return nil
}

func (r *reviewRepo) GetByID(_ context.Context, id, viewerID string) (*domain.Review, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.data.reviews[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	review := s.reviewFor(stored, viewerID)
	return &review, nil
}

func (r *reviewRepo) ExistsForTicketAndAuthor(_ context.Context, ticketID, authorID string) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reviewedBy(ticketID, authorID), nil
}

func (r *reviewRepo) ListByTicket(_ context.Context, ticketID, viewerID string) ([]domain.Review, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectReviews(viewerID, func(rv domain.Review) bool { return rv.Ticket.ID == ticketID }), nil
}

func (s *Store) selectTickets(viewerID string, keep func(domain.Ticket) bool) []domain.Ticket {
	result := []domain.Ticket{}
	for id := range s.data.tickets {
		t := s.ticketFor(id, viewerID)
		if keep(t) {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result
}

func (s *Store) selectReviews(viewerID string, keep func(domain.Review) bool) []domain.Review {
	result := []domain.Review{}
	for _, stored := range s.data.reviews {
		rv := s.reviewFor(stored, viewerID)
		if keep(rv) {
			result = append(result, rv)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result
}

type followRepo Store

func (r *followRepo) Create(_ context.Context, followerID, followedID string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if followerID == followedID {
		return repository.ErrSelfReference
	}
	if _, ok := s.data.users[followedID]; !ok {
		return fmt.Errorf("%w: user_follows_followed_id_fkey", repository.ErrReferenceMissing)
	}
	s.data.follows[followEdge{follower: followerID, followed: followedID}] = struct{}{}
	return nil
}

func (r *followRepo) Delete(_ context.Context, followerID, followedID string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data.follows, followEdge{follower: followerID, followed: followedID})
	return nil
}

func (r *followRepo) ListFollowing(_ context.Context, userID string) ([]domain.UserSummary, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaries(func(e followEdge) (string, bool) { return e.followed, e.follower == userID }), nil
}

func (r *followRepo) ListFollowers(_ context.Context, userID string) ([]domain.UserSummary, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaries(func(e followEdge) (string, bool) { return e.follower, e.followed == userID }), nil
}

func (s *Store) summaries(pick func(followEdge) (string, bool)) []domain.UserSummary {
	result := []domain.UserSummary{}
	for edge := range s.data.follows {
		if id, ok := pick(edge); ok {
			u := s.data.users[id]
			result = append(result, u.Summary())
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Username < result[j].Username })
	return result
}

type feedRepo Store

func (r *feedRepo) VisibleTickets(_ context.Context, viewerID string) ([]domain.Ticket, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	vis := newVisibility(viewerID, s.following(viewerID))
	return s.selectTickets(viewerID, vis.TicketVisible), nil
}

func (r *feedRepo) VisibleReviews(_ context.Context, viewerID string) ([]domain.Review, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	vis := newVisibility(viewerID, s.following(viewerID))
	return s.selectReviews(viewerID, vis.ReviewVisible), nil
}

func (r *feedRepo) AuthoredTickets(_ context.Context, authorID string) ([]domain.Ticket, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectTickets(authorID, func(t domain.Ticket) bool { return t.Author.ID == authorID }), nil
}

func (r *feedRepo) AuthoredReviews(_ context.Context, authorID string) ([]domain.Review, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectReviews(authorID, func(rv domain.Review) bool { return rv.Author.ID == authorID }), nil
}
