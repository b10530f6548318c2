package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelbooking/internal/domain"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockTemplates struct {
	mock.Mock
}

func (m *mockTemplates) GetTemplate(ctx context.Context, name domain.EmailTemplateType) (*domain.EmailTemplate, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmailTemplate), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, toEmail, toName, subject, htmlContent string) error {
	args := m.Called(ctx, toEmail, toName, subject, htmlContent)
	return args.Error(0)
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:               42,
		HotelID:          7,
		BookingReference: "BK12AB34CD",
		ConfirmationCode: "X9Y8Z7W6",
		GuestName:        "Jane Doe",
		CheckIn:          time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:         time.Date(2027, 6, 5, 0, 0, 0, 0, time.UTC),
		TotalAmount:      345,
	}
}

func TestDispatcher_BookingCreatedRendersTemplateAndSends(t *testing.T) {
	store := new(mockStore)
	users := new(mockUsers)
	templates := new(mockTemplates)
	mailer := new(mockMailer)

	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{
		ID:        5,
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	}, nil)
	templates.On("GetTemplate", mock.Anything, domain.TemplateBookingConfirmation).Return(&domain.EmailTemplate{
		Name:    domain.TemplateBookingConfirmation,
		Subject: "Booking {{booking_reference}} received",
		Content: "<p>Hi {{guest_name}}, code {{confirmation_code}}.</p>",
	}, nil)
	mailer.On("Send", mock.Anything, "jane@example.com", mock.Anything,
		"Booking BK12AB34CD received",
		"<p>Hi Jane Doe, code X9Y8Z7W6.</p>").Return(nil)

	var saved *domain.Notification
	store.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.Notification)
	}).Return(nil)

	d := NewDispatcher(store, users, templates, mailer, zerolog.Nop())
	d.NotifyBookingCreated(context.Background(), 5, testBooking())
	d.Stop()

	mailer.AssertExpectations(t)
	store.AssertExpectations(t)
	if assert.NotNil(t, saved) {
		assert.Equal(t, int64(5), saved.UserID)
		assert.Equal(t, domain.NotifBookingCreated, saved.Type)
		assert.NotNil(t, saved.SentAt)
		assert.Empty(t, saved.SendError)
		assert.Contains(t, string(saved.Payload), "BK12AB34CD")
	}
}

func TestDispatcher_MailFailureRecordedNotSurfaced(t *testing.T) {
	store := new(mockStore)
	users := new(mockUsers)
	templates := new(mockTemplates)
	mailer := new(mockMailer)

	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{
		ID: 5, Email: "jane@example.com", FirstName: "Jane",
	}, nil)
	templates.On("GetTemplate", mock.Anything, mock.Anything).Return(nil, errors.New("no template"))
	mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("mail gateway down"))

	var saved *domain.Notification
	store.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.Notification)
	}).Return(nil)

	d := NewDispatcher(store, users, templates, mailer, zerolog.Nop())
	d.NotifyBookingCancelled(context.Background(), 5, testBooking(), "change of plans")
	d.Stop()

	if assert.NotNil(t, saved) {
		assert.Nil(t, saved.SentAt)
		assert.Contains(t, saved.SendError, "mail gateway down")
		// template lookup failed, so the built-in copy is used
		assert.Contains(t, saved.Message, "change of plans")
	}
}

func TestDispatcher_NoMailerStillPersists(t *testing.T) {
	store := new(mockStore)
	users := new(mockUsers)
	templates := new(mockTemplates)

	templates.On("GetTemplate", mock.Anything, mock.Anything).Return(nil, errors.New("no template"))

	var saved *domain.Notification
	store.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.Notification)
	}).Return(nil)

	d := NewDispatcher(store, users, templates, nil, zerolog.Nop())
	d.NotifyReviewResponse(context.Background(), 9, 31)
	d.Stop()

	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	if assert.NotNil(t, saved) {
		assert.Equal(t, domain.NotifReviewResponse, saved.Type)
		assert.NotNil(t, saved.SentAt)
	}
}

func TestDispatcher_StatusChangeMapsNotificationType(t *testing.T) {
	store := new(mockStore)
	users := new(mockUsers)
	templates := new(mockTemplates)

	var types []domain.NotificationType
	store.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		types = append(types, args.Get(1).(*domain.Notification).Type)
	}).Return(nil)

	d := NewDispatcher(store, users, templates, nil, zerolog.Nop())
	b := testBooking()
	d.NotifyBookingStatusChanged(context.Background(), 5, b, domain.BookingConfirmed)
	d.NotifyBookingStatusChanged(context.Background(), 5, b, domain.BookingCancelled)
	d.NotifyBookingStatusChanged(context.Background(), 5, b, domain.BookingCheckedIn)
	d.Stop()

	assert.Equal(t, []domain.NotificationType{
		domain.NotifBookingConfirmed,
		domain.NotifBookingCancelled,
		domain.NotifBookingCreated,
	}, types)
}

func TestRenderTemplate(t *testing.T) {
	out := RenderTemplate("Hello {{name}}, ref {{ref}}, keep {{unknown}}", map[string]string{
		"name": "Jane",
		"ref":  "BK123",
	})
	assert.Equal(t, "Hello Jane, ref BK123, keep {{unknown}}", out)
}
