package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/RPM-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
	"github.com/m04kA/RPM-BookingService/internal/service/bookings/models"
)

// Mocks

type mockBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelledID     int64
	cancelledStatus domain.BookingStatus
	cancelledReason string

	updatedID     int64
	updatedStatus domain.BookingStatus
}

func newMockBookingRepo(bookings ...*domain.Booking) *mockBookingRepo {
	m := &mockBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		m.bookings[b.ID] = b
	}
	return m
}

func (m *mockBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (m *mockBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range m.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (m *mockBookingRepo) GetByPropertyWithFilter(_ context.Context, filter domain.PropertyBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range m.bookings {
		if b.PropertyID != filter.PropertyID {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := m.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	m.updatedID = id
	m.updatedStatus = status
	m.bookings[id].Status = status
	return nil
}

func (m *mockBookingRepo) Cancel(_ context.Context, id int64, status domain.BookingStatus, reason string) error {
	if _, ok := m.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	m.cancelledID = id
	m.cancelledStatus = status
	m.cancelledReason = reason
	m.bookings[id].Status = status
	return nil
}

type mockPropertyClient struct {
	properties map[int64]*propertyservice.Property
}

func (m *mockPropertyClient) GetProperty(_ context.Context, propertyID int64) (*propertyservice.Property, error) {
	property, ok := m.properties[propertyID]
	if !ok {
		return nil, propertyservice.ErrPropertyNotFound
	}
	return property, nil
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

// Fixtures

const (
	ownerID   = int64(10)
	managerID = int64(20)
	otherID   = int64(30)
)

func testProperty() *propertyservice.Property {
	return &propertyservice.Property{
		ID:         1,
		Title:      "Студия у парка",
		RentalTerm: "short_term",
		ManagerIDs: []int64{managerID},
	}
}

func pendingBooking() *domain.Booking {
	checkIn := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.September, 13, 0, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:         1,
		Reference:  "ref-1",
		UserID:     ownerID,
		PropertyID: 1,
		RentalTerm: domain.TermShort,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		TotalPrice: 300,
		DueToday:   300,
		Currency:   "RUB",
		Status:     domain.StatusPending,
	}
}

func newTestService(repo *mockBookingRepo) *Service {
	client := &mockPropertyClient{
		properties: map[int64]*propertyservice.Property{1: testProperty()},
	}
	return NewService(repo, client, &nopLogger{})
}

// Tests

func TestGetByID_OwnerAccess(t *testing.T) {
	svc := newTestService(newMockBookingRepo(pendingBooking()))

	resp, err := svc.GetByID(context.Background(), 1, ownerID)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "ref-1", resp.Reference)
	// Даты сериализуются как YYYY-MM-DD
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, "2026-09-10", *resp.CheckIn)
}

func TestGetByID_ManagerAccess(t *testing.T) {
	svc := newTestService(newMockBookingRepo(pendingBooking()))

	_, err := svc.GetByID(context.Background(), 1, managerID)
	assert.NoError(t, err)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	svc := newTestService(newMockBookingRepo(pendingBooking()))

	_, err := svc.GetByID(context.Background(), 1, otherID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(newMockBookingRepo())

	_, err := svc.GetByID(context.Background(), 99, ownerID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ByOwner(t *testing.T) {
	repo := newMockBookingRepo(pendingBooking())
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             ownerID,
		CancellationReason: "планы изменились",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByUser, repo.cancelledStatus)
	assert.Equal(t, "планы изменились", repo.cancelledReason)
}

func TestCancel_ByManager(t *testing.T) {
	repo := newMockBookingRepo(pendingBooking())
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID: managerID,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByProperty, repo.cancelledStatus)
}

func TestCancel_ByStrangerDenied(t *testing.T) {
	repo := newMockBookingRepo(pendingBooking())
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID: otherID,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusCancelledByUser
	svc := newTestService(newMockBookingRepo(booking))

	// Отмена - терминальное состояние
	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID: ownerID,
	})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_ConfirmedCanStillBeCancelled(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusConfirmed
	repo := newMockBookingRepo(booking)
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID: ownerID,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByUser, repo.cancelledStatus)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	svc := newTestService(newMockBookingRepo(pendingBooking()))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             ownerID,
		CancellationReason: strings.Repeat("a", domain.MaxCancellationReasonLength+1),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConfirm_ByManager(t *testing.T) {
	repo := newMockBookingRepo(pendingBooking())
	svc := newTestService(repo)

	err := svc.Confirm(context.Background(), 1, &models.ConfirmBookingRequest{UserID: managerID})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestConfirm_OwnerDenied(t *testing.T) {
	// Подтверждение доступно только менеджерам объекта
	svc := newTestService(newMockBookingRepo(pendingBooking()))

	err := svc.Confirm(context.Background(), 1, &models.ConfirmBookingRequest{UserID: ownerID})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestConfirm_AlreadyConfirmed(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusConfirmed
	svc := newTestService(newMockBookingRepo(booking))

	err := svc.Confirm(context.Background(), 1, &models.ConfirmBookingRequest{UserID: managerID})
	assert.ErrorIs(t, err, ErrCannotConfirm)
}

func TestConfirm_CancelledBooking(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusCancelledByProperty
	svc := newTestService(newMockBookingRepo(booking))

	err := svc.Confirm(context.Background(), 1, &models.ConfirmBookingRequest{UserID: managerID})
	assert.ErrorIs(t, err, ErrCannotConfirm)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := newTestService(newMockBookingRepo())
	badStatus := "archived"

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: ownerID,
		Status: &badStatus,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_FiltersByStatus(t *testing.T) {
	cancelled := pendingBooking()
	cancelled.ID = 2
	cancelled.Status = domain.StatusCancelledByUser

	svc := newTestService(newMockBookingRepo(pendingBooking(), cancelled))
	status := "pending"

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: ownerID,
		Status: &status,
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "pending", resp.Bookings[0].Status)
}

func TestGetPropertyBookings_ManagerOnly(t *testing.T) {
	svc := newTestService(newMockBookingRepo(pendingBooking()))

	resp, err := svc.GetPropertyBookings(context.Background(), &models.GetPropertyBookingsRequest{
		UserID:     managerID,
		PropertyID: 1,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.GetPropertyBookings(context.Background(), &models.GetPropertyBookingsRequest{
		UserID:     ownerID,
		PropertyID: 1,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetPropertyBookings_IncludeInactive(t *testing.T) {
	cancelled := pendingBooking()
	cancelled.ID = 2
	cancelled.Status = domain.StatusCancelledByUser

	svc := newTestService(newMockBookingRepo(pendingBooking(), cancelled))

	// По умолчанию отменённые бронирования не возвращаются
	resp, err := svc.GetPropertyBookings(context.Background(), &models.GetPropertyBookingsRequest{
		UserID:     managerID,
		PropertyID: 1,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	resp, err = svc.GetPropertyBookings(context.Background(), &models.GetPropertyBookingsRequest{
		UserID:          managerID,
		PropertyID:      1,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}
