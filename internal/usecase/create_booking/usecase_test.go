package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	"github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
	"github.com/m04kA/RPM-BookingService/internal/integrations/userservice"
)

// Mocks

type mockBookingRepo struct {
	overlapping []*domain.Booking
	leases      []*domain.Booking
	created     *domain.Booking
	nextID      int64
}

func (m *mockBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	m.nextID++
	booking.ID = m.nextID
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	m.created = booking
	return booking, nil
}

func (m *mockBookingRepo) GetActiveOverlapping(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Booking, error) {
	return m.overlapping, nil
}

func (m *mockBookingRepo) GetActiveLeases(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return m.leases, nil
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

type mockUserClient struct {
	users map[int64]*userservice.User
}

func (m *mockUserClient) GetUser(_ context.Context, userID int64) (*userservice.User, error) {
	user, ok := m.users[userID]
	if !ok {
		return nil, userservice.ErrUserNotFound
	}
	return user, nil
}

// mockTxManager выполняет fn напрямую, без реальной транзакции
type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

// Fixtures

var testNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func testUser() *userservice.User {
	return &userservice.User{
		ID:    10,
		Name:  "Иван Иванов",
		Email: "ivan@example.com",
		Phone: "+79001234567",
	}
}

func shortTermProperty() *propertyservice.Property {
	return &propertyservice.Property{
		ID:         1,
		Title:      "Студия у парка",
		RentalTerm: "short_term",
		Price:      100,
		Currency:   "RUB",
	}
}

func longTermProperty() *propertyservice.Property {
	return &propertyservice.Property{
		ID:         2,
		Title:      "Квартира на год",
		RentalTerm: "long_term",
		Price:      1000,
		Currency:   "RUB",
	}
}

func newTestUseCase(repo *mockBookingRepo, properties []*propertyservice.Property, users []*userservice.User) *UseCase {
	propClient := &mockPropertyClient{properties: make(map[int64]*propertyservice.Property)}
	for _, p := range properties {
		propClient.properties[p.ID] = p
	}
	usrClient := &mockUserClient{users: make(map[int64]*userservice.User)}
	for _, u := range users {
		usrClient.users[u.ID] = u
	}

	uc := NewUseCase(repo, propClient, usrClient, &mockTxManager{}, &nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

// Tests

func TestExecute_ShortTermSuccess(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo,
		[]*propertyservice.Property{shortTermProperty()},
		[]*userservice.User{testUser()})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		CheckIn:    datePtr(2026, time.September, 10),
		CheckOut:   datePtr(2026, time.September, 13),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, domain.TermShort, resp.RentalTerm)
	assert.Equal(t, int64(300), resp.TotalPrice)
	assert.Equal(t, int64(300), resp.DueToday)
	assert.Equal(t, int64(0), resp.DepositAmount)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	// Денормализация данных клиента и объекта
	assert.Equal(t, "Студия у парка", resp.PropertyTitle)
	assert.Equal(t, "Иван Иванов", resp.CustomerName)
	assert.Equal(t, "ivan@example.com", resp.CustomerEmail)
	// Платёжный блок прикрепляется дословно
	assert.Equal(t, domain.PaymentInstructions, resp.PaymentInstructions)
}

func TestExecute_LongTermSuccess(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo,
		[]*propertyservice.Property{longTermProperty()},
		[]*userservice.User{testUser()})
	option := domain.PaymentFull

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:         10,
		PropertyID:     2,
		DurationMonths: 6,
		DurationYears:  1,
		PaymentOption:  &option,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(18000), resp.TotalPrice)
	assert.Equal(t, int64(1000), resp.DepositAmount)
	// full_payment: залог + первый месяц
	assert.Equal(t, int64(2000), resp.DueToday)
}

func TestExecute_ShortTermOverlapConflict(t *testing.T) {
	repo := &mockBookingRepo{
		overlapping: []*domain.Booking{{ID: 777, Status: domain.StatusConfirmed}},
	}
	uc := newTestUseCase(repo,
		[]*propertyservice.Property{shortTermProperty()},
		[]*userservice.User{testUser()})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		CheckIn:    datePtr(2026, time.September, 10),
		CheckOut:   datePtr(2026, time.September, 13),
	})

	assert.ErrorIs(t, err, ErrDatesNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_ShortTermBlockedDate(t *testing.T) {
	property := shortTermProperty()
	property.BlockedDates = []string{"2026-09-11"}

	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo,
		[]*propertyservice.Property{property},
		[]*userservice.User{testUser()})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		CheckIn:    datePtr(2026, time.September, 10),
		CheckOut:   datePtr(2026, time.September, 13),
	})

	assert.ErrorIs(t, err, ErrDatesBlocked)
	assert.Nil(t, repo.created)
}

func TestExecute_ShortTermBlockedCheckOutDayAllowed(t *testing.T) {
	// День выезда не является ночью проживания: блокировка на дату
	// check-out не мешает бронированию
	property := shortTermProperty()
	property.BlockedDates = []string{"2026-09-13"}

	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo,
		[]*propertyservice.Property{property},
		[]*userservice.User{testUser()})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		CheckIn:    datePtr(2026, time.September, 10),
		CheckOut:   datePtr(2026, time.September, 13),
	})

	assert.NoError(t, err)
}

func TestExecute_LongTermLeaseConflict(t *testing.T) {
	repo := &mockBookingRepo{
		leases: []*domain.Booking{{ID: 555, Status: domain.StatusPending}},
	}
	uc := newTestUseCase(repo,
		[]*propertyservice.Property{longTermProperty()},
		[]*userservice.User{testUser()})
	option := domain.PaymentDepositOnly

	_, err := uc.Execute(context.Background(), &Request{
		UserID:         10,
		PropertyID:     2,
		DurationMonths: 6,
		PaymentOption:  &option,
	})

	assert.ErrorIs(t, err, ErrPropertyNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_CheckInInPast(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo,
		[]*propertyservice.Property{shortTermProperty()},
		[]*userservice.User{testUser()})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		CheckIn:    datePtr(2026, time.August, 30),
		CheckOut:   datePtr(2026, time.September, 5),
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_CheckInTodayAllowed(t *testing.T) {
	// Заезд сегодня допустим: сравнение по началу календарного дня
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo,
		[]*propertyservice.Property{shortTermProperty()},
		[]*userservice.User{testUser()})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		CheckIn:    datePtr(2026, time.September, 1),
		CheckOut:   datePtr(2026, time.September, 3),
	})

	assert.NoError(t, err)
}

func TestExecute_UserNotFound(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, []*propertyservice.Property{shortTermProperty()}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     99,
		PropertyID: 1,
		CheckIn:    datePtr(2026, time.September, 10),
		CheckOut:   datePtr(2026, time.September, 13),
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_PropertyNotFound(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, nil, []*userservice.User{testUser()})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 99,
		CheckIn:    datePtr(2026, time.September, 10),
		CheckOut:   datePtr(2026, time.September, 13),
	})

	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestExecute_IncompleteCustomerProfile(t *testing.T) {
	user := testUser()
	user.Phone = ""

	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo,
		[]*propertyservice.Property{shortTermProperty()},
		[]*userservice.User{user})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		CheckIn:    datePtr(2026, time.September, 10),
		CheckOut:   datePtr(2026, time.September, 13),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "customerPhone")
}
