package schedule_tour

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	storageConfig "github.com/m04kA/RPM-BookingService/internal/infra/storage/tourconfig"
	"github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
	"github.com/m04kA/RPM-BookingService/internal/integrations/userservice"
	"github.com/m04kA/RPM-BookingService/pkg/types"
)

// Mocks

type mockTourRepo struct {
	tours   []*domain.Tour
	created *domain.Tour
	nextID  int64
}

func (m *mockTourRepo) Create(_ context.Context, tour *domain.Tour) (*domain.Tour, error) {
	m.nextID++
	tour.ID = m.nextID
	tour.CreatedAt = time.Now()
	tour.UpdatedAt = tour.CreatedAt
	m.created = tour
	return tour, nil
}

func (m *mockTourRepo) GetActiveByPropertyAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Tour, error) {
	return m.tours, nil
}

type mockConfigRepo struct {
	config *domain.TourSlotsConfig
}

func (m *mockConfigRepo) GetByProperty(_ context.Context, _ int64) (*domain.TourSlotsConfig, error) {
	if m.config == nil {
		return nil, storageConfig.ErrConfigNotFound
	}
	return m.config, nil
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

// 2026-09-07 - понедельник
var (
	tourDate = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
)

func tourProperty() *propertyservice.Property {
	return &propertyservice.Property{
		ID:         1,
		Title:      "Студия у парка",
		RentalTerm: "short_term",
		Price:      100,
		Currency:   "RUB",
		ManagerIDs: []int64{20},
		TourAvailability: &propertyservice.TourAvailability{
			AvailableDays:       []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
			StartTime:           "10:00",
			EndTime:             "12:00",
			TourDurationMinutes: 30,
		},
	}
}

func testUser() *userservice.User {
	return &userservice.User{
		ID:    10,
		Name:  "Иван Иванов",
		Email: "ivan@example.com",
		Phone: "+79001234567",
	}
}

func newTestUseCase(tourRepo *mockTourRepo, configRepo *mockConfigRepo, property *propertyservice.Property) *UseCase {
	propClient := &mockPropertyClient{properties: make(map[int64]*propertyservice.Property)}
	if property != nil {
		propClient.properties[property.ID] = property
	}
	usrClient := &mockUserClient{users: map[int64]*userservice.User{10: testUser()}}

	uc := NewUseCase(tourRepo, configRepo, propClient, usrClient, &mockTxManager{}, &nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

// Tests

func TestExecute_Success(t *testing.T) {
	tourRepo := &mockTourRepo{}
	uc := newTestUseCase(tourRepo, &mockConfigRepo{}, tourProperty())

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		Date:       tourDate,
		StartTime:  "10:30",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, types.TimeString("10:30"), resp.StartTime)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Студия у парка", resp.PropertyTitle)
	assert.Equal(t, "Иван Иванов", resp.CustomerName)
}

func TestExecute_SlotFullConflict(t *testing.T) {
	// Дефолтная конфигурация: MaxConcurrentTours = 1, слот уже занят
	tourRepo := &mockTourRepo{
		tours: []*domain.Tour{{
			StartTime:       "10:30",
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		}},
	}
	uc := newTestUseCase(tourRepo, &mockConfigRepo{}, tourProperty())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		Date:       tourDate,
		StartTime:  "10:30",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, tourRepo.created)
}

func TestExecute_BoundaryTourDoesNotConflict(t *testing.T) {
	// Тур 10:00-10:30 граничит со слотом 10:30-11:00 - конфликта нет
	tourRepo := &mockTourRepo{
		tours: []*domain.Tour{{
			StartTime:       "10:00",
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		}},
	}
	uc := newTestUseCase(tourRepo, &mockConfigRepo{}, tourProperty())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		Date:       tourDate,
		StartTime:  "10:30",
	})

	assert.NoError(t, err)
}

func TestExecute_ConfigAllowsConcurrentTours(t *testing.T) {
	// MaxConcurrentTours = 2: один занятый слот не блокирует запись
	tourRepo := &mockTourRepo{
		tours: []*domain.Tour{{
			StartTime:       "10:30",
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		}},
	}
	configRepo := &mockConfigRepo{
		config: &domain.TourSlotsConfig{
			ID:                 1,
			PropertyID:         1,
			MaxConcurrentTours: 2,
			MinNoticeMinutes:   60,
		},
	}
	uc := newTestUseCase(tourRepo, configRepo, tourProperty())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		Date:       tourDate,
		StartTime:  "10:30",
	})

	assert.NoError(t, err)
}

func TestExecute_MisalignedSlotRejected(t *testing.T) {
	uc := newTestUseCase(&mockTourRepo{}, &mockConfigRepo{}, tourProperty())

	// 10:45 не лежит на сетке с шагом 30 минут от 10:00
	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		Date:       tourDate,
		StartTime:  "10:45",
	})

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_SlotOutsideWindowRejected(t *testing.T) {
	uc := newTestUseCase(&mockTourRepo{}, &mockConfigRepo{}, tourProperty())

	// Слот 11:30-12:00 помещается, а 12:00-12:30 уже нет
	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		Date:       tourDate,
		StartTime:  "12:00",
	})

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_UnavailableWeekdayRejected(t *testing.T) {
	uc := newTestUseCase(&mockTourRepo{}, &mockConfigRepo{}, tourProperty())

	// 2026-09-06 - воскресенье
	sunday := time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		Date:       sunday,
		StartTime:  "10:30",
	})

	assert.ErrorIs(t, err, ErrDateNotAvailable)
}

func TestExecute_BlockedDateRejected(t *testing.T) {
	property := tourProperty()
	property.TourAvailability.BlockedDates = []string{"2026-09-07"}
	uc := newTestUseCase(&mockTourRepo{}, &mockConfigRepo{}, property)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		Date:       tourDate,
		StartTime:  "10:30",
	})

	assert.ErrorIs(t, err, ErrDateNotAvailable)
}

func TestExecute_TooLateToScheduleToday(t *testing.T) {
	tourRepo := &mockTourRepo{}
	uc := newTestUseCase(tourRepo, &mockConfigRepo{}, tourProperty())
	// Сейчас 10:00 того же дня, minNotice по умолчанию 60 минут
	uc.timeProvider = &fakeTimeProvider{
		now: time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC),
	}

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		Date:       tourDate,
		StartTime:  "10:30",
	})

	assert.ErrorIs(t, err, ErrTooLateToSchedule)
}

func TestExecute_AdvanceBookingLimit(t *testing.T) {
	configRepo := &mockConfigRepo{
		config: &domain.TourSlotsConfig{
			ID:                 1,
			PropertyID:         1,
			MaxConcurrentTours: 1,
			AdvanceBookingDays: 3,
		},
	}
	uc := newTestUseCase(&mockTourRepo{}, configRepo, tourProperty())

	// Дата дальше, чем за 3 дня от testNow (2026-09-01)
	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		Date:       tourDate,
		StartTime:  "10:30",
	})

	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_ToursNotOffered(t *testing.T) {
	property := tourProperty()
	property.TourAvailability = nil
	uc := newTestUseCase(&mockTourRepo{}, &mockConfigRepo{}, property)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		Date:       tourDate,
		StartTime:  "10:30",
	})

	assert.ErrorIs(t, err, ErrToursNotOffered)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&mockTourRepo{}, &mockConfigRepo{}, tourProperty())

	// 2026-08-31 - понедельник в прошлом
	past := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     10,
		PropertyID: 1,
		Date:       past,
		StartTime:  "10:30",
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}
