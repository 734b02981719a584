package get_booking_quote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	"github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
)

// Mock клиента PropertyService

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

func newQuoteUseCase(properties ...*propertyservice.Property) *UseCase {
	client := &mockPropertyClient{properties: make(map[int64]*propertyservice.Property)}
	for _, p := range properties {
		client.properties[p.ID] = p
	}
	return NewUseCase(client, &nopLogger{})
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

func TestExecute_ShortTermQuote(t *testing.T) {
	uc := newQuoteUseCase(shortTermProperty())

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID: 1,
		CheckIn:    datePtr(2026, time.September, 1),
		CheckOut:   datePtr(2026, time.September, 4),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TermShort, resp.RentalTerm)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, int64(300), resp.TotalPrice)
	assert.Equal(t, int64(0), resp.DepositAmount)
	// Краткосрочная аренда оплачивается полностью при бронировании
	assert.Equal(t, int64(300), resp.DueToday)
	assert.Nil(t, resp.PaymentOption)
	assert.True(t, resp.Complete)
}

func TestExecute_ShortTermIncompleteSelection(t *testing.T) {
	uc := newQuoteUseCase(shortTermProperty())

	// Даты не выбраны - это валидное состояние с нулевой стоимостью
	resp, err := uc.Execute(context.Background(), &Request{PropertyID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.TotalPrice)
	assert.Equal(t, int64(0), resp.DueToday)
	assert.False(t, resp.Complete)
}

func TestExecute_LongTermDepositOnly(t *testing.T) {
	uc := newQuoteUseCase(longTermProperty())
	option := domain.PaymentDepositOnly

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID:     2,
		DurationMonths: 6,
		DurationYears:  1,
		PaymentOption:  &option,
	})

	require.NoError(t, err)
	assert.Equal(t, 18, resp.TotalMonths)
	assert.Equal(t, int64(18000), resp.TotalPrice)
	assert.Equal(t, int64(1000), resp.DepositAmount)
	// deposit_only: к оплате только залог, независимо от длительности
	assert.Equal(t, int64(1000), resp.DueToday)
	assert.True(t, resp.Complete)
}

func TestExecute_LongTermFullPayment(t *testing.T) {
	uc := newQuoteUseCase(longTermProperty())
	option := domain.PaymentFull

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID:     2,
		DurationYears:  2,
		PaymentOption:  &option,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(24000), resp.TotalPrice)
	// full_payment: залог + первый месяц
	assert.Equal(t, int64(2000), resp.DueToday)
}

func TestExecute_LongTermDefaultsToDepositOnly(t *testing.T) {
	uc := newQuoteUseCase(longTermProperty())

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID:     2,
		DurationMonths: 3,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.PaymentOption)
	assert.Equal(t, domain.PaymentDepositOnly, *resp.PaymentOption)
	assert.Equal(t, int64(1000), resp.DueToday)
}

func TestExecute_PropertyNotFound(t *testing.T) {
	uc := newQuoteUseCase()

	_, err := uc.Execute(context.Background(), &Request{PropertyID: 99})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestExecute_PaymentOptionRejectedForShortTerm(t *testing.T) {
	uc := newQuoteUseCase(shortTermProperty())
	option := domain.PaymentDepositOnly

	_, err := uc.Execute(context.Background(), &Request{
		PropertyID:    1,
		CheckIn:       datePtr(2026, time.September, 1),
		CheckOut:      datePtr(2026, time.September, 4),
		PaymentOption: &option,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DatesRejectedForLongTerm(t *testing.T) {
	uc := newQuoteUseCase(longTermProperty())

	_, err := uc.Execute(context.Background(), &Request{
		PropertyID:     2,
		DurationMonths: 6,
		CheckIn:        datePtr(2026, time.September, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateRequest(t *testing.T) {
	badOption := domain.PaymentOption("installments")

	tests := []struct {
		name    string
		req     *Request
		wantErr bool
	}{
		{"valid minimal", &Request{PropertyID: 1}, false},
		{"zero property id", &Request{PropertyID: 0}, true},
		{"negative months", &Request{PropertyID: 1, DurationMonths: -1}, true},
		{"negative years", &Request{PropertyID: 1, DurationYears: -1}, true},
		{"unknown payment option", &Request{PropertyID: 1, PaymentOption: &badOption}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
