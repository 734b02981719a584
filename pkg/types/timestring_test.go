package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"24:00", "9:30:00", "25:00", "12:60", "noon", ""}
	for _, s := range invalid {
		assert.Error(t, TimeString(s).Validate(), s)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("09:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	// "24:00" допустимо как правая граница интервала
	m, err = TimeString("24:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 1440, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	result, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), result)

	// Граница суток достижима
	result, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), result)

	// Выход за пределы суток - ошибка
	_, err = TimeString("23:30").AddMinutes(31)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:01").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("18:00").IsAfter("17:59"))
	assert.False(t, TimeString("18:00").IsAfter("18:00"))

	// Некорректные значения несравнимы
	assert.False(t, TimeString("bad").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("bad"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, time.September, 1, 11, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("08:00")
	require.NoError(t, err)
	assert.Equal(t, "08:00", ts.String())

	_, err = NewTimeStringFromString("8am")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
