package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestWindowFor_MonthAndYear(t *testing.T) {
	w := WindowFor(intPtr(2), intPtr(2024))

	require.NotNil(t, w.From)
	require.NotNil(t, w.To)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), *w.From)
	// 2024 is a leap year, so the window ends on Feb 29.
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC), *w.To)

	january := time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)
	march := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, january.Before(*w.From))
	assert.True(t, march.After(*w.To))
}

func TestWindowFor_YearOnly(t *testing.T) {
	w := WindowFor(nil, intPtr(2023))

	require.NotNil(t, w.From)
	require.NotNil(t, w.To)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), *w.From)
	assert.Equal(t, 2023, w.To.Year())
	assert.Equal(t, time.December, w.To.Month())
}

func TestWindowFor_NoFilter(t *testing.T) {
	assert.True(t, WindowFor(nil, nil).IsUnbounded())
	// A month without a year cannot form a window.
	assert.True(t, WindowFor(intPtr(5), nil).IsUnbounded())
}

func TestWindowFor_OutOfRangeValuesDropped(t *testing.T) {
	// month=13 must not roll over into January of the next year.
	w := WindowFor(intPtr(13), intPtr(2024))
	require.NotNil(t, w.From)
	require.NotNil(t, w.To)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *w.From)
	assert.Equal(t, 2024, w.To.Year())

	// month=0 must not roll back into December of the previous year.
	w = WindowFor(intPtr(0), intPtr(2024))
	require.NotNil(t, w.From)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *w.From)

	// A year that is not four digits cannot form a window.
	assert.True(t, WindowFor(intPtr(2), intPtr(24)).IsUnbounded())
	assert.True(t, WindowFor(nil, intPtr(-1)).IsUnbounded())
}

func TestAvailableSlots(t *testing.T) {
	assert.Equal(t, int64(7), AvailableSlots(3, 5))
	assert.Equal(t, int64(0), AvailableSlots(1, 9), "slots never go negative")
	assert.Equal(t, int64(0), AvailableSlots(0, 0))
}

func TestUserRolePermissions(t *testing.T) {
	assert.True(t, RoleAdmin.CanEdit())
	assert.True(t, RoleAdmin.CanDelete())
	assert.True(t, RoleModerator.CanEdit())
	assert.False(t, RoleModerator.CanDelete())
	assert.False(t, RoleUser.CanEdit())
	assert.False(t, RoleUser.CanDelete())
}
