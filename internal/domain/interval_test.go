package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 15, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:   "partial overlap",
			aStart: at(10, 0), aEnd: at(12, 0),
			bStart: at(11, 0), bEnd: at(13, 0),
			expected: true,
		},
		{
			name:   "b inside a",
			aStart: at(10, 0), aEnd: at(14, 0),
			bStart: at(11, 0), bEnd: at(12, 0),
			expected: true,
		},
		{
			name:   "a inside b",
			aStart: at(11, 0), aEnd: at(12, 0),
			bStart: at(10, 0), bEnd: at(14, 0),
			expected: true,
		},
		{
			name:   "identical ranges",
			aStart: at(10, 0), aEnd: at(12, 0),
			bStart: at(10, 0), bEnd: at(12, 0),
			expected: true,
		},
		{
			name:   "disjoint ranges",
			aStart: at(10, 0), aEnd: at(12, 0),
			bStart: at(13, 0), bEnd: at(14, 0),
			expected: false,
		},
		{
			// Полуоткрытые интервалы: общая граница не считается пересечением
			name:   "touching boundary a before b",
			aStart: at(10, 0), aEnd: at(12, 0),
			bStart: at(12, 0), bEnd: at(14, 0),
			expected: false,
		},
		{
			name:   "touching boundary b before a",
			aStart: at(12, 0), aEnd: at(14, 0),
			bStart: at(10, 0), bEnd: at(12, 0),
			expected: false,
		},
		{
			name:   "one minute overlap",
			aStart: at(10, 0), aEnd: at(12, 1),
			bStart: at(12, 0), bEnd: at(14, 0),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.expected, got)

			// Пересечение симметрично
			sym := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd)
			assert.Equal(t, got, sym)
		})
	}
}

func TestIsWholeDay(t *testing.T) {
	midnight := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsWholeDay(midnight, midnight.Add(24*time.Hour)))

	// Не с полуночи
	assert.False(t, IsWholeDay(at(0, 30), at(0, 30).Add(24*time.Hour)))

	// С полуночи, но не ровно сутки
	assert.False(t, IsWholeDay(midnight, midnight.Add(23*time.Hour)))
	assert.False(t, IsWholeDay(midnight, midnight.Add(25*time.Hour)))

	// Обычный дневной диапазон
	assert.False(t, IsWholeDay(at(10, 0), at(12, 0)))
}

func TestAvailabilitySlot_OverlapsSession(t *testing.T) {
	session := &Session{
		ID:        "s-1",
		StartTime: at(10, 0),
		EndTime:   at(12, 0),
		Status:    SessionPreliminary,
	}

	overlapping := &AvailabilitySlot{ID: "slot-1", StartTime: at(11, 0), EndTime: at(13, 0)}
	assert.True(t, overlapping.OverlapsSession(session))

	disjoint := &AvailabilitySlot{ID: "slot-2", StartTime: at(13, 0), EndTime: at(14, 0)}
	assert.False(t, disjoint.OverlapsSession(session))

	touching := &AvailabilitySlot{ID: "slot-3", StartTime: at(12, 0), EndTime: at(14, 0)}
	assert.False(t, touching.OverlapsSession(session))
}
