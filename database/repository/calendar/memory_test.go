package calendarRepo

import (
	"context"
	"testing"
	"time"

	"cleanquote/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(id string, startHour, endHour int) models.Booking {
	day := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	return models.Booking{
		ID:    id,
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestMemoryCalendarRepo_ListOverlapping(t *testing.T) {
	repo := NewMemoryCalendarRepo(booking("c", 14, 16), booking("a", 9, 10), booking("b", 10, 12))
	day := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)

	got, err := repo.ListOverlapping(context.Background(), day.Add(10*time.Hour), day.Add(14*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	got, err = repo.ListOverlapping(context.Background(), day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})

	intervals := Intervals(got)
	assert.Equal(t, day.Add(9*time.Hour), intervals[0].Start)
}

func TestMemoryCalendarRepo_InsertGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCalendarRepo()

	require.NoError(t, repo.Insert(ctx, booking("x", 9, 11)))
	assert.Error(t, repo.Insert(ctx, booking("x", 12, 13)))

	got, err := repo.GetByID(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Start.Hour())

	require.NoError(t, repo.Delete(ctx, "x"))
	assert.ErrorIs(t, repo.Delete(ctx, "x"), ErrBookingNotFound)
	_, err = repo.GetByID(ctx, "x")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemoryCalendarRepo_DeleteEndedBefore(t *testing.T) {
	repo := NewMemoryCalendarRepo(booking("a", 9, 10), booking("b", 10, 12), booking("c", 14, 16))
	cutoff := time.Date(2024, time.January, 8, 12, 0, 0, 0, time.UTC)

	n, err := repo.DeleteEndedBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.GetByID(context.Background(), "b")
	assert.NoError(t, err)
}
