//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"session-booking/internal/domain/availability"
	"session-booking/internal/domain/booking"
	"session-booking/internal/pkg/errs"
	"session-booking/internal/usecase/queries"
	queriesmock "session-booking/tests/mock/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func TestListSlots(t *testing.T) {
	start := civil.Date{Year: 2025, Month: time.March, Day: 3}
	end := start.AddDays(2)
	slot := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		req       queries.SlotRequest
		setup     func(f *queriesmock.MockSlotFinder, st *queriesmock.MockSessionTypeLookup)
		wantErr   error
		wantSlots int
		wantDur   int
	}{
		{
			name: "duration from session type",
			req:  queries.SlotRequest{StartDate: start, EndDate: end, SessionTypeID: ptr(int64(2))},
			setup: func(f *queriesmock.MockSlotFinder, st *queriesmock.MockSessionTypeLookup) {
				st.EXPECT().FindSessionType(gomock.Any(), int64(2)).
					Return(booking.SessionType{ID: 2, DurationMinutes: 90, Active: true}, nil)
				f.EXPECT().Slots(gomock.Any(), availability.Query{StartDate: start, EndDate: end, DurationMinutes: 90}).
					Return([]time.Time{slot}, nil)
			},
			wantSlots: 1,
			wantDur:   90,
		},
		{
			name: "explicit duration",
			req:  queries.SlotRequest{StartDate: start, EndDate: end, DurationMinutes: ptr(30)},
			setup: func(f *queriesmock.MockSlotFinder, _ *queriesmock.MockSessionTypeLookup) {
				f.EXPECT().Slots(gomock.Any(), availability.Query{StartDate: start, EndDate: end, DurationMinutes: 30}).
					Return([]time.Time{}, nil)
			},
			wantDur: 30,
		},
		{
			name: "inactive session type",
			req:  queries.SlotRequest{StartDate: start, EndDate: end, SessionTypeID: ptr(int64(4))},
			setup: func(_ *queriesmock.MockSlotFinder, st *queriesmock.MockSessionTypeLookup) {
				st.EXPECT().FindSessionType(gomock.Any(), int64(4)).
					Return(booking.SessionType{ID: 4, DurationMinutes: 60}, nil)
			},
			wantErr: queries.ErrUnknownSessionType,
		},
		{
			name: "unknown session type",
			req:  queries.SlotRequest{StartDate: start, EndDate: end, SessionTypeID: ptr(int64(9))},
			setup: func(_ *queriesmock.MockSlotFinder, st *queriesmock.MockSessionTypeLookup) {
				st.EXPECT().FindSessionType(gomock.Any(), int64(9)).
					Return(booking.SessionType{}, errs.Mark(errs.New("no rows"), errs.ErrNotFound))
			},
			wantErr: queries.ErrUnknownSessionType,
		},
		{
			name:    "no duration source",
			req:     queries.SlotRequest{StartDate: start, EndDate: end},
			setup:   func(*queriesmock.MockSlotFinder, *queriesmock.MockSessionTypeLookup) {},
			wantErr: errs.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			finder := queriesmock.NewMockSlotFinder(ctrl)
			lookup := queriesmock.NewMockSessionTypeLookup(ctrl)
			tt.setup(finder, lookup)

			view, err := queries.NewSlotQueries(finder, lookup).ListSlots(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, view.Slots, tt.wantSlots)
			assert.Equal(t, tt.wantDur, view.DurationMinutes)
			assert.Equal(t, "2025-03-03", view.StartDate)
			assert.Equal(t, "2025-03-05", view.EndDate)
		})
	}
}

func TestSessionQueries_List(t *testing.T) {
	created := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)
	items := make([]*queries.SessionListItem, 3)
	for i := range items {
		items[i] = &queries.SessionListItem{ID: uuid.New(), CreatedAt: created.Add(-time.Duration(i) * time.Minute)}
	}

	t.Run("first page returns a cursor when more rows exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSessionReadStore(ctrl)
		store.EXPECT().FindFirstPage(gomock.Any(), queries.SessionFilters{}, int32(3)).Return(items, nil)

		rows, next, err := queries.NewSessionQueries(store).List(context.Background(), queries.SessionFilters{}, nil, 2)

		require.NoError(t, err)
		assert.Len(t, rows, 2)
		require.NotNil(t, next)
		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, items[1].ID, id)
		assert.True(t, at.Equal(items[1].CreatedAt))
	})

	t.Run("keyset page uses the decoded cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSessionReadStore(ctrl)
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(items[1].CreatedAt, items[1].ID)}
		status := "confirmed"
		filters := queries.SessionFilters{Status: &status}
		store.EXPECT().FindKeyset(gomock.Any(), filters, gomock.Any(), items[1].ID, int32(3)).
			Return(items[2:], nil)

		rows, next, err := queries.NewSessionQueries(store).List(context.Background(), filters, cursor, 2)

		require.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Nil(t, next)
	})

	t.Run("malformed cursor is a validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSessionReadStore(ctrl)

		_, _, err := queries.NewSessionQueries(store).List(context.Background(), queries.SessionFilters{}, &queries.Cursor{After: "%%%"}, 2)

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestSessionQueries_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockSessionReadStore(ctrl)
	id := uuid.New()
	store.EXPECT().FindByID(gomock.Any(), id).Return(nil, errs.Mark(errs.New("no rows"), errs.ErrNotFound))

	_, err := queries.NewSessionQueries(store).GetByID(context.Background(), id)

	assert.True(t, errs.Is(err, queries.ErrSessionNotFound))
}
