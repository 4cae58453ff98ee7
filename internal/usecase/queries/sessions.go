package queries

import (
	"context"
	"time"

	"session-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errs.Mark(errs.New("session not found"), errs.ErrNotFound)

type SessionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
	FindFirstPage(ctx context.Context, filters SessionFilters, limit int32) ([]*SessionListItem, error)
	FindKeyset(ctx context.Context, filters SessionFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*SessionListItem, error)
}

type SessionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
	List(ctx context.Context, filters SessionFilters, cursor *Cursor, limit int) ([]*SessionListItem, *Cursor, error)
}

type sessionQueriesImpl struct {
	repo SessionReadStore
}

func NewSessionQueries(repo SessionReadStore) SessionQueries {
	return &sessionQueriesImpl{repo: repo}
}

func (q *sessionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *sessionQueriesImpl) List(ctx context.Context, filters SessionFilters, cursor *Cursor, limit int) ([]*SessionListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*SessionListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindFirstPage(ctx, filters, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindKeyset(ctx, filters, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
