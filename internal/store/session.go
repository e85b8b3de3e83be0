package store

import (
	"context"
	"errors"
	"time"

	"github.com/4kternos/fitting-room/internal/store/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Session interface {
	Create(ctx context.Context, session model.FittingSession) (*model.FittingSession, error)
	Get(ctx context.Context, id uuid.UUID) (*model.FittingSession, error)
	Update(ctx context.Context, session model.FittingSession) (*model.FittingSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteExpired removes every session whose expiration is not after now and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	CountActive(ctx context.Context, now time.Time) (int64, error)
}

type SessionStore struct {
	db *gorm.DB
}

// Make sure we conform to Session interface
var _ Session = (*SessionStore)(nil)

func NewSessionStore(db *gorm.DB) Session {
	return &SessionStore{db: db}
}

func (s *SessionStore) Create(ctx context.Context, session model.FittingSession) (*model.FittingSession, error) {
	if err := s.getDB(ctx).WithContext(ctx).Create(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}

	return &session, nil
}

// Get returns a session based on its id, expired or not.
func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*model.FittingSession, error) {
	session := &model.FittingSession{}

	if err := s.getDB(ctx).WithContext(ctx).First(session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return session, nil
}

func (s *SessionStore) Update(ctx context.Context, session model.FittingSession) (*model.FittingSession, error) {
	// Select("*") so zero values (a slider moved back to 0) are written too
	tx := s.getDB(ctx).WithContext(ctx).Model(&session).Select("*").Omit("created_at").Updates(&session)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	tx := s.getDB(ctx).WithContext(ctx).Where("id = ?", id).Delete(&model.FittingSession{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *SessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tx := s.getDB(ctx).WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.FittingSession{})
	return tx.RowsAffected, tx.Error
}

func (s *SessionStore) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := s.getDB(ctx).WithContext(ctx).Model(&model.FittingSession{}).Where("expires_at > ?", now).Count(&count).Error
	return count, err
}

func (s *SessionStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db
}
