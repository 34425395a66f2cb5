package repository

import (
	"context"
	"strings"

	"github.com/iliyamo/movie-ticket-booking/internal/database"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/utils"
)

// UserRepo persists users in the snapshot store.
type UserRepo struct{ Store *database.Store }

func NewUserRepo(s *database.Store) *UserRepo { return &UserRepo{Store: s} }

// Create appends a new user and returns its ID.  The ID is one greater
// than the highest persisted user ID, so the sequence survives process
// restarts.  The password is bcrypt-hashed before it touches disk; an
// empty password stays empty.
func (r *UserRepo) Create(ctx context.Context, username, email, password string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash := ""
	if password != "" {
		h, err := utils.HashPassword(password, cost)
		if err != nil {
			return 0, err
		}
		hash = h
	}
	var id uint64
	err := r.Store.Update(ctx, func(snap *model.Snapshot) error {
		for i := range snap.Users {
			if snap.Users[i].ID >= id {
				id = snap.Users[i].ID + 1
			}
		}
		snap.Users = append(snap.Users, model.User{
			ID:           id,
			Username:     username,
			Email:        email,
			PasswordHash: hash,
			Bookings:     []model.Booking{},
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.Store.View(ctx, func(snap *model.Snapshot) error {
		user := snap.UserByID(id)
		if user == nil {
			return ErrUserNotFound
		}
		u = *user
		return nil
	})
	return u, err
}
