package repository

import (
	"context"
	"database/sql"
	"time"

	"nearbychat/internal/geo"
	User "nearbychat/internal/user/model"
	"nearbychat/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

func NewUserRepository(db *bun.DB, logger logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *User.User) error {

	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.CreateUser.InsertUser: ")
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error) {

	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*User.User, error) {

	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("email = ?", email).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByEmail.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	count, err := r.db.NewSelect().Model((*User.User)(nil)).Where("email = ?", email).Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.EmailExists.Count: ")
	}
	return count > 0, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]User.User, error) {
	var users []User.User
	err := r.db.NewSelect().Model(&users).Order("name ASC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.ListUsers.Scan: ")
	}
	return users, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *User.User) error {
	_, err := r.db.NewUpdate().
		Model(user).
		Column("name", "email", "password_hash").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateUser.Update: ")
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().Model((*User.User)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.DeleteUser.Exec: ")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateLocation(ctx context.Context, userID uuid.UUID, lat, lng float64) error {
	now := time.Now()
	_, err := r.db.NewUpdate().
		Model(&User.User{Lat: &lat, Lng: &lng, LastActivity: &now}).
		Column("lat", "lng", "last_activity").
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateLocation.Update: ")
	}
	return nil
}

func (r *UserRepository) UpdateOnlineStatus(ctx context.Context, userID uuid.UUID, online bool) error {
	now := time.Now()
	_, err := r.db.NewUpdate().
		Model(&User.User{Online: online, LastActivity: &now}).
		Column("online", "last_activity").
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateOnlineStatus.Update: ")
	}
	return nil
}

// FindNearby pushes the radius filter into SQL using the spherical
// law of cosines, then refetches the matching users by id. The acos
// argument is clamped to [-1,1]: for identical points floating point
// noise can push it just past 1 and acos would return NaN.
func (r *UserRepository) FindNearby(ctx context.Context, lat, lng, radiusKm float64, excludeID uuid.UUID) ([]User.NearbyUser, error) {

	query := `
		SELECT id, distance FROM (
			SELECT u.id,
			       round((? * acos(least(1.0, greatest(-1.0,
			           cos(radians(?)) * cos(radians(u.lat)) *
			           cos(radians(u.lng) - radians(?)) +
			           sin(radians(?)) * sin(radians(u.lat))
			       ))))::numeric, 2)::float8 AS distance
			FROM users AS u
			WHERE u.lat IS NOT NULL
			  AND u.lng IS NOT NULL
			  AND u.online = TRUE
			  AND (?::uuid IS NULL OR u.id <> ?)
		) AS nearby
		WHERE distance <= ?
		ORDER BY distance ASC, id ASC`

	var exclude *uuid.UUID
	if excludeID != uuid.Nil {
		exclude = &excludeID
	}

	var rows []struct {
		ID       uuid.UUID `bun:"id"`
		Distance float64   `bun:"distance"`
	}
	err := r.db.NewRaw(query,
		float64(geo.EarthRadiusKm), lat, lng, lat,
		exclude, exclude,
		radiusKm,
	).Scan(ctx, &rows)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.FindNearby.Scan: ")
	}

	if len(rows) == 0 {
		return []User.NearbyUser{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var users []User.User
	err = r.db.NewSelect().Model(&users).Where("id IN (?)", bun.In(ids)).Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.FindNearby.Fetch: ")
	}

	byID := make(map[uuid.UUID]*User.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	result := make([]User.NearbyUser, 0, len(rows))
	for _, row := range rows {
		if u, ok := byID[row.ID]; ok {
			result = append(result, User.NearbyUser{User: u, DistanceKm: row.Distance})
		}
	}
	return result, nil
}
