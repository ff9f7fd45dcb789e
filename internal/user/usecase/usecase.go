package usecase

import (
	"context"
	"regexp"
	"strings"

	"nearbychat/config"
	"nearbychat/internal/geo"
	"nearbychat/internal/user"
	models "nearbychat/internal/user/model"
	"nearbychat/internal/user/repository"
	"nearbychat/pkg/errors"
	"nearbychat/pkg/logger"
	"nearbychat/pkg/utils"

	"github.com/google/uuid"
)

type UserUsecase struct {
	repo   user.UserRepository
	logger logger.Logger
	config config.Config
}

func NewUserUsecase(repo user.UserRepository, logger logger.Logger, config config.Config) *UserUsecase {
	return &UserUsecase{repo: repo, logger: logger, config: config}
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateRegister(cmd user.RegisterCommand) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return errors.ErrInvalidName
	}
	if !emailRegex.MatchString(cmd.Email) {
		return errors.ErrInvalidEmail
	}
	if len(cmd.Password) < 6 {
		return errors.ErrInvalidPassword
	}
	return nil
}

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.UserDTO, error) {
	if err := validateRegister(cmd); err != nil {
		return nil, err
	}

	if exists, err := uc.repo.EmailExists(ctx, cmd.Email); err != nil {
		uc.logger.Error("database error checking email", "err", err)
		return nil, errors.Internal("internal server error")
	} else if exists {
		return nil, errors.ErrEmailTaken
	}

	hash, err := utils.HashPassword(cmd.Password)
	if err != nil {
		uc.logger.Error("failed to hash password", "err", err)
		return nil, errors.ErrRegistrationFailed(err)
	}

	u := &models.User{
		Email:        cmd.Email,
		Name:         strings.TrimSpace(cmd.Name),
		PasswordHash: hash,
		Online:       false,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		uc.logger.Errorf("error while saving user in db: %v", err)
		return nil, errors.ErrRegistrationFailed(errors.Internal("database error"))
	}

	return toUserDTO(u), nil
}

func (uc *UserUsecase) Login(ctx context.Context, cmd user.LoginCommand) (*user.LoginResponse, error) {
	u, err := uc.repo.GetUserByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Warn("login attempt for unknown email", "email", cmd.Email)
		return nil, errors.ErrInvalidCredentials
	}

	if !utils.VerifyPassword(u.PasswordHash, cmd.Password) {
		return nil, errors.ErrInvalidCredentials
	}

	if err := uc.repo.UpdateOnlineStatus(ctx, u.ID, true); err != nil {
		uc.logger.Error("failed to mark user online", "user_id", u.ID, "err", err)
		return nil, errors.ErrLoginFailed(err)
	}
	u.Online = true

	token, err := utils.GenerateJWTToken(u.ID, uc.config)
	if err != nil {
		uc.logger.Error("failed to sign token", "err", err)
		return nil, errors.Internal("error while creating token")
	}

	expiresIn := uc.config.JWT.ExpiredIn * 3600
	if expiresIn <= 0 {
		expiresIn = 72 * 3600
	}

	return &user.LoginResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		TokenType:   "Bearer",
		User:        toUserDTO(u),
	}, nil
}

func (uc *UserUsecase) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := uc.repo.UpdateOnlineStatus(ctx, userID, false); err != nil {
		uc.logger.Error("failed to mark user offline", "user_id", userID, "err", err)
		return errors.Internal("error while updating online status")
	}
	return nil
}

func (uc *UserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*user.ProfileDTO, error) {
	return uc.GetUser(ctx, userID)
}

func (uc *UserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*user.ProfileDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("failed to fetch user", "user_id", id, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toProfileDTO(u), nil
}

func (uc *UserUsecase) ListUsers(ctx context.Context) ([]user.UserDTO, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.logger.Error("failed to list users", "err", err)
		return nil, errors.Internal("internal server error")
	}

	dtos := make([]user.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, *toUserDTO(&users[i]))
	}
	return dtos, nil
}

func (uc *UserUsecase) UpdateUser(ctx context.Context, id uuid.UUID, cmd user.UpdateUserCommand) (*user.UserDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.Internal("internal server error")
	}

	if cmd.Name != nil {
		if strings.TrimSpace(*cmd.Name) == "" {
			return nil, errors.ErrInvalidName
		}
		u.Name = strings.TrimSpace(*cmd.Name)
	}
	if cmd.Email != nil {
		if !emailRegex.MatchString(*cmd.Email) {
			return nil, errors.ErrInvalidEmail
		}
		u.Email = *cmd.Email
	}
	if cmd.Password != nil {
		if len(*cmd.Password) < 6 {
			return nil, errors.ErrInvalidPassword
		}
		hash, err := utils.HashPassword(*cmd.Password)
		if err != nil {
			return nil, errors.Internal("failed to hash password")
		}
		u.PasswordHash = hash
	}

	if err := uc.repo.UpdateUser(ctx, u); err != nil {
		uc.logger.Error("failed to update user", "user_id", id, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toUserDTO(u), nil
}

func (uc *UserUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.ErrUserNotFound
		}
		uc.logger.Error("failed to delete user", "user_id", id, "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *UserUsecase) UpdateLocation(ctx context.Context, userID uuid.UUID, lat, lng float64) (*user.LocationDTO, error) {
	if !geo.IsValidCoordinate(lat, lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	if err := uc.repo.UpdateLocation(ctx, userID, lat, lng); err != nil {
		uc.logger.Error("failed to update location", "user_id", userID, "err", err)
		return nil, errors.Internal("error while updating location")
	}
	return &user.LocationDTO{Lat: lat, Lng: lng}, nil
}

func (uc *UserUsecase) SetOnlineStatus(ctx context.Context, userID uuid.UUID, online bool) error {
	if err := uc.repo.UpdateOnlineStatus(ctx, userID, online); err != nil {
		uc.logger.Error("failed to update online status", "user_id", userID, "err", err)
		return errors.Internal("error while updating online status")
	}
	return nil
}

func (uc *UserUsecase) Home(ctx context.Context, userID uuid.UUID) (*user.HomeDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.Internal("internal server error")
	}

	home := &user.HomeDTO{
		User:        *toProfileDTO(u),
		NearbyUsers: []user.NearbyUserDTO{},
	}

	if u.HasLocation() {
		radius := uc.config.Geo.DefaultRadiusKm
		if radius <= 0 {
			radius = geo.DefaultRadiusKm
		}

		nearby, err := uc.repo.FindNearby(ctx, *u.Lat, *u.Lng, radius, u.ID)
		if err != nil {
			uc.logger.Error("nearby lookup failed", "user_id", userID, "err", err)
			return nil, errors.Internal("error while searching nearby users")
		}
		for _, n := range nearby {
			home.NearbyUsers = append(home.NearbyUsers, user.NearbyUserDTO{
				ID:         n.User.ID,
				Name:       n.User.Name,
				Email:      n.User.Email,
				Online:     n.User.Online,
				DistanceKm: n.DistanceKm,
			})
		}
	}

	home.NearbyCount = len(home.NearbyUsers)
	return home, nil
}

func toUserDTO(u *models.User) *user.UserDTO {
	return &user.UserDTO{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Online: u.Online,
	}
}

func toProfileDTO(u *models.User) *user.ProfileDTO {
	return &user.ProfileDTO{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Online:       u.Online,
		Lat:          u.Lat,
		Lng:          u.Lng,
		LastActivity: u.LastActivity,
	}
}
