package services

import (
	"context"
	"errors"

	"github.com/akinalp/antren/models"
	"github.com/akinalp/antren/pkg"
	"github.com/akinalp/antren/repository"
)

// UserService, kullanıcı okuma ve admin güncelleme akışlarını yönetir.
type UserService interface {
	// ListBasic, herkese açık {id, nickName} listesini döner.
	ListBasic(ctx context.Context) ([]models.UserBasic, error)

	// Profile, kullanıcının kendi profil görünümünü döner.
	Profile(ctx context.Context, userID int64) (*models.UserProfile, error)

	// ListAll, admin için tüm kullanıcıları döner.
	ListAll(ctx context.Context) ([]models.User, error)

	// Detail, admin için tek kullanıcıyı döner.
	Detail(ctx context.Context, id string) (*models.User, error)

	// Update, kısmi günceller ve güncel kaydı döner.
	Update(ctx context.Context, id string, update *models.UserUpdate) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListBasic(ctx context.Context) ([]models.UserBasic, error) {
	return s.userRepo.GetAllBasic(ctx)
}

func (s *userService) Profile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			// Token geçerli ama kullanıcı silinmiş olabilir.
			return nil, pkg.NotFound("user.notFound")
		}
		return nil, err
	}
	return profile, nil
}

func (s *userService) ListAll(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *userService) Detail(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFound("user.notFound")
		}
		return nil, err
	}
	return user, nil
}

// Update, update-then-refetch kalıbını uygular.
func (s *userService) Update(ctx context.Context, id string, update *models.UserUpdate) (*models.User, error) {
	if err := s.userRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFound("user.notFound")
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFound("user.notFound")
		}
		return nil, err
	}

	return user, nil
}
