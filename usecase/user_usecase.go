package usecase

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"time"

	"vespa-academy/domain/model"
	"vespa-academy/domain/repository"
	"vespa-academy/infrastructure/logger"
	"vespa-academy/infrastructure/utils"
)

// ErrInvalidCredentials deliberately hides whether the account exists.
var ErrInvalidCredentials = errors.New("invalid username or password")

type IUserUsecase interface {
	Login(ctx context.Context, req model.ReqLogin) (string, error)
}

type userUsecase struct {
	userRepo  repository.IUser
	secretKey string
}

func NewUserUsecase(userRepo repository.IUser, secretKey string) IUserUsecase {
	return &userUsecase{userRepo: userRepo, secretKey: secretKey}
}

func (u *userUsecase) Login(ctx context.Context, req model.ReqLogin) (string, error) {
	user, err := u.userRepo.GetByUserName(ctx, req.UserName)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	digest := fmt.Sprintf("%x", md5.Sum([]byte(req.Password)))
	if digest != user.Password {
		logger.GetLogger().WithField("user_name", req.UserName).Warn("Failed admin login attempt")
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(map[string]interface{}{
		"user_name": user.UserName,
		"iss":       fmt.Sprintf("%d", user.ID),
		"exp":       utils.GetCurrentTime().Add(24 * time.Hour).Unix(),
	}, u.secretKey)
	if err != nil {
		return "", err
	}
	return token, nil
}
