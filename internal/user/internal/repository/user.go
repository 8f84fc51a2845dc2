// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ecodeclub/pointsmall/internal/user/internal/domain"
	"github.com/ecodeclub/pointsmall/internal/user/internal/repository/dao"
)

var (
	// ErrUserNotFound 独立的哨兵错误，避免和别的模块的"没找到"混在一起
	ErrUserNotFound  = errors.New("用户不存在")
	ErrUserDuplicate = dao.ErrUserDuplicate
	ErrPointsChanged = dao.ErrPointsChanged
)

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	Update(ctx context.Context, u domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByGoogle(ctx context.Context, sub string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	DeductPoints(ctx context.Context, uid int64, amount int64) error
	AddPoints(ctx context.Context, uid int64, amount int64) error
}

type userRepository struct {
	dao dao.UserDAO
}

func NewUserRepository(d dao.UserDAO) UserRepository {
	return &userRepository{dao: d}
}

func (ur *userRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.toEntity(u))
}

func (ur *userRepository) Update(ctx context.Context, u domain.User) error {
	return ur.dao.UpdateNonZeroFields(ctx, dao.User{
		Id:     u.Id,
		Name:   u.Name,
		Avatar: u.Avatar,
		Email: sql.NullString{
			String: u.Email,
			Valid:  u.Email != "",
		},
	})
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	return ur.toDomain(u), ur.mapNotFound(err)
}

func (ur *userRepository) FindByGoogle(ctx context.Context, sub string) (domain.User, error) {
	u, err := ur.dao.FindByGoogle(ctx, sub)
	return ur.toDomain(u), ur.mapNotFound(err)
}

func (ur *userRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.dao.FindById(ctx, id)
	return ur.toDomain(u), ur.mapNotFound(err)
}

func (ur *userRepository) DeductPoints(ctx context.Context, uid int64, amount int64) error {
	return ur.dao.DeductPoints(ctx, uid, amount)
}

func (ur *userRepository) AddPoints(ctx context.Context, uid int64, amount int64) error {
	return ur.mapNotFound(ur.dao.AddPoints(ctx, uid, amount))
}

func (ur *userRepository) mapNotFound(err error) error {
	if errors.Is(err, dao.ErrDataNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (ur *userRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		Id:       u.Id,
		SN:       u.SN,
		Email:    u.Email.String,
		Password: u.Password,
		Name:     u.Name,
		Avatar:   u.Avatar,
		Role:     domain.Role(u.Role),
		Points:   u.Points,
		Status:   domain.Status(u.Status),
		GoogleInfo: domain.GoogleInfo{
			Sub: u.GoogleSub.String,
		},
	}
}

func (ur *userRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id: u.Id,
		SN: u.SN,
		Email: sql.NullString{
			String: u.Email,
			Valid:  u.Email != "",
		},
		Password: u.Password,
		Name:     u.Name,
		Avatar:   u.Avatar,
		GoogleSub: sql.NullString{
			String: u.GoogleInfo.Sub,
			Valid:  u.GoogleInfo.Sub != "",
		},
		Role:   u.Role.ToUint8(),
		Points: u.Points,
		Status: u.Status.ToUint8(),
	}
}
