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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/pointsmall/internal/user/internal/domain"
	"github.com/ecodeclub/pointsmall/internal/user/internal/event"
	"github.com/ecodeclub/pointsmall/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound  = repository.ErrUserNotFound
	ErrDuplicateUser = repository.ErrUserDuplicate
	// ErrPointsChanged 扣减积分的条件更新没命中，调用方可以视作并发冲突重试
	ErrPointsChanged = repository.ErrPointsChanged
	// ErrInvalidCredential 账号不存在和密码错误统一返回这个，不给攻击者提示
	ErrInvalidCredential = errors.New("账号或者密码不正确")
	ErrUserInactive      = errors.New("账号已被停用")
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	// LoginByEmail 邮箱密码登录，只校验身份，会话由 web 层负责
	LoginByEmail(ctx context.Context, email string, password string) (domain.User, error)
	// FindOrCreateByGoogle 扫码登录，第一次登录的时候初始化账号
	FindOrCreateByGoogle(ctx context.Context, info domain.GoogleInfo) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// UpdateNonSensitiveInfo 更新昵称、头像和邮箱
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error

	// DeductPoints 写入时刻校验 points >= amount，失败返回 ErrPointsChanged
	DeductPoints(ctx context.Context, uid int64, amount int64) error
	// RefundPoints 兑换失败之后的补偿回滚
	RefundPoints(ctx context.Context, uid int64, amount int64) error
	AddPoints(ctx context.Context, uid int64, amount int64) error
}

type userService struct {
	repo     repository.UserRepository
	producer *event.RegistrationEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, p *event.RegistrationEventProducer) UserService {
	return &userService{
		repo:     repo,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) LoginByEmail(ctx context.Context, email string, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidCredential
	}
	if err != nil {
		return domain.User{}, err
	}
	if u.Password == "" {
		// 扫码注册的用户没有密码
		return domain.User{}, ErrInvalidCredential
	}
	if err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredential
	}
	if !u.IsActive() {
		return domain.User{}, ErrUserInactive
	}
	return u, nil
}

func (svc *userService) FindOrCreateByGoogle(ctx context.Context, info domain.GoogleInfo) (domain.User, error) {
	u, err := svc.repo.FindByGoogle(ctx, info.Sub)
	if !errors.Is(err, repository.ErrUserNotFound) {
		if err == nil && !u.IsActive() {
			return domain.User{}, ErrUserInactive
		}
		return u, err
	}
	sn := shortuuid.New()
	name := info.Name
	if name == "" {
		name = sn[:4]
	}
	u = domain.User{
		SN:         sn,
		Email:      info.Email,
		Name:       name,
		Avatar:     info.Avatar,
		Role:       domain.RoleUser,
		Status:     domain.StatusActive,
		GoogleInfo: info,
	}
	id, err := svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id

	// 注册成功之后发消息，由消费者负责发放注册积分
	evt := event.RegistrationEvent{Uid: id}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(e),
			elog.Int64("uid", id),
		)
	}
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 不让修改序列号和角色
	user.SN = ""
	user.Role = 0
	return svc.repo.Update(ctx, user)
}

func (svc *userService) DeductPoints(ctx context.Context, uid int64, amount int64) error {
	return svc.repo.DeductPoints(ctx, uid, amount)
}

func (svc *userService) RefundPoints(ctx context.Context, uid int64, amount int64) error {
	return svc.repo.AddPoints(ctx, uid, amount)
}

func (svc *userService) AddPoints(ctx context.Context, uid int64, amount int64) error {
	return svc.repo.AddPoints(ctx, uid, amount)
}
