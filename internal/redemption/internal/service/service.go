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
	"time"

	"github.com/ecodeclub/pointsmall/internal/redemption/internal/domain"
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/event"
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/repository"
	"github.com/ecodeclub/pointsmall/internal/user"
	"github.com/ecodeclub/pointsmall/internal/voucher"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrVoucherNotFound = voucher.ErrVoucherNotFound
	ErrUserNotFound    = user.ErrUserNotFound
	// ErrUserInactive 账号被停用之后不允许再兑换，会话还没过期也不行
	ErrUserInactive = errors.New("账号已被停用")
	// ErrVoucherUnavailable 下架、过期或者库存耗尽
	ErrVoucherUnavailable = errors.New("兑换券不可兑换")
	ErrInsufficientPoints = errors.New("积分不足")
	ErrUserLimitReached   = errors.New("已达到单用户兑换上限")
	// ErrConcurrentConflict 写入阶段输掉了并发竞争，调用方可以重试
	ErrConcurrentConflict = errors.New("并发冲突")
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

//go:generate mockgen -source=./service.go -destination=../../mocks/redemption.mock.go -package=redemptionmocks -typed=true RedemptionService
type RedemptionService interface {
	// Redeem 用积分兑换一张券。
	// 先做前置校验快速失败，再按 库存 -> 积分 -> 流水 的顺序条件写入，
	// 任何一步失败都回滚前面已经成功的步骤。
	Redeem(ctx context.Context, uid, voucherId int64) (domain.RedeemResult, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Redemption, int64, error)
	Stats(ctx context.Context, uid int64) (domain.Stats, error)
}

type redemptionService struct {
	repo       repository.RedemptionRepository
	userSvc    user.Service
	voucherSvc voucher.Service
	producer   *event.RedemptionEventProducer
	logger     *elog.Component
}

func NewRedemptionService(repo repository.RedemptionRepository,
	userSvc user.Service,
	voucherSvc voucher.Service,
	producer *event.RedemptionEventProducer) RedemptionService {
	return &redemptionService{
		repo:       repo,
		userSvc:    userSvc,
		voucherSvc: voucherSvc,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

func (svc *redemptionService) Redeem(ctx context.Context, uid, voucherId int64) (domain.RedeemResult, error) {
	// 前置校验读的是普通快照，只用来快速失败，真正的正确性由写入阶段的条件更新保证
	v, err := svc.voucherSvc.FindById(ctx, voucherId)
	if errors.Is(err, voucher.ErrVoucherNotFound) {
		return domain.RedeemResult{}, ErrVoucherNotFound
	}
	if err != nil {
		return domain.RedeemResult{}, err
	}
	u, err := svc.userSvc.Profile(ctx, uid)
	if errors.Is(err, user.ErrUserNotFound) {
		return domain.RedeemResult{}, ErrUserNotFound
	}
	if err != nil {
		return domain.RedeemResult{}, err
	}
	redeemed, err := svc.repo.CountByUserAndVoucher(ctx, uid, voucherId)
	if err != nil {
		return domain.RedeemResult{}, err
	}
	if err = svc.checkPreconditions(u, v, redeemed, time.Now()); err != nil {
		return domain.RedeemResult{}, err
	}

	// 写入阶段
	now := time.Now().UnixMilli()
	err = svc.voucherSvc.DecrementStock(ctx, voucherId)
	if errors.Is(err, voucher.ErrStockChanged) {
		return domain.RedeemResult{}, ErrConcurrentConflict
	}
	if err != nil {
		return domain.RedeemResult{}, err
	}
	err = svc.userSvc.DeductPoints(ctx, uid, v.PointsCost)
	if err != nil {
		svc.restoreStock(ctx, voucherId)
		if errors.Is(err, user.ErrPointsChanged) {
			return domain.RedeemResult{}, ErrInsufficientPoints
		}
		return domain.RedeemResult{}, err
	}
	red := domain.Redemption{
		SN:              shortuuid.New(),
		Uid:             uid,
		VoucherId:       voucherId,
		VoucherTitle:    v.Title,
		VoucherCategory: v.Category,
		PointsUsed:      v.PointsCost,
		RedeemedAt:      now,
	}
	_, err = svc.repo.Create(ctx, red, v.UserLimit)
	if err != nil {
		svc.refundPoints(ctx, uid, v.PointsCost)
		svc.restoreStock(ctx, voucherId)
		if errors.Is(err, repository.ErrUserLimitExceeded) {
			return domain.RedeemResult{}, ErrUserLimitReached
		}
		return domain.RedeemResult{}, err
	}

	evt := event.RedemptionEvent{
		Uid:        uid,
		VoucherId:  voucherId,
		PointsUsed: v.PointsCost,
	}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送兑换成功消息失败",
			elog.FieldErr(e),
			elog.Int64("uid", uid),
			elog.Int64("vid", voucherId),
		)
	}
	return domain.RedeemResult{
		SN:              red.SN,
		VoucherTitle:    v.Title,
		PointsUsed:      v.PointsCost,
		RemainingPoints: svc.remainingPoints(ctx, u, v.PointsCost),
	}, nil
}

// checkPreconditions 按固定顺序校验，保证同一种非法请求总是拿到同一个错误
func (svc *redemptionService) checkPreconditions(u user.User, v voucher.Voucher, redeemed int64, now time.Time) error {
	// 登录之后被停用的账号，会话可能还没过期，这里要再查一次状态
	if !u.IsActive() {
		return ErrUserInactive
	}
	if !v.Available(now) {
		return ErrVoucherUnavailable
	}
	if u.Points < v.PointsCost {
		return ErrInsufficientPoints
	}
	if redeemed >= v.UserLimit {
		return ErrUserLimitReached
	}
	return nil
}

func (svc *redemptionService) restoreStock(ctx context.Context, voucherId int64) {
	if err := svc.voucherSvc.RestoreStock(ctx, voucherId); err != nil {
		svc.logger.Error("回滚库存失败，需要人工介入",
			elog.FieldErr(err),
			elog.Int64("vid", voucherId),
		)
	}
}

func (svc *redemptionService) refundPoints(ctx context.Context, uid, amount int64) {
	if err := svc.userSvc.RefundPoints(ctx, uid, amount); err != nil {
		svc.logger.Error("回滚积分失败，需要人工介入",
			elog.FieldErr(err),
			elog.Int64("uid", uid),
			elog.Int64("amount", amount),
		)
	}
}

// remainingPoints 重新读一次库里的余额，读失败就用本地计算值兜底
func (svc *redemptionService) remainingPoints(ctx context.Context, u user.User, cost int64) int64 {
	latest, err := svc.userSvc.Profile(ctx, u.Id)
	if err != nil {
		svc.logger.Warn("查询最新积分余额失败", elog.FieldErr(err), elog.Int64("uid", u.Id))
		return u.Points - cost
	}
	return latest.Points
}

func (svc *redemptionService) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Redemption, int64, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return svc.repo.ListByUid(ctx, uid, offset, limit)
}

func (svc *redemptionService) Stats(ctx context.Context, uid int64) (domain.Stats, error) {
	return svc.repo.StatsByUid(ctx, uid)
}
