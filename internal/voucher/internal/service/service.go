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

	"github.com/ecodeclub/pointsmall/internal/voucher/internal/domain"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrVoucherNotFound = repository.ErrVoucherNotFound
	ErrStockChanged    = repository.ErrStockChanged
	// ErrInvalidVoucher 入参没通过校验
	ErrInvalidVoucher = errors.New("兑换券数据非法")
	// ErrTotalLimitImmutable 总库存创建之后不允许修改
	ErrTotalLimitImmutable = errors.New("总库存不允许修改")
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	// 统计里"兑换量偏低"的阈值
	lowRedeemedThreshold = 5
	analyticsLimit       = 10
	expireBatchSize      = 100
)

//go:generate mockgen -source=./service.go -destination=../../mocks/voucher.mock.go -package=vouchermocks -typed=true VoucherService
type VoucherService interface {
	// Save id 为零表示创建，否则更新
	Save(ctx context.Context, v domain.Voucher) (int64, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q domain.Query) ([]domain.Voucher, int64, error)
	Detail(ctx context.Context, id int64) (domain.Voucher, error)
	// FindById 不走缓存，兑换引擎校验前置条件时使用
	FindById(ctx context.Context, id int64) (domain.Voucher, error)
	Categories(ctx context.Context) ([]string, error)
	Analytics(ctx context.Context) (domain.Analytics, error)
	DecrementStock(ctx context.Context, id int64) error
	RestoreStock(ctx context.Context, id int64) error
	// DeactivateExpired 分批下架已过期的兑换券，返回下架总数
	DeactivateExpired(ctx context.Context) (int64, error)
	EvictCache(ctx context.Context, id int64)
}

type voucherService struct {
	repo   repository.VoucherRepository
	logger *elog.Component
}

func NewVoucherService(repo repository.VoucherRepository) VoucherService {
	return &voucherService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *voucherService) Save(ctx context.Context, v domain.Voucher) (int64, error) {
	if err := s.validate(v); err != nil {
		return 0, err
	}
	if v.Id == 0 {
		v.SN = shortuuid.New()
		v.RemainingLimit = v.TotalLimit
		if v.Status == 0 {
			v.Status = domain.StatusOnShelf
		}
		return s.repo.Create(ctx, v)
	}
	old, err := s.repo.FindById(ctx, v.Id)
	if err != nil {
		return 0, err
	}
	if v.TotalLimit != 0 && v.TotalLimit != old.TotalLimit {
		return 0, ErrTotalLimitImmutable
	}
	// 不传状态就保持原状，避免把 0 这种非法值写进去
	if v.Status == 0 {
		v.Status = old.Status
	}
	return v.Id, s.repo.Update(ctx, v)
}

func (s *voucherService) validate(v domain.Voucher) error {
	if v.Title == "" || v.Category == "" {
		return ErrInvalidVoucher
	}
	if v.PointsCost <= 0 {
		return ErrInvalidVoucher
	}
	if v.Id == 0 && v.TotalLimit <= 0 {
		return ErrInvalidVoucher
	}
	if v.UserLimit <= 0 {
		return ErrInvalidVoucher
	}
	if v.ExpiryDate <= time.Now().UnixMilli() {
		return ErrInvalidVoucher
	}
	return nil
}

func (s *voucherService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *voucherService) List(ctx context.Context, q domain.Query) ([]domain.Voucher, int64, error) {
	if q.Limit <= 0 {
		q.Limit = defaultListLimit
	}
	if q.Limit > maxListLimit {
		q.Limit = maxListLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return s.repo.List(ctx, q)
}

func (s *voucherService) Detail(ctx context.Context, id int64) (domain.Voucher, error) {
	return s.repo.Detail(ctx, id)
}

func (s *voucherService) FindById(ctx context.Context, id int64) (domain.Voucher, error) {
	return s.repo.FindById(ctx, id)
}

func (s *voucherService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *voucherService) Analytics(ctx context.Context) (domain.Analytics, error) {
	return s.repo.Analytics(ctx, lowRedeemedThreshold, analyticsLimit)
}

func (s *voucherService) DecrementStock(ctx context.Context, id int64) error {
	return s.repo.DecrementStock(ctx, id, time.Now().UnixMilli())
}

func (s *voucherService) RestoreStock(ctx context.Context, id int64) error {
	return s.repo.RestoreStock(ctx, id)
}

func (s *voucherService) DeactivateExpired(ctx context.Context) (int64, error) {
	var total int64
	for {
		now := time.Now().UnixMilli()
		ids, err := s.repo.FindExpired(ctx, now, expireBatchSize)
		if err != nil {
			return total, err
		}
		if len(ids) == 0 {
			return total, nil
		}
		affected, err := s.repo.DeactivateByIds(ctx, ids)
		if err != nil {
			return total, err
		}
		total += affected
		if len(ids) < expireBatchSize {
			return total, nil
		}
	}
}

func (s *voucherService) EvictCache(ctx context.Context, id int64) {
	s.repo.EvictCache(ctx, id)
}
