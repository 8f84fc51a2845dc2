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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/domain"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/repository/cache"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	// ErrVoucherNotFound 独立的哨兵错误，避免和别的模块的"没找到"混在一起
	ErrVoucherNotFound = errors.New("兑换券不存在")
	ErrStockChanged    = dao.ErrStockChanged
)

type VoucherRepository interface {
	Create(ctx context.Context, v domain.Voucher) (int64, error)
	Update(ctx context.Context, v domain.Voucher) error
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (domain.Voucher, error)
	// Detail 走缓存，只给查询接口用，兑换引擎必须用 FindById 读库
	Detail(ctx context.Context, id int64) (domain.Voucher, error)
	List(ctx context.Context, q domain.Query) ([]domain.Voucher, int64, error)
	Categories(ctx context.Context) ([]string, error)
	Analytics(ctx context.Context, lowThreshold int64, limit int) (domain.Analytics, error)
	DecrementStock(ctx context.Context, id int64, now int64) error
	RestoreStock(ctx context.Context, id int64) error
	FindExpired(ctx context.Context, now int64, limit int) ([]int64, error)
	DeactivateByIds(ctx context.Context, ids []int64) (int64, error)
	EvictCache(ctx context.Context, id int64)
}

type voucherRepository struct {
	dao    dao.VoucherDAO
	cache  cache.VoucherCache
	logger *elog.Component
}

func NewVoucherRepository(d dao.VoucherDAO, c cache.VoucherCache) VoucherRepository {
	return &voucherRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *voucherRepository) Create(ctx context.Context, v domain.Voucher) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(v))
}

func (r *voucherRepository) Update(ctx context.Context, v domain.Voucher) error {
	err := r.dao.Update(ctx, r.toEntity(v))
	if err != nil {
		return err
	}
	r.EvictCache(ctx, v.Id)
	return nil
}

func (r *voucherRepository) Delete(ctx context.Context, id int64) error {
	err := r.dao.Delete(ctx, id)
	if err != nil {
		return err
	}
	r.EvictCache(ctx, id)
	return nil
}

func (r *voucherRepository) FindById(ctx context.Context, id int64) (domain.Voucher, error) {
	v, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Voucher{}, ErrVoucherNotFound
	}
	if err != nil {
		return domain.Voucher{}, err
	}
	return r.toDomain(v), nil
}

func (r *voucherRepository) Detail(ctx context.Context, id int64) (domain.Voucher, error) {
	res, err := r.cache.GetDetail(ctx, id)
	if err == nil {
		return res, nil
	}
	res, err = r.FindById(ctx, id)
	if err != nil {
		return domain.Voucher{}, err
	}
	// 缓存写失败不影响主流程
	if cerr := r.cache.SetDetail(ctx, res); cerr != nil {
		r.logger.Warn("缓存兑换券详情失败", elog.Int64("vid", id), elog.FieldErr(cerr))
	}
	return res, nil
}

func (r *voucherRepository) List(ctx context.Context, q domain.Query) ([]domain.Voucher, int64, error) {
	vs, err := r.dao.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	count, err := r.dao.Count(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(vs, func(idx int, src dao.Voucher) domain.Voucher {
		return r.toDomain(src)
	}), count, nil
}

func (r *voucherRepository) Categories(ctx context.Context) ([]string, error) {
	return r.dao.Categories(ctx)
}

func (r *voucherRepository) Analytics(ctx context.Context, lowThreshold int64, limit int) (domain.Analytics, error) {
	res, err := r.cache.GetAnalytics(ctx)
	if err == nil {
		return res, nil
	}
	top, err := r.dao.TopRedeemed(ctx, limit)
	if err != nil {
		return domain.Analytics{}, err
	}
	low, err := r.dao.LowRedeemed(ctx, lowThreshold, limit)
	if err != nil {
		return domain.Analytics{}, err
	}
	stats, err := r.dao.CategoryStats(ctx)
	if err != nil {
		return domain.Analytics{}, err
	}
	recent, err := r.dao.Recent(ctx, limit)
	if err != nil {
		return domain.Analytics{}, err
	}
	res = domain.Analytics{
		TopRedeemed: slice.Map(top, func(idx int, src dao.Voucher) domain.Voucher {
			return r.toDomain(src)
		}),
		LowRedeemed: slice.Map(low, func(idx int, src dao.Voucher) domain.Voucher {
			return r.toDomain(src)
		}),
		CategoryStats: slice.Map(stats, func(idx int, src dao.CategoryStat) domain.CategoryStat {
			return domain.CategoryStat{
				Category:         src.Category,
				TotalVouchers:    src.TotalVouchers,
				TotalRedemptions: src.TotalRedemptions,
				AvgPointsCost:    src.AvgPointsCost,
			}
		}),
		Recent: slice.Map(recent, func(idx int, src dao.Voucher) domain.Voucher {
			return r.toDomain(src)
		}),
	}
	if cerr := r.cache.SetAnalytics(ctx, res); cerr != nil {
		r.logger.Warn("缓存统计数据失败", elog.FieldErr(cerr))
	}
	return res, nil
}

func (r *voucherRepository) DecrementStock(ctx context.Context, id int64, now int64) error {
	return r.dao.DecrementStock(ctx, id, now)
}

func (r *voucherRepository) RestoreStock(ctx context.Context, id int64) error {
	return r.dao.RestoreStock(ctx, id)
}

func (r *voucherRepository) FindExpired(ctx context.Context, now int64, limit int) ([]int64, error) {
	return r.dao.FindExpired(ctx, now, limit)
}

func (r *voucherRepository) DeactivateByIds(ctx context.Context, ids []int64) (int64, error) {
	affected, err := r.dao.DeactivateByIds(ctx, ids)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		r.EvictCache(ctx, id)
	}
	return affected, nil
}

// EvictCache 尽力而为，失败只打日志
func (r *voucherRepository) EvictCache(ctx context.Context, id int64) {
	if err := r.cache.DelDetail(ctx, id); err != nil {
		r.logger.Warn("清理兑换券详情缓存失败", elog.Int64("vid", id), elog.FieldErr(err))
	}
	if err := r.cache.DelAnalytics(ctx); err != nil {
		r.logger.Warn("清理统计缓存失败", elog.FieldErr(err))
	}
}

func (r *voucherRepository) toEntity(v domain.Voucher) dao.Voucher {
	return dao.Voucher{
		Id:                 v.Id,
		SN:                 v.SN,
		Title:              v.Title,
		Description:        v.Desc,
		Category:           v.Category,
		Brand:              v.Brand,
		Image:              v.Image,
		Terms:              v.Terms,
		PointsCost:         v.PointsCost,
		OriginalPrice:      v.OriginalPrice,
		DiscountPercentage: v.DiscountPercentage,
		TotalLimit:         v.TotalLimit,
		RemainingLimit:     v.RemainingLimit,
		UserLimit:          v.UserLimit,
		ExpiryDate:         v.ExpiryDate,
		Status:             v.Status.ToUint8(),
	}
}

func (r *voucherRepository) toDomain(v dao.Voucher) domain.Voucher {
	return domain.Voucher{
		Id:                 v.Id,
		SN:                 v.SN,
		Title:              v.Title,
		Desc:               v.Description,
		Category:           v.Category,
		Brand:              v.Brand,
		Image:              v.Image,
		Terms:              v.Terms,
		PointsCost:         v.PointsCost,
		OriginalPrice:      v.OriginalPrice,
		DiscountPercentage: v.DiscountPercentage,
		TotalLimit:         v.TotalLimit,
		RemainingLimit:     v.RemainingLimit,
		UserLimit:          v.UserLimit,
		ExpiryDate:         v.ExpiryDate,
		Status:             domain.Status(v.Status),
		RedemptionCount:    v.RedemptionCount,
		Ctime:              v.Ctime,
		Utime:              v.Utime,
	}
}
