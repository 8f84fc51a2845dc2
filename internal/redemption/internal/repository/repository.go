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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/domain"
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/repository/dao"
)

var ErrUserLimitExceeded = dao.ErrUserLimitExceeded

type RedemptionRepository interface {
	Create(ctx context.Context, r domain.Redemption, userLimit int64) (int64, error)
	CountByUserAndVoucher(ctx context.Context, uid, voucherId int64) (int64, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Redemption, int64, error)
	StatsByUid(ctx context.Context, uid int64) (domain.Stats, error)
}

type redemptionRepository struct {
	dao dao.RedemptionDAO
}

func NewRedemptionRepository(d dao.RedemptionDAO) RedemptionRepository {
	return &redemptionRepository{dao: d}
}

func (r *redemptionRepository) Create(ctx context.Context, red domain.Redemption, userLimit int64) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(red), userLimit)
}

func (r *redemptionRepository) CountByUserAndVoucher(ctx context.Context, uid, voucherId int64) (int64, error) {
	return r.dao.CountByUserAndVoucher(ctx, uid, voucherId)
}

func (r *redemptionRepository) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Redemption, int64, error) {
	rs, err := r.dao.ListByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	count, err := r.dao.CountByUid(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(rs, func(idx int, src dao.Redemption) domain.Redemption {
		return r.toDomain(src)
	}), count, nil
}

func (r *redemptionRepository) StatsByUid(ctx context.Context, uid int64) (domain.Stats, error) {
	stats, err := r.dao.StatsByUid(ctx, uid)
	if err != nil {
		return domain.Stats{}, err
	}
	counts, err := r.dao.CategoryCountsByUid(ctx, uid)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{
		TotalRedemptions: stats.TotalRedemptions,
		TotalPointsUsed:  stats.TotalPointsUsed,
		CategoryCounts: slice.Map(counts, func(idx int, src dao.CategoryCount) domain.CategoryCount {
			return domain.CategoryCount{
				Category: src.Category,
				Count:    src.Count,
			}
		}),
	}, nil
}

func (r *redemptionRepository) toEntity(red domain.Redemption) dao.Redemption {
	return dao.Redemption{
		Id:              red.Id,
		SN:              red.SN,
		Uid:             red.Uid,
		VoucherId:       red.VoucherId,
		VoucherTitle:    red.VoucherTitle,
		VoucherCategory: red.VoucherCategory,
		PointsUsed:      red.PointsUsed,
		RedeemedAt:      red.RedeemedAt,
	}
}

func (r *redemptionRepository) toDomain(red dao.Redemption) domain.Redemption {
	return domain.Redemption{
		Id:              red.Id,
		SN:              red.SN,
		Uid:             red.Uid,
		VoucherId:       red.VoucherId,
		VoucherTitle:    red.VoucherTitle,
		VoucherCategory: red.VoucherCategory,
		PointsUsed:      red.PointsUsed,
		RedeemedAt:      red.RedeemedAt,
	}
}
