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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrUserLimitExceeded 计数行条件更新没命中，该用户在这张券上的兑换次数已经到顶
	ErrUserLimitExceeded = errors.New("超出单用户兑换上限")
)

type RedemptionDAO interface {
	// Create 在同一事务里递增用户计数并落兑换流水。
	// 计数行带 count < userLimit 的条件更新，并发场景下最多只有 userLimit 个事务能成功。
	Create(ctx context.Context, r Redemption, userLimit int64) (int64, error)
	CountByUserAndVoucher(ctx context.Context, uid, voucherId int64) (int64, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Redemption, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	StatsByUid(ctx context.Context, uid int64) (Stats, error)
	CategoryCountsByUid(ctx context.Context, uid int64) ([]CategoryCount, error)
}

type RedemptionGORMDAO struct {
	db *egorm.Component
}

func NewRedemptionGORMDAO(db *egorm.Component) RedemptionDAO {
	return &RedemptionGORMDAO{db: db}
}

func (d *RedemptionGORMDAO) Create(ctx context.Context, r Redemption, userLimit int64) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 确保计数行存在，并发插入靠唯一索引兜底
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&UserVoucherCounter{
				Uid:       r.Uid,
				VoucherId: r.VoucherId,
				Ctime:     now,
				Utime:     now,
			}).Error
		if err != nil {
			return err
		}
		res := tx.Model(&UserVoucherCounter{}).
			Where("uid = ? AND voucher_id = ? AND count < ?", r.Uid, r.VoucherId, userLimit).
			Updates(map[string]any{
				"count": gorm.Expr("count + 1"),
				"utime": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserLimitExceeded
		}
		return tx.Create(&r).Error
	})
	return r.Id, err
}

func (d *RedemptionGORMDAO) CountByUserAndVoucher(ctx context.Context, uid, voucherId int64) (int64, error) {
	var c UserVoucherCounter
	err := d.db.WithContext(ctx).
		Where("uid = ? AND voucher_id = ?", uid, voucherId).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	return c.Count, err
}

func (d *RedemptionGORMDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Redemption, error) {
	var res []Redemption
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("redeemed_at DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *RedemptionGORMDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Redemption{}).
		Where("uid = ?", uid).
		Count(&count).Error
	return count, err
}

func (d *RedemptionGORMDAO) StatsByUid(ctx context.Context, uid int64) (Stats, error) {
	var res Stats
	err := d.db.WithContext(ctx).Model(&Redemption{}).
		Select("COUNT(id) AS total_redemptions, COALESCE(SUM(points_used), 0) AS total_points_used").
		Where("uid = ?", uid).
		Scan(&res).Error
	return res, err
}

func (d *RedemptionGORMDAO) CategoryCountsByUid(ctx context.Context, uid int64) ([]CategoryCount, error) {
	var res []CategoryCount
	err := d.db.WithContext(ctx).Model(&Redemption{}).
		Select("voucher_category AS category, COUNT(id) AS count").
		Where("uid = ?", uid).
		Group("voucher_category").
		Scan(&res).Error
	return res, err
}

type Redemption struct {
	Id              int64  `gorm:"primaryKey;autoIncrement;comment:兑换流水自增ID"`
	SN              string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_redemption_sn;comment:兑换流水号"`
	Uid             int64  `gorm:"not null;index:idx_uid;comment:用户ID"`
	VoucherId       int64  `gorm:"not null;index:idx_voucher_id;comment:兑换券ID"`
	VoucherTitle    string `gorm:"type:varchar(255);not null;comment:兑换时的券名称快照"`
	VoucherCategory string `gorm:"type:varchar(255);not null;default:'';comment:兑换时的券分类快照"`
	PointsUsed      int64  `gorm:"not null;comment:本次兑换消耗的积分"`
	RedeemedAt      int64  `gorm:"not null;comment:兑换时刻,毫秒时间戳"`
	Ctime           int64
	Utime           int64
}

// UserVoucherCounter 单用户在单张券上的累计兑换次数，唯一索引保证一行
type UserVoucherCounter struct {
	Id        int64 `gorm:"primaryKey;autoIncrement"`
	Uid       int64 `gorm:"not null;uniqueIndex:uniq_uid_voucher_id,priority:1"`
	VoucherId int64 `gorm:"not null;uniqueIndex:uniq_uid_voucher_id,priority:2"`
	Count     int64 `gorm:"not null;default:0;comment:已成功兑换次数"`
	Ctime     int64
	Utime     int64
}

type Stats struct {
	TotalRedemptions int64
	TotalPointsUsed  int64
}

type CategoryCount struct {
	Category string
	Count    int64
}
