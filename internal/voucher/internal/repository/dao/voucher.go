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

	"github.com/ecodeclub/pointsmall/internal/voucher/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrStockChanged 条件更新没命中，库存在读取之后被并发修改过，或者状态变了
	ErrStockChanged = errors.New("库存已被并发修改")
)

// 排序白名单，防止把用户输入拼进 ORDER BY
var sortColumns = map[string]string{
	"newest":      "ctime DESC",
	"points_asc":  "points_cost ASC",
	"points_desc": "points_cost DESC",
	"popular":     "redemption_count DESC",
}

type VoucherDAO interface {
	Create(ctx context.Context, v Voucher) (int64, error)
	Update(ctx context.Context, v Voucher) error
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (Voucher, error)
	List(ctx context.Context, q domain.Query) ([]Voucher, error)
	Count(ctx context.Context, q domain.Query) (int64, error)
	Categories(ctx context.Context) ([]string, error)
	TopRedeemed(ctx context.Context, limit int) ([]Voucher, error)
	LowRedeemed(ctx context.Context, threshold int64, limit int) ([]Voucher, error)
	CategoryStats(ctx context.Context) ([]CategoryStat, error)
	Recent(ctx context.Context, limit int) ([]Voucher, error)
	// DecrementStock 写入时刻校验可兑换性，剩余库存减一的同时兑换次数加一
	DecrementStock(ctx context.Context, id int64, now int64) error
	// RestoreStock 兑换失败之后的补偿回滚
	RestoreStock(ctx context.Context, id int64) error
	FindExpired(ctx context.Context, now int64, limit int) ([]int64, error)
	DeactivateByIds(ctx context.Context, ids []int64) (int64, error)
}

type VoucherGORMDAO struct {
	db *egorm.Component
}

func NewVoucherGORMDAO(db *egorm.Component) VoucherDAO {
	return &VoucherGORMDAO{db: db}
}

func (d *VoucherGORMDAO) Create(ctx context.Context, v Voucher) (int64, error) {
	now := time.Now().UnixMilli()
	v.Ctime, v.Utime = now, now
	err := d.db.WithContext(ctx).Create(&v).Error
	return v.Id, err
}

func (d *VoucherGORMDAO) Update(ctx context.Context, v Voucher) error {
	v.Utime = time.Now().UnixMilli()
	// 库存字段只能走 DecrementStock/RestoreStock，这里不让改
	return d.db.WithContext(ctx).Model(&Voucher{}).
		Where("id = ?", v.Id).
		Select("Title", "Description", "Category", "Brand", "Image", "Terms",
			"PointsCost", "OriginalPrice", "DiscountPercentage",
			"UserLimit", "ExpiryDate", "Status", "Utime").
		Updates(&v).Error
}

func (d *VoucherGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Delete(&Voucher{}, "id = ?", id).Error
}

func (d *VoucherGORMDAO) FindById(ctx context.Context, id int64) (Voucher, error) {
	var res Voucher
	err := d.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (d *VoucherGORMDAO) List(ctx context.Context, q domain.Query) ([]Voucher, error) {
	var res []Voucher
	order, ok := sortColumns[q.Sort]
	if !ok {
		order = sortColumns["newest"]
	}
	err := d.listQuery(ctx, q).
		Order(order).
		Offset(q.Offset).Limit(q.Limit).
		Find(&res).Error
	return res, err
}

func (d *VoucherGORMDAO) Count(ctx context.Context, q domain.Query) (int64, error) {
	var count int64
	err := d.listQuery(ctx, q).Count(&count).Error
	return count, err
}

func (d *VoucherGORMDAO) listQuery(ctx context.Context, q domain.Query) *gorm.DB {
	now := time.Now().UnixMilli()
	query := d.db.WithContext(ctx).Model(&Voucher{}).
		Where("status = ? AND expiry_date > ?", domain.StatusOnShelf.ToUint8(), now)
	if q.Category != "" && q.Category != "all" {
		query = query.Where("category = ?", q.Category)
	}
	if q.MinPoints > 0 {
		query = query.Where("points_cost >= ?", q.MinPoints)
	}
	if q.MaxPoints > 0 {
		query = query.Where("points_cost <= ?", q.MaxPoints)
	}
	return query
}

func (d *VoucherGORMDAO) Categories(ctx context.Context) ([]string, error) {
	var res []string
	err := d.db.WithContext(ctx).Model(&Voucher{}).
		Distinct("category").
		Where("status = ?", domain.StatusOnShelf.ToUint8()).
		Pluck("category", &res).Error
	return res, err
}

func (d *VoucherGORMDAO) TopRedeemed(ctx context.Context, limit int) ([]Voucher, error) {
	var res []Voucher
	err := d.db.WithContext(ctx).
		Where("status = ?", domain.StatusOnShelf.ToUint8()).
		Order("redemption_count DESC").Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *VoucherGORMDAO) LowRedeemed(ctx context.Context, threshold int64, limit int) ([]Voucher, error) {
	var res []Voucher
	err := d.db.WithContext(ctx).
		Where("status = ? AND redemption_count < ?", domain.StatusOnShelf.ToUint8(), threshold).
		Order("redemption_count ASC").Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *VoucherGORMDAO) CategoryStats(ctx context.Context) ([]CategoryStat, error) {
	var res []CategoryStat
	err := d.db.WithContext(ctx).Model(&Voucher{}).
		Select("category, COUNT(id) AS total_vouchers, " +
			"COALESCE(SUM(redemption_count), 0) AS total_redemptions, " +
			"COALESCE(AVG(points_cost), 0) AS avg_points_cost").
		Where("status = ?", domain.StatusOnShelf.ToUint8()).
		Group("category").
		Scan(&res).Error
	return res, err
}

func (d *VoucherGORMDAO) Recent(ctx context.Context, limit int) ([]Voucher, error) {
	var res []Voucher
	err := d.db.WithContext(ctx).
		Where("status = ?", domain.StatusOnShelf.ToUint8()).
		Order("ctime DESC").Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *VoucherGORMDAO) DecrementStock(ctx context.Context, id int64, now int64) error {
	res := d.db.WithContext(ctx).Model(&Voucher{}).
		Where("id = ? AND status = ? AND expiry_date > ? AND remaining_limit > 0",
			id, domain.StatusOnShelf.ToUint8(), now).
		Updates(map[string]any{
			"remaining_limit":  gorm.Expr("remaining_limit - 1"),
			"redemption_count": gorm.Expr("redemption_count + 1"),
			"utime":            now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStockChanged
	}
	return nil
}

func (d *VoucherGORMDAO) RestoreStock(ctx context.Context, id int64) error {
	res := d.db.WithContext(ctx).Model(&Voucher{}).
		Where("id = ? AND remaining_limit < total_limit", id).
		Updates(map[string]any{
			"remaining_limit":  gorm.Expr("remaining_limit + 1"),
			"redemption_count": gorm.Expr("redemption_count - 1"),
			"utime":            time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStockChanged
	}
	return nil
}

func (d *VoucherGORMDAO) FindExpired(ctx context.Context, now int64, limit int) ([]int64, error) {
	var ids []int64
	err := d.db.WithContext(ctx).Model(&Voucher{}).
		Where("status = ? AND expiry_date <= ?", domain.StatusOnShelf.ToUint8(), now).
		Limit(limit).
		Pluck("id", &ids).Error
	return ids, err
}

func (d *VoucherGORMDAO) DeactivateByIds(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := d.db.WithContext(ctx).Model(&Voucher{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"status": domain.StatusOffShelf.ToUint8(),
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

type Voucher struct {
	Id                 int64  `gorm:"primaryKey;autoIncrement;comment:兑换券自增ID"`
	SN                 string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_voucher_sn;comment:兑换券对外展示ID"`
	Title              string `gorm:"type:varchar(255);not null;comment:兑换券名称"`
	Description        string `gorm:"not null;comment:兑换券描述"`
	Category           string `gorm:"type:varchar(255);not null;index:idx_category;comment:分类"`
	Brand              string `gorm:"type:varchar(255);not null;default:'';comment:品牌"`
	Image              string `gorm:"type:varchar(512);not null;default:'';comment:缩略图,CDN绝对路径"`
	Terms              string `gorm:"not null;default:'';comment:使用条款"`
	PointsCost         int64  `gorm:"not null;index:idx_points_cost;comment:兑换一次需要的积分"`
	OriginalPrice      int64  `gorm:"not null;comment:原价;单位为分, 999表示9.99元"`
	DiscountPercentage int64  `gorm:"not null;default:0;comment:折扣百分比"`
	TotalLimit         int64  `gorm:"not null;comment:总库存"`
	RemainingLimit     int64  `gorm:"not null;comment:剩余库存"`
	UserLimit          int64  `gorm:"not null;default:1;comment:单个用户最多兑换次数"`
	ExpiryDate         int64  `gorm:"not null;index:idx_expiry_date;comment:过期时间,毫秒时间戳"`
	Status             uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	RedemptionCount    int64  `gorm:"not null;default:0;comment:成功兑换次数"`
	Ctime              int64
	Utime              int64
}

type CategoryStat struct {
	Category         string
	TotalVouchers    int64
	TotalRedemptions int64
	AvgPointsCost    float64
}
