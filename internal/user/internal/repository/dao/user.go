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
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 邮箱或者 Google 账号已经被占用
var ErrUserDuplicate = errors.New("用户已经存在")

// ErrPointsChanged 条件更新没命中，余额在读取之后被并发修改过
var ErrPointsChanged = errors.New("积分余额已被并发修改")

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByGoogle(ctx context.Context, sub string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	// DeductPoints 条件扣减，写入时刻余额不足或者被并发修改都会失败
	DeductPoints(ctx context.Context, uid int64, amount int64) error
	// AddPoints 无条件增加，发放积分和补偿回滚都走这里
	AddPoints(ctx context.Context, uid int64, amount int64) error
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{db: db}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if ud.isUniqueIndexError(err) {
		return 0, ErrUserDuplicate
	}
	return u.Id, err
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	err := ud.db.WithContext(ctx).Updates(&u).Error
	if ud.isUniqueIndexError(err) {
		return ErrUserDuplicate
	}
	return err
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) FindByGoogle(ctx context.Context, sub string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "google_sub = ?", sub).Error
	return u, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) DeductPoints(ctx context.Context, uid int64, amount int64) error {
	res := ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ? AND points >= ?", uid, amount).
		Updates(map[string]any{
			"points": gorm.Expr("points - ?", amount),
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// 区分不了是余额不足还是记录不存在，由上层结合读取时的校验来解释
		return ErrPointsChanged
	}
	return nil
}

func (ud *GORMUserDAO) AddPoints(ctx context.Context, uid int64, amount int64) error {
	res := ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", uid).
		Updates(map[string]any{
			"points": gorm.Expr("points + ?", amount),
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (ud *GORMUserDAO) isUniqueIndexError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

type User struct {
	Id       int64          `gorm:"primaryKey;autoIncrement"`
	SN       string         `gorm:"type:varchar(256);unique"`
	Email    sql.NullString `gorm:"type:varchar(256);unique"`
	Password string         `gorm:"type:varchar(256)"`
	Name     string         `gorm:"type:varchar(256);not null"`
	Avatar   string         `gorm:"type:varchar(512)"`
	// Google OAuth2 里面的 sub，扫码登录的用户才有
	GoogleSub sql.NullString `gorm:"type:varchar(256);unique"`
	Role      uint8          `gorm:"type:tinyint unsigned;not null;default:1;comment:角色 1=普通用户 2=管理员"`
	Points    int64          `gorm:"not null;default:0;comment:可用积分余额"`
	Status    uint8          `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=正常 2=停用"`
	Ctime     int64
	Utime     int64
}
