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
	"time"

	"github.com/ego-component/egorm"
)

const (
	ChatStatusSuccess uint8 = 1
	ChatStatusFailed  uint8 = 2
)

type ChatLogDAO interface {
	Insert(ctx context.Context, l ChatLog) (int64, error)
}

type ChatLogGORMDAO struct {
	db *egorm.Component
}

func NewChatLogGORMDAO(db *egorm.Component) ChatLogDAO {
	return &ChatLogGORMDAO{db: db}
}

func (d *ChatLogGORMDAO) Insert(ctx context.Context, l ChatLog) (int64, error) {
	now := time.Now().UnixMilli()
	l.Ctime, l.Utime = now, now
	err := d.db.WithContext(ctx).Create(&l).Error
	return l.Id, err
}

type ChatLog struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	Uid      int64  `gorm:"not null;index:idx_uid;comment:用户ID"`
	Question string `gorm:"not null;comment:用户提问"`
	Answer   string `gorm:"comment:模型回答"`
	Tokens   int64  `gorm:"not null;default:0;comment:消耗的token总数"`
	Status   uint8  `gorm:"type:tinyint unsigned;not null;comment:状态 1=成功 2=失败"`
	Ctime    int64
	Utime    int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&ChatLog{})
}
