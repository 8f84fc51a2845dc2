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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/pointsmall/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// WelcomePointsConsumer 消费注册成功消息，发放注册积分
type WelcomePointsConsumer struct {
	repo     repository.UserRepository
	consumer mq.Consumer
	amount   int64
	logger   *elog.Component
}

func NewWelcomePointsConsumer(repo repository.UserRepository, q mq.MQ, amount int64) (*WelcomePointsConsumer, error) {
	groupID := "welcome_points"
	consumer, err := q.Consumer(RegistrationEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &WelcomePointsConsumer{
		repo:     repo,
		consumer: consumer,
		amount:   amount,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *WelcomePointsConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费注册事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *WelcomePointsConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt RegistrationEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.repo.AddPoints(ctx, evt.Uid, c.amount)
	if err != nil {
		c.logger.Error("发放注册积分失败",
			elog.FieldErr(err),
			elog.Int64("uid", evt.Uid),
		)
	}
	return nil
}

func (c *WelcomePointsConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
