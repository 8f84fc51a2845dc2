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
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

const RedemptionEvents = "redemption_events"

// RedemptionEvent 兑换成功之后由兑换引擎发出
type RedemptionEvent struct {
	Uid        int64 `json:"uid"`
	VoucherId  int64 `json:"voucherId"`
	PointsUsed int64 `json:"pointsUsed"`
}

// RedemptionEventConsumer 消费兑换成功消息，清掉详情和统计缓存
type RedemptionEventConsumer struct {
	svc      service.VoucherService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewRedemptionEventConsumer(svc service.VoucherService, q mq.MQ) (*RedemptionEventConsumer, error) {
	groupID := "voucher_cache_eviction"
	consumer, err := q.Consumer(RedemptionEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &RedemptionEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *RedemptionEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费兑换事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *RedemptionEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt RedemptionEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	c.svc.EvictCache(ctx, evt.VoucherId)
	return nil
}

func (c *RedemptionEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
