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

package job

import (
	"context"

	"github.com/ecodeclub/pointsmall/internal/voucher/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// DeactivateExpiredVouchersJob 定时下架过期兑换券
type DeactivateExpiredVouchersJob struct {
	svc    service.VoucherService
	logger *elog.Component
}

func NewDeactivateExpiredVouchersJob(svc service.VoucherService) *DeactivateExpiredVouchersJob {
	return &DeactivateExpiredVouchersJob{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (j *DeactivateExpiredVouchersJob) Name() string {
	return "DeactivateExpiredVouchers"
}

func (j *DeactivateExpiredVouchersJob) Run(ctx context.Context) error {
	count, err := j.svc.DeactivateExpired(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		j.logger.Info("下架过期兑换券", elog.Int64("count", count))
	}
	return nil
}
