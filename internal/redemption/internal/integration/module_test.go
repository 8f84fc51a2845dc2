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

//go:build e2e

package integration

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/pointsmall/internal/redemption"
	testioc "github.com/ecodeclub/pointsmall/internal/test/ioc"
	"github.com/ecodeclub/pointsmall/internal/user"
	"github.com/ecodeclub/pointsmall/internal/voucher"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestRedemptionModule(t *testing.T) {
	suite.Run(t, new(RedemptionModuleTestSuite))
}

type RedemptionModuleTestSuite struct {
	suite.Suite
	db         *egorm.Component
	userSvc    user.Service
	voucherSvc voucher.Service
	svc        redemption.Service
}

func (s *RedemptionModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	ec := testioc.InitCache()
	um := user.InitModule(s.db, q, user.Config{WelcomePoints: 50000})
	vm := voucher.InitModule(s.db, ec, q)
	rm := redemption.InitModule(s.db, q, um.Svc, vm.Svc)
	s.userSvc = um.Svc
	s.voucherSvc = vm.Svc
	s.svc = rm.Svc
}

func (s *RedemptionModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `users`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `vouchers`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `redemptions`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `user_voucher_counters`").Error
	require.NoError(s.T(), err)
}

func (s *RedemptionModuleTestSuite) seedUser(uid, points int64) {
	now := time.Now().UnixMilli()
	err := s.db.Exec(
		"INSERT INTO `users` (`id`, `sn`, `name`, `role`, `points`, `status`, `ctime`, `utime`) VALUES (?, ?, ?, 1, ?, 1, ?, ?)",
		uid, fmt.Sprintf("sn-%d", uid), fmt.Sprintf("用户%d", uid), points, now, now).Error
	require.NoError(s.T(), err)
}

func (s *RedemptionModuleTestSuite) seedVoucher(pointsCost, totalLimit, userLimit int64) int64 {
	id, err := s.voucherSvc.Save(context.Background(), voucher.Voucher{
		Title:      "星巴克中杯拿铁",
		Desc:       "全国门店通用",
		Category:   "food",
		PointsCost: pointsCost,
		TotalLimit: totalLimit,
		UserLimit:  userLimit,
		ExpiryDate: time.Now().Add(24 * time.Hour).UnixMilli(),
		Status:     voucher.StatusOnShelf,
	})
	require.NoError(s.T(), err)
	return id
}

func (s *RedemptionModuleTestSuite) TestRedeemSuccess() {
	t := s.T()
	s.seedUser(1001, 1000)
	vid := s.seedVoucher(300, 5, 2)

	ctx := context.Background()
	res, err := s.svc.Redeem(ctx, 1001, vid)
	require.NoError(t, err)
	assert.Equal(t, "星巴克中杯拿铁", res.VoucherTitle)
	assert.Equal(t, int64(300), res.PointsUsed)
	assert.Equal(t, int64(700), res.RemainingPoints)
	assert.NotEmpty(t, res.SN)

	// 积分已经扣掉
	u, err := s.userSvc.Profile(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(700), u.Points)

	// 库存和兑换次数同步变化
	v, err := s.voucherSvc.FindById(ctx, vid)
	require.NoError(t, err)
	assert.Equal(t, int64(4), v.RemainingLimit)
	assert.Equal(t, int64(1), v.RedemptionCount)

	// 历史记录和统计
	rs, total, err := s.svc.List(ctx, 1001, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rs, 1)
	assert.Equal(t, vid, rs[0].VoucherId)
	assert.Equal(t, int64(300), rs[0].PointsUsed)

	stats, err := s.svc.Stats(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalRedemptions)
	assert.Equal(t, int64(300), stats.TotalPointsUsed)
}

func (s *RedemptionModuleTestSuite) TestRedeemInsufficientPoints() {
	t := s.T()
	s.seedUser(1002, 100)
	vid := s.seedVoucher(300, 5, 2)

	ctx := context.Background()
	_, err := s.svc.Redeem(ctx, 1002, vid)
	assert.ErrorIs(t, err, redemption.ErrInsufficientPoints)

	// 失败不会产生任何副作用
	u, err := s.userSvc.Profile(ctx, 1002)
	require.NoError(t, err)
	assert.Equal(t, int64(100), u.Points)
	v, err := s.voucherSvc.FindById(ctx, vid)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.RemainingLimit)
	assert.Equal(t, int64(0), v.RedemptionCount)
}

func (s *RedemptionModuleTestSuite) TestRedeemInsufficientPointsAfterFirstRedeem() {
	t := s.T()
	// 余额恰好只够兑换一次
	s.seedUser(1006, 100)
	vid := s.seedVoucher(100, 5, 2)

	ctx := context.Background()
	res, err := s.svc.Redeem(ctx, 1006, vid)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.RemainingPoints)

	// 第二次因为余额不足被拒绝，不是因为兑换上限
	_, err = s.svc.Redeem(ctx, 1006, vid)
	assert.ErrorIs(t, err, redemption.ErrInsufficientPoints)

	v, err := s.voucherSvc.FindById(ctx, vid)
	require.NoError(t, err)
	assert.Equal(t, int64(4), v.RemainingLimit)
	assert.Equal(t, int64(1), v.RedemptionCount)
}

func (s *RedemptionModuleTestSuite) TestRedeemInactiveUser() {
	t := s.T()
	s.seedUser(1007, 10000)
	vid := s.seedVoucher(300, 5, 2)
	// 模拟登录之后账号被停用
	err := s.db.Exec("UPDATE `users` SET `status` = 2 WHERE `id` = ?", int64(1007)).Error
	require.NoError(t, err)

	ctx := context.Background()
	_, err = s.svc.Redeem(ctx, 1007, vid)
	assert.ErrorIs(t, err, redemption.ErrUserInactive)

	// 没有任何副作用
	v, err := s.voucherSvc.FindById(ctx, vid)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.RemainingLimit)
	assert.Equal(t, int64(0), v.RedemptionCount)
}

func (s *RedemptionModuleTestSuite) TestRedeemUserNotFound() {
	t := s.T()
	vid := s.seedVoucher(300, 5, 2)
	// 用户和券的"没找到"是两个不同的错误
	_, err := s.svc.Redeem(context.Background(), 88888, vid)
	assert.ErrorIs(t, err, redemption.ErrUserNotFound)
	assert.NotErrorIs(t, err, redemption.ErrVoucherNotFound)
}

func (s *RedemptionModuleTestSuite) TestRedeemUserLimit() {
	t := s.T()
	s.seedUser(1003, 10000)
	vid := s.seedVoucher(300, 5, 1)

	ctx := context.Background()
	_, err := s.svc.Redeem(ctx, 1003, vid)
	require.NoError(t, err)
	_, err = s.svc.Redeem(ctx, 1003, vid)
	assert.ErrorIs(t, err, redemption.ErrUserLimitReached)

	// 只扣了一次积分，只扣了一个库存
	u, err := s.userSvc.Profile(ctx, 1003)
	require.NoError(t, err)
	assert.Equal(t, int64(9700), u.Points)
	v, err := s.voucherSvc.FindById(ctx, vid)
	require.NoError(t, err)
	assert.Equal(t, int64(4), v.RemainingLimit)
	assert.Equal(t, int64(1), v.RedemptionCount)
}

func (s *RedemptionModuleTestSuite) TestRedeemExpiredVoucher() {
	t := s.T()
	s.seedUser(1004, 10000)
	vid := s.seedVoucher(300, 5, 2)
	// 直接把过期时间改到过去
	err := s.db.Exec("UPDATE `vouchers` SET `expiry_date` = ? WHERE `id` = ?",
		time.Now().Add(-time.Hour).UnixMilli(), vid).Error
	require.NoError(t, err)

	_, err = s.svc.Redeem(context.Background(), 1004, vid)
	assert.ErrorIs(t, err, redemption.ErrVoucherUnavailable)
}

func (s *RedemptionModuleTestSuite) TestRedeemVoucherNotFound() {
	t := s.T()
	s.seedUser(1005, 10000)
	_, err := s.svc.Redeem(context.Background(), 1005, 99999)
	assert.ErrorIs(t, err, redemption.ErrVoucherNotFound)
}

func (s *RedemptionModuleTestSuite) TestConcurrentRedeemLastUnit() {
	t := s.T()
	const users = 5
	for i := int64(0); i < users; i++ {
		s.seedUser(2000+i, 10000)
	}
	vid := s.seedVoucher(300, 1, 1)

	var wg sync.WaitGroup
	errs := make([]error, users)
	for i := int64(0); i < users; i++ {
		wg.Add(1)
		go func(idx int64) {
			defer wg.Done()
			_, errs[idx] = s.svc.Redeem(context.Background(), 2000+idx, vid)
		}(i)
	}
	wg.Wait()

	var success int
	for _, err := range errs {
		if err == nil {
			success++
			continue
		}
		// 输掉竞争的请求拿到的是可重试或者已售罄错误
		assert.True(t,
			errors.Is(err, redemption.ErrConcurrentConflict) ||
				errors.Is(err, redemption.ErrVoucherUnavailable),
			"unexpected error: %v", err)
	}
	assert.Equal(t, 1, success)

	// 库存不会变成负数，兑换次数与成功数一致
	v, err := s.voucherSvc.FindById(context.Background(), vid)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.RemainingLimit)
	assert.Equal(t, int64(1), v.RedemptionCount)
	var count int64
	err = s.db.Table("redemptions").Where("voucher_id = ?", vid).Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
