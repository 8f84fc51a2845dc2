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
	"testing"
	"time"

	testioc "github.com/ecodeclub/pointsmall/internal/test/ioc"
	"github.com/ecodeclub/pointsmall/internal/voucher"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestVoucherModule(t *testing.T) {
	suite.Run(t, new(VoucherModuleTestSuite))
}

type VoucherModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc voucher.Service
	mod *voucher.Module
}

func (s *VoucherModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.mod = voucher.InitModule(s.db, testioc.InitCache(), testioc.InitMQ())
	s.svc = s.mod.Svc
}

func (s *VoucherModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `vouchers`").Error
	require.NoError(s.T(), err)
}

func (s *VoucherModuleTestSuite) save(title, category string, pointsCost int64) int64 {
	id, err := s.svc.Save(context.Background(), voucher.Voucher{
		Title:      title,
		Category:   category,
		PointsCost: pointsCost,
		TotalLimit: 10,
		UserLimit:  1,
		ExpiryDate: time.Now().Add(24 * time.Hour).UnixMilli(),
		Status:     voucher.StatusOnShelf,
	})
	require.NoError(s.T(), err)
	return id
}

func (s *VoucherModuleTestSuite) TestSaveAndDetail() {
	t := s.T()
	id := s.save("肯德基全家桶", "food", 800)
	v, err := s.svc.Detail(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "肯德基全家桶", v.Title)
	assert.NotEmpty(t, v.SN)
	// 初始剩余库存等于总库存
	assert.Equal(t, v.TotalLimit, v.RemainingLimit)
}

func (s *VoucherModuleTestSuite) TestTotalLimitImmutable() {
	t := s.T()
	id := s.save("电影票", "entertainment", 600)
	_, err := s.svc.Save(context.Background(), voucher.Voucher{
		Id:         id,
		Title:      "电影票",
		Category:   "entertainment",
		PointsCost: 600,
		TotalLimit: 999,
		UserLimit:  1,
		ExpiryDate: time.Now().Add(24 * time.Hour).UnixMilli(),
	})
	assert.Error(t, err)
}

func (s *VoucherModuleTestSuite) TestSaveUpdateKeepsStatus() {
	t := s.T()
	id := s.save("外卖红包", "food", 200)
	// 更新的时候不传状态，保持原来的上架状态
	_, err := s.svc.Save(context.Background(), voucher.Voucher{
		Id:         id,
		Title:      "外卖大红包",
		Category:   "food",
		PointsCost: 200,
		UserLimit:  1,
		ExpiryDate: time.Now().Add(24 * time.Hour).UnixMilli(),
	})
	require.NoError(t, err)

	v, err := s.svc.FindById(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "外卖大红包", v.Title)
	assert.Equal(t, voucher.StatusOnShelf, v.Status)
}

func (s *VoucherModuleTestSuite) TestListFilterAndSort() {
	t := s.T()
	s.save("咖啡券", "food", 300)
	s.save("奶茶券", "food", 100)
	s.save("打车券", "travel", 500)

	ctx := context.Background()
	vs, total, err := s.svc.List(ctx, voucher.Query{Category: "food", Sort: "points_asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, vs, 2)
	assert.Equal(t, "奶茶券", vs[0].Title)
	assert.Equal(t, "咖啡券", vs[1].Title)

	vs, total, err = s.svc.List(ctx, voucher.Query{MinPoints: 400})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, vs, 1)
	assert.Equal(t, "打车券", vs[0].Title)

	cats, err := s.svc.Categories(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"food", "travel"}, cats)
}

func (s *VoucherModuleTestSuite) TestDeactivateExpired() {
	t := s.T()
	id := s.save("过期券", "food", 100)
	err := s.db.Exec("UPDATE `vouchers` SET `expiry_date` = ? WHERE `id` = ?",
		time.Now().Add(-time.Hour).UnixMilli(), id).Error
	require.NoError(t, err)

	count, err := s.svc.DeactivateExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	v, err := s.svc.FindById(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, voucher.StatusOffShelf, v.Status)

	// 下架之后对 C 端列表不可见
	_, total, err := s.svc.List(context.Background(), voucher.Query{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func (s *VoucherModuleTestSuite) TestStockOperations() {
	t := s.T()
	id := s.save("库存券", "food", 100)
	ctx := context.Background()

	require.NoError(t, s.svc.DecrementStock(ctx, id))
	v, err := s.svc.FindById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(9), v.RemainingLimit)
	assert.Equal(t, int64(1), v.RedemptionCount)

	require.NoError(t, s.svc.RestoreStock(ctx, id))
	v, err = s.svc.FindById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(10), v.RemainingLimit)
	assert.Equal(t, int64(0), v.RedemptionCount)

	// 已经满库存的时候回滚是非法的
	err = s.svc.RestoreStock(ctx, id)
	assert.ErrorIs(t, err, voucher.ErrStockChanged)
}
