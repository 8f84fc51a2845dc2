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
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	testioc "github.com/ecodeclub/pointsmall/internal/test/ioc"
	"github.com/ecodeclub/pointsmall/internal/user"
	"github.com/ecodeclub/pointsmall/internal/user/internal/event"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestUserModule(t *testing.T) {
	suite.Run(t, new(UserModuleTestSuite))
}

type UserModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	q   mq.MQ
	mod *user.Module
	svc user.Service
}

func (s *UserModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.q = testioc.InitMQ()
	s.mod = user.InitModule(s.db, s.q, user.Config{WelcomePoints: 50000})
	s.svc = s.mod.Svc
}

func (s *UserModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *UserModuleTestSuite) seedUser(uid, points int64) {
	now := time.Now().UnixMilli()
	err := s.db.Exec(
		"INSERT INTO `users` (`id`, `sn`, `name`, `role`, `points`, `status`, `ctime`, `utime`) VALUES (?, ?, ?, 1, ?, 1, ?, ?)",
		uid, fmt.Sprintf("sn-%d", uid), fmt.Sprintf("用户%d", uid), points, now, now).Error
	require.NoError(s.T(), err)
}

func (s *UserModuleTestSuite) TestDeductPoints() {
	t := s.T()
	s.seedUser(3001, 500)
	ctx := context.Background()

	require.NoError(t, s.svc.DeductPoints(ctx, 3001, 300))
	u, err := s.svc.Profile(ctx, 3001)
	require.NoError(t, err)
	assert.Equal(t, int64(200), u.Points)

	// 余额不够的时候条件更新不命中
	err = s.svc.DeductPoints(ctx, 3001, 300)
	assert.ErrorIs(t, err, user.ErrPointsChanged)
	u, err = s.svc.Profile(ctx, 3001)
	require.NoError(t, err)
	assert.Equal(t, int64(200), u.Points)
}

func (s *UserModuleTestSuite) TestConcurrentDeduct() {
	t := s.T()
	// 余额只够 3 次扣减
	s.seedUser(3002, 300)
	const attempts = 10
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			errs[idx] = s.svc.DeductPoints(context.Background(), 3002, 100)
		}(i)
	}
	wg.Wait()

	var success int
	for _, err := range errs {
		if err == nil {
			success++
		} else {
			assert.ErrorIs(t, err, user.ErrPointsChanged)
		}
	}
	assert.Equal(t, 3, success)

	// 余额永远不会变成负数
	u, err := s.svc.Profile(context.Background(), 3002)
	require.NoError(t, err)
	assert.Equal(t, int64(0), u.Points)
}

func (s *UserModuleTestSuite) TestWelcomePointsConsumer() {
	t := s.T()
	// 注册事件的消费者负责发放注册积分
	s.seedUser(3004, 0)

	producer, err := s.q.Producer(event.RegistrationEvents)
	require.NoError(t, err)
	data, err := json.Marshal(event.RegistrationEvent{Uid: 3004})
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = producer.Produce(ctx, &mq.Message{Value: data})
	require.NoError(t, err)

	err = s.mod.C.Consume(ctx)
	require.NoError(t, err)

	u, err := s.svc.Profile(ctx, 3004)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), u.Points)
}

func (s *UserModuleTestSuite) TestRefundPoints() {
	t := s.T()
	s.seedUser(3003, 100)
	ctx := context.Background()
	require.NoError(t, s.svc.RefundPoints(ctx, 3003, 200))
	u, err := s.svc.Profile(ctx, 3003)
	require.NoError(t, err)
	assert.Equal(t, int64(300), u.Points)
}
