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

package user

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/pointsmall/internal/user/internal/event"
	"github.com/ecodeclub/pointsmall/internal/user/internal/repository"
	"github.com/ecodeclub/pointsmall/internal/user/internal/repository/dao"
	"github.com/ecodeclub/pointsmall/internal/user/internal/service"
	"github.com/ego-component/egorm"
)

// Config 由 ioc 从配置文件里解析出来再传进来
type Config struct {
	// 注册成功之后发放的积分
	WelcomePoints int64
	Google        GoogleConfig
}

type GoogleConfig struct {
	ClientId     string
	ClientSecret string
	RedirectURL  string
}

func initGoogleService(cfg Config) service.OAuth2Service {
	return service.NewGoogleService(cfg.Google.ClientId, cfg.Google.ClientSecret, cfg.Google.RedirectURL)
}

func initRegistrationEventProducer(q mq.MQ) *event.RegistrationEventProducer {
	p, err := event.NewRegistrationEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

func initWelcomePointsConsumer(repo repository.UserRepository, q mq.MQ, cfg Config) *event.WelcomePointsConsumer {
	c, err := event.NewWelcomePointsConsumer(repo, q, cfg.WelcomePoints)
	if err != nil {
		panic(err)
	}
	return c
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.UserDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMUserDAO(db)
}
