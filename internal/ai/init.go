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

package ai

import (
	"sync"

	"github.com/ecodeclub/pointsmall/internal/ai/internal/repository"
	"github.com/ecodeclub/pointsmall/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/pointsmall/internal/ai/internal/service"
	"github.com/ego-component/egorm"
)

type Config struct {
	APIKey string
	Model  string
}

func initChatService(cfg Config, repo repository.ChatLogRepo) service.ChatService {
	return service.NewGeminiService(cfg.APIKey, cfg.Model, repo)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ChatLogDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewChatLogGORMDAO(db)
}
