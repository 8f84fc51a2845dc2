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

package redemption

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/event"
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/repository/dao"
	"github.com/ego-component/egorm"
)

func initRedemptionEventProducer(q mq.MQ) *event.RedemptionEventProducer {
	p, err := event.NewRedemptionEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.RedemptionDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewRedemptionGORMDAO(db)
}
