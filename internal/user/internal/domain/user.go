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

package domain

type User struct {
	Id     int64
	SN     string
	Email  string
	Name   string
	Avatar string
	// bcrypt 之后的密码，对外序列化的时候不会带出去
	Password string
	Role     Role
	// 可用积分余额，只能由积分模块修改
	Points int64
	Status Status

	GoogleInfo GoogleInfo
}

func (u User) IsActive() bool {
	return u.Status == StatusActive
}

type GoogleInfo struct {
	Sub    string
	Email  string
	Name   string
	Avatar string
}

type Role uint8

const (
	RoleUser Role = 1
	// RoleAdmin 可以访问 admin 服务上的接口
	RoleAdmin Role = 2
)

func (r Role) ToUint8() uint8 {
	return uint8(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type Status uint8

const (
	StatusActive   Status = 1
	StatusInactive Status = 2
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}
