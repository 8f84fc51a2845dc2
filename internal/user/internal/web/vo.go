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

package web

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleCallback struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

type EditReq struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

type Profile struct {
	Id      int64  `json:"id,omitempty"`
	SN      string `json:"sn,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Avatar  string `json:"avatar"`
	Points  int64  `json:"points"`
	IsAdmin bool   `json:"isAdmin"`
}
