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

package database

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const instrumentationName = "internal/pkg/database/tracing"

// GormTracingPlugin 给所有数据库操作加上 OpenTelemetry 追踪
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Query().Before("gorm:query").
		Register("tracing:before_query", p.before("gorm.query", "SELECT")); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").
		Register("tracing:after_query", p.after); err != nil {
		return err
	}
	if err := db.Callback().Create().Before("gorm:create").
		Register("tracing:before_create", p.before("gorm.create", "INSERT")); err != nil {
		return err
	}
	if err := db.Callback().Create().After("gorm:create").
		Register("tracing:after_create", p.after); err != nil {
		return err
	}
	if err := db.Callback().Update().Before("gorm:update").
		Register("tracing:before_update", p.before("gorm.update", "UPDATE")); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").
		Register("tracing:after_update", p.after); err != nil {
		return err
	}
	if err := db.Callback().Delete().Before("gorm:delete").
		Register("tracing:before_delete", p.before("gorm.delete", "DELETE")); err != nil {
		return err
	}
	if err := db.Callback().Delete().After("gorm:delete").
		Register("tracing:after_delete", p.after); err != nil {
		return err
	}
	if err := db.Callback().Raw().Before("gorm:raw").
		Register("tracing:before_raw", p.before("gorm.raw", "RAW")); err != nil {
		return err
	}
	return db.Callback().Raw().After("gorm:raw").
		Register("tracing:after_raw", p.after)
}

func (p *GormTracingPlugin) before(spanName, op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx, span := p.tracer.Start(db.Statement.Context, spanName,
			trace.WithSpanKind(trace.SpanKindClient))
		span.SetAttributes(
			attribute.String("db.system", "mysql"),
			attribute.String("db.operation", op),
		)
		if db.Statement.Table != "" {
			span.SetAttributes(attribute.String("db.table", db.Statement.Table))
		}
		db.Statement.Context = ctx
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	span := trace.SpanFromContext(db.Statement.Context)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.String("db.statement", db.Statement.SQL.String()),
		attribute.Int64("db.rows_affected", db.RowsAffected),
	)
	// ErrRecordNotFound 是正常业务路径，不算失败
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
	}
	span.End()
}
