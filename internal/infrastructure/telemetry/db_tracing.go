package telemetry

import (
	"errors"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// DBTracingConfig configures database spans
type DBTracingConfig struct {
	DBName string
	// IncludeQueryVariables puts bound values into db.statement. Leave it off
	// outside development; partner rows carry tax ids.
	IncludeQueryVariables bool
	// TracerProvider overrides the global provider
	TracerProvider trace.TracerProvider
}

// DBTracingPlugin is a gorm.Plugin adding otelgorm spans plus table and
// row count attributes
type DBTracingPlugin struct {
	config DBTracingConfig
}

// NewDBTracingPlugin creates a new DBTracingPlugin
func NewDBTracingPlugin(cfg DBTracingConfig) *DBTracingPlugin {
	return &DBTracingPlugin{config: cfg}
}

// Name implements gorm.Plugin
func (p *DBTracingPlugin) Name() string {
	return "partners:db_tracing"
}

// Initialize implements gorm.Plugin
func (p *DBTracingPlugin) Initialize(db *gorm.DB) error {
	opts := []otelgorm.Option{otelgorm.WithDBName(p.config.DBName)}
	if !p.config.IncludeQueryVariables {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if p.config.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(p.config.TracerProvider))
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	cb := db.Callback()
	return errors.Join(
		cb.Create().After("gorm:create").Register("partners:span_attrs_create", annotateSpan),
		cb.Query().After("gorm:query").Register("partners:span_attrs_query", annotateSpan),
		cb.Update().After("gorm:update").Register("partners:span_attrs_update", annotateSpan),
		cb.Delete().After("gorm:delete").Register("partners:span_attrs_delete", annotateSpan),
		cb.Raw().After("gorm:raw").Register("partners:span_attrs_raw", annotateSpan),
	)
}

func annotateSpan(db *gorm.DB) {
	if db.Statement.Context == nil {
		return
	}
	span := trace.SpanFromContext(db.Statement.Context)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
}

var _ gorm.Plugin = (*DBTracingPlugin)(nil)
