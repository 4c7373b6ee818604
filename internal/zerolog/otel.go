package zerolog

import (
	"context"

	"github.com/agoda-com/opentelemetry-go/otelzerolog"
	"github.com/agoda-com/opentelemetry-logs-go/exporters/otlp/otlplogs"
	"github.com/agoda-com/opentelemetry-logs-go/exporters/otlp/otlplogs/otlplogshttp"
	sdklogs "github.com/agoda-com/opentelemetry-logs-go/sdk/logs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/Byzantine-Finance/operator-sdk/pkg/version"
)

func init() {
	InitDefaultLogger()
}

func InitDefaultLogger() {
	ctx := context.Background()
	exporter, _ := otlplogs.NewExporter(ctx, otlplogs.WithClient(otlplogshttp.NewClient()))
	loggerProvider := sdklogs.NewLoggerProvider(
		sdklogs.WithBatcher(
			exporter,
			sdklogs.WithMaxExportBatchSize(512),
		),
		sdklogs.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("byzantine-operator-sdk"),
			semconv.ServiceVersion(version.Version),
		)),
	)
	hook := otelzerolog.NewHook(loggerProvider)
	loggerVal := log.With().Caller().Logger()
	loggerVal = loggerVal.Hook(hook)
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.DefaultContextLogger = &loggerVal
}
