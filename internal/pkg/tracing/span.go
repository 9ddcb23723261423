package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// TracerName — имя инструментирующей библиотеки.
const TracerName = "github.com/Kargones/ufe"

// Атрибуты span-ов.
const (
	AttrCommand          = attribute.Key("ufe.command")
	AttrExplanationNodes = attribute.Key("ufe.explanation.nodes")
	AttrExplanationDepth = attribute.Key("ufe.explanation.depth")
	AttrSummary          = attribute.Key("ufe.explanation.summary")
)

// StartCommandSpan открывает корневой span команды через глобальный TracerProvider.
func StartCommandSpan(ctx context.Context, command string) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, "ufe."+command,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(AttrCommand.String(command)),
	)
}

// RecordExplanation помечает span как ошибочный и добавляет сводку объяснения.
func RecordExplanation(span trace.Span, tree ufe.UserFacingError) {
	span.SetAttributes(
		AttrSummary.String(tree.Error.Summary),
		AttrExplanationNodes.Int(tree.Count()),
		AttrExplanationDepth.Int(tree.Depth()),
	)
	span.SetStatus(codes.Error, tree.Error.Summary)
}
