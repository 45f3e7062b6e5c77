package main

import (
	"encoding/json"
	"fmt"

	"github.com/lampyrid/lampyrid-go/pkg/firefly"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"
)

// fireflyTools holds the Firefly III client and implements all tool handlers
type fireflyTools struct {
	client *firefly.Client
	logger firefly.Logger
}

// toolError renders a classified error report as a tool-level failure. The
// model sees the report; raw upstream payloads and tokens never pass
// through here.
func toolError(err error) *mcp.CallToolResult {
	report := firefly.Report(err)
	payload, marshalErr := json.Marshal(report)
	if marshalErr != nil {
		payload = []byte(fmt.Sprintf(`{"kind":%q,"message":"failed to encode error report"}`, firefly.KindInternal))
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
	}
}

// recovered converts a handler panic into an internal error result so a
// single bad request cannot take the server down.
func (t *fireflyTools) recovered(tool string, r any) *mcp.CallToolResult {
	err := fmt.Errorf("panic in %s: %v", tool, r)
	if t.logger != nil {
		t.logger.Error("tool handler panicked", "tool", tool, "panic", r)
	}
	return toolError(err)
}

// parseOptionalDate parses a date string, treating empty as absent
func parseOptionalDate(field, value string) (*firefly.Date, error) {
	if value == "" {
		return nil, nil
	}
	d, err := firefly.ParseDate(value)
	if err != nil {
		return nil, &firefly.ValidationError{Field: field, Reason: "expected YYYY-MM-DD"}
	}
	return &d, nil
}

// parseAmount parses a decimal amount string. Amounts travel as strings to
// keep exact precision end to end.
func parseAmount(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, &firefly.ValidationError{Field: field, Reason: "expected a decimal string"}
	}
	return d, nil
}

func parseOptionalAmount(field, value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	d, err := parseAmount(field, value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func decimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
