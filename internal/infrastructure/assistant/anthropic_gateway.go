package assistant

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"fieldflow/internal/usecase/interfaces"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var (
	ErrMissingAnthropicAPIKey = errors.New("missing ANTHROPIC_API_KEY")
	ErrSchemaInvalidResponse  = errors.New("schema-invalid assistant response")
)

const (
	defaultModel   = "claude-sonnet-4-5-20250929"
	defaultTimeout = 30 * time.Second

	// Audio payloads ride inside the prompt as a data URI; anything bigger than
	// this is rejected before a request is made.
	maxAudioBytes = 10 << 20
)

// AnthropicGateway implements the assistant contracts against the Anthropic
// Messages API. Every call is bounded by a timeout and parses a strict JSON
// response; a payload that does not match the expected schema is an error, and
// callers never mutate work orders on error.

type AnthropicGateway struct {
	client   anthropic.Client
	model    string
	timeout  time.Duration
	catalog  *PartsCatalog
	mockMode bool
}

var _ interfaces.IAssistantGateway = (*AnthropicGateway)(nil)

func NewAnthropicGateway(apiKey string, catalog *PartsCatalog) (*AnthropicGateway, error) {
	if isAssistantMockEnabled() {
		log.Printf("[assistant][gateway] mock mode enabled")
		return &AnthropicGateway{mockMode: true, catalog: catalog, timeout: defaultTimeout}, nil
	}

	if apiKey == "" {
		log.Printf("[assistant][gateway] missing ANTHROPIC_API_KEY")
		return nil, ErrMissingAnthropicAPIKey
	}

	model := getenvDefault("ASSISTANT_MODEL", defaultModel)
	log.Printf("[assistant][gateway] Anthropic client initialized model=%s", model)

	return &AnthropicGateway{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		timeout: defaultTimeout,
		catalog: catalog,
	}, nil
}

func (g *AnthropicGateway) Transcribe(ctx context.Context, audio []byte, mimeType string) (interfaces.TranscriptionResult, error) {
	if len(audio) > maxAudioBytes {
		return interfaces.TranscriptionResult{}, fmt.Errorf("audio payload too large: %d bytes", len(audio))
	}

	if g.mockMode {
		log.Printf("[assistant][gateway] mock transcribe mime=%s bytes=%d", mimeType, len(audio))
		return interfaces.TranscriptionResult{
			CustomerDetails: "Jane Doe, jane@example.com, 555-0100, 12 Oak Street",
			JobDescription:  "Replace a faulty kitchen outlet",
			Urgency:         "Medium",
			Location:        "12 Oak Street",
		}, nil
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(audio))
	system := "You process work order requests from audio recordings. Extract the customer details, " +
		"job description, urgency and location. Use the literal string \"unknown\" for anything you cannot " +
		"determine; never omit a field. Respond with a single JSON object with keys customer_details, " +
		"job_description, urgency, location."
	user := "Audio recording of the work order request:\n" + dataURI

	var result interfaces.TranscriptionResult
	if err := g.call(ctx, "transcribe", system, user, &result); err != nil {
		return interfaces.TranscriptionResult{}, err
	}
	fillUnknown(&result.CustomerDetails)
	fillUnknown(&result.JobDescription)
	fillUnknown(&result.Urgency)
	fillUnknown(&result.Location)
	return result, nil
}

func (g *AnthropicGateway) Analyze(ctx context.Context, in interfaces.AnalysisInput) (interfaces.AnalysisResult, error) {
	if g.mockMode {
		log.Printf("[assistant][gateway] mock analyze urgency=%s", in.Urgency)
		return interfaces.AnalysisResult{
			PartList:            "Replacement outlet, wire connectors, electrical tape",
			JobDurationEstimate: "About 2 hours",
			UrgencyLevel:        in.Urgency,
			ToolsNeeded:         "Screwdriver, voltage tester, wire stripper",
			ManHoursNeeded:      "2 man-hours",
		}, nil
	}

	system := "You analyze field-service work orders and estimate the parts, tools and man-hours needed. " +
		"Respond with a single JSON object with keys part_list, job_duration_estimate, urgency_level, " +
		"tools_needed, man_hours_needed. Every value is free-form descriptive text."

	var b strings.Builder
	fmt.Fprintf(&b, "Customer details: %s\n", in.CustomerDetails)
	fmt.Fprintf(&b, "Job description: %s\n", in.JobDescription)
	fmt.Fprintf(&b, "Urgency: %s\n", in.Urgency)
	fmt.Fprintf(&b, "Location: %s\n", in.Location)
	if guidance := g.catalog.GuidanceFor(in.JobDescription); guidance != "" {
		b.WriteString("\nKnown problems from the parts catalog:\n")
		b.WriteString(guidance)
	}

	var result interfaces.AnalysisResult
	if err := g.call(ctx, "analyze", system, b.String(), &result); err != nil {
		return interfaces.AnalysisResult{}, err
	}
	if result.PartList == "" || result.JobDurationEstimate == "" || result.ManHoursNeeded == "" {
		return interfaces.AnalysisResult{}, fmt.Errorf("%w: analyze response missing fields", ErrSchemaInvalidResponse)
	}
	return result, nil
}

func (g *AnthropicGateway) DraftInvoice(ctx context.Context, in interfaces.InvoiceDraftInput) (interfaces.InvoiceDraft, error) {
	if g.mockMode {
		total := in.LaborEstimate
		for _, p := range in.PartCosts {
			total += p.Cost * float64(p.Quantity)
		}
		total *= 1 + in.TaxRate
		log.Printf("[assistant][gateway] mock draft-invoice parts=%d total=%.2f", len(in.PartCosts), total)
		return interfaces.InvoiceDraft{
			InvoiceText: fmt.Sprintf("Invoice for %s\n%s\nTotal due: %.2f", in.CustomerName, in.JobSummary, total),
			TotalAmount: total,
		}, nil
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return interfaces.InvoiceDraft{}, err
	}
	system := "You draft professional invoices for field-service jobs. Given customer info, a job summary, " +
		"itemized part costs (unit cost and quantity), a labor estimate and a tax rate, write the full invoice " +
		"text and compute the tax-inclusive total. Respond with a single JSON object with keys invoice_text " +
		"and total_amount (a number)."

	var result interfaces.InvoiceDraft
	if err := g.call(ctx, "draft-invoice", system, string(payload), &result); err != nil {
		return interfaces.InvoiceDraft{}, err
	}
	if strings.TrimSpace(result.InvoiceText) == "" {
		return interfaces.InvoiceDraft{}, fmt.Errorf("%w: draft-invoice response missing invoice_text", ErrSchemaInvalidResponse)
	}
	return result, nil
}

func (g *AnthropicGateway) Coordinate(ctx context.Context, in interfaces.CoordinationInput) (interfaces.CoordinationResult, error) {
	if g.mockMode {
		log.Printf("[assistant][gateway] mock coordinate deadline_status=%s", in.DeadlineStatus)
		return interfaces.CoordinationResult{
			ActionTaken: "No action required",
			Reason:      "All subsystems report nominal status",
		}, nil
	}

	system := "You are a coordination agent monitoring a field-service operation. Given the status of each " +
		"subsystem, decide on one proactive action that avoids the need for human intervention. Respond with " +
		"a single JSON object with keys action_taken and reason."

	var b strings.Builder
	fmt.Fprintf(&b, "Job status: %s\n", in.JobStatus)
	fmt.Fprintf(&b, "Parts order status: %s\n", in.PartsOrderStatus)
	fmt.Fprintf(&b, "Email status: %s\n", in.EmailStatus)
	fmt.Fprintf(&b, "Payment status: %s\n", in.PaymentStatus)
	fmt.Fprintf(&b, "Deadline status: %s\n", in.DeadlineStatus)

	var result interfaces.CoordinationResult
	if err := g.call(ctx, "coordinate", system, b.String(), &result); err != nil {
		return interfaces.CoordinationResult{}, err
	}
	if result.ActionTaken == "" {
		return interfaces.CoordinationResult{}, fmt.Errorf("%w: coordinate response missing action_taken", ErrSchemaInvalidResponse)
	}
	return result, nil
}

// call sends one bounded Messages request and unmarshals the strict-JSON
// answer into out.
func (g *AnthropicGateway) call(ctx context.Context, op, systemPrompt, userPrompt string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	log.Printf("[assistant][gateway] %s start model=%s", op, g.model)
	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: 4096,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		log.Printf("[assistant][gateway] %s failed err=%v", op, err)
		return fmt.Errorf("anthropic %s: %w", op, err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			log.Printf("[assistant][gateway] %s response size=%d tokens_in=%d tokens_out=%d",
				op, len(block.Text), message.Usage.InputTokens, message.Usage.OutputTokens)
			return decodeStrictJSON(op, block.Text, out)
		}
	}
	return fmt.Errorf("%w: no text content in %s response", ErrSchemaInvalidResponse, op)
}

// decodeStrictJSON tolerates a markdown code fence around the payload but
// nothing else.
func decodeStrictJSON(op, text string, out any) error {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSchemaInvalidResponse, op, err)
	}
	return nil
}

func fillUnknown(s *string) {
	if strings.TrimSpace(*s) == "" {
		*s = interfaces.UnknownField
	}
}

func isAssistantMockEnabled() bool {
	for _, key := range []string{"ASSISTANT_GATEWAY_MOCK", "ANTHROPIC_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
