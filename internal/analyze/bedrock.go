package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"

	"github.com/xdg/tern/internal/clog"
	"github.com/xdg/tern/internal/config"
)

// modelInvoker is the slice of the Bedrock runtime client the analyzer
// uses. It exists so tests can substitute a fake.
type modelInvoker interface {
	InvokeModel(ctx context.Context, in *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Bedrock analyzes transcripts with an AWS Bedrock model. The client
// is built lazily on first use so that a missing AWS setup surfaces as
// an analysis failure after the wrapped command has run, never before.
type Bedrock struct {
	cfg *config.Config

	// newClient builds the runtime client for a region. Overridden in
	// tests.
	newClient func(ctx context.Context, region string) (modelInvoker, error)
}

// NewBedrock returns an analyzer backed by AWS Bedrock using the given
// configuration.
func NewBedrock(cfg *config.Config) *Bedrock {
	return &Bedrock{
		cfg: cfg,
		newClient: func(ctx context.Context, region string) (modelInvoker, error) {
			awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
			if err != nil {
				return nil, fmt.Errorf("load AWS config: %w", err)
			}
			return bedrockruntime.NewFromConfig(awsCfg), nil
		},
	}
}

// Analyze submits the transcript to the configured model and returns
// its commentary.
func (b *Bedrock) Analyze(ctx context.Context, req Request) (string, error) {
	modelID := b.cfg.Bedrock.ModelID
	if modelID == "" {
		return "", errors.New("no bedrock.model_id configured; set it in ~/.tern.conf or TERN_BEDROCK_MODEL_ID")
	}
	region := b.cfg.Bedrock.Region
	if region == "" {
		return "", errors.New("no AWS region configured; set bedrock.region in ~/.tern.conf or TERN_BEDROCK_REGION")
	}

	if b.cfg.Bedrock.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(b.cfg.Bedrock.Timeout)*time.Second)
		defer cancel()
	}

	client, err := b.newClient(ctx, region)
	if err != nil {
		return "", fmt.Errorf("initialize Bedrock client: %w", err)
	}

	prompt := buildPrompt(req, b.cfg.Limits.OutputChars, b.cfg.Limits.ErrorChars)
	clog.Debug("analyze: invoking %s in %s, prompt %d chars", modelID, region, len(prompt))

	body, err := requestBody(modelID, prompt)
	if err != nil {
		return "", fmt.Errorf("encode model request: %w", err)
	}

	start := time.Now()
	out, err := client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		return "", triage(err, modelID, region)
	}
	clog.Debug("analyze: response received in %s", time.Since(start).Round(time.Millisecond))

	text, err := extractText(out.Body)
	if err != nil {
		return "", fmt.Errorf("decode model response: %w", err)
	}
	return text, nil
}

// anthropicRequest is the Bedrock messages-API body for Anthropic models.
type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int                `json:"max_tokens"`
	Messages         []anthropicMessage `json:"messages"`
	Temperature      float64            `json:"temperature"`
	TopP             float64            `json:"top_p"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// genericRequest is the fallback body for non-Anthropic models.
type genericRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// requestBody builds the invocation payload for the model family.
func requestBody(modelID, prompt string) ([]byte, error) {
	lower := strings.ToLower(modelID)
	if strings.Contains(lower, "claude") || strings.Contains(lower, "anthropic") {
		return json.Marshal(anthropicRequest{
			AnthropicVersion: "bedrock-2023-05-31",
			MaxTokens:        2000,
			Messages:         []anthropicMessage{{Role: "user", Content: prompt}},
			Temperature:      0.3,
			TopP:             0.9,
		})
	}
	return json.Marshal(genericRequest{
		Prompt:      prompt,
		MaxTokens:   2000,
		Temperature: 0.3,
	})
}

// triage converts a Bedrock invocation failure into an error whose
// message tells the operator what to fix.
func triage(err error, modelID, region string) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDeniedException":
			return fmt.Errorf("access denied for model %s: check AWS credentials (aws configure) and bedrock:InvokeModel permission: %w", modelID, err)
		case "ResourceNotFoundException":
			return fmt.Errorf("model %q not found in region %q; check your bedrock settings: %w", modelID, region, err)
		case "ExpiredTokenException", "TokenRefreshRequired":
			return fmt.Errorf("AWS credentials have expired; refresh them (aws sso login or aws configure): %w", err)
		case "ThrottlingException":
			return fmt.Errorf("request throttled by Bedrock; wait a moment and try again: %w", err)
		case "ValidationException":
			return fmt.Errorf("Bedrock rejected the request (unsupported model or bad configuration): %w", err)
		default:
			return fmt.Errorf("Bedrock error %s: %w", apiErr.ErrorCode(), err)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("Bedrock request timed out; analysis skipped: %w", err)
	}
	return fmt.Errorf("invoke model: %w", err)
}
