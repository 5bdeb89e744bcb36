package riskai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cityhall-dev/licensing-management/internal"
)

// Risk levels the model is instructed to choose from.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Input is the inspection context handed to the model.
type Input struct {
	BusinessName string
	BusinessType string
	Findings     string
	Status       string
}

// Assessment is the structured risk read returned by the model.
type Assessment struct {
	RiskLevel       string   `json:"riskLevel"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// Client talks to the Gemini generateContent REST endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(cfg internal.RiskAIConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// AssessRisk sends the findings to the model and parses the JSON verdict.
func (c *Client) AssessRisk(ctx context.Context, input Input) (*Assessment, error) {
	prompt := buildPrompt(input)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return nil, internal.NewExternalError("failed to encode risk assessment request", internal.ErrCodeRiskAssessmentFailed, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, internal.NewExternalError("failed to build risk assessment request", internal.ErrCodeRiskAssessmentFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, internal.NewExternalError("risk assessment request failed", internal.ErrCodeRiskAssessmentFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, internal.NewExternalError("failed to read risk assessment response", internal.ErrCodeRiskAssessmentFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, internal.NewExternalError(
			fmt.Sprintf("risk assessment service returned status %d", resp.StatusCode),
			internal.ErrCodeRiskAssessmentFailed, nil)
	}

	var gr generateResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return nil, internal.NewExternalError("failed to decode risk assessment response", internal.ErrCodeRiskAssessmentFailed, err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, internal.NewExternalError("risk assessment response had no candidates", internal.ErrCodeRiskAssessmentFailed, nil)
	}

	return parseAssessment(gr.Candidates[0].Content.Parts[0].Text)
}

func buildPrompt(input Input) string {
	var sb strings.Builder
	sb.WriteString("Act as an Israeli municipal safety inspector.\n")
	fmt.Fprintf(&sb, "The business %q", input.BusinessName)
	if input.BusinessType != "" {
		fmt.Fprintf(&sb, " (%s)", input.BusinessType)
	}
	fmt.Fprintf(&sb, " was inspected with result %q.\n", input.Status)
	fmt.Fprintf(&sb, "Analyze the following inspection findings: %q.\n", input.Findings)
	sb.WriteString("Return a valid JSON object (no markdown formatting) with the following keys:\n")
	sb.WriteString(`- "riskLevel": One of ["Low", "Medium", "High"]` + "\n")
	sb.WriteString(`- "summary": A brief summary in Hebrew.` + "\n")
	sb.WriteString(`- "recommendations": An array of strings (recommendations in Hebrew).` + "\n")
	return sb.String()
}

// parseAssessment strips markdown code fences the model sometimes wraps
// its output in, then requires strict JSON with a known risk level.
func parseAssessment(text string) (*Assessment, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var a Assessment
	if err := json.Unmarshal([]byte(cleaned), &a); err != nil {
		return nil, internal.NewExternalError("risk assessment was not valid JSON", internal.ErrCodeRiskAssessmentFailed, err)
	}

	switch a.RiskLevel {
	case RiskLow, RiskMedium, RiskHigh:
	default:
		return nil, internal.NewExternalError(
			fmt.Sprintf("risk assessment had unknown risk level %q", a.RiskLevel),
			internal.ErrCodeRiskAssessmentFailed, nil)
	}

	return &a, nil
}
