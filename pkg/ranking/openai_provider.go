package ranking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hireup-be/internal/entity"

	"github.com/google/uuid"
)

type OpenAIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIChatRequest struct {
	Model       string               `json:"model"`
	Messages    []*OpenAIChatMessage `json:"messages"`
	Temperature float64              `json:"temperature"`
}

type OpenAIChatChoice struct {
	Message *OpenAIChatMessage `json:"message"`
}

type OpenAIChatResponse struct {
	Choices []*OpenAIChatChoice `json:"choices"`
}

const (
	chatMessageRoleSystem = "system"
	chatMessageRoleUser   = "user"
)

type OpenAIProvider struct {
	apiKey  string
	baseUrl string
	model   string
	client  *http.Client
}

func NewOpenAIProvider(apiKey, baseUrl, model string) *OpenAIProvider {
	if baseUrl == "" {
		baseUrl = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIProvider{
		apiKey:  apiKey,
		baseUrl: baseUrl,
		model:   model,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (p *OpenAIProvider) complete(ctx context.Context, system, user string) (string, error) {
	payload := OpenAIChatRequest{
		Model: p.model,
		Messages: []*OpenAIChatMessage{
			{Role: chatMessageRoleSystem, Content: system},
			{Role: chatMessageRoleUser, Content: user},
		},
		Temperature: 0.2,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		"POST",
		p.baseUrl+"/chat/completions",
		bytes.NewBuffer(payloadJson),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var chatRes OpenAIChatResponse
	err = json.Unmarshal(resBody, &chatRes)
	if err != nil {
		return "", err
	}
	if len(chatRes.Choices) == 0 || chatRes.Choices[0].Message == nil {
		return "", fmt.Errorf("empty completion response")
	}

	return chatRes.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) Rank(
	ctx context.Context,
	job *entity.Job,
	applicants []*entity.ApplicantView,
	prompt string,
) ([]entity.RankedCandidate, error) {
	responseText, err := p.complete(ctx, rankSystemPrompt, buildRankUserPrompt(job, applicants, prompt))
	if err != nil {
		return nil, err
	}

	// Model sometimes wraps the array in a markdown fence.
	responseBytes := []byte(responseText)
	responseBytes = bytes.TrimSpace(responseBytes)
	responseBytes = bytes.TrimPrefix(responseBytes, []byte("```json"))
	responseBytes = bytes.TrimPrefix(responseBytes, []byte("```"))
	responseBytes = bytes.TrimSuffix(responseBytes, []byte("```"))
	responseBytes = bytes.TrimSpace(responseBytes)

	var ranked []entity.RankedCandidate
	err = json.Unmarshal(responseBytes, &ranked)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w | raw: %s", err, string(responseBytes))
	}

	// Only keep entries the model did not invent.
	known := make(map[uuid.UUID]bool, len(applicants))
	for _, applicant := range applicants {
		known[applicant.UserId] = true
	}
	out := make([]entity.RankedCandidate, 0, len(ranked))
	for _, candidate := range ranked {
		if known[candidate.UserId] {
			out = append(out, candidate)
		}
	}
	return out, nil
}

func (p *OpenAIProvider) AnalyzeSkills(
	ctx context.Context,
	mode AnalysisMode,
	job *entity.Job,
	applicants []*entity.ApplicantView,
	prompt string,
) (string, error) {
	system := analyzeGeneralSystemPrompt
	if mode == ModeJobSpecific {
		system = analyzeJobSystemPrompt
	}
	return p.complete(ctx, system, buildAnalyzeUserPrompt(mode, job, applicants, prompt))
}

const rankSystemPrompt = `You are a technical recruiter assistant. You rank job applicants ` +
	`against a job description. Respond with ONLY a JSON array, no other text. Each element: ` +
	`{"user_id": "<uuid>", "name": "<string>", "skills": ["<string>"], "score": <0-100 number>, "reasoning": "<one sentence>"}. ` +
	`Order by score descending. Never invent applicants that were not provided.`

const analyzeGeneralSystemPrompt = `You are a technical recruiter assistant. Summarize the ` +
	`skill distribution across the provided applicant pool in a few short paragraphs.`

const analyzeJobSystemPrompt = `You are a technical recruiter assistant. Assess how well the ` +
	`provided applicants fit the given job, calling out skill gaps, in a few short paragraphs.`

func buildRankUserPrompt(job *entity.Job, applicants []*entity.ApplicantView, prompt string) string {
	var sb strings.Builder
	sb.WriteString("Job title: ")
	sb.WriteString(job.Title)
	sb.WriteString("\nJob description: ")
	sb.WriteString(job.Description)
	sb.WriteString("\nRequired skills: ")
	sb.WriteString(strings.Join(job.Skills, ", "))
	sb.WriteString("\n\nRecruiter request: ")
	sb.WriteString(prompt)
	sb.WriteString("\n\nApplicants:\n")
	writeApplicants(&sb, applicants)
	return sb.String()
}

func buildAnalyzeUserPrompt(mode AnalysisMode, job *entity.Job, applicants []*entity.ApplicantView, prompt string) string {
	var sb strings.Builder
	if mode == ModeJobSpecific && job != nil {
		sb.WriteString("Job title: ")
		sb.WriteString(job.Title)
		sb.WriteString("\nRequired skills: ")
		sb.WriteString(strings.Join(job.Skills, ", "))
		sb.WriteString("\n\n")
	}
	sb.WriteString("Recruiter request: ")
	sb.WriteString(prompt)
	sb.WriteString("\n\nApplicants:\n")
	writeApplicants(&sb, applicants)
	return sb.String()
}

func writeApplicants(sb *strings.Builder, applicants []*entity.ApplicantView) {
	for _, applicant := range applicants {
		sb.WriteString("- user_id: ")
		sb.WriteString(applicant.UserId.String())
		sb.WriteString(", name: ")
		sb.WriteString(applicant.UserName)
		sb.WriteString(", skills: ")
		sb.WriteString(strings.Join(applicant.Skills, ", "))
		if applicant.ResumeText != "" {
			sb.WriteString(", resume: ")
			sb.WriteString(applicant.ResumeText)
		}
		sb.WriteString("\n")
	}
}
