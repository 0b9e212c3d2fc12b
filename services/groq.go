package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"tripatlas/logger"
)

type AIClient struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	httpClient  *http.Client
}

var aiClient *AIClient

func InitAI() {
	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = "llama-3.1-8b-instant"
	}

	aiClient = &AIClient{
		apiKey:      os.Getenv("GROQ_API_KEY"),
		model:       model,
		baseURL:     env("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		temperature: 0.7,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}

	if aiClient.apiKey != "" {
		logger.InfoLogger.Info("AI (Groq) initialized with model: ", model)
	} else {
		logger.InfoLogger.Warn("GROQ_API_KEY not set — trip narratives will fail at call time")
	}
}

func GetAIClient() *AIClient {
	return aiClient
}

func (c *AIClient) Configured() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

const travelAdvisorPrompt = `You are a knowledgeable travel advisor. Provide detailed information about the city, including:
1. A paragraph about the city's cultural and historical significance
2. Major attractions and must-visit places
3. Local cuisine recommendations
4. Best areas to stay
5. Transportation tips
6. Cultural etiquette and customs
Format the response in a clear, organized manner.`

// GenerateTripPlan asks the model for free-text travel advice for a stay of
// the given length and month. A failure here is not absorbed: the caller is
// expected to abort.
func (c *AIClient) GenerateTripPlan(city string, days int, month string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("groq API key not configured")
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: travelAdvisorPrompt},
			{Role: "user", Content: buildTripPrompt(city, days, month)},
		},
		Temperature: c.temperature,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq API error (%d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse AI response: %w", err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from AI")
	}

	return chatResp.Choices[0].Message.Content, nil
}

func buildTripPrompt(city string, days int, month string) string {
	return fmt.Sprintf("Create a %d-day trip plan for %s in %s.", days, city, month)
}
