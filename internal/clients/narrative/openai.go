package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	entities "github.com/hearthforge/sheet-api/internal/entities/sheet"
	"github.com/hearthforge/sheet-api/internal/errors"
	"github.com/hearthforge/sheet-api/internal/rules"
)

const defaultResponsesURL = "https://api.openai.com/v1/responses"

// OpenAIConfig contains configuration for the OpenAI-backed client.
type OpenAIConfig struct {
	ResponsesURL string
	APIKey       string
	Model        string
	HTTPClient   *http.Client
}

// Validate validates the OpenAIConfig.
func (cfg *OpenAIConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return errors.InvalidArgument("api key cannot be empty")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return errors.InvalidArgument("model cannot be empty")
	}
	return nil
}

type openAIClient struct {
	responsesURL string
	apiKey       string
	model        string
	httpClient   *http.Client
}

// NewOpenAI creates a narrative client backed by the OpenAI responses
// endpoint.
func NewOpenAI(cfg *OpenAIConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	responsesURL := strings.TrimSpace(cfg.ResponsesURL)
	if responsesURL == "" {
		responsesURL = defaultResponsesURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &openAIClient{
		responsesURL: responsesURL,
		apiKey:       cfg.APIKey,
		model:        cfg.Model,
		httpClient:   httpClient,
	}, nil
}

func (c *openAIClient) GenerateBackstory(ctx context.Context, input *GenerateBackstoryInput) (*GenerateBackstoryOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character cannot be nil")
	}

	text, err := c.invoke(ctx, backstoryPrompt(input.Character))
	if err != nil {
		return nil, err
	}
	return &GenerateBackstoryOutput{Backstory: text}, nil
}

func (c *openAIClient) SuggestName(ctx context.Context, input *SuggestNameInput) (*SuggestNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	race := input.Race
	if race == "" {
		race = "Human"
	}
	class := input.Class
	if class == "" {
		class = "Adventurer"
	}

	prompt := fmt.Sprintf(
		"Suggest a single, creative fantasy name for a %s %s. Return ONLY the name, nothing else.",
		race, class,
	)
	text, err := c.invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// Models like to decorate names with quotes and a trailing period.
	name := strings.NewReplacer(".", "", `"`, "", "'", "").Replace(strings.TrimSpace(text))
	if name == "" {
		return nil, errors.Internal("name suggestion was empty")
	}
	return &SuggestNameOutput{Name: name}, nil
}

func backstoryPrompt(char *entities.CharacterData) string {
	abilities := make([]string, 0, len(entities.AbilityNames))
	for _, name := range entities.AbilityNames {
		score := char.Abilities.Get(name)
		abilities = append(abilities, fmt.Sprintf("%s:%d (%s)",
			name, score, rules.FormatModifier(rules.Modifier(score))))
	}

	classes := make([]string, 0, len(char.Classes))
	for _, item := range char.Classes {
		classes = append(classes, fmt.Sprintf("%s (Level %d)", orDefault(item.Name, "Unknown"), item.Level))
	}

	var b strings.Builder
	b.WriteString("Create a compelling, short (approx 150 words) backstory for a D&D 5e character with the following details:\n")
	fmt.Fprintf(&b, "Name: %s\n", orDefault(char.Name, "Unnamed"))
	fmt.Fprintf(&b, "Race: %s\n", orDefault(char.Race, "Unknown"))
	fmt.Fprintf(&b, "Class: %s\n", strings.Join(classes, " / "))
	fmt.Fprintf(&b, "Background: %s\n", orDefault(char.Background, "Unknown"))
	fmt.Fprintf(&b, "Alignment: %s\n", orDefault(char.Alignment, "Neutral"))
	fmt.Fprintf(&b, "Ability Scores: %s\n", strings.Join(abilities, ", "))
	b.WriteString("\nThe backstory should explain why they became an adventurer and hint at their personality. ")
	b.WriteString("Keep it suitable for a fantasy setting.")
	return b.String()
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func (c *openAIClient) invoke(ctx context.Context, prompt string) (string, error) {
	requestBody, err := json.Marshal(map[string]any{
		"model": c.model,
		"input": prompt,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.responsesURL, bytes.NewReader(requestBody))
	if err != nil {
		return "", errors.Wrapf(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	// The key travels only in the Authorization header; never echo it in
	// errors or logs.
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "narrative request failed")
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", errors.Unavailablef("narrative request status %d: %s",
			res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		OutputText string `json:"output_text"`
		Output     []struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", errors.Wrapf(err, "failed to decode narrative response")
	}

	text := strings.TrimSpace(payload.OutputText)
	if text == "" {
		for _, item := range payload.Output {
			for _, content := range item.Content {
				if strings.TrimSpace(content.Text) != "" {
					text = strings.TrimSpace(content.Text)
					break
				}
			}
			if text != "" {
				break
			}
		}
	}
	if text == "" {
		return "", errors.Internal("narrative response missing output text")
	}
	return text, nil
}
