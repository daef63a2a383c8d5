package assistant

import (
	"Planta-Backend/domain"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

type (
	// GeminiClient is the boundary to the generative model. Every call
	// requests structured JSON output constrained by a response schema,
	// except the free-text care tip.
	GeminiClient interface {
		IdentifyPlant(ctx context.Context, imageData []byte, mimeType string) (domain.PlantInfo, error)
		SearchPlantByName(ctx context.Context, name string) (domain.PlantInfo, error)
		GetWeather(ctx context.Context, lat, lon float64) (domain.WeatherInfo, error)
		GetCareTip(ctx context.Context, weather domain.WeatherInfo, plantNames []string) (string, error)
	}

	GeminiConfig struct {
		APIKey  string
		Model   string
		BaseURL string
		Timeout time.Duration
	}

	geminiClient struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
	}
)

func NewGeminiClient(cfg GeminiConfig) GeminiClient {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gemini-2.5-flash"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &geminiClient{
		apiKey:     cfg.APIKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

var plantInfoSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"common_name":       map[string]interface{}{"type": "STRING", "description": "Common name of the plant."},
		"scientific_name":   map[string]interface{}{"type": "STRING", "description": "Scientific name of the plant."},
		"origin":            map[string]interface{}{"type": "STRING", "description": "Where the plant originates from."},
		"short_description": map[string]interface{}{"type": "STRING", "description": "A short description of the plant."},
		"health": map[string]interface{}{
			"type":        "OBJECT",
			"description": "Health assessment of the plant in the photo.",
			"properties": map[string]interface{}{
				"status": map[string]interface{}{
					"type":        "STRING",
					"enum":        []string{"healthy", "yellowing leaves", "pests", "underwatered", "other"},
					"description": "Overall health status.",
				},
				"details": map[string]interface{}{"type": "STRING", "description": "Details of the observed symptoms."},
			},
			"required": []string{"status", "details"},
		},
		"biology": map[string]interface{}{"type": "STRING", "description": "Notable biological characteristics."},
		"living_conditions": map[string]interface{}{
			"type":        "OBJECT",
			"description": "Ideal living conditions for the plant.",
			"properties": map[string]interface{}{
				"light":       map[string]interface{}{"type": "STRING"},
				"soil":        map[string]interface{}{"type": "STRING"},
				"humidity":    map[string]interface{}{"type": "STRING"},
				"temperature": map[string]interface{}{"type": "STRING"},
			},
			"required": []string{"light", "soil", "humidity", "temperature"},
		},
		"care_guide": map[string]interface{}{
			"type":        "OBJECT",
			"description": "Detailed care instructions.",
			"properties": map[string]interface{}{
				"watering":    map[string]interface{}{"type": "STRING"},
				"fertilizing": map[string]interface{}{"type": "STRING"},
				"repotting":   map[string]interface{}{"type": "STRING"},
				"warnings":    map[string]interface{}{"type": "ARRAY", "items": map[string]interface{}{"type": "STRING"}},
			},
			"required": []string{"watering", "fertilizing", "repotting", "warnings"},
		},
		"common_diseases": map[string]interface{}{
			"type":        "ARRAY",
			"description": "Common diseases and how to treat them.",
			"items": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"name":      map[string]interface{}{"type": "STRING"},
					"symptoms":  map[string]interface{}{"type": "STRING"},
					"treatment": map[string]interface{}{"type": "STRING"},
				},
				"required": []string{"name", "symptoms", "treatment"},
			},
		},
	},
	"required": []string{
		"common_name", "scientific_name", "origin", "short_description",
		"health", "biology", "living_conditions", "care_guide", "common_diseases",
	},
}

var weatherInfoSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"temperature": map[string]interface{}{"type": "NUMBER", "description": "Current temperature in degrees Celsius."},
		"humidity":    map[string]interface{}{"type": "NUMBER", "description": "Current humidity (%)."},
		"condition":   map[string]interface{}{"type": "STRING", "description": "Short description of the weather conditions."},
		"icon": map[string]interface{}{
			"type":        "STRING",
			"enum":        []string{"sun", "cloud-sun", "cloud", "rain", "bolt", "snow"},
			"description": "An icon representing the weather.",
		},
	},
	"required": []string{"temperature", "humidity", "condition", "icon"},
}

func (c *geminiClient) IdentifyPlant(ctx context.Context, imageData []byte, mimeType string) (domain.PlantInfo, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	parts := []map[string]interface{}{
		{
			"inline_data": map[string]interface{}{
				"mime_type": mimeType,
				"data":      base64.StdEncoding.EncodeToString(imageData),
			},
		},
		{
			"text": "Based on this image, identify the plant, analyze its health, and provide detailed information. Return JSON only.",
		},
	}

	text, err := c.generateContent(ctx, parts, plantInfoSchema)
	if err != nil {
		return domain.PlantInfo{}, err
	}

	var info domain.PlantInfo
	if err := json.Unmarshal([]byte(text), &info); err != nil {
		return domain.PlantInfo{}, domain.ErrRecognitionFailed
	}
	return info, nil
}

func (c *geminiClient) SearchPlantByName(ctx context.Context, name string) (domain.PlantInfo, error) {
	parts := []map[string]interface{}{
		{
			"text": fmt.Sprintf("Provide detailed information about the plant named %q. No health analysis is needed. Return JSON only.", name),
		},
	}

	text, err := c.generateContent(ctx, parts, plantInfoSchema)
	if err != nil {
		return domain.PlantInfo{}, err
	}

	var info domain.PlantInfo
	if err := json.Unmarshal([]byte(text), &info); err != nil {
		return domain.PlantInfo{}, domain.ErrRecognitionFailed
	}

	// There is no photo to assess when looking up by name.
	info.Health = domain.PlantHealth{
		Status:  domain.HealthStatusNA,
		Details: "Health analysis does not apply to name lookups.",
	}
	return info, nil
}

func (c *geminiClient) GetWeather(ctx context.Context, lat, lon float64) (domain.WeatherInfo, error) {
	parts := []map[string]interface{}{
		{
			"text": fmt.Sprintf("Based on latitude %f and longitude %f, provide the current weather. Return JSON only.", lat, lon),
		},
	}

	text, err := c.generateContent(ctx, parts, weatherInfoSchema)
	if err != nil {
		return domain.WeatherInfo{}, err
	}

	var info domain.WeatherInfo
	if err := json.Unmarshal([]byte(text), &info); err != nil {
		return domain.WeatherInfo{}, domain.ErrWeatherUnavailable
	}
	return info, nil
}

func (c *geminiClient) GetCareTip(ctx context.Context, weather domain.WeatherInfo, plantNames []string) (string, error) {
	weatherString := fmt.Sprintf("Temperature: %.0f°C, Humidity: %.0f%%, Conditions: %s",
		weather.Temperature, weather.Humidity, weather.Condition)
	plantsString := "There are no plants in the garden yet."
	if len(plantNames) > 0 {
		plantsString = fmt.Sprintf("The garden contains: %s.", strings.Join(plantNames, ", "))
	}

	prompt := fmt.Sprintf("You are a wise gardening expert. Today's weather: %s. %s "+
		"Give one short (at most 30 words), useful and specific care tip for today, "+
		"directly related to the weather conditions and the plants if any.", weatherString, plantsString)

	parts := []map[string]interface{}{{"text": prompt}}
	return c.generateContent(ctx, parts, nil)
}

func (c *geminiClient) generateContent(ctx context.Context, parts []map[string]interface{}, schema map[string]interface{}) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not configured")
	}

	generationConfig := map[string]interface{}{
		"temperature": 0.1,
	}
	if schema != nil {
		generationConfig["response_mime_type"] = "application/json"
		generationConfig["response_schema"] = schema
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": parts},
		},
		"generationConfig": generationConfig,
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	text := trimFences(geminiResp.Candidates[0].Content.Parts[0].Text)
	if schema != nil {
		text = extractJSON(text)
	}
	return text, nil
}

var jsonPattern = regexp.MustCompile(`(?s)\{.*\}`)

// trimFences strips the markdown code fences the model sometimes wraps
// around its output.
func trimFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

// extractJSON pulls the JSON object out of surrounding prose.
func extractJSON(text string) string {
	if strings.HasPrefix(text, "{") {
		return text
	}
	if match := jsonPattern.FindString(text); match != "" {
		return match
	}
	return text
}
