package tts

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"github.com/thaivocab/thaivocab/internal/logger"
)

const (
	azureOutputFormat = "audio-16khz-32kbitrate-mono-mp3"
	azureUserAgent    = "thaivocab"

	// Azure issues tokens valid for 10 minutes; refresh a minute early.
	azureTokenTTL = 9 * time.Minute
)

// AzureClient calls the Azure Cognitive Services TTS REST API. A bearer token
// is exchanged from the subscription key and cached until shortly before it
// expires. Both the exchange and the synthesis call run behind a circuit
// breaker so a failing region stops being hammered.
type AzureClient struct {
	key        string
	region     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        *logger.Logger

	tokenMu     sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewAzureClient(key, region string) *AzureClient {
	log := logger.Default().WithPrefix("azure-tts")

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "azure-tts",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return &AzureClient{
		key:        key,
		region:     region,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		breaker:    breaker,
		log:        log,
	}
}

func (c *AzureClient) Name() string { return "azure" }

// Synthesize converts text to MP3 bytes using the given neural voice and
// prosody rate.
func (c *AzureClient) Synthesize(ctx context.Context, text, voice string, rate float64) ([]byte, error) {
	log := logger.FromContext(ctx).WithPrefix("azure-tts")
	start := time.Now()

	result, err := c.breaker.Execute(func() (any, error) {
		token, err := c.accessToken(ctx)
		if err != nil {
			return nil, err
		}
		return c.synthesize(ctx, token, text, voice, rate)
	})
	if err != nil {
		log.Error("synthesis failed: %v", err)
		return nil, err
	}

	audio := result.([]byte)
	log.Debug("synthesized %d bytes in %v (voice=%s rate=%v)", len(audio), time.Since(start), voice, rate)
	return audio, nil
}

func (c *AzureClient) synthesize(ctx context.Context, token, text, voice string, rate float64) ([]byte, error) {
	ssml := fmt.Sprintf(`<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis" xml:lang="th-TH">`+
		`<voice name="%s"><prosody rate="%v">%s</prosody></voice></speak>`,
		voice, rate, html.EscapeString(text))

	url := fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", c.region)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(ssml))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", azureOutputFormat)
	req.Header.Set("User-Agent", azureUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("tts status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// accessToken returns a cached bearer token, exchanging the subscription key
// for a fresh one when the cached token is missing or near expiry.
func (c *AzureClient) accessToken(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	url := fmt.Sprintf("https://%s.api.cognitive.microsoft.com/sts/v1.0/issueToken", c.region)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("token status %d: %s", resp.StatusCode, string(body))
	}

	token, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("token read: %w", err)
	}

	c.token = string(token)
	c.tokenExpiry = time.Now().Add(azureTokenTTL)
	c.log.Debug("refreshed access token, valid until %s", c.tokenExpiry.Format(time.RFC3339))
	return c.token, nil
}
