// Package random provides the uniform [0, 1) draw used to resolve battles.
// The source is an injected collaborator so resolution is deterministic in
// tests.
package random

import (
	"fmt"
	"io"
	mathrand "math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Source yields a uniform float64 in [0, 1). Distribution fairness beyond
// that is the provider's problem.
type Source interface {
	Next() (float64, error)
}

// PRNG draws from math/rand/v2. The top-level generator is safe for
// concurrent use.
type PRNG struct{}

func NewPRNG() *PRNG {
	return &PRNG{}
}

func (p *PRNG) Next() (float64, error) {
	return mathrand.Float64(), nil
}

const randomOrgURL = "https://www.random.org/decimal-fractions/?num=1&min=0&max=1&col=1&base=10&format=plain&rnd=new"

// RandomOrgClient draws decimal fractions from random.org over HTTP.
type RandomOrgClient struct {
	client  *http.Client
	baseURL string
}

func NewRandomOrgClient() *RandomOrgClient {
	return &RandomOrgClient{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: randomOrgURL,
	}
}

func (c *RandomOrgClient) Next() (float64, error) {
	resp, err := c.client.Get(c.baseURL)
	if err != nil {
		return 0, fmt.Errorf("failed to request random number: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("random.org returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return 0, fmt.Errorf("failed to read random number body: %w", err)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(string(body)), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid random number response %q: %w", strings.TrimSpace(string(body)), err)
	}
	return value, nil
}
