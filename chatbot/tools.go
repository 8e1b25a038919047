// Package chatbot is the bridge between the conversational assistant and the
// analytics API: three named tools, each one GET request rendered as a
// natural-language sentence. Tool failures never propagate; they render as an
// apologetic sentence embedding the cause.
package chatbot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"retail-analytics-api/models"
	"retail-analytics-api/services"
)

// ToolResult keeps "the tool succeeded" and "the call itself failed" apart.
// Text is set exactly when Err is nil; a tool that succeeds against empty
// data still reports success, with a sentence saying so.
type ToolResult struct {
	Text string
	Err  error
}

func (r ToolResult) Failed() bool { return r.Err != nil }

// Tool is one callable exposed to the conversational agent.
type Tool struct {
	Name        string
	Description string
	apology     string
	call        func(ctx context.Context) ToolResult
}

// Run executes the tool and collapses any failure into the apologetic
// sentence. The agent only ever sees a string.
func (t Tool) Run(ctx context.Context) string {
	result := t.call(ctx)
	if result.Failed() {
		return fmt.Sprintf("%s Error: %v", t.apology, result.Err)
	}
	return result.Text
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

func (c *Client) GetCurrentVisitors(ctx context.Context) ToolResult {
	var payload struct {
		CurrentVisitors int `json:"current_visitors"`
	}
	if err := c.getJSON(ctx, "/api/visitors/current", &payload); err != nil {
		return ToolResult{Err: err}
	}
	return ToolResult{
		Text: fmt.Sprintf("There are currently %d visitors in the store.", payload.CurrentVisitors),
	}
}

func (c *Client) GetBusiestSection(ctx context.Context) ToolResult {
	var sections []struct {
		Section       string `json:"section"`
		TotalVisitors int    `json:"total_visitors"`
	}
	if err := c.getJSON(ctx, "/api/visitors/sections", &sections); err != nil {
		return ToolResult{Err: err}
	}
	if len(sections) == 0 {
		return ToolResult{Text: "I couldn't find any section data at the moment."}
	}
	// The endpoint orders busiest first.
	busiest := sections[0]
	return ToolResult{
		Text: fmt.Sprintf("The busiest section is '%s' with approximately %d visitors recently.",
			busiest.Section, busiest.TotalVisitors),
	}
}

func (c *Client) GetCashierQueue(ctx context.Context) ToolResult {
	var status struct {
		QueueLength     *int     `json:"queue_length"`
		WaitTimeMinutes *float64 `json:"wait_time_minutes"`
	}
	if err := c.getJSON(ctx, "/api/cashier/current", &status); err != nil {
		return ToolResult{Err: err}
	}
	if status.QueueLength == nil {
		return ToolResult{Text: "Cashier status is currently unavailable."}
	}

	wait := services.EstimateWaitMinutes(&models.Cashier{
		QueueLength:     *status.QueueLength,
		WaitTimeMinutes: status.WaitTimeMinutes,
	})
	return ToolResult{
		Text: fmt.Sprintf("The cashier queue has %d people. Estimated wait time is %s minutes.",
			*status.QueueLength, strconv.FormatFloat(wait, 'f', -1, 64)),
	}
}

// Tools returns the named tool set exposed to the agent.
func (c *Client) Tools() []Tool {
	return []Tool{
		{
			Name:        "get_current_visitors",
			Description: "Fetches the current number of visitors in the store.",
			apology:     "Sorry, I couldn't fetch the visitor count.",
			call:        c.GetCurrentVisitors,
		},
		{
			Name:        "get_busiest_section",
			Description: "Finds which store section has the most visitors.",
			apology:     "Sorry, I couldn't find the busiest section.",
			call:        c.GetBusiestSection,
		},
		{
			Name:        "get_cashier_queue",
			Description: "Gets the current cashier queue status and wait time.",
			apology:     "Sorry, I couldn't get cashier status.",
			call:        c.GetCashierQueue,
		},
	}
}
