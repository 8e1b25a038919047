package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"retail-analytics-api/chatbot"
	"retail-analytics-api/config"
)

// Console front end for the analytics tool bridge. The conversational agent
// proper runs elsewhere; this binary exercises the same named tools by
// matching simple intents in the typed query.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client := chatbot.NewClient(cfg.Chatbot.BackendURL)
	tools := client.Tools()

	fmt.Println("Retail Analytics Bot is ready! (Type 'quit' to exit)")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "quit" || query == "exit" {
			break
		}

		tool := pickTool(tools, query)
		if tool == nil {
			fmt.Println("Bot: I can answer questions about current visitors, the busiest section, and the cashier queue.")
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		fmt.Printf("Bot: %s\n", tool.Run(ctx))
		cancel()
	}
}

// pickTool matches the query to a tool by keyword intent.
func pickTool(tools []chatbot.Tool, query string) *chatbot.Tool {
	q := strings.ToLower(query)

	name := ""
	switch {
	case strings.Contains(q, "busiest") || strings.Contains(q, "section"):
		name = "get_busiest_section"
	case strings.Contains(q, "queue") || strings.Contains(q, "cashier") || strings.Contains(q, "wait"):
		name = "get_cashier_queue"
	case strings.Contains(q, "visitor") || strings.Contains(q, "how many") || strings.Contains(q, "count"):
		name = "get_current_visitors"
	default:
		return nil
	}

	for i := range tools {
		if tools[i].Name == name {
			return &tools[i]
		}
	}
	return nil
}
