package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api/chat/v1"

// Simplified DTOs for the script
type CreateSessionResponse struct {
	Data struct {
		ID       string `json:"id"`
		Greeting string `json:"greeting"`
	} `json:"data"`
}

type SendTurnRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type SendTurnResponse struct {
	Data struct {
		Reply         string `json:"reply"`
		ResultsShown  bool   `json:"results_shown"`
		LeadPersisted bool   `json:"lead_persisted"`
	} `json:"data"`
}

// Scripted customer that walks the full qualification funnel: six problem
// facts, then the five contact details.
var turns = []string{
	"Hi, I think I have mice in my house",
	"Mostly in the kitchen, behind the stove",
	"It's been going on for about three weeks",
	"I hear them every night, and I see droppings daily",
	"Yes, droppings and some chewed wiring",
	"I put out a couple of snap traps but caught nothing",
	"Sure, my name is Dana Wheeler",
	"555-0142",
	"dana.wheeler@example.com",
	"Portland",
	"Weekday mornings work best",
}

func main() {
	fmt.Println("=== Lead Qualification Simulation Client ===")

	sessionID := createSession()
	fmt.Printf("Session: %s\n\n", sessionID)

	for i, msg := range turns {
		color.Cyan("[%2d] customer: %s", i+1, msg)
		resp := sendTurn(sessionID, msg)
		fmt.Printf("     assistant: %s\n", truncate(resp.Data.Reply, 160))
		if resp.Data.ResultsShown {
			color.Yellow("     >> severity disclosed")
		}
		if resp.Data.LeadPersisted {
			color.Green("     >> lead persisted")
		}
		fmt.Println()
		time.Sleep(300 * time.Millisecond)
	}
}

func createSession() string {
	resp, err := http.Post(baseURL+"/session", "application/json", bytes.NewReader([]byte(`{}`)))
	if err != nil {
		log.Fatalf("create session: %v", err)
	}
	defer resp.Body.Close()

	var out CreateSessionResponse
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &out); err != nil {
		log.Fatalf("create session decode: %v (%s)", err, body)
	}
	return out.Data.ID
}

func sendTurn(sessionID, message string) SendTurnResponse {
	payload, _ := json.Marshal(SendTurnRequest{SessionID: sessionID, Message: message})
	resp, err := http.Post(baseURL+"/turn", "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("send turn: %v", err)
	}
	defer resp.Body.Close()

	var out SendTurnResponse
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &out); err != nil {
		log.Fatalf("send turn decode: %v (%s)", err, body)
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
