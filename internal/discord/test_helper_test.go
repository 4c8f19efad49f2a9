package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// MockRoundTripper intercepts the session's calls to the Discord API
type MockRoundTripper struct {
	mu       sync.Mutex
	Edits    []*discordgo.WebhookEdit
	Deferred int
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch req.Method {
	case http.MethodPatch:
		var edit discordgo.WebhookEdit
		if req.Body != nil {
			_ = json.NewDecoder(req.Body).Decode(&edit)
		}
		m.Edits = append(m.Edits, &edit)
	case http.MethodPost:
		m.Deferred++
	}

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     make(http.Header),
	}, nil
}

// LastEmbed returns the embed from the most recent response edit, if any
func (m *MockRoundTripper) LastEmbed() *discordgo.MessageEmbed {
	m.mu.Lock()
	defer m.mu.Unlock()

	for idx := len(m.Edits) - 1; idx >= 0; idx-- {
		if m.Edits[idx].Embeds != nil && len(*m.Edits[idx].Embeds) > 0 {
			return (*m.Edits[idx].Embeds)[0]
		}
	}
	return nil
}

// LastContent returns the text content of the most recent response edit
func (m *MockRoundTripper) LastContent() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	for idx := len(m.Edits) - 1; idx >= 0; idx-- {
		if m.Edits[idx].Content != nil {
			return *m.Edits[idx].Content
		}
	}
	return ""
}

// newTestSession returns a session whose HTTP traffic is captured
func newTestSession(t *testing.T) (*discordgo.Session, *MockRoundTripper) {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	transport := &MockRoundTripper{}
	session.Client = &http.Client{Transport: transport}
	return session, transport
}

// newCommandInteraction builds a minimal guild slash-command interaction
func newCommandInteraction(name, userID, username string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			GuildID:   "guild-1",
			ChannelID: "channel-1",
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: userID, Username: username},
			},
		},
	}
}
