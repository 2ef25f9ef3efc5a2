package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/danielholmes839/altart-e2e/internal/scenario"
)

// discord rejects messages longer than this
const maxMessageLength = 2000

func FormatReport(report scenario.Report, baseURL string) string {
	var sb strings.Builder

	passed := len(report.Results) - report.Failed()
	sb.WriteString(fmt.Sprintf("e2e run against %s: %d passed, %d failed\n\n", baseURL, passed, report.Failed()))

	for _, result := range report.Results {
		if result.Passed() {
			sb.WriteString(fmt.Sprintf("✅ %s (%s)\n", result.Name, result.Duration.Round(time.Millisecond)))
		} else {
			sb.WriteString(fmt.Sprintf("❌ %s (%s): %s\n", result.Name, result.Duration.Round(time.Millisecond), result.Err))
		}
	}

	content := sb.String()
	if len(content) > maxMessageLength {
		content = content[:maxMessageLength-3] + "..."
	}

	return content
}

// Sender is the part of a discord session used to post reports.
type Sender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Discord struct {
	Session   Sender
	ChannelID string
	BaseURL   string
}

func NewDiscord(token, channelID, baseURL string) (*Discord, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	return &Discord{
		Session:   dg,
		ChannelID: channelID,
		BaseURL:   baseURL,
	}, nil
}

func (d *Discord) Send(report scenario.Report) error {
	_, err := d.Session.ChannelMessageSend(d.ChannelID, FormatReport(report, d.BaseURL))
	return err
}
