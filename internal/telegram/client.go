// Package telegram adapts the Telegram Bot API to the small surface the
// handler loop needs.
package telegram

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Client wraps the bot API connection.
type Client struct {
	api  *tgbotapi.BotAPI
	http *http.Client
	log  *zap.Logger
}

// NewClient authenticates the bot token against the Telegram API.
func NewClient(token string, debug bool, log *zap.Logger) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating Telegram client: %w", err)
	}
	api.Debug = debug

	return &Client{
		api:  api,
		http: &http.Client{Timeout: 60 * time.Second},
		log:  log,
	}, nil
}

// Username returns the authenticated bot account name.
func (c *Client) Username() string {
	return c.api.Self.UserName
}

// Updates opens the long-poll update channel.
func (c *Client) Updates(timeoutSeconds int) tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSeconds
	return c.api.GetUpdatesChan(u)
}

// Stop closes the update channel; the handler loop drains and exits.
func (c *Client) Stop() {
	c.api.StopReceivingUpdates()
}

// SendMessage sends text to a chat and returns the sent message ID.
// Markdown rendering is preferred, but model output is not guaranteed to
// be valid Markdown, so a rejected parse is resent as plain text.
func (c *Client) SendMessage(chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	sent, err := c.api.Send(msg)
	if err != nil && isParseError(err) {
		msg.ParseMode = ""
		sent, err = c.api.Send(msg)
	}
	if err != nil {
		return 0, fmt.Errorf("sending message: %w", err)
	}
	return sent.MessageID, nil
}

// EditMessage replaces the text of a previously sent message.
func (c *Client) EditMessage(chatID int64, messageID int, text string) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown

	_, err := c.api.Send(edit)
	if err != nil && isParseError(err) {
		edit.ParseMode = ""
		_, err = c.api.Send(edit)
	}
	if err != nil {
		return fmt.Errorf("editing message: %w", err)
	}
	return nil
}

// SendTyping shows the "typing..." indicator while an answer is prepared.
func (c *Client) SendTyping(chatID int64) error {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := c.api.Request(action); err != nil {
		return fmt.Errorf("sending chat action: %w", err)
	}
	return nil
}

// DownloadDocument fetches an uploaded file's bytes from Telegram.
func (c *Client) DownloadDocument(fileID string) ([]byte, error) {
	file, err := c.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("resolving file: %w", err)
	}

	resp, err := c.http.Get(file.Link(c.api.Token))
	if err != nil {
		return nil, fmt.Errorf("downloading file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading file body: %w", err)
	}

	c.log.Debug("downloaded document",
		zap.String("fileID", fileID),
		zap.Int("bytes", len(data)))
	return data, nil
}

func isParseError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "can't parse entities")
}
