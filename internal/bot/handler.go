// Package bot routes Telegram updates to the document pipeline and
// replies in the same chat.
package bot

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/docuchat/bot/internal/models"
	"github.com/docuchat/bot/internal/store"
)

// Handler consumes updates one at a time. Per-chat state never sees
// interleaved mutations because the loop is strictly serial.
type Handler struct {
	store     *store.Store
	extractor Extractor
	answerer  Answerer
	messenger Messenger
	maxBytes  int64
	log       *zap.Logger
}

// NewHandler wires the handler's dependencies.
func NewHandler(st *store.Store, ex Extractor, an Answerer, msg Messenger, maxBytes int64, log *zap.Logger) *Handler {
	return &Handler{
		store:     st,
		extractor: ex,
		answerer:  an,
		messenger: msg,
		maxBytes:  maxBytes,
		log:       log,
	}
}

// Run processes the update channel until it is closed or the context is
// cancelled.
func (h *Handler) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			h.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate dispatches a single update. Every failure is converted to
// a chat reply or dropped; nothing may crash the loop or leak into the
// next update.
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("panic recovered while handling update",
				zap.Int("updateID", update.UpdateID),
				zap.Any("panic", r))
		}
	}()

	msg := update.Message
	if msg == nil || msg.Chat == nil {
		// edited messages, channel posts, callbacks: not ours
		return
	}

	switch {
	case msg.IsCommand():
		h.handleCommand(msg)
	case msg.Document != nil:
		h.handleDocument(msg)
	case strings.TrimSpace(msg.Text) != "":
		h.handleQuestion(ctx, msg)
	default:
		// stickers, photos, voice notes and the rest
		h.log.Debug("ignoring unsupported message", zap.Int64("chat", msg.Chat.ID))
	}
}

func (h *Handler) handleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		h.reply(chatID, replyWelcome)
	case "clear":
		if h.store.Clear(chatID) {
			h.log.Info("document cleared", zap.Int64("chat", chatID))
			h.reply(chatID, replyCleared)
		} else {
			h.reply(chatID, replyNothingToClear)
		}
	default:
		h.log.Debug("ignoring unknown command",
			zap.Int64("chat", chatID),
			zap.String("command", msg.Command()))
	}
}

func (h *Handler) handleDocument(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	doc := msg.Document

	if !isPDF(doc) {
		h.reply(chatID, replyNotPDF)
		return
	}
	if int64(doc.FileSize) > h.maxBytes {
		h.reply(chatID, fmt.Sprintf(replyTooLarge, h.maxBytes>>20))
		return
	}

	statusID, err := h.messenger.SendMessage(chatID, replyProcessing)
	if err != nil {
		h.log.Warn("sending status message", zap.Int64("chat", chatID), zap.Error(err))
	}

	data, err := h.messenger.DownloadDocument(doc.FileID)
	if err != nil {
		h.log.Warn("document download failed",
			zap.Int64("chat", chatID),
			zap.String("file", doc.FileName),
			zap.Error(err))
		h.finishStatus(chatID, statusID, replyDownloadFailed)
		return
	}

	sum := sha256.Sum256(data)

	res, err := h.extractor.Extract(data)
	if err != nil {
		h.log.Warn("extraction failed",
			zap.Int64("chat", chatID),
			zap.String("file", doc.FileName),
			zap.Error(err))
		// the previously active document, if any, stays in place
		h.finishStatus(chatID, statusID, replyCannotRead)
		return
	}

	name := doc.FileName
	if name == "" {
		name = "document.pdf"
	}

	d := models.NewDocument(uuid.New().String(), name, res.Text, res.Pages, int64(len(data)), hex.EncodeToString(sum[:]))
	h.store.Set(chatID, d)

	h.log.Info("document analyzed",
		zap.Int64("chat", chatID),
		zap.String("file", d.Name),
		zap.Int("pages", d.Pages),
		zap.Int64("bytes", d.SizeBytes),
		zap.String("sha256", d.SHA256[:12]))
	h.finishStatus(chatID, statusID, fmt.Sprintf(replyAnalyzed, d.Name, d.Pages))
}

func (h *Handler) handleQuestion(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	doc, ok := h.store.Get(chatID)
	if !ok {
		h.reply(chatID, replyNoDocument)
		return
	}

	if err := h.messenger.SendTyping(chatID); err != nil {
		h.log.Debug("sending chat action", zap.Int64("chat", chatID), zap.Error(err))
	}

	answer, err := h.answerer.Answer(ctx, doc.Text, msg.Text)
	if err != nil {
		h.log.Warn("answer failed",
			zap.Int64("chat", chatID),
			zap.String("document", doc.Name),
			zap.Error(err))
		// the document stays loaded; a retried question works
		h.reply(chatID, replyUpstreamDown)
		return
	}

	h.reply(chatID, answer)
}

// finishStatus edits the processing status message into the final text,
// falling back to a fresh message when there is nothing to edit.
func (h *Handler) finishStatus(chatID int64, statusID int, text string) {
	if statusID != 0 {
		if err := h.messenger.EditMessage(chatID, statusID, text); err == nil {
			return
		}
	}
	h.reply(chatID, text)
}

func (h *Handler) reply(chatID int64, text string) {
	if _, err := h.messenger.SendMessage(chatID, text); err != nil {
		h.log.Warn("sending reply", zap.Int64("chat", chatID), zap.Error(err))
	}
}

func isPDF(doc *tgbotapi.Document) bool {
	if doc.MimeType == "application/pdf" {
		return true
	}
	return doc.MimeType == "" && strings.HasSuffix(strings.ToLower(doc.FileName), ".pdf")
}
