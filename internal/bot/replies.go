package bot

// User-facing reply text. Tests assert on which reply fired, so changing
// the wording here does not change behavior.
const (
	replyWelcome = "Hi! I answer questions about PDF documents.\n\n" +
		"1. Send me a PDF file\n" +
		"2. Ask me anything about its content\n" +
		"3. Send /clear to forget the current document"

	replyCleared        = "Document cleared. Send me a new PDF whenever you are ready."
	replyNothingToClear = "There is no document to clear."
	replyNoDocument     = "No document loaded yet. Send me a PDF first, then ask your question."

	replyProcessing     = "Reading your document..."
	replyAnalyzed       = "Done! *%s* is ready (%d pages). Ask me anything about it."
	replyNotPDF         = "I can only read PDF files. Please send the document as a PDF."
	replyTooLarge       = "That file is too large for me. PDFs up to %d MB are fine."
	replyDownloadFailed = "I could not download that file from Telegram. Please try sending it again."
	replyCannotRead     = "I could not read that PDF. It may be corrupted or contain only scanned images."

	replyUpstreamDown = "The answer service is having trouble right now. Please try again in a moment."
)
