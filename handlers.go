package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// SourceHandler converts raw export bytes into markdown text
type SourceHandler interface {
	CanHandle(name, contentType string) bool
	Handle(name string, data []byte) (string, error)
}

var debugEnabled bool

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

func debugLog(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// HTMLHandler handles exports saved as HTML
type HTMLHandler struct {
	converter *md.Converter
}

func (h *HTMLHandler) CanHandle(name, contentType string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return strings.Contains(contentType, "text/html")
}

func (h *HTMLHandler) Handle(name string, data []byte) (string, error) {
	markdown, err := h.converter.ConvertString(string(data))
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	debugLog("converted %s from HTML (%d bytes -> %d bytes)", name, len(data), len(markdown))
	return normalizeNewlines(markdown), nil
}

// MarkdownHandler handles plain markdown exports (fallback)
type MarkdownHandler struct{}

func (h *MarkdownHandler) CanHandle(name, contentType string) bool {
	return true // Always handles as fallback
}

func (h *MarkdownHandler) Handle(name string, data []byte) (string, error) {
	return normalizeNewlines(string(data)), nil
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
