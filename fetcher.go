package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// DocumentLoader reads an export from disk or a URL and hands it to the
// first handler that accepts it
type DocumentLoader struct {
	handlers []SourceHandler
	client   *http.Client
}

// NewDocumentLoader creates a loader with the default handlers
func NewDocumentLoader() *DocumentLoader {
	l := &DocumentLoader{
		client: &http.Client{Timeout: 30 * time.Second},
	}

	// Register handlers (most specific first)
	l.AddHandler(&HTMLHandler{converter: md.NewConverter("", true, nil)})
	l.AddHandler(&MarkdownHandler{}) // fallback

	return l
}

// AddHandler adds a handler to the chain
func (l *DocumentLoader) AddHandler(handler SourceHandler) {
	l.handlers = append(l.handlers, handler)
}

// Load reads the source and converts it into a Document
func (l *DocumentLoader) Load(source string) (*Document, error) {
	var (
		data        []byte
		contentType string
		err         error
	)

	if isRemote(source) {
		data, contentType, err = l.fetch(source)
	} else {
		data, err = readLocal(source)
	}
	if err != nil {
		return nil, err
	}

	for _, handler := range l.handlers {
		if handler.CanHandle(source, contentType) {
			text, err := handler.Handle(source, data)
			if err != nil {
				return nil, err
			}
			return &Document{Source: source, Text: text}, nil
		}
	}

	return nil, fmt.Errorf("no handler found for %s", source)
}

func (l *DocumentLoader) fetch(url string) ([]byte, string, error) {
	resp, err := l.client.Get(url)
	if err != nil {
		return nil, "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading response body: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func readLocal(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &MissingInputError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
