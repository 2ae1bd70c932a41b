package service

import (
	"context"
	"strings"
)

type MockLogger struct {
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: []string{},
	}
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.messages = append(m.messages, "INFO: "+msg)
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	m.messages = append(m.messages, "ERROR: "+msg+" - "+err.Error())
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.messages = append(m.messages, "DEBUG: "+msg)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.messages = append(m.messages, "WARN: "+msg)
}

func (m *MockLogger) contains(prefix string) bool {
	for _, msg := range m.messages {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

// MockExtractor returns canned results and counts calls
type MockExtractor struct {
	text  string
	err   error
	calls int
	last  []byte
}

func (m *MockExtractor) ExtractText(pdfBytes []byte) (string, error) {
	m.calls++
	m.last = pdfBytes
	return m.text, m.err
}

// MockObjectStorage serves objects from memory keyed by "bucket/path"
type MockObjectStorage struct {
	objects map[string][]byte
	err     error
}

func NewMockObjectStorage() *MockObjectStorage {
	return &MockObjectStorage{objects: make(map[string][]byte)}
}

func (m *MockObjectStorage) Download(ctx context.Context, bucket, path string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.objects[bucket+"/"+path]
	if !ok {
		return nil, errObjectNotFound
	}
	return data, nil
}
