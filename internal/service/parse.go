package service

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var (
	errInvalidFormat = errors.New("invalid response format")
	errNoTranslation = errors.New("could not extract translation from response")

	firstSegmentPattern = regexp.MustCompile(`\[\[\["((?:[^"\\]|\\.)+)"`)

	segmentUnescaper = strings.NewReplacer(
		`\\`, `\`,
		`\u0026`, "&",
		`\u003c`, "<",
		`\u003e`, ">",
		`\"`, `"`,
		`\/`, "/",
	)
)

// parseTranslation tries the segment extraction first and the nested array decode second
func parseTranslation(body string) (string, error) {
	if !strings.HasPrefix(body, "[[") {
		return "", errInvalidFormat
	}
	if text, ok := parseFirstSegment(body); ok {
		return text, nil
	}
	if text, ok := parseNestedArray(body); ok {
		return text, nil
	}
	return "", errNoTranslation
}

// parseFirstSegment extracts the first quoted segment of a [[["..." body
func parseFirstSegment(body string) (string, bool) {
	match := firstSegmentPattern.FindStringSubmatch(body)
	if match == nil {
		return "", false
	}
	return segmentUnescaper.Replace(match[1]), true
}

// parseNestedArray decodes [[["part", ...], ["part", ...]], ...] and joins the parts
func parseNestedArray(body string) (string, bool) {
	var outer []json.RawMessage
	if err := json.Unmarshal([]byte(body), &outer); err != nil || len(outer) == 0 {
		return "", false
	}

	var inner []json.RawMessage
	if err := json.Unmarshal(outer[0], &inner); err != nil {
		return "", false
	}

	var sb strings.Builder
	for _, item := range inner {
		var part []json.RawMessage
		if err := json.Unmarshal(item, &part); err != nil || len(part) == 0 {
			continue
		}
		var text string
		if err := json.Unmarshal(part[0], &text); err != nil {
			continue
		}
		sb.WriteString(text)
	}

	if sb.Len() == 0 {
		return "", false
	}
	return sb.String(), true
}
