// Package docs holds the documentation topics shown by `marina topic`.
//
// readme.md is the index: every other topic is listed there as a
//
//	* <name>: <summary>
//
// bullet, in reading order.
package docs

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Topic is an entry of the documentation index.
type Topic struct {
	Name    string
	Summary string
}

// Topics returns the topics listed in the readme, in reading order.
func Topics() ([]Topic, error) {
	readme, err := docs.ReadFile("readme.md")
	if err != nil {
		return nil, err
	}
	var topics []Topic
	scanner := bufio.NewScanner(strings.NewReader(string(readme)))
	for scanner.Scan() {
		item, ok := strings.CutPrefix(scanner.Text(), "* ")
		if !ok {
			continue
		}
		name, summary, ok := strings.Cut(item, ":")
		if !ok {
			continue
		}
		topics = append(topics, Topic{Name: strings.TrimSpace(name), Summary: strings.TrimSpace(summary)})
	}
	return topics, scanner.Err()
}

// GetTopic returns the content of a documentation topic, "*" for the readme
// followed by every topic.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(append([]string{"readme"}, topics...)...)
	}

	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("unknown topic %q, 'marina topic -list' lists them", topic)
	}
	return string(content), nil
}

// GetTopics returns the content of several topics, separated by a blank line.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the names of the topics, in reading order.
func GetAllTopics() ([]string, error) {
	topics, err := Topics()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.Name
	}
	return names, nil
}
