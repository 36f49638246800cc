// Package curriculum reads the curriculum outline used to seed topic tables.
//
// The outline is markdown with three heading levels:
//
//	# 5-11          study units, dash, grade
//	## <main topic>
//	### <subtopic>
//
// Anything else is ignored.
package curriculum

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

type MainTopic struct {
	Name      string
	Subtopics []string
}

// Unit is one "<units>-<grade>" block of the outline.
type Unit struct {
	Level      string
	Grade      string
	MainTopics []MainTopic
}

var (
	unitHeading = regexp.MustCompile(`^#\s+(\d+)-(\d+)\s*$`)
	mainHeading = regexp.MustCompile(`^##\s+(.+)$`)
	subHeading  = regexp.MustCompile(`^###\s+(.+)$`)
)

func Parse(r io.Reader) ([]Unit, error) {
	var (
		units   []Unit
		current *Unit
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if m := unitHeading.FindStringSubmatch(line); m != nil {
			units = append(units, Unit{Level: m[1], Grade: m[2]})
			current = &units[len(units)-1]
			continue
		}
		// ### must be tested before ##, which would also match it.
		if m := subHeading.FindStringSubmatch(line); m != nil {
			if current == nil || len(current.MainTopics) == 0 {
				return nil, fmt.Errorf("line %d: subtopic %q outside a main topic", lineNo, m[1])
			}
			last := &current.MainTopics[len(current.MainTopics)-1]
			last.Subtopics = append(last.Subtopics, strings.TrimSpace(m[1]))
			continue
		}
		if m := mainHeading.FindStringSubmatch(line); m != nil {
			if current == nil {
				return nil, fmt.Errorf("line %d: main topic %q before any unit heading", lineNo, m[1])
			}
			current.MainTopics = append(current.MainTopics, MainTopic{Name: strings.TrimSpace(m[1])})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return units, nil
}
