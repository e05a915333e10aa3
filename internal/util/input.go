package util

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TaskInput is the parsed form of a quick-add task line such as
// "Write report p:high h:2.5".
type TaskInput struct {
	Title    string
	Priority string
	Hours    *float64
}

// SessionInput is the parsed form of a quick-add session line such as
// "tomorrow h:3 deep work".
type SessionInput struct {
	Date  time.Time
	Hours float64
	Note  string
}

var (
	priorityRegex = regexp.MustCompile(`(?:^|\s)p:(\w+)`)
	hoursRegex    = regexp.MustCompile(`(?:^|\s)h:(\d*\.?\d+)`)
)

// extract removes every match of re from *line and returns the captured values.
func extract(line *string, re *regexp.Regexp) []string {
	matches := re.FindAllStringSubmatch(*line, -1)
	if matches == nil {
		return nil
	}
	var values []string
	for _, match := range matches {
		if len(match) > 1 {
			values = append(values, match[1])
		}
	}
	*line = re.ReplaceAllString(*line, " ")
	return values
}

// ParseTaskInput splits a quick-add line into title, priority and hours.
// The last p: and h: tokens win; everything else forms the title.
func ParseTaskInput(line string) TaskInput {
	var in TaskInput
	if ps := extract(&line, priorityRegex); len(ps) > 0 {
		in.Priority = ps[len(ps)-1]
	}
	if hs := extract(&line, hoursRegex); len(hs) > 0 {
		if h, err := strconv.ParseFloat(hs[len(hs)-1], 64); err == nil {
			in.Hours = &h
		}
	}
	in.Title = strings.Join(strings.Fields(line), " ")
	return in
}

// ParseSessionInput reads a date token followed by optional h: capacity and a
// free-text note. defaultHours applies when no h: token is present.
func ParseSessionInput(line string, today time.Time, defaultHours float64) (SessionInput, error) {
	in := SessionInput{Hours: defaultHours}
	if hs := extract(&line, hoursRegex); len(hs) > 0 {
		h, err := strconv.ParseFloat(hs[len(hs)-1], 64)
		if err != nil {
			return in, err
		}
		in.Hours = h
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return in, errors.New("missing session date")
	}
	date, err := ResolveDate(fields[0], today)
	if err != nil {
		return in, err
	}
	in.Date = date
	in.Note = strings.Join(fields[1:], " ")
	return in, nil
}
