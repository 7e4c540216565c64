package ies

import (
	"strings"
)

// Format1986 is reported for files written before LM-63 added a format line.
const Format1986 = "LM-63-1986"

// Keyword is one "[NAME] value" line of an IES header.
type Keyword struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Keywords extracts the bracketed keyword lines of a header in file order.
// [MORE] continuation lines are returned as their own keyword.
func Keywords(header string) []Keyword {
	var keywords []Keyword
	for _, line := range strings.Split(header, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if !strings.HasPrefix(line, "[") {
			continue
		}
		end := strings.IndexByte(line, ']')
		if end < 2 {
			continue
		}
		keywords = append(keywords, Keyword{
			Name:  strings.ToUpper(strings.TrimSpace(line[1:end])),
			Value: strings.TrimSpace(line[end+1:]),
		})
	}
	return keywords
}

// Format returns the format line of a header ("IESNA:LM-63-2002",
// "IESNA91", ...) or Format1986 when there is none.
func Format(header string) string {
	first, _, _ := strings.Cut(header, "\n")
	first = strings.TrimSpace(first)
	if !strings.HasPrefix(strings.ToUpper(first), FileTag) {
		return Format1986
	}
	if fields := strings.Fields(first); len(fields) > 0 {
		return fields[0]
	}
	return first
}

// Keywords returns the keyword lines of the file header.
func (d *LightData) Keywords() []Keyword {
	return Keywords(d.ExtraData)
}

// Keyword returns the value of the first keyword called name, ignoring case.
func (d *LightData) Keyword(name string) (string, bool) {
	name = strings.ToUpper(name)
	for _, kw := range d.Keywords() {
		if kw.Name == name {
			return kw.Value, true
		}
	}
	return "", false
}

// Format returns the IES format of the file, see Format.
func (d *LightData) Format() string {
	return Format(d.ExtraData)
}
