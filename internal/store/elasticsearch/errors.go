package elasticsearch

import (
	"errors"
	"strings"
)

var errNilESClient = errors.New("elasticsearch client is nil")

type SearchError struct {
	Op     string
	Index  string
	ESCode string
	Err    error
}

func (err SearchError) Error() string {
	var s strings.Builder
	s.WriteString("search error: ")
	if err.Op != "" {
		s.WriteString(err.Op + ": ")
	}
	if err.Index != "" {
		s.WriteString("index '" + err.Index + "': ")
	}
	if err.ESCode != "" {
		s.WriteString("elasticsearch code '" + err.ESCode + "': ")
	}
	if err.Err != nil {
		s.WriteString(err.Err.Error())
	}
	return s.String()
}

func (err SearchError) Unwrap() error {
	return err.Err
}
