package autocomplete

import (
	"regexp"
	"strings"
)

var (
	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	// reserved by the Lucene and bleve query string grammars
	queryStringEscaper = strings.NewReplacer(
		`\`, `\\`, `+`, `\+`, `-`, `\-`, `=`, `\=`, `&`, `\&`, `|`, `\|`,
		`>`, `\>`, `<`, `\<`, `!`, `\!`, `(`, `\(`, `)`, `\)`, `{`, `\{`,
		`}`, `\}`, `[`, `\[`, `]`, `\]`, `^`, `\^`, `"`, `\"`, `~`, `\~`,
		`*`, `\*`, `?`, `\?`, `:`, `\:`, `/`, `\/`,
	)
)

// LikeEscape is the escape character used by LikePattern.
const LikeEscape = `\`

// LikePattern lowers term for a LOWER(field) LIKE comparison. A trailing
// wildcard is always added and a leading one only for substring matches.
func LikePattern(term string, mode MatchMode) string {
	pattern := likeEscaper.Replace(strings.ToLower(term)) + "%"
	if mode == MatchSubstring {
		pattern = "%" + pattern
	}
	return pattern
}

// RegexPattern anchors term at the start of the value for prefix matches.
// The caller applies case-insensitivity.
func RegexPattern(term string, mode MatchMode) string {
	quoted := regexp.QuoteMeta(term)
	if mode == MatchSubstring {
		return ".*" + quoted + ".*"
	}
	return "^" + quoted + ".*"
}

// WildcardToken is one word of a full-text search term. Leading and
// Trailing mark the wildcards placed around Text.
type WildcardToken struct {
	Text     string
	Leading  bool
	Trailing bool
}

// WildcardTokens lowers term and splits it on whitespace. The last word
// always gets a trailing wildcard so it matches while being typed. In
// substring mode every word is wildcarded on both sides.
func WildcardTokens(term string, mode MatchMode) []WildcardToken {
	words := strings.Fields(strings.ToLower(term))
	tokens := make([]WildcardToken, len(words))
	for i, w := range words {
		tokens[i] = WildcardToken{
			Text:     w,
			Leading:  mode == MatchSubstring,
			Trailing: mode == MatchSubstring || i == len(words)-1,
		}
	}
	return tokens
}

// WildcardPattern renders term as a query string expression. Several
// words are grouped and must all match, e.g. (abc AND de*). An empty
// string is returned when term has no words.
func WildcardPattern(term string, mode MatchMode) string {
	tokens := WildcardTokens(term, mode)
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		part := queryStringEscaper.Replace(tok.Text)
		if tok.Leading {
			part = "*" + part
		}
		if tok.Trailing {
			part += "*"
		}
		parts[i] = part
	}

	if len(parts) > 1 {
		return "(" + strings.Join(parts, " AND ") + ")"
	}
	return strings.Join(parts, "")
}
