// Package text provides lexical preprocessing for free-form answers.
package text

import (
	"strings"
	"unicode"
)

const minTokenRunes = 3

// stopWords are high-frequency words that carry no signal for
// classification. Only words of three runes or more need to be listed;
// shorter ones are dropped by the length filter.
var stopWords = map[string]struct{}{
	"что":    {},
	"как":    {},
	"это":    {},
	"этот":   {},
	"эта":    {},
	"для":    {},
	"или":    {},
	"чтобы":  {},
	"когда":  {},
	"где":    {},
	"там":    {},
	"тут":    {},
	"так":    {},
	"тоже":   {},
	"также":  {},
	"если":   {},
	"есть":   {},
	"был":    {},
	"была":   {},
	"было":   {},
	"были":   {},
	"быть":   {},
	"мне":    {},
	"меня":   {},
	"мой":    {},
	"моя":    {},
	"мои":    {},
	"себя":   {},
	"себе":   {},
	"они":    {},
	"оно":    {},
	"она":    {},
	"его":    {},
	"еще":    {},
	"ещё":    {},
	"уже":    {},
	"очень":  {},
	"просто": {},
	"только": {},
	"всегда": {},
	"все":    {},
	"всё":    {},
	"вот":    {},
	"при":    {},
	"про":    {},
	"над":    {},
	"под":    {},
	"без":    {},
	"the":    {},
	"and":    {},
	"for":    {},
	"with":   {},
	"that":   {},
	"this":   {},
}

// Tokenize lowercases the input, strips punctuation, splits on
// whitespace and drops stop words and tokens shorter than three runes.
func Tokenize(s string) []string {
	lower := strings.ToLower(s)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < minTokenRunes {
			continue
		}
		if _, skip := stopWords[f]; skip {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// TruncateRunes returns the first n runes of s.
func TruncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
