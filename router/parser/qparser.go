package parser

import (
	"strings"

	"github.com/pg-sharding/lyx/lyx"
)

// Parser turns raw SQL text into a syntax tree. The comment return value
// is the joined content of all block comments in the query; the shadow
// hint judgement reads annotations out of it.
type Parser interface {
	Parse(query string) (lyx.Node, string, error)
}

type QParser struct {
}

var _ Parser = &QParser{}

func (qp *QParser) Parse(query string) (lyx.Node, string, error) {
	comments := extractComments(query)

	stmt, err := lyx.Parse(query)
	if err != nil {
		return nil, comments, err
	}

	return stmt, comments, nil
}

func extractComments(query string) string {
	var parts []string

	for i := 0; i+3 < len(query); i++ {
		if query[i] != '/' || query[i+1] != '*' {
			continue
		}
		j := i + 2

		for ; j+1 < len(query); j++ {
			if query[j] == '*' && query[j+1] == '/' {
				break
			}
		}

		if j+1 >= len(query) {
			break
		}

		parts = append(parts, query[i+2:j])
		i = j + 1
	}

	return strings.Join(parts, ",")
}
