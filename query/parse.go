package query

import "strings"

// section tracks which clause the line parser is inside of, so that lines
// without a leading keyword can be absorbed as continuations.
type section int

const (
	sectionNone section = iota
	sectionSelect
	sectionFrom
	sectionJoins
	sectionWhere
	sectionGroupBy
	sectionOrderBy
)

// statementKeywords is the prefix priority order for full statements. More
// specific keywords come before shorter ones so "left join" never falls
// through to "join" with a mangled remainder.
var statementKeywords = []struct {
	keyword string
	section section
}{
	{"select", sectionSelect},
	{"from", sectionFrom},
	{"left join", sectionJoins},
	{"right join", sectionJoins},
	{"inner join", sectionJoins},
	{"join", sectionJoins},
	{"where", sectionWhere},
	{"group by", sectionGroupBy},
	{"order by", sectionOrderBy},
}

// parseStatement splits a full statement into lines and routes each into its
// clause bucket. Lines that open no clause are continuations of the current
// section; continuations outside select/where/group by/order by are dropped.
func (q *Query) parseStatement(text string) {
	cur := sectionNone
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		cur = q.parseLine(line, cur)
	}
}

func (q *Query) parseLine(line string, cur section) section {
	lower := strings.ToLower(line)

	for _, kw := range statementKeywords {
		if !strings.HasPrefix(lower, kw.keyword) {
			continue
		}
		rest := strings.TrimSpace(line[len(kw.keyword):])
		switch kw.section {
		case sectionSelect:
			if rest != "" {
				q.selects = append(q.selects, rest)
			}
		case sectionFrom:
			q.from = rest
		case sectionJoins:
			// Join lines keep their own keyword; they render verbatim.
			q.joins = append(q.joins, line)
		case sectionWhere:
			q.wheres = append(q.wheres, rest)
		case sectionGroupBy:
			q.groupBy = append(q.groupBy, rest)
		case sectionOrderBy:
			q.orderBy = append(q.orderBy, rest)
		}
		return kw.section
	}

	if rest, ok := cutKeyword(line, lower, "limit"); ok {
		q.limit = rest
		return sectionNone
	}
	if rest, ok := cutKeyword(line, lower, "offset"); ok {
		q.offset = rest
		return sectionNone
	}

	// No keyword: continuation of the current section.
	switch cur {
	case sectionSelect:
		if field, ok := trimFieldCommas(line); ok {
			q.selects = append(q.selects, field)
		}
	case sectionWhere:
		q.wheres = append(q.wheres, line)
	case sectionGroupBy:
		q.groupBy = append(q.groupBy, line)
	case sectionOrderBy:
		q.orderBy = append(q.orderBy, line)
	}
	return cur
}

// cutKeyword returns the trimmed remainder of line after keyword when lower
// starts with it.
func cutKeyword(line, lower, keyword string) (string, bool) {
	if !strings.HasPrefix(lower, keyword) {
		return "", false
	}
	return strings.TrimSpace(line[len(keyword):]), true
}

// trimFieldCommas normalizes one field of a user-typed multi-line SELECT
// list: one optional leading and one optional trailing comma are stripped,
// and comma-only lines are skipped entirely.
func trimFieldCommas(line string) (string, bool) {
	if line == "," {
		return "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, ","))
	line = strings.TrimSpace(strings.TrimSuffix(line, ","))
	if line == "" {
		return "", false
	}
	return line, true
}
