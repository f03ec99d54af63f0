package query

import "strings"

// fragmentRule routes one extension fragment into a clause bucket. rest is
// the trimmed remainder after the keyword; full is the whole fragment.
type fragmentRule struct {
	keyword string
	apply   func(q *Query, rest, full string)
}

// fragmentRules is checked in order, most specific keyword first. The
// trailing space on "and " and "or " keeps them from swallowing
// "order by ..." and friends.
var fragmentRules = []fragmentRule{
	{"select", func(q *Query, _, full string) { q.parseStatement(full) }},
	{"from", func(q *Query, rest, _ string) { q.from = rest }},
	{"left join", applyJoin},
	{"right join", applyJoin},
	{"inner join", applyJoin},
	{"join", applyJoin},
	{"where", func(q *Query, rest, _ string) { q.wheres = append(q.wheres, rest) }},
	{"and ", func(q *Query, rest, _ string) { q.addCondition(rest, "AND ") }},
	{"or ", func(q *Query, rest, _ string) { q.addCondition(rest, "OR ") }},
	{"group by", func(q *Query, rest, _ string) { q.groupBy = append(q.groupBy, rest) }},
	{"order by", func(q *Query, rest, _ string) { q.orderBy = append(q.orderBy, rest) }},
	{"limit", func(q *Query, rest, _ string) { q.limit = rest }},
	{"offset", func(q *Query, rest, _ string) { q.offset = rest }},
}

// applyJoin appends the whole fragment: join entries carry their own keyword
// and render verbatim.
func applyJoin(q *Query, _, full string) {
	q.joins = append(q.joins, full)
}

// classify routes one fragment into the matching clause bucket. A fragment
// starting with "select" is a full statement and goes through the line
// parser instead. Fragments matching no rule are bare WHERE conditions;
// nothing is ever rejected.
func (q *Query) classify(fragment string) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return
	}
	lower := strings.ToLower(fragment)
	for _, rule := range fragmentRules {
		if strings.HasPrefix(lower, rule.keyword) {
			rule.apply(q, strings.TrimSpace(fragment[len(rule.keyword):]), fragment)
			return
		}
	}
	q.addCondition(fragment, "AND ")
}

// addCondition appends one WHERE condition, baking the connective into the
// entry when an earlier condition exists. The first condition is never
// prefixed. The renderer relies on this and inserts no connectives itself.
func (q *Query) addCondition(cond, connective string) {
	if len(q.wheres) > 0 {
		cond = connective + cond
	}
	q.wheres = append(q.wheres, cond)
}
