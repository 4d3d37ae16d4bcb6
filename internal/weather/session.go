package weather

// QueryRunner evaluates queries against some record source.
type QueryRunner interface {
	RunQuery(q Query) Report
}

// Selection is the query a presentation layer last ran.
type Selection struct {
	Kind      Kind
	Threshold *float64
}

// Empty reports whether no query has been selected yet.
func (s Selection) Empty() bool {
	return s.Kind == ""
}

// Dispatch runs sel for the given month selector.
func Dispatch(runner QueryRunner, sel Selection, monthSelector string) Report {
	if monthSelector == "" {
		return Report{Kind: sel.Kind, Status: StatusNoMonthSelected, Text: noMonthSelectedText}
	}
	if sel.Empty() {
		return Report{Status: StatusNoQuery, Text: noQuerySelectedText}
	}
	month, name := ResolveMonth(monthSelector)
	return runner.RunQuery(Query{
		Kind:      sel.Kind,
		Month:     month,
		MonthName: name,
		Threshold: sel.Threshold,
	})
}

// Session tracks the selected month and the last query of one interactive
// user so that changing the month re-runs the same query.
// A Session is not safe for concurrent use.
type Session struct {
	runner    QueryRunner
	month     string
	selection Selection
}

// NewSession creates a Session with nothing selected.
func NewSession(runner QueryRunner) *Session {
	return &Session{runner: runner}
}

// Month returns the current month selector.
func (s *Session) Month() string { return s.month }

// Selection returns the last query that ran with a month selected.
func (s *Session) Selection() Selection { return s.selection }

// Select runs a query for the current month. Without a month nothing is
// remembered.
func (s *Session) Select(sel Selection) Report {
	if s.month == "" {
		return Report{Kind: sel.Kind, Status: StatusNoMonthSelected, Text: noMonthSelectedText}
	}
	rep := Dispatch(s.runner, sel, s.month)
	if sel.Kind.Valid() {
		s.selection = sel
	}
	return rep
}

// SetMonth changes the month and re-runs the last selected query, if any.
func (s *Session) SetMonth(monthSelector string) Report {
	s.month = monthSelector
	return Dispatch(s.runner, s.selection, monthSelector)
}
