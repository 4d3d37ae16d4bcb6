package weather

// Kind names one of the month-scoped queries.
type Kind string

const (
	KindAverageTemperature  Kind = "average-temperature"
	KindHotDays             Kind = "hot-days"
	KindColdDays            Kind = "cold-days"
	KindRainyDays           Kind = "rainy-days"
	KindExtremeTemperatures Kind = "extreme-temperatures"
	KindHumidityAnalysis    Kind = "humidity-analysis"
)

// Kinds lists every supported query kind.
func Kinds() []Kind {
	return []Kind{
		KindAverageTemperature,
		KindHotDays,
		KindColdDays,
		KindRainyDays,
		KindExtremeTemperatures,
		KindHumidityAnalysis,
	}
}

// Valid reports whether k is a known query kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Query selects a kind and a month. Threshold, when set, overrides the
// configured threshold for hot-days and cold-days.
type Query struct {
	Kind      Kind
	Month     int
	MonthName string
	Threshold *float64
}

// RunQuery evaluates q against records. It never fails: missing or invalid
// selectors and empty months produce a descriptive Report.
func RunQuery(records []WeatherRecord, q Query, th Thresholds) Report {
	rep := Report{Kind: q.Kind, Month: q.Month, MonthName: q.MonthName}

	if q.MonthName == "" && q.Month == 0 {
		rep.Status = StatusNoMonthSelected
		rep.Text = noMonthSelectedText
		return rep
	}
	if !q.Kind.Valid() {
		rep.Status = StatusNoQuery
		rep.Text = noQuerySelectedText
		return rep
	}
	if MonthName(q.Month) == "" {
		rep.Month = InvalidMonth
		rep.Status = StatusInvalidMonth
		rep.Text = "Unrecognized month: " + q.MonthName
		return rep
	}
	if rep.MonthName == "" {
		rep.MonthName = MonthName(q.Month)
	}

	name := rep.MonthName
	rep.Status = StatusOK

	switch q.Kind {
	case KindAverageTemperature:
		s, ok := AverageTemperature(records, q.Month)
		rep.Text = formatAverageTemperature(name, s, ok)
		rep.Result, rep.Status = resultOrNoData(s, ok)

	case KindHotDays:
		d := DaysAbove(records, q.Month, thresholdOr(q.Threshold, th.Hot))
		rep.Text = formatThresholdDays(name, d)
		rep.Result = d
		if d.Days == 0 {
			rep.Status = StatusNoData
		}

	case KindColdDays:
		d := DaysBelow(records, q.Month, thresholdOr(q.Threshold, th.Cold))
		rep.Text = formatThresholdDays(name, d)
		rep.Result = d
		if d.Days == 0 {
			rep.Status = StatusNoData
		}

	case KindRainyDays:
		s := RainyDays(records, q.Month)
		rep.Text = formatRainyDays(name, s)
		rep.Result = s
		if s.Days == 0 {
			rep.Status = StatusNoData
		}

	case KindExtremeTemperatures:
		e, ok := ExtremeTemperatures(records, q.Month)
		rep.Text = formatExtremes(name, e, ok)
		rep.Result, rep.Status = resultOrNoData(e, ok)

	case KindHumidityAnalysis:
		s, ok := HumidityAnalysis(records, q.Month)
		rep.Text = formatHumidity(name, s, ok)
		rep.Result, rep.Status = resultOrNoData(s, ok)
	}

	return rep
}

func resultOrNoData(v any, ok bool) (any, Status) {
	if !ok {
		return nil, StatusNoData
	}
	return v, StatusOK
}

func thresholdOr(override *float64, def float64) float64 {
	if override != nil {
		return *override
	}
	return def
}
