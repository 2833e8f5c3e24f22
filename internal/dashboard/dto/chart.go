package dto

// ChartSpec is a Plotly figure: the browser hands it to Plotly.newPlot as is.
type ChartSpec struct {
	Data   []BarTrace  `json:"data"`
	Layout ChartLayout `json:"layout"`
}

// BarTrace is a single bar series. A nil Y value leaves a gap in the bars.
type BarTrace struct {
	Type string     `json:"type"`
	Name string     `json:"name"`
	X    []string   `json:"x"`
	Y    []*float64 `json:"y"`
}

type ChartLayout struct {
	Title ChartText `json:"title"`
	XAxis ChartAxis `json:"xaxis"`
	YAxis ChartAxis `json:"yaxis"`
}

type ChartAxis struct {
	Title ChartText `json:"title"`
}

type ChartText struct {
	Text string `json:"text"`
}
