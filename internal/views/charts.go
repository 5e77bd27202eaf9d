package views

import (
	"fmt"
	"math"
	"strings"

	"sustainability-dashboard/internal/entities"
	"sustainability-dashboard/pkg/utils"
)

// Все координаты считаются заранее и форматируются с одним знаком после точки,
// чтобы одинаковые данные давали байт-в-байт одинаковый SVG.

type ChartPoint struct {
	X, Y  string
	Label string
	Value string
}

type ChartTick struct {
	Pos   string
	Label string
}

type LineChart struct {
	Width, Height int
	Left, Right   string
	Top, Bottom   string
	Polyline      string
	Points        []ChartPoint
	YTicks        []ChartTick
	Series        string
}

type Bar struct {
	X, Y          string
	Width, Height string
	LabelX        string
	Label         string
	Value         string
}

type BarChart struct {
	Width, Height int
	Left, Right   string
	Bottom        string
	Bars          []Bar
	YTicks        []ChartTick
	Series        string
}

type RadarAxis struct {
	X2, Y2         string
	LabelX, LabelY string
	Label          string
	Anchor         string
}

type RadarChart struct {
	Size    int
	Center  string
	Rings   []string
	Axes    []RadarAxis
	Current string
	Target  string
}

const (
	chartWidth   = 640
	chartHeight  = 260
	chartPadding = 44
	yTickCount   = 4
)

func coord(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// niceMax округляет верхнюю границу оси вверх до "красивого" числа.
func niceMax(v float64) float64 {
	if v <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	for _, step := range []float64{1, 2, 2.5, 5, 10} {
		if step*mag >= v {
			return step * mag
		}
	}
	return 10 * mag
}

func yTicks(maxV float64, top, bottom float64) []ChartTick {
	ticks := make([]ChartTick, 0, yTickCount+1)
	for i := 0; i <= yTickCount; i++ {
		v := maxV * float64(i) / yTickCount
		y := bottom - (bottom-top)*float64(i)/yTickCount
		ticks = append(ticks, ChartTick{Pos: coord(y), Label: utils.FormatNumber(v)})
	}
	return ticks
}

// NewLineChart - динамика одной метрики по датам.
func NewLineChart(trend []entities.TrendPoint, m entities.Metric) LineChart {
	left, right := float64(chartPadding), float64(chartWidth-chartPadding/2)
	top, bottom := float64(chartPadding/2), float64(chartHeight-chartPadding)

	var maxV float64
	for _, p := range trend {
		maxV = math.Max(maxV, p.Values[m])
	}
	maxV = niceMax(maxV)

	chart := LineChart{
		Width:  chartWidth,
		Height: chartHeight,
		Left:   coord(left),
		Right:  coord(right),
		Top:    coord(top),
		Bottom: coord(bottom),
		YTicks: yTicks(maxV, top, bottom),
		Series: m.Label(),
	}

	n := len(trend)
	coords := make([]string, 0, n)
	for i, p := range trend {
		x := left + (right-left)/2
		if n > 1 {
			x = left + (right-left)*float64(i)/float64(n-1)
		}
		y := bottom - (bottom-top)*p.Values[m]/maxV
		pt := ChartPoint{X: coord(x), Y: coord(y), Label: p.Date, Value: utils.FormatNumber(p.Values[m])}
		chart.Points = append(chart.Points, pt)
		coords = append(coords, pt.X+","+pt.Y)
	}
	chart.Polyline = strings.Join(coords, " ")
	return chart
}

// NewBarChart - вклад цехов в одну метрику.
func NewBarChart(depts []entities.DepartmentStat, m entities.Metric) BarChart {
	left, right := float64(chartPadding), float64(chartWidth-chartPadding/2)
	top, bottom := float64(chartPadding/2), float64(chartHeight-chartPadding)

	var maxV float64
	for _, d := range depts {
		maxV = math.Max(maxV, d.Values[m])
	}
	maxV = niceMax(maxV)

	chart := BarChart{
		Width:  chartWidth,
		Height: chartHeight,
		Left:   coord(left),
		Right:  coord(right),
		Bottom: coord(bottom),
		YTicks: yTicks(maxV, top, bottom),
		Series: m.Label(),
	}
	if len(depts) == 0 {
		return chart
	}

	slot := (right - left) / float64(len(depts))
	barWidth := slot * 0.6
	for i, d := range depts {
		h := (bottom - top) * d.Values[m] / maxV
		x := left + slot*float64(i) + (slot-barWidth)/2
		chart.Bars = append(chart.Bars, Bar{
			X:      coord(x),
			Y:      coord(bottom - h),
			Width:  coord(barWidth),
			Height: coord(h),
			LabelX: coord(x + barWidth/2),
			Label:  d.Department,
			Value:  utils.FormatNumber(d.Values[m]),
		})
	}
	return chart
}

// NewRadarChart строит радар общей эффективности по шкале 0..100.
// Значения выше 100 рисуются на внешнем кольце.
func NewRadarChart(points []entities.RadarPoint, size int) RadarChart {
	c := float64(size) / 2
	radius := c - 40

	chart := RadarChart{Size: size, Center: coord(c)}
	for _, ring := range []float64{25, 50, 75, 100} {
		chart.Rings = append(chart.Rings, polygon(len(points), c, func(int) float64 { return radius * ring / 100 }))
	}

	n := len(points)
	for i, p := range points {
		x, y := radarXY(i, n, c, radius)
		lx, ly := radarXY(i, n, c, radius+18)
		anchor := "middle"
		switch {
		case lx > c+1:
			anchor = "start"
		case lx < c-1:
			anchor = "end"
		}
		chart.Axes = append(chart.Axes, RadarAxis{
			X2: coord(x), Y2: coord(y),
			LabelX: coord(lx), LabelY: coord(ly),
			Label:  p.Metric,
			Anchor: anchor,
		})
	}

	chart.Current = polygon(n, c, func(i int) float64 { return radius * clampPercent(points[i].Current) / 100 })
	chart.Target = polygon(n, c, func(i int) float64 { return radius * clampPercent(points[i].Target) / 100 })
	return chart
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(v, 100))
}

// radarXY - первая ось смотрит вверх, дальше по часовой стрелке.
func radarXY(i, n int, c, r float64) (float64, float64) {
	if n == 0 {
		return c, c
	}
	angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	return c + r*math.Cos(angle), c + r*math.Sin(angle)
}

func polygon(n int, c float64, r func(int) float64) string {
	pts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		x, y := radarXY(i, n, c, r(i))
		pts = append(pts, coord(x)+","+coord(y))
	}
	return strings.Join(pts, " ")
}
