// Package reward holds the static policy table mapping a material category
// to the points awarded for classifying it.
package reward

// points is the fixed label→points table. It is consulted once per
// classification; the looked-up value is frozen into the stored record, so
// editing this table never rewrites history.
var points = map[string]int{
	"plastik": 20,
	"kertas":  15,
	"kardus":  10,
	"kaca":    25,
	"logam":   30,
	"residu":  5,
}

// PointsFor returns the reward value for the given category label.
// Labels outside the fixed table yield 0.
func PointsFor(label string) int {
	return points[label]
}
