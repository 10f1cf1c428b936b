package main

// Time step of the weather and result series.
type Interval string

const (
	IntervalH1  Interval = "1h"
	IntervalM30 Interval = "30m"
	IntervalM15 Interval = "15m"
)

/*
Number of steps per hour.

	Returns:
	    steps per hour

	Notes:
	    1h: 1
	    30m: 2
	    15m: 4
*/
func (i Interval) get_n_hour() int {
	switch i {
	case IntervalH1:
		return 1
	case IntervalM30:
		return 2
	case IntervalM15:
		return 4
	default:
		panic("invalid interval")
	}
}

/*
Step duration.

	Returns:
	    step duration, h
*/
func (i Interval) get_time() float64 {
	switch i {
	case IntervalH1:
		return 1.0
	case IntervalM30:
		return 0.5
	case IntervalM15:
		return 0.25
	default:
		panic("invalid interval")
	}
}

/*
Number of steps in one year of data.

	Returns:
	    steps per year
*/
func (i Interval) get_annual_number() int {
	return 8760 * i.get_n_hour()
}
