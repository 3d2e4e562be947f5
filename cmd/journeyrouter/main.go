package main

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	lib "github.com/rechor-go/journeyrouter"
	"github.com/rechor-go/journeyrouter/formatter"
	"github.com/rechor-go/journeyrouter/internal"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to config.yml")
	date := flag.String("date", "", "journey date, YYYY-MM-DD (defaults to timetable.defaultDate)")
	from := flag.Int("from", -1, "departure station id")
	to := flag.Int("to", -1, "arrival station id")
	maxChanges := flag.Int("max-changes", 0, "override the configured maximum number of changes (0 = use config)")
	format := flag.String("format", "json", "output format: json")
	flag.Parse()

	internal.InitLogging()

	svc, err := lib.Open(*configPath)
	if err != nil {
		panic(err)
	}
	defer svc.Close()

	if *from < 0 || *to < 0 {
		panic("both -from and -to are required")
	}

	journeyDate := svc.DefaultDate()
	if *date != "" {
		journeyDate, err = time.Parse("2006-01-02", *date)
		if err != nil {
			panic(fmt.Errorf("parsing -date: %w", err))
		}
	}
	if journeyDate.IsZero() {
		panic("a -date is required: no timetable.defaultDate is configured")
	}

	journeys, err := svc.Journeys(lib.Query{
		DepStationID: *from,
		ArrStationID: *to,
		Date:         journeyDate,
		MaxChanges:   *maxChanges,
	})
	if err != nil {
		panic(err)
	}

	switch *format {
	case "json":
		fmt.Println(string(formatter.BuildJSON(journeys)))
	default:
		panic("unknown format: " + strconv.Quote(*format))
	}
}
