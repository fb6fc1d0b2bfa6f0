package schedule

import (
	"reflect"
	"testing"
	"time"

	"github.com/localscene/events-backend/internal/dates"
	"github.com/localscene/events-backend/internal/model"
)

func testCalendar(t *testing.T, today string) *dates.Calendar {
	t.Helper()

	loc, err := time.LoadLocation("America/Denver")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	noon, err := time.ParseInLocation("2006-01-02 15:04", today+" 12:00", loc)
	if err != nil {
		t.Fatalf("parse today %q: %v", today, err)
	}

	return dates.NewCalendarAt(loc, func() time.Time { return noon })
}

func event(id string, create model.EventCreate) *model.EventDefinition {
	if create.Status == "" {
		create.Status = model.EventStatusApproved
	}

	return &model.EventDefinition{ID: id, EventCreate: create}
}

func TestExpandDatesSingle(t *testing.T) {
	cal := testCalendar(t, "2026-02-02")

	t.Run("inside window", func(t *testing.T) {
		got, confident := ExpandDates(cal, event("1", model.EventCreate{EventDate: "2026-02-06"}), "2026-02-02", "2026-02-28")
		if want := []string{"2026-02-06"}; !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if !confident {
			t.Error("single explicit date should be confident")
		}
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		got, _ := ExpandDates(cal, event("1", model.EventCreate{EventDate: "2026-02-02"}), "2026-02-02", "2026-02-02")
		if want := []string{"2026-02-02"}; !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("outside window", func(t *testing.T) {
		got, confident := ExpandDates(cal, event("1", model.EventCreate{EventDate: "2026-03-15"}), "2026-02-02", "2026-02-28")
		if len(got) != 0 {
			t.Errorf("got %v, want none", got)
		}
		if !confident {
			t.Error("an empty deterministic expansion is still confident")
		}
	})

	t.Run("inverted window", func(t *testing.T) {
		got, _ := ExpandDates(cal, event("1", model.EventCreate{EventDate: "2026-02-06"}), "2026-02-28", "2026-02-02")
		if len(got) != 0 {
			t.Errorf("got %v, want none", got)
		}
	})
}

func TestExpandDatesCustom(t *testing.T) {
	cal := testCalendar(t, "2026-02-02")

	ev := event("1", model.EventCreate{
		CustomDates: []string{"2026-02-20", "2026-02-05", "garbage", "2026-02-05", "2026-05-01"},
	})

	got, confident := ExpandDates(cal, ev, "2026-02-02", "2026-02-28")
	if want := []string{"2026-02-05", "2026-02-20"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if !confident {
		t.Error("explicit custom dates should be confident")
	}
}

func TestExpandDatesCustomBeatsRule(t *testing.T) {
	cal := testCalendar(t, "2026-02-02")

	ev := event("1", model.EventCreate{
		CustomDates:    []string{"2026-02-05"},
		RecurrenceRule: "weekly",
		DayOfWeek:      "Monday",
		EventDate:      "2026-02-02",
	})

	got, _ := ExpandDates(cal, ev, "2026-02-02", "2026-02-28")
	if want := []string{"2026-02-05"}; !reflect.DeepEqual(got, want) {
		t.Errorf("custom dates should win over the rule, got %v, want %v", got, want)
	}
}

func TestExpandDatesWeekday(t *testing.T) {
	cal := testCalendar(t, "2026-02-02")

	t.Run("anchored at event date", func(t *testing.T) {
		ev := event("1", model.EventCreate{DayOfWeek: "Monday", EventDate: "2026-02-02"})

		got, confident := ExpandDates(cal, ev, "2026-02-02", "2026-03-02")
		want := []string{"2026-02-02", "2026-02-09", "2026-02-16", "2026-02-23", "2026-03-02"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if !confident {
			t.Error("declared weekday should be confident")
		}
	})

	t.Run("event date snaps forward onto the weekday", func(t *testing.T) {
		// 2026-02-03 is a Tuesday
		ev := event("1", model.EventCreate{DayOfWeek: "Friday", EventDate: "2026-02-03"})

		got, _ := ExpandDates(cal, ev, "2026-02-02", "2026-02-28")
		want := []string{"2026-02-06", "2026-02-13", "2026-02-20", "2026-02-27"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("no event date anchors at window start", func(t *testing.T) {
		ev := event("1", model.EventCreate{DayOfWeek: "Wednesday"})

		got, _ := ExpandDates(cal, ev, "2026-02-02", "2026-02-18")
		want := []string{"2026-02-04", "2026-02-11", "2026-02-18"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("series crosses spring forward", func(t *testing.T) {
		ev := event("1", model.EventCreate{DayOfWeek: "Monday", EventDate: "2026-03-02"})

		got, _ := ExpandDates(cal, ev, "2026-03-02", "2026-03-16")
		want := []string{"2026-03-02", "2026-03-09", "2026-03-16"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}

func TestExpandDatesMaxOccurrences(t *testing.T) {
	cal := testCalendar(t, "2026-02-02")

	t.Run("cap counts from the series anchor", func(t *testing.T) {
		// anchor 2026-01-26 lies one week before the window; it consumes
		// one of the three allowed occurrences
		ev := event("1", model.EventCreate{DayOfWeek: "Monday", EventDate: "2026-01-26", MaxOccurrences: 3})

		got, _ := ExpandDates(cal, ev, "2026-02-02", "2026-02-28")
		want := []string{"2026-02-02", "2026-02-09"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("series exhausted before the window", func(t *testing.T) {
		ev := event("1", model.EventCreate{DayOfWeek: "Monday", EventDate: "2026-01-05", MaxOccurrences: 2})

		got, _ := ExpandDates(cal, ev, "2026-02-02", "2026-02-28")
		if len(got) != 0 {
			t.Errorf("got %v, want none", got)
		}
	})

	t.Run("zero means uncapped", func(t *testing.T) {
		ev := event("1", model.EventCreate{DayOfWeek: "Monday", EventDate: "2026-02-02"})

		got, _ := ExpandDates(cal, ev, "2026-02-02", "2026-03-02")
		if len(got) != 5 {
			t.Errorf("got %d dates, want 5", len(got))
		}
	})
}

func TestExpandDatesRule(t *testing.T) {
	cal := testCalendar(t, "2026-02-02")

	t.Run("weekly marker", func(t *testing.T) {
		ev := event("1", model.EventCreate{RecurrenceRule: "weekly", EventDate: "2026-02-02"})

		got, confident := ExpandDates(cal, ev, "2026-02-02", "2026-03-02")
		want := []string{"2026-02-02", "2026-02-09", "2026-02-16", "2026-02-23", "2026-03-02"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if !confident {
			t.Error("declared rule should be confident")
		}
	})

	t.Run("fortnightly marker", func(t *testing.T) {
		ev := event("1", model.EventCreate{RecurrenceRule: "fortnightly", EventDate: "2026-02-02"})

		got, _ := ExpandDates(cal, ev, "2026-02-02", "2026-03-02")
		want := []string{"2026-02-02", "2026-02-16", "2026-03-02"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("monthly marker", func(t *testing.T) {
		ev := event("1", model.EventCreate{RecurrenceRule: "monthly", EventDate: "2026-02-05"})

		got, _ := ExpandDates(cal, ev, "2026-02-02", "2026-04-30")
		want := []string{"2026-02-05", "2026-03-05", "2026-04-05"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("raw rrule string", func(t *testing.T) {
		ev := event("1", model.EventCreate{RecurrenceRule: "RRULE:FREQ=WEEKLY", EventDate: "2026-02-02"})

		got, _ := ExpandDates(cal, ev, "2026-02-02", "2026-02-16")
		want := []string{"2026-02-02", "2026-02-09", "2026-02-16"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("rule honors max occurrences", func(t *testing.T) {
		ev := event("1", model.EventCreate{RecurrenceRule: "weekly", EventDate: "2026-02-02", MaxOccurrences: 2})

		got, _ := ExpandDates(cal, ev, "2026-02-02", "2026-03-02")
		want := []string{"2026-02-02", "2026-02-09"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("unparseable rule falls back to the weekday", func(t *testing.T) {
		ev := event("1", model.EventCreate{RecurrenceRule: "every other blue moon", DayOfWeek: "Tuesday"})

		got, confident := ExpandDates(cal, ev, "2026-02-02", "2026-02-17")
		want := []string{"2026-02-03", "2026-02-10", "2026-02-17"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if !confident {
			t.Error("weekday fallback is still a declared schedule")
		}
	})

	t.Run("rule crosses spring forward", func(t *testing.T) {
		ev := event("1", model.EventCreate{RecurrenceRule: "weekly", EventDate: "2026-03-02"})

		got, _ := ExpandDates(cal, ev, "2026-03-02", "2026-03-16")
		want := []string{"2026-03-02", "2026-03-09", "2026-03-16"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}

func TestExpandDatesGuessedWeekday(t *testing.T) {
	cal := testCalendar(t, "2026-02-02")

	t.Run("weekday guessed from the anchor date", func(t *testing.T) {
		// recurring flag with neither rule nor weekday; 2026-02-03 is a Tuesday
		ev := event("1", model.EventCreate{IsRecurring: true, EventDate: "2026-02-03"})

		got, confident := ExpandDates(cal, ev, "2026-02-02", "2026-02-17")
		want := []string{"2026-02-03", "2026-02-10", "2026-02-17"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if confident {
			t.Error("a guessed series must not be confident")
		}
	})

	t.Run("nothing to guess from", func(t *testing.T) {
		ev := event("1", model.EventCreate{IsRecurring: true})

		got, confident := ExpandDates(cal, ev, "2026-02-02", "2026-02-28")
		if len(got) != 0 {
			t.Errorf("got %v, want none", got)
		}
		if confident {
			t.Error("an unexpandable recurring event must not be confident")
		}
	})
}
