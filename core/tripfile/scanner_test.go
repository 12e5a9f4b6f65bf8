package tripfile

import (
	"testing"

	"tripcost/core/types"
)

const validPlan = `
trip "carnival" {
  origin           = "São Paulo"
  destination      = "Rio de Janeiro"
  destination_code = "RIO"
  mode             = "flight"
  class            = "business"
  passengers       = 2
  start_date       = "2026-02-10"
  end_date         = "2026-02-17"
}

trip "beach-week" {
  origin      = "Curitiba"
  destination = "Florianópolis"
  mode        = "bus"
  start_date  = "2026-03-02"
  end_date    = "2026-03-08"
}
`

func TestParseValidPlan(t *testing.T) {
	trips, err := NewParser().Parse([]byte(validPlan), "plan.trip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("got %d trips, want 2", len(trips))
	}

	carnival := trips[0]
	if carnival.Name != "carnival" {
		t.Errorf("name = %q, want %q", carnival.Name, "carnival")
	}
	if carnival.Params.Mode != types.ModeFlight {
		t.Errorf("mode = %s, want flight", carnival.Params.Mode)
	}
	if carnival.Params.FlightClass != types.FlightBusiness {
		t.Errorf("class = %s, want business", carnival.Params.FlightClass)
	}
	if carnival.Params.Passengers != 2 {
		t.Errorf("passengers = %d, want 2", carnival.Params.Passengers)
	}
	if carnival.Params.DestinationCode != "RIO" {
		t.Errorf("destination code = %q, want RIO", carnival.Params.DestinationCode)
	}
	if got := carnival.Params.StartDate.Format(DateLayout); got != "2026-02-10" {
		t.Errorf("start date = %s, want 2026-02-10", got)
	}
	if got := carnival.Params.Days(); got != 8 {
		t.Errorf("days = %d, want 8", got)
	}

	bus := trips[1]
	// class defaults per mode
	if bus.Params.BusClass != types.BusConventional {
		t.Errorf("bus class = %s, want conventional", bus.Params.BusClass)
	}
	if bus.Params.Passengers != 1 {
		t.Errorf("passengers defaulted to %d, want 1", bus.Params.Passengers)
	}
}

func TestParseRejectsMissingAttributes(t *testing.T) {
	src := `
trip "broken" {
  origin     = "São Paulo"
  mode       = "flight"
  start_date = "2026-02-10"
  end_date   = "2026-02-17"
}
`
	if _, err := NewParser().Parse([]byte(src), "plan.trip"); err == nil {
		t.Fatal("expected an error for a missing destination")
	}
}

func TestParseRejectsBadDate(t *testing.T) {
	src := `
trip "broken" {
  origin      = "São Paulo"
  destination = "Rio de Janeiro"
  mode        = "flight"
  start_date  = "10/02/2026"
  end_date    = "2026-02-17"
}
`
	if _, err := NewParser().Parse([]byte(src), "plan.trip"); err == nil {
		t.Fatal("expected an error for a non-ISO date")
	}
}

func TestParseRejectsBadSyntax(t *testing.T) {
	if _, err := NewParser().Parse([]byte(`trip "x" {`), "plan.trip"); err == nil {
		t.Fatal("expected a parse error for unterminated block")
	}
}

func TestParseRejectsEmptyPlan(t *testing.T) {
	if _, err := NewParser().Parse([]byte("# nothing here\n"), "plan.trip"); err == nil {
		t.Fatal("expected an error for a plan with no trips")
	}
}

func TestParseRejectsWrongAttributeType(t *testing.T) {
	src := `
trip "broken" {
  origin      = "São Paulo"
  destination = "Rio de Janeiro"
  mode        = "flight"
  passengers  = "two"
  start_date  = "2026-02-10"
  end_date    = "2026-02-17"
}
`
	if _, err := NewParser().Parse([]byte(src), "plan.trip"); err == nil {
		t.Fatal("expected an error for a non-numeric passenger count")
	}
}
