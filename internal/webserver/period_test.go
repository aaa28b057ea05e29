package webserver_test

import (
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/nanoperiod/internal/webserver"
	"github.com/svera/nanoperiod/internal/webserver/infrastructure"
)

type periodDetail struct {
	Text        string `json:"text"`
	Months      int32  `json:"months"`
	Days        int32  `json:"days"`
	Duration    string `json:"duration"`
	Nanoseconds int64  `json:"nanoseconds"`
	ISO         string `json:"iso"`
}

func TestPeriodDetail(t *testing.T) {
	db := infrastructure.Connect("file::memory:", false)
	app := bootstrapApp(db, webserver.Config{})

	var cases = []struct {
		name     string
		query    url.Values
		expected periodDetail
	}{
		{
			name:  "Canonical text",
			query: url.Values{"text": {"1y2m3w4d/01:02:03.5"}},
			expected: periodDetail{
				Text:        "14m25d/01:02:03.500",
				Months:      14,
				Days:        25,
				Duration:    "01:02:03.500",
				Nanoseconds: 3723500000000,
				ISO:         "P1Y2M3W4DT1H2M3.5S",
			},
		},
		{
			name:  "ISO-8601 text",
			query: url.Values{"iso": {"P1Y2W"}},
			expected: periodDetail{
				Text:     "12m14d/00:00:00",
				Months:   12,
				Days:     14,
				Duration: "00:00:00",
				ISO:      "P1Y2W",
			},
		},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			response, err := get(app, "/en/api/period?"+tcase.query.Encode())
			if err != nil {
				t.Fatalf("Unexpected error: %v", err.Error())
			}
			mustReturnStatus(response, fiber.StatusOK, t)
			if got := decode[periodDetail](response, t); got != tcase.expected {
				t.Errorf("Expected %+v, got %+v", tcase.expected, got)
			}
		})
	}
}

func TestPeriodDetailErrors(t *testing.T) {
	db := infrastructure.Connect("file::memory:", false)
	app := bootstrapApp(db, webserver.Config{})

	response, err := get(app, "/en/api/period?text=1x")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	mustReturnError(response, fiber.StatusBadRequest, `Cannot read "1x" as a period`, t)

	response, err = get(app, "/es/api/period?text=1x")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	mustReturnError(response, fiber.StatusBadRequest, `No se puede leer "1x" como un periodo`, t)
}

func TestPeriodArith(t *testing.T) {
	db := infrastructure.Connect("file::memory:", false)
	app := bootstrapApp(db, webserver.Config{})

	var cases = []struct {
		name     string
		body     string
		expected map[string]interface{}
	}{
		{"Add", `{"op":"add","a":"1m","b":"2d/01:00:00"}`, map[string]interface{}{"result": "1m2d/01:00:00"}},
		{"Subtract", `{"op":"sub","a":"1m","b":"1m1d"}`, map[string]interface{}{"result": "0m-1d/00:00:00"}},
		{"Negate", `{"op":"neg","a":"1m1d/00:00:01"}`, map[string]interface{}{"result": "-1m-1d/-00:00:01"}},
		{"Multiply by an integer", `{"op":"mul","a":"1m1d/00:00:01","k":3}`, map[string]interface{}{"result": "3m3d/00:00:03"}},
		{"Multiply by a real", `{"op":"mul","a":"/00:00:01","k":0.5}`, map[string]interface{}{"result": "0m0d/00:00:00.500"}},
		{"Divide", `{"op":"div","a":"4m2d","k":2}`, map[string]interface{}{"result": "2m1d/00:00:00"}},
		{"Missing operand", `{"op":"add","a":"1m","b":null}`, map[string]interface{}{"result": nil}},
		{"Equal", `{"op":"equal","a":"1m","b":"1m0d"}`, map[string]interface{}{"equal": true}},
		{"Month is not thirty days", `{"op":"equal","a":"1m","b":"30d"}`, map[string]interface{}{"equal": false}},
		{"Equal with a missing operand", `{"op":"equal","a":"1m"}`, map[string]interface{}{"equal": nil}},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			response, err := postJSON(app, "/en/api/period/arith", tcase.body)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err.Error())
			}
			mustReturnStatus(response, fiber.StatusOK, t)
			got := decode[map[string]interface{}](response, t)
			for key, value := range tcase.expected {
				if got[key] != value {
					t.Errorf("Expected %s to be %v, got %v", key, value, got[key])
				}
			}
		})
	}
}

func TestPeriodArithErrors(t *testing.T) {
	db := infrastructure.Connect("file::memory:", false)
	app := bootstrapApp(db, webserver.Config{})

	var cases = []struct {
		name            string
		body            string
		expectedStatus  int
		expectedMessage string
	}{
		{"Division by zero", `{"op":"div","a":"1m","k":0}`, fiber.StatusBadRequest, "Division by zero"},
		{"Division of a missing period by zero", `{"op":"div","a":null,"k":0}`, fiber.StatusBadRequest, "Division by zero"},
		{"Unknown operation", `{"op":"pow","a":"1m"}`, fiber.StatusBadRequest, "Unknown operation"},
		{"Missing factor", `{"op":"mul","a":"1m"}`, fiber.StatusBadRequest, "Bad Request"},
		{"Invalid period", `{"op":"neg","a":"1q"}`, fiber.StatusBadRequest, `Cannot read "1q" as a period`},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			response, err := postJSON(app, "/en/api/period/arith", tcase.body)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err.Error())
			}
			mustReturnError(response, tcase.expectedStatus, tcase.expectedMessage, t)
		})
	}
}
