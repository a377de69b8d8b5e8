// Command apitest runs smoke checks against a running calendar API.
//
// Usage:
//
//	go run ./cmd/apitest -url http://localhost:8080
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/almanac"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status string `json:"status"`
}

// RangeResponse is the response for /chinese/range
type RangeResponse struct {
	Start string        `json:"start"`
	End   string        `json:"end"`
	Days  []almanac.Day `json:"days"`
}

// TermsResponse is the response for /chinese/terms/{year}
type TermsResponse struct {
	GregorianYear int            `json:"gregorian_year"`
	Terms         []almanac.Term `json:"terms"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Chinese Calendar API Smoke Test")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)

	tr.testHealth()
	tr.testToday()
	tr.testKnownDates()
	tr.testNewYears()
	tr.testEncode()
	tr.testRange()
	tr.testYearAndTerms()
	tr.testMoon()
	tr.testErrors()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	resp, err := tr.get("/health")
	if err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	var health HealthResponse
	if err := json.Unmarshal(resp.Data, &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testToday() {
	tr.printSection("Today")

	var day almanac.Day
	if err := tr.getDataAs("/api/v1/chinese/today", &day); err != nil {
		tr.recordError("Today", err.Error())
		return
	}
	tr.recordSuccess(fmt.Sprintf("Today (%s): %s %s", day.Date, day.Formatted, day.Hanzi))
	tr.printDayDetail(day)
}

func (tr *TestRunner) testKnownDates() {
	tr.printSection("Known Dates")

	testCases := []struct {
		date        string
		expected    string
		description string
	}{
		{"2023-01-22", "78-40-01-01", "New Year of the Rabbit"},
		{"2023-01-21", "78-39-12-30", "New Year's Eve 2023"},
		{"2023-03-22", "78-40-02L-01", "First day of the leap 2nd month"},
		{"2020-01-25", "78-37-01-01", "New Year of the Rat"},
		{"2000-02-05", "78-17-01-01", "New Year 2000"},
		{"1984-02-02", "78-01-01-01", "Start of the 78th cycle"},
	}

	for _, tc := range testCases {
		var day almanac.Day
		if err := tr.getDataAs("/api/v1/chinese/date/"+tc.date, &day); err != nil {
			tr.recordError(tc.description, err.Error())
			continue
		}
		if day.Formatted != tc.expected {
			tr.recordError(tc.description, fmt.Sprintf("%s: got %s, want %s", tc.date, day.Formatted, tc.expected))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s: %s (%s)", tc.date, day.Formatted, tc.description))
		if tr.verbose {
			tr.printDayDetail(day)
		}
	}
}

func (tr *TestRunner) testNewYears() {
	tr.printSection("New Years")

	expected := map[int]string{
		2020: "2020-01-25",
		2021: "2021-02-12",
		2022: "2022-02-01",
		2023: "2023-01-22",
		2024: "2024-02-10",
		2025: "2025-01-29",
	}
	for year := 2020; year <= 2025; year++ {
		var day almanac.Day
		if err := tr.getDataAs(fmt.Sprintf("/api/v1/chinese/newyear/%d", year), &day); err != nil {
			tr.recordError(fmt.Sprintf("New Year %d", year), err.Error())
			continue
		}
		if day.Date != expected[year] {
			tr.recordError(fmt.Sprintf("New Year %d", year), fmt.Sprintf("got %s, want %s", day.Date, expected[year]))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("New Year %d: %s (%s)", year, day.Date, day.Zodiac))
	}
}

func (tr *TestRunner) testEncode() {
	tr.printSection("Chinese Date to Gregorian")

	var day almanac.Day
	if err := tr.getDataAs("/api/v1/chinese/fixed?cycle=78&year=40&month=2&leap=true&day=1", &day); err != nil {
		tr.recordError("Encode leap month", err.Error())
		return
	}
	if day.Date != "2023-03-22" {
		tr.recordError("Encode leap month", fmt.Sprintf("got %s, want 2023-03-22", day.Date))
		return
	}
	tr.recordSuccess("78-40-02L-01 is 2023-03-22")
}

func (tr *TestRunner) testRange() {
	tr.printSection("Date Range")

	var data RangeResponse
	if err := tr.getDataAs("/api/v1/chinese/range?start=2023-01-20&end=2023-01-26", &data); err != nil {
		tr.recordError("Range", err.Error())
		return
	}
	if len(data.Days) != 7 {
		tr.recordError("Range", fmt.Sprintf("got %d days, want 7", len(data.Days)))
		return
	}
	tr.recordSuccess(fmt.Sprintf("Range returned %d days", len(data.Days)))
	if tr.verbose {
		for _, d := range data.Days {
			fmt.Printf("    %s  %s  %s\n", d.Date, d.Formatted, d.Hanzi)
		}
	}
}

func (tr *TestRunner) testYearAndTerms() {
	tr.printSection("Year Table and Solar Terms")

	var y almanac.Year
	if err := tr.getDataAs("/api/v1/chinese/year/2023", &y); err != nil {
		tr.recordError("Year 2023", err.Error())
	} else if y.LeapMonth != 2 || len(y.Months) != 13 {
		tr.recordError("Year 2023", fmt.Sprintf("leap month %d, %d months", y.LeapMonth, len(y.Months)))
	} else {
		tr.recordSuccess(fmt.Sprintf("Year 2023: %s, %d days, leap month %d", y.Name, y.Days, y.LeapMonth))
	}

	var terms TermsResponse
	if err := tr.getDataAs("/api/v1/chinese/terms/2023", &terms); err != nil {
		tr.recordError("Terms 2023", err.Error())
	} else if len(terms.Terms) != 24 {
		tr.recordError("Terms 2023", fmt.Sprintf("got %d terms, want 24", len(terms.Terms)))
	} else {
		tr.recordSuccess("Terms 2023: 24 solar terms")
	}
}

func (tr *TestRunner) testMoon() {
	tr.printSection("New and Full Moons")

	var moons struct {
		Events []almanac.MoonEvent `json:"events"`
	}
	if err := tr.getDataAs("/api/v1/moon/2023", &moons); err != nil {
		tr.recordError("Moon 2023", err.Error())
	} else if len(moons.Events) != 25 {
		tr.recordError("Moon 2023", fmt.Sprintf("got %d events, want 25", len(moons.Events)))
	} else {
		tr.recordSuccess("Moon 2023: 12 new and 13 full moons")
	}

	var d almanac.Day
	if err := tr.getDataAs("/api/v1/chinese/date/2023-08-31", &d); err != nil {
		tr.recordError("Full moon 2023-08-31", err.Error())
	} else if !d.Moon.FullMoon {
		tr.recordError("Full moon 2023-08-31", fmt.Sprintf("moon is %s", d.Moon.Name))
	} else {
		tr.recordSuccess("2023-08-31: full moon")
	}
}

func (tr *TestRunner) testErrors() {
	tr.printSection("Error Handling")

	testCases := []struct {
		path       string
		wantStatus int
		wantCode   string
	}{
		{"/api/v1/chinese/date/not-a-date", http.StatusBadRequest, "BAD_REQUEST"},
		{"/api/v1/chinese/date/3500-01-01", http.StatusBadRequest, "OUT_OF_RANGE"},
		{"/api/v1/chinese/fixed?cycle=78&year=40&month=5&leap=true&day=1", http.StatusUnprocessableEntity, "INVALID_DATE"},
		{"/api/v1/chinese/range?start=2023-01-01&end=2024-01-01", http.StatusBadRequest, "BAD_REQUEST"},
	}

	for _, tc := range testCases {
		resp, err := tr.getRaw(tc.path)
		if err != nil {
			tr.recordError(tc.path, err.Error())
			continue
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		var apiResp APIResponse
		if err := json.Unmarshal(body, &apiResp); err != nil {
			tr.recordError(tc.path, fmt.Sprintf("decode: %v", err))
			continue
		}
		if resp.StatusCode != tc.wantStatus || apiResp.Error == nil || apiResp.Error.Code != tc.wantCode {
			tr.recordError(tc.path, fmt.Sprintf("HTTP %d %+v, want %d %s", resp.StatusCode, apiResp.Error, tc.wantStatus, tc.wantCode))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s -> %d %s", tc.path, resp.StatusCode, tc.wantCode))
	}
}

// =============================================================================
// Helpers
// =============================================================================

func (tr *TestRunner) get(path string) (*APIResponse, error) {
	resp, err := tr.getRaw(path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse response: %w (body: %s)", err, string(body))
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return nil, fmt.Errorf("API error: %s", errMsg)
	}

	return &apiResp, nil
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	return tr.client.Get(tr.baseURL + path)
}

func (tr *TestRunner) getDataAs(path string, target interface{}) error {
	resp, err := tr.get(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(resp.Data, target)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) printDayDetail(d almanac.Day) {
	fmt.Printf("    Year: %s, %s\n", d.YearName, d.Zodiac)
	fmt.Printf("    Day name: %s\n", d.DayName)
	fmt.Printf("    Major term: %s %s\n", d.MajorTerm.Pinyin, d.MajorTerm.Hanzi)
	if d.Term != nil {
		fmt.Printf("    Term begins: %s\n", d.Term.Pinyin)
	}
	if d.Sunrise != nil && d.Sunset != nil {
		fmt.Printf("    Sun: %s - %s\n", d.Sunrise.Format("15:04"), d.Sunset.Format("15:04 MST"))
	}
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
		fmt.Printf("Checks completed with %d failure(s)\n", tr.errorCount)
		return
	}
	fmt.Println("All checks passed! ✓")
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output (show day details)")
	flag.Parse()

	// Check if server is reachable
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *verbose)
	runner.Run()

	// Exit with error code if checks failed
	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
