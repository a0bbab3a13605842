package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TestResult contains metrics for a single scenario run
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is one sequence of API calls made for an authenticatable record
type Scenario struct {
	Name string
	Run  func(c *client, ownerID string) error
}

type client struct {
	http    *http.Client
	baseURL string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of scenarios to run")
	ownersStr := flag.String("u", "1,2,3", "Comma-separated list of authenticatable ids to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between scenarios in milliseconds")
	flag.Parse()

	var owners []string
	for _, id := range strings.Split(*ownersStr, ",") {
		if id = strings.TrimSpace(id); id != "" {
			owners = append(owners, id)
		}
	}
	if len(owners) == 0 {
		owners = []string{"1"}
	}

	scenarios := []Scenario{
		{"Register", func(c *client, owner string) error {
			_, err := c.registerCredential(owner)
			return err
		}},
		{"Register+Show", func(c *client, owner string) error {
			id, err := c.registerCredential(owner)
			if err != nil {
				return err
			}
			return c.call(http.MethodGet, "/credentials/"+id, nil, nil)
		}},
		{"Register+Disable", func(c *client, owner string) error {
			id, err := c.registerCredential(owner)
			if err != nil {
				return err
			}
			return c.call(http.MethodPost, "/credentials/"+id+"/disable", nil, nil)
		}},
		{"TwoFactor+Enable", func(c *client, owner string) error {
			var created struct {
				ID int64 `json:"id"`
			}
			err := c.call(http.MethodPost, "/two-factor", map[string]any{
				"authenticatable_type": "users",
				"authenticatable_id":   owner,
				"label":                "load-test",
			}, &created)
			if err != nil {
				return err
			}
			return c.call(http.MethodPost, fmt.Sprintf("/two-factor/%d/enable", created.ID), nil, nil)
		}},
	}

	fmt.Printf("Load testing API across %d owners: %v\n", len(owners), owners)
	fmt.Printf("Concurrency: %d goroutines, %d scenarios, %d ms delay\n", *concurrency, *totalRequests, *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ScenarioStats: make(map[string]int),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	c := &client{http: &http.Client{Timeout: 10 * time.Second}, baseURL: *baseURL}
	startTime := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				scenario := scenarios[rand.Intn(len(scenarios))]
				owner := owners[rand.Intn(len(owners))]

				start := time.Now()
				err := scenario.Run(c, owner)
				stats.record(TestResult{
					Scenario:     scenario.Name,
					Success:      err == nil,
					ResponseTime: time.Since(start),
					Error:        err,
				})
			}
		}()
	}
	wg.Wait()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.ScenarioStats[result.Scenario]++
	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	if result.Success {
		s.SuccessfulRequests++
		return
	}
	s.FailedRequests++
	s.ErrorCounts[result.Error.Error()]++
}

func (c *client) registerCredential(owner string) (string, error) {
	id := uuid.NewString()
	err := c.call(http.MethodPost, "/credentials", map[string]any{
		"id":                   id,
		"authenticatable_type": "users",
		"authenticatable_id":   owner,
		"rp_id":                "localhost",
		"origin":               "http://localhost",
		"public_key":           uuid.NewString(),
		"alias":                "load-test",
	}, nil)
	return id, err
}

func (c *client) call(method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = encoded
	}

	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: HTTP status code %d", method, strings.Split(path, "/")[1], resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	times := slices.Clone(stats.ResponseTimes)
	slices.Sort(times)
	percentile := func(p int) time.Duration {
		if len(times) == 0 {
			return 0
		}
		return times[len(times)*p/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Scenarios:     %d\n", stats.TotalRequests)
	fmt.Printf("Successful:          %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed:              %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Scenarios/second:    %.2f\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50 Response:        %v\n", percentile(50))
	fmt.Printf("P90 Response:        %v\n", percentile(90))
	fmt.Printf("P99 Response:        %v\n", percentile(99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-18s: %d\n", scenario, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
