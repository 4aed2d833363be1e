package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
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

// Scenario is one kind of authenticated request
type Scenario struct {
	Name  string
	Build func(baseURL string) (*http.Request, error)
}

type session struct {
	email string
	token string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	users := flag.Int("u", 3, "Number of throwaway accounts to spread load across")
	baseURL := flag.String("url", "http://localhost:8000", "Base URL for the API")
	imagePath := flag.String("image", "", "Banknote image to upload; prediction calls are skipped when empty")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 60 * time.Second}

	sessions, err := createSessions(client, *baseURL, *users)
	if err != nil {
		fmt.Println("Setup failed:", err)
		os.Exit(1)
	}

	scenarios := []Scenario{
		{Name: "History", Build: func(base string) (*http.Request, error) {
			return http.NewRequest(http.MethodGet, base+"/predict/history", nil)
		}},
		{Name: "Me", Build: func(base string) (*http.Request, error) {
			return http.NewRequest(http.MethodGet, base+"/auth/me", nil)
		}},
	}
	if *imagePath != "" {
		image, err := os.ReadFile(*imagePath)
		if err != nil {
			fmt.Println("Cannot read image:", err)
			os.Exit(1)
		}
		name := filepath.Base(*imagePath)
		scenarios = append(scenarios, Scenario{Name: "Predict", Build: func(base string) (*http.Request, error) {
			return uploadRequest(base, name, image)
		}})
	}

	fmt.Printf("Load testing API with %d accounts\n", len(sessions))
	fmt.Printf("Scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, sessions, scenarios, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()
	done := make(chan struct{})
	go func() {
		for result := range results {
			stats.Lock.Lock()
			stats.ScenarioStats[result.Scenario]++
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.Lock.Unlock()
		}
		close(done)
	}()

	wg.Wait()
	close(results)
	<-done

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

// createSessions registers and logs in throwaway accounts
func createSessions(client *http.Client, baseURL string, n int) ([]session, error) {
	run := time.Now().UnixNano()
	sessions := make([]session, 0, n)

	for i := 0; i < n; i++ {
		email := fmt.Sprintf("load-%d-%d@example.com", run, i)
		password := "load-test-password"

		register, _ := json.Marshal(map[string]string{
			"full_name": fmt.Sprintf("Load Tester %d-%d", run, i),
			"email":     email,
			"password":  password,
		})
		resp, err := client.Post(baseURL+"/auth/register", "application/json", bytes.NewReader(register))
		if err != nil {
			return nil, err
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			return nil, fmt.Errorf("register %s: HTTP %d", email, resp.StatusCode)
		}

		login, _ := json.Marshal(map[string]string{"email": email, "password": password})
		resp, err = client.Post(baseURL+"/auth/login", "application/json", bytes.NewReader(login))
		if err != nil {
			return nil, err
		}
		var token struct {
			AccessToken string `json:"access_token"`
		}
		err = json.NewDecoder(resp.Body).Decode(&token)
		resp.Body.Close()
		if err != nil || token.AccessToken == "" {
			return nil, fmt.Errorf("login %s: HTTP %d", email, resp.StatusCode)
		}

		sessions = append(sessions, session{email: email, token: token.AccessToken})
	}

	return sessions, nil
}

func uploadRequest(baseURL, name string, image []byte) (*http.Request, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", name)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(image); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/predict/", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	return req, nil
}

func worker(client *http.Client, baseURL string, delayMs int, sessions []session,
	scenarios []Scenario, jobs <-chan int, results chan<- TestResult) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		s := sessions[rand.Intn(len(sessions))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		req, err := scenario.Build(baseURL)
		if err != nil {
			results <- TestResult{Scenario: scenario.Name, Error: err}
			continue
		}
		req.Header.Set("Authorization", "Bearer "+s.token)

		startTime := time.Now()
		resp, err := client.Do(req)
		result := TestResult{Scenario: scenario.Name, ResponseTime: time.Since(startTime)}

		if err != nil {
			result.Error = err
		} else {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("%s: HTTP status code %d", scenario.Name, resp.StatusCode)
			}
		}

		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(stats.SuccessfulRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests\n", scenario, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
