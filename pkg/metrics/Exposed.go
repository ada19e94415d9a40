package metrics

var ApiRequests = NewCounter("dx_api_requests_total", "Total API requests sent", []string{"method"})
var ApiErrors = NewCounter("dx_api_errors_total", "Total API requests that failed", []string{"method", "status"})
var ApiRetries = NewCounter("dx_api_retries_total", "Total API request attempts that were retried", []string{"method"})
var ApiLatency = NewHistogram("dx_api_request_duration_seconds", "API request latency including retries", []string{"method"})

var WaitPolls = NewCounter("dx_wait_polls_total", "Total state polls issued while waiting on objects", []string{"target"})

var EmulatorRequests = NewCounter("dx_emulator_requests_total", "Total requests served by the API emulator", []string{"method", "status"})
var EmulatorObjects = NewGauge("dx_emulator_objects", "Objects held by the API emulator", []string{"class"})
